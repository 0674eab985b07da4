package cospar

import (
	"errors"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	cases := []struct {
		input string
		want  COSPAR
	}{
		{"2018-080A", COSPAR{Year: 2018, Launch: 80, Code: "A"}},
		{"1996-068A", COSPAR{Year: 1996, Launch: 68, Code: "A"}},
		{"2011-064AB", COSPAR{Year: 2011, Launch: 64, Code: "AB"}},
	}

	for _, tc := range cases {
		got, err := Parse(tc.input)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tc.input, got, tc.want)
		}
		if s := got.String(); s != tc.input {
			t.Errorf("String(%+v) = %q, want reciprocal %q", got, s, tc.input)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"", "2018", "2018-08", "abcd-080A", "2018-0xzA"} {
		if _, err := Parse(input); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidFormat", input, err)
		}
	}
}

func TestWith(t *testing.T) {
	base := COSPAR{Year: 2018, Launch: 80, Code: "A"}

	if got := base.WithYear(2020); got.Year != 2020 || base.Year != 2018 {
		t.Errorf("WithYear mutated receiver or failed: got %+v, base %+v", got, base)
	}
	if got := base.WithLaunch(5); got.Launch != 5 || got.Code != "A" {
		t.Errorf("WithLaunch = %+v, want launch 5 with code preserved", got)
	}
	if got := base.WithCode("C"); got.Code != "C" || got.Year != 2018 {
		t.Errorf("WithCode = %+v, want code C with year preserved", got)
	}
}
