// Package cospar handles COSPAR launch designators, such as "2018-080A".
package cospar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when a string is not a valid COSPAR number.
var ErrInvalidFormat = errors.New("invalid COSPAR number")

// COSPAR is an international launch designator.
type COSPAR struct {
	// Year of launch.
	Year uint16

	// Launch number for that year, in chronological order.
	Launch uint16

	// Code is the up to three letter sequential identifier of a piece in
	// a launch.
	Code string
}

// WithYear returns a copy with an updated launch year.
func (c COSPAR) WithYear(year uint16) COSPAR {
	c.Year = year
	return c
}

// WithLaunch returns a copy with an updated launch number.
func (c COSPAR) WithLaunch(launch uint16) COSPAR {
	c.Launch = launch
	return c
}

// WithCode returns a copy with an updated launch piece code.
func (c COSPAR) WithCode(code string) COSPAR {
	c.Code = code
	return c
}

// String formats the designator in the standard "YYYY-NNNC" form. Output
// here parses back through Parse.
func (c COSPAR) String() string {
	return fmt.Sprintf("%04d-%03d%s", c.Year, c.Launch, c.Code)
}

// Parse decodes a COSPAR designator such as "2018-080A".
func Parse(s string) (COSPAR, error) {
	if len(s) < 9 {
		return COSPAR{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	year, rem, ok := strings.Cut(s, "-")
	if !ok || len(rem) < 4 {
		return COSPAR{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	y, err := strconv.ParseUint(year, 10, 16)
	if err != nil {
		return COSPAR{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	launch, err := strconv.ParseUint(strings.TrimSpace(rem[:3]), 10, 16)
	if err != nil {
		return COSPAR{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	return COSPAR{
		Year:   uint16(y),
		Launch: uint16(launch),
		Code:   strings.TrimSpace(rem[3:]),
	}, nil
}
