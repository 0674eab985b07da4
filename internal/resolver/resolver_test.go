package resolver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/signalsfoundry/gnss/internal/logging"
	"github.com/signalsfoundry/gnss/internal/observability"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(nil, logging.Noop(), nil)
}

func doRequest(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
}

func TestConstellationEndpoint(t *testing.T) {
	s := newTestServer(t)

	rr := doRequest(t, s, "/v1/constellation/GPS")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var got constellationResponse
	decodeBody(t, rr, &got)

	if got.Name != "GPS (US)" || got.Acronym != "GPS" || got.Letter != "G" {
		t.Errorf("GPS response = %+v", got)
	}
	if got.Timescale != "GPST" || got.IsSBAS {
		t.Errorf("GPS timescale/is_sbas = %q/%v", got.Timescale, got.IsSBAS)
	}
}

func TestConstellationEndpointAcceptsAliases(t *testing.T) {
	s := newTestServer(t)

	// slash-bearing codes such as "AUS/NZ" must arrive percent-escaped so
	// they occupy a single path segment; PathValue hands back the decoded
	// form
	cases := map[string]string{
		"E":       "Galileo (EU)",
		"beidou":  "BeiDou (CH)",
		"AUS/NZ":  "AUS/NZ (AUS)",
		"AUSNZ":   "AUS/NZ (AUS)",
		"GLONASS": "Glonass (RU)",
	}
	for code, wantName := range cases {
		rr := doRequest(t, s, "/v1/constellation/"+url.PathEscape(code))
		if rr.Code != http.StatusOK {
			t.Errorf("constellation %q status = %d, want 200", code, rr.Code)
			continue
		}
		var got constellationResponse
		decodeBody(t, rr, &got)
		if got.Name != wantName {
			t.Errorf("constellation %q name = %q, want %q", code, got.Name, wantName)
		}
	}
}

func TestConstellationEndpointUnknown(t *testing.T) {
	s := newTestServer(t)

	rr := doRequest(t, s, "/v1/constellation/XYZ")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestSVEndpoint(t *testing.T) {
	s := newTestServer(t)

	rr := doRequest(t, s, "/v1/sv/G01")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var got svResponse
	decodeBody(t, rr, &got)
	if got.SV != "G01" || got.PRN != 1 || got.Constellation != "GPS (US)" {
		t.Errorf("G01 response = %+v", got)
	}
}

func TestSVEndpointResolvesSBAS(t *testing.T) {
	s := newTestServer(t)

	rr := doRequest(t, s, "/v1/sv/S23")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var got svResponse
	decodeBody(t, rr, &got)
	if got.Constellation != "EGNOS (EU)" {
		t.Errorf("S23 constellation = %q, want EGNOS (EU)", got.Constellation)
	}
	if got.LaunchDate != "2014-03-22" {
		t.Errorf("S23 launch_date = %q, want 2014-03-22", got.LaunchDate)
	}
}

func TestSVEndpointInvalid(t *testing.T) {
	s := newTestServer(t)

	for _, code := range []string{"G", "Gxx", "X01"} {
		rr := doRequest(t, s, "/v1/sv/"+code)
		if rr.Code != http.StatusNotFound {
			t.Errorf("sv %q status = %d, want 404", code, rr.Code)
		}
	}
}

func TestSelectEndpoint(t *testing.T) {
	s := newTestServer(t)

	rr := doRequest(t, s, "/v1/sbas/select?lon=2.35&lat=48.85")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var got selectResponse
	decodeBody(t, rr, &got)
	if !got.Found || got.Acronym != "EGNOS" {
		t.Errorf("Paris select = %+v, want EGNOS", got)
	}

	rr = doRequest(t, s, "/v1/sbas/select?lon=0&lat=-80")
	var absent selectResponse
	decodeBody(t, rr, &absent)
	if absent.Found {
		t.Errorf("Antarctica select = %+v, want not found", absent)
	}
}

func TestSelectEndpointRejectsBadInput(t *testing.T) {
	s := newTestServer(t)

	for _, target := range []string{
		"/v1/sbas/select",
		"/v1/sbas/select?lon=abc&lat=0",
		"/v1/sbas/select?lon=0&lat=abc",
		"/v1/sbas/select?lon=500&lat=0",
		"/v1/sbas/select?lon=0&lat=-91",
	} {
		rr := doRequest(t, s, target)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s status = %d, want 400", target, rr.Code)
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	rr := doRequest(t, s, "/healthz")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var got struct {
		Status   string `json:"status"`
		Vehicles int    `json:"vehicles"`
		Regions  int    `json:"regions"`
	}
	decodeBody(t, rr, &got)
	if got.Status != "ok" || got.Vehicles == 0 || got.Regions == 0 {
		t.Errorf("health response = %+v", got)
	}
}

func TestHandlerRecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := observability.NewResolverCollector(reg)
	if err != nil {
		t.Fatalf("NewResolverCollector: %v", err)
	}
	s := New(nil, logging.Noop(), collector)

	doRequest(t, s, "/v1/constellation/GAL")
	doRequest(t, s, "/v1/constellation/XYZ")

	if got := testutil.ToFloat64(collector.Requests.WithLabelValues("/v1/constellation", "200")); got != 1 {
		t.Errorf("200 counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(collector.Requests.WithLabelValues("/v1/constellation", "404")); got != 1 {
		t.Errorf("404 counter = %v, want 1", got)
	}
}
