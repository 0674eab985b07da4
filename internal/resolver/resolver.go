// Package resolver exposes constellation and vehicle resolution over an
// HTTP JSON API.
package resolver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/signalsfoundry/gnss/constellation"
	"github.com/signalsfoundry/gnss/internal/logging"
	"github.com/signalsfoundry/gnss/internal/observability"
	"github.com/signalsfoundry/gnss/sbas"
	"github.com/signalsfoundry/gnss/sv"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const tracerName = "github.com/signalsfoundry/gnss/internal/resolver"

// Server resolves constellation, vehicle, and coverage queries against the
// compiled tables.
type Server struct {
	db        *sbas.Database
	log       logging.Logger
	collector *observability.ResolverCollector
}

// New builds a Server around the given database. A nil database falls back
// to the embedded tables, a nil logger to a no-op logger.
func New(db *sbas.Database, log logging.Logger, collector *observability.ResolverCollector) *Server {
	if db == nil {
		db = sbas.Default()
	}
	if log == nil {
		log = logging.Noop()
	}
	return &Server{db: db, log: log, collector: collector}
}

// Handler returns the full route table with metrics middleware attached.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /v1/constellation/{code}", s.instrument("/v1/constellation", http.HandlerFunc(s.handleConstellation)))
	mux.Handle("GET /v1/sv/{code}", s.instrument("/v1/sv", http.HandlerFunc(s.handleSV)))
	mux.Handle("GET /v1/sbas/select", s.instrument("/v1/sbas/select", http.HandlerFunc(s.handleSelect)))
	mux.Handle("GET /healthz", s.instrument("/healthz", http.HandlerFunc(s.handleHealth)))
	return mux
}

func (s *Server) instrument(route string, next http.Handler) http.Handler {
	traced := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := otel.Tracer(tracerName).Start(r.Context(), route)
		defer span.End()
		span.SetAttributes(attribute.String("http.route", route))

		ctx, _ = logging.EnsureRequestID(ctx)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
	if s.collector == nil {
		return traced
	}
	return s.collector.Middleware(route, traced)
}

type constellationResponse struct {
	Name      string `json:"name"`
	Acronym   string `json:"acronym"`
	Letter    string `json:"letter"`
	Country   string `json:"country,omitempty"`
	Timescale string `json:"timescale,omitempty"`
	IsSBAS    bool   `json:"is_sbas"`
}

func (s *Server) handleConstellation(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	c, err := constellation.Parse(code)
	if err != nil {
		s.writeError(w, r, http.StatusNotFound, "unknown constellation", code, err)
		return
	}

	resp := constellationResponse{
		Name:    c.String(),
		Acronym: c.Acronym(),
		Letter:  string(c.Letter()),
		IsSBAS:  c.IsSBAS(),
	}
	if country, ok := c.CountryCode(); ok {
		resp.Country = country
	}
	if ts, ok := c.Timescale(); ok {
		resp.Timescale = ts.String()
	}
	s.writeJSON(w, r, http.StatusOK, resp)
}

type svResponse struct {
	SV            string `json:"sv"`
	PRN           uint8  `json:"prn"`
	Constellation string `json:"constellation"`
	DetailedName  string `json:"detailed_name"`
	LaunchDate    string `json:"launch_date,omitempty"`
	Timescale     string `json:"timescale,omitempty"`
	IsBeiDouGeo   bool   `json:"is_beidou_geo"`
}

func (s *Server) handleSV(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	vehicle, err := sv.Parse(code)
	if err != nil {
		s.writeError(w, r, http.StatusNotFound, "unknown space vehicle", code, err)
		return
	}

	resp := svResponse{
		SV:            vehicle.String(),
		PRN:           vehicle.PRN,
		Constellation: vehicle.Constellation.String(),
		DetailedName:  vehicle.DetailedName(),
		IsBeiDouGeo:   vehicle.IsBeiDouGeo(),
	}
	if launch, ok := vehicle.LaunchDate(); ok {
		resp.LaunchDate = launch.Format("2006-01-02")
	}
	if ts, ok := vehicle.Timescale(); ok {
		resp.Timescale = ts.String()
	}
	s.writeJSON(w, r, http.StatusOK, resp)
}

type selectResponse struct {
	Found         bool    `json:"found"`
	Constellation string  `json:"constellation,omitempty"`
	Acronym       string  `json:"acronym,omitempty"`
	Longitude     float64 `json:"longitude"`
	Latitude      float64 `json:"latitude"`
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid lon parameter", r.URL.Query().Get("lon"), err)
		return
	}
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid lat parameter", r.URL.Query().Get("lat"), err)
		return
	}
	if lon < -180 || lon > 180 || lat < -90 || lat > 90 {
		s.writeError(w, r, http.StatusBadRequest, "coordinates out of range", "", nil)
		return
	}

	resp := selectResponse{Longitude: lon, Latitude: lat}
	if c, ok := s.db.Select(lon, lat); ok {
		resp.Found = true
		resp.Constellation = c.String()
		resp.Acronym = c.Acronym()
	}
	s.writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]any{
		"status":   "ok",
		"vehicles": s.db.VehicleCount(),
		"regions":  s.db.RegionCount(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Warn(r.Context(), "encode response failed", logging.Err(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, msg, input string, err error) {
	fields := []logging.Field{logging.Int("status", status), logging.String("input", input)}
	if err != nil {
		fields = append(fields, logging.Err(err))
	}
	s.log.Info(r.Context(), msg, fields...)

	s.writeJSON(w, r, status, map[string]string{"error": msg})
}
