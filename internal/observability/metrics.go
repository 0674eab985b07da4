// Package observability bundles the Prometheus metrics and OpenTelemetry
// tracing wiring for the resolver daemon.
package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ResolverCollector bundles Prometheus metrics for the resolution API and
// provides helpers to wire them into HTTP handlers.
type ResolverCollector struct {
	gatherer prometheus.Gatherer

	Requests  *prometheus.CounterVec
	Durations *prometheus.HistogramVec

	TableVehicles prometheus.Gauge
	TableRegions  prometheus.Gauge
}

// NewResolverCollector registers resolver Prometheus metrics against the
// provided registerer, defaulting to the global Prometheus registry when nil.
func NewResolverCollector(reg prometheus.Registerer) (*ResolverCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "resolver_requests_total",
		Help: "Total number of handled resolution requests, labeled by route and HTTP status code.",
	}, []string{"route", "code"})
	requests, err := registerCounterVec(reg, requests, "resolver_requests_total")
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "resolver_request_duration_seconds",
		Help:    "Resolution request latency in seconds.",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
	}, []string{"route"})
	durations, err = registerHistogramVec(reg, durations, "resolver_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	vehicles, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "resolver_table_vehicles",
		Help: "Number of records in the compiled SBAS vehicle table.",
	}), "resolver_table_vehicles")
	if err != nil {
		return nil, err
	}
	regions, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "resolver_table_regions",
		Help: "Number of regions in the compiled SBAS coverage table.",
	}), "resolver_table_regions")
	if err != nil {
		return nil, err
	}

	return &ResolverCollector{
		gatherer:      gatherer,
		Requests:      requests,
		Durations:     durations,
		TableVehicles: vehicles,
		TableRegions:  regions,
	}, nil
}

// SetTableSizes publishes the compiled table sizes once at startup.
func (c *ResolverCollector) SetTableSizes(vehicles, regions int) {
	if c == nil {
		return
	}
	if c.TableVehicles != nil {
		c.TableVehicles.Set(float64(vehicles))
	}
	if c.TableRegions != nil {
		c.TableRegions.Set(float64(regions))
	}
}

// statusRecorder captures the status code written by a wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware wraps an HTTP handler and records request counts and durations
// under the given route label.
func (c *ResolverCollector) Middleware(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		if c == nil {
			return
		}
		if c.Requests != nil {
			c.Requests.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		}
		if c.Durations != nil {
			c.Durations.WithLabelValues(route).Observe(time.Since(start).Seconds())
		}
	})
}

// Handler exposes a ready-to-use /metrics handler.
func (c *ResolverCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
