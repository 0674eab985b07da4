// Command resolver-server serves constellation, vehicle, and SBAS coverage
// lookups over an HTTP JSON API, with Prometheus metrics on a side port.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"

	"github.com/signalsfoundry/gnss/internal/config"
	"github.com/signalsfoundry/gnss/internal/logging"
	"github.com/signalsfoundry/gnss/internal/observability"
	"github.com/signalsfoundry/gnss/internal/resolver"
	"github.com/signalsfoundry/gnss/sbas"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML configuration file; defaults apply when empty")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logging.NewFromEnv().Error(context.Background(), "failed to load configuration",
				logging.String("path", *configPath), logging.Err(err))
			os.Exit(1)
		}
		cfg = loaded
	}

	log := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	ctx := context.Background()

	tracingCfg := observability.TracingConfigFromEnv()
	if *configPath != "" {
		tracingCfg.Enabled = cfg.Tracing.Enabled
		if cfg.Tracing.Exporter != "" {
			tracingCfg.Exporter = cfg.Tracing.Exporter
		}
		if cfg.Tracing.Endpoint != "" {
			tracingCfg.Endpoint = cfg.Tracing.Endpoint
		}
		tracingCfg.SampleRatio = cfg.Tracing.SampleRatio
	}
	shutdownTracing, err := observability.InitTracing(ctx, tracingCfg, log)
	if err != nil {
		log.Error(ctx, "failed to initialise tracing", logging.Err(err))
		os.Exit(1)
	}

	collector, err := observability.NewResolverCollector(nil)
	if err != nil {
		log.Error(ctx, "failed to initialise metrics collector", logging.Err(err))
		os.Exit(1)
	}

	db := sbas.Default()
	collector.SetTableSizes(db.VehicleCount(), db.RegionCount())
	log.Info(ctx, "loaded compiled tables",
		logging.Int("vehicles", db.VehicleCount()),
		logging.Int("regions", db.RegionCount()),
	)

	metricsSrv := serveMetrics(cfg.Server.MetricsAddr, collector, log)

	api := resolver.New(db, log, collector)
	srv := &http.Server{
		Addr:         cfg.Server.ListenAddr,
		Handler:      api.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Info(ctx, "starting resolver server", logging.String("addr", cfg.Server.ListenAddr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "resolver server exited", logging.Err(err))
		}
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	<-stopCtx.Done()

	log.Info(ctx, "shutting down resolver server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
	observability.ShutdownWithTimeout(context.Background(), shutdownTracing, log)
}

func serveMetrics(addr string, collector *observability.ResolverCollector, log logging.Logger) *http.Server {
	if collector == nil || addr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn(context.Background(), "metrics server exited", logging.Err(err))
		}
	}()

	log.Info(context.Background(), "serving Prometheus metrics", logging.String("addr", addr))
	return srv
}
