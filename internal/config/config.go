// Package config loads the resolver daemon configuration from a YAML file
// and applies defaults so a minimal file is enough to start the server.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Tracing TracingConfig `yaml:"tracing"`
}

// ServerConfig holds the listen addresses and timeouts. Duration fields are
// yaml integers in nanoseconds; yaml.v3 does not accept "5s"-style strings.
type ServerConfig struct {
	ListenAddr      string        `yaml:"listen_addr"`
	MetricsAddr     string        `yaml:"metrics_addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Exporter    string  `yaml:"exporter"`
	Endpoint    string  `yaml:"endpoint"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:      ":8080",
			MetricsAddr:     ":9090",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Tracing: TracingConfig{
			Exporter:    "stdout",
			SampleRatio: 1.0,
		},
	}
}

// Load reads and validates a YAML configuration file.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.Server.ListenAddr == "" {
		return Config{}, fmt.Errorf("server.listen_addr is required")
	}
	if cfg.Server.ReadTimeout <= 0 {
		cfg.Server.ReadTimeout = 5 * time.Second
	}
	if cfg.Server.WriteTimeout <= 0 {
		cfg.Server.WriteTimeout = 10 * time.Second
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}

	switch cfg.Log.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return Config{}, fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	switch cfg.Log.Format {
	case "", "text", "json":
	default:
		return Config{}, fmt.Errorf("log.format must be text or json")
	}

	if cfg.Tracing.Enabled {
		switch cfg.Tracing.Exporter {
		case "", "stdout", "otlp", "otlpgrpc":
		default:
			return Config{}, fmt.Errorf("tracing.exporter must be stdout or otlp")
		}
		if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
			return Config{}, fmt.Errorf("tracing.sample_ratio must be within [0, 1]")
		}
	}
	if cfg.Tracing.SampleRatio == 0 && !cfg.Tracing.Enabled {
		cfg.Tracing.SampleRatio = 1.0
	}

	return cfg, nil
}
