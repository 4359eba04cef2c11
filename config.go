package conductor

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/conductor/tracing"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the conductor configuration.
// The zero-value is not useful, start from DefaultConfig.
type Config struct {
	Tempo   string        `json:"tempo" yaml:"tempo"`
	Tracing TracingConfig `json:"tracing" yaml:"tracing"`
}

// TracingConfig controls the OpenTelemetry stdout exporter
type TracingConfig struct {
	Enabled        bool   `json:"enabled" yaml:"enabled"`
	ServiceName    string `json:"serviceName" yaml:"serviceName"`
	ServiceVersion string `json:"serviceVersion" yaml:"serviceVersion"`
	OutputFile     string `json:"outputFile" yaml:"outputFile"`
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() *Config {
	return &Config{
		Tempo: TempoModerato,
		Tracing: TracingConfig{
			ServiceName:    "conductor",
			ServiceVersion: "0.1.0",
		},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Tempo == "" {
		return fmt.Errorf("tempo was empty")
	}
	if c.Tracing.Enabled && c.Tracing.ServiceName == "" {
		return fmt.Errorf("tracing.serviceName was empty")
	}
	return nil
}

// LoadConfig reads a YAML config from any afs supported URL. Missing fields
// keep their defaults.
func LoadConfig(ctx context.Context, URL string, options ...storage.Option) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	cfg := DefaultConfig()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %v: %w", URL, err)
	}
	return cfg, nil
}

// NewFromConfig creates a conductor from cfg; options are applied after the
// config derived ones.
func NewFromConfig(cfg *Config, options ...Option) (*Conductor, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Tracing.Enabled {
		if err := tracing.Init(cfg.Tracing.ServiceName, cfg.Tracing.ServiceVersion, cfg.Tracing.OutputFile); err != nil {
			return nil, fmt.Errorf("failed to init tracing: %w", err)
		}
	}
	return New(append([]Option{WithTempo(cfg.Tempo)}, options...)...), nil
}
