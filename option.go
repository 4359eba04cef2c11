package conductor

import (
	"log/slog"

	"github.com/viant/conductor/tracing"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option represents conductor option
type Option func(c *Conductor)

// WithTempo sets the initial tempo
func WithTempo(tempo string) Option {
	return func(c *Conductor) {
		if tempo != "" {
			c.tempo = tempo
		}
	}
}

// WithLogger sets the logger used when the context does not carry one
func WithLogger(logger *slog.Logger) Option {
	return func(c *Conductor) {
		c.logger = logger
	}
}

// WithTracing configures OpenTelemetry tracing. If outputFile is empty the
// stdout exporter is used; otherwise traces are written to the supplied file
// path. The first successful initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(c *Conductor) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom
// SpanExporter. The first successful initialisation wins.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(c *Conductor) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
