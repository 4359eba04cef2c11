// Package tracing integrates OpenTelemetry with the conductor so that every
// performance and every instrument played is recorded as a span. Until Init
// or InitWithExporter is called spans are no-ops.
package tracing
