// Package progress defines a lightweight tracker that reports how far a
// performance has got. The tracker travels in the context passed to
// Conduct, so callers can observe counters without any global registry.
package progress
