// Package idgen produces performance run identifiers. It wraps the UUID
// generator so that tests can stub it; callers should treat the returned
// identifiers as opaque strings.
package idgen
