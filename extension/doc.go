// Package extension provides the run-time registry of instruments a
// conductor performs with.
//
// The registry is normally modified through the root conductor package,
// therefore most applications do not need to import this package directly.
package extension
