package idgen

import "github.com/google/uuid"

// NewFunc generates a raw identifier. Override in tests for determinism.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new globally unique identifier as string.
func New() string { return NewFunc() }

// NewRunID returns an identifier for a single performance.
func NewRunID() string { return "run-" + New() }
