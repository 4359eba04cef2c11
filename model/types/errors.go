package types

import (
	"errors"
	"fmt"
	"strings"
)

// NotReadyMessage is reported when conducting before tuning
const NotReadyMessage = "[Conductor] Please tune the instruments first!"

// ErrNotReady matches any *NotReadyError via errors.Is
var ErrNotReady = errors.New("instruments not tuned")

// NotReadyError lists instruments that still need tuning.
type NotReadyError struct {
	Pending []string
}

func (e *NotReadyError) Error() string {
	if len(e.Pending) == 0 {
		return NotReadyMessage
	}
	return NotReadyMessage + " pending: " + strings.Join(e.Pending, ", ")
}

// Is reports ErrNotReady equivalence
func (e *NotReadyError) Is(target error) bool {
	return target == ErrNotReady
}

func NewNotReadyError(pending []string) error {
	return &NotReadyError{Pending: pending}
}

func NewInvalidRoleError(name string) error {
	return fmt.Errorf("invalid role %q, expected one of melody, harmony, rhythm, bass", name)
}

func NewUnsupportedPayloadError(payload interface{}) error {
	return fmt.Errorf("unsupported payload %T", payload)
}

func NewInitializeError(name string, err error) error {
	return fmt.Errorf("failed to tune %v: %w", name, err)
}

func NewPlayError(name string, role Role, err error) error {
	return fmt.Errorf("%v (%v) failed to play: %w", name, role, err)
}
