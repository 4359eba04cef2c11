package conductor

import (
	"context"
	"fmt"

	"github.com/viant/conductor/model/types"
)

// Orchestrate registers payloads as instrument_1..instrument_N with roles
// cycling melody, harmony, rhythm, bass, tunes them and conducts once
// without arguments. Each payload is resolved with types.PayloadOf, so raw
// functions and plain values are accepted alongside types.Payload.
func Orchestrate(ctx context.Context, payloads []any, options ...Option) (*Aggregate, error) {
	c := New(options...)
	for i, value := range payloads {
		name := fmt.Sprintf("instrument_%d", i+1)
		payload, err := types.PayloadOf(value)
		if err != nil {
			return nil, fmt.Errorf("failed to register %v: %w", name, err)
		}
		c.Register(name, payload, types.Roles[i%len(types.Roles)])
	}
	if _, err := c.Tune(ctx); err != nil {
		return nil, err
	}
	return c.Conduct(ctx)
}
