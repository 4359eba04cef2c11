package types

import (
	"context"
	"fmt"
	"reflect"
)

// Payload is the unit of work carried by an instrument.
type Payload interface {
	Play(ctx context.Context, args ...any) (any, error)
}

// Initializer is implemented by payloads that need preparation before the
// first performance. Tuning calls Initialize once per pass.
type Initializer interface {
	Initialize(ctx context.Context) error
}

// Func is an invocable payload; it receives the arguments passed to Conduct.
type Func func(ctx context.Context, args ...any) (any, error)

// Play calls the function
func (f Func) Play(ctx context.Context, args ...any) (any, error) {
	return f(ctx, args...)
}

// Static is a payload whose value is its own result; it is never invoked.
type Static struct {
	Value any
}

// Play returns the static value
func (s Static) Play(context.Context, ...any) (any, error) {
	return s.Value, nil
}

// Value wraps v as a static payload
func Value(v any) Static {
	return Static{Value: v}
}

// PayloadOf resolves a loosely typed value into a Payload. Supported function
// shapes are wrapped with Func, any other function is rejected, and
// everything else becomes a Static value.
func PayloadOf(v any) (Payload, error) {
	switch actual := v.(type) {
	case Payload:
		return actual, nil
	case func(context.Context, ...any) (any, error):
		return Func(actual), nil
	case func(...any) any:
		return Func(func(_ context.Context, args ...any) (any, error) {
			return actual(args...), nil
		}), nil
	case func() (any, error):
		return Func(func(context.Context, ...any) (any, error) {
			return actual()
		}), nil
	case func() any:
		return Func(func(context.Context, ...any) (any, error) {
			return actual(), nil
		}), nil
	case func() string:
		return Func(func(context.Context, ...any) (any, error) {
			return actual(), nil
		}), nil
	}
	if isFunc(v) {
		return nil, NewUnsupportedPayloadError(v)
	}
	return Value(v), nil
}

// KindOf describes payload for introspection
func KindOf(payload Payload) string {
	switch payload.(type) {
	case nil:
		return "none"
	case Func:
		return "func"
	case Static, *Static:
		return "value"
	default:
		return fmt.Sprintf("%T", payload)
	}
}

func isFunc(v any) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).Kind() == reflect.Func
}
