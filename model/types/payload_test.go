package types

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadOf(t *testing.T) {
	ctx := context.Background()
	testCases := []struct {
		name   string
		input  any
		args   []any
		expect any
		kind   string
	}{
		{name: "static int", input: 2, expect: 2, kind: "value"},
		{name: "static nil", input: nil, expect: nil, kind: "value"},
		{name: "static map", input: map[string]int{"a": 1}, expect: map[string]int{"a": 1}, kind: "value"},
		{name: "func no args", input: func() any { return 1 }, expect: 1, kind: "func"},
		{name: "func string", input: func() string { return "melody" }, expect: "melody", kind: "func"},
		{
			name:   "func variadic",
			input:  func(args ...any) any { return len(args) },
			args:   []any{"a", "b"},
			expect: 2,
			kind:   "func",
		},
		{
			name: "func with context",
			input: func(_ context.Context, args ...any) (any, error) {
				return args[0], nil
			},
			args:   []any{"first"},
			expect: "first",
			kind:   "func",
		},
		{name: "payload kept", input: Value("x"), expect: "x", kind: "value"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := PayloadOf(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, KindOf(payload))
			actual, err := payload.Play(ctx, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, actual)
		})
	}
}

func TestPayloadOf_UnsupportedFunc(t *testing.T) {
	_, err := PayloadOf(func(a, b int) int { return a + b })
	assert.Error(t, err)
}

func TestStatic_NeverInvoked(t *testing.T) {
	called := false
	fn := func() { called = true }
	payload := Value(fn)
	actual, err := payload.Play(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, actual)
	assert.False(t, called)
}

func TestFunc_Error(t *testing.T) {
	boom := errors.New("boom")
	payload, err := PayloadOf(func() (any, error) { return nil, boom })
	require.NoError(t, err)
	_, err = payload.Play(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestNotReadyError(t *testing.T) {
	err := NewNotReadyError([]string{"violin", "cello"})
	assert.ErrorIs(t, err, ErrNotReady)
	var notReady *NotReadyError
	require.True(t, errors.As(err, &notReady))
	assert.Equal(t, []string{"violin", "cello"}, notReady.Pending)
	assert.Contains(t, err.Error(), NotReadyMessage)
}
