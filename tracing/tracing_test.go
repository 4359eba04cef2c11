package tracing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracingFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "span_test.txt")

	require.NoError(t, Init("conductor", "0.0.1", fname))

	ctx, span := StartSpan(context.Background(), "conductor.conduct")
	span.WithAttributes(map[string]string{"tempo": "moderato"})
	_, child := StartSpan(ctx, "conductor.play")
	EndSpan(child, errors.New("out of tune"))
	EndSpan(span, nil)

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Contains(t, string(data), "conductor.play")
	assert.Contains(t, string(data), "out of tune")
}

func TestEndSpan_Nil(t *testing.T) {
	assert.NotPanics(t, func() {
		EndSpan(nil, nil)
		var span *Span
		span.WithAttributes(map[string]string{"k": "v"}).SetStatus(nil)
	})
}
