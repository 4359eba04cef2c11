package extension

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/conductor/model/types"
)

func markReady(t *testing.T, registry *Instruments, name string) {
	instrument, ok := registry.Lookup(name)
	require.True(t, ok)
	require.True(t, registry.MarkReady(name, instrument.Version))
}

func TestInstruments_Put(t *testing.T) {
	registry := NewInstruments()
	assert.False(t, registry.Put(types.NewInstrument("violin", types.Value(1), types.RoleMelody)))
	assert.False(t, registry.Put(types.NewInstrument("cello", types.Value(2), types.RoleHarmony)))
	assert.False(t, registry.Put(types.NewInstrument("drums", types.Value(3), types.RoleRhythm)))
	markReady(t, registry, "violin")

	replaced := registry.Put(types.NewInstrument("violin", types.Value(4), types.RoleBass))
	assert.True(t, replaced)
	assert.Equal(t, 3, registry.Len())
	assert.Equal(t, []string{"violin", "cello", "drums"}, registry.Names())

	violin, ok := registry.Lookup("violin")
	require.True(t, ok)
	assert.Equal(t, types.RoleBass, violin.Role)
	assert.False(t, violin.Ready)
	assert.Equal(t, types.Value(4), violin.Payload)

	_, ok = registry.Lookup("tuba")
	assert.False(t, ok)
}

func TestInstruments_MarkReady(t *testing.T) {
	registry := NewInstruments()
	registry.Put(types.NewInstrument("violin", types.Value(1), types.RoleMelody))
	stale, _ := registry.Lookup("violin")
	registry.Put(types.NewInstrument("violin", types.Value(2), types.RoleMelody))
	current, _ := registry.Lookup("violin")
	require.NotEqual(t, stale.Version, current.Version)

	testCases := []struct {
		name    string
		target  string
		version uint64
		expect  bool
	}{
		{name: "stale version", target: "violin", version: stale.Version, expect: false},
		{name: "missing", target: "tuba", version: current.Version, expect: false},
		{name: "current version", target: "violin", version: current.Version, expect: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, registry.MarkReady(tc.target, tc.version))
		})
	}
	violin, _ := registry.Lookup("violin")
	assert.True(t, violin.Ready)
}

func TestInstruments_Pending(t *testing.T) {
	registry := NewInstruments()
	registry.Put(types.NewInstrument("a", nil, types.RoleMelody))
	registry.Put(types.NewInstrument("b", nil, types.RoleMelody))
	assert.Equal(t, []string{"a", "b"}, registry.Pending())

	markReady(t, registry, "a")
	assert.Equal(t, []string{"b"}, registry.Pending())
	markReady(t, registry, "b")
	assert.Empty(t, registry.Pending())
}

func TestInstruments_ListIsCopy(t *testing.T) {
	registry := NewInstruments()
	registry.Put(types.NewInstrument("x", nil, types.RoleMelody))
	list := registry.List()
	list[0].Ready = true
	assert.Equal(t, []string{"x"}, registry.Pending())
}

func TestInstruments_Concurrent(t *testing.T) {
	registry := NewInstruments()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			registry.Put(types.NewInstrument("shared", types.Value(1), types.RoleHarmony))
			if instrument, ok := registry.Lookup("shared"); ok {
				registry.MarkReady("shared", instrument.Version)
			}
			_ = registry.List()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, registry.Len())
}
