package extension

import (
	"sync"

	"github.com/viant/conductor/model/types"
)

// Instruments is an insertion-ordered registry of instruments keyed by name
type Instruments struct {
	order   []string
	index   map[string]*types.Instrument
	version uint64
	mux     sync.RWMutex
}

// Put registers an instrument under a new version. An existing instrument
// with the same name is replaced in place and keeps its original position.
func (s *Instruments) Put(instrument *types.Instrument) (replaced bool) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.version++
	instrument.Version = s.version
	if _, replaced = s.index[instrument.Name]; !replaced {
		s.order = append(s.order, instrument.Name)
	}
	s.index[instrument.Name] = instrument
	return replaced
}

// Lookup returns an instrument copy by name
func (s *Instruments) Lookup(name string) (types.Instrument, bool) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	instrument, ok := s.index[name]
	if !ok {
		return types.Instrument{}, false
	}
	return *instrument, true
}

// Names returns instrument names in registration order
func (s *Instruments) Names() []string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return append([]string{}, s.order...)
}

// List returns instrument copies in registration order
func (s *Instruments) List() []types.Instrument {
	s.mux.RLock()
	defer s.mux.RUnlock()
	result := make([]types.Instrument, 0, len(s.order))
	for _, name := range s.order {
		result = append(result, *s.index[name])
	}
	return result
}

// MarkReady flags the named instrument as tuned, provided it is still the
// registration with the given version.
func (s *Instruments) MarkReady(name string, version uint64) bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	instrument, ok := s.index[name]
	if !ok || instrument.Version != version {
		return false
	}
	instrument.Ready = true
	return true
}

// Pending returns names of instruments that are not tuned yet
func (s *Instruments) Pending() []string {
	return Pending(s.List())
}

// Len returns number of registered instruments
func (s *Instruments) Len() int {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return len(s.order)
}

// Pending returns names of the untuned instruments in the supplied list
func Pending(instruments []types.Instrument) []string {
	var result []string
	for _, instrument := range instruments {
		if !instrument.Ready {
			result = append(result, instrument.Name)
		}
	}
	return result
}

// NewInstruments creates an empty registry
func NewInstruments() *Instruments {
	return &Instruments{index: make(map[string]*types.Instrument)}
}
