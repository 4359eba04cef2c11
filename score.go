package conductor

import (
	"encoding/json"
	"strings"
	"sync"
)

// Score is the cumulative log of what the conductor did. It is never
// cleared; aggregates hold a reference to it rather than a copy.
type Score struct {
	lines []string
	mux   sync.RWMutex
}

// Append adds a line
func (s *Score) Append(line string) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.lines = append(s.lines, line)
}

// Lines returns a copy of all lines written so far
func (s *Score) Lines() []string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return append([]string{}, s.lines...)
}

// Len returns number of lines
func (s *Score) Len() int {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return len(s.lines)
}

func (s *Score) String() string {
	return strings.Join(s.Lines(), "\n")
}

// MarshalJSON encodes score as a list of lines
func (s *Score) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Lines())
}

// MarshalYAML encodes score as a list of lines
func (s *Score) MarshalYAML() (interface{}, error) {
	return s.Lines(), nil
}
