package conductor

import (
	"time"

	"github.com/viant/conductor/model/types"
	"gopkg.in/yaml.v3"
)

// Aggregate is the blended result of one performance.
type Aggregate struct {
	RunID       string         `json:"runId" yaml:"runId"`
	Performance map[string]any `json:"performance" yaml:"performance"`
	Score       *Score         `json:"score" yaml:"score"`
	Quality     string         `json:"quality" yaml:"quality"`
	Tempo       string         `json:"tempo" yaml:"tempo"`
	StartedAt   time.Time      `json:"startedAt" yaml:"startedAt"`
	CompletedAt time.Time      `json:"completedAt" yaml:"completedAt"`
}

// InstrumentState describes a registered instrument
type InstrumentState struct {
	Name    string     `json:"name" yaml:"name"`
	Role    types.Role `json:"role" yaml:"role"`
	Ready   bool       `json:"ready" yaml:"ready"`
	Payload string     `json:"payload" yaml:"payload"`
}

// Snapshot is the fermata view of a conductor
type Snapshot struct {
	Instruments []InstrumentState `json:"currentState" yaml:"currentState"`
	Score       []string          `json:"scoreSoFar" yaml:"scoreSoFar"`
	Message     string            `json:"message" yaml:"message"`
}

// YAML renders the snapshot
func (s *Snapshot) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
