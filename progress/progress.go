package progress

import (
	"context"
	"sync"
	"time"

	"github.com/viant/conductor/internal/clock"
)

// Delta represents an incremental counter change emitted while conducting.
// The fields are signed and therefore can be either positive (increment) or
// negative (decrement).
type Delta struct {
	Total   int
	Played  int
	Failed  int
	Playing int
	Pending int
}

// Progress keeps aggregated instrument counters for performances observed
// through one context. It is safe for concurrent use.
type Progress struct {
	Label     string
	StartedAt time.Time

	TotalInstruments   int
	PlayedInstruments  int
	FailedInstruments  int
	PlayingInstruments int
	PendingInstruments int

	sync.Mutex
	onChange func(Progress)
}

// Update applies the supplied delta. If an onChange callback has been
// registered it is invoked with a copy of the tracker outside the critical
// section.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}

	p.Lock()
	p.TotalInstruments += d.Total
	p.PlayedInstruments += d.Played
	p.FailedInstruments += d.Failed
	p.PlayingInstruments += d.Playing
	p.PendingInstruments += d.Pending

	snapshot := p.copy()
	cb := p.onChange
	p.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the tracker suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.Lock()
	defer p.Unlock()
	return p.copy()
}

// OnChange registers a callback invoked after every Update. Passing nil
// disables the callback.
func (p *Progress) OnChange(cb func(Progress)) {
	if p == nil {
		return
	}
	p.Lock()
	p.onChange = cb
	p.Unlock()
}

// copy must be called with the lock held
func (p *Progress) copy() Progress {
	return Progress{
		Label:              p.Label,
		StartedAt:          p.StartedAt,
		TotalInstruments:   p.TotalInstruments,
		PlayedInstruments:  p.PlayedInstruments,
		FailedInstruments:  p.FailedInstruments,
		PlayingInstruments: p.PlayingInstruments,
		PendingInstruments: p.PendingInstruments,
	}
}

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a new Progress tracker, embeds it in a derived
// context and returns both.
func WithNewTracker(ctx context.Context, label string, onChange func(Progress)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Progress{
		Label:     label,
		StartedAt: clock.Now(),
		onChange:  onChange,
	}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the Progress tracker from ctx.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// UpdateCtx looks up the tracker in ctx (if any) and applies the delta.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}
