package conductor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/viant/conductor/extension"
	"github.com/viant/conductor/internal/clock"
	"github.com/viant/conductor/internal/ctxlog"
	"github.com/viant/conductor/internal/idgen"
	"github.com/viant/conductor/model/types"
	"github.com/viant/conductor/progress"
	"github.com/viant/conductor/tracing"
)

const (
	// TempoModerato is the default tempo
	TempoModerato = "moderato"
	// TempoAllegro is set by Crescendo
	TempoAllegro = "allegro"
	// TempoLargo is set by Diminuendo
	TempoLargo = "largo"
	// QualityHarmonious is the quality of every blended performance
	QualityHarmonious = "harmonious"

	scoreBegin   = "[Performance begins]"
	scoreEnd     = "[Performance complete]"
	fermataLine  = "[Conductor holds the moment...]"
	crescendoMsg = "[Conductor] Building intensity..."
	diminishMsg  = "[Conductor] Softening..."
)

// Conductor owns instruments and the cumulative score of every performance.
type Conductor struct {
	tempo       string
	instruments *extension.Instruments
	score       *Score
	logger      *slog.Logger
	mux         sync.RWMutex
}

// Tempo returns the current tempo label
func (c *Conductor) Tempo() string {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return c.tempo
}

// Score returns the cumulative score shared with every aggregate
func (c *Conductor) Score() *Score {
	return c.score
}

// Register adds or replaces an instrument. Role defaults to melody. A
// replaced instrument has to be tuned again.
func (c *Conductor) Register(name string, payload types.Payload, role ...types.Role) string {
	aRole := types.RoleMelody
	if len(role) > 0 {
		aRole = role[0]
	}
	if !aRole.IsValid() {
		c.logger.Warn("instrument role is unknown, it will never play", "name", name, "role", aRole.String())
	}
	replaced := c.instruments.Put(types.NewInstrument(name, payload, aRole))
	c.logger.Debug("instrument registered", "name", name, "role", aRole.String(), "replaced", replaced)
	return fmt.Sprintf("[Conductor] %s (%s) has joined the orchestra.", name, aRole)
}

// Tune initializes every instrument whose payload implements
// types.Initializer and marks it ready, in registration order. Each
// instrument is looked up just before it is initialized, so a replacement
// registered earlier in the pass is the one tuned; an instrument replaced
// during its own initialization stays untuned. The first initialization
// error aborts the pass.
func (c *Conductor) Tune(ctx context.Context) ([]string, error) {
	logger := ctxlog.FromContext(ctx, c.logger)
	names := c.instruments.Names()
	result := make([]string, 0, len(names))
	for _, name := range names {
		instrument, ok := c.instruments.Lookup(name)
		if !ok {
			continue
		}
		if initializer, ok := instrument.Payload.(types.Initializer); ok {
			if err := initializer.Initialize(ctx); err != nil {
				logger.Error("tuning failed", "name", name, "error", err)
				return nil, types.NewInitializeError(name, err)
			}
		}
		if !c.instruments.MarkReady(name, instrument.Version) {
			logger.Warn("instrument replaced while tuning", "name", name)
			continue
		}
		result = append(result, fmt.Sprintf("[Tuning] %s is ready.", name))
	}
	logger.Debug("instruments tuned", "count", len(result))
	return result, nil
}

// Rehearse describes a rehearsal of the given section; it does not change state.
func (c *Conductor) Rehearse(section string) string {
	return fmt.Sprintf("[Rehearsal] Testing %s... listening for dissonance...", section)
}

// Conduct plays every instrument by role (melody, harmony, rhythm, bass) and
// within a role in registration order, passing args to invocable payloads.
// It returns *types.NotReadyError when any instrument is not tuned. A failing
// instrument aborts the performance; score lines already written are kept.
func (c *Conductor) Conduct(ctx context.Context, args ...any) (*Aggregate, error) {
	instruments := c.instruments.List()
	if pending := extension.Pending(instruments); len(pending) > 0 {
		return nil, types.NewNotReadyError(pending)
	}

	runID := idgen.NewRunID()
	startedAt := clock.Now()
	logger := ctxlog.FromContext(ctx, c.logger).With("runID", runID)
	ctx, span := tracing.StartSpan(ctx, "conductor.conduct")
	span.WithAttributes(map[string]string{"run.id": runID, "tempo": c.Tempo()})
	playable := 0
	for _, instrument := range instruments {
		if instrument.Role.IsValid() {
			playable++
		}
	}
	progress.UpdateCtx(ctx, progress.Delta{Total: playable, Pending: playable})

	c.score.Append(scoreBegin)
	results := make(map[string]any, len(instruments))
	for _, role := range types.Roles {
		for i := range instruments {
			instrument := &instruments[i]
			if instrument.Role != role {
				continue
			}
			c.score.Append(role.Cue(instrument.Name))
			output, err := c.play(ctx, instrument, args)
			if err != nil {
				logger.Error("performance aborted", "name", instrument.Name, "error", err)
				tracing.EndSpan(span, err)
				return nil, err
			}
			results[instrument.Name] = output
		}
	}
	c.score.Append(scoreEnd)

	aggregate := c.Blend(results)
	aggregate.RunID = runID
	aggregate.StartedAt = startedAt
	aggregate.CompletedAt = clock.Now()
	tracing.EndSpan(span, nil)
	logger.Debug("performance complete", "instruments", len(results), "elapsed", clock.Since(startedAt))
	return aggregate, nil
}

func (c *Conductor) play(ctx context.Context, instrument *types.Instrument, args []any) (any, error) {
	ctx, span := tracing.StartSpan(ctx, "conductor.play")
	span.WithAttributes(map[string]string{"instrument.name": instrument.Name, "instrument.role": instrument.Role.String()})
	progress.UpdateCtx(ctx, progress.Delta{Pending: -1, Playing: 1})
	output, err := instrument.Payload.Play(ctx, args...)
	if err != nil {
		err = types.NewPlayError(instrument.Name, instrument.Role, err)
		progress.UpdateCtx(ctx, progress.Delta{Playing: -1, Failed: 1})
		tracing.EndSpan(span, err)
		return nil, err
	}
	progress.UpdateCtx(ctx, progress.Delta{Playing: -1, Played: 1})
	tracing.EndSpan(span, nil)
	return output, nil
}

// Blend wraps results, the live score and the current tempo into an Aggregate.
func (c *Conductor) Blend(results map[string]any) *Aggregate {
	return &Aggregate{
		Performance: results,
		Score:       c.score,
		Quality:     QualityHarmonious,
		Tempo:       c.Tempo(),
	}
}

// Crescendo raises the tempo to allegro
func (c *Conductor) Crescendo() string {
	c.setTempo(TempoAllegro)
	return crescendoMsg
}

// Diminuendo lowers the tempo to largo
func (c *Conductor) Diminuendo() string {
	c.setTempo(TempoLargo)
	return diminishMsg
}

// Fermata returns a read-only snapshot of instruments and score for inspection
func (c *Conductor) Fermata() *Snapshot {
	instruments := c.instruments.List()
	states := make([]InstrumentState, 0, len(instruments))
	for _, instrument := range instruments {
		states = append(states, InstrumentState{
			Name:    instrument.Name,
			Role:    instrument.Role,
			Ready:   instrument.Ready,
			Payload: types.KindOf(instrument.Payload),
		})
	}
	return &Snapshot{
		Instruments: states,
		Score:       c.score.Lines(),
		Message:     fermataLine,
	}
}

func (c *Conductor) setTempo(tempo string) {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.tempo = tempo
}

// New creates a conductor
func New(options ...Option) *Conductor {
	ret := &Conductor{
		tempo:       TempoModerato,
		instruments: extension.NewInstruments(),
		score:       &Score{},
	}
	for _, option := range options {
		option(ret)
	}
	if ret.logger == nil {
		ret.logger = slog.Default()
	}
	return ret
}
