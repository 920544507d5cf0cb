// Package runtime implements the navigation engine shared by every diagram:
// a fixed step table walked in linear or history mode, plus clamped numeric
// parameters. All movement past either end of the table degrades to a no-op,
// never an error.
package runtime

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/blockwalk/blockwalk/internal/logging"
	"github.com/blockwalk/blockwalk/pkg/domain"
)

// Engine drives navigation over one diagram's step table. It is stateless
// with respect to sessions: callers own the State and pass it in, the engine
// returns a new State. Given the same state and operation the result is
// always reproducible.
type Engine struct {
	steps  []domain.Step
	specs  []domain.ParamSpec
	mode   domain.NavMode
	logger *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets a structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithNavMode overrides the navigation mode (default: linear).
func WithNavMode(mode domain.NavMode) EngineOption {
	return func(e *Engine) {
		e.mode = mode
	}
}

// NewEngine creates an engine over a fixed step table and parameter specs.
// The step table must be non-empty; engines over an empty table treat
// position 0 as the only step.
func NewEngine(steps []domain.Step, specs []domain.ParamSpec, opts ...EngineOption) *Engine {
	e := &Engine{
		steps:  steps,
		specs:  specs,
		mode:   domain.NavLinear,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Mode returns the configured navigation mode.
func (e *Engine) Mode() domain.NavMode { return e.mode }

// Len returns the number of steps.
func (e *Engine) Len() int { return len(e.steps) }

// lastIndex is the highest valid position.
func (e *Engine) lastIndex() int {
	if len(e.steps) == 0 {
		return 0
	}
	return len(e.steps) - 1
}

// clampIndex forces i into the valid position range.
func (e *Engine) clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if last := e.lastIndex(); i > last {
		return last
	}
	return i
}

// Start creates the initial state: position 0, parameters at their defaults,
// history seeded with [0] in history mode.
func (e *Engine) Start() *domain.State {
	return domain.NewState(e.mode, e.specs)
}

// Step returns the step payload at the state's current position. The
// position invariant guarantees this is always available for rendering.
func (e *Engine) Step(s *domain.State) domain.Step {
	if len(e.steps) == 0 {
		return domain.Step{}
	}
	return e.steps[e.clampIndex(s.Position)]
}

// Terminal reports whether the state sits on the last step.
func (e *Engine) Terminal(s *domain.State) bool {
	return s.Position >= e.lastIndex()
}

// Advance moves one step forward. At the last step it is a no-op. In history
// mode the new position is pushed onto the stack.
func (e *Engine) Advance(s *domain.State) *domain.State {
	if s.Position >= e.lastIndex() {
		return s
	}
	next := s.Clone()
	next.Position++
	if e.mode == domain.NavHistory {
		next.History = append(next.History, next.Position)
	}
	e.logger.Debug("advance", "position", next.Position)
	return next
}

// Retreat moves one step back. Linear mode decrements (floored at 0);
// history mode pops the stack and lands wherever the user actually came
// from, which differs from decrement after a jump. A single-entry stack is
// left untouched.
func (e *Engine) Retreat(s *domain.State) *domain.State {
	switch e.mode {
	case domain.NavHistory:
		if len(s.History) <= 1 {
			return s
		}
		next := s.Clone()
		next.History = next.History[:len(next.History)-1]
		next.Position = next.History[len(next.History)-1]
		e.logger.Debug("retreat", "position", next.Position)
		return next
	default:
		if s.Position <= 0 {
			return s
		}
		next := s.Clone()
		next.Position--
		e.logger.Debug("retreat", "position", next.Position)
		return next
	}
}

// Reset returns to position 0, replacing the history stack with [0] in
// history mode. Parameters keep their current values.
func (e *Engine) Reset(s *domain.State) *domain.State {
	next := s.Clone()
	next.Position = 0
	if e.mode == domain.NavHistory {
		next.History = []int{0}
	}
	return next
}

// JumpTo moves directly to step i, clamped into range. In history mode the
// jump target is pushed, so a later Retreat returns to the jump origin.
// Jumping to the current position is a no-op.
func (e *Engine) JumpTo(s *domain.State, i int) *domain.State {
	i = e.clampIndex(i)
	if i == s.Position {
		return s
	}
	next := s.Clone()
	next.Position = i
	if e.mode == domain.NavHistory {
		next.History = append(next.History, i)
	}
	e.logger.Debug("jump", "position", i)
	return next
}

// SetParam stores a new value for a declared parameter, clamped into its
// [Min, Max] domain. NaN keeps the previous value. Unknown names return
// domain.ErrUnknownParam.
func (e *Engine) SetParam(s *domain.State, name string, raw float64) (*domain.State, error) {
	spec, ok := e.spec(name)
	if !ok {
		return s, domain.ErrUnknownParam
	}
	if math.IsNaN(raw) {
		return s, nil
	}
	next := s.Clone()
	if next.Params == nil {
		next.Params = make(map[string]float64)
	}
	next.Params[name] = spec.Clamp(raw)
	e.logger.Debug("set param", "name", name, "value", next.Params[name])
	return next, nil
}

// SetParamString parses free-text numeric input. Unparseable input keeps the
// previous value rather than failing: degenerate UI input degrades to a
// visually inert state, never an error.
func (e *Engine) SetParamString(s *domain.State, name, raw string) (*domain.State, error) {
	if _, ok := e.spec(name); !ok {
		return s, domain.ErrUnknownParam
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		e.logger.Debug("ignoring unparseable param input", "name", name, "raw", raw)
		return s, nil
	}
	return e.SetParam(s, name, v)
}

func (e *Engine) spec(name string) (domain.ParamSpec, bool) {
	for _, spec := range e.specs {
		if spec.Name == name {
			return spec, true
		}
	}
	return domain.ParamSpec{}, false
}
