package blockwalk

import (
	"log/slog"

	"github.com/blockwalk/blockwalk/internal/logging"
	"github.com/blockwalk/blockwalk/internal/runtime"
	"github.com/blockwalk/blockwalk/pkg/catalog"
	"github.com/blockwalk/blockwalk/pkg/diagrams"
	"github.com/blockwalk/blockwalk/pkg/domain"
	"github.com/blockwalk/blockwalk/pkg/primitives"
)

// Engine is the high-level entry point for one diagram walkthrough. It wraps
// the internal navigation runtime and the diagram's frame mapping behind a
// simplified API for consumers.
type Engine struct {
	diagram diagrams.Diagram
	runtime *runtime.Engine
	logger  *slog.Logger
}

// View is the complete render result for one state: the frame of visual
// primitives, the active step's payload, and position metadata for step
// indicators.
type View struct {
	Frame    *primitives.Frame `json:"frame"`
	Step     domain.Step       `json:"step"`
	Position int               `json:"position"`
	Total    int               `json:"total"`
	Terminal bool              `json:"terminal"`
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New resolves a diagram from the catalog and initializes its engine.
func New(slug string, opts ...Option) (*Engine, error) {
	d, err := catalog.FromSlug(slug)
	if err != nil {
		return nil, err
	}
	return NewFromDiagram(d, opts...), nil
}

// NewFromDiagram wraps an already-constructed diagram, for callers composing
// their own catalogs.
func NewFromDiagram(d diagrams.Diagram, opts ...Option) *Engine {
	e := &Engine{
		diagram: d,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("diagram", d.Info().Slug)
	e.runtime = runtime.NewEngine(
		d.Steps(),
		d.Params(),
		runtime.WithNavMode(d.Info().Mode),
		runtime.WithLogger(e.logger),
	)
	return e
}

// Diagram returns the wrapped diagram.
func (e *Engine) Diagram() diagrams.Diagram { return e.diagram }

// Info returns the diagram's catalog metadata.
func (e *Engine) Info() diagrams.Info { return e.diagram.Info() }

// Start creates the initial state: step 0, parameters at their defaults.
func (e *Engine) Start() *domain.State { return e.runtime.Start() }

// Render maps a state to its View. Rendering is pure: it never mutates the
// state, and the same state always yields the same View.
func (e *Engine) Render(s *domain.State) View {
	return View{
		Frame:    e.diagram.Frame(s),
		Step:     e.runtime.Step(s),
		Position: s.Position,
		Total:    e.runtime.Len(),
		Terminal: e.runtime.Terminal(s),
	}
}

// Advance moves one step forward (no-op at the last step).
func (e *Engine) Advance(s *domain.State) *domain.State { return e.runtime.Advance(s) }

// Retreat moves one step back (no-op at the first step; in history mode,
// pops the visited stack).
func (e *Engine) Retreat(s *domain.State) *domain.State { return e.runtime.Retreat(s) }

// Reset returns to step 0.
func (e *Engine) Reset(s *domain.State) *domain.State { return e.runtime.Reset(s) }

// JumpTo moves directly to step i, clamped into range.
func (e *Engine) JumpTo(s *domain.State, i int) *domain.State { return e.runtime.JumpTo(s, i) }

// SetParam updates a declared parameter, clamped to its domain.
func (e *Engine) SetParam(s *domain.State, name string, v float64) (*domain.State, error) {
	return e.runtime.SetParam(s, name, v)
}

// SetParamString updates a parameter from free-text input. Unparseable input
// keeps the previous value.
func (e *Engine) SetParamString(s *domain.State, name, raw string) (*domain.State, error) {
	return e.runtime.SetParamString(s, name, raw)
}
