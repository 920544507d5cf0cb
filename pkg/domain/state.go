package domain

// State represents the current snapshot of one diagram instance.
//
// Invariants maintained by the runtime engine:
//   - Position is always a valid index into the diagram's step table.
//   - In history mode, History is never empty and its last element equals Position.
//   - Every entry in Params lies inside the declared [Min, Max] domain.
type State struct {
	// Position is the index of the active step.
	Position int `json:"position"`

	// History tracks the path of visited positions (history mode only; nil in
	// linear mode).
	History []int `json:"history,omitempty"`

	// Params holds the current value of each declared parameter.
	Params map[string]float64 `json:"params,omitempty"`
}

// NewState creates a clean state at position 0 with parameters at their
// declared defaults.
func NewState(mode NavMode, specs []ParamSpec) *State {
	s := &State{
		Position: 0,
		Params:   make(map[string]float64, len(specs)),
	}
	if mode == NavHistory {
		s.History = []int{0}
	}
	for _, spec := range specs {
		s.Params[spec.Name] = spec.Clamp(spec.Default)
	}
	return s
}

// Clone returns a copy safe for independent mutation.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	next := &State{Position: s.Position}
	if s.History != nil {
		next.History = make([]int, len(s.History))
		copy(next.History, s.History)
	}
	if s.Params != nil {
		next.Params = make(map[string]float64, len(s.Params))
		for k, v := range s.Params {
			next.Params[k] = v
		}
	}
	return next
}

// Param returns the current value of a parameter, or 0 if it was never set.
func (s *State) Param(name string) float64 {
	if s == nil || s.Params == nil {
		return 0
	}
	return s.Params[name]
}
