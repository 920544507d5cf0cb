package domain

// ParamSpec declares a numeric parameter a diagram exposes to the user,
// typically bound to a slider or a free-text number field in a frontend.
type ParamSpec struct {
	Name  string  `json:"name" yaml:"name"`
	Label string  `json:"label" yaml:"label"`
	Min   float64 `json:"min" yaml:"min"`
	Max   float64 `json:"max" yaml:"max"`

	// Default is the initial value. It must lie inside [Min, Max].
	Default float64 `json:"default" yaml:"default"`

	// Step is the suggested increment for slider frontends. Zero means
	// continuous.
	Step float64 `json:"step,omitempty" yaml:"step,omitempty"`
}

// Clamp forces v into the [Min, Max] domain.
func (p ParamSpec) Clamp(v float64) float64 {
	if v < p.Min {
		return p.Min
	}
	if v > p.Max {
		return p.Max
	}
	return v
}
