package domain

// Step represents one position in a fixed, ordered walkthrough sequence.
// Step tables are defined once as static data at diagram construction and
// never mutated afterwards.
type Step struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`

	// Description holds the explanatory text for this step. It is markdown;
	// terminal frontends render it through glamour, the HTTP API returns it raw.
	Description string `json:"description" yaml:"description"`

	// Values carries small labeled quantities the frontend may surface next to
	// the frame (computed constants, intermediate results).
	Values map[string]string `json:"values,omitempty" yaml:"values,omitempty"`
}

// NavMode selects the navigation semantics of a diagram.
type NavMode string

const (
	// NavLinear is plain index arithmetic: advance increments, retreat decrements.
	NavLinear NavMode = "linear"

	// NavHistory tracks visited positions on a stack: advance pushes, retreat
	// pops back to wherever the user actually came from (which differs from
	// simple decrement once a jump has occurred).
	NavHistory NavMode = "history"
)
