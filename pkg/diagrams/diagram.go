/*
Package diagrams contains the walkthrough catalog: each diagram couples a
static step table, optional numeric parameters, and a pure mapping from
(position, params) to a frame of visual primitives.

Frames are rebuilt from scratch on every state change. Conditional visibility
is always expressed as position >= N guards (progressive reveal), never as
independent toggles, so a retreat hides exactly what the matching advance
revealed.
*/
package diagrams

import (
	"github.com/go-echarts/go-echarts/v2/components"

	"github.com/blockwalk/blockwalk/pkg/domain"
	"github.com/blockwalk/blockwalk/pkg/primitives"
)

// Info describes a diagram for catalog listings.
type Info struct {
	Slug    string         `json:"slug"`
	Title   string         `json:"title"`
	Summary string         `json:"summary"`
	Mode    domain.NavMode `json:"mode"`
}

// Diagram is the contract every walkthrough implements. All methods must be
// pure with respect to the passed state: rendering never mutates anything.
type Diagram interface {
	Info() Info
	Steps() []domain.Step
	Params() []domain.ParamSpec

	// Frame maps the current state to the visual primitive tree.
	Frame(s *domain.State) *primitives.Frame
}

// Charter is implemented by diagrams that can additionally render their
// current state as a chart for HTML export.
type Charter interface {
	Chart(s *domain.State) components.Charter
}
