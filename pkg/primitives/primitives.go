// Package primitives defines the declarative visual vocabulary shared by all
// diagrams: flow nodes, arrows, data boxes, grids, and notes, composed into a
// Frame. A Frame is pure data; the presentation packages turn it into ANSI
// text or HTML. Diagrams rebuild the whole Frame on every state change, there
// is no incremental update path.
package primitives

// Variant tags an element with a semantic color. Renderers map variants to
// their own palette.
type Variant string

const (
	VariantNeutral Variant = "neutral"
	VariantPrimary Variant = "primary"
	VariantAccent  Variant = "accent"
	VariantSuccess Variant = "success"
	VariantWarning Variant = "warning"
	VariantDanger  Variant = "danger"
)

// FlowNode is a labeled box representing an actor or a stage in a flow.
type FlowNode struct {
	ID      string  `json:"id"`
	Label   string  `json:"label"`
	Detail  string  `json:"detail,omitempty"`
	Variant Variant `json:"variant,omitempty"`

	// Active marks the node the current step is talking about.
	Active bool `json:"active,omitempty"`
}

// Arrow is a directed connection between two flow nodes, optionally labeled
// with the value travelling along it.
type Arrow struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
}

// DataBox is a labeled value readout (a register, a computed quantity, a
// digest) shown alongside the flow.
type DataBox struct {
	Label   string  `json:"label"`
	Value   string  `json:"value"`
	Variant Variant `json:"variant,omitempty"`
}

// Cell is one entry of a Grid.
type Cell struct {
	Text    string  `json:"text"`
	Variant Variant `json:"variant,omitempty"`
}

// Grid is a small comparison table (header row plus body rows).
type Grid struct {
	Title   string   `json:"title,omitempty"`
	Headers []string `json:"headers"`
	Rows    [][]Cell `json:"rows"`
}

// Note is a short annotation attached to the frame, the terminal stand-in for
// a hover tooltip. Target names the element the note belongs to.
type Note struct {
	Target string `json:"target,omitempty"`
	Text   string `json:"text"`
}

// Frame is the complete render tree for one (position, params) state. Slices
// keep declaration order; renderers lay nodes out in rows.
type Frame struct {
	Title string `json:"title"`

	Nodes  []FlowNode `json:"nodes,omitempty"`
	Arrows []Arrow    `json:"arrows,omitempty"`
	Boxes  []DataBox  `json:"boxes,omitempty"`
	Grids  []Grid     `json:"grids,omitempty"`
	Notes  []Note     `json:"notes,omitempty"`
}

// AddNode appends a flow node and returns the frame for chaining.
func (f *Frame) AddNode(n FlowNode) *Frame {
	f.Nodes = append(f.Nodes, n)
	return f
}

// AddArrow appends an arrow.
func (f *Frame) AddArrow(a Arrow) *Frame {
	f.Arrows = append(f.Arrows, a)
	return f
}

// AddBox appends a data box.
func (f *Frame) AddBox(b DataBox) *Frame {
	f.Boxes = append(f.Boxes, b)
	return f
}

// AddGrid appends a grid.
func (f *Frame) AddGrid(g Grid) *Frame {
	f.Grids = append(f.Grids, g)
	return f
}

// AddNote appends a note.
func (f *Frame) AddNote(n Note) *Frame {
	f.Notes = append(f.Notes, n)
	return f
}
