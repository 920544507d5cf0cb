package blockwalk

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/blockwalk/blockwalk/pkg/primitives"
)

// ContentRenderer transforms step markdown before output. This allows TUI
// rendering (markdown to ANSI) without coupling the core package to a
// terminal library.
type ContentRenderer func(string) (string, error)

// FrameRenderer turns a primitive frame into text. The default prints a
// plain, uncolored layout; cmd/blockwalk injects the termenv version.
type FrameRenderer func(*primitives.Frame) string

// Runner handles the interactive loop of one diagram using provided IO.
// Explicit readers and writers keep it testable and frontend-agnostic.
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Renderer ContentRenderer
	Frames   FrameRenderer

	// Params overrides initial parameter values before the first frame.
	// Invalid names or values degrade the same way interactive input does.
	Params map[string]float64

	// Headless suppresses prompts and help chrome for scripted use.
	Headless bool
}

// NewRunner creates a Runner; callers must set Input and Output (os.Stdin /
// os.Stdout for a real session).
func NewRunner() *Runner {
	return &Runner{}
}

func plainFrame(f *primitives.Frame) string {
	if f == nil {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s]\n", f.Title)
	for _, n := range f.Nodes {
		fmt.Fprintf(&sb, "  (%s) %s", n.Label, n.Detail)
		if n.Active {
			sb.WriteString("  <--")
		}
		sb.WriteByte('\n')
	}
	for _, a := range f.Arrows {
		fmt.Fprintf(&sb, "  %s --%s--> %s\n", a.From, a.Label, a.To)
	}
	for _, b := range f.Boxes {
		fmt.Fprintf(&sb, "  %s: %s\n", b.Label, b.Value)
	}
	for _, g := range f.Grids {
		fmt.Fprintf(&sb, "  %s | %s\n", g.Title, strings.Join(g.Headers, " | "))
		for _, row := range g.Rows {
			cells := make([]string, len(row))
			for i, c := range row {
				cells[i] = c.Text
			}
			fmt.Fprintf(&sb, "    %s\n", strings.Join(cells, " | "))
		}
	}
	for _, n := range f.Notes {
		fmt.Fprintf(&sb, "  * %s\n", n.Text)
	}
	return sb.String()
}

// Run executes the interactive loop until the user quits or input is
// exhausted. Commands: enter/n (advance), b (back), r (reset), j <i> (jump),
// set <param> <value>, q (quit).
func (r *Runner) Run(engine *Engine) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}
	lineReader := bufio.NewReader(r.Input)
	writer := r.Output

	frames := r.Frames
	if frames == nil {
		frames = plainFrame
	}

	state := engine.Start()
	for name, value := range r.Params {
		if next, err := engine.SetParam(state, name, value); err == nil {
			state = next
		}
	}
	if !r.Headless {
		fmt.Fprintf(writer, "--- %s ---\n", engine.Info().Title)
		fmt.Fprintln(writer, "enter: next | b: back | r: reset | j <i>: jump | set <param> <value> | q: quit")
	}

	for {
		view := engine.Render(state)

		fmt.Fprintf(writer, "\n[%d/%d] %s\n", view.Position+1, view.Total, view.Step.Title)
		desc := view.Step.Description
		if r.Renderer != nil {
			if rendered, err := r.Renderer(desc); err == nil {
				desc = rendered
			}
		}
		fmt.Fprintln(writer, strings.TrimSpace(desc))
		if len(view.Step.Values) > 0 {
			keys := make([]string, 0, len(view.Step.Values))
			for k := range view.Step.Values {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(writer, "  %s = %s\n", k, view.Step.Values[k])
			}
		}
		fmt.Fprint(writer, frames(view.Frame))

		if view.Terminal && r.Headless {
			break
		}

		if !r.Headless {
			fmt.Fprint(writer, "> ")
		}
		text, err := lineReader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("input error: %w", err)
		}
		input := strings.TrimSpace(text)

		switch {
		case input == "q" || input == "quit" || input == "exit":
			if !r.Headless {
				fmt.Fprintln(writer, "Bye!")
			}
			return nil
		case input == "" || input == "n" || input == "next":
			state = engine.Advance(state)
		case input == "b" || input == "back":
			state = engine.Retreat(state)
		case input == "r" || input == "reset":
			state = engine.Reset(state)
		case strings.HasPrefix(input, "j "):
			// Step indicators are 1-based on screen.
			if i, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(input, "j "))); err == nil {
				state = engine.JumpTo(state, i-1)
			}
		case strings.HasPrefix(input, "set "):
			fields := strings.Fields(input)
			if len(fields) == 3 {
				next, err := engine.SetParamString(state, fields[1], fields[2])
				if err != nil {
					fmt.Fprintf(writer, "unknown parameter %q\n", fields[1])
				} else {
					state = next
				}
			} else {
				fmt.Fprintln(writer, "usage: set <param> <value>")
			}
		default:
			if !r.Headless {
				fmt.Fprintf(writer, "unrecognized command %q\n", input)
			}
		}
	}
	return nil
}
