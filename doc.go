/*
Package blockwalk is a library of interactive walkthrough diagrams for a
blockchain and cryptography curriculum. Each diagram is a deterministic state
machine: a fixed, ordered step table, optional clamped numeric parameters,
and a pure mapping from the current state to a tree of visual primitives.

The engine separates the walkthrough definition (steps, parameters, frame
mapping) from the execution state (position, history stack, parameter values)
and from presentation (terminal, HTML chart export, HTTP API). Given the same
state and operation, every transition and every frame is reproducible.

# Usage

Resolve a diagram from the catalog, then drive it with the navigation
operations. All movement past either end of the step table is a no-op, never
an error.

	package main

	import (
		"fmt"
		"log"

		"github.com/blockwalk/blockwalk"
	)

	func main() {
		eng, err := blockwalk.New("diffie-hellman")
		if err != nil {
			log.Fatal(err)
		}

		state := eng.Start()
		for {
			view := eng.Render(state)
			fmt.Println(view.Step.Title)

			if view.Terminal {
				break
			}
			state = eng.Advance(state)
		}
	}

For an interactive terminal session use the Runner, which reads navigation
commands from an io.Reader and renders frames through a pluggable
ContentRenderer (see cmd/blockwalk for the glamour-backed version).
*/
package blockwalk
