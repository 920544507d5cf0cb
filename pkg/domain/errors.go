package domain

import "errors"

// ErrUnknownDiagram is returned when a slug cannot be resolved in the catalog.
var ErrUnknownDiagram = errors.New("unknown diagram")

// ErrUnknownParam is returned when a parameter name is not declared by the diagram.
var ErrUnknownParam = errors.New("unknown parameter")
