/*
Package domain contains the core domain models for the blockwalk engine.

It defines the fundamental entities of a walkthrough diagram: the ordered Step
sequence, the numeric ParamSpec domains, and the runtime State (position,
history stack, parameter values). This package is kept pure and free of
external dependencies like I/O or rendering, following Hexagonal Architecture
principles.

# Key Entities

  - Step: one position in a fixed, ordered walkthrough, with its display payload.
  - ParamSpec: a numeric parameter under direct user control, with a [Min, Max] domain.
  - State: the runtime snapshot of one diagram instance (position, history, params).
*/
package domain
