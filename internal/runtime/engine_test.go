package runtime

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockwalk/blockwalk/pkg/domain"
)

func threeSteps() []domain.Step {
	return []domain.Step{
		{ID: "intro", Title: "Intro"},
		{ID: "middle", Title: "Middle"},
		{ID: "end", Title: "End"},
	}
}

func TestLinear_AdvanceStopsAtLastStep(t *testing.T) {
	e := NewEngine(threeSteps(), nil)
	s := e.Start()
	require.Equal(t, 0, s.Position)

	for i, want := range []int{1, 2, 2, 2} {
		s = e.Advance(s)
		assert.Equalf(t, want, s.Position, "after advance #%d", i+1)
	}
	assert.True(t, e.Terminal(s))
	assert.Equal(t, "end", e.Step(s).ID)
}

func TestLinear_RetreatFlooredAtZero(t *testing.T) {
	e := NewEngine(threeSteps(), nil)
	s := e.Start()
	s = e.Advance(s)
	s = e.Retreat(s)
	assert.Equal(t, 0, s.Position)
	s = e.Retreat(s)
	assert.Equal(t, 0, s.Position, "retreat at step 0 is a no-op")
}

func TestLinear_ResetAndJump(t *testing.T) {
	e := NewEngine(threeSteps(), nil)
	s := e.Start()
	s = e.JumpTo(s, 2)
	assert.Equal(t, 2, s.Position)
	s = e.JumpTo(s, 99)
	assert.Equal(t, 2, s.Position, "jump past the end clamps to the last step")
	s = e.JumpTo(s, -4)
	assert.Equal(t, 0, s.Position, "jump before the start clamps to 0")
	s = e.Advance(s)
	s = e.Reset(s)
	assert.Equal(t, 0, s.Position)
}

func TestHistory_RetreatReturnsToJumpOrigin(t *testing.T) {
	e := NewEngine(threeSteps(), nil, WithNavMode(domain.NavHistory))
	s := e.Start()
	require.Equal(t, []int{0}, s.History)

	s = e.Advance(s) // 0 -> 1
	s = e.JumpTo(s, 2)
	require.Equal(t, []int{0, 1, 2}, s.History)
	require.Equal(t, 2, s.Position)

	s = e.Retreat(s)
	assert.Equal(t, 1, s.Position, "pop lands at the jump origin, not position-1 of a fresh walk")
	s = e.Retreat(s)
	assert.Equal(t, 0, s.Position)
	s = e.Retreat(s)
	assert.Equal(t, 0, s.Position, "single-entry stack never pops")
	assert.Equal(t, []int{0}, s.History, "stack is never empty")
}

func TestHistory_StackTracksPosition(t *testing.T) {
	e := NewEngine(threeSteps(), nil, WithNavMode(domain.NavHistory))
	s := e.Start()
	ops := []func(*domain.State) *domain.State{
		e.Advance,
		e.Advance,
		e.Retreat,
		func(st *domain.State) *domain.State { return e.JumpTo(st, 2) },
		e.Reset,
	}
	for i, op := range ops {
		s = op(s)
		require.NotEmpty(t, s.History, "op %d", i)
		assert.Equal(t, s.Position, s.History[len(s.History)-1],
			"invariant: last history entry equals position (op %d)", i)
	}
	assert.Equal(t, []int{0}, s.History, "reset replaces the stack with [0]")
}

func TestHistory_JumpToCurrentPositionIsNoop(t *testing.T) {
	e := NewEngine(threeSteps(), nil, WithNavMode(domain.NavHistory))
	s := e.Start()
	s = e.JumpTo(s, 0)
	assert.Equal(t, []int{0}, s.History)
}

func TestSetParam_Clamps(t *testing.T) {
	specs := []domain.ParamSpec{{Name: "dx", Min: 0, Max: 100, Default: 10}}
	e := NewEngine(threeSteps(), specs)
	s := e.Start()
	require.Equal(t, 10.0, s.Param("dx"))

	cases := []struct {
		raw  float64
		want float64
	}{
		{150, 100},
		{-5, 0},
		{42, 42},
		{math.Inf(1), 100},
		{math.Inf(-1), 0},
	}
	for _, c := range cases {
		var err error
		s, err = e.SetParam(s, "dx", c.raw)
		require.NoError(t, err)
		assert.Equalf(t, c.want, s.Param("dx"), "raw %v", c.raw)
	}
}

func TestSetParam_NaNKeepsPrevious(t *testing.T) {
	specs := []domain.ParamSpec{{Name: "dx", Min: 0, Max: 100, Default: 10}}
	e := NewEngine(threeSteps(), specs)
	s := e.Start()
	s, err := e.SetParam(s, "dx", 55)
	require.NoError(t, err)
	s, err = e.SetParam(s, "dx", math.NaN())
	require.NoError(t, err)
	assert.Equal(t, 55.0, s.Param("dx"))
}

func TestSetParamString(t *testing.T) {
	specs := []domain.ParamSpec{{Name: "p", Min: 5, Max: 97, Default: 23}}
	e := NewEngine(threeSteps(), specs)
	s := e.Start()

	s, err := e.SetParamString(s, "p", " 61 ")
	require.NoError(t, err)
	assert.Equal(t, 61.0, s.Param("p"))

	s, err = e.SetParamString(s, "p", "not a number")
	require.NoError(t, err)
	assert.Equal(t, 61.0, s.Param("p"), "unparseable input keeps the previous value")

	s, err = e.SetParamString(s, "p", "1000")
	require.NoError(t, err)
	assert.Equal(t, 97.0, s.Param("p"))
}

func TestSetParam_UnknownName(t *testing.T) {
	e := NewEngine(threeSteps(), nil)
	s := e.Start()
	_, err := e.SetParam(s, "nope", 1)
	assert.ErrorIs(t, err, domain.ErrUnknownParam)
	_, err = e.SetParamString(s, "nope", "1")
	assert.ErrorIs(t, err, domain.ErrUnknownParam)
}

func TestOperationsDoNotMutateInput(t *testing.T) {
	specs := []domain.ParamSpec{{Name: "dx", Min: 0, Max: 100, Default: 10}}
	e := NewEngine(threeSteps(), specs, WithNavMode(domain.NavHistory))
	s := e.Start()
	before := fmt.Sprintf("%+v", s)

	e.Advance(s)
	e.JumpTo(s, 2)
	if _, err := e.SetParam(s, "dx", 99); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, before, fmt.Sprintf("%+v", s), "states are cloned, never mutated in place")
}

func TestEmptyStepTable(t *testing.T) {
	e := NewEngine(nil, nil)
	s := e.Start()
	s = e.Advance(s)
	assert.Equal(t, 0, s.Position)
	assert.Equal(t, domain.Step{}, e.Step(s))
	assert.True(t, e.Terminal(s))
}
