package teacher_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lstar/mealy"
	"github.com/katalvlaran/lstar/teacher"
	"github.com/katalvlaran/lstar/word"
)

var (
	tick = word.String("t")
	out0 = word.String("0")
	out1 = word.String("1")
)

// flipFlop builds the two-state toggle machine.
func flipFlop(t *testing.T) *mealy.Machine {
	t.Helper()
	m := mealy.New()
	q0, err := m.AddState("q0")
	require.NoError(t, err)
	q1, err := m.AddState("q1")
	require.NoError(t, err)
	require.NoError(t, m.AddTransition(q0, tick, out0, q1))
	require.NoError(t, m.AddTransition(q1, tick, out1, q0))
	return m
}

// TestKnowledgeBase_Query resolves words against a machine target and
// checks the length contract.
func TestKnowledgeBase_Query(t *testing.T) {
	tgt, err := teacher.NewMachineTarget(flipFlop(t))
	require.NoError(t, err)
	kb, err := teacher.NewKnowledgeBase(tgt)
	require.NoError(t, err)

	out, err := kb.Query(word.New(tick, tick, tick))
	require.NoError(t, err)
	assert.True(t, out.Equal(word.New(out0, out1, out0)), "Query(t·t·t) = %v", out)
	assert.Equal(t, 3, out.Len(), "output length must equal input length")

	out, err = kb.Query(word.Epsilon())
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len(), "ε resolves to ε")
}

// TestKnowledgeBase_Memoization ensures repeated queries never touch
// the target again.
func TestKnowledgeBase_Memoization(t *testing.T) {
	resets := 0
	state := 0
	tgt := teacher.NewStepTarget(
		func() { resets++; state = 0 },
		func(word.Letter) (word.Letter, error) {
			o := word.String(fmt.Sprint(state % 2))
			state++
			return o, nil
		},
	)
	kb, err := teacher.NewKnowledgeBase(tgt)
	require.NoError(t, err)

	w := word.New(tick, tick)
	first, err := kb.Query(w)
	require.NoError(t, err)
	second, err := kb.Query(w)
	require.NoError(t, err)

	assert.True(t, first.Equal(second), "memoized result must be stable")
	assert.Equal(t, 1, resets, "second query must be served from cache")

	st := kb.Stats()
	assert.Equal(t, 2, st.Queries)
	assert.Equal(t, 1, st.CacheHits)
	assert.Equal(t, 2, st.Steps)
}

// TestKnowledgeBase_TransportFailure surfaces target errors as
// ErrTransport and aborts.
func TestKnowledgeBase_TransportFailure(t *testing.T) {
	boom := errors.New("socket reset by peer")
	tgt := teacher.NewStepTarget(nil, func(word.Letter) (word.Letter, error) {
		return word.Letter{}, boom
	})
	kb, err := teacher.NewKnowledgeBase(tgt)
	require.NoError(t, err)

	_, err = kb.Query(word.New(tick))
	assert.ErrorIs(t, err, teacher.ErrTransport)
}

// TestKnowledgeBase_EmptyOutputLetter rejects targets that emit the
// empty letter.
func TestKnowledgeBase_EmptyOutputLetter(t *testing.T) {
	tgt := teacher.NewStepTarget(nil, func(word.Letter) (word.Letter, error) {
		return word.Empty(), nil
	})
	kb, err := teacher.NewKnowledgeBase(tgt)
	require.NoError(t, err)

	_, err = kb.Query(word.New(tick))
	assert.ErrorIs(t, err, teacher.ErrEmptyLetter)
}

// TestKnowledgeBase_InconsistentTarget aborts when a replay disagrees
// with a cached prefix (a nondeterministic target).
func TestKnowledgeBase_InconsistentTarget(t *testing.T) {
	resets := 0
	tgt := teacher.NewStepTarget(
		func() { resets++ },
		func(word.Letter) (word.Letter, error) {
			// Answers flip after the first reset: the replay of the
			// prefix "t" inside "t·t" contradicts the cached "0".
			if resets <= 1 {
				return out0, nil
			}
			return out1, nil
		},
	)
	kb, err := teacher.NewKnowledgeBase(tgt)
	require.NoError(t, err)

	_, err = kb.Query(word.New(tick))
	require.NoError(t, err)

	_, err = kb.Query(word.New(tick, tick))
	assert.ErrorIs(t, err, teacher.ErrInconsistent)
}

// TestKnowledgeBase_NilTarget rejects construction without a target.
func TestKnowledgeBase_NilTarget(t *testing.T) {
	_, err := teacher.NewKnowledgeBase(nil)
	assert.ErrorIs(t, err, teacher.ErrNilTarget)
}

// TestMachineTarget_Lifecycle checks reset semantics and step errors.
func TestMachineTarget_Lifecycle(t *testing.T) {
	tgt, err := teacher.NewMachineTarget(flipFlop(t))
	require.NoError(t, err)
	require.NoError(t, tgt.Start())
	defer func() { _ = tgt.Stop() }()

	o, err := tgt.Step(tick)
	require.NoError(t, err)
	assert.Equal(t, out0, o)
	o, err = tgt.Step(tick)
	require.NoError(t, err)
	assert.Equal(t, out1, o)

	require.NoError(t, tgt.Reset())
	o, err = tgt.Step(tick)
	require.NoError(t, err)
	assert.Equal(t, out0, o, "Reset must return the target to its initial state")

	_, err = tgt.Step(word.String("x"))
	assert.ErrorIs(t, err, mealy.ErrMissingTransition)

	_, err = teacher.NewMachineTarget(mealy.New())
	assert.ErrorIs(t, err, mealy.ErrNoStates)
}
