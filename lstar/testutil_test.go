package lstar_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lstar/mealy"
	"github.com/katalvlaran/lstar/teacher"
	"github.com/katalvlaran/lstar/word"
)

// Shared fixture letters.
var (
	tick = word.String("t")
	out0 = word.String("0")
	out1 = word.String("1")

	refillWater  = word.String("REFILL_WATER")
	refillCoffee = word.String("REFILL_COFFEE")
	pressA       = word.String("PRESS_A")
	pressB       = word.String("PRESS_B")
	pressC       = word.String("PRESS_C")

	replyOK     = word.String("OK")
	replyCoffee = word.String("COFFEE")
	replyError  = word.String("ERROR")

	coffeeAlphabet = []word.Letter{refillWater, refillCoffee, pressA, pressB, pressC}
)

// flipFlopMachine is the two-state toggle: q0 --t/0--> q1 --t/1--> q0.
func flipFlopMachine(t *testing.T) *mealy.Machine {
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

// kbForMachine wraps a machine in a memoizing knowledge base.
func kbForMachine(t *testing.T, m *mealy.Machine) *teacher.KnowledgeBase {
	t.Helper()
	tgt, err := teacher.NewMachineTarget(m)
	require.NoError(t, err)
	kb, err := teacher.NewKnowledgeBase(tgt)
	require.NoError(t, err)
	return kb
}

// constantKB answers every letter with out.
func constantKB(t *testing.T, out word.Letter) *teacher.KnowledgeBase {
	t.Helper()
	tgt := teacher.NewStepTarget(nil, func(word.Letter) (word.Letter, error) {
		return out, nil
	})
	kb, err := teacher.NewKnowledgeBase(tgt)
	require.NoError(t, err)
	return kb
}

// coffeeKB is the four-state coffee machine: refills set their counter,
// PRESS_A brews when both counters are set (consuming them), every
// other press fails.
func coffeeKB(t *testing.T) *teacher.KnowledgeBase {
	t.Helper()
	water, coffee := false, false
	tgt := teacher.NewStepTarget(
		func() { water, coffee = false, false },
		func(in word.Letter) (word.Letter, error) {
			switch in {
			case refillWater:
				water = true
				return replyOK, nil
			case refillCoffee:
				coffee = true
				return replyOK, nil
			case pressA:
				if water && coffee {
					water, coffee = false, false
					return replyCoffee, nil
				}
				return replyError, nil
			case pressB, pressC:
				return replyError, nil
			default:
				return word.Letter{}, fmt.Errorf("unknown input %v", in)
			}
		},
	)
	kb, err := teacher.NewKnowledgeBase(tgt)
	require.NoError(t, err)
	return kb
}

// counterKB is a modulo-n cycle on tick; each step emits the index of
// the state it lands in, so every state is observably distinct.
func counterKB(t *testing.T, n int) *teacher.KnowledgeBase {
	t.Helper()
	state := 0
	tgt := teacher.NewStepTarget(
		func() { state = 0 },
		func(in word.Letter) (word.Letter, error) {
			if in != tick {
				return word.Letter{}, fmt.Errorf("unknown input %v", in)
			}
			state = (state + 1) % n
			return word.String(fmt.Sprint(state)), nil
		},
	)
	kb, err := teacher.NewKnowledgeBase(tgt)
	require.NoError(t, err)
	return kb
}
