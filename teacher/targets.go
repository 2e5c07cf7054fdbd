package teacher

import (
	"github.com/katalvlaran/lstar/mealy"
	"github.com/katalvlaran/lstar/word"
)

// MachineTarget replays a mealy.Machine as a black-box target. It is
// the bridge for learning a machine you already hold (round trips,
// fixtures) and for re-learning a hypothesis.
type MachineTarget struct {
	m   *mealy.Machine
	cur mealy.StateID
}

// NewMachineTarget wraps m. Returns mealy.ErrNoStates for an empty
// machine.
func NewMachineTarget(m *mealy.Machine) (*MachineTarget, error) {
	if m == nil || m.NumStates() == 0 {
		return nil, mealy.ErrNoStates
	}
	return &MachineTarget{m: m, cur: mealy.Initial}, nil
}

// Start is a no-op; an in-memory machine has no lifecycle.
func (t *MachineTarget) Start() error { return nil }

// Stop is a no-op.
func (t *MachineTarget) Stop() error { return nil }

// Reset returns the machine to its initial state.
func (t *MachineTarget) Reset() error {
	t.cur = mealy.Initial
	return nil
}

// Step takes one transition and returns its output letter.
func (t *MachineTarget) Step(in word.Letter) (word.Letter, error) {
	tr, err := t.m.Step(t.cur, in)
	if err != nil {
		return word.Letter{}, err
	}
	t.cur = tr.Dest
	return tr.Output, nil
}

// StepTarget adapts a reset closure and a step closure into a Target,
// for in-process fixtures with internal state.
type StepTarget struct {
	reset func()
	step  func(word.Letter) (word.Letter, error)
}

// NewStepTarget builds a target from the two closures. reset may be nil
// for stateless behavior.
func NewStepTarget(reset func(), step func(word.Letter) (word.Letter, error)) *StepTarget {
	if reset == nil {
		reset = func() {}
	}
	return &StepTarget{reset: reset, step: step}
}

// Start is a no-op.
func (t *StepTarget) Start() error { return nil }

// Stop is a no-op.
func (t *StepTarget) Stop() error { return nil }

// Reset invokes the reset closure.
func (t *StepTarget) Reset() error {
	t.reset()
	return nil
}

// Step invokes the step closure.
func (t *StepTarget) Step(in word.Letter) (word.Letter, error) { return t.step(in) }
