package mealy

import (
	"errors"

	"github.com/katalvlaran/lstar/word"
)

// Sentinel errors for machine construction and traversal.
var (
	// ErrEmptyStateName indicates an attempt to add a state with an empty name.
	ErrEmptyStateName = errors.New("mealy: state name is empty")

	// ErrDuplicateState indicates a state name already present in the machine.
	ErrDuplicateState = errors.New("mealy: duplicate state name")

	// ErrStateRange indicates a StateID outside the machine's arena.
	ErrStateRange = errors.New("mealy: state id out of range")

	// ErrEmptyLetter indicates an empty letter used as a transition input or output.
	ErrEmptyLetter = errors.New("mealy: empty letter in transition")

	// ErrDuplicateTransition indicates a second transition for the same
	// (state, input letter) pair, which would break determinism.
	ErrDuplicateTransition = errors.New("mealy: duplicate transition for input letter")

	// ErrMissingTransition indicates traversal met a letter the current
	// state has no transition for.
	ErrMissingTransition = errors.New("mealy: no transition for input letter")

	// ErrNoStates indicates an operation on a machine with no states.
	ErrNoStates = errors.New("mealy: machine has no states")
)

// StateID is a dense index into a machine's state arena.
type StateID int

// Initial is the conventional id of the initial state.
const Initial StateID = 0

// Transition is one labeled edge: on Input, emit Output, move to Dest.
type Transition struct {
	Input  word.Letter
	Output word.Letter
	Dest   StateID
}

// state is the arena entry for one state.
type state struct {
	name        string
	transitions []Transition // insertion order; at most one per input letter
}

// Machine is a deterministic Mealy machine. The zero value is not
// usable; call New.
type Machine struct {
	states []state
	names  map[string]StateID
}

// New returns an empty machine. The first state added becomes the
// initial state (id 0).
func New() *Machine {
	return &Machine{names: make(map[string]StateID)}
}

// NumStates returns the number of states in the arena.
func (m *Machine) NumStates() int { return len(m.states) }

// AddState appends a state and returns its id. Names must be non-empty
// and unique within the machine.
func (m *Machine) AddState(name string) (StateID, error) {
	if name == "" {
		return 0, ErrEmptyStateName
	}
	if _, ok := m.names[name]; ok {
		return 0, ErrDuplicateState
	}
	id := StateID(len(m.states))
	m.states = append(m.states, state{name: name})
	m.names[name] = id
	return id, nil
}

// StateName returns the name of the given state.
func (m *Machine) StateName(id StateID) (string, error) {
	if err := m.check(id); err != nil {
		return "", err
	}
	return m.states[id].name, nil
}

// StateByName resolves a state name to its id.
func (m *Machine) StateByName(name string) (StateID, bool) {
	id, ok := m.names[name]
	return id, ok
}

// AddTransition attaches (in → out, dst) to src. At most one transition
// per (src, in) is allowed.
func (m *Machine) AddTransition(src StateID, in, out word.Letter, dst StateID) error {
	if err := m.check(src); err != nil {
		return err
	}
	if err := m.check(dst); err != nil {
		return err
	}
	if in.IsEmpty() || out.IsEmpty() {
		return ErrEmptyLetter
	}
	for _, t := range m.states[src].transitions {
		if t.Input == in {
			return ErrDuplicateTransition
		}
	}
	m.states[src].transitions = append(m.states[src].transitions, Transition{Input: in, Output: out, Dest: dst})
	return nil
}

// Transitions returns a copy of the ordered outgoing transitions of id.
func (m *Machine) Transitions(id StateID) ([]Transition, error) {
	if err := m.check(id); err != nil {
		return nil, err
	}
	out := make([]Transition, len(m.states[id].transitions))
	copy(out, m.states[id].transitions)
	return out, nil
}

// Step resolves the single transition of from on in.
func (m *Machine) Step(from StateID, in word.Letter) (Transition, error) {
	if err := m.check(from); err != nil {
		return Transition{}, err
	}
	for _, t := range m.states[from].transitions {
		if t.Input == in {
			return t, nil
		}
	}
	return Transition{}, ErrMissingTransition
}

// Walk traverses in from the given state, returning the emitted output
// word (same length as the input) and the final state.
func (m *Machine) Walk(from StateID, in word.Word) (word.Word, StateID, error) {
	if len(m.states) == 0 {
		return word.Word{}, 0, ErrNoStates
	}
	if err := m.check(from); err != nil {
		return word.Word{}, 0, err
	}
	cur := from
	outs := make([]word.Letter, 0, in.Len())
	for i := 0; i < in.Len(); i++ {
		t, err := m.Step(cur, in.At(i))
		if err != nil {
			return word.Word{}, 0, err
		}
		outs = append(outs, t.Output)
		cur = t.Dest
	}
	return word.New(outs...), cur, nil
}

// Play traverses in from the initial state and returns the output word.
func (m *Machine) Play(in word.Word) (word.Word, error) {
	out, _, err := m.Walk(Initial, in)
	return out, err
}

// InputAlphabet returns the distinct input letters used anywhere in the
// machine, in first-seen order (state order, then transition order).
func (m *Machine) InputAlphabet() []word.Letter {
	seen := make(map[word.Letter]struct{})
	var out []word.Letter
	for _, s := range m.states {
		for _, t := range s.transitions {
			if _, ok := seen[t.Input]; ok {
				continue
			}
			seen[t.Input] = struct{}{}
			out = append(out, t.Input)
		}
	}
	return out
}

// Complete reports whether every state has a transition for every
// letter of the machine's input alphabet.
func (m *Machine) Complete() bool {
	alpha := m.InputAlphabet()
	for id := range m.states {
		for _, a := range alpha {
			if _, err := m.Step(StateID(id), a); err != nil {
				return false
			}
		}
	}
	return true
}

// check validates a state id against the arena bounds.
func (m *Machine) check(id StateID) error {
	if id < 0 || int(id) >= len(m.states) {
		return ErrStateRange
	}
	return nil
}
