package oracle

import (
	"errors"

	"github.com/katalvlaran/lstar/mealy"
	"github.com/katalvlaran/lstar/teacher"
	"github.com/katalvlaran/lstar/word"
)

// Sentinel errors shared by the equivalence strategies.
var (
	// ErrNilHypothesis indicates a nil or empty hypothesis machine.
	ErrNilHypothesis = errors.New("oracle: hypothesis is nil or empty")

	// ErrNilTeacher indicates a nil teacher.
	ErrNilTeacher = errors.New("oracle: teacher is nil")

	// ErrNoAlphabet indicates a hypothesis with no input letters.
	ErrNoAlphabet = errors.New("oracle: hypothesis has an empty input alphabet")

	// ErrPartialHypothesis indicates the hypothesis is missing a
	// transition for a letter of its own alphabet; conformance suites
	// require total machines.
	ErrPartialHypothesis = errors.New("oracle: hypothesis is not total on its alphabet")

	// ErrBadStateBound indicates a state bound below 1.
	ErrBadStateBound = errors.New("oracle: max states must be at least 1")

	// ErrBadRestartProbability indicates a restart probability outside (0,1).
	ErrBadRestartProbability = errors.New("oracle: restart probability must be in (0,1)")

	// ErrBadMaxSteps indicates a non-positive step budget.
	ErrBadMaxSteps = errors.New("oracle: max steps must be positive")
)

// Result is the outcome of one equivalence query: either Equivalent is
// true, or Counterexample holds an input word on which teacher and
// hypothesis disagree.
type Result struct {
	Equivalent     bool
	Counterexample word.Word
}

// Oracle is an equivalence-query strategy.
type Oracle interface {
	Check(h *mealy.Machine, t teacher.Teacher) (Result, error)
}

// validate performs the argument checks shared by all strategies and
// returns the hypothesis alphabet.
func validate(h *mealy.Machine, t teacher.Teacher) ([]word.Letter, error) {
	if h == nil || h.NumStates() == 0 {
		return nil, ErrNilHypothesis
	}
	if t == nil {
		return nil, ErrNilTeacher
	}
	alpha := h.InputAlphabet()
	if len(alpha) == 0 {
		return nil, ErrNoAlphabet
	}
	return alpha, nil
}
