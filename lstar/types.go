package lstar

import (
	"context"
	"errors"

	"github.com/katalvlaran/lstar/mealy"
	"github.com/katalvlaran/lstar/oracle"
	"github.com/katalvlaran/lstar/word"
)

// Sentinel errors for table and learner operations.
var (
	// ErrEmptyAlphabet indicates an empty input alphabet.
	ErrEmptyAlphabet = errors.New("lstar: input alphabet is empty")

	// ErrEmptyLetter indicates the empty letter inside an input alphabet.
	ErrEmptyLetter = errors.New("lstar: empty letter in input alphabet")

	// ErrDuplicateLetter indicates a repeated letter in an input alphabet.
	ErrDuplicateLetter = errors.New("lstar: duplicate letter in input alphabet")

	// ErrUnknownLetter indicates a letter outside the table's alphabet.
	ErrUnknownLetter = errors.New("lstar: letter not in input alphabet")

	// ErrNilQuery indicates a nil membership-query function.
	ErrNilQuery = errors.New("lstar: query function is nil")

	// ErrNilTeacher indicates a nil teacher handed to the learner.
	ErrNilTeacher = errors.New("lstar: teacher is nil")

	// ErrNotFrontier indicates Close on a word that is not in SA.
	ErrNotFrontier = errors.New("lstar: word is not in the frontier")

	// ErrSuffixExists indicates MakeConsistent produced a suffix already
	// in E — repairing with it again could never make progress.
	ErrSuffixExists = errors.New("lstar: suffix already in experiment set")

	// ErrEmptyCounterexample indicates an ε counter-example.
	ErrEmptyCounterexample = errors.New("lstar: counter-example is empty")

	// ErrTableNotReady indicates BuildHypothesis on a table that is not
	// closed and consistent. Programmer error in the driving loop.
	ErrTableNotReady = errors.New("lstar: table is not closed and consistent")

	// ErrBadStateBound indicates a state bound below 1.
	ErrBadStateBound = errors.New("lstar: max states must be at least 1")

	// ErrStateBound indicates the hypothesis outgrew the claimed bound
	// on the target's state count. Raise the bound and learn again.
	ErrStateBound = errors.New("lstar: hypothesis exceeds max states")

	// ErrOracleMisbehavior indicates the equivalence oracle returned a
	// word that is not actually a counter-example.
	ErrOracleMisbehavior = errors.New("lstar: oracle returned a spurious counter-example")
)

// QueryFunc resolves a membership query: the output word (same length
// as the input) the target emits on the given input word.
type QueryFunc func(word.Word) (word.Word, error)

// Inconsistency is a witness of a consistency defect: First and Second
// are S-words with equal rows whose one-letter extensions by Input
// disagree on Suffix.
type Inconsistency struct {
	First  word.Word
	Second word.Word
	Input  word.Letter
	Suffix word.Word
}

// Options configures a learning session.
type Options struct {
	// Ctx allows cooperative cancellation; observed at the top of each
	// outer iteration and before each membership query.
	Ctx context.Context

	// Oracle answers equivalence queries. Defaults to the W-method
	// with the learner's state bound.
	Oracle oracle.Oracle

	// OnHypothesis is called with each synthesized hypothesis that is
	// within the state bound, before the equivalence query.
	OnHypothesis func(*mealy.Machine)

	// OnCounterexample is called with each accepted counter-example,
	// before it is integrated.
	OnCounterexample func(word.Word)
}

// Option configures learning via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a background context, the
// default oracle selection, and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		OnHypothesis:     func(*mealy.Machine) {},
		OnCounterexample: func(word.Word) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOracle selects the equivalence strategy.
func WithOracle(orc oracle.Oracle) Option {
	return func(o *Options) {
		if orc != nil {
			o.Oracle = orc
		}
	}
}

// WithOnHypothesis registers a hook observing each hypothesis.
func WithOnHypothesis(fn func(*mealy.Machine)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnHypothesis = fn
		}
	}
}

// WithOnCounterexample registers a hook observing each counter-example.
func WithOnCounterexample(fn func(word.Word)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCounterexample = fn
		}
	}
}

// validateAlphabet enforces the alphabet contract shared by Table and
// Learner: non-empty, no empty letter, no duplicates.
func validateAlphabet(alphabet []word.Letter) error {
	if len(alphabet) == 0 {
		return ErrEmptyAlphabet
	}
	seen := make(map[word.Letter]struct{}, len(alphabet))
	for _, a := range alphabet {
		if a.IsEmpty() {
			return ErrEmptyLetter
		}
		if _, dup := seen[a]; dup {
			return ErrDuplicateLetter
		}
		seen[a] = struct{}{}
	}
	return nil
}
