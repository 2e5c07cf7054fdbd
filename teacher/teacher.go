package teacher

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lstar/word"
)

// Sentinel errors for membership resolution.
var (
	// ErrNilTarget indicates a nil Target passed to NewKnowledgeBase.
	ErrNilTarget = errors.New("teacher: target is nil")

	// ErrTransport indicates the target could not answer a query.
	// Fatal to the learning session; the core never retries.
	ErrTransport = errors.New("teacher: transport failure")

	// ErrInconsistent indicates the target produced different outputs
	// for the same input across the session (a nondeterministic or
	// misbehaving target). Fatal to the session.
	ErrInconsistent = errors.New("teacher: inconsistent target output")

	// ErrEmptyLetter indicates the target emitted the empty letter,
	// which cannot appear in an output word.
	ErrEmptyLetter = errors.New("teacher: target emitted the empty letter")
)

// Target is the black box under test, driven one letter at a time.
//
// Reset returns the target to its initial state; Step feeds one input
// letter and returns the emitted output letter. Start and Stop bracket
// the target's lifecycle and are owned by the caller, never by the
// learner.
type Target interface {
	Start() error
	Stop() error
	Reset() error
	Step(word.Letter) (word.Letter, error)
}

// Teacher answers membership queries: the output word a target emits
// for an input word, with len(output) == len(input).
type Teacher interface {
	Query(word.Word) (word.Word, error)
}

// Stats counts the work a knowledge base has done.
type Stats struct {
	// Queries is the number of Query calls answered.
	Queries int

	// CacheHits is the number of Query calls served from the cache.
	CacheHits int

	// Steps is the number of letters pushed into the target.
	Steps int
}

// KnowledgeBase memoizes membership queries against a Target. It is
// the concrete Teacher handed to the learner and the equivalence
// oracles. Not safe for concurrent use; the learning loop is
// synchronous by design.
type KnowledgeBase struct {
	target Target
	cache  map[string]word.Word // input-word key → output word
	stats  Stats
}

// NewKnowledgeBase wraps a target in a memoizing knowledge base.
func NewKnowledgeBase(t Target) (*KnowledgeBase, error) {
	if t == nil {
		return nil, ErrNilTarget
	}
	return &KnowledgeBase{target: t, cache: make(map[string]word.Word)}, nil
}

// Start delegates to the target's Start hook.
func (kb *KnowledgeBase) Start() error { return kb.target.Start() }

// Stop delegates to the target's Stop hook.
func (kb *KnowledgeBase) Stop() error { return kb.target.Stop() }

// Stats returns a snapshot of the query counters.
func (kb *KnowledgeBase) Stats() Stats { return kb.stats }

// Query resolves the output word for in, replaying the target from its
// initial state and memoizing the result. The output has the same
// length as the input by construction.
//
// Returns ErrTransport (wrapped) if the target cannot answer, and
// ErrInconsistent if the resolved word disagrees with any previously
// cached prefix of in.
func (kb *KnowledgeBase) Query(in word.Word) (word.Word, error) {
	kb.stats.Queries++
	if out, ok := kb.cache[in.Key()]; ok {
		kb.stats.CacheHits++
		return out, nil
	}

	if err := kb.target.Reset(); err != nil {
		return word.Word{}, fmt.Errorf("%w: reset: %v", ErrTransport, err)
	}
	outs := make([]word.Letter, 0, in.Len())
	for i := 0; i < in.Len(); i++ {
		kb.stats.Steps++
		o, err := kb.target.Step(in.At(i))
		if err != nil {
			return word.Word{}, fmt.Errorf("%w: step %d of %v: %v", ErrTransport, i, in, err)
		}
		if o.IsEmpty() {
			return word.Word{}, fmt.Errorf("%w: step %d of %v", ErrEmptyLetter, i, in)
		}
		outs = append(outs, o)
	}
	out := word.New(outs...)

	// A cached prefix observed along an earlier replay must agree with
	// this one; otherwise the target is nondeterministic.
	for n := 1; n < in.Len(); n++ {
		p := in.Prefix(n)
		cached, ok := kb.cache[p.Key()]
		if !ok {
			continue
		}
		if !cached.Equal(out.Prefix(n)) {
			return word.Word{}, fmt.Errorf("%w: %v answered %v, but %v previously answered %v",
				ErrInconsistent, in, out, p, cached)
		}
	}

	kb.cache[in.Key()] = out
	return out, nil
}
