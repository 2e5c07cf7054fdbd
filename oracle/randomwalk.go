package oracle

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lstar/mealy"
	"github.com/katalvlaran/lstar/teacher"
	"github.com/katalvlaran/lstar/word"
)

// RandomWalk is a probabilistic equivalence heuristic: walk teacher and
// hypothesis in lockstep under random inputs, restarting both with a
// configured probability, and report the first disagreement. Exhausting
// the step budget certifies nothing — this strategy is unsound and
// exists as a fast alternative to the W-method.
type RandomWalk struct {
	restartProbability float64
	maxSteps           int
	rng                *rand.Rand
}

// NewRandomWalk builds a random-walk oracle. restartProbability must be
// in (0,1); maxSteps must be positive. seed==0 selects the fixed
// default seed; the walk is fully deterministic for a given seed.
func NewRandomWalk(restartProbability float64, maxSteps int, seed int64) (*RandomWalk, error) {
	if restartProbability <= 0 || restartProbability >= 1 {
		return nil, ErrBadRestartProbability
	}
	if maxSteps < 1 {
		return nil, ErrBadMaxSteps
	}
	return &RandomWalk{
		restartProbability: restartProbability,
		maxSteps:           maxSteps,
		rng:                rngFromSeed(seed),
	}, nil
}

// Check walks up to maxSteps random letters. At each step the
// accumulated word either restarts to ε (with the configured
// probability) or grows by one uniformly drawn letter; the grown word
// is then compared between teacher and hypothesis. The memoizing
// knowledge base makes the per-step replay cheap.
func (o *RandomWalk) Check(h *mealy.Machine, t teacher.Teacher) (Result, error) {
	alpha, err := validate(h, t)
	if err != nil {
		return Result{}, err
	}

	cur := word.Epsilon()
	for step := 0; step < o.maxSteps; step++ {
		if cur.Len() > 0 && o.rng.Float64() < o.restartProbability {
			cur = word.Epsilon()
			continue
		}
		cur = cur.Append(alpha[o.rng.Intn(len(alpha))])

		want, err := t.Query(cur)
		if err != nil {
			return Result{}, err
		}
		got, err := h.Play(cur)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrPartialHypothesis, err)
		}
		if !want.Equal(got) {
			return Result{Counterexample: cur}, nil
		}
	}
	return Result{Equivalent: true}, nil
}
