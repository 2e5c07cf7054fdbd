package oracle

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lstar/mealy"
	"github.com/katalvlaran/lstar/teacher"
	"github.com/katalvlaran/lstar/word"
)

// WMethod is the W-method conformance oracle with an upper bound on the
// target's state count.
type WMethod struct {
	maxStates int
}

// NewWMethod builds a W-method oracle assuming the target has at most
// maxStates states.
func NewWMethod(maxStates int) (*WMethod, error) {
	if maxStates < 1 {
		return nil, ErrBadStateBound
	}
	return &WMethod{maxStates: maxStates}, nil
}

// MaxStates returns the assumed bound m on the target's state count.
func (o *WMethod) MaxStates() int { return o.maxStates }

// Check replays the suite Z = P·Σ^{≤m−n+1}·W (the transition-cover
// form of P·Σ^{≤m−n}·W) against the teacher, in increasing word-length
// order, and returns the first disagreement as a counter-example. An
// exhausted suite certifies equivalence (sound for targets with at
// most m states).
func (o *WMethod) Check(h *mealy.Machine, t teacher.Teacher) (Result, error) {
	alpha, err := validate(h, t)
	if err != nil {
		return Result{}, err
	}

	// The middle section runs one letter deeper than the state-count
	// surplus: P·Σ^{≤m−n+1}·W equals the classical transition-cover
	// suite (P ∪ P·Σ)·Σ^{≤m−n}·W, and only that form is sound — a
	// state cover alone misses wrong transitions out of merged states.
	n := h.NumStates()
	depth := o.maxStates - n + 1
	if depth < 1 {
		depth = 1
	}

	cover, err := stateCover(h, alpha)
	if err != nil {
		return Result{}, err
	}
	wset, err := characterizationSet(h, alpha)
	if err != nil {
		return Result{}, err
	}
	mids := wordsUpTo(alpha, depth)

	suite := composeSuite(cover, mids, wset)
	for _, z := range suite {
		want, err := t.Query(z)
		if err != nil {
			return Result{}, err
		}
		got, err := h.Play(z)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrPartialHypothesis, err)
		}
		if !want.Equal(got) {
			return Result{Counterexample: z}, nil
		}
	}
	return Result{Equivalent: true}, nil
}

// stateCover returns, for each reachable state of h, one shortest input
// word leading to it, by BFS from the initial state. The cover is
// ordered by discovery, so it is deterministic.
//
// Complexity: O(n·|Σ|).
func stateCover(h *mealy.Machine, alpha []word.Letter) ([]word.Word, error) {
	n := h.NumStates()
	seen := make([]bool, n)
	access := make([]word.Word, n)
	queue := []mealy.StateID{mealy.Initial}
	seen[mealy.Initial] = true

	cover := make([]word.Word, 0, n)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		cover = append(cover, access[cur])
		for _, a := range alpha {
			tr, err := h.Step(cur, a)
			if err != nil {
				return nil, fmt.Errorf("%w: state %d on %v", ErrPartialHypothesis, cur, a)
			}
			if !seen[tr.Dest] {
				seen[tr.Dest] = true
				access[tr.Dest] = access[cur].Append(a)
				queue = append(queue, tr.Dest)
			}
		}
	}
	return cover, nil
}

// characterizationSet returns words distinguishing every pair of states
// of h: for each pair, a shortest word whose outputs from the two
// states differ, found by BFS over the pair graph. Pairs with no
// distinguishing word (behaviorally equal states) contribute nothing.
// A single-state hypothesis has no pairs; the set then falls back to
// the single-letter words so the suite still exercises outputs.
//
// Complexity: O(n³·|Σ|) worst case over all pairs.
func characterizationSet(h *mealy.Machine, alpha []word.Letter) ([]word.Word, error) {
	n := h.NumStates()
	seen := make(map[string]struct{})
	var wset []word.Word
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w, err := distinguishingWord(h, mealy.StateID(i), mealy.StateID(j), alpha)
			if err != nil {
				return nil, err
			}
			if w == nil {
				continue
			}
			if _, dup := seen[w.Key()]; dup {
				continue
			}
			seen[w.Key()] = struct{}{}
			wset = append(wset, *w)
		}
	}
	if len(wset) == 0 {
		for _, a := range alpha {
			wset = append(wset, word.New(a))
		}
	}
	return wset, nil
}

// statePair is a node of the product graph used for distinguishing.
type statePair struct {
	a, b mealy.StateID
}

// pairItem carries a pair plus the input word that reached it.
type pairItem struct {
	pair statePair
	via  word.Word
}

// distinguishingWord finds a shortest word telling p from q apart, or
// nil when the two states are behaviorally equivalent.
func distinguishingWord(h *mealy.Machine, p, q mealy.StateID, alpha []word.Letter) (*word.Word, error) {
	visited := map[statePair]struct{}{{a: p, b: q}: {}}
	queue := []pairItem{{pair: statePair{a: p, b: q}}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		for _, a := range alpha {
			ta, err := h.Step(item.pair.a, a)
			if err != nil {
				return nil, fmt.Errorf("%w: state %d on %v", ErrPartialHypothesis, item.pair.a, a)
			}
			tb, err := h.Step(item.pair.b, a)
			if err != nil {
				return nil, fmt.Errorf("%w: state %d on %v", ErrPartialHypothesis, item.pair.b, a)
			}
			if ta.Output != tb.Output {
				w := item.via.Append(a)
				return &w, nil
			}
			next := statePair{a: ta.Dest, b: tb.Dest}
			if next.a == next.b {
				continue
			}
			if _, ok := visited[next]; ok {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, pairItem{pair: next, via: item.via.Append(a)})
		}
	}
	return nil, nil
}

// wordsUpTo returns every word over alpha of length 0..depth, level by
// level (ε first), in the alphabet's order within each level.
//
// Complexity: O(|Σ|^depth) words; keep depth small.
func wordsUpTo(alpha []word.Letter, depth int) []word.Word {
	out := []word.Word{word.Epsilon()}
	level := []word.Word{word.Epsilon()}
	for d := 0; d < depth; d++ {
		next := make([]word.Word, 0, len(level)*len(alpha))
		for _, w := range level {
			for _, a := range alpha {
				next = append(next, w.Append(a))
			}
		}
		out = append(out, next...)
		level = next
	}
	return out
}

// composeSuite assembles P·mid·W, deduplicates, drops ε, and sorts by
// increasing length (ties broken by canonical key) so the first
// disagreement found is a shortest counter-example.
func composeSuite(cover, mids, wset []word.Word) []word.Word {
	seen := make(map[string]struct{})
	var suite []word.Word
	for _, p := range cover {
		for _, mid := range mids {
			pm := p.Concat(mid)
			for _, w := range wset {
				z := pm.Concat(w)
				if z.Len() == 0 {
					continue
				}
				k := z.Key()
				if _, dup := seen[k]; dup {
					continue
				}
				seen[k] = struct{}{}
				suite = append(suite, z)
			}
		}
	}
	sort.SliceStable(suite, func(i, j int) bool {
		if suite[i].Len() != suite[j].Len() {
			return suite[i].Len() < suite[j].Len()
		}
		return suite[i].Key() < suite[j].Key()
	})
	return suite
}
