// Package oracle answers equivalence queries: given a hypothesis Mealy
// machine and a teacher, either certify agreement or produce a
// counter-example input word.
//
// Two strategies are provided behind the single Oracle interface:
//
//   - WMethod — the W-method conformance test. Under an upper bound m
//     on the target's state count it replays the suite
//     Z = P·Σ^{≤m−n+1}·W (the transition-cover form), where P is a
//     BFS state cover of the hypothesis, Σ^{≤k} are all input words up
//     to the depth budget, and W is a characterization set built from
//     shortest pairwise distinguishing words. Z runs in length order,
//     so the returned counter-example is a shortest one. Sound for
//     targets with at most m states; |Z| is O(n²·|Σ|^(m−n+1)), so keep
//     m−n small.
//
//   - RandomWalk — a probabilistic heuristic: grow a random input word
//     letter by letter, restarting with a configured probability, and
//     report the first disagreement. No conformance guarantee; fast.
//
// Both strategies are deterministic: the W-method by stable ordering
// of states, letters and suite words, the random walk by an explicit
// seed (seed==0 selects a fixed default, never the clock).
package oracle
