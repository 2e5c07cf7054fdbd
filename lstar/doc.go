// Package lstar implements Angluin's L* algorithm for actively
// learning a minimal Mealy machine from a black-box teacher.
//
// The package has two halves:
//
//   - Table, the observation table — a two-dimensional record indexed
//     by access sequences (rows: the prefix-closed set S plus its
//     frontier SA) and experiments (columns: the suffix-closed set E),
//     holding the teacher's output words. The table exposes exactly
//     the operations the learning loop needs: closure and consistency
//     defect detection, the moves that repair them, counter-example
//     integration, and hypothesis construction.
//
//   - Learner, the control loop — grow the table until it is closed
//     and consistent, synthesize a hypothesis, ask an equivalence
//     oracle, integrate the counter-example, repeat. The fixpoint is
//     the learned machine.
//
// Design choices, fixed here:
//
//   - E starts as the single-letter suffixes of the input alphabet and
//     never contains ε (a zero-length output cannot separate rows).
//   - Cell T[u,e] stores the last |e| letters of the teacher's answer
//     on u·e, so |T[u,e]| = |e| always.
//   - Counter-examples are integrated Angluin-style: every prefix of
//     the counter-example enters S and the frontier is repaired.
//   - Row identity is a canonical key built from length-framed output
//     words, never a separator join.
//   - Hypothesis states are equivalence classes of rows; the
//     representative is the shortest access sequence (insertion order
//     breaks ties), the class of ε is the initial state, and state
//     names are the rendered representatives.
//
// Termination: each genuine counter-example grows the number of
// distinct rows, and a target with at most m states admits at most m
// distinct rows, so the loop runs at most m iterations. A hypothesis
// exceeding the configured bound aborts with ErrStateBound; a
// counter-example on which teacher and hypothesis actually agree
// aborts with ErrOracleMisbehavior rather than looping.
//
// The learner is single-threaded and synchronous. Cancellation is
// cooperative via the context supplied with WithContext, observed at
// the top of each outer iteration and before each membership query.
package lstar
