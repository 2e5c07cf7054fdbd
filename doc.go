// Package lstar (module root) is an active-automaton-learning toolkit
// for Go: it infers a minimal Mealy machine for a deterministic
// reactive black box by querying it, Angluin's L* style.
//
// 🚀 What is lstar?
//
//	Give it an input alphabet and a teacher (any system that answers
//	"what do you output on this input sequence?") and it returns the
//	smallest deterministic Mealy machine with the same behavior:
//
//	  • Membership queries  — resolved and memoized by a knowledge base
//	  • Equivalence queries — W-method conformance testing, or a fast
//	    randomized-walk heuristic
//	  • Hypothesis machines — compact arena representation + DOT export
//
// ✨ Why choose lstar?
//
//   - Deterministic        — fixed seeds, stable orders, reproducible runs
//   - Black-box friendly   — teachers are plain interfaces; a TCP adapter
//     is included for out-of-process targets
//   - Rock-solid contracts — sentinel errors everywhere, errors.Is ready
//   - Pure Go core         — no cgo; the CLI is the only binary
//
// Under the hood, everything is organized under five subpackages:
//
//	word/    — alphabet letters (tagged values) and finite words
//	mealy/   — arena-based Mealy machines, traversal, DOT rendering
//	teacher/ — membership oracle: memoizing knowledge base + targets
//	oracle/  — equivalence oracles: W-method and random walk
//	lstar/   — the observation table and the L* learning loop
//
// Quick ASCII example — a flip-flop learned as two states:
//
//	    ┌──── t/1 ────┐
//	    ▼             │
//	   (ε) ── t/0 ──▶ (t)
//
// Dive into each package's doc.go for the algorithmic details and into
// cmd/lstar for the batch command-line wrapper.
//
//	go get github.com/katalvlaran/lstar
package lstar
