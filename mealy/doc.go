// Package mealy provides a compact, deterministic Mealy machine: a
// finite-state transducer whose output depends on the current state and
// the current input letter.
//
// The machine is stored as an arena: states live in a dense slice and
// transitions address their destination by StateID, so there are no
// pointer cycles and no aliasing by name. The initial state is index 0
// by convention. State names are metadata kept for rendering only.
//
// Determinism is enforced structurally: at most one transition per
// (state, input letter). Traversal (Walk / Play) is total only when the
// machine defines a transition for every letter it meets; a missing
// transition surfaces as ErrMissingTransition.
//
// Complexity:
//
//	– AddState, AddTransition:  O(1) amortized (O(d) duplicate scan,
//	  d = out-degree of the source state)
//	– Step:                     O(d)
//	– Walk / Play:              O(|word| · d)
//	– WriteDOT:                 O(states + transitions)
package mealy
