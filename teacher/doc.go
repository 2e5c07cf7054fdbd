// Package teacher implements the membership-oracle side of active
// learning: the black-box target under test and the knowledge base that
// resolves input words against it.
//
// A Target is stepped one letter at a time after a Reset, mirroring how
// a reactive system is actually driven. The KnowledgeBase fans a
// membership query out as letters, assembles the output word, and
// memoizes the result, so the same input word always yields the same
// output word within a session. Resolved words are cross-checked
// against every cached prefix; a mismatch means the target is not
// deterministic and the session aborts with ErrInconsistent.
//
// Start/Stop mark the target's lifecycle. The learner never calls
// them — the caller owns acquisition and release:
//
//	kb, err := teacher.NewKnowledgeBase(target)
//	if err != nil { ... }
//	if err := kb.Start(); err != nil { ... }
//	defer kb.Stop()
//
// Three targets ship with the package: MachineTarget replays a
// mealy.Machine (tests, round-trip learning), StepTarget adapts a pair
// of closures (in-process fixtures), and NetTarget drives a remote
// process over a line-framed TCP socket.
package teacher
