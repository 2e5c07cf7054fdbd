package mealy

import (
	"fmt"
	"io"
	"strings"
)

// WriteDOT renders the machine as Graphviz DOT. The output is
// deterministic: nodes in arena order, edges in transition insertion
// order, so equal machines render byte-identically.
func (m *Machine) WriteDOT(w io.Writer) error {
	if len(m.states) == 0 {
		return ErrNoStates
	}
	if _, err := io.WriteString(w, "digraph {\n\trankdir=LR;\n"); err != nil {
		return err
	}
	for id, s := range m.states {
		shape := "circle"
		if StateID(id) == Initial {
			shape = "doublecircle"
		}
		if _, err := fmt.Fprintf(w, "\t%q [shape=%s];\n", s.name, shape); err != nil {
			return err
		}
	}
	for _, s := range m.states {
		for _, t := range s.transitions {
			label := escapeLabel(t.Input.String() + "/" + t.Output.String())
			if _, err := fmt.Fprintf(w, "\t%q -> %q [label=\"%s\"];\n", s.name, m.states[t.Dest].name, label); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

// DOT renders the machine as a DOT string.
func (m *Machine) DOT() (string, error) {
	var b strings.Builder
	if err := m.WriteDOT(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// escapeLabel protects quotes and backslashes inside a DOT label.
func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
