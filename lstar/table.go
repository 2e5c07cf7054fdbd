package lstar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lstar/mealy"
	"github.com/katalvlaran/lstar/word"
)

// cellRef addresses one cell by the canonical keys of its row word and
// column suffix.
type cellRef struct {
	row string
	col string
}

// Table is the L* observation table.
//
// Rows are indexed by the access sequences S (prefix-closed, ε first)
// and the frontier SA = { s·a | s ∈ S, a ∈ Σ } \ S; columns by the
// experiments E (suffix-closed, single letters at start, never ε).
// Cell (u, e) holds the last |e| letters of the teacher's answer on
// u·e. Every mutator refills the affected cells, so the mapping is
// total over (S ∪ SA) × E whenever the table is examined.
type Table struct {
	alphabet []word.Letter
	query    QueryFunc

	access   []word.Word // S, insertion order, ε first
	frontier []word.Word // SA, insertion order
	suffixes []word.Word // E, insertion order

	inS  map[string]struct{}
	inSA map[string]struct{}
	inE  map[string]struct{}

	cells map[cellRef]word.Word
}

// NewTable initializes an observation table for the alphabet:
// S = {ε}, E = the single-letter suffixes, T filled by membership
// queries for every (row, column) pair.
func NewTable(alphabet []word.Letter, query QueryFunc) (*Table, error) {
	if err := validateAlphabet(alphabet); err != nil {
		return nil, err
	}
	if query == nil {
		return nil, ErrNilQuery
	}

	t := &Table{
		alphabet: append([]word.Letter(nil), alphabet...),
		query:    query,
		inS:      make(map[string]struct{}),
		inSA:     make(map[string]struct{}),
		inE:      make(map[string]struct{}),
		cells:    make(map[cellRef]word.Word),
	}
	for _, a := range alphabet {
		e := word.New(a)
		t.suffixes = append(t.suffixes, e)
		t.inE[e.Key()] = struct{}{}
	}

	eps := word.Epsilon()
	t.access = append(t.access, eps)
	t.inS[eps.Key()] = struct{}{}
	if err := t.fillRow(eps); err != nil {
		return nil, err
	}
	if err := t.repairFrontier(); err != nil {
		return nil, err
	}
	return t, nil
}

// Alphabet returns a copy of the input alphabet.
func (t *Table) Alphabet() []word.Letter {
	return append([]word.Letter(nil), t.alphabet...)
}

// Access returns a copy of S in insertion order.
func (t *Table) Access() []word.Word {
	return append([]word.Word(nil), t.access...)
}

// Frontier returns a copy of SA in insertion order.
func (t *Table) Frontier() []word.Word {
	return append([]word.Word(nil), t.frontier...)
}

// Suffixes returns a copy of E in insertion order.
func (t *Table) Suffixes() []word.Word {
	return append([]word.Word(nil), t.suffixes...)
}

// Cell returns T[u, e] and whether it is present.
func (t *Table) Cell(u, e word.Word) (word.Word, bool) {
	out, ok := t.cells[cellRef{row: u.Key(), col: e.Key()}]
	return out, ok
}

// ClosureDefect returns a frontier word whose row matches no row of S,
// and true when such a defect exists.
func (t *Table) ClosureDefect() (word.Word, bool) {
	rows := make(map[string]struct{}, len(t.access))
	for _, s := range t.access {
		rows[t.rowKey(s)] = struct{}{}
	}
	for _, f := range t.frontier {
		if _, ok := rows[t.rowKey(f)]; !ok {
			return f, true
		}
	}
	return word.Word{}, false
}

// Close moves the frontier word u into S and extends the frontier with
// its one-letter extensions, filling the new cells.
func (t *Table) Close(u word.Word) error {
	key := u.Key()
	if _, ok := t.inSA[key]; !ok {
		return fmt.Errorf("%w: %v", ErrNotFrontier, u)
	}
	t.removeFrontier(key)
	t.access = append(t.access, u)
	t.inS[key] = struct{}{}
	return t.repairFrontier()
}

// ConsistencyDefect returns a witness (s₁, s₂, a, e) of two equal rows
// in S whose a-extensions disagree on suffix e, and true when such a
// defect exists.
func (t *Table) ConsistencyDefect() (Inconsistency, bool) {
	for i := 0; i < len(t.access); i++ {
		for j := i + 1; j < len(t.access); j++ {
			s1, s2 := t.access[i], t.access[j]
			if t.rowKey(s1) != t.rowKey(s2) {
				continue
			}
			for _, a := range t.alphabet {
				u1, u2 := s1.Append(a), s2.Append(a)
				for _, e := range t.suffixes {
					c1 := t.cells[cellRef{row: u1.Key(), col: e.Key()}]
					c2 := t.cells[cellRef{row: u2.Key(), col: e.Key()}]
					if !c1.Equal(c2) {
						return Inconsistency{First: s1, Second: s2, Input: a, Suffix: e}, true
					}
				}
			}
		}
	}
	return Inconsistency{}, false
}

// MakeConsistent extends E with the suffix a·e (suffix-closed, since e
// is already an experiment) and fills the new column.
func (t *Table) MakeConsistent(a word.Letter, e word.Word) error {
	if a.IsEmpty() {
		return ErrEmptyLetter
	}
	ne := word.New(a).Concat(e)
	if _, ok := t.inE[ne.Key()]; ok {
		return fmt.Errorf("%w: %v", ErrSuffixExists, ne)
	}
	t.suffixes = append(t.suffixes, ne)
	t.inE[ne.Key()] = struct{}{}
	return t.fillColumn(ne)
}

// IntegrateCounterexample adds every prefix of w to S (Angluin's
// prefix-closure variant), repairs the frontier, and fills the missing
// cells.
func (t *Table) IntegrateCounterexample(w word.Word) error {
	if w.Len() == 0 {
		return ErrEmptyCounterexample
	}
	inAlpha := make(map[word.Letter]struct{}, len(t.alphabet))
	for _, a := range t.alphabet {
		inAlpha[a] = struct{}{}
	}
	for i := 0; i < w.Len(); i++ {
		if _, ok := inAlpha[w.At(i)]; !ok {
			return fmt.Errorf("%w: %v in counter-example %v", ErrUnknownLetter, w.At(i), w)
		}
	}

	for _, p := range w.Prefixes() {
		key := p.Key()
		if _, ok := t.inS[key]; ok {
			continue
		}
		if _, ok := t.inSA[key]; ok {
			t.removeFrontier(key)
		}
		t.access = append(t.access, p)
		t.inS[key] = struct{}{}
		if err := t.fillRow(p); err != nil {
			return err
		}
	}
	return t.repairFrontier()
}

// BuildHypothesis synthesizes the Mealy machine of a closed and
// consistent table: one state per distinct row of S, represented by
// its shortest access sequence, with the class of ε initial.
func (t *Table) BuildHypothesis() (*mealy.Machine, error) {
	if w, defect := t.ClosureDefect(); defect {
		return nil, fmt.Errorf("%w: frontier row %v is unmatched", ErrTableNotReady, w)
	}
	if inc, defect := t.ConsistencyDefect(); defect {
		return nil, fmt.Errorf("%w: rows %v and %v split on %v·%v",
			ErrTableNotReady, inc.First, inc.Second, inc.Input, inc.Suffix)
	}

	// Pick class representatives: shortest S-word per row, insertion
	// order breaking ties; classes ordered by first appearance, so the
	// class of ε is state 0.
	classOf := make(map[string]int)
	var reps []word.Word
	for _, s := range t.access {
		rk := t.rowKey(s)
		idx, ok := classOf[rk]
		if !ok {
			classOf[rk] = len(reps)
			reps = append(reps, s)
			continue
		}
		if s.Len() < reps[idx].Len() {
			reps[idx] = s
		}
	}

	m := mealy.New()
	for _, rep := range reps {
		if _, err := m.AddState(rep.String()); err != nil {
			return nil, fmt.Errorf("lstar: hypothesis state %v: %w", rep, err)
		}
	}
	for id, rep := range reps {
		for _, a := range t.alphabet {
			out, ok := t.cells[cellRef{row: rep.Key(), col: word.New(a).Key()}]
			if !ok || out.Len() != 1 {
				return nil, fmt.Errorf("%w: missing output cell (%v, %v)", ErrTableNotReady, rep, a)
			}
			destClass, ok := classOf[t.rowKey(rep.Append(a))]
			if !ok {
				return nil, fmt.Errorf("%w: no class for row of %v", ErrTableNotReady, rep.Append(a))
			}
			if err := m.AddTransition(mealy.StateID(id), a, out.At(0), mealy.StateID(destClass)); err != nil {
				return nil, fmt.Errorf("lstar: hypothesis transition (%v, %v): %w", rep, a, err)
			}
		}
	}
	return m, nil
}

// rowKey computes the canonical identity of row u: the length-framed
// concatenation of its output words in E order. Cells are total by
// construction whenever rowKey runs.
func (t *Table) rowKey(u word.Word) string {
	var b strings.Builder
	uk := u.Key()
	for _, e := range t.suffixes {
		k := t.cells[cellRef{row: uk, col: e.Key()}].Key()
		b.WriteString(strconv.Itoa(len(k)))
		b.WriteByte('#')
		b.WriteString(k)
	}
	return b.String()
}

// fillRow issues the membership queries for every missing cell of row u.
func (t *Table) fillRow(u word.Word) error {
	uk := u.Key()
	for _, e := range t.suffixes {
		ref := cellRef{row: uk, col: e.Key()}
		if _, ok := t.cells[ref]; ok {
			continue
		}
		out, err := t.query(u.Concat(e))
		if err != nil {
			return err
		}
		t.cells[ref] = out.Suffix(e.Len())
	}
	return nil
}

// fillColumn issues the membership queries for every missing cell of
// column e across S and SA.
func (t *Table) fillColumn(e word.Word) error {
	for _, u := range t.access {
		if err := t.fillCell(u, e); err != nil {
			return err
		}
	}
	for _, u := range t.frontier {
		if err := t.fillCell(u, e); err != nil {
			return err
		}
	}
	return nil
}

// fillCell resolves one missing cell.
func (t *Table) fillCell(u, e word.Word) error {
	ref := cellRef{row: u.Key(), col: e.Key()}
	if _, ok := t.cells[ref]; ok {
		return nil
	}
	out, err := t.query(u.Concat(e))
	if err != nil {
		return err
	}
	t.cells[ref] = out.Suffix(e.Len())
	return nil
}

// repairFrontier restores SA = { s·a | s ∈ S, a ∈ Σ } \ S, filling the
// rows of any newly added frontier words.
func (t *Table) repairFrontier() error {
	for _, s := range t.access {
		for _, a := range t.alphabet {
			u := s.Append(a)
			key := u.Key()
			if _, ok := t.inS[key]; ok {
				continue
			}
			if _, ok := t.inSA[key]; ok {
				continue
			}
			t.frontier = append(t.frontier, u)
			t.inSA[key] = struct{}{}
			if err := t.fillRow(u); err != nil {
				return err
			}
		}
	}
	return nil
}

// removeFrontier drops the word with the given key from SA.
func (t *Table) removeFrontier(key string) {
	delete(t.inSA, key)
	for i, f := range t.frontier {
		if f.Key() == key {
			t.frontier = append(t.frontier[:i], t.frontier[i+1:]...)
			return
		}
	}
}
