package lstar

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lstar/mealy"
	"github.com/katalvlaran/lstar/oracle"
	"github.com/katalvlaran/lstar/teacher"
	"github.com/katalvlaran/lstar/word"
)

// Learner runs the L* loop against a teacher until an equivalence
// oracle accepts the hypothesis.
type Learner struct {
	alphabet  []word.Letter
	teach     teacher.Teacher
	maxStates int
	opts      Options
}

// New builds a learner for the given input alphabet, teacher, and
// claimed bound on the target's state count. The equivalence strategy
// defaults to the W-method under the same bound; override it with
// WithOracle.
func New(alphabet []word.Letter, teach teacher.Teacher, maxStates int, opts ...Option) (*Learner, error) {
	if err := validateAlphabet(alphabet); err != nil {
		return nil, err
	}
	if teach == nil {
		return nil, ErrNilTeacher
	}
	if maxStates < 1 {
		return nil, ErrBadStateBound
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Oracle == nil {
		wm, err := oracle.NewWMethod(maxStates)
		if err != nil {
			return nil, err
		}
		o.Oracle = wm
	}

	return &Learner{
		alphabet:  append([]word.Letter(nil), alphabet...),
		teach:     teach,
		maxStates: maxStates,
		opts:      o,
	}, nil
}

// ctxTeacher guards every membership query with a cancellation check.
type ctxTeacher struct {
	ctx   context.Context
	inner teacher.Teacher
}

func (c ctxTeacher) Query(w word.Word) (word.Word, error) {
	if err := c.ctx.Err(); err != nil {
		return word.Word{}, err
	}
	return c.inner.Query(w)
}

// Learn runs L* to the fixpoint and returns the learned machine.
//
// The loop: close the table, make it consistent (rechecking closure
// after every repair), synthesize a hypothesis, reject it if it
// exceeds the state bound, ask the oracle, and integrate the
// counter-example. Each genuine counter-example adds at least one
// distinct row, so a target within the bound terminates the loop in at
// most maxStates iterations.
func (l *Learner) Learn() (*mealy.Machine, error) {
	guarded := ctxTeacher{ctx: l.opts.Ctx, inner: l.teach}
	tbl, err := NewTable(l.alphabet, guarded.Query)
	if err != nil {
		return nil, err
	}

	for {
		if err := l.opts.Ctx.Err(); err != nil {
			return nil, err
		}

		if err := l.settle(tbl); err != nil {
			return nil, err
		}

		h, err := tbl.BuildHypothesis()
		if err != nil {
			return nil, err
		}
		if h.NumStates() > l.maxStates {
			return nil, fmt.Errorf("%w: %d states, bound %d", ErrStateBound, h.NumStates(), l.maxStates)
		}
		l.opts.OnHypothesis(h)

		res, err := l.opts.Oracle.Check(h, guarded)
		if err != nil {
			return nil, err
		}
		if res.Equivalent {
			return h, nil
		}

		cex := res.Counterexample
		if err := l.verifyCounterexample(guarded, h, cex); err != nil {
			return nil, err
		}
		l.opts.OnCounterexample(cex)
		if err := tbl.IntegrateCounterexample(cex); err != nil {
			return nil, err
		}
	}
}

// settle drives the table to a closed and consistent state: closure is
// pursued to completion first, and rechecked after every consistency
// repair, since a new column can re-open closure.
func (l *Learner) settle(tbl *Table) error {
	for {
		for {
			w, defect := tbl.ClosureDefect()
			if !defect {
				break
			}
			if err := tbl.Close(w); err != nil {
				return err
			}
		}
		inc, defect := tbl.ConsistencyDefect()
		if !defect {
			return nil
		}
		if err := tbl.MakeConsistent(inc.Input, inc.Suffix); err != nil {
			return err
		}
	}
}

// verifyCounterexample rejects oracle output on which teacher and
// hypothesis in fact agree; integrating such a word could loop forever.
func (l *Learner) verifyCounterexample(teach teacher.Teacher, h *mealy.Machine, cex word.Word) error {
	if cex.Len() == 0 {
		return fmt.Errorf("%w: empty counter-example", ErrOracleMisbehavior)
	}
	want, err := teach.Query(cex)
	if err != nil {
		return err
	}
	got, err := h.Play(cex)
	if err != nil {
		return fmt.Errorf("%w: %v cannot be replayed on the hypothesis: %v", ErrOracleMisbehavior, cex, err)
	}
	if want.Equal(got) {
		return fmt.Errorf("%w: %v yields %v on both machines", ErrOracleMisbehavior, cex, want)
	}
	return nil
}
