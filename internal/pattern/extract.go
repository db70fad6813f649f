package pattern

import (
	"sizecheck/internal/diag"
	"sizecheck/internal/term"
)

// Extract builds a clause's pattern vector from its head patterns and
// body, per section 4.5. It consumes the head left to right while
// consuming the body's binder structure in lockstep, assigning each VarP
// the de Bruijn level it has at the point its binder is introduced.
//
// When the body is (or becomes, part way through) NoBody, the clause is
// absurd and Extract returns absurd=true with no usable right-hand side —
// per spec this yields "no calls", not an error.
//
// On success, Extract returns a pattern vector the same length as heads,
// with every PVar level converted to an index relative to the outermost
// body via i ↦ (n−1)−i, plus the unwrapped right-hand-side term.
func Extract(heads []Source, body Body) (patterns []DeBruijn, rhs term.Term, absurd bool, err error) {
	st := &extractor{body: body}
	if _, ok := body.(NoBody); ok {
		st.absurd = true
	}

	patterns = make([]DeBruijn, len(heads))
	for i, h := range heads {
		d, extractErr := st.one(h)
		if extractErr != nil {
			return nil, nil, false, extractErr
		}
		patterns[i] = d
	}

	if st.absurd {
		return patterns, nil, true, nil
	}

	real, ok := st.body.(RealBody)
	if !ok {
		return nil, nil, false, impossibleMoreBinders()
	}

	n := st.level
	converted := make([]DeBruijn, len(patterns))
	for i, p := range patterns {
		converted[i] = convertLevels(p, n)
	}
	return converted, real.Term, false, nil
}

type extractor struct {
	level  int
	body   Body
	absurd bool
}

func (st *extractor) one(p Source) (DeBruijn, error) {
	if st.absurd {
		return PUnused{}, nil
	}

	switch sp := p.(type) {
	case VarP:
		switch b := st.body.(type) {
		case Bind:
			lvl := st.level
			st.level++
			st.body = b.Inner
			return PVar{Index: lvl}, nil
		case NoBind:
			st.body = b.Inner
			return PUnused{}, nil
		case NoBody:
			st.absurd = true
			return PUnused{}, nil
		case RealBody:
			return nil, impossibleMoreBinders()
		default:
			return nil, impossibleMoreBinders()
		}

	case LitP:
		if _, ok := st.body.(NoBody); ok {
			st.absurd = true
		}
		return PLit{Value: sp.Value}, nil

	case ConP:
		if _, ok := st.body.(NoBody); ok {
			st.absurd = true
		}
		subs := make([]DeBruijn, len(sp.Args))
		for i, a := range sp.Args {
			d, err := st.one(a)
			if err != nil {
				return nil, err
			}
			subs[i] = d
		}
		return PCon{Con: sp.Con, Args: subs}, nil

	default:
		return nil, impossibleMoreBinders()
	}
}

func impossibleMoreBinders() error {
	return diag.NewImpossible(diag.ICodeMoreHeadVarsThanRHS, "clause head has more variable patterns than the body has binders for")
}

// convertLevels maps every PVar level i to the de Bruijn index (n-1)-i,
// where n is the total number of binders the head consumed. An empty head
// (n == 0) performs no conversion, avoiding the only subtraction in this
// algorithm from ever underflowing — consistent with the design note that
// no PVar can exist when n == 0.
func convertLevels(p DeBruijn, n int) DeBruijn {
	switch v := p.(type) {
	case PVar:
		return PVar{Index: (n - 1) - v.Index}
	case PCon:
		args := make([]DeBruijn, len(v.Args))
		for i, a := range v.Args {
			args[i] = convertLevels(a, n)
		}
		return PCon{Con: v.Con, Args: args}
	default:
		return p
	}
}
