// Package compare implements the comparator of section 4.7: comparing one
// recursive call's argument terms against the caller's pattern vector to
// build a CallMatrix.
package compare

import (
	"sizecheck/internal/matrix"
	"sizecheck/internal/order"
	"sizecheck/internal/pattern"
	"sizecheck/internal/term"
)

// Args builds the rows=|args|, cols=|p| matrix whose entry (r, c) is
// Term(args[r], p[c]). The arguments' own argument spines (for Var/Con/Def
// heads) are ignored here — only the walker inspects them, to find nested
// recursive calls.
func Args(p []pattern.DeBruijn, args []term.Term) matrix.Matrix {
	return matrix.Make(len(args), len(p), func(r, c int) order.Order {
		return Term(args[r], p[c])
	})
}

// Term compares one call argument against one caller pattern, per the
// seven cases of section 4.7.
func Term(t term.Term, p pattern.DeBruijn) order.Order {
	switch pp := p.(type) {
	case pattern.PVar:
		return compareAgainstPVar(t, pp)
	case pattern.PLit:
		return compareAgainstPLit(t, pp)
	case pattern.PCon:
		return compareAgainstPCon(t, pp)
	case pattern.PUnused:
		return order.UNK
	default:
		return order.UNK
	}
}

func compareAgainstPVar(t term.Term, p pattern.PVar) order.Order {
	v, ok := t.(term.Var)
	if !ok {
		return order.UNK
	}
	if v.Index == p.Index {
		return order.LE
	}
	return order.UNK
}

func compareAgainstPLit(t term.Term, p pattern.PLit) order.Order {
	lit, ok := t.(term.Lit)
	if !ok {
		return order.UNK
	}
	if lit.Value.Equal(p.Value) {
		return order.LE
	}
	return order.UNK
}

func compareAgainstPCon(t term.Term, p pattern.PCon) order.Order {
	switch v := t.(type) {
	case term.Var:
		// Any variable appearing inside a constructor pattern is strictly
		// smaller than the whole pattern: compose with LT, taking the
		// weakest (max) relation the variable has to any one sub-pattern.
		worst := order.LT
		for _, sub := range p.Args {
			worst = order.Max(worst, Term(v, sub))
		}
		return order.Compose(order.LT, worst)
	case term.Con:
		if v.Name != p.Con || len(v.Args) != len(p.Args) {
			return order.UNK
		}
		// order.UNK is Min's identity (min(a, UNK) = a), so folding from
		// UNK makes a nonempty component list's result exactly the min
		// across those components, matching section 4.7's formula.
		acc := order.UNK
		for i := range v.Args {
			acc = order.Min(acc, Term(v.Args[i], p.Args[i]))
		}
		return acc
	default:
		return order.UNK
	}
}
