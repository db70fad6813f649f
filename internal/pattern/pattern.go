// Package pattern implements the pattern model of section 4.5: source-form
// patterns extracted from a clause head, de Bruijn patterns with levels
// converted to indices, and lifting under binders.
package pattern

import "sizecheck/internal/term"

// Source is a clause-head pattern as written by the elaborator, before de
// Bruijn conversion: VarP, ConP, LitP.
type Source interface{ isSource() }

type VarP struct{ Name string }

func (VarP) isSource() {}

type ConP struct {
	Con  term.Name
	Args []Source
}

func (ConP) isSource() {}

type LitP struct{ Value term.Literal }

func (LitP) isSource() {}

// Body is a clause's right-hand side paired with the binder structure the
// head still owes it: Body (a real RHS), Bind (one binder, inner body
// shifted), NoBind (unused binder, no index consumed), NoBody (absurd or
// missing RHS).
type Body interface{ isBody() }

type RealBody struct{ Term term.Term }

func (RealBody) isBody() {}

type Bind struct{ Inner Body }

func (Bind) isBody() {}

type NoBind struct{ Inner Body }

func (NoBind) isBody() {}

type NoBody struct{}

func (NoBody) isBody() {}

// DeBruijn is the core's working pattern form: PVar (by index, after the
// one-time level→index conversion), PCon, PLit, PUnused (a head variable
// the body never binds, e.g. an absurd position).
type DeBruijn interface{ isDeBruijn() }

type PVar struct{ Index int }

func (PVar) isDeBruijn() {}

type PCon struct {
	Con  term.Name
	Args []DeBruijn
}

func (PCon) isDeBruijn() {}

type PLit struct{ Value term.Literal }

func (PLit) isDeBruijn() {}

type PUnused struct{}

func (PUnused) isDeBruijn() {}

// Lift adds 1 to every PVar index in p, leaving PLit/PUnused fixed and
// recursing into PCon's sub-patterns. Used each time the walker crosses a
// binder (Lam/Pi body) while traversing a clause's right-hand side.
func Lift(p DeBruijn) DeBruijn {
	switch n := p.(type) {
	case PVar:
		return PVar{Index: n.Index + 1}
	case PCon:
		args := make([]DeBruijn, len(n.Args))
		for i, a := range n.Args {
			args[i] = Lift(a)
		}
		return PCon{Con: n.Con, Args: args}
	case PLit:
		return n
	case PUnused:
		return n
	default:
		return p
	}
}

// LiftVector lifts every pattern in a clause's pattern vector, used when
// the walker descends under a Lam or the body of a Pi.
func LiftVector(ps []DeBruijn) []DeBruijn {
	out := make([]DeBruijn, len(ps))
	for i, p := range ps {
		out[i] = Lift(p)
	}
	return out
}
