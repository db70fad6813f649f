package reduce

import "sizecheck/internal/term"

// SubstituteMeta recursively normalizes the argument spine under every
// Meta it finds. This default oracle never actually solves a
// metavariable (it has no unification state to consult), but an
// unresolved Meta's arguments can still be reduced — keeping them as
// normal as possible is what a real unifier's substitution pass would
// also do before attempting to solve the head.
type SubstituteMeta struct{}

func (*SubstituteMeta) Name() string { return "substitute-meta" }
func (*SubstituteMeta) Description() string {
	return "normalizes argument spines under unresolved metavariables"
}

func (s *SubstituteMeta) Apply(t term.Term) (term.Term, bool) {
	return mapChildren(t, s.Apply)
}

// UnblockResolved eliminates every Blocked wrapper it finds, after fully
// reducing what it wraps. This default oracle has no persistent blocking
// source (no metavariable ever actually fails to resolve), so a Blocked
// term reaching this pass is always provisional: once its Inner term is
// itself reduced, the wrapper no longer serves a purpose and is dropped.
// A host wiring in real unification would instead keep Blocked around
// until its metavariable solves, and might never run this pass at all.
type UnblockResolved struct{}

func (*UnblockResolved) Name() string { return "unblock-resolved" }
func (*UnblockResolved) Description() string {
	return "drops Blocked wrappers once the term they guard is reduced"
}

func (u *UnblockResolved) Apply(t term.Term) (term.Term, bool) {
	if b, ok := t.(term.Blocked); ok {
		inner, _ := u.Apply(b.Inner)
		return inner, true
	}
	return mapChildren(t, u.Apply)
}

// mapChildren rebuilds t with fn applied to each of its immediate
// subterms, reporting whether any subterm actually changed. Leaf shapes
// (Lit, Sort) have no children and are returned unchanged.
func mapChildren(t term.Term, fn func(term.Term) (term.Term, bool)) (term.Term, bool) {
	switch n := t.(type) {
	case term.Var:
		args, changed := mapArgs(n.Args, fn)
		if !changed {
			return t, false
		}
		return term.Var{Index: n.Index, Args: args}, true

	case term.Con:
		args, changed := mapArgs(n.Args, fn)
		if !changed {
			return t, false
		}
		return term.Con{Name: n.Name, Args: args}, true

	case term.Def:
		args, changed := mapArgs(n.Args, fn)
		if !changed {
			return t, false
		}
		return term.Def{Name: n.Name, Args: args}, true

	case term.Meta:
		args, changed := mapArgs(n.Args, fn)
		if !changed {
			return t, false
		}
		return term.Meta{ID: n.ID, Args: args}, true

	case term.Lam:
		body, changed := fn(n.Body)
		if !changed {
			return t, false
		}
		return term.Lam{Body: body}, true

	case term.Pi:
		domain, c1 := fn(n.Domain)
		body, c2 := fn(n.Body)
		if !c1 && !c2 {
			return t, false
		}
		return term.Pi{Domain: domain, Body: body}, true

	case term.Fun:
		domain, c1 := fn(n.Domain)
		codomain, c2 := fn(n.Codomain)
		if !c1 && !c2 {
			return t, false
		}
		return term.Fun{Domain: domain, Codomain: codomain}, true

	case term.Blocked:
		inner, changed := fn(n.Inner)
		if !changed {
			return t, false
		}
		return term.Blocked{Reason: n.Reason, Inner: inner}, true

	default:
		return t, false
	}
}

func mapArgs(args []term.Term, fn func(term.Term) (term.Term, bool)) ([]term.Term, bool) {
	if len(args) == 0 {
		return args, false
	}
	out := make([]term.Term, len(args))
	changed := false
	for i, a := range args {
		r, c := fn(a)
		out[i] = r
		if c {
			changed = true
		}
	}
	if !changed {
		return args, false
	}
	return out, true
}
