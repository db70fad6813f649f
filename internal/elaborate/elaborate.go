// Package elaborate turns parsed .sz modules into a populated
// registry.Program and a set of host.MutualBlocks, the way the teacher's
// semantic.Analyzer turns a parsed ast.Contract into a validated model
// (internal/semantic/analyzer.go). Elaboration is two-pass, for the same
// reason the teacher's is: a clause's body may call a function declared
// later in the same module (or in a sibling module of the same program),
// so every name must be allocated before any clause body is lowered.
package elaborate

import (
	"fmt"

	"sizecheck/internal/ast"
	"sizecheck/internal/diag"
	"sizecheck/internal/host"
	"sizecheck/internal/pattern"
	"sizecheck/internal/registry"
	"sizecheck/internal/term"
)

// rawClause is one FuncClause together with the function Name pass one
// allocated for it, carried over to pass two.
type rawClause struct {
	fn     term.Name
	clause *ast.FuncClause
}

// Elaborate builds a registry.Program from a set of parsed modules and
// discovers the mutual blocks its functions fall into, recording each
// member's block via registry.SetMutualBlock. It does not install a
// reduction oracle; callers needing one call prog.SetReducer themselves
// (the CLI and REPL wire reduce.Normalize in; tests are free to leave the
// identity default in place).
func Elaborate(modules []*ast.Module) (*registry.Program, error) {
	prog := registry.New()

	raws, err := declare(prog, modules)
	if err != nil {
		return nil, err
	}

	refs := make(map[term.Name]map[term.Name]bool, len(raws))
	for _, r := range raws {
		scope, body, err := lowerClause(prog, r)
		if err != nil {
			return nil, err
		}

		patterns, rhs, absurd, err := pattern.Extract(scope.sources, body)
		if err != nil {
			return nil, err
		}
		rhsTerm := rhs
		if absurd {
			rhsTerm = term.Sort{}
		}

		prog.AddClause(r.fn, host.Clause{Patterns: patterns, Body: rhsTerm})
		prog.AddRange(r.fn, r.clause.Pos)

		if refs[r.fn] == nil {
			refs[r.fn] = make(map[term.Name]bool)
		}
		collectDefRefs(rhsTerm, refs[r.fn])
	}

	for _, block := range stronglyConnected(prog.Functions(), refs) {
		for _, n := range block.Members {
			prog.SetMutualBlock(n, block)
		}
	}

	return prog, nil
}

// declare is pass one: allocate a term.Name for every constructor and
// function, and record every clause's raw AST alongside the function Name
// it belongs to, deferring body lowering to pass two.
func declare(prog *registry.Program, modules []*ast.Module) ([]rawClause, error) {
	var raws []rawClause
	for _, m := range modules {
		for _, d := range m.Datas {
			for _, c := range d.Constructors {
				if _, err := prog.DeclareConstructor(c.Name, c.Arity, c.Pos); err != nil {
					return nil, diag.New(diag.LevelError, diag.PCodeDuplicateFunction, err.Error(), c.Pos).Build()
				}
			}
		}
	}
	for _, m := range modules {
		for _, clause := range m.Clauses {
			fn, err := prog.DeclareFunction(clause.Name)
			if err != nil {
				return nil, diag.New(diag.LevelError, diag.PCodeDuplicateFunction, err.Error(), clause.Pos).Build()
			}
			raws = append(raws, rawClause{fn: fn, clause: clause})
		}
	}
	return raws, nil
}

// collectDefRefs walks a lowered body term collecting every Def name it
// calls, the same shape of walk the walker itself does for call edges but
// untyped by mutual block (that's the whole point: this is what discovers
// the blocks in the first place).
func collectDefRefs(t term.Term, out map[term.Name]bool) {
	switch n := t.(type) {
	case term.Def:
		out[n.Name] = true
		for _, a := range n.Args {
			collectDefRefs(a, out)
		}
	case term.Var:
		for _, a := range n.Args {
			collectDefRefs(a, out)
		}
	case term.Con:
		for _, a := range n.Args {
			collectDefRefs(a, out)
		}
	case term.Lam:
		collectDefRefs(n.Body, out)
	case term.Pi:
		collectDefRefs(n.Domain, out)
		collectDefRefs(n.Body, out)
	case term.Fun:
		collectDefRefs(n.Domain, out)
		collectDefRefs(n.Codomain, out)
	}
}

func errorf(pos ast.Position, code, format string, a ...any) error {
	return diag.New(diag.LevelError, code, fmt.Sprintf(format, a...), pos).Build()
}
