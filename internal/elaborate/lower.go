package elaborate

import (
	"strconv"

	"sizecheck/internal/ast"
	"sizecheck/internal/diag"
	"sizecheck/internal/pattern"
	"sizecheck/internal/registry"
	"sizecheck/internal/term"
)

// slotKind is one binder-consumption decision a head pattern makes, in the
// same left-to-right, depth-first order pattern.Extract visits Sources.
type slotKind int

const (
	slotBind slotKind = iota
	slotNoBind
)

// clauseScope is the accumulated result of lowering one clause's head
// patterns: one Source per head (fed straight to pattern.Extract), the
// flattened slot sequence used to build the matching Body chain, and the
// bound variable names in level order, used to resolve identifiers while
// lowering the body expression.
type clauseScope struct {
	sources []pattern.Source
	slots   []slotKind
	names   []string
}

// lowerClause lowers one raw clause's heads and body into a pattern.Source
// vector and a fully built pattern.Body, ready for pattern.Extract.
func lowerClause(prog *registry.Program, r rawClause) (*clauseScope, pattern.Body, error) {
	scope := &clauseScope{}
	for _, h := range r.clause.Heads {
		src, err := lowerPatternInto(prog, h, scope)
		if err != nil {
			return nil, nil, err
		}
		scope.sources = append(scope.sources, src)
	}

	bodyTerm, err := lowerExpr(prog, r.clause.Body, scope.names)
	if err != nil {
		return nil, nil, err
	}

	body := pattern.Body(pattern.RealBody{Term: bodyTerm})
	for i := len(scope.slots) - 1; i >= 0; i-- {
		switch scope.slots[i] {
		case slotBind:
			body = pattern.Bind{Inner: body}
		case slotNoBind:
			body = pattern.NoBind{Inner: body}
		}
	}

	return scope, body, nil
}

// lowerPatternInto lowers one pattern (possibly nested inside a
// constructor pattern) into a pattern.Source, appending every binder slot
// and bound name it introduces to scope in encounter order.
func lowerPatternInto(prog *registry.Program, p ast.Pattern, scope *clauseScope) (pattern.Source, error) {
	switch n := p.(type) {
	case *ast.WildcardPattern:
		scope.slots = append(scope.slots, slotNoBind)
		return pattern.VarP{Name: "_"}, nil

	case *ast.LitPattern:
		return pattern.LitP{Value: term.NewIntLiteral(strconv.Itoa(n.Value))}, nil

	case *ast.IdentPattern:
		if info, ok := prog.LookupConstructor(n.Name); ok {
			if len(n.Args) != info.Arity {
				return nil, errorf(n.Pos, diag.PCodeArityMismatch,
					"constructor %q expects %d argument(s), got %d", n.Name, info.Arity, len(n.Args))
			}
			args := make([]pattern.Source, len(n.Args))
			for i, a := range n.Args {
				src, err := lowerPatternInto(prog, a, scope)
				if err != nil {
					return nil, err
				}
				args[i] = src
			}
			return pattern.ConP{Con: info.Name, Args: args}, nil
		}
		if len(n.Args) > 0 {
			return nil, errorf(n.Pos, diag.PCodeUndefinedCon, "%q is not a declared constructor", n.Name)
		}
		scope.slots = append(scope.slots, slotBind)
		scope.names = append(scope.names, n.Name)
		return pattern.VarP{Name: n.Name}, nil

	default:
		return nil, errorf(p.NodePos(), diag.PCodeSyntax, "unrecognized pattern form")
	}
}

// lowerExpr resolves an expression against the clause's bound-variable
// scope (in level order) and the program's constructor/function tables,
// in that priority order: a bound variable shadows a same-spelled
// constructor or function, matching ordinary lexical scoping.
func lowerExpr(prog *registry.Program, e ast.Expr, names []string) (term.Term, error) {
	switch n := e.(type) {
	case *ast.LitExpr:
		return term.Lit{Value: term.NewIntLiteral(strconv.Itoa(n.Value))}, nil

	case *ast.ParenExpr:
		return lowerExpr(prog, n.Inner, names)

	case *ast.IdentExpr:
		args, err := lowerExprs(prog, n.Args, names)
		if err != nil {
			return nil, err
		}

		if level, ok := lastIndexOf(names, n.Name); ok {
			idx := (len(names) - 1) - level
			return term.Var{Index: idx, Args: args}, nil
		}
		if info, ok := prog.LookupConstructor(n.Name); ok {
			if len(args) != info.Arity {
				return nil, errorf(n.Pos, diag.PCodeArityMismatch,
					"constructor %q expects %d argument(s), got %d", n.Name, info.Arity, len(args))
			}
			return term.Con{Name: info.Name, Args: args}, nil
		}
		if fn, ok := prog.LookupFunction(n.Name); ok {
			return term.Def{Name: fn, Args: args}, nil
		}
		return nil, errorf(n.Pos, diag.PCodeUndefinedFunction, "%q is not a declared function, constructor, or bound variable", n.Name)

	default:
		return nil, errorf(e.NodePos(), diag.PCodeSyntax, "unrecognized expression form")
	}
}

func lowerExprs(prog *registry.Program, es []ast.Expr, names []string) ([]term.Term, error) {
	out := make([]term.Term, len(es))
	for i, a := range es {
		t, err := lowerExpr(prog, a, names)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// lastIndexOf finds name's most recently bound occurrence in names (so a
// shadowing re-bind resolves correctly), returning its level.
func lastIndexOf(names []string, name string) (int, bool) {
	for i := len(names) - 1; i >= 0; i-- {
		if names[i] == name {
			return i, true
		}
	}
	return 0, false
}
