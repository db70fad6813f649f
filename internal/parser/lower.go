package parser

import (
	"github.com/alecthomas/participle/v2/lexer"

	"sizecheck/grammar"
	"sizecheck/internal/ast"
)

func lowerProgram(p *grammar.Program) []*ast.Module {
	out := make([]*ast.Module, 0, len(p.Modules))
	for _, m := range p.Modules {
		out = append(out, lowerModule(m))
	}
	return out
}

func lowerModule(m *grammar.Module) *ast.Module {
	datas := make([]*ast.DataDecl, 0, len(m.Datas))
	for _, d := range m.Datas {
		datas = append(datas, lowerData(d))
	}

	var clauses []*ast.FuncClause
	for _, f := range m.Funcs {
		clauses = append(clauses, lowerFunc(f))
	}

	return &ast.Module{
		Pos:     lowerPos(m.Pos),
		EndPos:  lowerPos(m.EndPos),
		Name:    m.Name,
		Datas:   datas,
		Clauses: clauses,
	}
}

func lowerData(d *grammar.DataDecl) *ast.DataDecl {
	cons := make([]ast.ConDecl, 0, len(d.Constructors))
	for _, c := range d.Constructors {
		cons = append(cons, ast.ConDecl{
			Pos:    lowerPos(c.Pos),
			EndPos: lowerPos(c.EndPos),
			Name:   c.Name,
			Arity:  c.Arity,
		})
	}
	return &ast.DataDecl{
		Pos:          lowerPos(d.Pos),
		EndPos:       lowerPos(d.EndPos),
		Name:         d.Name,
		Constructors: cons,
	}
}

func lowerFunc(f *grammar.FuncDecl) *ast.FuncClause {
	heads := make([]ast.Pattern, 0, len(f.Heads))
	for _, h := range f.Heads {
		heads = append(heads, lowerPattern(h))
	}
	return &ast.FuncClause{
		Pos:    lowerPos(f.Pos),
		EndPos: lowerPos(f.EndPos),
		Name:   f.Name,
		Heads:  heads,
		Body:   lowerExpr(f.Body),
	}
}

func lowerPattern(p *grammar.Pattern) ast.Pattern {
	pos, endPos := lowerPos(p.Pos), lowerPos(p.EndPos)
	switch {
	case p.Wildcard:
		return &ast.WildcardPattern{Pos: pos, EndPos: endPos}
	case p.Lit != nil:
		return &ast.LitPattern{Pos: pos, EndPos: endPos, Value: *p.Lit}
	case p.Con != nil:
		args := make([]ast.Pattern, 0, len(p.Con.Args))
		for _, a := range p.Con.Args {
			args = append(args, lowerPattern(a))
		}
		return &ast.IdentPattern{
			Pos:    lowerPos(p.Con.Pos),
			EndPos: lowerPos(p.Con.EndPos),
			Name:   p.Con.Name,
			Args:   args,
		}
	default:
		return &ast.WildcardPattern{Pos: pos, EndPos: endPos}
	}
}

func lowerExpr(e *grammar.Expr) ast.Expr {
	pos, endPos := lowerPos(e.Pos), lowerPos(e.EndPos)
	switch {
	case e.Lit != nil:
		return &ast.LitExpr{Pos: pos, EndPos: endPos, Value: *e.Lit}
	case e.Sub != nil:
		return &ast.ParenExpr{Pos: pos, EndPos: endPos, Inner: lowerExpr(e.Sub)}
	default:
		args := make([]ast.Expr, 0, len(e.Args))
		for _, a := range e.Args {
			args = append(args, lowerExpr(a))
		}
		return &ast.IdentExpr{Pos: pos, EndPos: endPos, Name: e.Head, Args: args}
	}
}

func lowerPos(p lexer.Position) ast.Position {
	return ast.Position{Filename: p.Filename, Line: p.Line, Column: p.Column, Offset: p.Offset}
}
