package ast

// Expr is the surface-syntax right-hand-side expression: a tagged
// interface following the teacher's ast.Expr convention
// (internal/ast/expr.go's isExpr() marker method).
type Expr interface {
	Node
	isExpr()
}

// LitExpr is an integer literal leaf.
type LitExpr struct {
	Pos, EndPos Position
	Value       int
}

func (e *LitExpr) NodePos() Position    { return e.Pos }
func (e *LitExpr) NodeEndPos() Position { return e.EndPos }
func (*LitExpr) isExpr()                {}

// IdentExpr is an identifier, optionally applied to arguments: a bound
// variable reference (`x`), a constructor application (`S(x)`), or a
// function call (`f(x)`) — elaborate.lowerExpr disambiguates the three
// against the clause's bound variables and the program's declared names.
type IdentExpr struct {
	Pos, EndPos Position
	Name        string
	Args        []Expr
}

func (e *IdentExpr) NodePos() Position    { return e.Pos }
func (e *IdentExpr) NodeEndPos() Position { return e.EndPos }
func (*IdentExpr) isExpr()                {}

// ParenExpr is a parenthesized sub-expression, kept as a distinct node
// only so diagnostics can point at the parens; it carries no semantics of
// its own beyond its Inner expression.
type ParenExpr struct {
	Pos, EndPos Position
	Inner       Expr
}

func (e *ParenExpr) NodePos() Position    { return e.Pos }
func (e *ParenExpr) NodeEndPos() Position { return e.EndPos }
func (*ParenExpr) isExpr()                {}
