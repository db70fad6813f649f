package ast

// Module is a parsed .sz module: a name, its data declarations, and its
// function clauses (possibly several clauses sharing one name).
type Module struct {
	Pos, EndPos Position
	Name        string
	Datas       []*DataDecl
	Clauses     []*FuncClause
}

func (m *Module) NodePos() Position    { return m.Pos }
func (m *Module) NodeEndPos() Position { return m.EndPos }

// DataDecl declares one constructor family and its members' arities.
type DataDecl struct {
	Pos, EndPos  Position
	Name         string
	Constructors []ConDecl
}

func (d *DataDecl) NodePos() Position    { return d.Pos }
func (d *DataDecl) NodeEndPos() Position { return d.EndPos }

// ConDecl names one constructor and its fixed arity.
type ConDecl struct {
	Pos, EndPos Position
	Name        string
	Arity       int
}

// FuncClause is one clause of a function: its head patterns and body.
// Clauses sharing a Name belong to the same function definition; grouping
// them is the elaborator's job, not this type's.
type FuncClause struct {
	Pos, EndPos Position
	Name        string
	Heads       []Pattern
	Body        Expr
}

func (c *FuncClause) NodePos() Position    { return c.Pos }
func (c *FuncClause) NodeEndPos() Position { return c.EndPos }
