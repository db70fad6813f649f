// Package grammar defines the participle grammar for the .sz surface
// syntax: a handful of modules, each declaring data constructors and
// function clauses, following the teacher's tagged-struct-with-participle-
// tags convention (grammar/grammar.go's Program/Module/Function shape) and
// its Pos/EndPos position-capture idiom (grammar/shared.go).
package grammar

import "github.com/alecthomas/participle/v2/lexer"

// Program is the root of a parsed .sz source file.
type Program struct {
	Modules []*Module `@@*`
}

// Module groups a set of data declarations and function clauses under one
// name, mirroring the teacher's Module/"{"..."}"  block shape.
type Module struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Name  string      `"module" @Ident "{"`
	Datas []*DataDecl `@@*`
	Funcs []*FuncDecl `@@*`
	Close string      `"}"`
}

// DataDecl declares one constructor family, e.g. `data Nat { Z/0, S/1 }`.
type DataDecl struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Name         string     `"data" @Ident "{"`
	Constructors []*ConDecl `@@ ( "," @@ )* ","?`
	Close        string     `"}"`
}

// ConDecl names a constructor and its fixed arity.
type ConDecl struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Name  string `@Ident "/"`
	Arity int    `@Integer`
}

// FuncDecl is one clause of a (possibly multi-clause) function definition.
// Clauses sharing a Name are grouped by the elaborator, not the grammar.
type FuncDecl struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Name  string     `@Ident`
	Heads []*Pattern `@@*`
	Body  *Expr      `"=" @@ ";"`
}

// Pattern is a clause head pattern: a wildcard, a literal integer, or an
// identifier optionally applied to sub-patterns. The grammar does not
// distinguish a bare variable from a nullary constructor reference — both
// parse as a ConPattern with a zero-length Args — because that distinction
// needs the declared constructor table, which the grammar does not have.
// The elaborator resolves it (elaborate.lowerPatternInto) by looking the
// name up in the registry: a known constructor name becomes a ConP, any
// other identifier becomes a VarP binding that name.
type Pattern struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Wildcard bool        `(  @"_"`
	Lit      *int        ` | @Integer`
	Con      *ConPattern ` | @@ )`
}

// ConPattern is an identifier applied to a (possibly empty) list of
// sub-patterns, written with parentheses when it has any: `S(x)`, `Z`, `x`.
type ConPattern struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Name string     `@Ident`
	Args []*Pattern `[ "(" @@ ( "," @@ )* ")" ]`
}

// Expr is a clause's right-hand side: an identifier applied to zero or
// more atomic arguments, a literal, or a parenthesized sub-expression.
type Expr struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Lit  *int    `(  @Integer`
	Head string  ` | @Ident`
	Args []*Expr `   [ "(" @@ ( "," @@ )* ")" ]`
	Sub  *Expr   ` | "(" @@ ")" )`
}
