// Package parser wraps the participle grammar with the conversion to this
// repo's own ast package, following the teacher's thin internal/parser
// wrapper around grammar.ParseFile/ParseSource.
package parser

import (
	"sizecheck/grammar"
	"sizecheck/internal/ast"
)

// ParseFile reads and parses a .sz file, lowering the participle parse
// tree into ast.Module values.
func ParseFile(path string) ([]*ast.Module, error) {
	program, err := grammar.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return lowerProgram(program), nil
}

// ParseSource parses in-memory .sz source named sourceName, for the REPL
// and LSP (which do not always have a file on disk).
func ParseSource(sourceName, source string) ([]*ast.Module, error) {
	program, err := grammar.Parse(sourceName, source)
	if err != nil {
		return nil, err
	}
	return lowerProgram(program), nil
}
