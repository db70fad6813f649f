package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sizecheck/internal/ast"
	"sizecheck/internal/checker"
	"sizecheck/internal/decide"
	"sizecheck/internal/diag"
	"sizecheck/internal/host"
	"sizecheck/internal/term"
)

func TestDiagnosticsForCompilerError(t *testing.T) {
	ce := diag.New(diag.LevelError, diag.PCodeUndefinedFunction, "undefined function foo",
		ast.Position{Filename: "t.sz", Line: 3, Column: 5}).Build()

	ds := diagnosticsForError(ce)
	require.Len(t, ds, 1)
	assert.EqualValues(t, 2, ds[0].Range.Start.Line)
	assert.EqualValues(t, 4, ds[0].Range.Start.Character)
	assert.Contains(t, ds[0].Message, "undefined function foo")
}

func TestDiagnosticsForPlainError(t *testing.T) {
	ds := diagnosticsForError(assertError{"boom"})
	require.Len(t, ds, 1)
	assert.Contains(t, ds[0].Message, "boom")
}

func TestDiagnosticsForOkVerdictIsEmpty(t *testing.T) {
	ds := diagnosticsForVerdict(checker.Ok{})
	assert.Empty(t, ds)
}

func TestDiagnosticsForFailedVerdictOnePerWitness(t *testing.T) {
	f := term.NewName("f", 1)
	witness := host.NewRangeSet(
		ast.Position{Filename: "t.sz", Line: 1, Column: 1},
		ast.Position{Filename: "t.sz", Line: 2, Column: 1},
	)
	verdict := checker.Failed{
		Names: []term.Name{f},
		Loops: []decide.FailedLoop{{Name: f, Witness: witness}},
	}

	ds := diagnosticsForVerdict(verdict)
	assert.Len(t, ds, 2)
	for _, d := range ds {
		assert.Contains(t, d.Message, "f")
	}
}

type assertError struct{ msg string }

func (e assertError) Error() string { return e.msg }
