package lsp

import (
	"fmt"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"sizecheck/internal/ast"
	"sizecheck/internal/checker"
	"sizecheck/internal/diag"
)

// diagnosticsForError converts a parse or elaboration error into LSP
// diagnostics, the same conversion shape as the teacher's
// ConvertParseErrors/ConvertScanErrors (internal/lsp/diagnostics.go):
// a structured diag.CompilerError carries its own position and message;
// anything else (a plain Go error with no position, e.g. a grammar
// failure surfaced before a CompilerError was built) is reported at the
// top of the file so it is still visible to the editor.
func diagnosticsForError(err error) []protocol.Diagnostic {
	if ce, ok := err.(diag.CompilerError); ok {
		return []protocol.Diagnostic{positionDiagnostic(ce.Position, ce.Length, ce.Message, ce.Code)}
	}
	return []protocol.Diagnostic{positionDiagnostic(ast.Position{Line: 1, Column: 1}, 1, err.Error(), "")}
}

// diagnosticsForVerdict converts a Failed termination verdict into one
// diagnostic per witness position of each failing self-loop, or a single
// diagnostic at the top of the file for a loop with no witness positions.
func diagnosticsForVerdict(v checker.Verdict) []protocol.Diagnostic {
	failed, ok := v.(checker.Failed)
	if !ok {
		return nil
	}

	var out []protocol.Diagnostic
	for _, loop := range failed.Loops {
		message := fmt.Sprintf(
			"%s may not terminate: no self-call in its recursive block is guaranteed to strictly decrease",
			loop.Name.Text(),
		)
		positions := loop.Witness.Positions()
		if len(positions) == 0 {
			out = append(out, positionDiagnostic(ast.Position{Line: 1, Column: 1}, 1, message, diag.TCodeNotTerminating))
			continue
		}
		for _, pos := range positions {
			out = append(out, positionDiagnostic(pos, 1, message, diag.TCodeNotTerminating))
		}
	}
	return out
}

func positionDiagnostic(pos ast.Position, length int, message, code string) protocol.Diagnostic {
	if length < 1 {
		length = 1
	}
	line := uint32(0)
	if pos.Line > 0 {
		line = uint32(pos.Line - 1)
	}
	col := uint32(0)
	if pos.Column > 0 {
		col = uint32(pos.Column - 1)
	}

	if code != "" {
		message = fmt.Sprintf("[%s] %s", code, message)
	}

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: col},
			End:   protocol.Position{Line: line, Character: col + uint32(length)},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("sizecheck"),
		Message:  message,
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity { return &s }

func ptrString(s string) *string { return &s }
