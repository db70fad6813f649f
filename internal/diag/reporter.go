package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"sizecheck/internal/ast"
)

// Level is the severity of a CompilerError, mirroring the teacher's
// ErrorLevel (internal/errors/reporter.go).
type Level string

const (
	LevelError Level = "error"
	LevelWarn  Level = "warning"
	LevelNote  Level = "note"
)

// Suggestion is a suggested fix, mirroring the teacher's Suggestion.
type Suggestion struct {
	Message string
}

// CompilerError is a structured, host-facing diagnostic with suggestions
// and context, mirroring the teacher's CompilerError.
type CompilerError struct {
	Level       Level
	Code        string
	Message     string
	Position    ast.Position
	Length      int
	Suggestions []Suggestion
	Notes       []string
}

func (e CompilerError) Error() string {
	return fmt.Sprintf("%s[%s]: %s", e.Level, e.Code, e.Message)
}

// Builder provides the same fluent construction style as the teacher's
// SemanticErrorBuilder.
type Builder struct{ err CompilerError }

func New(level Level, code, message string, pos ast.Position) *Builder {
	return &Builder{err: CompilerError{Level: level, Code: code, Message: message, Position: pos, Length: 1}}
}

func (b *Builder) WithLength(n int) *Builder {
	b.err.Length = n
	return b
}

func (b *Builder) WithSuggestion(msg string) *Builder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: msg})
	return b
}

func (b *Builder) WithNote(note string) *Builder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

func (b *Builder) Build() CompilerError { return b.err }

// Reporter formats CompilerErrors against a source file, Rust-compiler
// style, mirroring the teacher's ErrorReporter.
type Reporter struct {
	filename string
	lines    []string
}

func NewReporter(filename, source string) *Reporter {
	return &Reporter{filename: filename, lines: strings.Split(source, "\n")}
}

func (r *Reporter) levelColor(l Level) func(format string, a ...any) string {
	switch l {
	case LevelError:
		return color.New(color.FgRed, color.Bold).SprintfFunc()
	case LevelWarn:
		return color.New(color.FgYellow, color.Bold).SprintfFunc()
	default:
		return color.New(color.FgCyan, color.Bold).SprintfFunc()
	}
}

// Format renders one CompilerError the way the teacher renders a
// CompilerError: a header line, a `--> file:line:col` location, a source
// snippet with a caret, then notes and suggestions.
func (r *Reporter) Format(e CompilerError) string {
	var out strings.Builder
	levelColor := r.levelColor(e.Level)
	dim := color.New(color.Faint).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	out.WriteString(levelColor("%s[%s]", string(e.Level), e.Code))
	out.WriteString(fmt.Sprintf(": %s\n", bold(e.Message)))
	out.WriteString(fmt.Sprintf("  %s %s:%d:%d\n", dim("-->"), r.filename, e.Position.Line, e.Position.Column))

	if e.Position.Line >= 1 && e.Position.Line <= len(r.lines) {
		line := r.lines[e.Position.Line-1]
		out.WriteString(fmt.Sprintf("%4d %s %s\n", e.Position.Line, dim("|"), line))
		caretCol := e.Position.Column - 1
		if caretCol < 0 {
			caretCol = 0
		}
		caretLen := e.Length
		if caretLen < 1 {
			caretLen = 1
		}
		caret := strings.Repeat(" ", caretCol) + strings.Repeat("^", caretLen)
		out.WriteString(fmt.Sprintf("     %s %s\n", dim("|"), color.RedString(caret)))
	}

	for _, n := range e.Notes {
		out.WriteString(fmt.Sprintf("     %s %s\n", dim("="), n))
	}
	for _, s := range e.Suggestions {
		out.WriteString(fmt.Sprintf("     %s help: %s\n", dim("="), s.Message))
	}
	return out.String()
}
