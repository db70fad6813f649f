package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// SizeCheckLexer tokenizes the .sz surface syntax, following the teacher's
// stateful-rules convention (grammar/lexer.go's KansoLexer).
var SizeCheckLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"DocComment", `///[^\n]*`, nil},
		{"Comment", `//[^\n]*`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Integer", `[0-9]+`, nil},
		{"Punctuation", `[{}(),;=/]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
