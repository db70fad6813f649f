// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"sizecheck/internal/checker"
	"sizecheck/internal/diag"
	"sizecheck/internal/elaborate"
	"sizecheck/internal/parser"
	"sizecheck/internal/reduce"
	"sizecheck/internal/registry"
	"sizecheck/internal/term"
)

// main is a minimal demo entry point, mirroring the teacher's root
// main.go: parse a single .sz file, elaborate it, and report the
// termination verdict for every mutual block found. cmd/sizecheck-cli
// is the full CLI (check/parse modes, -json/-quiet/-color flags);
// this is the one-file quick-look path.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: sizecheck <file.sz>")
		os.Exit(1)
	}

	path := os.Args[1]
	source, err := os.ReadFile(path)
	if err != nil {
		color.Red("failed to read file: %s", err)
		os.Exit(1)
	}

	modules, err := parser.ParseSource(path, string(source))
	if err != nil {
		// grammar.Parse already printed a caret-style syntax error.
		os.Exit(1)
	}

	prog, err := elaborate.Elaborate(modules)
	if err != nil {
		if ce, ok := err.(diag.CompilerError); ok {
			fmt.Fprint(os.Stderr, diag.NewReporter(path, string(source)).Format(ce))
		} else {
			color.Red("%s", err)
		}
		os.Exit(1)
	}
	prog.SetReducer(reduce.Normalize)

	exitCode := checkAndReport(prog)
	os.Exit(exitCode)
}

// checkAndReport runs the termination checker over every mutual block in
// prog, printing one line per block, and returns 1 if any block fails.
func checkAndReport(prog *registry.Program) int {
	blocks := prog.Blocks()
	if len(blocks) == 0 {
		fmt.Println("(no function clauses to check)")
		return 0
	}

	exitCode := 0
	for _, block := range blocks {
		verdict, err := checker.TerminationCheck(block, prog)
		if err != nil {
			color.Red("%s", err)
			exitCode = 1
			continue
		}
		switch v := verdict.(type) {
		case checker.Ok:
			color.Green("Ok: %s terminates", blockNames(block.Members))
		case checker.Failed:
			exitCode = 1
			color.Red("Failed: %s may not terminate", blockNames(block.Members))
			for _, loop := range v.Loops {
				color.HiRed("  %s: no strictly-decreasing self-call found in its recursive block", loop.Name.Text())
			}
		}
	}
	return exitCode
}

func blockNames(members []term.Name) string {
	out := ""
	for i, m := range members {
		if i > 0 {
			out += ", "
		}
		out += m.Text()
	}
	return out
}
