// SPDX-License-Identifier: Apache-2.0
// Package repl is a line-oriented REPL for .sz source, wired to the real
// parser/elaborate/checker pipeline. The teacher ships a repl/repl.go too,
// but it imports a package path ("kanso-lang/lexer") this module does not
// have and cannot build; this is a working replacement in the same
// bufio.Scanner-loop shape.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"sizecheck/internal/checker"
	"sizecheck/internal/elaborate"
	"sizecheck/internal/host"
	"sizecheck/internal/parser"
	"sizecheck/internal/reduce"
)

const prompt = ">> "

// Start reads one clause block at a time from in (terminated by a blank
// line, or EOF), elaborates it as a standalone .sz program, and reports
// each discovered mutual block's termination verdict to out immediately.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, prompt)
		block, ok := readBlock(scanner)
		if !ok {
			return
		}
		if strings.TrimSpace(block) == "" {
			continue
		}
		report(out, block)
	}
}

// readBlock collects lines until a blank line or EOF, returning ok=false
// only when no further input exists at all.
func readBlock(scanner *bufio.Scanner) (string, bool) {
	var lines []string
	any := false
	for scanner.Scan() {
		any = true
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	if !any {
		return "", false
	}
	return strings.Join(lines, "\n"), true
}

func report(out io.Writer, source string) {
	modules, err := parser.ParseSource("<repl>", source)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}

	prog, err := elaborate.Elaborate(modules)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	prog.SetReducer(reduce.Normalize)

	blocks := prog.Blocks()
	if len(blocks) == 0 {
		fmt.Fprintln(out, "(no function clauses to check)")
		return
	}

	for _, block := range blocks {
		verdict, err := checker.TerminationCheck(block, prog)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		printVerdict(out, block, verdict)
	}
}

func printVerdict(out io.Writer, block host.MutualBlock, verdict checker.Verdict) {
	switch v := verdict.(type) {
	case checker.Ok:
		fmt.Fprintf(out, "Ok: %s terminates\n", blockNames(block))
	case checker.Failed:
		fmt.Fprintf(out, "Failed: %s may not terminate\n", blockNames(block))
		for _, loop := range v.Loops {
			fmt.Fprintf(out, "  %s: no strictly-decreasing self-call found in its recursive block\n", loop.Name.Text())
		}
	}
}

func blockNames(block host.MutualBlock) string {
	names := make([]string, len(block.Members))
	for i, n := range block.Members {
		names[i] = n.Text()
	}
	return strings.Join(names, ", ")
}
