// SPDX-License-Identifier: Apache-2.0
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"sizecheck/internal/checker"
	"sizecheck/internal/diag"
	"sizecheck/internal/elaborate"
	"sizecheck/internal/host"
	"sizecheck/internal/parser"
	"sizecheck/internal/reduce"
)

// blockResult is the -json encoding of one mutual block's verdict.
type blockResult struct {
	Functions    []string `json:"functions"`
	Status       string   `json:"status"`
	FailingCalls []string `json:"failing_calls,omitempty"`
}

func main() {
	jsonOut := flag.Bool("json", false, "emit verdicts as JSON instead of colored text")
	quiet := flag.Bool("quiet", false, "suppress anything but failures")
	noColor := flag.Bool("color", true, "colorize text output (ignored with -json)")
	flag.Usage = usage
	flag.Parse()

	if !*noColor {
		color.NoColor = true
	}

	args := flag.Args()
	if len(args) < 2 {
		usage()
		os.Exit(1)
	}

	mode, path := args[0], args[1]
	switch mode {
	case "parse":
		os.Exit(runParse(path, *quiet))
	case "check":
		os.Exit(runCheck(path, *jsonOut, *quiet))
	default:
		fmt.Fprintf(os.Stderr, "sizecheck: unknown mode %q\n", mode)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: sizecheck-cli [-json] [-quiet] [-color=false] <check|parse> <file.sz>")
}

// runParse only checks the file lexes and parses, the way the teacher's
// root main.go ("Parsed program: ...") confirms a program parses without
// running any further analysis.
func runParse(path string, quiet bool) int {
	source, err := os.ReadFile(path)
	if err != nil {
		color.Red("failed to read %s: %s", path, err)
		return 1
	}

	modules, err := parser.ParseSource(path, string(source))
	if err != nil {
		// grammar.Parse already printed a caret-style syntax error.
		return 1
	}

	if !quiet {
		color.Green("parsed %d module(s) from %s", len(modules), path)
	}
	return 0
}

// runCheck parses, elaborates, and runs the termination checker over
// every discovered mutual block, printing (or JSON-encoding) one verdict
// per block and exiting non-zero if any block fails.
func runCheck(path string, jsonOut, quiet bool) int {
	source, err := os.ReadFile(path)
	if err != nil {
		color.Red("failed to read %s: %s", path, err)
		return 1
	}

	modules, err := parser.ParseSource(path, string(source))
	if err != nil {
		// grammar.Parse already printed a caret-style syntax error.
		return 1
	}

	prog, err := elaborate.Elaborate(modules)
	if err != nil {
		reportError(path, string(source), err)
		return 1
	}
	prog.SetReducer(reduce.Normalize)

	blocks := prog.Blocks()
	if len(blocks) == 0 {
		if !quiet && !jsonOut {
			fmt.Println("(no function clauses to check)")
		}
		return 0
	}

	results := make([]blockResult, 0, len(blocks))
	exitCode := 0
	for _, block := range blocks {
		verdict, err := checker.TerminationCheck(block, prog)
		if err != nil {
			reportError(path, string(source), err)
			exitCode = 1
			continue
		}
		r, failed := toBlockResult(block, verdict)
		if failed {
			exitCode = 1
		}
		results = append(results, r)
	}

	if jsonOut {
		if err := json.NewEncoder(os.Stdout).Encode(results); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return exitCode
	}

	for _, r := range results {
		printResult(r, quiet)
	}
	return exitCode
}

func toBlockResult(block host.MutualBlock, verdict checker.Verdict) (blockResult, bool) {
	names := make([]string, len(block.Members))
	for i, m := range block.Members {
		names[i] = m.Text()
	}
	r := blockResult{Functions: names}

	switch v := verdict.(type) {
	case checker.Ok:
		r.Status = "ok"
		return r, false
	case checker.Failed:
		r.Status = "failed"
		for _, loop := range v.Loops {
			r.FailingCalls = append(r.FailingCalls, loop.Name.Text())
		}
		return r, true
	default:
		return r, false
	}
}

func printResult(r blockResult, quiet bool) {
	if r.Status == "ok" {
		if !quiet {
			color.Green("Ok: %s terminates", joinNames(r.Functions))
		}
		return
	}
	color.Red("Failed: %s may not terminate", joinNames(r.Functions))
	for _, name := range r.FailingCalls {
		color.HiRed("  %s: no strictly-decreasing self-call found in its recursive block", name)
	}
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}

// reportError prints a CompilerError with diag.Reporter's Rust-style
// formatting when possible, falling back to a plain message for errors
// with no associated source position (e.g. a raw participle syntax
// error the parser package hasn't wrapped).
func reportError(path, source string, err error) {
	if ce, ok := err.(diag.CompilerError); ok {
		reporter := diag.NewReporter(path, source)
		fmt.Fprint(os.Stderr, reporter.Format(ce))
		return
	}
	color.Red("%s", err)
}
