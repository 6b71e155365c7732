/*
File    : gomix-core/cmd/gomix/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

gomix is the command-line entry point: zero arguments start an
interactive REPL, one argument runs a script file, and anything else is
a usage error.
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/gomix-core/eval"
	"github.com/akashmaji946/gomix-core/lexer"
	"github.com/akashmaji946/gomix-core/parser"
	"github.com/akashmaji946/gomix-core/repl"
	"github.com/akashmaji946/gomix-core/report"
	"github.com/akashmaji946/gomix-core/resolver"
)

const (
	exitSuccess = 0
	exitUsage   = 64
	exitCompile = 65
	exitRuntime = 70
)

const banner = `   ___  ____  __  __ _____  __
  / _ \/ __ \/  |/  /  _/ |/_/
 / ___/ /_/ / /|_/ // />  <
/_/   \____/_/  /_/___/_/|_|`

func main() {
	switch len(os.Args) {
	case 1:
		r := repl.NewRepl(banner, "0.1.0", "Akash Maji", "------------------------------------------", "MIT", "gomix >>> ")
		r.Start(os.Stdin, os.Stdout)
		os.Exit(exitSuccess)
	case 2:
		os.Exit(runFile(os.Args[1]))
	default:
		fmt.Fprintln(os.Stderr, "Usage: gomix [script]")
		os.Exit(exitUsage)
	}
}

// runFile reads source from path and runs it start to finish, reporting
// diagnostics to stderr and returning 0 on success, 64 if the file cannot
// be read, 65 on a lex/parse/resolve error, or 70 if the program ran but
// raised a runtime error.
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read file %q: %v\n", path, err)
		return exitUsage
	}

	rep := report.New(os.Stderr)

	lx := lexer.New(string(source), rep)
	tokens := lx.ScanTokens()
	if rep.HadError {
		return exitCompile
	}

	par := parser.New(tokens, rep)
	stmts := par.Parse()
	if rep.HadError {
		return exitCompile
	}

	res := resolver.New(rep)
	resolutions := res.Resolve(stmts)
	if rep.HadError {
		return exitCompile
	}

	evaluator := eval.New(rep, os.Stdout)
	evaluator.SetResolutions(resolutions)
	evaluator.Interpret(stmts)
	if rep.HadRuntimeError {
		return exitRuntime
	}
	return exitSuccess
}
