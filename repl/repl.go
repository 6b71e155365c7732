/*
File    : gomix-core/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the interpreter.
The REPL provides an interactive environment where users can:
- Enter code line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing capabilities
and integrates with the lexer/parser/resolver/eval pipeline to execute
user input.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/gomix-core/eval"
	"github.com/akashmaji946/gomix-core/lexer"
	"github.com/akashmaji946/gomix-core/parser"
	"github.com/akashmaji946/gomix-core/report"
	"github.com/akashmaji946/gomix-core/resolver"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output.
// - blueColor: Decorative lines and separators
// - redColor: panics recovered while executing a line
// (The banner's version line is printed in yellow through an inline
// color.New(color.FgYellow).)
// - greenColor: Banner and success messages
// - cyanColor: Informational messages and instructions
var (
	blueColor  = color.New(color.FgBlue)
	redColor   = color.New(color.FgRed)
	greenColor = color.New(color.FgGreen)
	cyanColor  = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance. It encapsulates all
// the configuration needed to run an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	color.New(color.FgYellow).Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop: one lex+parse+resolve+evaluate pass
// per line, with a single Evaluator persisting across lines so that
// global bindings survive between inputs. A line's static errors do not
// wedge the session: the Reporter's compile-error flag is reset before
// each line is processed.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	rep := report.New(writer)
	evaluator := eval.New(rep, writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeLine(line, rep, evaluator)
	}
}

// executeLine lexes, parses, resolves, and evaluates a single line of
// input. Each stage's own diagnostics go through rep, already colorless
// text written to the REPL's writer; `print` statements write their
// output the same way. A runtime panic from a misbehaving native is
// still caught here so one bad line can't take down the session.
func (r *Repl) executeLine(line string, rep *report.Reporter, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(rep.Out, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	rep.Reset()

	lx := lexer.New(line, rep)
	tokens := lx.ScanTokens()
	if rep.HadError {
		return
	}

	par := parser.New(tokens, rep)
	stmts := par.Parse()
	if rep.HadError {
		return
	}

	res := resolver.New(rep)
	resolutions := res.Resolve(stmts)
	if rep.HadError {
		return
	}

	evaluator.SetResolutions(resolutions)
	evaluator.Interpret(stmts)
}
