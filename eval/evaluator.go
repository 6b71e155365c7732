/*
File    : gomix-core/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package eval is the tree-walking evaluator: it executes a parsed,
resolved statement list against a chain of environments, dispatches
calls (native and user-defined), and enforces the Language's runtime
type checks. Dispatch is a direct type switch over the AST's tagged
variants (see eval_statements.go, eval_expressions.go) rather than a
double-dispatch visitor.
*/
package eval

import (
	"io"

	"github.com/akashmaji946/gomix-core/environment"
	"github.com/akashmaji946/gomix-core/function"
	"github.com/akashmaji946/gomix-core/lexer"
	"github.com/akashmaji946/gomix-core/objects"
	"github.com/akashmaji946/gomix-core/parser"
	"github.com/akashmaji946/gomix-core/report"
	"github.com/akashmaji946/gomix-core/resolver"
	"github.com/akashmaji946/gomix-core/std"
)

// Evaluator holds the long-lived global environment, the current
// environment (which changes as Block/call frames push and pop), and the
// resolver's depth map. One Evaluator persists across an entire REPL
// session so that global bindings survive between inputs.
type Evaluator struct {
	globals     *environment.Environment
	environment *environment.Environment
	resolutions resolver.ResolutionMap
	reporter    *report.Reporter
	out         io.Writer
}

// New creates an Evaluator writing `print` output to out and diagnostics
// through rep, with globals pre-populated from package std's native
// registry.
func New(rep *report.Reporter, out io.Writer) *Evaluator {
	globals := environment.New(nil)
	for _, b := range std.Builtins {
		b := b
		globals.Define(b.Name, &objects.NativeFunction{FnName: b.Name, FnArity: b.Arity, Fn: b.Fn})
	}
	return &Evaluator{globals: globals, environment: globals, resolutions: make(resolver.ResolutionMap), reporter: rep, out: out}
}

// SetResolutions adds the ResolutionMap produced by the resolver for the
// program about to be interpreted to the depths already recorded, so that
// functions declared by an earlier REPL input keep their resolved locals.
func (e *Evaluator) SetResolutions(m resolver.ResolutionMap) {
	for expr, depth := range m {
		e.resolutions[expr] = depth
	}
}

// Interpret executes a top-level statement list. A runtime error aborts
// the remaining statements and is reported once through Reporter.
func (e *Evaluator) Interpret(stmts []parser.Stmt) {
	for _, stmt := range stmts {
		_, err := e.Execute(stmt)
		if err != nil {
			e.reportRuntimeError(err)
			return
		}
	}
}

func (e *Evaluator) reportRuntimeError(err error) {
	if rte, ok := err.(*RuntimeError); ok {
		e.reporter.RuntimeError(rte.Token.Line, rte.Message)
		return
	}
	e.reporter.RuntimeError(0, err.Error())
}

// Call implements objects.Runtime so native higher-order functions
// (map/filter/reduce) can invoke a user Callable without package std or
// package objects depending on package eval.
func (e *Evaluator) Call(callable objects.Callable, args []objects.Value) (objects.Value, error) {
	switch fn := callable.(type) {
	case *objects.NativeFunction:
		return fn.Call(e, args)
	case *function.UserFunction:
		return e.callUserFunction(fn, args)
	default:
		return nil, newRuntimeError(lexer.Token{}, "Can only call functions.")
	}
}

func (e *Evaluator) callUserFunction(fn *function.UserFunction, args []objects.Value) (objects.Value, error) {
	callEnv := environment.New(fn.Closure)
	for i, param := range fn.Params {
		callEnv.Define(param.Lexeme, args[i])
	}
	sig, err := e.executeBlock(fn.Body, callEnv)
	if err != nil {
		return nil, err
	}
	if sig.Kind == SignalReturn {
		return sig.Value, nil
	}
	return objects.Nil{}, nil
}
