/*
File    : gomix-core/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/gomix-core/environment"
	"github.com/akashmaji946/gomix-core/function"
	"github.com/akashmaji946/gomix-core/objects"
	"github.com/akashmaji946/gomix-core/parser"
)

// Execute runs a single statement against the evaluator's current
// environment and reports what non-local control transfer, if any,
// resulted.
func (e *Evaluator) Execute(stmt parser.Stmt) (Signal, error) {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		_, err := e.Eval(s.Expression)
		if err != nil {
			return normalSignal, err
		}
		return normalSignal, nil

	case *parser.PrintStmt:
		v, err := e.Eval(s.Expression)
		if err != nil {
			return normalSignal, err
		}
		fmt.Fprintln(e.out, v.String())
		return normalSignal, nil

	case *parser.VarStmt:
		var value objects.Value = objects.Nil{}
		if s.Initializer != nil {
			v, err := e.Eval(s.Initializer)
			if err != nil {
				return normalSignal, err
			}
			value = v
		}
		e.environment.Define(s.Name.Lexeme, value)
		return normalSignal, nil

	case *parser.BlockStmt:
		return e.executeBlock(s.Statements, environment.New(e.environment))

	case *parser.IfStmt:
		cond, err := e.Eval(s.Condition)
		if err != nil {
			return normalSignal, err
		}
		if objects.Truthy(cond) {
			return e.Execute(s.ThenBranch)
		}
		if s.ElseBranch != nil {
			return e.Execute(s.ElseBranch)
		}
		return normalSignal, nil

	case *parser.WhileStmt:
		for {
			cond, err := e.Eval(s.Condition)
			if err != nil {
				return normalSignal, err
			}
			if !objects.Truthy(cond) {
				return normalSignal, nil
			}
			sig, err := e.Execute(s.Body)
			if err != nil {
				return normalSignal, err
			}
			switch sig.Kind {
			case SignalBreak:
				return normalSignal, nil
			case SignalReturn:
				return sig, nil
			}
			// SignalNone and SignalContinue both fall through to the
			// step expression, if any (set only for desugared `for`
			// loops): continue must still advance the loop variable
			// rather than skip straight back to the condition check.
			if s.Increment != nil {
				if _, err := e.Eval(s.Increment); err != nil {
					return normalSignal, err
				}
			}
		}

	case *parser.FunctionStmt:
		fn := function.FromDeclaration(s, e.environment)
		e.environment.Define(s.Name.Lexeme, fn)
		return normalSignal, nil

	case *parser.ReturnStmt:
		var value objects.Value = objects.Nil{}
		if s.Value != nil {
			v, err := e.Eval(s.Value)
			if err != nil {
				return normalSignal, err
			}
			value = v
		}
		return Signal{Kind: SignalReturn, Value: value}, nil

	case *parser.BreakStmt:
		return Signal{Kind: SignalBreak}, nil

	case *parser.ContinueStmt:
		return Signal{Kind: SignalContinue}, nil
	}
	return normalSignal, fmt.Errorf("ERROR: unhandled statement type %T", stmt)
}

// executeBlock runs stmts against env, restoring the evaluator's prior
// environment on every exit path: normal completion, a non-local signal,
// or an error. It stops at the first statement that signals or fails.
func (e *Evaluator) executeBlock(stmts []parser.Stmt, env *environment.Environment) (Signal, error) {
	previous := e.environment
	e.environment = env
	defer func() { e.environment = previous }()

	for _, stmt := range stmts {
		sig, err := e.Execute(stmt)
		if err != nil {
			return normalSignal, err
		}
		if sig.Kind != SignalNone {
			return sig, nil
		}
	}
	return normalSignal, nil
}
