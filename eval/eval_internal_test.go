/*
File    : gomix-core/eval/eval_internal_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

White-box tests that reach into package eval's unexported Evaluator
fields to check the environment-restoration discipline directly,
independent of whether a surrounding program keeps running after an
error.
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/gomix-core/environment"
	"github.com/akashmaji946/gomix-core/lexer"
	"github.com/akashmaji946/gomix-core/objects"
	"github.com/akashmaji946/gomix-core/parser"
	"github.com/akashmaji946/gomix-core/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvaluator() *Evaluator {
	var out bytes.Buffer
	rep := report.New(&out)
	return New(rep, &out)
}

func TestExecuteBlockRestoresEnvironmentOnError(t *testing.T) {
	e := newTestEvaluator()
	before := e.environment

	stmts := []parser.Stmt{
		&parser.VarStmt{Name: tok("x"), Initializer: &parser.LiteralExpr{Value: objects.Number{Value: 2}}},
		&parser.PrintStmt{Expression: &parser.VariableExpr{Name: tok("missing")}},
	}
	_, err := e.executeBlock(stmts, environment.New(e.environment))
	require.Error(t, err)
	assert.Same(t, before, e.environment, "environment must be restored even when a statement errors")
}

func TestExecuteBlockRestoresEnvironmentOnBreakSignal(t *testing.T) {
	e := newTestEvaluator()
	before := e.environment

	stmts := []parser.Stmt{
		&parser.BreakStmt{},
	}
	sig, err := e.executeBlock(stmts, environment.New(e.environment))
	require.NoError(t, err)
	assert.Equal(t, SignalBreak, sig.Kind)
	assert.Same(t, before, e.environment)
}

func TestExecuteBlockRestoresEnvironmentOnNormalCompletion(t *testing.T) {
	e := newTestEvaluator()
	before := e.environment

	stmts := []parser.Stmt{
		&parser.VarStmt{Name: tok("y"), Initializer: &parser.LiteralExpr{Value: objects.Number{Value: 1}}},
	}
	sig, err := e.executeBlock(stmts, environment.New(e.environment))
	require.NoError(t, err)
	assert.Equal(t, SignalNone, sig.Kind)
	assert.Same(t, before, e.environment)

	_, ok := before.Get("y")
	assert.False(t, ok, "a name defined inside the block must not leak into the caller's frame")
}

func tok(lexeme string) lexer.Token {
	return lexer.Token{Type: lexer.IDENTIFIER, Lexeme: lexeme, Line: 1}
}
