/*
File    : gomix-core/function/function_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package function_test

import (
	"testing"

	"github.com/akashmaji946/gomix-core/environment"
	"github.com/akashmaji946/gomix-core/function"
	"github.com/akashmaji946/gomix-core/lexer"
	"github.com/akashmaji946/gomix-core/objects"
	"github.com/akashmaji946/gomix-core/parser"
	"github.com/stretchr/testify/assert"
)

func TestFromDeclarationNamesAndArity(t *testing.T) {
	decl := &parser.FunctionStmt{
		Name:   lexer.Token{Type: lexer.IDENTIFIER, Lexeme: "add"},
		Params: []lexer.Token{{Type: lexer.IDENTIFIER, Lexeme: "a"}, {Type: lexer.IDENTIFIER, Lexeme: "b"}},
		Body:   nil,
	}
	env := environment.New(nil)
	fn := function.FromDeclaration(decl, env)

	assert.Equal(t, "add", fn.Name())
	assert.Equal(t, 2, fn.Arity())
	assert.Equal(t, "<fn add>", fn.String())
	assert.Equal(t, objects.CallableType, fn.Type())
	assert.Same(t, env, fn.Closure)
}

func TestFromLambdaHasNoNameAndRendersAsAnonymous(t *testing.T) {
	lit := &parser.LambdaExpr{
		Params: []lexer.Token{{Type: lexer.IDENTIFIER, Lexeme: "x"}},
		Body:   nil,
	}
	env := environment.New(nil)
	fn := function.FromLambda(lit, env)

	assert.Equal(t, "", fn.Name())
	assert.Equal(t, 1, fn.Arity())
	assert.Equal(t, "<fn lambda>", fn.String())
}
