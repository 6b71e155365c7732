/*
File    : gomix-core/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package function defines UserFunction, the runtime representation of a
user-declared function or lambda: its declaration (shared, immutable AST)
paired with a strong reference to the environment it closed over. The
actual call dispatch lives in package eval, which is the only place that
needs to execute a function body against the resolver's ResolutionMap.
*/
package function

import (
	"fmt"

	"github.com/akashmaji946/gomix-core/environment"
	"github.com/akashmaji946/gomix-core/lexer"
	"github.com/akashmaji946/gomix-core/objects"
	"github.com/akashmaji946/gomix-core/parser"
)

// UserFunction is a first-class Language function value: parameters and
// body taken straight from the declaring FunctionStmt or LambdaExpr, plus
// Closure, the environment active at the point of declaration. Closure is
// a live pointer, not a snapshot, so mutations the function observes
// after it returns are the same mutations anyone else sees.
type UserFunction struct {
	NameStr string // "" for an anonymous lambda
	Params  []lexer.Token
	Body    []parser.Stmt
	Closure *environment.Environment
}

// FromDeclaration builds a UserFunction for a named `fun` declaration.
func FromDeclaration(decl *parser.FunctionStmt, closure *environment.Environment) *UserFunction {
	return &UserFunction{NameStr: decl.Name.Lexeme, Params: decl.Params, Body: decl.Body, Closure: closure}
}

// FromLambda builds a UserFunction for an anonymous lambda literal.
func FromLambda(lit *parser.LambdaExpr, closure *environment.Environment) *UserFunction {
	return &UserFunction{Params: lit.Params, Body: lit.Body, Closure: closure}
}

func (f *UserFunction) Type() objects.GoMixType { return objects.CallableType }

func (f *UserFunction) String() string {
	if f.NameStr == "" {
		return "<fn lambda>"
	}
	return fmt.Sprintf("<fn %s>", f.NameStr)
}

func (f *UserFunction) Arity() int   { return len(f.Params) }
func (f *UserFunction) Name() string { return f.NameStr }
