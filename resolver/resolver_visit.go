/*
File    : gomix-core/resolver/resolver_visit.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver

import "github.com/akashmaji946/gomix-core/parser"

func (r *Resolver) resolveStmt(stmt parser.Stmt) {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		r.resolveExpr(s.Expression)
	case *parser.PrintStmt:
		r.resolveExpr(s.Expression)
	case *parser.VarStmt:
		r.declare(s.Name.Lexeme, s.Name.Line)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name.Lexeme)
	case *parser.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()
	case *parser.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}
	case *parser.WhileStmt:
		r.resolveExpr(s.Condition)
		r.loopDepth++
		r.resolveStmt(s.Body)
		if s.Increment != nil {
			r.resolveExpr(s.Increment)
		}
		r.loopDepth--
	case *parser.FunctionStmt:
		r.declare(s.Name.Lexeme, s.Name.Line)
		r.define(s.Name.Lexeme)
		r.resolveFunction(s.Params, s.Body, inFunction)
	case *parser.ReturnStmt:
		if r.currentFunction == noFunction {
			r.reporter.ErrorAt(s.Keyword.Line, s.Keyword.Lexeme, false, "Can't return from top-level code.")
		}
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}
	case *parser.BreakStmt:
		if r.loopDepth == 0 {
			r.reporter.ErrorAt(s.Keyword.Line, s.Keyword.Lexeme, false, "Can't use 'break' outside of a loop.")
		}
	case *parser.ContinueStmt:
		if r.loopDepth == 0 {
			r.reporter.ErrorAt(s.Keyword.Line, s.Keyword.Lexeme, false, "Can't use 'continue' outside of a loop.")
		}
	}
}

func (r *Resolver) resolveExpr(expr parser.Expr) {
	switch e := expr.(type) {
	case *parser.VariableExpr:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.reporter.ErrorAt(e.Name.Line, e.Name.Lexeme, false, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name.Lexeme)
	case *parser.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name.Lexeme)
	case *parser.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *parser.LogicExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *parser.UnaryExpr:
		r.resolveExpr(e.Right)
	case *parser.GroupingExpr:
		r.resolveExpr(e.Expression)
	case *parser.LiteralExpr:
		// terminal
	case *parser.CallExpr:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}
	case *parser.ArrayExpr:
		for _, el := range e.Elements {
			r.resolveExpr(el)
		}
	case *parser.DictionaryExpr:
		for _, p := range e.Pairs {
			r.resolveExpr(p)
		}
	case *parser.SubscriptExpr:
		r.resolveExpr(e.Object)
		r.resolveExpr(e.Index)
	case *parser.SubscriptAssignExpr:
		r.resolveExpr(e.Object)
		r.resolveExpr(e.Index)
		r.resolveExpr(e.Value)
	case *parser.LambdaExpr:
		r.resolveFunction(e.Params, e.Body, inFunction)
	}
}
