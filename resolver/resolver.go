/*
File    : gomix-core/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package resolver performs a static lexical-scope pass over the AST,
producing a ResolutionMap consumed by the evaluator: for every Variable
or Assign node that refers to a non-global binding, the number of
environment hops from the evaluator's current frame at that use site to
the frame declaring the name. The resolver does not mutate the AST and
does not evaluate anything; it only walks scopes.
*/
package resolver

import (
	"github.com/akashmaji946/gomix-core/lexer"
	"github.com/akashmaji946/gomix-core/parser"
	"github.com/akashmaji946/gomix-core/report"
)

// ResolutionMap maps a Variable/Assign expression node to its lexical
// depth. A node absent from the map refers to a global.
type ResolutionMap map[parser.Expr]int

type functionKind int

const (
	noFunction functionKind = iota
	inFunction
)

// Resolver walks the AST maintaining a stack of block scopes. Each scope
// maps a name to whether it has finished being declared (false between
// "declare" and "define", used to reject self-referencing initializers
// like `var a = a;`).
type Resolver struct {
	scopes          []map[string]bool
	resolutions     ResolutionMap
	currentFunction functionKind
	loopDepth       int
	reporter        *report.Reporter
}

// New creates a Resolver reporting static errors through rep.
func New(rep *report.Reporter) *Resolver {
	return &Resolver{resolutions: make(ResolutionMap), reporter: rep}
}

// Resolve walks the whole program and returns the completed
// ResolutionMap. Check Reporter.HadError afterward before evaluating.
func (r *Resolver) Resolve(stmts []parser.Stmt) ResolutionMap {
	r.resolveStmts(stmts)
	return r.resolutions
}

func (r *Resolver) resolveStmts(stmts []parser.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name string, line int) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, exists := scope[name]; exists {
		r.reporter.ErrorAt(line, name, false, "Already a variable with this name in this scope.")
	}
	scope[name] = false
}

func (r *Resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

// resolveLocal records depth for expr if name is bound in any enclosing
// scope, searching innermost-first and terminating at the first match
// (fixing the source bug of continuing to the outermost match).
func (r *Resolver) resolveLocal(expr parser.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.resolutions[expr] = len(r.scopes) - 1 - i
			return
		}
	}
	// not found in any local scope: treat as global, no entry recorded.
}

func (r *Resolver) resolveFunction(params []lexer.Token, body []parser.Stmt, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind
	r.beginScope()
	for _, p := range params {
		r.declare(p.Lexeme, p.Line)
		r.define(p.Lexeme)
	}
	r.resolveStmts(body)
	r.endScope()
	r.currentFunction = enclosingFunction
}
