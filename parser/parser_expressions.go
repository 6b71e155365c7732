/*
File    : gomix-core/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/gomix-core/lexer"
	"github.com/akashmaji946/gomix-core/objects"
)

func (p *Parser) expression() Expr {
	return p.assignment()
}

// assignment inspects the parsed left-hand side after the fact: a
// Variable rewrites to Assign, a Subscript to SubscriptAssign; any other
// target is an "Invalid assignment target" diagnostic that is reported
// but does NOT unwind parsing (the already-parsed left expression is
// returned as-is so the caller can keep going).
func (p *Parser) assignment() Expr {
	expr := p.logicOr()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *VariableExpr:
			return &AssignExpr{Name: target.Name, Value: value}
		case *SubscriptExpr:
			return &SubscriptAssignExpr{Object: target.Object, Bracket: target.Bracket, Index: target.Index, Value: value}
		default:
			p.errorAt(equals, "Invalid assignment target.")
			return expr
		}
	}
	return expr
}

func (p *Parser) logicOr() Expr {
	expr := p.logicAnd()
	for p.match(lexer.OR_KEY) {
		operator := p.previous()
		right := p.logicAnd()
		expr = &LogicExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) logicAnd() Expr {
	expr := p.equality()
	for p.match(lexer.AND_KEY) {
		operator := p.previous()
		right := p.equality()
		expr = &LogicExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) equality() Expr {
	expr := p.comparison()
	for p.match(lexer.EQUAL_EQUAL, lexer.BANG_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) comparison() Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) term() Expr {
	expr := p.factor()
	for p.match(lexer.PLUS, lexer.MINUS) {
		operator := p.previous()
		right := p.factor()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) factor() Expr {
	expr := p.unary()
	for p.match(lexer.STAR, lexer.SLASH) {
		operator := p.previous()
		right := p.unary()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) unary() Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		operator := p.previous()
		right := p.unary()
		return &UnaryExpr{Operator: operator, Right: right}
	}
	return p.call()
}

// call parses a primary expression followed by any number of call `(...)`
// and subscript `[...]` suffixes, left to right.
func (p *Parser) call() Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(lexer.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(lexer.LEFT_BRACKET):
			bracket := p.previous()
			index := p.expression()
			p.consume(lexer.RIGHT_BRACKET, "Expect ']' after index.")
			expr = &SubscriptExpr{Object: expr, Bracket: bracket, Index: index}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee Expr) Expr {
	var args []Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= 255 {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	return &CallExpr{Callee: callee, Paren: paren, Arguments: args}
}

func (p *Parser) primary() Expr {
	switch {
	case p.match(lexer.FALSE_KEY):
		return &LiteralExpr{Value: objects.Boolean{Value: false}}
	case p.match(lexer.TRUE_KEY):
		return &LiteralExpr{Value: objects.Boolean{Value: true}}
	case p.match(lexer.NIL_KEY):
		return &LiteralExpr{Value: objects.Nil{}}
	case p.match(lexer.NUMBER):
		return &LiteralExpr{Value: objects.Number{Value: p.previous().Literal.(float64)}}
	case p.match(lexer.STRING):
		return &LiteralExpr{Value: objects.String{Value: p.previous().Literal.(string)}}
	case p.match(lexer.IDENTIFIER):
		return &VariableExpr{Name: p.previous()}
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return &GroupingExpr{Expression: expr}
	case p.match(lexer.LEFT_BRACKET):
		return p.arrayLiteral()
	case p.match(lexer.LEFT_BRACE):
		return p.dictionaryLiteral()
	case p.match(lexer.LAMBDA_KEY):
		return p.lambda()
	}

	tok := p.peek()
	p.errorAt(tok, "Expect expression.")
	panic(parseError{fmt.Errorf("Expect expression.")})
}

func (p *Parser) arrayLiteral() Expr {
	bracket := p.previous()
	var elems []Expr
	if !p.check(lexer.RIGHT_BRACKET) {
		for {
			elems = append(elems, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_BRACKET, "Expect ']' after array elements.")
	return &ArrayExpr{Bracket: bracket, Elements: elems}
}

func (p *Parser) dictionaryLiteral() Expr {
	brace := p.previous()
	var pairs []Expr
	if !p.check(lexer.RIGHT_BRACE) {
		for {
			key := p.expression()
			p.consume(lexer.COLON, "Expect ':' after dictionary key.")
			value := p.expression()
			pairs = append(pairs, key, value)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_BRACE, "Expect '}' after dictionary entries.")
	return &DictionaryExpr{Brace: brace, Pairs: pairs}
}

// lambda parses `lambda (params) => { block }`. The arrow is tokenized
// as two tokens, EQUAL then GREATER, both consumed explicitly here.
func (p *Parser) lambda() Expr {
	keyword := p.previous()
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'lambda'.")
	params := p.parameterList()
	p.consume(lexer.EQUAL, "Expect '=>' after lambda parameters.")
	p.consume(lexer.GREATER, "Expect '=>' after lambda parameters.")
	p.consume(lexer.LEFT_BRACE, "Expect '{' before lambda body.")
	body := p.block()
	return &LambdaExpr{Keyword: keyword, Params: params, Body: body}
}
