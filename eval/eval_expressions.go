/*
File    : gomix-core/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"math"

	"github.com/akashmaji946/gomix-core/function"
	"github.com/akashmaji946/gomix-core/lexer"
	"github.com/akashmaji946/gomix-core/objects"
	"github.com/akashmaji946/gomix-core/parser"
)

// Eval evaluates a single expression to a Value, dispatching on its
// concrete AST type.
func (e *Evaluator) Eval(expr parser.Expr) (objects.Value, error) {
	switch ex := expr.(type) {
	case *parser.LiteralExpr:
		return ex.Value, nil

	case *parser.GroupingExpr:
		return e.Eval(ex.Expression)

	case *parser.UnaryExpr:
		return e.evalUnary(ex)

	case *parser.BinaryExpr:
		return e.evalBinary(ex)

	case *parser.LogicExpr:
		return e.evalLogic(ex)

	case *parser.VariableExpr:
		return e.lookupVariable(ex.Name, ex)

	case *parser.AssignExpr:
		return e.evalAssign(ex)

	case *parser.CallExpr:
		return e.evalCall(ex)

	case *parser.ArrayExpr:
		elems := make([]objects.Value, len(ex.Elements))
		for i, el := range ex.Elements {
			v, err := e.Eval(el)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return objects.NewArray(elems), nil

	case *parser.DictionaryExpr:
		dict := objects.NewDictionary()
		for i := 0; i+1 < len(ex.Pairs); i += 2 {
			k, err := e.Eval(ex.Pairs[i])
			if err != nil {
				return nil, err
			}
			v, err := e.Eval(ex.Pairs[i+1])
			if err != nil {
				return nil, err
			}
			if !dict.Put(k, v) {
				return nil, newRuntimeError(ex.Brace, "Dictionary key must be nil, a bool, a number, or a string.")
			}
		}
		return dict, nil

	case *parser.SubscriptExpr:
		return e.evalSubscript(ex)

	case *parser.SubscriptAssignExpr:
		return e.evalSubscriptAssign(ex)

	case *parser.LambdaExpr:
		return function.FromLambda(ex, e.environment), nil
	}
	return nil, newRuntimeError(lexer.Token{}, "ERROR: unhandled expression type")
}

func (e *Evaluator) evalUnary(ex *parser.UnaryExpr) (objects.Value, error) {
	right, err := e.Eval(ex.Right)
	if err != nil {
		return nil, err
	}
	switch ex.Operator.Type {
	case lexer.MINUS:
		n, ok := right.(objects.Number)
		if !ok {
			return nil, newRuntimeError(ex.Operator, "ERROR: operand must be a number")
		}
		return objects.Number{Value: -n.Value}, nil
	case lexer.BANG:
		return objects.Boolean{Value: !objects.Truthy(right)}, nil
	}
	return nil, newRuntimeError(ex.Operator, "ERROR: unknown unary operator")
}

func (e *Evaluator) evalBinary(ex *parser.BinaryExpr) (objects.Value, error) {
	left, err := e.Eval(ex.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(ex.Right)
	if err != nil {
		return nil, err
	}

	switch ex.Operator.Type {
	case lexer.PLUS:
		if ln, ok := left.(objects.Number); ok {
			if rn, ok := right.(objects.Number); ok {
				return objects.Number{Value: ln.Value + rn.Value}, nil
			}
		}
		if ls, ok := left.(objects.String); ok {
			if rs, ok := right.(objects.String); ok {
				return objects.String{Value: ls.Value + rs.Value}, nil
			}
		}
		if la, ok := left.(*objects.Array); ok {
			if ra, ok := right.(*objects.Array); ok {
				out := make([]objects.Value, 0, len(la.Elements)+len(ra.Elements))
				out = append(out, la.Elements...)
				out = append(out, ra.Elements...)
				return objects.NewArray(out), nil
			}
		}
		return nil, newRuntimeError(ex.Operator, "ERROR: operands must be two numbers, two strings, or two arrays")

	case lexer.MINUS:
		ln, rn, err := bothNumbers(left, right, ex.Operator)
		if err != nil {
			return nil, err
		}
		return objects.Number{Value: ln - rn}, nil

	case lexer.STAR:
		ln, rn, err := bothNumbers(left, right, ex.Operator)
		if err != nil {
			return nil, err
		}
		return objects.Number{Value: ln * rn}, nil

	case lexer.SLASH:
		ln, rn, err := bothNumbers(left, right, ex.Operator)
		if err != nil {
			return nil, err
		}
		return objects.Number{Value: ln / rn}, nil

	case lexer.GREATER:
		ln, rn, err := bothNumbers(left, right, ex.Operator)
		if err != nil {
			return nil, err
		}
		return objects.Boolean{Value: ln > rn}, nil

	case lexer.GREATER_EQUAL:
		ln, rn, err := bothNumbers(left, right, ex.Operator)
		if err != nil {
			return nil, err
		}
		return objects.Boolean{Value: ln >= rn}, nil

	case lexer.LESS:
		ln, rn, err := bothNumbers(left, right, ex.Operator)
		if err != nil {
			return nil, err
		}
		return objects.Boolean{Value: ln < rn}, nil

	case lexer.LESS_EQUAL:
		ln, rn, err := bothNumbers(left, right, ex.Operator)
		if err != nil {
			return nil, err
		}
		return objects.Boolean{Value: ln <= rn}, nil

	case lexer.EQUAL_EQUAL:
		ln, rn, err := bothNumbers(left, right, ex.Operator)
		if err != nil {
			return nil, err
		}
		return objects.Boolean{Value: ln == rn}, nil

	case lexer.BANG_EQUAL:
		ln, rn, err := bothNumbers(left, right, ex.Operator)
		if err != nil {
			return nil, err
		}
		return objects.Boolean{Value: ln != rn}, nil
	}
	return nil, newRuntimeError(ex.Operator, "ERROR: unknown binary operator")
}

func bothNumbers(left, right objects.Value, operator lexer.Token) (float64, float64, error) {
	ln, ok := left.(objects.Number)
	if !ok {
		return 0, 0, newRuntimeError(operator, "ERROR: operands must be numbers")
	}
	rn, ok := right.(objects.Number)
	if !ok {
		return 0, 0, newRuntimeError(operator, "ERROR: operands must be numbers")
	}
	return ln.Value, rn.Value, nil
}

// evalLogic implements short-circuit and/or, chaining fully
// left-to-right and always normalizing the result to a Boolean.
func (e *Evaluator) evalLogic(ex *parser.LogicExpr) (objects.Value, error) {
	left, err := e.Eval(ex.Left)
	if err != nil {
		return nil, err
	}
	if ex.Operator.Type == lexer.OR_KEY {
		if objects.Truthy(left) {
			return objects.Boolean{Value: true}, nil
		}
	} else {
		if !objects.Truthy(left) {
			return objects.Boolean{Value: false}, nil
		}
	}
	right, err := e.Eval(ex.Right)
	if err != nil {
		return nil, err
	}
	return objects.Boolean{Value: objects.Truthy(right)}, nil
}

func (e *Evaluator) lookupVariable(name lexer.Token, expr parser.Expr) (objects.Value, error) {
	if distance, ok := e.resolutions[expr]; ok {
		if v, ok := e.environment.Ancestor(distance).Get(name.Lexeme); ok {
			return v, nil
		}
	} else if v, ok := e.globals.Get(name.Lexeme); ok {
		return v, nil
	}
	return nil, newRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}

func (e *Evaluator) evalAssign(ex *parser.AssignExpr) (objects.Value, error) {
	value, err := e.Eval(ex.Value)
	if err != nil {
		return nil, err
	}
	if distance, ok := e.resolutions[ex]; ok {
		e.environment.Ancestor(distance).Define(ex.Name.Lexeme, value)
		return value, nil
	}
	if e.globals.Assign(ex.Name.Lexeme, value) {
		return value, nil
	}
	return nil, newRuntimeError(ex.Name, "Undefined variable '"+ex.Name.Lexeme+"'.")
}

func (e *Evaluator) evalCall(ex *parser.CallExpr) (objects.Value, error) {
	callee, err := e.Eval(ex.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]objects.Value, len(ex.Arguments))
	for i, a := range ex.Arguments {
		v, err := e.Eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	callable, ok := callee.(objects.Callable)
	if !ok {
		return nil, newRuntimeError(ex.Paren, "Can only call functions.")
	}
	if len(args) != callable.Arity() {
		return nil, newRuntimeError(ex.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return e.Call(callable, args)
}

func (e *Evaluator) evalSubscript(ex *parser.SubscriptExpr) (objects.Value, error) {
	obj, err := e.Eval(ex.Object)
	if err != nil {
		return nil, err
	}
	idx, err := e.Eval(ex.Index)
	if err != nil {
		return nil, err
	}
	switch container := obj.(type) {
	case *objects.Array:
		i, ierr := asIndex(idx, ex.Bracket)
		if ierr != nil {
			return nil, ierr
		}
		if i < 0 || i >= len(container.Elements) {
			return nil, newRuntimeError(ex.Bracket, "ERROR: array index out of bounds")
		}
		return container.Elements[i], nil
	case *objects.Dictionary:
		v, ok := container.Get(idx)
		if !ok {
			return nil, newRuntimeError(ex.Bracket, "Dictionary does not contain given key.")
		}
		return v, nil
	}
	return nil, newRuntimeError(ex.Bracket, "ERROR: only arrays and dicts support subscripting")
}

func (e *Evaluator) evalSubscriptAssign(ex *parser.SubscriptAssignExpr) (objects.Value, error) {
	obj, err := e.Eval(ex.Object)
	if err != nil {
		return nil, err
	}
	idx, err := e.Eval(ex.Index)
	if err != nil {
		return nil, err
	}
	value, err := e.Eval(ex.Value)
	if err != nil {
		return nil, err
	}
	switch container := obj.(type) {
	case *objects.Array:
		i, ierr := asIndex(idx, ex.Bracket)
		if ierr != nil {
			return nil, ierr
		}
		if i < 0 || i >= len(container.Elements) {
			return nil, newRuntimeError(ex.Bracket, "ERROR: array index out of bounds")
		}
		container.Elements[i] = value
		return value, nil
	case *objects.Dictionary:
		container.Put(idx, value)
		return value, nil
	}
	return nil, newRuntimeError(ex.Bracket, "ERROR: only arrays and dicts support subscripting")
}

func asIndex(v objects.Value, tok lexer.Token) (int, error) {
	n, ok := v.(objects.Number)
	if !ok || math.Floor(n.Value) != n.Value {
		return 0, newRuntimeError(tok, "ERROR: array index must be a whole number")
	}
	return int(n.Value), nil
}
