package interpreter

import (
	"github.com/niinpatel/lox-interpreter/internal/ast"
	"github.com/niinpatel/lox-interpreter/internal/token"
	"github.com/niinpatel/lox-interpreter/internal/value"
)

// evalUnary implements spec.md §4.4's unary operators: `-` requires a
// number, `!` applies truthiness and always returns a Bool.
func (in *Interpreter) evalUnary(n *ast.Unary) (value.Value, error) {
	operand, err := in.eval(n.Operand)
	if err != nil {
		return nil, err
	}

	switch n.Op.Kind {
	case token.Minus:
		num, ok := operand.(value.Number)
		if !ok {
			return nil, in.typeError(n.Op.Line, "Operand must be a number.")
		}
		return -num, nil
	case token.Bang:
		return value.Bool(!value.Truthy(operand)), nil
	default:
		return nil, in.typeError(n.Op.Line, "Unknown unary operator.")
	}
}

// evalBinary implements spec.md §4.4: the left operand is fully
// evaluated before the right (left-to-right evaluation order), then the
// operator dispatches by kind.
func (in *Interpreter) evalBinary(n *ast.Binary) (value.Value, error) {
	left, err := in.eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op.Kind {
	case token.EqualEqual:
		return value.Bool(value.Equal(left, right)), nil
	case token.BangEqual:
		return value.Bool(!value.Equal(left, right)), nil
	case token.Plus:
		return in.evalPlus(n.Op.Line, left, right)
	case token.Minus, token.Star, token.Slash:
		return in.evalArithmetic(n.Op, left, right)
	case token.Less, token.LessEqual, token.Greater, token.GreaterEqual:
		return in.evalComparison(n.Op, left, right)
	default:
		return nil, in.typeError(n.Op.Line, "Unknown binary operator.")
	}
}

// evalPlus implements spec.md §4.4's overloaded `+`: number+number adds,
// string+string concatenates, any other combination is a type error.
func (in *Interpreter) evalPlus(line int, left, right value.Value) (value.Value, error) {
	if l, ok := left.(value.Number); ok {
		if r, ok := right.(value.Number); ok {
			return l + r, nil
		}
	}
	if l, ok := left.(value.String); ok {
		if r, ok := right.(value.String); ok {
			return l + r, nil
		}
	}
	return nil, in.typeError(line, "Operands must be two numbers or two strings.")
}

// evalArithmetic implements `-`, `*`, `/`: both operands must be
// numbers. Division is plain IEEE-754 division — divide-by-zero yields
// ±Infinity, never an error (spec.md §4.4/§8).
func (in *Interpreter) evalArithmetic(op token.Token, left, right value.Value) (value.Value, error) {
	l, lok := left.(value.Number)
	r, rok := right.(value.Number)
	if !lok || !rok {
		return nil, in.typeError(op.Line, "Operands must be numbers.")
	}
	switch op.Kind {
	case token.Minus:
		return l - r, nil
	case token.Star:
		return l * r, nil
	case token.Slash:
		return l / r, nil
	default:
		return nil, in.typeError(op.Line, "Unknown arithmetic operator.")
	}
}

// evalComparison implements `<`, `<=`, `>`, `>=`: both operands must be
// numbers.
func (in *Interpreter) evalComparison(op token.Token, left, right value.Value) (value.Value, error) {
	l, lok := left.(value.Number)
	r, rok := right.(value.Number)
	if !lok || !rok {
		return nil, in.typeError(op.Line, "Operands must be numbers.")
	}
	switch op.Kind {
	case token.Less:
		return value.Bool(l < r), nil
	case token.LessEqual:
		return value.Bool(l <= r), nil
	case token.Greater:
		return value.Bool(l > r), nil
	case token.GreaterEqual:
		return value.Bool(l >= r), nil
	default:
		return nil, in.typeError(op.Line, "Unknown comparison operator.")
	}
}

func (in *Interpreter) typeError(line int, msg string) error {
	return &RuntimeError{Line: line, Msg: msg}
}
