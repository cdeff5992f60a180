package parser

import (
	"github.com/niinpatel/lox-interpreter/internal/ast"
	"github.com/niinpatel/lox-interpreter/internal/token"
)

// expression → assignment
func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment → IDENTIFIER "=" assignment | equality
//
// An equality expression is parsed first; if '=' follows, the
// already-parsed left side must be a Variable node — anything else is
// an invalid assignment target (spec.md §4.3, exit 65). Assignment is
// right-associative: the right-hand side recurses into assignment
// itself, while every other binary level below it is left-associative.
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}

	if p.matchAny(token.Equal) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if v, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: v.Name, RHS: value}, nil
		}
		return nil, p.errorAt(equals, "Invalid assignment target.")
	}

	return expr, nil
}

// equality → comparison ( ("==" | "!=") comparison )*
func (p *Parser) equality() (ast.Expr, error) {
	return p.leftAssocBinary(p.comparison, token.EqualEqual, token.BangEqual)
}

// comparison → term ( ("<" | "<=" | ">" | ">=") term )*
func (p *Parser) comparison() (ast.Expr, error) {
	return p.leftAssocBinary(p.term, token.Less, token.LessEqual, token.Greater, token.GreaterEqual)
}

// term → factor ( ("+" | "-") factor )*
func (p *Parser) term() (ast.Expr, error) {
	return p.leftAssocBinary(p.factor, token.Plus, token.Minus)
}

// factor → unary ( ("*" | "/") unary )*
func (p *Parser) factor() (ast.Expr, error) {
	return p.leftAssocBinary(p.unary, token.Star, token.Slash)
}

// leftAssocBinary implements the common shape of the equality/
// comparison/term/factor productions: parse one operand at `next`
// precedence, then loop accumulating left while the current token is
// one of kinds.
func (p *Parser) leftAssocBinary(next func() (ast.Expr, error), kinds ...token.Kind) (ast.Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.matchAny(kinds...) {
		op := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Op: op, Left: expr, Right: right}
	}
	return expr, nil
}

// unary → ("!" | "-") unary | primary
func (p *Parser) unary() (ast.Expr, error) {
	if p.matchAny(token.Bang, token.Minus) {
		op := p.previous()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: op, Operand: operand}, nil
	}
	return p.primary()
}

// primary → NUMBER | STRING | "true" | "false" | "nil"
//         | "(" expression ")" | IDENTIFIER
func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.matchAny(token.Number, token.String):
		return &ast.Literal{Value: p.previous().Literal}, nil
	case p.matchAny(token.True):
		return &ast.Literal{Value: true}, nil
	case p.matchAny(token.False):
		return &ast.Literal{Value: false}, nil
	case p.matchAny(token.Nil):
		return &ast.Literal{Value: nil}, nil
	case p.matchAny(token.Identifier):
		return &ast.Variable{Name: p.previous()}, nil
	case p.matchAny(token.LeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RightParen, "')'"); err != nil {
			return nil, err
		}
		return &ast.Group{Inner: expr}, nil
	default:
		return nil, p.errorAt(p.peek(), "Expect expression.")
	}
}
