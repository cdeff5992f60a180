package parser

import (
	"github.com/niinpatel/lox-interpreter/internal/ast"
	"github.com/niinpatel/lox-interpreter/internal/token"
)

// statement → printStmt | varDecl | block | exprStmt  (spec.md §4.3)
func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.matchAny(token.Print):
		return p.printStatement()
	case p.matchAny(token.Var):
		return p.varDecl()
	case p.matchAny(token.LeftBrace):
		return p.block()
	default:
		return p.exprStatement()
	}
}

// printStmt → "print" expression ";"
func (p *Parser) printStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "';'"); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Expression: expr}, nil
}

// varDecl → "var" IDENTIFIER ( "=" expression )? ";"
func (p *Parser) varDecl() (ast.Stmt, error) {
	name, err := p.consume(token.Identifier, "variable name")
	if err != nil {
		return nil, err
	}

	var initializer ast.Expr
	if p.matchAny(token.Equal) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.Semicolon, "';'"); err != nil {
		return nil, err
	}
	return &ast.VarDecl{Name: name, Initializer: initializer}, nil
}

// block → "{" statement* "}"
func (p *Parser) block() (ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.check(token.EOF) {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.consume(token.RightBrace, "'}'"); err != nil {
		return nil, err
	}
	return &ast.Block{Statements: stmts}, nil
}

// exprStmt → expression ";"
func (p *Parser) exprStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "';'"); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expression: expr}, nil
}
