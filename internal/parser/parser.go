/*
Package parser implements a recursive-descent parser over a Lox token
sequence, producing either a single expression (for `parse`/`evaluate`
modes) or a statement list (for `run` mode), per spec.md §4.3.

Unlike the teacher's Pratt parser (parser/parser.go), which accumulates
errors across the whole input and keeps going, this parser stops at the
first error: spec.md §4.3/§7 mandate immediate termination with no
synchronization, since Lox's CLI reports one error and exits 65.
*/
package parser

import (
	"fmt"

	"github.com/niinpatel/lox-interpreter/internal/ast"
	"github.com/niinpatel/lox-interpreter/internal/token"
)

// ParseError is the single error a parse can produce. Line is the
// offending token's line; Msg matches the exact diagnostic text of
// spec.md §4.3.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return e.Msg
}

// Parser holds the token array and an integer cursor, per spec.md §4.3.
type Parser struct {
	tokens  []token.Token
	current int
}

// New creates a Parser over tokens (which must end with a single EOF
// token, as internal/lexer guarantees).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseExpression parses a single expression — the entry point used by
// `parse` and `evaluate` modes.
func ParseExpression(tokens []token.Token) (ast.Expr, error) {
	p := New(tokens)
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	return expr, nil
}

// ParseStatements parses a full program — the entry point used by `run`
// mode. It loops until EOF, per spec.md §4.3's `program → statement*`.
func ParseStatements(tokens []token.Token) ([]ast.Stmt, error) {
	p := New(tokens)
	var stmts []ast.Stmt
	for !p.check(token.EOF) {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// --- token stream helpers ---

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) check(kind token.Kind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.check(token.EOF) {
		p.current++
	}
	return p.previous()
}

// matchAny advances and returns true if the current token is one of
// kinds; otherwise it leaves the cursor untouched.
func (p *Parser) matchAny(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume implements spec.md §4.3's `consume(kind)`: advance and return
// the token if it matches, otherwise report `Expected <kind>.` and stop
// the parse. label overrides the rendered expectation text (e.g. "';'"
// instead of the raw SEMICOLON kind name) for the punctuation spellings
// the spec's diagnostics use; an empty label falls back to kind itself.
func (p *Parser) consume(kind token.Kind, label string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	if label == "" {
		label = string(kind)
	}
	return token.Token{}, p.errorAt(p.peek(), fmt.Sprintf("Expected %s.", label))
}

func (p *Parser) errorAt(tok token.Token, msg string) error {
	if tok.Kind == token.EOF {
		return &ParseError{Line: tok.Line, Msg: fmt.Sprintf("Error at end: %s", msg)}
	}
	return &ParseError{Line: tok.Line, Msg: fmt.Sprintf("Error at '%s': %s", tok.Lexeme, msg)}
}
