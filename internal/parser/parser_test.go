package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niinpatel/lox-interpreter/internal/ast"
	"github.com/niinpatel/lox-interpreter/internal/lexer"
	"github.com/niinpatel/lox-interpreter/internal/token"
)

func scan(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, errs := lexer.ScanTokens(src)
	require.Empty(t, errs)
	return toks
}

func TestParseExpressionPrecedence(t *testing.T) {
	toks := scan(t, "1 + 2 * 3")
	expr, err := ParseExpression(toks)
	require.NoError(t, err)
	assert.Equal(t, "(+ 1.0 (* 2.0 3.0))", ast.Print(expr))
}

func TestParseExpressionLeftAssociativity(t *testing.T) {
	toks := scan(t, "1 - 2 - 3")
	expr, err := ParseExpression(toks)
	require.NoError(t, err)
	assert.Equal(t, "(- (- 1.0 2.0) 3.0)", ast.Print(expr))
}

func TestParseExpressionGrouping(t *testing.T) {
	toks := scan(t, "(72 + 28)")
	expr, err := ParseExpression(toks)
	require.NoError(t, err)
	assert.Equal(t, "(group (+ 72.0 28.0))", ast.Print(expr))
}

func TestParseAssignmentRightAssociative(t *testing.T) {
	toks := scan(t, "a = b = 3")
	expr, err := ParseExpression(toks)
	require.NoError(t, err)
	assert.Equal(t, "(= a (= b 3.0))", ast.Print(expr))
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	toks := scan(t, "1 + 2 = 3")
	_, err := ParseExpression(toks)
	require.Error(t, err)
	assert.Equal(t, "Error at '=': Invalid assignment target.", err.Error())
}

func TestParseMissingClosingParen(t *testing.T) {
	toks := scan(t, "(1 + 2")
	_, err := ParseExpression(toks)
	require.Error(t, err)
	assert.Equal(t, "Error at end: Expected ')'.", err.Error())
}

func TestParseUnexpectedToken(t *testing.T) {
	toks := scan(t, "+")
	_, err := ParseExpression(toks)
	require.Error(t, err)
	assert.Equal(t, "Error at '+': Expect expression.", err.Error())
}

func TestParseStatementsVarDeclAndPrint(t *testing.T) {
	toks := scan(t, `var x = 1; print x;`)
	stmts, err := ParseStatements(toks)
	require.NoError(t, err)
	require.Len(t, stmts, 2)
	_, isVar := stmts[0].(*ast.VarDecl)
	_, isPrint := stmts[1].(*ast.PrintStmt)
	assert.True(t, isVar)
	assert.True(t, isPrint)
}

func TestParseStatementsBlock(t *testing.T) {
	toks := scan(t, `{ var x = 1; }`)
	stmts, err := ParseStatements(toks)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	block, ok := stmts[0].(*ast.Block)
	require.True(t, ok)
	assert.Len(t, block.Statements, 1)
}

func TestParseMissingSemicolon(t *testing.T) {
	toks := scan(t, `print 1`)
	_, err := ParseStatements(toks)
	require.Error(t, err)
	assert.Equal(t, "Error at end: Expected ';'.", err.Error())
}
