package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niinpatel/lox-interpreter/internal/token"
)

func TestScanTokensPunctuationAndOperators(t *testing.T) {
	tokens, errs := ScanTokens("(){}*.,+-;== != <= >= < > = !")
	require.Empty(t, errs)

	var kinds []token.Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Star, token.Dot, token.Comma, token.Plus, token.Minus, token.Semicolon,
		token.EqualEqual, token.BangEqual, token.LessEqual, token.GreaterEqual,
		token.Less, token.Greater, token.Equal, token.Bang,
		token.EOF,
	}, kinds)
}

func TestScanTokensSkipsCommentsAndWhitespace(t *testing.T) {
	tokens, errs := ScanTokens("// a comment\n  (  )\t\n")
	require.Empty(t, errs)
	require.Len(t, tokens, 3)
	assert.Equal(t, token.LeftParen, tokens[0].Kind)
	assert.Equal(t, token.RightParen, tokens[1].Kind)
	assert.Equal(t, token.EOF, tokens[2].Kind)
	assert.Equal(t, 3, tokens[2].Line)
}

func TestScanTokensString(t *testing.T) {
	tokens, errs := ScanTokens(`"hello world"`)
	require.Empty(t, errs)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.String, tokens[0].Kind)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestScanTokensUnterminatedString(t *testing.T) {
	tokens, errs := ScanTokens(`"unterminated`)
	require.Len(t, errs, 1)
	assert.Equal(t, "Unterminated string.", errs[0].Msg)
	assert.Equal(t, 1, errs[0].Line)
	// scanning still terminates with EOF
	assert.Equal(t, token.EOF, tokens[len(tokens)-1].Kind)
}

func TestScanTokensNumber(t *testing.T) {
	tokens, errs := ScanTokens("123 45.67")
	require.Empty(t, errs)
	require.Len(t, tokens, 3)
	assert.Equal(t, 123.0, tokens[0].Literal)
	assert.Equal(t, 45.67, tokens[1].Literal)
}

// Documents the greedy number-scanning resolution recorded in
// DESIGN.md: the scanner consumes a whole run of digits and dots
// without validating dot placement or count, and leaves rejecting a
// malformed run to strconv.ParseFloat.
func TestScanTokensGreedyNumberMultipleDots(t *testing.T) {
	_, errs := ScanTokens("1.2.3")
	require.Len(t, errs, 1)
	assert.Equal(t, "Unexpected character: 1.2.3", errs[0].Msg)
}

func TestScanTokensGreedyNumberTrailingDot(t *testing.T) {
	tokens, errs := ScanTokens("123.")
	require.Empty(t, errs)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.Number, tokens[0].Kind)
	assert.Equal(t, 123.0, tokens[0].Literal)
}

func TestScanTokensIdentifierAndKeyword(t *testing.T) {
	tokens, errs := ScanTokens("foo var")
	require.Empty(t, errs)
	require.Len(t, tokens, 3)
	assert.Equal(t, token.Identifier, tokens[0].Kind)
	assert.Equal(t, token.Var, tokens[1].Kind)
}

func TestScanTokensUnexpectedCharacter(t *testing.T) {
	tokens, errs := ScanTokens("@")
	require.Len(t, errs, 1)
	assert.Equal(t, "Unexpected character: @", errs[0].Msg)
	assert.Equal(t, token.EOF, tokens[len(tokens)-1].Kind)
}

func TestScanTokensAccumulatesMultipleErrors(t *testing.T) {
	_, errs := ScanTokens("@ # $")
	require.Len(t, errs, 3)
}

func TestScanTokensLineTracking(t *testing.T) {
	tokens, _ := ScanTokens("var\na\n=\n1")
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 3, tokens[2].Line)
	assert.Equal(t, 4, tokens[3].Line)
}

func TestJoinErrors(t *testing.T) {
	_, errs := ScanTokens("@\n#")
	joined := JoinErrors(errs)
	assert.Equal(t, "[line 1] Error: Unexpected character: @\n[line 2] Error: Unexpected character: #", joined)
}
