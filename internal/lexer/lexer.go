/*
Package lexer implements lexical analysis for Lox source text: a single
left-to-right scan over the source string producing a token sequence and
an accumulated list of lexical errors (spec.md §4.1).
*/
package lexer

import (
	"strconv"
	"strings"

	"github.com/niinpatel/lox-interpreter/internal/token"
)

// Error is a lexical error: an unterminated string or an unexpected
// character. The scanner keeps going after recording one — lexical
// errors accumulate rather than aborting the scan (spec.md §7).
type Error struct {
	Line int
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Scanner tokenizes a single source string. It tracks a byte cursor and
// the current line the way the teacher's Lexer tracks Position/Line, but
// over Lox's smaller token set and maximal-munch rules.
type Scanner struct {
	src     string
	start   int
	current int
	line    int

	tokens []token.Token
	errors []*Error
}

// New creates a Scanner positioned at the start of src.
func New(src string) *Scanner {
	return &Scanner{src: src, line: 1}
}

// ScanTokens tokenizes the entire source and returns the token sequence
// (always terminated by a single EOF token, per spec.md §3) together
// with any lexical errors encountered. A non-empty error slice means the
// caller should exit 65 after using the tokens (tokenize mode still
// prints every token it found).
func ScanTokens(src string) ([]token.Token, []*Error) {
	s := New(src)
	for !s.atEnd() {
		s.start = s.current
		s.scanToken()
	}
	s.tokens = append(s.tokens, token.New(token.EOF, "", s.line))
	return s.tokens, s.errors
}

func (s *Scanner) atEnd() bool {
	return s.current >= len(s.src)
}

func (s *Scanner) advance() byte {
	c := s.src[s.current]
	s.current++
	return c
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.src) {
		return 0
	}
	return s.src[s.current+1]
}

// match consumes the current character if it equals want, implementing
// the maximal-munch two-character operators (==, !=, <=, >=).
func (s *Scanner) match(want byte) bool {
	if s.atEnd() || s.src[s.current] != want {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) addToken(kind token.Kind) {
	s.tokens = append(s.tokens, token.New(kind, s.src[s.start:s.current], s.line))
}

func (s *Scanner) addLiteralToken(kind token.Kind, literal interface{}) {
	s.tokens = append(s.tokens, token.WithLiteral(kind, s.src[s.start:s.current], literal, s.line))
}

func (s *Scanner) addError(format string) {
	s.errors = append(s.errors, &Error{Line: s.line, Msg: format})
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.addToken(token.LeftParen)
	case ')':
		s.addToken(token.RightParen)
	case '{':
		s.addToken(token.LeftBrace)
	case '}':
		s.addToken(token.RightBrace)
	case '*':
		s.addToken(token.Star)
	case '.':
		s.addToken(token.Dot)
	case ',':
		s.addToken(token.Comma)
	case '+':
		s.addToken(token.Plus)
	case '-':
		s.addToken(token.Minus)
	case ';':
		s.addToken(token.Semicolon)
	case '=':
		if s.match('=') {
			s.addToken(token.EqualEqual)
		} else {
			s.addToken(token.Equal)
		}
	case '!':
		if s.match('=') {
			s.addToken(token.BangEqual)
		} else {
			s.addToken(token.Bang)
		}
	case '<':
		if s.match('=') {
			s.addToken(token.LessEqual)
		} else {
			s.addToken(token.Less)
		}
	case '>':
		if s.match('=') {
			s.addToken(token.GreaterEqual)
		} else {
			s.addToken(token.Greater)
		}
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.atEnd() {
				s.advance()
			}
		} else {
			s.addToken(token.Slash)
		}
	case ' ', '\t', '\r', '\f':
		// ignored
	case '\n':
		s.line++
	case '"':
		s.scanString()
	default:
		switch {
		case isDigit(c):
			s.scanNumber()
		case isAlpha(c):
			s.scanIdentifier()
		default:
			s.addError("Unexpected character: " + string(c))
		}
	}
}

// scanString consumes a string literal body. Reaching end of input
// before the closing quote is a lexical error (spec.md §4.1); scanning
// then continues at end-of-input rather than aborting.
func (s *Scanner) scanString() {
	for s.peek() != '"' && !s.atEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.atEnd() {
		s.addError("Unterminated string.")
		return
	}
	s.advance() // closing quote
	body := s.src[s.start+1 : s.current-1]
	s.addLiteralToken(token.String, body)
}

// scanNumber implements the deliberately simple greedy rule of spec.md
// §4.1/§9: consume digits and '.' characters without validating how
// many dots appear or where. A malformed run like "1.2.3" is handed to
// strconv.ParseFloat as-is and surfaces as a scan-time error rather than
// being specially disambiguated — see DESIGN.md's Open Question note.
func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) || s.peek() == '.' {
		s.advance()
	}
	lexeme := s.src[s.start:s.current]
	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		s.addError("Unexpected character: " + lexeme)
		return
	}
	s.addLiteralToken(token.Number, v)
}

func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	text := s.src[s.start:s.current]
	if kind, ok := token.Keywords[text]; ok {
		s.addToken(kind)
		return
	}
	s.addToken(token.Identifier)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// JoinErrors renders accumulated lexical errors as the "[line L] Error:
// <msg>" lines spec.md §4.1 specifies, one per line, in scan order.
func JoinErrors(errs []*Error) string {
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = "[line " + strconv.Itoa(e.Line) + "] Error: " + e.Msg
	}
	return strings.Join(lines, "\n")
}
