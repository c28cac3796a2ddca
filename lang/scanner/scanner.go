// Package scanner turns Lox source text into a stream of tokens. It is an
// external collaborator of the core execution pipeline (resolver,
// environment chain, interpreter): its only obligation is to deliver
// well-formed tokens, recording a line number on each one, and to report
// lexical errors through the shared errs.List accumulator.
package scanner

import (
	"strconv"
	"unicode/utf8"

	"github.com/manurFR/lox/lang/errs"
	"github.com/manurFR/lox/lang/token"
)

// Scanner tokenizes a single source file. The zero value is not ready to
// use; call Init first.
type Scanner struct {
	src  string
	errs *errs.List

	start   int // byte offset of the token currently being scanned
	cur     int // byte offset of the next rune to read
	line    int
	startLn int
}

// Init prepares s to scan src, reporting lexical errors into el.
func (s *Scanner) Init(src string, el *errs.List) {
	s.src = src
	s.errs = el
	s.start = 0
	s.cur = 0
	s.line = 1
	s.startLn = 1
}

// ScanTokens scans the whole source and returns every token, including a
// trailing EOF. Lexical errors are reported into el, which callers check
// with el.Err(); no error is returned.
func ScanTokens(src string, el *errs.List) []token.Token {
	var s Scanner
	s.Init(src, el)

	var toks []token.Token
	for {
		tok, ok := s.scanToken()
		if ok {
			toks = append(toks, tok)
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks
}

func (s *Scanner) atEnd() bool { return s.cur >= len(s.src) }

func (s *Scanner) advance() byte {
	c := s.src[s.cur]
	s.cur++
	return c
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.cur]
}

func (s *Scanner) peekNext() byte {
	if s.cur+1 >= len(s.src) {
		return 0
	}
	return s.src[s.cur+1]
}

func (s *Scanner) match(want byte) bool {
	if s.atEnd() || s.src[s.cur] != want {
		return false
	}
	s.cur++
	return true
}

// scanToken skips whitespace and comments, then scans and returns the next
// token. ok is false when the scanned characters were a lexical error (already
// reported) rather than a token: callers should keep calling scanToken until
// the returned token is EOF.
func (s *Scanner) scanToken() (tok token.Token, ok bool) {
	s.skipWhitespaceAndComments()
	s.start = s.cur
	s.startLn = s.line

	if s.atEnd() {
		return s.make(token.EOF, ""), true
	}

	c := s.advance()
	switch c {
	case '(':
		return s.make(token.LEFT_PAREN, "("), true
	case ')':
		return s.make(token.RIGHT_PAREN, ")"), true
	case '{':
		return s.make(token.LEFT_BRACE, "{"), true
	case '}':
		return s.make(token.RIGHT_BRACE, "}"), true
	case ',':
		return s.make(token.COMMA, ","), true
	case '.':
		return s.make(token.DOT, "."), true
	case '-':
		return s.make(token.MINUS, "-"), true
	case '+':
		return s.make(token.PLUS, "+"), true
	case ';':
		return s.make(token.SEMICOLON, ";"), true
	case '*':
		return s.make(token.STAR, "*"), true
	case '!':
		if s.match('=') {
			return s.make(token.BANG_EQUAL, "!="), true
		}
		return s.make(token.BANG, "!"), true
	case '=':
		if s.match('=') {
			return s.make(token.EQUAL_EQUAL, "=="), true
		}
		return s.make(token.EQUAL, "="), true
	case '<':
		if s.match('=') {
			return s.make(token.LESS_EQUAL, "<="), true
		}
		return s.make(token.LESS, "<"), true
	case '>':
		if s.match('=') {
			return s.make(token.GREATER_EQUAL, ">="), true
		}
		return s.make(token.GREATER, ">"), true
	case '/':
		return s.make(token.SLASH, "/"), true
	case '"':
		return s.scanString()
	default:
		if isDigit(c) {
			return s.scanNumber()
		}
		if isAlpha(c) {
			return s.scanIdentifier()
		}
		if c >= utf8.RuneSelf {
			s.errs.Add(s.startLn, formatLexError(s.startLn, "Unexpected character", string(c)))
			return token.Token{}, false
		}
		s.errs.Add(s.startLn, formatLexError(s.startLn, "Unexpected character", string(c)))
		return token.Token{}, false
	}
}

func (s *Scanner) skipWhitespaceAndComments() {
	for !s.atEnd() {
		switch s.peek() {
		case ' ', '\r', '\t':
			s.cur++
		case '\n':
			s.line++
			s.cur++
		case '/':
			if s.peekNext() == '/' {
				for !s.atEnd() && s.peek() != '\n' {
					s.cur++
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

func (s *Scanner) scanString() (token.Token, bool) {
	for !s.atEnd() && s.peek() != '"' {
		if s.peek() == '\n' {
			s.line++
		}
		s.cur++
	}
	if s.atEnd() {
		s.errs.Add(s.startLn, formatLexError(s.startLn, "Unterminated string.", ""))
		return token.Token{}, false
	}
	s.cur++ // closing quote
	value := s.src[s.start+1 : s.cur-1]
	tok := s.make(token.STRING, s.src[s.start:s.cur])
	tok.Literal = value
	return tok, true
}

func (s *Scanner) scanNumber() (token.Token, bool) {
	for isDigit(s.peek()) {
		s.cur++
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.cur++ // consume '.'
		for isDigit(s.peek()) {
			s.cur++
		}
	}
	lexeme := s.src[s.start:s.cur]
	v, _ := strconv.ParseFloat(lexeme, 64)
	tok := s.make(token.NUMBER, lexeme)
	tok.Literal = v
	return tok, true
}

func (s *Scanner) scanIdentifier() (token.Token, bool) {
	for isAlphaNumeric(s.peek()) {
		s.cur++
	}
	lexeme := s.src[s.start:s.cur]
	kind, ok := token.Keywords[lexeme]
	if !ok {
		kind = token.IDENTIFIER
	}
	return s.make(kind, lexeme), true
}

func (s *Scanner) make(kind token.Kind, lexeme string) token.Token {
	return token.Token{Kind: kind, Lexeme: lexeme, Line: s.startLn}
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool      { return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }

// formatLexError renders a scan error in the required "[line N] Error: msg"
// form. When char is non-empty it is appended as "msg: char", matching the
// offending-character detail the language's reference scanner reports for
// an unexpected character.
func formatLexError(line int, msg, char string) string {
	if char != "" {
		msg = msg + ": " + char
	}
	return "[line " + strconv.Itoa(line) + "] Error: " + msg
}
