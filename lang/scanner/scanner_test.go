package scanner_test

import (
	"testing"

	"github.com/manurFR/lox/lang/errs"
	"github.com/manurFR/lox/lang/scanner"
	"github.com/manurFR/lox/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanTokensKinds(t *testing.T) {
	el := &errs.List{}
	toks := scanner.ScanTokens(`var x = 1.5 + "hi"; // comment
	if (x != nil) { x = x; }`, el)
	require.NoError(t, el.Err())

	var kinds []token.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.VAR, token.IDENTIFIER, token.EQUAL, token.NUMBER, token.PLUS, token.STRING, token.SEMICOLON,
		token.IF, token.LEFT_PAREN, token.IDENTIFIER, token.BANG_EQUAL, token.NIL, token.RIGHT_PAREN,
		token.LEFT_BRACE, token.IDENTIFIER, token.EQUAL, token.IDENTIFIER, token.SEMICOLON, token.RIGHT_BRACE,
		token.EOF,
	}, kinds)
}

func TestScanTokensLiterals(t *testing.T) {
	el := &errs.List{}
	toks := scanner.ScanTokens(`123.25 "a string"`, el)
	require.NoError(t, el.Err())
	require.Len(t, toks, 3)
	assert.Equal(t, 123.25, toks[0].Literal)
	assert.Equal(t, "a string", toks[1].Literal)
}

func TestScanTokensTracksLines(t *testing.T) {
	el := &errs.List{}
	toks := scanner.ScanTokens("var a = 1;\nvar b = 2;\n", el)
	require.NoError(t, el.Err())
	var lineOfB int
	for _, tok := range toks {
		if tok.Kind == token.IDENTIFIER && tok.Lexeme == "b" {
			lineOfB = tok.Line
		}
	}
	assert.Equal(t, 2, lineOfB)
}

func TestScanTokensUnterminatedString(t *testing.T) {
	el := &errs.List{}
	scanner.ScanTokens(`"never closed`, el)
	require.Error(t, el.Err())
	assert.Contains(t, el.Errors()[0].Msg, "Unterminated string.")
}

func TestScanTokensUnexpectedCharacter(t *testing.T) {
	el := &errs.List{}
	scanner.ScanTokens("var a = 1 @ 2;", el)
	require.Error(t, el.Err())
	assert.Contains(t, el.Errors()[0].Msg, "Unexpected character: @")
}
