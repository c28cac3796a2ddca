package parser_test

import (
	"strings"
	"testing"

	"github.com/manurFR/lox/lang/ast"
	"github.com/manurFR/lox/lang/errs"
	"github.com/manurFR/lox/lang/parser"
	"github.com/manurFR/lox/lang/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) ([]ast.Stmt, *errs.List) {
	t.Helper()
	el := &errs.List{}
	toks := scanner.ScanTokens(src, el)
	stmts, _ := parser.Parse(toks, el)
	return stmts, el
}

func TestParseForDesugarsToWhileWithIncrement(t *testing.T) {
	stmts, el := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.NoError(t, el.Err())
	require.Len(t, stmts, 1)

	block, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok, "expected the for-loop to desugar into a block")
	require.Len(t, block.Statements, 2)

	_, ok = block.Statements[0].(*ast.VarStmt)
	assert.True(t, ok, "first statement should be the loop initializer")

	while, ok := block.Statements[1].(*ast.WhileStmt)
	require.True(t, ok, "second statement should be the synthesized while loop")
	assert.NotNil(t, while.Increment, "increment clause must survive desugaring")
}

func TestParseClassWithSuperclass(t *testing.T) {
	stmts, el := parse(t, `class Cake < Pastry { frost() { return "iced"; } }`)
	require.NoError(t, el.Err())
	require.Len(t, stmts, 1)

	class, ok := stmts[0].(*ast.ClassStmt)
	require.True(t, ok)
	assert.Equal(t, "Cake", class.Name.Lexeme)
	require.NotNil(t, class.Superclass)
	assert.Equal(t, "Pastry", class.Superclass.Name.Lexeme)
	require.Len(t, class.Methods, 1)
	assert.Equal(t, "frost", class.Methods[0].Name.Lexeme)
}

func TestParseAssignmentToGetProducesSet(t *testing.T) {
	stmts, el := parse(t, `a.b = 1;`)
	require.NoError(t, el.Err())
	require.Len(t, stmts, 1)

	exprStmt, ok := stmts[0].(*ast.ExpressionStmt)
	require.True(t, ok)
	_, ok = exprStmt.Expression.(*ast.Set)
	assert.True(t, ok)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"missing semicolon", `var a = 1`, "Expect ';' after variable declaration."},
		{"invalid assignment target", `1 = 2;`, "Invalid assignment target."},
		{"too many arguments", buildCallWithArgs(256), "Can't have more than 255 arguments."},
		{"dangling expression", `1 +;`, "Expect expression."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, el := parse(t, tt.src)
			require.Error(t, el.Err())
			var found bool
			for _, e := range el.Errors() {
				if strings.Contains(e.Msg, tt.want) {
					found = true
				}
			}
			assert.True(t, found, "expected an error containing %q, got %v", tt.want, el.Errors())
		})
	}
}

func buildCallWithArgs(n int) string {
	src := "f("
	for i := 0; i < n; i++ {
		if i > 0 {
			src += ","
		}
		src += "1"
	}
	return src + ");"
}
