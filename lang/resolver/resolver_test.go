package resolver_test

import (
	"strings"
	"testing"

	"github.com/manurFR/lox/lang/errs"
	"github.com/manurFR/lox/lang/parser"
	"github.com/manurFR/lox/lang/resolver"
	"github.com/manurFR/lox/lang/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveSource(t *testing.T, src string) ([]string, error) {
	t.Helper()
	el := &errs.List{}
	toks := scanner.ScanTokens(src, el)
	require.NoError(t, el.Err(), "scanning should not fail for these fixtures")

	stmts, err := parser.Parse(toks, el)
	require.NoError(t, err, "parsing should not fail for these fixtures")

	el = &errs.List{}
	_, resolveErr := resolver.Resolve(stmts, el)

	var msgs []string
	for _, e := range el.Errors() {
		msgs = append(msgs, e.Msg)
	}
	return msgs, resolveErr
}

func TestResolveValidPrograms(t *testing.T) {
	sources := []string{
		`var a = 1; { var b = a + 1; var a = b; print a; }`,
		`fun outer() { var x = 1; fun inner() { return x; } return inner(); }`,
		`class Cake { init(flavor) { this.flavor = flavor; } taste() { return this.flavor; } }`,
		`class A { greet() { return "a"; } } class B < A { greet() { return super.greet(); } }`,
		`for (var i = 0; i < 3; i = i + 1) { if (i == 1) continue; print i; }`,
		`while (true) { break; }`,
		`fun f() { return; } fun g() { return 1; }`,
	}
	for _, src := range sources {
		msgs, err := resolveSource(t, src)
		assert.NoError(t, err, "source: %s", src)
		assert.Empty(t, msgs, "source: %s", src)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "self-reference in initializer",
			src:  `var a = 1; { var a = a; }`,
			want: "Can't read local variable in its own initializer.",
		},
		{
			name: "duplicate local declaration",
			src:  `{ var a = 1; var a = 2; }`,
			want: "A variable with the same name is already present in the same scope.",
		},
		{
			name: "this outside class",
			src:  `print this;`,
			want: "Can't use 'this' outside of a class.",
		},
		{
			name: "super outside class",
			src:  `fun f() { return super.x; }`,
			want: "Can't use 'super' outside of a class.",
		},
		{
			name: "super without superclass",
			src:  `class A { m() { return super.m(); } }`,
			want: "Can't use 'super' in a class with no superclass.",
		},
		{
			name: "class inherits from itself",
			src:  `class A < A {}`,
			want: "A class can't inherit from itself.",
		},
		{
			name: "return at top level",
			src:  `return 1;`,
			want: "Can't use 'return' in top-level code.",
		},
		{
			name: "return value from initializer",
			src:  `class A { init() { return 1; } }`,
			want: "Can't return a value from an initializer.",
		},
		{
			name: "break outside loop",
			src:  `break;`,
			want: "Can't use 'break' outside of a loop.",
		},
		{
			name: "continue outside loop",
			src:  `continue;`,
			want: "Can't use 'continue' outside of a loop.",
		},
		{
			name: "break inside function nested in loop",
			src:  `while (true) { fun f() { break; } }`,
			want: "Can't use 'break' outside of a loop.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs, err := resolveSource(t, tt.src)
			require.Error(t, err)
			require.NotEmpty(t, msgs)
			found := false
			for _, m := range msgs {
				if strings.Contains(m, tt.want) {
					found = true
					break
				}
			}
			assert.True(t, found, "expected an error containing %q, got %v", tt.want, msgs)
		})
	}
}

func TestResolveAllowsDuplicateGlobals(t *testing.T) {
	msgs, err := resolveSource(t, `var a = 1; var a = 2; print a;`)
	assert.NoError(t, err)
	assert.Empty(t, msgs)
}
