package interpreter_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/manurFR/lox/lang/errs"
	"github.com/manurFR/lox/lang/interpreter"
	"github.com/manurFR/lox/lang/parser"
	"github.com/manurFR/lox/lang/resolver"
	"github.com/manurFR/lox/lang/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run scans, parses, resolves and interprets src against a fresh
// interpreter, returning stdout and the first runtime error, if any.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	el := &errs.List{}
	toks := scanner.ScanTokens(src, el)
	require.NoError(t, el.Err())

	stmts, err := parser.Parse(toks, el)
	require.NoError(t, err)

	locals, err := resolver.Resolve(stmts, el)
	require.NoError(t, err)

	var out bytes.Buffer
	in := interpreter.New(&out)
	runErr := in.Interpret(stmts, locals)
	return out.String(), runErr
}

func TestClosuresCaptureBindingsNotValues(t *testing.T) {
	out, err := run(t, `
		fun makeCounter() { var i = 0; fun c() { i = i + 1; return i; } return c; }
		var c = makeCounter();
		print c();
		print c();
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
}

func TestStaticScopeBeatsDynamicShadowing(t *testing.T) {
	out, err := run(t, `
		var a = "global";
		{
			fun showA() { print a; }
			showA();
			var a = "block";
			showA();
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, "global\nglobal\n", out)
}

func TestInitializerAlwaysYieldsInstance(t *testing.T) {
	out, err := run(t, `
		class K { init(x) { this.x = x; if (x == 0) return; } }
		var k = K(7);
		print k.x;
		print K(0).x;
	`)
	require.NoError(t, err)
	assert.Equal(t, "7\nnil\n", out)
}

func TestSuperDispatchWithThreeLevelChain(t *testing.T) {
	out, err := run(t, `
		class A { m() { print "A"; } }
		class B < A { m() { super.m(); print "B"; } }
		class C < B {}
		C().m();
	`)
	require.NoError(t, err)
	assert.Equal(t, "A\nB\n", out)
}

func TestForLoopWithContinueRunsIncrement(t *testing.T) {
	out, err := run(t, `
		for (var i = 0; i < 5; i = i + 1) { if (i == 2 or i == 3) continue; print i; }
	`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n4\n", out)
}

func TestArithmeticTypeErrorHasLine(t *testing.T) {
	out, err := run(t, "print \"the expression below is invalid\";\n49 + \"baz\";")
	require.Error(t, err)
	assert.Equal(t, "the expression below is invalid\n", out)

	var rerr *interpreter.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "Operands must be two numbers or two strings.", rerr.Message)
	assert.Equal(t, 2, rerr.Token.Line)
}

func TestTruthiness(t *testing.T) {
	out, err := run(t, `
		if (0) print "0 is truthy"; else print "0 is falsey";
		if ("") print "empty string is truthy"; else print "empty string is falsey";
		if (nil) print "nil is truthy"; else print "nil is falsey";
		if (false) print "false is truthy"; else print "false is falsey";
	`)
	require.NoError(t, err)
	assert.Equal(t, "0 is truthy\nempty string is truthy\nnil is falsey\nfalse is falsey\n", out)
}

func TestCrossTypeEqualityIsAlwaysFalse(t *testing.T) {
	out, err := run(t, `print 1 == "1"; print nil == false;`)
	require.NoError(t, err)
	assert.Equal(t, "false\nfalse\n", out)
}

func TestLogicalOperatorsReturnOperandValue(t *testing.T) {
	out, err := run(t, `print false or 41; print true or "unreached"; print nil and "unreached";`)
	require.NoError(t, err)
	assert.Equal(t, "41\ntrue\nnil\n", out)
}

func TestMethodBindingSurvivesReassignment(t *testing.T) {
	out, err := run(t, `
		class Greeter { greet() { return this.name; } }
		var a = Greeter(); a.name = "alice";
		class Other {}
		var o = Other();
		o.sayHi = a.greet;
		print o.sayHi();
	`)
	require.NoError(t, err)
	assert.Equal(t, "alice\n", out)
}

func TestNumberFormatting(t *testing.T) {
	out, err := run(t, `print 12; print 12.0; print 0.5; print -3;`)
	require.NoError(t, err)
	assert.Equal(t, "12\n12\n0.5\n-3\n", out)
}

func TestCallArityMismatch(t *testing.T) {
	_, err := run(t, `fun f(a, b) { return a + b; } f(1);`)
	require.Error(t, err)
	var rerr *interpreter.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.True(t, strings.Contains(rerr.Message, "Expected 2 arguments but got 1."))
}

func TestUndefinedProperty(t *testing.T) {
	_, err := run(t, `class A {} print A().missing;`)
	require.Error(t, err)
	var rerr *interpreter.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "Undefined property 'missing'.", rerr.Message)
}

func TestBreakExitsLoopWithoutIncrement(t *testing.T) {
	out, err := run(t, `
		var last = -1;
		for (var i = 0; i < 10; i = i + 1) { if (i == 3) break; last = i; }
		print last;
	`)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}
