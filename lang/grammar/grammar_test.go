package grammar

import (
	"os"
	"testing"

	"golang.org/x/exp/ebnf"
)

// TestEBNF verifies that the language's grammar, as documented in
// grammar.ebnf, is syntactically well-formed and that every production is
// reachable from the Program start symbol. This doesn't replace testing the
// parser's actual behavior; it only guards against the grammar documentation
// drifting into something that doesn't even parse as EBNF.
func TestEBNF(t *testing.T) {
	f, err := os.Open("grammar.ebnf")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	g, err := ebnf.Parse("grammar.ebnf", f)
	if err != nil {
		t.Fatal(err)
	}
	if err := ebnf.Verify(g, "Program"); err != nil {
		t.Fatal(err)
	}
}
