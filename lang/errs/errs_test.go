package errs_test

import (
	"bytes"
	"testing"

	"github.com/manurFR/lox/lang/errs"
	"github.com/stretchr/testify/assert"
)

func TestListAccumulatesAndSorts(t *testing.T) {
	var l errs.List
	l.Add(3, "third")
	l.Add(1, "first")
	l.Add(2, "second")
	l.Sort()

	assert.Equal(t, 3, l.Len())
	got := make([]int, 0, 3)
	for _, e := range l.Errors() {
		got = append(got, e.Line)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestListErrIsNilWhenEmpty(t *testing.T) {
	var l errs.List
	assert.NoError(t, l.Err())
}

func TestListPrint(t *testing.T) {
	var l errs.List
	l.Add(1, "[line 1] Error: boom")
	var buf bytes.Buffer
	l.Print(&buf)
	assert.Equal(t, "[line 1] Error: boom\n", buf.String())
}
