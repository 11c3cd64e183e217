package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func evalStringExpr(t *testing.T, expr string) string {
	t.Helper()
	in := New(WithOutput(&bytes.Buffer{}))
	in.cur = newCursor(expr)
	s, ok := in.stringOperand()
	if !ok {
		t.Fatalf("expected %q to parse as a string operand", expr)
	}
	return s
}

func Test_leftMidRight_identity(t *testing.T) {
	for _, s := range []string{"", "X", "HELLO", "HELLO WORLD"} {
		for k := 0; k <= len(s); k++ {
			in := New(WithOutput(&bytes.Buffer{}))
			in.strs.set('S', s)

			in.cur = newCursor("LEFT$(S$, " + itoa(k) + ")")
			left, ok := in.stringOperand()
			assert.True(t, ok)

			in.cur = newCursor("MID$(S$, " + itoa(k+1) + ", " + itoa(len(s)-k) + ")")
			mid, ok := in.stringOperand()
			assert.True(t, ok)

			assert.Equal(t, s, left+mid, "LEFT$(s,%d) + MID$(s,%d,%d) == s", k, k+1, len(s)-k)
		}

		in := New(WithOutput(&bytes.Buffer{}))
		in.strs.set('S', s)
		in.cur = newCursor("RIGHT$(S$, " + itoa(len(s)) + ")")
		right, ok := in.stringOperand()
		assert.True(t, ok)
		assert.Equal(t, s, right)

		in.cur = newCursor("LEFT$(S$, 0)")
		left0, ok := in.stringOperand()
		assert.True(t, ok)
		assert.Equal(t, "", left0)

		in.cur = newCursor("MID$(S$, " + itoa(len(s)+1) + ", 1)")
		midPastEnd, ok := in.stringOperand()
		assert.True(t, ok)
		assert.Equal(t, "", midPastEnd)
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}

func Test_stringOperand_backtrack(t *testing.T) {
	in := New(WithOutput(&bytes.Buffer{}))
	in.vars.set('A', 42)
	in.cur = newCursor("A + 1")

	_, ok := in.stringOperand()
	assert.False(t, ok, "a bare letter with no $ is not a string operand")
	assert.Equal(t, 0, in.cur.pos, "cursor must be restored to its entry position")

	assert.Equal(t, int32(43), in.expression(), "the same cursor position must still parse as a numeric expression")
}

func Test_quotedLiteral(t *testing.T) {
	assert.Equal(t, "HELLO", evalStringExpr(t, `"HELLO"`))
	assert.Equal(t, "", evalStringExpr(t, `""`))
}
