package main

// stringOperand recognizes a string-typed operand: a quoted literal, a
// string variable reference (letter followed by '$'), or one of LEFT$,
// RIGHT$, MID$. It returns a freshly produced string and true, or false if
// the cursor was not at a string construct at all -- in which case the
// cursor is restored to its entry position so the caller can retry the
// same position as a numeric expression.
//
// The only genuinely ambiguous point in the grammar is "letter possibly
// followed by $": a letter is consumed speculatively and restored if no
// '$' follows. Every other production commits to string parsing once its
// leading quote or keyword is recognized; a malformed call after that
// point (a missing comma or closing paren) also reports false and is
// likewise restored, so every caller can use a single save/retry pattern.
func (in *Interpreter) stringOperand() (string, bool) {
	c := &in.cur
	start := c.mark()
	c.skipSpace()

	if c.peek() == '"' {
		s, _ := c.readQuotedLiteral()
		return s, true
	}

	if c.matchKeyword("LEFT$") {
		if s, ok := in.evalLeftRight(5, true); ok {
			return s, true
		}
		c.reset(start)
		return "", false
	}

	if c.matchKeyword("RIGHT$") {
		if s, ok := in.evalLeftRight(6, false); ok {
			return s, true
		}
		c.reset(start)
		return "", false
	}

	if c.matchKeyword("MID$") {
		if s, ok := in.evalMid(); ok {
			return s, true
		}
		c.reset(start)
		return "", false
	}

	if isAlpha(c.peek()) {
		letterPos := c.mark()
		varName, _ := c.readLetter()
		if c.peek() == '$' {
			c.advance(1)
			return in.strs.get(varName), true
		}
		c.reset(letterPos)
	}

	c.reset(start)
	return "", false
}

// evalLeftRight implements LEFT$(s, n) and RIGHT$(s, n). keywordLen is the
// length of the already-matched keyword; left selects LEFT$ vs RIGHT$
// semantics.
func (in *Interpreter) evalLeftRight(keywordLen int, left bool) (string, bool) {
	c := &in.cur
	c.advance(keywordLen)
	c.skipSpace()
	if !c.readRune('(') {
		return "", false
	}
	s, ok := in.stringOperand()
	if !ok {
		return "", false
	}
	c.skipSpace()
	if !c.readRune(',') {
		return "", false
	}
	n := in.expression()
	c.skipSpace()
	if !c.readRune(')') {
		return "", false
	}

	n = clamp32(n, 0, int32(len(s)))
	if left {
		return s[:n], true
	}
	return s[len(s)-int(n):], true
}

// evalMid implements MID$(s, start, n): start is 1-based.
func (in *Interpreter) evalMid() (string, bool) {
	c := &in.cur
	c.advance(4)
	c.skipSpace()
	if !c.readRune('(') {
		return "", false
	}
	s, ok := in.stringOperand()
	if !ok {
		return "", false
	}
	c.skipSpace()
	if !c.readRune(',') {
		return "", false
	}
	start := in.expression()
	c.skipSpace()
	if !c.readRune(',') {
		return "", false
	}
	n := in.expression()
	c.skipSpace()
	if !c.readRune(')') {
		return "", false
	}

	if start < 1 {
		start = 1
	}
	if int(start) > len(s) {
		return "", true
	}
	available := int32(len(s)) - (start - 1)
	n = clamp32(n, 0, available)
	from := int(start - 1)
	return s[from : from+int(n)], true
}

func clamp32(n, lo, hi int32) int32 {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
