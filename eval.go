package main

import "strings"

// The numeric expression grammar (spec §4.2):
//
//	expression := term  (('+'|'-') term)*
//	term       := factor (('*'|'/') factor)*
//	factor     := '(' expression ')'
//	           |  INSTR '(' string ',' string ')'
//	           |  ident [ ('['|'(') expression (']'|')') ]
//	           |  ['-'] digit+
//
// All arithmetic is on signed 32-bit integers with silent wraparound on
// overflow -- Go's defined overflow behavior for fixed-width integer types
// gives this for free. There is no operator precedence beyond the
// term/factor split, no exponentiation, no unary plus.

func (in *Interpreter) expression() int32 {
	result := in.term()
	for {
		in.cur.skipSpace()
		switch in.cur.peek() {
		case '+':
			in.cur.advance(1)
			result += in.term()
		case '-':
			in.cur.advance(1)
			result -= in.term()
		default:
			return result
		}
	}
}

func (in *Interpreter) term() int32 {
	result := in.factor()
	for {
		in.cur.skipSpace()
		switch in.cur.peek() {
		case '*':
			in.cur.advance(1)
			result *= in.factor()
		case '/':
			in.cur.advance(1)
			divisor := in.factor()
			if divisor == 0 {
				in.diagf("division by zero")
				// Non-trapping: the divide is skipped, result unchanged.
				continue
			}
			result /= divisor
		default:
			return result
		}
	}
}

func (in *Interpreter) factor() int32 {
	c := &in.cur
	c.skipSpace()

	if c.peek() == '(' {
		c.advance(1)
		result := in.expression()
		c.readClosing(')')
		return result
	}

	if isAlpha(c.peek()) {
		if c.matchKeyword("INSTR") {
			return in.evalInstr()
		}

		varName, _ := c.readLetter()
		c.skipSpace()

		if closing, ok := c.readSubscriptOpen(); ok {
			index := in.expression()
			c.readClosing(closing)
			val, err := in.arrays.get(varName, index)
			if err != nil {
				in.diagf(err.Error())
				return 0
			}
			return val
		}

		return in.vars.get(varName)
	}

	neg := false
	if c.peek() == '-' && isDigit(peekAt(c, 1)) {
		neg = true
		c.advance(1)
	}
	if isDigit(c.peek()) {
		var sb strings.Builder
		for isDigit(c.peek()) {
			sb.WriteByte(c.peek())
			c.advance(1)
		}
		n := parseUnsignedInt32(sb.String())
		if neg {
			n = -n
		}
		return n
	}

	return 0
}

func peekAt(c *Cursor, offset int) byte {
	i := c.pos + offset
	if i < 0 || i >= len(c.text) {
		return 0
	}
	return c.text[i]
}

// parseUnsignedInt32 parses a run of decimal digits into an int32 with
// wraparound, matching the dialect's lack of overflow trapping.
func parseUnsignedInt32(digits string) int32 {
	var n int32
	for i := 0; i < len(digits); i++ {
		n = n*10 + int32(digits[i]-'0')
	}
	return n
}

// evalInstr implements INSTR(haystack, needle): the 1-based index of the
// first occurrence of needle in haystack, or 0 if not found or if either
// operand is empty/absent. Malformed call syntax yields 0 without a
// diagnostic, matching the dialect's general tolerance for syntax gaps in
// string-function calls.
func (in *Interpreter) evalInstr() int32 {
	c := &in.cur
	c.advance(5) // "INSTR"
	c.skipSpace()
	if !c.readRune('(') {
		return 0
	}
	haystack, ok := in.stringOperand()
	if !ok {
		return 0
	}
	c.skipSpace()
	if !c.readRune(',') {
		return 0
	}
	needle, ok := in.stringOperand()
	if !ok {
		return 0
	}
	c.skipSpace()
	if !c.readRune(')') {
		return 0
	}
	if haystack == "" || needle == "" {
		return 0
	}
	idx := strings.Index(haystack, needle)
	if idx < 0 {
		return 0
	}
	return int32(idx + 1)
}
