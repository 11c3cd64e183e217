package main

import "strconv"

// execInput implements INPUT: an optional leading quoted prompt, then a
// comma-separated list of destinations (numeric variable, string variable,
// or array element). Each destination consumes one whitespace-delimited
// token from standard input; a bad integer diagnoses and aborts the
// remaining destinations. Either way, the rest of the current physical
// input line is drained afterward (spec §4.4, resolved open question (a)).
func (in *Interpreter) execInput() {
	c := &in.cur
	c.skipSpace()
	if s, ok := c.readQuotedLiteral(); ok {
		in.writeString(s)
		c.skipSpace()
		c.readRune(',')
	}

	for {
		c.skipSpace()
		if c.atEnd() {
			break
		}
		if !in.inputDestination() {
			break
		}
		c.skipSpace()
		if c.peek() != ',' {
			break
		}
		c.advance(1)
	}
	in.drainInputLine()
}

// inputDestination reads one INPUT destination and assigns it from the next
// input token, reporting false when the remaining destination list must be
// aborted (a missing variable name or an invalid integer).
func (in *Interpreter) inputDestination() bool {
	c := &in.cur
	varName, ok := c.readLetter()
	if !ok {
		in.diagf("expected variable name")
		return false
	}
	c.skipSpace()

	if c.peek() == '$' {
		c.advance(1)
		tok, ok := in.nextInputToken()
		if !ok {
			in.diagf("unexpected end of input")
			return false
		}
		in.strs.set(varName, tok)
		return true
	}

	if closing, ok := c.readSubscriptOpen(); ok {
		index := in.expression()
		c.readClosing(closing)
		n, ok := in.nextInputInt()
		if !ok {
			return false
		}
		if err := in.arrays.set(varName, index, n); err != nil {
			in.diagf(err.Error())
		}
		return true
	}

	n, ok := in.nextInputInt()
	if !ok {
		return false
	}
	in.vars.set(varName, n)
	return true
}

// nextInputInt reads one input token and parses it as a signed integer,
// diagnosing and reporting false on a missing token or malformed integer.
func (in *Interpreter) nextInputInt() (int32, bool) {
	tok, ok := in.nextInputToken()
	if !ok {
		in.diagf("unexpected end of input")
		return 0, false
	}
	n, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		in.diagf("invalid integer %q", tok)
		return 0, false
	}
	return int32(n), true
}

// execPrint implements PRINT: a comma-separated sequence of operands, each
// tried first as a string operand then, on backtrack, as a numeric
// expression. Items are separated by a single space; the statement always
// ends with a newline, even when empty.
func (in *Interpreter) execPrint() {
	c := &in.cur
	first := true
	for {
		c.skipSpace()
		if c.atEnd() {
			break
		}
		if !first {
			in.writeString(" ")
		}
		first = false

		if s, ok := in.stringOperand(); ok {
			in.writeString(s)
		} else {
			in.writeString(strconv.FormatInt(int64(in.expression()), 10))
		}

		c.skipSpace()
		if c.peek() == ',' {
			c.advance(1)
		}
	}
	in.writeString("\n")
}

// execLet implements LET, with or without its keyword:
//
//	[LET] ident ( '$' '=' strexpr | ('['|'(') expr (']'|')') '=' expr | '=' expr )
//
// The '=' is optional in every form; if absent the right-hand side is
// parsed immediately. This tolerance must be preserved exactly, since the
// dispatcher falls back to LET for any unrecognized non-empty line.
func (in *Interpreter) execLet() {
	c := &in.cur
	varName, ok := c.readLetter()
	if !ok {
		in.diagf("expected variable name")
		return
	}
	c.skipSpace()

	if c.peek() == '$' {
		c.advance(1)
		c.skipSpace()
		c.readRune('=')
		val, ok := in.stringOperand()
		if !ok {
			val = ""
		}
		in.strs.set(varName, val)
		return
	}

	if closing, ok := c.readSubscriptOpen(); ok {
		index := in.expression()
		c.readClosing(closing)
		c.skipSpace()
		c.readRune('=')
		val := in.expression()
		if err := in.arrays.set(varName, index, val); err != nil {
			in.diagf(err.Error())
		}
		return
	}

	c.skipSpace()
	c.readRune('=')
	in.vars.set(varName, in.expression())
}

// execGoto implements GOTO: evaluate the following expression as a line
// number and redirect there. An unknown line number is diagnosed and
// leaves control unchanged -- execution simply continues with the next
// line, since execGoto never touches in.lineIndex in that case.
func (in *Interpreter) execGoto() {
	target := in.expression()
	if idx, ok := in.program.indexOf(target); ok {
		in.lineIndex = idx - 1
		return
	}
	in.diagf("line %d not found", target)
}

// execDim implements DIM <letter> ( '[' n ']' | '(' n ')' ), 1 <= n <= the
// array limit (defaultMaxArraySize, 1000, unless -array-limit overrides it).
func (in *Interpreter) execDim() {
	c := &in.cur
	varName, ok := c.readLetter()
	if !ok {
		in.diagf("expected array name")
		return
	}
	c.skipSpace()
	closing, hasClosing := c.readSubscriptOpen()
	size := in.expression()
	if hasClosing {
		c.readClosing(closing)
	}
	if err := in.arrays.dim(varName, size); err != nil {
		in.diagf(err.Error())
	}
}
