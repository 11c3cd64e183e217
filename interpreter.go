package main

// Interpreter holds every piece of resident, session-lifetime state: the
// program buffer, the three 26-slot variable stores, the FOR...NEXT
// control stack, and the cursor over whichever line is currently
// executing. It is the BASIC analogue of the teacher's VM type: a single
// mutable receiver threaded through a recursive-descent grammar.
type Interpreter struct {
	Core

	program  program
	vars     numericStore
	strs     stringStore
	arrays   arrayStore
	forStack forStack

	cur       Cursor
	lineIndex int

	// inLine/inPos hold the current physical INPUT line and the scan
	// position within it, so that a single INPUT statement's destinations
	// can pull successive whitespace-delimited tokens across reads.
	inLine string
	inPos  int
}

// reset clears all session state for the NEW command, returning to the
// same zero state a freshly constructed Interpreter starts in. RUN itself
// never resets anything --
// variables, arrays, and the FOR stack all outlive a single RUN the same
// way they outlive any other single statement.
func (in *Interpreter) reset() {
	in.program.clear()
	in.vars.reset()
	in.strs.reset()
	in.arrays.reset()
	in.forStack.reset()
}

// RunProgram executes the resident program from line index 0. A handler
// may redirect execution by setting in.lineIndex to the target index minus
// one; the loop's own increment then lands on the target (spec §4.7).
func (in *Interpreter) RunProgram() {
	in.lineIndex = 0
	for in.lineIndex < in.program.Len() {
		in.executeLine(in.lineIndex)
		in.lineIndex++
	}
}

// executeLine runs a single statement out of the resident program buffer
// for RunProgram. Immediate execution from the REPL (execImmediate) calls
// execStatement directly instead.
func (in *Interpreter) executeLine(i int) {
	line := in.program.At(i)
	in.traceStatement(line.Number, line.Text)
	in.cur = newCursor(line.Text)
	in.execStatement()
}

// execStatement dispatches on the current line's leading keyword, or
// treats a non-empty remainder as an implicit LET. Keywords are matched
// by case-insensitive prefix (spec §4.1): PRINT, LET, GOTO, IF, DIM,
// INPUT, FOR, NEXT, END are mutually disjoint prefixes, so match order
// does not matter, but the order below follows the original dispatcher.
func (in *Interpreter) execStatement() {
	c := &in.cur
	c.skipSpace()

	switch {
	case c.matchKeyword("PRINT"):
		c.advance(5)
		in.execPrint()
	case c.matchKeyword("LET"):
		c.advance(3)
		in.execLet()
	case c.matchKeyword("GOTO"):
		c.advance(4)
		in.execGoto()
	case c.matchKeyword("IF"):
		c.advance(2)
		in.execIf()
	case c.matchKeyword("DIM"):
		c.advance(3)
		in.execDim()
	case c.matchKeyword("INPUT"):
		c.advance(5)
		in.execInput()
	case c.matchKeyword("FOR"):
		c.advance(3)
		in.execFor()
	case c.matchKeyword("NEXT"):
		c.advance(4)
		in.execNext()
	case c.matchKeyword("END"):
		in.lineIndex = in.program.Len()
	default:
		if !c.atEnd() {
			// A line that is not empty and matches none of the above is
			// assumed to be a LET without its keyword; execLet itself
			// diagnoses if what follows is not a variable name.
			in.execLet()
		}
	}
}
