package main

import "fmt"

// maxForFrames bounds the FOR...NEXT control stack.
const maxForFrames = 10

// forFrame pins one active FOR statement: the variable being stepped, its
// termination and step values, and the program-buffer index of the FOR
// statement itself (used both to detect re-entry and to re-enter on NEXT).
type forFrame struct {
	varName   byte
	end       int32
	step      int32
	lineIndex int
}

type forStack struct {
	frames []forFrame
}

func (s *forStack) reset() { s.frames = nil }

func (s *forStack) top() (forFrame, bool) {
	if len(s.frames) == 0 {
		return forFrame{}, false
	}
	return s.frames[len(s.frames)-1], true
}

func (s *forStack) push(f forFrame) error {
	if len(s.frames) >= maxForFrames {
		return forStackOverflowError{}
	}
	s.frames = append(s.frames, f)
	return nil
}

func (s *forStack) pop() {
	s.frames = s.frames[:len(s.frames)-1]
}

type forStackOverflowError struct{}

func (forStackOverflowError) Error() string { return "FOR stack overflow" }

type forMismatchError struct{ varName byte }

func (e forMismatchError) Error() string {
	return fmt.Sprintf("NEXT %c without matching FOR", e.varName)
}

type forNotFoundError struct{ varName byte }

func (e forNotFoundError) Error() string {
	return fmt.Sprintf("matching NEXT %c not found", e.varName)
}

// execFor implements FOR v = start TO end [STEP step]. See spec §4.5: a
// re-entry (the top frame's line index is this FOR's line index) skips
// re-initialization and variable assignment, since NEXT already stepped
// the variable before jumping back here.
func (in *Interpreter) execFor() {
	c := &in.cur
	varName, ok := c.readLetter()
	if !ok {
		in.diagf("expected variable name in FOR")
		return
	}
	c.readRune('=')

	start := in.expression()
	c.skipSpace()
	if !c.matchKeyword("TO") {
		in.diagf("expected TO in FOR")
		return
	}
	c.advance(2)

	end := in.expression()
	c.skipSpace()

	step := int32(1)
	if c.matchKeyword("STEP") {
		c.advance(4)
		step = in.expression()
	}

	top, hasTop := in.forStack.top()
	reentry := hasTop && top.lineIndex == in.lineIndex

	if !reentry {
		if err := in.forStack.push(forFrame{varName, end, step, in.lineIndex}); err != nil {
			in.diagf(err.Error())
			return
		}
		in.vars.set(varName, start)
	}

	current := in.vars.get(varName)
	done := (step > 0 && current > end) || (step < 0 && current < end)
	if done {
		in.forStack.pop()
		in.skipToNext(varName)
	}
}

// execNext implements NEXT v: step the loop variable and re-enter the FOR.
func (in *Interpreter) execNext() {
	c := &in.cur
	varName, ok := c.readLetter()
	if !ok {
		in.diagf("expected variable name in NEXT")
		return
	}

	top, hasTop := in.forStack.top()
	if !hasTop || top.varName != varName {
		in.diagf(forMismatchError{varName}.Error())
		return
	}

	in.vars.set(varName, in.vars.get(varName)+top.step)
	in.lineIndex = top.lineIndex - 1
}

// skipToNext implements the forward skip scan of spec §4.6: starting from
// the line after the current one, it walks forward honoring FOR/NEXT
// nesting so that a NEXT belonging to an inner loop is ignored.
func (in *Interpreter) skipToNext(varName byte) {
	nesting := 0
	for i := in.lineIndex + 1; i < in.program.Len(); i++ {
		c := newCursor(in.program.At(i).Text)
		c.skipSpace()
		switch {
		case c.matchKeyword("FOR"):
			nesting++
		case c.matchKeyword("NEXT"):
			if nesting == 0 {
				c.advance(4)
				if next, ok := c.readLetter(); ok && next == varName {
					in.lineIndex = i
					return
				}
			} else {
				nesting--
			}
		}
	}
	in.diagf(forNotFoundError{varName}.Error())
	in.lineIndex = in.program.Len()
}
