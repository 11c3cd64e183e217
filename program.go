package main

import "fmt"

// maxProgramLines and maxLineLength bound the resident program buffer (spec
// §3): at most 1000 lines, each up to 255 characters of text.
const (
	maxProgramLines = 1000
	maxLineLength   = 255
)

// programLine is one stored line: a line number paired with its text.
type programLine struct {
	Number int32
	Text   string
}

// program is the ordered sequence of program lines. Line numbers are kept
// strictly increasing by position; there are never duplicates. It is
// mutated only by insertLine (the editor operation named in spec §6) and
// by clear (NEW and LOAD).
type program struct {
	lines []programLine
}

func (p *program) Len() int { return len(p.lines) }

func (p *program) At(i int) programLine { return p.lines[i] }

func (p *program) clear() { p.lines = nil }

func (p *program) indexOf(number int32) (int, bool) {
	for i, l := range p.lines {
		if l.Number == number {
			return i, true
		}
	}
	return 0, false
}

// insertLine implements spec §6's editor operation: replace an existing
// line, delete it (empty text), insert a new one keeping line numbers
// strictly ordered, or silently drop the line if the buffer is full.
func (p *program) insertLine(number int32, text string) {
	if len(text) > maxLineLength {
		text = text[:maxLineLength]
	}

	if i, ok := p.indexOf(number); ok {
		if text == "" {
			p.lines = append(p.lines[:i], p.lines[i+1:]...)
		} else {
			p.lines[i].Text = text
		}
		return
	}

	if text == "" || len(p.lines) >= maxProgramLines {
		return
	}

	pos := len(p.lines)
	for i, l := range p.lines {
		if l.Number > number {
			pos = i
			break
		}
	}
	p.lines = append(p.lines, programLine{})
	copy(p.lines[pos+1:], p.lines[pos:])
	p.lines[pos] = programLine{number, text}
}

// listLines renders each program line as "<number> <text>" for the LIST
// command, in program order.
func (p *program) listLines() []string {
	out := make([]string, len(p.lines))
	for i, l := range p.lines {
		out[i] = fmt.Sprintf("%d %s", l.Number, l.Text)
	}
	return out
}
