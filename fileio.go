package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// splitNumberedLine recognizes the "<integer> <rest>" shape shared by the
// program source file format (spec §6) and by the REPL's own line-number
// recognition. hasText reports whether any non-empty rest followed the
// number; ok reports whether the line began with a valid integer at all.
func splitNumberedLine(s string) (number int32, rest string, hasText bool, ok bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digitsStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == digitsStart {
		return 0, "", false, false
	}

	var n int32
	for j := digitsStart; j < i; j++ {
		n = n*10 + int32(s[j]-'0')
	}
	if s[start] == '-' {
		n = -n
	}

	rest = strings.TrimLeft(s[i:], " \t")
	return n, rest, rest != "", true
}

// saveProgram writes the program to w in the plain-text source format:
// one "<line_number> <text>" line per program line.
func saveProgram(p *program, w io.Writer) error {
	for i := 0; i < p.Len(); i++ {
		l := p.At(i)
		if _, err := fmt.Fprintf(w, "%d %s\n", l.Number, l.Text); err != nil {
			return err
		}
	}
	return nil
}

// loadProgram clears p, then reads lines from r, inserting every line that
// matches "<integer> <rest>" and silently skipping any that don't.
func loadProgram(p *program, r io.Reader) error {
	p.clear()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if number, rest, hasText, ok := splitNumberedLine(sc.Text()); ok && hasText {
			p.insertLine(number, rest)
		}
	}
	return sc.Err()
}
