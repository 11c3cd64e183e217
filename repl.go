package main

import (
	"os"
	"strings"
)

// Repl runs the interactive loop described in spec §6: print a prompt,
// read a line, and dispatch it as an immediate command, a numbered
// program-editor line, or an immediate statement.
func (in *Interpreter) Repl() {
	for {
		in.writeString("> ")
		line, err := in.readLine()
		if err != nil {
			return
		}
		if !in.replLine(strings.TrimRight(line, "\r\n")) {
			return
		}
	}
}

// replLine interprets one REPL line. It returns false only for QUIT, which
// ends the session.
func (in *Interpreter) replLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}

	upper := strings.ToUpper(trimmed)
	switch {
	case upper == "QUIT":
		return false
	case upper == "NEW":
		in.reset()
	case upper == "LIST":
		for _, l := range in.program.listLines() {
			in.writeString(l)
			in.writeString("\n")
		}
	case upper == "RUN":
		if in.program.Len() == 0 {
			in.writeString("no program\n")
		} else {
			in.RunProgram()
		}
	case strings.HasPrefix(upper, "LOAD"):
		in.loadFile(strings.TrimSpace(trimmed[4:]))
	case strings.HasPrefix(upper, "SAVE"):
		in.saveFile(strings.TrimSpace(trimmed[4:]))
	default:
		if number, rest, _, ok := splitNumberedLine(trimmed); ok {
			in.program.insertLine(number, rest)
		} else {
			in.execImmediate(trimmed)
		}
	}
	return true
}

// execImmediate runs a REPL line as an immediate statement, restricted to
// PRINT, LET, DIM, INPUT, FOR, NEXT (spec §6); anything else diagnoses.
func (in *Interpreter) execImmediate(text string) {
	c := newCursor(text)
	c.skipSpace()

	switch {
	case c.matchKeyword("PRINT"), c.matchKeyword("LET"), c.matchKeyword("DIM"),
		c.matchKeyword("INPUT"), c.matchKeyword("FOR"), c.matchKeyword("NEXT"):
		in.cur = c
		in.execStatement()
	default:
		in.diagf("not an immediate statement")
	}
}

// loadFile clears the program and reads a new one from path, used by both
// the REPL's LOAD command and a bootstrap -load flag.
func (in *Interpreter) loadFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		in.diagf("open %s: %v", path, err)
		return
	}
	defer f.Close()
	if err := loadProgram(&in.program, f); err != nil {
		in.diagf("load %s: %v", path, err)
	}
}

// saveFile writes the resident program to path, used by the REPL's SAVE
// command.
func (in *Interpreter) saveFile(path string) {
	f, err := os.Create(path)
	if err != nil {
		in.diagf("create %s: %v", path, err)
		return
	}
	defer f.Close()
	if err := saveProgram(&in.program, f); err != nil {
		in.diagf("save %s: %v", path, err)
	}
}
