package main

import (
	"io"
	"strings"

	"github.com/jcorbin/tinybasic/internal/fileinput"
	"github.com/jcorbin/tinybasic/internal/flushio"
	"github.com/jcorbin/tinybasic/internal/logio"
	"github.com/jcorbin/tinybasic/internal/runeio"
)

// Core wires an Interpreter to the outside world: a queue of named input
// sources (REPL stdin, or any reader given to WithInput), a flush-on-demand
// output writer, and a leveled diagnostic/trace logger. It is adapted from
// the teacher's own Core, trimmed to what a synchronous line interpreter
// needs: no program-counter halting, since spec §7 makes every runtime
// error non-fatal rather than a VM-ending condition.
type Core struct {
	fileinput.Input
	out     flushio.WriteFlusher
	log     *logio.Logger
	trace   bool
	closers []io.Closer
}

// Close releases any owned closer (an output writer given to WithOutput
// that is also an io.Closer), most-recently-added first.
func (c *Core) Close() (err error) {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if cerr := c.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// diagf reports a non-fatal runtime diagnostic (spec §7). Diagnostics are
// written at ERROR level but never flip the logger's exit code: per spec
// §6, a session's exit status is fixed at 0 on normal termination
// regardless of how many diagnostics fired along the way.
func (c *Core) diagf(format string, args ...interface{}) {
	c.log.Printf("ERROR", format, args...)
}

// traceStatement logs one executed line when -trace is enabled, mirroring
// the teacher's own -trace step logging.
func (c *Core) traceStatement(lineNumber int32, text string) {
	if c.trace {
		c.log.Printf("TRACE", "%d %s", lineNumber, text)
	}
}

// writeString writes program output. Unlike the teacher's Forth VM, which
// halts on any output-write failure because output is part of its core
// semantics, a write failure here is swallowed: spec §7 defines every
// runtime condition in this interpreter as non-fatal, and stdout going
// away mid-PRINT has no sensible recovery within that model.
func (c *Core) writeString(s string) {
	_, _ = runeio.WriteANSIString(c.out, s)
}

// flushOutput ensures PRINT output reaches the terminal before a
// subsequent blocking read, the same ordering the teacher's output
// write-flusher gives its own blocking input reads.
func (c *Core) flushOutput() {
	if c.out != nil {
		_ = c.out.Flush()
	}
}

// readLine blocks for one line of input, used by the REPL prompt and by
// INPUT. Output is flushed first so any pending prompt or PRINT is visible.
func (c *Core) readLine() (string, error) {
	c.flushOutput()
	var sb strings.Builder
	for {
		r, _, err := c.Input.ReadRune()
		if err != nil {
			if sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		}
		switch r {
		case '\n':
			return sb.String(), nil
		case '\r':
			// ignore
		default:
			sb.WriteRune(r)
		}
	}
}
