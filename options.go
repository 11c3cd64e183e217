package main

import (
	"io"
	"os"

	"github.com/jcorbin/tinybasic/internal/flushio"
	"github.com/jcorbin/tinybasic/internal/logio"
)

// Option configures an Interpreter at construction time, following the
// same functional-options shape the teacher uses for its VM.
type Option interface{ apply(in *Interpreter) }

type optionFunc func(in *Interpreter)

func (f optionFunc) apply(in *Interpreter) { f(in) }

// WithInput queues r as a source of REPL/INPUT lines, after any
// previously queued input.
func WithInput(r io.Reader) Option {
	return optionFunc(func(in *Interpreter) {
		in.Queue = append(in.Queue, r)
	})
}

// WithOutput sets the interpreter's PRINT/LIST/prompt destination;
// diagnostics go to the logger instead (see WithLogger).
func WithOutput(w io.Writer) Option {
	return optionFunc(func(in *Interpreter) {
		in.out = flushio.NewWriteFlusher(w)
		if cl, ok := w.(io.Closer); ok {
			in.closers = append(in.closers, cl)
		}
	})
}

// WithLogger sets the destination for diagnostics and trace output.
func WithLogger(log *logio.Logger) Option {
	return optionFunc(func(in *Interpreter) { in.log = log })
}

// WithTrace enables per-statement trace logging.
func WithTrace(trace bool) Option {
	return optionFunc(func(in *Interpreter) { in.trace = trace })
}

// WithArrayLimit overrides the maximum element count DIM will accept,
// in place of defaultMaxArraySize.
func WithArrayLimit(limit int32) Option {
	return optionFunc(func(in *Interpreter) { in.arrays.limit = limit })
}

var defaultOptions = []Option{
	WithOutput(os.Stdout),
}

// New builds an Interpreter, applying defaults first so explicit options
// can override them.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{}
	in.log = &logio.Logger{}
	in.log.SetOutput(nopCloser{os.Stderr})
	in.arrays.limit = defaultMaxArraySize
	for _, opt := range defaultOptions {
		opt.apply(in)
	}
	for _, opt := range opts {
		opt.apply(in)
	}
	return in
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
