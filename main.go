package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jcorbin/tinybasic/internal/panicerr"
)

var (
	traceFlag      = flag.Bool("trace", false, "log each executed statement to stderr")
	loadFlag       = flag.String("load", "", "load a program file before entering the REPL")
	arrayLimitFlag = flag.Int("array-limit", defaultMaxArraySize, "maximum element count DIM will accept")
)

func main() {
	flag.Parse()

	in := New(
		WithInput(os.Stdin),
		WithTrace(*traceFlag),
		WithArrayLimit(int32(*arrayLimitFlag)),
	)

	if *loadFlag != "" {
		in.loadFile(*loadFlag)
	}

	if err := panicerr.Recover("tinybasic", func() error {
		in.Repl()
		return nil
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(in.log.ExitCode())
}
