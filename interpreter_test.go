package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jcorbin/tinybasic/internal/logio"
	"github.com/stretchr/testify/assert"
)

// runLines builds a fresh Interpreter, loads the given numbered program
// lines, runs it, and returns whatever it wrote to output.
func runLines(t *testing.T, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := New(WithOutput(&out))
	for _, l := range lines {
		number, rest, _, ok := splitNumberedLine(l)
		if !ok {
			t.Fatalf("malformed program line %q", l)
		}
		in.program.insertLine(number, rest)
	}
	in.RunProgram()
	return out.String()
}

func Test_scenario_helloWorld(t *testing.T) {
	got := runLines(t, `10 PRINT "HELLO"`)
	assert.Equal(t, "HELLO\n", got)
}

func Test_scenario_arithmeticPrecedence(t *testing.T) {
	got := runLines(t, "10 PRINT 2 + 3 * 4")
	assert.Equal(t, "14\n", got)
}

func Test_scenario_loopAndSum(t *testing.T) {
	got := runLines(t,
		"10 LET S = 0",
		"20 FOR I = 1 TO 5",
		"30 LET S = S + I",
		"40 NEXT I",
		"50 PRINT S",
	)
	assert.Equal(t, "15\n", got)
}

func Test_scenario_nestedLoops(t *testing.T) {
	got := runLines(t,
		"10 FOR I = 1 TO 2",
		"20 FOR J = 1 TO 2",
		"30 PRINT I, J",
		"40 NEXT J",
		"50 NEXT I",
	)
	assert.Equal(t, "1 1\n1 2\n2 1\n2 2\n", got)
}

func Test_scenario_conditionalGoto(t *testing.T) {
	got := runLines(t,
		"10 LET X = 0",
		"20 LET X = X + 1",
		"30 IF X < 3 THEN GOTO 20",
		"40 PRINT X",
	)
	assert.Equal(t, "3\n", got)
}

func Test_scenario_stringSlicing(t *testing.T) {
	got := runLines(t,
		`10 LET A$ = "HELLO"`,
		"20 PRINT LEFT$(A$,2), MID$(A$,2,3), RIGHT$(A$,2)",
	)
	assert.Equal(t, "HE ELL LO\n", got)
}

func Test_scenario_arrayUse(t *testing.T) {
	got := runLines(t,
		"10 DIM A(3)",
		"20 LET A[0] = 10",
		"30 LET A[1] = 20",
		"40 LET A[2] = 30",
		"50 PRINT A[0] + A[1] + A[2]",
	)
	assert.Equal(t, "60\n", got)
}

func Test_ifStringComparison(t *testing.T) {
	got := runLines(t,
		`10 LET A$ = "CAT"`,
		`20 IF A$ = "CAT" THEN PRINT "YES"`,
		`30 IF A$ <> "DOG" THEN PRINT "ALSO YES"`,
	)
	assert.Equal(t, "YES\nALSO YES\n", got)
}

func Test_ifTypeMismatch(t *testing.T) {
	var out, logged bytes.Buffer
	in := newLoggedInterpreter(&out, &logged)
	in.strs.set('A', "X")
	in.program.insertLine(10, `IF A$ = 1 THEN PRINT "NO"`)
	in.RunProgram()
	assert.Equal(t, "", out.String())
	assert.Contains(t, logged.String(), "type mismatch")
}

func Test_ifUnrecognizedOperatorDoesNotDiagnose(t *testing.T) {
	var out, logged bytes.Buffer
	in := newLoggedInterpreter(&out, &logged)
	in.program.insertLine(10, `IF 1 : 1 THEN PRINT "SHOULD NOT PRINT"`)
	in.program.insertLine(20, "PRINT 1")
	in.RunProgram()
	assert.Equal(t, "", logged.String(), "an unrecognized comparison operator is not diagnosed")
	assert.Equal(t, "1\n", out.String(), "the condition defaults to false and the trailing statement is skipped")
}

func Test_input(t *testing.T) {
	var out bytes.Buffer
	in := New(WithOutput(&out), WithInput(strings.NewReader("42 HELLO\n")))
	in.program.insertLine(10, "INPUT N, S$")
	in.program.insertLine(20, "PRINT N + 1")
	in.program.insertLine(30, "PRINT S$")
	in.RunProgram()
	assert.Equal(t, "43\nHELLO\n", out.String())
}

func Test_input_badIntegerAborts(t *testing.T) {
	var out, logged bytes.Buffer
	log := &logio.Logger{}
	log.SetOutput(nopCloser{&logged})
	in := New(WithOutput(&out), WithLogger(log), WithInput(strings.NewReader("notanumber 99\n")))
	in.program.insertLine(10, "INPUT N, M")
	in.program.insertLine(20, "PRINT M")
	in.RunProgram()
	assert.Contains(t, logged.String(), "invalid integer")
	assert.Equal(t, "0\n", out.String(), "the aborted destination keeps its prior (zero) value")
}

func Test_gotoUnknownLine(t *testing.T) {
	var out, logged bytes.Buffer
	in := newLoggedInterpreter(&out, &logged)
	in.program.insertLine(10, "GOTO 999")
	in.program.insertLine(20, "PRINT 1")
	in.RunProgram()
	assert.Contains(t, logged.String(), "999")
	assert.Equal(t, "1\n", out.String(), "an unknown GOTO target leaves control unchanged")
}

func Test_replEditorAndList(t *testing.T) {
	var out bytes.Buffer
	in := New(WithOutput(&out), WithInput(strings.NewReader(
		"10 PRINT 1\n20 PRINT 2\nLIST\nQUIT\n",
	)))
	in.Repl()
	assert.Contains(t, out.String(), "10 PRINT 1")
	assert.Contains(t, out.String(), "20 PRINT 2")
}
