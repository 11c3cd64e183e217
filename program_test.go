package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_editorMonotonicity(t *testing.T) {
	var p program
	for _, op := range []struct {
		number int32
		text   string
	}{
		{30, "PRINT 3"},
		{10, "PRINT 1"},
		{20, "PRINT 2"},
		{20, "PRINT TWO"}, // replace
		{10, ""},          // delete
		{40, "PRINT 4"},
	} {
		p.insertLine(op.number, op.text)
		var last int32 = -1
		for i := 0; i < p.Len(); i++ {
			n := p.At(i).Number
			assert.Greater(t, n, last, "line numbers must be strictly increasing after insertLine(%d, %q)", op.number, op.text)
			last = n
		}
	}
	require.Equal(t, 3, p.Len())
	assert.Equal(t, int32(20), p.At(0).Number)
	assert.Equal(t, "PRINT TWO", p.At(0).Text)
	assert.Equal(t, int32(40), p.At(2).Number)
}

func Test_editorFullBufferDropsSilently(t *testing.T) {
	var p program
	for i := int32(0); i < maxProgramLines; i++ {
		p.insertLine(i+1, "PRINT 1")
	}
	require.Equal(t, maxProgramLines, p.Len())
	p.insertLine(maxProgramLines+1, "PRINT 1")
	assert.Equal(t, maxProgramLines, p.Len(), "an insert into a full buffer is silently dropped")
}

func Test_lineLengthTruncation(t *testing.T) {
	var p program
	long := make([]byte, maxLineLength+50)
	for i := range long {
		long[i] = 'X'
	}
	p.insertLine(10, string(long))
	require.Equal(t, 1, p.Len())
	assert.Len(t, p.At(0).Text, maxLineLength)
}

func Test_saveLoadRoundTrip(t *testing.T) {
	var p program
	p.insertLine(10, `PRINT "HELLO"`)
	p.insertLine(20, "LET X = 1 + 2")
	p.insertLine(30, "FOR I = 1 TO 10")
	p.insertLine(40, "NEXT I")

	var buf bytes.Buffer
	require.NoError(t, saveProgram(&p, &buf))

	var p2 program
	p2.insertLine(999, "stale") // loadProgram should clear this
	require.NoError(t, loadProgram(&p2, &buf))

	require.Equal(t, p.Len(), p2.Len())
	for i := 0; i < p.Len(); i++ {
		assert.Equal(t, p.At(i), p2.At(i))
	}
}

func Test_splitNumberedLine(t *testing.T) {
	for _, tc := range []struct {
		in         string
		number     int32
		rest       string
		hasText    bool
		ok         bool
	}{
		{"10 PRINT X", 10, "PRINT X", true, true},
		{"10", 10, "", false, true},
		{"-5 LET X = 1", -5, "LET X = 1", true, true},
		{"PRINT X", 0, "", false, false},
		{"  20   LET X = 1  ", 20, "LET X = 1  ", true, true},
	} {
		number, rest, hasText, ok := splitNumberedLine(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if !tc.ok {
			continue
		}
		assert.Equal(t, tc.number, number, tc.in)
		assert.Equal(t, tc.rest, rest, tc.in)
		assert.Equal(t, tc.hasText, hasText, tc.in)
	}
}
