package main

// nextInputToken returns the next whitespace-delimited token for INPUT,
// reading additional physical lines as needed when the current one is
// exhausted. It reports false only on end of input.
func (in *Interpreter) nextInputToken() (string, bool) {
	for {
		for in.inPos < len(in.inLine) && isInputSpace(in.inLine[in.inPos]) {
			in.inPos++
		}
		if in.inPos < len(in.inLine) {
			start := in.inPos
			for in.inPos < len(in.inLine) && !isInputSpace(in.inLine[in.inPos]) {
				in.inPos++
			}
			return in.inLine[start:in.inPos], true
		}

		line, err := in.readLine()
		if err != nil {
			return "", false
		}
		in.inLine = line
		in.inPos = 0
	}
}

// drainInputLine discards whatever remains of the current physical INPUT
// line without reading another one. Per spec this happens unconditionally
// after the destination list, whether it completed or was aborted.
func (in *Interpreter) drainInputLine() {
	in.inPos = len(in.inLine)
}

func isInputSpace(b byte) bool { return b == ' ' || b == '\t' }
