package main

// The dialect's 26-slot stores for numeric and string variables. Both are
// indexed directly by letter (A-Z); there are no multi-character
// identifiers to hash.

func letterIndex(name byte) int { return int(name - 'A') }

// numericStore holds the 26 numeric variables A-Z. Every slot starts at
// zero and lives for the interpreter session.
type numericStore struct {
	vals [26]int32
}

func (s *numericStore) get(name byte) int32 { return s.vals[letterIndex(name)] }

func (s *numericStore) set(name byte, v int32) { s.vals[letterIndex(name)] = v }

func (s *numericStore) reset() { s.vals = [26]int32{} }

// stringStore holds the 26 string variables A$-Z$. A slot's zero value,
// "absent", reads as empty; present tracks the distinction from the data
// model even though no operation currently surfaces it to a BASIC program.
type stringStore struct {
	vals    [26]string
	present [26]bool
}

func (s *stringStore) get(name byte) string { return s.vals[letterIndex(name)] }

// set reassigns a string variable, releasing the prior value (a no-op for a
// garbage-collected string, but the call site mirrors the ownership model
// spec'd for languages that must free the old value explicitly).
func (s *stringStore) set(name byte, v string) {
	idx := letterIndex(name)
	s.vals[idx] = v
	s.present[idx] = true
}

func (s *stringStore) reset() {
	s.vals = [26]string{}
	s.present = [26]bool{}
}
