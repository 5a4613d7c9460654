// Package scan tracks brace nesting in source lines without parsing them.
//
// The scanner knows just enough lexical structure to skip delimiters that
// appear inside string literals, character literals and line comments. It is
// not a tokenizer: block comments, raw strings and byte literals are out of
// its reach.
package scan

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// State is the lexical context a rune is read in. Every line starts in Normal.
type State int

const (
	Normal State = iota
	InString
	InChar
	InLineComment
)

func (s State) String() string {
	switch s {
	case Normal:
		return "normal"
	case InString:
		return "string"
	case InChar:
		return "char"
	case InLineComment:
		return "comment"
	default:
		return "unknown"
	}
}

// Walk calls fn for every rune of line, passing its byte offset and the state
// the rune is read in. Opening quotes are reported as Normal, closing quotes
// as the literal they terminate.
func Walk(line string, fn func(offset int, r rune, state State)) {
	var (
		state   = Normal
		escaped bool
		prev    rune
	)

	for i, r := range line {
		cur := state

		switch state {
		case Normal:
			switch {
			case r == '/' && strings.HasPrefix(line[i+1:], "/"):
				state = InLineComment
				cur = InLineComment
			case r == '"':
				state = InString
			case r == '\'' && opensChar(line[i+1:], prev):
				state = InChar
			}
		case InString, InChar:
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"' && state == InString, r == '\'' && state == InChar:
				state = Normal
			}
		case InLineComment:
		}

		fn(i, r, cur)

		prev = r
	}
}

// opensChar reports whether an apostrophe followed by rest starts a character
// literal. An apostrophe right after an identifier character never does, and
// neither does one introducing a lifetime or label ('a, 'static).
func opensChar(rest string, prev rune) bool {
	if isIdent(prev) {
		return false
	}

	first, n := utf8.DecodeRuneInString(rest)
	if first == '_' || unicode.IsLetter(first) {
		next, _ := utf8.DecodeRuneInString(rest[n:])

		return next == '\''
	}

	return true
}

func isIdent(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// At returns the state the rune starting at offset is read in. Offsets past
// the end of line report the state of the last rune.
func At(line string, offset int) State {
	state := Normal
	found := false

	Walk(line, func(i int, _ rune, st State) {
		if found {
			return
		}

		state = st
		found = i >= offset
	})

	return state
}

// Line returns the change in nesting depth contributed by line when it is
// entered at depth. A closing brace that would take the running depth below
// zero is ignored.
func Line(line string, depth int) int {
	delta := 0

	Walk(line, func(_ int, r rune, st State) {
		if st != Normal {
			return
		}

		switch r {
		case '{':
			delta++
		case '}':
			if depth+delta > 0 {
				delta--
			}
		}
	})

	return delta
}
