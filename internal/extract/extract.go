// Package extract isolates a solution block from a larger source file.
//
// The block is found line by line: an opener pattern marks its first line and
// brace depth, tracked with package scan, marks its last. Terminator patterns
// mark where local-only code (an entry point, a test module) begins.
package extract

import (
	"strings"

	"github.com/ezerfernandes/lcsub/internal/scan"
)

// Result is the outcome of [Extract].
type Result struct {
	// Lines holds the extracted block, or the fallback prefix when the
	// opener was not found.
	Lines []string
	// Found reports whether the opener was seen.
	Found bool
	// Closed reports whether the block's depth returned to zero before the
	// input or a terminator ended it.
	Closed bool
}

func (r Result) String() string {
	return strings.Join(r.Lines, "\n")
}

// Extract returns the lines of the block opened by the first line matching
// opener, up to and including the line that brings its depth back to zero.
// The opener only counts outside line comments, and the block is not
// considered closed before a brace has been opened, so an opener line without
// a brace keeps collecting.
//
// A terminator seen before the opener ends the search; the lines before it are
// returned with Found unset. Once the block is open, terminators are only
// honoured at depth zero and the terminating line is never included.
// Unterminated blocks return everything collected.
func Extract(lines []string, opener Pattern, terminators ...Pattern) Result {
	var (
		res     Result
		depth   int
		entered bool
	)

	for i, line := range lines {
		if depth == 0 && matchesAny(line, terminators) {
			if !res.Found {
				res.Lines = lines[:i]
			}

			return res
		}

		if !res.Found {
			idx := opener.Index(line)
			if idx < 0 || scan.At(line, idx) == scan.InLineComment {
				continue
			}

			res.Found = true
		}

		res.Lines = append(res.Lines, line)

		depth += scan.Line(line, depth)
		if depth > 0 || opensBrace(line) {
			entered = true
		}

		if depth == 0 && entered {
			res.Closed = true

			return res
		}
	}

	if !res.Found {
		res.Lines = lines
	}

	return res
}

func opensBrace(line string) bool {
	opens := false

	scan.Walk(line, func(_ int, r rune, st scan.State) {
		if r == '{' && st == scan.Normal {
			opens = true
		}
	})

	return opens
}

func matchesAny(line string, patterns []Pattern) bool {
	for _, p := range patterns {
		if p.Index(line) >= 0 {
			return true
		}
	}

	return false
}

// Lines splits src into lines. Both "\n" and "\r\n" end a line and a final
// line terminator does not produce an empty trailing line.
func Lines(src string) []string {
	if len(src) == 0 {
		return nil
	}

	lines := strings.Split(strings.TrimSuffix(src, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
