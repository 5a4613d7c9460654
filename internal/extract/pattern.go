package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
	"github.com/google/shlex"
)

// Pattern is a line predicate. Index returns the byte offset in line where the
// pattern matches, or -1 when it does not match.
type Pattern interface {
	Index(line string) int
}

// PatternFunc adapts a function to the [Pattern] interface.
type PatternFunc func(line string) int

func (f PatternFunc) Index(line string) int {
	return f(line)
}

// Contains matches lines containing text anywhere.
func Contains(text string) Pattern {
	return PatternFunc(func(line string) int {
		return strings.Index(line, text)
	})
}

// Prefix matches lines starting with text once leading blanks are removed.
func Prefix(text string) Pattern {
	return PatternFunc(func(line string) int {
		trimmed := strings.TrimLeft(line, " \t")
		if !strings.HasPrefix(trimmed, text) {
			return -1
		}

		return len(line) - len(trimmed)
	})
}

// Regexp matches lines where re finds a match.
func Regexp(re *regexp.Regexp) Pattern {
	return PatternFunc(func(line string) int {
		loc := re.FindStringIndex(line)
		if loc == nil {
			return -1
		}

		return loc[0]
	})
}

// Glob matches lines whose trimmed content matches the glob expression as a
// whole, e.g. "impl * for Solution*".
func Glob(expr string) (Pattern, error) {
	g, err := glob.Compile(expr)
	if err != nil {
		return nil, err
	}

	return PatternFunc(func(line string) int {
		trimmed := strings.TrimSpace(line)
		if !g.Match(trimmed) {
			return -1
		}

		return strings.Index(line, trimmed)
	}), nil
}

// ErrEmptyPattern is returned when a pattern has no text to match.
var ErrEmptyPattern = errors.New("empty pattern")

// ParsePattern builds a pattern from its textual form "kind:text", where kind
// is one of contains, prefix, glob or regexp. Text without a known kind is a
// contains pattern.
func ParsePattern(expr string) (Pattern, error) {
	kind, text, found := strings.Cut(expr, ":")
	if !found {
		kind = ""
	}

	switch kind {
	case "contains":
	case "prefix":
		if len(text) == 0 {
			return nil, ErrEmptyPattern
		}

		return Prefix(text), nil
	case "glob":
		return Glob(text)
	case "regexp", "re":
		re, err := regexp.Compile(text)
		if err != nil {
			return nil, err
		}

		return Regexp(re), nil
	default:
		text = expr
	}

	if len(text) == 0 {
		return nil, ErrEmptyPattern
	}

	return Contains(text), nil
}

// ParsePatterns splits list shell-style and parses every word with
// [ParsePattern], so "'prefix:fn main()' 'prefix:#[cfg(test)]'" yields two
// patterns.
func ParsePatterns(list string) ([]Pattern, error) {
	words, err := shlex.Split(list)
	if err != nil {
		return nil, err
	}

	patterns := make([]Pattern, 0, len(words))

	for _, word := range words {
		p, err := ParsePattern(word)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", word, err)
		}

		patterns = append(patterns, p)
	}

	return patterns, nil
}
