package mdcode

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/shlex"
)

// Meta holds key-value metadata parsed from a fence's info string, either a
// JSON object or shell-style key=value words:
//
//	```text {"case":1}
//	```text case=1 kind=example
type Meta map[string]interface{}

// Get returns the metadata value for name as a string, or an empty string
// when it is missing.
func (m Meta) Get(name string) string {
	value, has := m[name]
	if !has {
		return ""
	}

	if s, ok := value.(string); ok {
		return s
	}

	return fmt.Sprint(value)
}

var (
	reJSON     = regexp.MustCompile(`^\s*{\s*["}]`)
	reBrackets = regexp.MustCompile(`^\s*{(.*)}$`)
)

func parseMeta(input []byte) (Meta, error) {
	if len(input) == 0 {
		return Meta{}, nil
	}

	if reJSON.Match(input) {
		var meta Meta

		if err := json.Unmarshal(input, &meta); err != nil {
			return nil, fmt.Errorf("fence metadata: %w", err)
		}

		return meta, nil
	}

	if subs := reBrackets.FindSubmatch(input); subs != nil {
		input = subs[1]
	}

	words, err := shlex.Split(string(input))
	if err != nil {
		return nil, fmt.Errorf("fence metadata: %w", err)
	}

	meta := make(Meta, len(words))

	for _, word := range words {
		if key, value, found := strings.Cut(word, "="); found {
			meta[key] = value
		}
	}

	return meta, nil
}
