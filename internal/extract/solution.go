package extract

import (
	"fmt"
	"sort"

	"github.com/ezerfernandes/lcsub/internal/region"
)

// Preset holds the patterns locating a solution in files of one language.
type Preset struct {
	Ext         string
	Opener      Pattern
	Terminators []Pattern
}

// Presets maps a language name to the patterns of its solution files.
var Presets = map[string]Preset{
	"rust": {
		Ext:         ".rs",
		Opener:      Contains("impl Solution"),
		Terminators: []Pattern{Prefix("fn main()"), Prefix("#[cfg(test)]")},
	},
	"cpp": {
		Ext:         ".cpp",
		Opener:      Contains("class Solution"),
		Terminators: []Pattern{Prefix("int main(")},
	},
	"java": {
		Ext:         ".java",
		Opener:      Contains("class Solution"),
		Terminators: []Pattern{Prefix("class Main"), Prefix("public class Main")},
	},
}

// Languages returns the names of all presets in sorted order.
func Languages() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Lookup returns the preset for lang.
func Lookup(lang string) (Preset, error) {
	preset, ok := Presets[lang]
	if !ok {
		return Preset{}, fmt.Errorf("unknown language %q (known: %v)", lang, Languages())
	}

	return preset, nil
}

// DefaultRegion is the region name that overrides pattern based extraction.
const DefaultRegion = "solution"

// Solution extracts the solution from src. A region named name, when present,
// is returned as is; otherwise the preset's patterns drive [Extract]. An
// empty name disables the region lookup.
func Solution(src string, preset Preset, name string) (Result, error) {
	if len(name) != 0 {
		body, found, err := region.Read(src, name)
		if err != nil {
			return Result{}, err
		}

		if found {
			return Result{Lines: Lines(body), Found: true, Closed: true}, nil
		}
	}

	return Extract(Lines(src), preset.Opener, preset.Terminators...), nil
}
