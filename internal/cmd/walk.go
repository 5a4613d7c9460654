package cmd

import (
	"github.com/ezerfernandes/lcsub/internal/mdcode"
	"github.com/gobwas/glob"
)

type filterFunc func(lang string) bool

// filter accepts blocks whose language matches one of the glob patterns. An
// empty pattern list accepts every block.
func filter(langs []string) (filterFunc, error) {
	globs := make([]glob.Glob, 0, len(langs))

	for _, lang := range langs {
		g, err := glob.Compile(lang)
		if err != nil {
			return nil, err
		}

		globs = append(globs, g)
	}

	return func(lang string) bool {
		if len(globs) == 0 {
			return true
		}

		for _, g := range globs {
			if g.Match(lang) {
				return true
			}
		}

		return false
	}, nil
}

func walk(source []byte, walker mdcode.Walker, filter filterFunc) error {
	return mdcode.Walk(source, func(block *mdcode.Block) error {
		if filter(block.Lang) {
			return walker(block)
		}

		return nil
	})
}
