// Package region reads named #region/#endregion sections from source files.
//
// A marker is a comment line in any language, for example:
//
//	// #region solution
//	...
//	// #endregion
package region

import (
	"errors"
	"fmt"
	"regexp"
)

const (
	reSpec       = `[!"#$%%&'()*+,\-./:;<=>?@[\\\]^_{|}~]`
	reLineBegin  = `(?m)^[[:blank:]]*`
	reLineEnd    = `*[[:blank:]]*(?:\r?\n|\z)`
	regionFormat = reLineBegin + reSpec +
		`+[[:blank:]]*#region[[:blank:]]+%s[[:blank:]]*` +
		reSpec + reLineEnd
	namedEndFormat = reLineBegin + reSpec +
		`+[[:blank:]]*#endregion[[:blank:]]+%s[[:blank:]]*` +
		reSpec + reLineEnd
)

var (
	reEnd  = regexp.MustCompile(fmt.Sprintf(reLineBegin+reSpec+`+[[:blank:]]*#endregion[[:blank:]]*`+reSpec+reLineEnd))
	reName = regexp.MustCompile(`^\w+$`)
)

// ErrInvalidName is returned for region names that are not a single word.
var ErrInvalidName = errors.New("invalid region name")

func marker(format string, name string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(format, regexp.QuoteMeta(name)))
}

// Read returns the text between the #region marker with the given name and
// the first #endregion after it, preferring an #endregion carrying the same
// name. The bool return reports whether the region was found.
func Read(source string, name string) (string, bool, error) {
	if !reName.MatchString(name) {
		return "", false, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	idxBegin := marker(regionFormat, name).FindStringIndex(source)
	if idxBegin == nil {
		return "", false, nil
	}

	rest := source[idxBegin[1]:]

	idxEnd := marker(namedEndFormat, name).FindStringIndex(rest)
	if idxEnd == nil {
		idxEnd = reEnd.FindStringIndex(rest)
		if idxEnd == nil {
			return "", false, nil
		}
	}

	return rest[:idxEnd[0]], true, nil
}
