package hooks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// expandPath expands a leading "~" and then environment variables ($NAME,
// ${NAME}) the way a shell would. Only "~" alone or followed by a separator
// is the home directory; "~user" stays literal, as does a "~" that comes
// from a variable's value. Unset variables and malformed references are
// errors rather than being replaced with an empty string.
func expandPath(path string) (string, error) {
	home, rest := "", path
	if hasHomePrefix(path) {
		if dir, err := homedir.Dir(); err == nil {
			home, rest = dir, path[1:]
		}
	}

	expanded, err := expandEnv(rest, os.LookupEnv)
	if err != nil {
		return "", &PathExpansionError{Path: path, Err: err}
	}

	return home + expanded, nil
}

func hasHomePrefix(path string) bool {
	if path == "~" {
		return true
	}
	return len(path) > 1 && path[0] == '~' && (path[1] == '/' || path[1] == filepath.Separator)
}

// expandEnv replaces $NAME and ${NAME} using lookup. A "$" that does not
// start a variable name is kept literally.
func expandEnv(s string, lookup func(string) (string, bool)) (string, error) {
	if !strings.Contains(s, "$") {
		return s, nil
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '$' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}

		var name string
		next := s[i+1]
		switch {
		case next == '{':
			end := strings.IndexByte(s[i+2:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: unterminated ${ at offset %d", ErrMalformedPath, i)
			}
			name = s[i+2 : i+2+end]
			if !isVarName(name) {
				return "", fmt.Errorf("%w: invalid name %q", ErrMalformedPath, name)
			}
			i += end + 2
		case isVarStart(next):
			end := i + 2
			for end < len(s) && isVarChar(s[end]) {
				end++
			}
			name = s[i+1 : end]
			i = end - 1
		default:
			b.WriteByte('$')
			continue
		}

		value, ok := lookup(name)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUndefinedVariable, name)
		}
		b.WriteString(value)
	}

	return b.String(), nil
}

func isVarName(name string) bool {
	if name == "" || !isVarStart(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isVarChar(name[i]) {
			return false
		}
	}
	return true
}

func isVarStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isVarChar(c byte) bool {
	return isVarStart(c) || (c >= '0' && c <= '9')
}
