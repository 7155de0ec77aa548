package editor

import "strings"

// safeChars are the bytes allowed through to the shell unquoted, besides
// ASCII letters and digits.
const safeChars = "-_./:@"

// Quote makes path safe to embed in a sh -c command line. Paths made only
// of alphanumerics and a small safe set pass through untouched; anything
// else is wrapped in single quotes with embedded single quotes rewritten as
// '\'', so the result always parses back as one word. Filenames containing
// quotes, spaces, or shell metacharacters must never become extra shell
// syntax.
func Quote(path string) string {
	if path == "" {
		return "''"
	}
	for i := 0; i < len(path); i++ {
		if !safeByte(path[i]) {
			return "'" + strings.ReplaceAll(path, "'", `'\''`) + "'"
		}
	}
	return path
}

func safeByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte(safeChars, c) >= 0
}
