package server

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// secureFilename reduces an uploaded file name to a flat ASCII name that is
// safe to join with the upload directory. Accented letters are folded to
// their base letter, separators and whitespace become "_", and anything
// else outside [A-Za-z0-9_.-] is removed. Leading and trailing dots and
// underscores are stripped, so the result may be empty.
func secureFilename(name string) string {
	decomposed := norm.NFKD.String(name)

	var sb strings.Builder
	for _, r := range decomposed {
		if r > unicode.MaxASCII {
			continue
		}
		if r == '/' || r == '\\' {
			r = ' '
		}
		sb.WriteRune(r)
	}

	flat := strings.Join(strings.Fields(sb.String()), "_")
	return strings.Trim(unsafeFilenameChars.ReplaceAllString(flat, ""), "._")
}
