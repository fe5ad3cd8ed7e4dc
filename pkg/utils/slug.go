package utils

import (
	"path/filepath"
	"strings"
	"unicode"
)

const maxSlugLength = 64

// Slugify turns an uploaded file name into a lowercase, dash separated token
// usable as an object key. The extension is dropped.
func Slugify(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = strings.TrimSuffix(base, filepath.Ext(base))

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(base) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}

		if b.Len() >= maxSlugLength {
			break
		}
	}

	return strings.Trim(b.String(), "-")
}
