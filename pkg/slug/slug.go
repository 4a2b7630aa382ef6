// Package slug derives URL-safe topic identifiers from free-text titles.
package slug

import (
	"strings"
)

// Turkish characters fold to their ASCII neighbours; everything else outside
// [a-z0-9] becomes a hyphen.
var folds = map[rune]rune{
	'ğ': 'g', 'Ğ': 'g',
	'ü': 'u', 'Ü': 'u',
	'ş': 's', 'Ş': 's',
	'ı': 'i', 'İ': 'i',
	'ö': 'o', 'Ö': 'o',
	'ç': 'c', 'Ç': 'c',
}

// Make normalizes a title into a slug: lowercase, diacritics folded,
// non-alphanumeric runs collapsed to a single hyphen, ends trimmed.
// Two distinct titles may produce the same slug; callers must check
// existence before insert.
func Make(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	lastHyphen := true // swallow leading separators
	for _, r := range strings.ToLower(title) {
		if f, ok := folds[r]; ok {
			r = f
		}
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.TrimRight(b.String(), "-")
}
