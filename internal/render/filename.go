package render

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SafeFileName turns arbitrary text into a filename-safe token: diacritics
// and punctuation are stripped, whitespace runs collapse to single
// underscores. "Acme Inc." becomes "Acme_Inc".
func SafeFileName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, _ = transform.String(t, s)

	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			b.WriteRune(' ')
		}
		//everything else (punctuation, symbols) is dropped
	}
	return strings.Join(strings.Fields(b.String()), "_")
}

// ArtifactName derives the deterministic artifact filename for a job.
// The applicator relies on the exact same derivation to find the files.
func ArtifactName(company, title, suffix string) string {
	return SafeFileName(company) + "_" + SafeFileName(title) + "_" + suffix
}
