// Package slug derives URL path segments from titles and tag names.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Make returns a lowercase, hyphen-separated slug for s. Letters and digits
// of any script are kept; diacritics on Latin letters are stripped, and any
// other run of punctuation or space becomes one hyphen. A result of "" means
// s has no letters or digits.
func Make(s string) string {
	var sb strings.Builder
	pendingDash := false
	afterLatin := false
	for _, r := range norm.NFD.String(s) {
		switch {
		case unicode.Is(unicode.M, r):
			// "é" -> "e", but marks that belong to other scripts stay
			if afterLatin || sb.Len() == 0 || pendingDash {
				continue
			}
			sb.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingDash && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingDash = false
			afterLatin = unicode.Is(unicode.Latin, r)
			sb.WriteRune(unicode.ToLower(r))
		case r == '\'' || r == '’':
			// apostrophes join words: "Lyle's" -> "lyles"
		default:
			pendingDash = true
			afterLatin = false
		}
	}
	return norm.NFC.String(sb.String())
}
