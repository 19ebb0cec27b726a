package romaji

import (
	"strings"
	"unicode/utf8"
)

// DecodeToHiragana converts Hepburn-flavored romaji to hiragana. At each
// position the longest literal prefix wins; a doubled consonant becomes a
// small tsu; anything else is copied through unchanged. The passthrough is
// deliberate and differs from the encoder, which drops unmapped input.
func DecodeToHiragana(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		rest := text[i:]

		if n, kana := longestLiteralMatch(rest); n > 0 {
			b.WriteString(kana)
			i += n
			continue
		}

		// A doubled consonant marks gemination: consume the first of the
		// pair as っ and let the second open the next mora. "nn" never
		// geminates; it resolves as two "n" literals above.
		if len(rest) >= 2 && rest[0] == rest[1] && isDoublingConsonant(rest[0]) {
			b.WriteRune('っ')
			i++
			continue
		}

		r, size := utf8.DecodeRuneInString(rest)
		b.WriteRune(r)
		i += size
	}
	return b.String()
}

// isDoublingConsonant reports whether a doubled c marks gemination. Vowels
// cannot geminate and doubled n is the syllabic ん, not a small tsu.
func isDoublingConsonant(c byte) bool {
	switch c {
	case 'a', 'i', 'u', 'e', 'o', 'n':
		return false
	}
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
