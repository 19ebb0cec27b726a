package romaji

import "strings"

// EncodeKatakana converts katakana text to romaji under the given system.
// Conversion is a single left-to-right pass: a yōon digraph is consumed as
// one unit, a small tsu doubles the onset consonant of the following mora,
// and everything else resolves through the single-kana table. Characters
// outside the supported repertoire contribute nothing to the output.
func EncodeKatakana(text string, sys System) string {
	t := sys.table()
	runes := []rune(text)

	var b strings.Builder
	b.Grow(len(runes) * 2)

	for i := 0; i < len(runes); {
		if i+1 < len(runes) {
			if r, ok := t.digraph[[2]rune{runes[i], runes[i+1]}]; ok {
				b.WriteString(r)
				i += 2
				continue
			}
		}

		if runes[i] == sokuon && i+1 < len(runes) {
			// Resolve the following mora (digraphs included) and emit its
			// first consonant; the mora itself is encoded on the next
			// iteration, producing the doubled letter. Hepburn doubles
			// "chi" as "tchi", not "cchi".
			next := t.nextMora(runes[i+1:])
			switch {
			case sys == Hepburn && strings.HasPrefix(next, "ch"):
				b.WriteByte('t')
			case next != "" && isConsonant(next[0]):
				b.WriteByte(next[0])
			}
			i++
			continue
		}

		b.WriteString(t.single[runes[i]])
		i++
	}
	return b.String()
}

// EncodeHepburn converts katakana to Hepburn romaji.
func EncodeHepburn(text string) string {
	return EncodeKatakana(text, Hepburn)
}

// EncodeKunrei converts katakana to Kunrei romaji.
func EncodeKunrei(text string) string {
	return EncodeKatakana(text, Kunrei)
}

// nextMora resolves the romaji of the mora starting at runes, applying the
// same digraph precedence as the main loop. Empty for unsupported kana.
func (t *encodeTable) nextMora(runes []rune) string {
	if len(runes) == 0 {
		return ""
	}
	if len(runes) >= 2 {
		if r, ok := t.digraph[[2]rune{runes[0], runes[1]}]; ok {
			return r
		}
	}
	return t.single[runes[0]]
}

// isConsonant reports whether c is a lowercase letter other than a vowel.
// The long-vowel dash is not a consonant, so ッ before ー emits nothing.
func isConsonant(c byte) bool {
	switch c {
	case 'a', 'i', 'u', 'e', 'o':
		return false
	}
	return 'a' <= c && c <= 'z'
}
