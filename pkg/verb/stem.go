package verb

import "strings"

// Godan stems swap the final u-row kana for the target row. う shifts to
// わ in the irrealis, not あ.
var godanIrrealis = map[rune]rune{
	'う': 'わ', 'く': 'か', 'ぐ': 'が', 'す': 'さ', 'つ': 'た',
	'ぬ': 'な', 'ふ': 'は', 'ぶ': 'ば', 'む': 'ま', 'る': 'ら',
}

var godanContinuative = map[rune]rune{
	'う': 'い', 'く': 'き', 'ぐ': 'ぎ', 'す': 'し', 'つ': 'ち',
	'ぬ': 'に', 'ふ': 'ひ', 'ぶ': 'び', 'む': 'み', 'る': 'り',
}

// Stem derives the conjugated stem of verb for the given class and form.
//
//	Godan:        書く → 書か (irrealis), 書き (continuative)
//	KamiIchidan:  見る → 見
//	ShimoIchidan: 食べる → 食べ
//	Sahen:        する → し, 勉強する → 勉強し
//	Kahen:        来る → こ (irrealis), き (continuative)
func Stem(verb string, class Class, form Form) (string, error) {
	if verb == "" {
		return "", ErrNotAVerb
	}

	switch class {
	case Godan:
		endings := godanIrrealis
		if form == Continuative {
			endings = godanContinuative
		}
		runes := []rune(verb)
		ending, ok := endings[runes[len(runes)-1]]
		if !ok {
			return "", ErrUnknownConjugation
		}
		return string(runes[:len(runes)-1]) + string(ending), nil

	case KamiIchidan, ShimoIchidan:
		if !strings.HasSuffix(verb, "る") {
			return "", ErrUnknownConjugation
		}
		return strings.TrimSuffix(verb, "る"), nil

	case Sahen:
		if verb == "する" || strings.HasSuffix(verb, "する") {
			return strings.TrimSuffix(verb, "する") + "し", nil
		}
		return "", ErrUnknownConjugation

	case Kahen:
		if verb != "くる" && verb != "来る" {
			return "", ErrUnknownConjugation
		}
		if form == Continuative {
			return "き", nil
		}
		return "こ", nil
	}
	return "", ErrUnknownConjugation
}

// Conjugate infers the conjugation class and derives the stem in one
// step, propagating the first failure.
func Conjugate(verb string, form Form) (string, error) {
	class, err := InferClass(verb)
	if err != nil {
		return "", err
	}
	return Stem(verb, class, form)
}
