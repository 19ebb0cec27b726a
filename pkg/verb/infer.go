package verb

import "strings"

// godanExceptions lists common godan verbs whose -iru/-eru endings would
// otherwise read as ichidan.
var godanExceptions = map[string]struct{}{
	"入る": {}, "要る": {}, "いる": {},
	"切る": {}, "千切る": {},
	"限る": {}, "かぎる": {},
	"握る": {}, "にぎる": {},
	"知る": {}, "しる": {},
	"走る": {}, "はしる": {},
	"交じる": {}, "混じる": {}, "まじる": {},
	"散る": {}, "ちる": {},
	"帰る": {},
	"蹴る": {}, "ける": {},
	"焦る": {}, "あせる": {},
	"減る": {}, "へる": {},
	"滑る": {}, "すべる": {},
	"喋る": {}, "しゃべる": {},
}

// InferClass guesses the conjugation class of a verb from its surface
// form. Surface heuristics cannot separate every godan verb ending in
// -iru/-eru from the ichidan classes (帰る conjugates godan, the
// homophonous 変える ichidan); known exceptions are listed explicitly.
func InferClass(verb string) (Class, error) {
	if verb == "" {
		return 0, ErrNotAVerb
	}

	if verb == "する" || strings.HasSuffix(verb, "する") {
		return Sahen, nil
	}
	if verb == "くる" || verb == "来る" {
		return Kahen, nil
	}

	runes := []rune(verb)
	switch runes[len(runes)-1] {
	case 'う', 'く', 'ぐ', 'す', 'つ', 'ぬ', 'ぶ', 'む':
		return Godan, nil
	case 'る':
		if _, ok := godanExceptions[verb]; ok {
			return Godan, nil
		}
		if len(runes) < 2 {
			return 0, ErrNotAVerb
		}
		prev := runes[len(runes)-2]
		switch {
		case isISound(prev):
			return KamiIchidan, nil
		case isESound(prev):
			return ShimoIchidan, nil
		}
		return Godan, nil
	}
	return 0, ErrNotAVerb
}

// isISound reports whether r belongs to the hiragana i-row, plus the
// kanji 見 so 見る classifies without its reading.
func isISound(r rune) bool {
	switch r {
	case 'い', 'き', 'ぎ', 'し', 'じ', 'ち', 'ぢ', 'に', 'ひ', 'び', 'ぴ', 'み', 'り', '見':
		return true
	}
	return false
}

// isESound reports whether r belongs to the hiragana e-row, plus 出 and 寝.
func isESound(r rune) bool {
	switch r {
	case 'え', 'け', 'げ', 'せ', 'ぜ', 'て', 'で', 'ね', 'へ', 'べ', 'ぺ', 'め', 'れ', '出', '寝':
		return true
	}
	return false
}
