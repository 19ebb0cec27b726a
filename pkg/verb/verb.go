// Package verb infers a Japanese verb's conjugation class from its surface
// form and derives conjugated stems. Classification is purely heuristic
// suffix matching; it shares no state with the transliteration core.
package verb

import "errors"

// Class is a verb conjugation class.
type Class int

const (
	// Godan verbs shift their final u-row kana across vowel rows (書く).
	Godan Class = iota
	// KamiIchidan verbs end in an i-row kana plus る (見る).
	KamiIchidan
	// ShimoIchidan verbs end in an e-row kana plus る (食べる).
	ShimoIchidan
	// Sahen is the irregular する class, including compound N+する verbs.
	Sahen
	// Kahen is the irregular 来る class.
	Kahen
)

func (c Class) String() string {
	switch c {
	case Godan:
		return "godan"
	case KamiIchidan:
		return "kami-ichidan"
	case ShimoIchidan:
		return "shimo-ichidan"
	case Sahen:
		return "sahen"
	case Kahen:
		return "kahen"
	}
	return "unknown"
}

// Form selects which conjugated stem to derive.
type Form int

const (
	// Irrealis is the 未然形 stem, the base of the negative nai-form.
	Irrealis Form = iota
	// Continuative is the 連用形 stem, the base of the polite masu-form.
	Continuative
)

func (f Form) String() string {
	switch f {
	case Irrealis:
		return "irrealis"
	case Continuative:
		return "continuative"
	}
	return "unknown"
}

// ParseForm maps a form name to its Form value.
func ParseForm(name string) (Form, bool) {
	switch name {
	case "irrealis":
		return Irrealis, true
	case "continuative":
		return Continuative, true
	}
	return Irrealis, false
}

var (
	// ErrNotAVerb reports input whose surface form cannot be a verb.
	ErrNotAVerb = errors.New("verb: not a verb")
	// ErrUnknownConjugation reports a verb that does not conjugate under
	// the requested class.
	ErrUnknownConjugation = errors.New("verb: unknown conjugation")
)
