// Package romaji converts Japanese kana to Latin transliteration and back.
//
// The encoder reads katakana and writes lowercase romaji under either the
// Hepburn or the Kunrei convention. The decoder reads ASCII romaji and
// writes hiragana. Both directions are single left-to-right passes over
// immutable tables; every function in this package is pure and safe to
// call from any number of goroutines.
package romaji

// System selects which romanization convention the encoder follows.
// The decoder is single-system and always accepts Hepburn-flavored input.
type System int

const (
	// Hepburn is the Hepburn romanization (シ → "shi", チャ → "cha").
	Hepburn System = iota
	// Kunrei is the Kunrei-shiki romanization (シ → "si", チャ → "tya").
	Kunrei
)

func (s System) String() string {
	switch s {
	case Hepburn:
		return "hepburn"
	case Kunrei:
		return "kunrei"
	}
	return "unknown"
}

// ParseSystem maps a system name to its System value.
func ParseSystem(name string) (System, bool) {
	switch name {
	case "hepburn":
		return Hepburn, true
	case "kunrei":
		return Kunrei, true
	}
	return Hepburn, false
}

// table resolves the system to its encode tables. Table selection happens
// here once per call instead of branching at every lookup site.
func (s System) table() *encodeTable {
	if s == Kunrei {
		return &kunreiTable
	}
	return &hepburnTable
}
