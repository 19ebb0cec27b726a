package romaji

import (
	"golang.org/x/text/unicode/norm"
)

// NormalizerFunc defines a single folding step.
type NormalizerFunc func(string) string

// Normalizer applies a configurable pipeline of folding steps that bring
// real-world kana into the form the encoder expects. The encoder itself
// never normalizes; callers opt in.
type Normalizer struct {
	steps []NormalizerFunc
}

// NewNormalizer creates a normalizer with the default pipeline: NFKC
// composition (folds halfwidth katakana to fullwidth) followed by the
// hiragana→katakana fold.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		steps: []NormalizerFunc{
			NFKCFold,
			KatakanaFold,
		},
	}
}

// NewNormalizerWithSteps creates a normalizer with a custom pipeline.
func NewNormalizerWithSteps(steps ...NormalizerFunc) *Normalizer {
	return &Normalizer{steps: steps}
}

// Normalize applies all configured steps in order.
func (n *Normalizer) Normalize(s string) string {
	for _, step := range n.steps {
		s = step(s)
	}
	return s
}

// NFKCFold applies Unicode NFKC normalization.
// Composes ｶ → カ, ｶﾞ → ガ, and other compatibility forms.
func NFKCFold(s string) string {
	return norm.NFKC.String(s)
}

// KatakanaFold shifts hiragana letters to their katakana counterparts.
// The two blocks are parallel, 0x60 code points apart.
func KatakanaFold(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 'ぁ' && r <= 'ゖ' {
			runes[i] = r + 0x60
		}
	}
	return string(runes)
}
