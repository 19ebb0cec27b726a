package romaji

import "testing"

func TestNormalizer_DefaultPipeline(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		input    string
		expected string
	}{
		// Halfwidth katakana composes to fullwidth.
		{"ｶﾀｶﾅ", "カタカナ"},
		{"ﾁｹｯﾄ", "チケット"},
		// Halfwidth voiced marks compose into one code point.
		{"ｶﾞｷﾞ", "ガギ"},
		// Hiragana folds to katakana.
		{"かたかな", "カタカナ"},
		{"がっこう", "ガッコウ"},
		{"きゃんぱす", "キャンパス"},
		// Already-clean katakana is untouched.
		{"カタカナ", "カタカナ"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := n.Normalize(tt.input); got != tt.expected {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizer_CustomSteps(t *testing.T) {
	// NFKC only: hiragana must survive.
	n := NewNormalizerWithSteps(NFKCFold)
	if got := n.Normalize("かたかな"); got != "かたかな" {
		t.Errorf("Normalize(かたかな) = %q, want かたかな", got)
	}
}

func TestKatakanaFold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"あいうえお", "アイウエオ"},
		{"っ", "ッ"},
		{"ゃゅょ", "ャュョ"},
		// Katakana and non-kana pass through.
		{"カタカナabc", "カタカナabc"},
	}

	for _, tt := range tests {
		if got := KatakanaFold(tt.input); got != tt.expected {
			t.Errorf("KatakanaFold(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeThenEncode(t *testing.T) {
	n := NewNormalizer()
	got := EncodeKatakana(n.Normalize("がっこう"), Hepburn)
	if got != "gakkou" {
		t.Errorf("encode(normalize(がっこう)) = %q, want gakkou", got)
	}
}
