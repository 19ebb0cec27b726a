package romaji

import (
	"testing"
	"unicode/utf8"
)

func TestEncodeKatakana_Hepburn(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"カタカナ", "katakana"},
		{"シブヤ", "shibuya"},
		{"トウキョウ", "toukyou"},
		{"ワタシ", "watashi"},
		{"フジサン", "fujisan"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := EncodeKatakana(tt.input, Hepburn); got != tt.expected {
			t.Errorf("EncodeKatakana(%q, Hepburn) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestEncodeKatakana_Kunrei(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"カタカナ", "katakana"},
		{"シブヤ", "sibuya"},
		{"トウキョウ", "toukyou"},
		{"フジサン", "huzisan"},
		{"ツナミ", "tunami"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := EncodeKatakana(tt.input, Kunrei); got != tt.expected {
			t.Errorf("EncodeKatakana(%q, Kunrei) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestEncodeKatakana_SystemDivergence(t *testing.T) {
	tests := []struct {
		input   string
		hepburn string
		kunrei  string
	}{
		{"シャシン", "shashin", "syasin"},
		{"チャ", "cha", "tya"},
		{"ジャ", "ja", "zya"},
		{"シェフ", "shefu", "syehu"},
		{"チズ", "chizu", "tizu"},
	}

	for _, tt := range tests {
		if got := EncodeHepburn(tt.input); got != tt.hepburn {
			t.Errorf("EncodeHepburn(%q) = %q, want %q", tt.input, got, tt.hepburn)
		}
		if got := EncodeKunrei(tt.input); got != tt.kunrei {
			t.Errorf("EncodeKunrei(%q) = %q, want %q", tt.input, got, tt.kunrei)
		}
	}
}

func TestEncodeKatakana_Digraphs(t *testing.T) {
	tests := []struct {
		input    string
		sys      System
		expected string
	}{
		// キャ resolves as one unit, never ki+ya.
		{"キャンパス", Hepburn, "kyanpasu"},
		{"ギュウニュウ", Hepburn, "gyuunyuu"},
		{"リョコウ", Hepburn, "ryokou"},
		{"パーティー", Hepburn, "pa-ti-"},
		{"ファン", Hepburn, "fan"},
		{"ウィスキー", Hepburn, "wisuki-"},
		{"チェス", Hepburn, "chesu"},
		{"チェス", Kunrei, "tyesu"},
	}

	for _, tt := range tests {
		if got := EncodeKatakana(tt.input, tt.sys); got != tt.expected {
			t.Errorf("EncodeKatakana(%q, %v) = %q, want %q", tt.input, tt.sys, got, tt.expected)
		}
	}
}

func TestEncodeKatakana_Gemination(t *testing.T) {
	tests := []struct {
		input    string
		sys      System
		expected string
	}{
		{"カッパ", Hepburn, "kappa"},
		{"カッパ", Kunrei, "kappa"},
		{"チケット", Hepburn, "chiketto"},
		{"チケット", Kunrei, "tiketto"},
		{"ガッコウ", Hepburn, "gakkou"},
		{"ザッシ", Hepburn, "zasshi"},
		{"ザッシ", Kunrei, "zassi"},
		// Hepburn doubles chi as tchi, not cchi; Kunrei ti doubles plainly.
		{"マッチ", Hepburn, "matchi"},
		{"マッチ", Kunrei, "matti"},
		{"マッチャ", Hepburn, "matcha"},
		{"マッチャ", Kunrei, "mattya"},
		// Trailing small tsu has no mora to double.
		{"アッ", Hepburn, "a"},
		// Small tsu before a vowel contributes nothing.
		{"ッアー", Hepburn, "a-"},
		// Small tsu before the dash contributes nothing either.
		{"アッー", Hepburn, "a-"},
	}

	for _, tt := range tests {
		if got := EncodeKatakana(tt.input, tt.sys); got != tt.expected {
			t.Errorf("EncodeKatakana(%q, %v) = %q, want %q", tt.input, tt.sys, got, tt.expected)
		}
	}
}

func TestEncodeKatakana_UnmappedDropped(t *testing.T) {
	// Characters outside the kana repertoire contribute nothing.
	tests := []struct {
		input    string
		expected string
	}{
		{"カXカ", "kaka"},
		{"漢字", ""},
		{"カ タ", "kata"},
		{"abc", ""},
	}

	for _, tt := range tests {
		got := EncodeKatakana(tt.input, Hepburn)
		if got != tt.expected {
			t.Errorf("EncodeKatakana(%q, Hepburn) = %q, want %q", tt.input, got, tt.expected)
		}
	}

	// The drop shortens the output: one unmapped rune, zero output bytes.
	withX := EncodeKatakana("カX", Hepburn)
	without := EncodeKatakana("カ", Hepburn)
	if withX != without {
		t.Errorf("unmapped rune changed output: %q vs %q", withX, without)
	}
}

func TestEncodeKatakana_OutputIsASCII(t *testing.T) {
	inputs := []string{"カタカナ", "キャンパス", "チケット", "パーティー", "シャシン"}
	for _, in := range inputs {
		for _, sys := range []System{Hepburn, Kunrei} {
			out := EncodeKatakana(in, sys)
			if utf8.RuneCountInString(out) != len(out) {
				t.Errorf("EncodeKatakana(%q, %v) = %q contains non-ASCII output", in, sys, out)
			}
		}
	}
}
