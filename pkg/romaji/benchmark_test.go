package romaji

import (
	"testing"
)

func BenchmarkEncode_Word(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		EncodeKatakana("キャンパス", Hepburn)
	}
}

func BenchmarkEncode_Gemination(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		EncodeKatakana("チケット", Hepburn)
	}
}

func BenchmarkEncode_Kunrei(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		EncodeKatakana("シャシン", Kunrei)
	}
}

func BenchmarkDecode_Word(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		DecodeToHiragana("konnichiha")
	}
}

func BenchmarkDecode_Gemination(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		DecodeToHiragana("gakkou")
	}
}

func BenchmarkLongestLiteralMatch(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		longestLiteralMatch("kyanpasu")
	}
}

func BenchmarkScanLiteral(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scanLiteral("kyanpasu")
	}
}

func BenchmarkConverter_CacheHit(b *testing.B) {
	c := NewConverter()
	c.Encode("キャンパス", Hepburn) // Prime the cache

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Encode("キャンパス", Hepburn)
	}
}

func BenchmarkConverter_CacheMiss(b *testing.B) {
	c := NewConverter()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.ClearCache() // Clear cache to measure the full conversion
		c.Encode("キャンパス", Hepburn)
	}
}

func BenchmarkNormalizer_FullPipeline(b *testing.B) {
	n := NewNormalizer()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n.Normalize("がっこう")
	}
}
