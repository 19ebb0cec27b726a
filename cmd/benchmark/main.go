package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/nanjakkun/buchikun/pkg/romaji"
	"github.com/nanjakkun/buchikun/pkg/verb"
)

const (
	iterations = 100000
	warmup     = 1000
	boxWidth   = 62

	// ANSI color codes
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

var line = strings.Repeat("─", boxWidth)

func main() {
	fmt.Printf("Iterations: %d (warmup: %d)\n", iterations, warmup)
	fmt.Println("Reference: 1 second = 1,000,000,000 ns")
	fmt.Println()

	word := "キャンパス"
	sentence := "トウキョウ ノ テンキ ハ ハレ デス"
	romajiWord := "kyanpasu"
	romajiSentence := "toukyou no tenki ha hare desu"

	printHeader("ENCODE THROUGHPUT")
	bench("Word (Hepburn)", func() { romaji.EncodeKatakana(word, romaji.Hepburn) })
	bench("Word (Kunrei)", func() { romaji.EncodeKatakana(word, romaji.Kunrei) })
	bench("Gemination", func() { romaji.EncodeKatakana("チケット", romaji.Hepburn) })
	bench("Sentence", func() { romaji.EncodeKatakana(sentence, romaji.Hepburn) })
	printFooter()
	fmt.Println()

	printHeader("DECODE THROUGHPUT")
	bench("Word", func() { romaji.DecodeToHiragana(romajiWord) })
	bench("Gemination", func() { romaji.DecodeToHiragana("gakkou") })
	bench("Sentence", func() { romaji.DecodeToHiragana(romajiSentence) })
	printFooter()
	fmt.Println()

	printHeader("COMPONENT BREAKDOWN")

	norm := romaji.NewNormalizer()
	bench("Normalizer (full)", func() { norm.Normalize("がっこう") })

	conv := romaji.NewConverter()
	conv.Encode(word, romaji.Hepburn)
	bench("Converter (cache hit)", func() { conv.Encode(word, romaji.Hepburn) })

	bench("Converter (cache miss)", func() {
		conv.ClearCache()
		conv.Encode(word, romaji.Hepburn)
	})

	bench("Infer verb class", func() { verb.InferClass("食べる") })
	bench("Conjugate (infer+stem)", func() { verb.Conjugate("書く", verb.Irrealis) })
	printFooter()
}

func bench(name string, fn func()) {
	for i := 0; i < warmup; i++ {
		fn()
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		fn()
	}
	elapsed := time.Since(start)

	opsPerSec := float64(iterations) / elapsed.Seconds()
	nsPerOp := float64(elapsed.Nanoseconds()) / float64(iterations)

	// Truncate name if too long
	displayName := name
	if len(displayName) > 26 {
		displayName = displayName[:26]
	}

	// Format with colors - build plain string for padding, colored for display
	plain := fmt.Sprintf("  %-26s %10.0f ops/sec %8.0f ns", displayName, opsPerSec, nsPerOp)
	padded := padLine(plain)

	colored := fmt.Sprintf("  %-26s %s%10.0f%s ops/sec %s%8.0f%s ns",
		displayName,
		colorGreen, opsPerSec, colorReset,
		colorYellow, nsPerOp, colorReset)

	extraPad := len(padded) - len(plain)
	if extraPad > 0 {
		colored += strings.Repeat(" ", extraPad)
	}

	fmt.Println(colorDim + "│" + colorReset + colored + colorDim + "│" + colorReset)
}

func padLine(content string) string {
	if len(content) >= boxWidth {
		return content[:boxWidth]
	}
	return content + strings.Repeat(" ", boxWidth-len(content))
}

func printHeader(title string) {
	fmt.Println(colorDim + "┌" + line + "┐" + colorReset)
	printTitleRow("  " + title)
	fmt.Println(colorDim + "├" + line + "┤" + colorReset)
}

func printFooter() {
	fmt.Println(colorDim + "└" + line + "┘" + colorReset)
}

func printTitleRow(content string) {
	fmt.Println(colorDim + "│" + colorReset + colorCyan + padLine(content) + colorReset + colorDim + "│" + colorReset)
}
