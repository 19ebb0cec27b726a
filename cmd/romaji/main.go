package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/nanjakkun/buchikun/pkg/romaji"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	direction := os.Args[1]
	convert, err := resolveDirection(direction)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	// If text provided as arguments, convert and exit
	if len(os.Args) > 2 {
		text := strings.Join(os.Args[2:], " ")
		fmt.Println(convert(text))
		return
	}

	// Interactive mode
	fmt.Printf("buchikun romaji converter (%s, interactive mode)\n", direction)
	fmt.Println("Type text, press Enter to convert. Ctrl+C to exit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := scanner.Text()
		if text == "" {
			continue
		}

		output, _ := json.Marshal(convert(text))
		fmt.Printf("  %s\n\n", output)
	}
}

// resolveDirection picks the conversion for the chosen direction. Encoding
// folds halfwidth katakana and hiragana first so pasted text just works.
func resolveDirection(name string) (func(string) string, error) {
	if name == "kana" {
		return romaji.DecodeToHiragana, nil
	}

	sys, ok := romaji.ParseSystem(name)
	if !ok {
		return nil, fmt.Errorf("unknown direction %q", name)
	}
	norm := romaji.NewNormalizer()
	return func(text string) string {
		return romaji.EncodeKatakana(norm.Normalize(text), sys)
	}, nil
}

func printUsage() {
	fmt.Println("Usage: romaji <hepburn|kunrei|kana> [text]")
	fmt.Println("       romaji <hepburn|kunrei|kana>          (interactive mode)")
	fmt.Println()
	fmt.Println("Directions:")
	fmt.Println("  hepburn   Katakana to Hepburn romaji")
	fmt.Println("  kunrei    Katakana to Kunrei romaji")
	fmt.Println("  kana      Romaji to hiragana")
}
