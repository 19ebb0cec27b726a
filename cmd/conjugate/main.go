package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nanjakkun/buchikun/pkg/verb"
)

func main() {
	if len(os.Args) < 3 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "class":
		word := os.Args[2]
		class, err := verb.InferClass(word)
		if err != nil {
			reportError(word, err)
			os.Exit(1)
		}
		fmt.Printf("%s: %s\n", word, class)

	case "stem":
		if len(os.Args) < 4 {
			fmt.Println("Error: stem requires a verb and a form")
			printUsage()
			os.Exit(1)
		}
		word := os.Args[2]
		form, ok := verb.ParseForm(os.Args[3])
		if !ok {
			fmt.Printf("Unknown form: %s\n", os.Args[3])
			printUsage()
			os.Exit(1)
		}

		stem, err := verb.Conjugate(word, form)
		if err != nil {
			reportError(word, err)
			os.Exit(1)
		}
		fmt.Printf("%s (%s): %s\n", word, form, stem)

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func reportError(word string, err error) {
	switch {
	case errors.Is(err, verb.ErrNotAVerb):
		fmt.Fprintf(os.Stderr, "'%s' does not look like a verb\n", word)
	case errors.Is(err, verb.ErrUnknownConjugation):
		fmt.Fprintf(os.Stderr, "'%s' does not conjugate under that class\n", word)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

func printUsage() {
	fmt.Println("Usage: conjugate <command> [args...]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  class <verb>                            Infer the conjugation class")
	fmt.Println("  stem <verb> <irrealis|continuative>     Derive the conjugated stem")
}
