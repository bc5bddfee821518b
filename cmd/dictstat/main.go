// Command dictstat reports dictionary size and runs single lookups against
// it, mirroring the teacher's cmd/dictmgr, adapted for a dictionary that is
// read-only once loaded.
package main

import (
	"fmt"
	"os"

	"github.com/jonhyland-go/centipede/internal/logging"
	"github.com/jonhyland-go/centipede/pkg/segment"
)

func main() {
	if len(os.Args) < 3 {
		printUsage()
		os.Exit(1)
	}

	dictPath := os.Args[1]
	command := os.Args[2]

	logger, err := logging.NewCLI()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	dict := segment.NewDictionary(logger)
	if err := dict.LoadData(dictPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dictionary: %v\n", err)
		os.Exit(1)
	}

	switch command {
	case "stats":
		fmt.Printf("Dictionary: %s\n", dictPath)
		fmt.Printf("Term count: %d\n", dict.Size())
		fmt.Printf("Special numbers: %d\n", len(dict.SpecialNumbers()))

	case "contains":
		if len(os.Args) < 4 {
			fmt.Println("Error: contains requires a compressed term")
			os.Exit(1)
		}
		compressed := os.Args[3]
		if _, ok := dict.FindTerm(compressed); ok {
			fmt.Printf("'%s' exists in dictionary\n", compressed)
		} else {
			fmt.Printf("'%s' NOT in dictionary\n", compressed)
			os.Exit(1)
		}

	case "find":
		if len(os.Args) < 4 {
			fmt.Println("Error: find requires a compressed term")
			os.Exit(1)
		}
		compressed := os.Args[3]
		term, ok := dict.FindTerm(compressed)
		if !ok {
			fmt.Printf("'%s' NOT in dictionary\n", compressed)
			os.Exit(1)
		}
		fmt.Printf("full=%q frequency=%g multiplier=%g words=%d\n",
			term.Full(), term.Frequency(), term.Multiplier(), term.WordCount())

	case "matching":
		if len(os.Args) < 4 {
			fmt.Println("Error: matching requires an input string")
			os.Exit(1)
		}
		input := os.Args[3]
		terms := dict.FindMatchingTerms(input, 3)
		fmt.Printf("%d matching terms\n", len(terms))
		for _, t := range terms {
			fmt.Printf("  %-20s freq=%g value=%.4f\n", t.Full(), t.Frequency(), t.Value())
		}

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: dictstat <dictionary.txt> <command> [args...]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  stats                   Show dictionary statistics")
	fmt.Println("  contains <compressed>   Check if a compressed term exists")
	fmt.Println("  find <compressed>       Show the term stored under a compressed form")
	fmt.Println("  matching <input>        List terms matching substrings of input")
}
