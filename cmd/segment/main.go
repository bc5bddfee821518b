// Command segment tokenizes one argument string, or drops into an
// interactive REPL when no text is given, mirroring the teacher's
// cmd/tokenize.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonhyland-go/centipede/internal/logging"
	"github.com/jonhyland-go/centipede/pkg/segment"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: segment <dictionary_path> [text]")
		fmt.Println("       segment <dictionary_path>          (interactive mode)")
		os.Exit(1)
	}

	dictPath := os.Args[1]

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

	splitter := segment.NewSplitter(dict, segment.DefaultConfig(), logger)
	defer splitter.Close()

	if len(os.Args) > 2 {
		text := strings.Join(os.Args[2:], " ")
		printResult(splitter, text)
		return
	}

	fmt.Println("centipede (interactive mode)")
	fmt.Printf("Dictionary loaded: %d terms\n", dict.Size())
	fmt.Println("Type an unspaced phrase, press Enter to split. Ctrl+C to exit.")
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
		printResult(splitter, text)
	}
}

func printResult(splitter *segment.Splitter, text string) {
	result, err := splitter.FullSplit(text, true, false, 5)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	output, _ := json.Marshal(result)
	fmt.Println(string(output))
}
