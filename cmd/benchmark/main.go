// Command benchmark micro-benchmarks the core segment package, mirroring
// the teacher's cmd/benchmark box-drawing output format.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jonhyland-go/centipede/internal/logging"
	"github.com/jonhyland-go/centipede/pkg/segment"
)

const (
	iterations = 10000
	warmup     = 500
	boxWidth   = 62

	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

var line = strings.Repeat("─", boxWidth)

func main() {
	dictPath := "testdata/dictionary.txt"
	if len(os.Args) > 1 {
		dictPath = os.Args[1]
	}

	logger, err := logging.NewCLI()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	fmt.Print("Loading dictionary... ")
	start := time.Now()
	dict := segment.NewDictionary(logger)
	if err := dict.LoadData(dictPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("done (%d terms in %v)\n", dict.Size(), time.Since(start).Round(time.Millisecond))
	fmt.Printf("Iterations: %d (warmup: %d)\n", iterations, warmup)
	fmt.Println("Reference: 1 second = 1,000,000,000 ns")
	fmt.Println()

	short := "splitthis"
	medium := "splitthistextintoseparatewords"
	hashtag := "bestdayevernumberonefan"

	splitter := segment.NewSplitter(dict, segment.DefaultConfig(), logger)
	defer splitter.Close()

	printHeader("FULL PIPELINE THROUGHPUT")
	bench("Short input", func() { splitter.SimpleSplit(short, false, false) })
	bench("Medium input", func() { splitter.SimpleSplit(medium, false, false) })
	bench("Hashtag input", func() { splitter.SimpleSplit(hashtag, false, false) })
	printFooter()
	fmt.Println()

	printHeader("COMPONENT BREAKDOWN")
	bench("Dictionary lookup", func() {
		dict.FindMatchingTerms(medium, 3)
	})

	splitter.SimpleSplit(short, true, false)
	bench("Split (cache hit)", func() {
		splitter.SimpleSplit(short, true, false)
	})
	bench("Split (cache miss)", func() {
		splitter.SimpleSplit(medium, false, false)
	})
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

	displayName := name
	if len(displayName) > 26 {
		displayName = displayName[:26]
	}

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
