package segment

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Dictionary owns term storage, the compressed-form index, the special-
// numbers list, and the Aho-Corasick automaton. It is built once by
// LoadData and is read-only (and lock-free) thereafter; readers block on
// Ready until loading completes.
type Dictionary struct {
	logger *zap.Logger

	once  sync.Once
	ready chan struct{}

	terms          []Term
	termsByCompressed map[string][]Term
	specialNumbers []Term
	index          *AhoCorasick
}

// NewDictionary returns an unloaded Dictionary. Call LoadData before any
// query method; queries block until loading completes.
func NewDictionary(logger *zap.Logger) *Dictionary {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dictionary{
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// LoadData parses the dictionary file at path and builds every derived
// collection. It is idempotent (later calls are no-ops) and must be called
// exactly once before the dictionary is used concurrently.
func (d *Dictionary) LoadData(path string) error {
	var loadErr error
	d.once.Do(func() {
		loadErr = d.loadData(path)
		if loadErr == nil {
			close(d.ready)
		}
	})
	return loadErr
}

func (d *Dictionary) loadData(path string) error {
	d.logger.Info("loading dictionary terms", zap.String("path", path))

	orderedTerms, err := d.loadTerms(path)
	if err != nil {
		return fmt.Errorf("load dictionary terms: %w", err)
	}

	d.logger.Info("building dictionary collections", zap.Int("term_count", len(orderedTerms)))
	byCompressed, terms, specialNumbers := buildCollections(orderedTerms)

	d.logger.Info("building aho-corasick index", zap.Int("pattern_count", len(terms)))
	index := NewAhoCorasick()
	for _, t := range terms {
		index.Add(t.Compressed())
	}
	index.Finalize()

	d.terms = terms
	d.termsByCompressed = byCompressed
	d.specialNumbers = specialNumbers
	d.index = index
	return nil
}

// loadTerms parses the tab-separated dictionary file format described in
// the external interface spec, dropping any record whose sole source is
// Adult. The returned slice preserves file order, which FindTerm's
// same-word-count tie-break and FindMatchingTerms both rely on being
// deterministic; a later line for a text already seen overwrites that
// text's entry in place rather than moving it to the end.
func (d *Dictionary) loadTerms(path string) ([]Term, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var terms []Term
	indexByText := make(map[string]int)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 4 {
			d.logger.Warn("skipping malformed dictionary line", zap.Int("line", lineNo))
			continue
		}

		text := fields[0]
		freq, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			d.logger.Warn("skipping dictionary line with bad frequency", zap.Int("line", lineNo))
			continue
		}
		multi, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			d.logger.Warn("skipping dictionary line with bad multiplier", zap.Int("line", lineNo))
			continue
		}

		sources := SourceSet{}
		for _, raw := range strings.Split(fields[3], "|") {
			n, err := strconv.Atoi(raw)
			if err != nil {
				continue
			}
			sources.Add(DictionarySource(n))
		}

		term := NewTerm(text, freq, multi, sources)
		if len(term.Sources()) == 1 && term.Sources().Has(SourceAdult) {
			continue
		}
		if idx, ok := indexByText[text]; ok {
			terms[idx] = term
		} else {
			indexByText[text] = len(terms)
			terms = append(terms, term)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return terms, nil
}

// buildCollections derives the compressed-form index and the special-
// numbers list from the loaded terms, preserving the order terms were
// loaded in: a compressed form that multiple Terms share gets its
// candidates in that same file order.
func buildCollections(terms []Term) (map[string][]Term, []Term, []Term) {
	byCompressed := make(map[string][]Term, len(terms))
	var specialNumbers []Term

	for _, term := range terms {
		byCompressed[term.Compressed()] = append(byCompressed[term.Compressed()], term)
		if term.Sources().Has(SourceSupplemental) && hasDigit(term.Compressed()) {
			specialNumbers = append(specialNumbers, term)
		}
	}
	return byCompressed, terms, specialNumbers
}

// Ready blocks until LoadData has completed.
func (d *Dictionary) Ready() {
	<-d.ready
}

// Size returns the number of terms in the dictionary.
func (d *Dictionary) Size() int {
	d.Ready()
	return len(d.terms)
}

// SpecialNumbers returns the Supplemental-sourced terms whose compressed
// form contains a digit (e.g. "3d", "80s", "401k").
func (d *Dictionary) SpecialNumbers() []Term {
	d.Ready()
	return d.specialNumbers
}

// FindMatchingTerms returns every Term whose compressed form occurs as a
// substring of input and whose char count is at least minChars. A single
// compressed form mapping to multiple Terms yields all of them.
func (d *Dictionary) FindMatchingTerms(input string, minChars int) []Term {
	d.Ready()
	matches := d.index.FindAll(input)
	var terms []Term
	for _, m := range matches {
		for _, t := range d.termsByCompressed[m] {
			if t.CharCount() >= minChars {
				terms = append(terms, t)
			}
		}
	}
	return terms
}

// FindTerm returns the Term matching compressed exactly, preferring the one
// with the greatest word count (so multi-word n-grams win over a unigram
// sharing the same compressed form) when more than one Term shares it.
func (d *Dictionary) FindTerm(compressed string) (Term, bool) {
	d.Ready()
	candidates, ok := d.termsByCompressed[compressed]
	if !ok || len(candidates) == 0 {
		return Term{}, false
	}
	best := candidates[0]
	for _, t := range candidates[1:] {
		if t.WordCount() > best.WordCount() {
			best = t
		}
	}
	return best, true
}

// FindSingleWordTerm returns the highest-frequency unigram Term matching
// compressed, ignoring any multi-word terms that share the same compressed
// form.
func (d *Dictionary) FindSingleWordTerm(compressed string) (Term, bool) {
	d.Ready()
	candidates, ok := d.termsByCompressed[compressed]
	if !ok {
		return Term{}, false
	}
	var best Term
	var bestFreq float64
	found := false
	for _, t := range candidates {
		if t.WordCount() == 1 && t.Frequency() > bestFreq {
			bestFreq = t.Frequency()
			best = t
			found = true
		}
	}
	return best, found
}
