package segment

import "strings"

// DictionarySource identifies which corpus a Term's frequency data came from.
// A term can be tagged with more than one source.
type DictionarySource int

const (
	SourceUnknown DictionarySource = iota
	SourceGoogleBooks1Gram
	SourceGoogleBooks2Gram
	SourceManual3Gram
	SourceSupplemental
	SourceLocation
	SourceNames
	SourceScrabble
	SourceAdult
)

// sourceNames mirrors the enum ordering in the dictionary file format.
var sourceNames = map[DictionarySource]string{
	SourceUnknown:          "Unknown",
	SourceGoogleBooks1Gram: "GoogleBooks1Gram",
	SourceGoogleBooks2Gram: "GoogleBooks2Gram",
	SourceManual3Gram:      "Manual3Gram",
	SourceSupplemental:     "Supplemental",
	SourceLocation:         "Location",
	SourceNames:            "Names",
	SourceScrabble:         "Scrabble",
	SourceAdult:            "Adult",
}

func (s DictionarySource) String() string {
	if name, ok := sourceNames[s]; ok {
		return name
	}
	return "Unknown"
}

// SourceSet is a small set of DictionarySource values. A map keeps membership
// tests and iteration cheap without pulling in a generic set type.
type SourceSet map[DictionarySource]struct{}

// NewSourceSet builds a SourceSet from the given sources.
func NewSourceSet(sources ...DictionarySource) SourceSet {
	set := make(SourceSet, len(sources))
	for _, s := range sources {
		set[s] = struct{}{}
	}
	return set
}

// Has reports whether the set contains s.
func (set SourceSet) Has(s DictionarySource) bool {
	_, ok := set[s]
	return ok
}

// Add inserts s into the set.
func (set SourceSet) Add(s DictionarySource) {
	set[s] = struct{}{}
}

// Clone returns a shallow copy of the set.
func (set SourceSet) Clone() SourceSet {
	clone := make(SourceSet, len(set))
	for s := range set {
		clone[s] = struct{}{}
	}
	return clone
}

// Term is an immutable dictionary entry. Full is the display form (which may
// contain internal spaces for n-gram terms); Compressed is Full with spaces
// removed, the key used for substring search.
type Term struct {
	full       string
	compressed string
	words      []string
	frequency  float64
	multiplier float64
	sources    SourceSet
}

// NewTerm builds a Term, deriving Compressed and Words from Full.
func NewTerm(full string, frequency, multiplier float64, sources SourceSet) Term {
	t := Term{
		full:       full,
		frequency:  frequency,
		multiplier: multiplier,
		sources:    sources,
	}
	if strings.Contains(full, " ") {
		t.compressed = strings.ReplaceAll(full, " ", "")
		t.words = strings.Split(full, " ")
	} else {
		t.compressed = full
		t.words = []string{full}
	}
	return t
}

func (t Term) Full() string           { return t.full }
func (t Term) Compressed() string     { return t.compressed }
func (t Term) Words() []string        { return t.words }
func (t Term) Frequency() float64     { return t.frequency }
func (t Term) Multiplier() float64    { return t.multiplier }
func (t Term) Sources() SourceSet     { return t.sources }
func (t Term) CharCount() int         { return len(t.compressed) }
func (t Term) WordCount() int         { return len(t.words) }

// Value computes the ranking score for this term using the shared scoring
// function, against its display form.
func (t Term) Value() float64 {
	return wordValue(t.full, t.frequency, t.multiplier, t.sources)
}
