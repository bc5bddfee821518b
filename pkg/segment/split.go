package segment

// defaultFrequency and defaultMultiplier are the weights an unmatched split
// starts with, before it is ever matched to a dictionary term.
const (
	defaultFrequency  = 1e-8
	defaultMultiplier = 1.0
)

// Split is a contiguous piece of text within a Pass. It begins unmatched and
// either picks up a Term's weights (Match) or adopts default weights while
// recording that it was resolved without a dictionary hit (MatchWithoutTerm,
// used for bare integers).
type Split struct {
	Text       string
	Frequency  float64
	Multiplier float64
	Matched    bool
	Sources    SourceSet
}

// NewSplit creates an unmatched split over text, with default weights.
func NewSplit(text string) Split {
	return Split{
		Text:       text,
		Frequency:  defaultFrequency,
		Multiplier: defaultMultiplier,
		Sources:    SourceSet{},
	}
}

// SplitFromTerm creates an already-matched split whose weights are copied
// from term and whose display text is term's full (possibly multi-word) form.
func SplitFromTerm(term Term) Split {
	return Split{
		Text:       term.Full(),
		Frequency:  term.Frequency(),
		Multiplier: term.Multiplier(),
		Matched:    true,
		Sources:    term.Sources().Clone(),
	}
}

// Value computes this split's standalone ranking value.
func (s Split) Value() float64 {
	return wordValue(s.Text, s.Frequency, s.Multiplier, s.Sources)
}

// Match marks the split as resolved against term, adopting its display text
// and weights.
func (s *Split) Match(term Term) {
	s.Text = term.Full()
	s.Frequency = term.Frequency()
	s.Multiplier = term.Multiplier()
	s.Sources = term.Sources().Clone()
	s.Matched = true
}

// MatchWithoutTerm marks the split as resolved without a dictionary hit
// (used for bare integers), reverting to default weights and tagging the
// split as Unknown-sourced.
func (s *Split) MatchWithoutTerm() {
	s.Frequency = defaultFrequency
	s.Multiplier = 1
	if s.Sources == nil {
		s.Sources = SourceSet{}
	}
	s.Sources.Add(SourceUnknown)
	s.Matched = true
}

// Clone returns a deep copy, so mutating the clone never affects the
// original (sources is the only reference-typed field).
func (s Split) Clone() Split {
	clone := s
	clone.Sources = s.Sources.Clone()
	return clone
}
