package segment

import "strings"

// Pass is one candidate segmentation of the input: an ordered sequence of
// Splits. Thousands of passes are generated per search; each is scored, and
// the highest-scoring one wins. Display text and unique-string signature are
// cached and invalidated on every mutation, since they are recomputed far
// more often than they change.
type Pass struct {
	Input  string
	Splits []Split

	displayText  *string
	uniqueString *string
	value        *float64
	score        *float64
}

// NewPass creates the seed Pass for input: a single unmatched Split spanning
// the whole (already normalized) string.
func NewPass(input string) *Pass {
	return &Pass{
		Input:  input,
		Splits: []Split{NewSplit(input)},
	}
}

// NewPassWithSplits creates a Pass from an explicit split list, as produced
// by a pre-segmenter.
func NewPassWithSplits(input string, splits []Split) *Pass {
	return &Pass{Input: input, Splits: splits}
}

// DisplayText joins the splits' text with single spaces; this is the
// user-visible output of the pass.
func (p *Pass) DisplayText() string {
	if p.displayText == nil {
		text := p.generateDisplayText()
		p.displayText = &text
	}
	return *p.displayText
}

func (p *Pass) generateDisplayText() string {
	parts := make([]string, len(p.Splits))
	for i, s := range p.Splits {
		parts[i] = s.Text
	}
	return strings.Join(parts, " ")
}

// UniqueString is a signature of the splits and their matched/unmatched
// state, used to deduplicate passes during search.
func (p *Pass) UniqueString() string {
	if p.uniqueString == nil {
		s := p.generateUniqueString()
		p.uniqueString = &s
	}
	return *p.uniqueString
}

func (p *Pass) generateUniqueString() string {
	parts := make([]string, len(p.Splits))
	for i, s := range p.Splits {
		matchedFlag := "0"
		if s.Matched {
			matchedFlag = "1"
		}
		parts[i] = s.Text + ":" + matchedFlag
	}
	return strings.Join(parts, "|")
}

// IsDone reports whether every split in the pass is matched.
func (p *Pass) IsDone() bool {
	for _, s := range p.Splits {
		if !s.Matched {
			return false
		}
	}
	return true
}

// averageWordValue is the mean of each split's standalone value.
func (p *Pass) averageWordValue() float64 {
	total := 0.0
	for _, s := range p.Splits {
		total += s.Value()
	}
	return total / float64(len(p.Splits))
}

// UnmatchedSplitCount returns the number of splits still unmatched.
func (p *Pass) UnmatchedSplitCount() int {
	count := 0
	for _, s := range p.Splits {
		if !s.Matched {
			count++
		}
	}
	return count
}

// MatchRatio is the fraction of characters (across all splits) that belong
// to a matched split.
func (p *Pass) MatchRatio() float64 {
	var totalChars, matchedChars float64
	for _, s := range p.Splits {
		totalChars += float64(len(s.Text))
		if s.Matched {
			matchedChars += float64(len(s.Text))
		}
	}
	return matchedChars / totalChars
}

// Score calculates (and caches) the overall ranking score for this pass:
// the average word value, doubled if every split matched, otherwise scaled
// down by the match ratio.
func (p *Pass) Score() float64 {
	if p.score == nil {
		if p.value == nil {
			v := p.averageWordValue()
			p.value = &v
		}
		result := *p.value
		if p.UnmatchedSplitCount() == 0 {
			result *= 2
		} else {
			result *= p.MatchRatio()
		}
		p.score = &result
	}
	return *p.score
}

// Split subdivides splitIndex at [startIndex, startIndex+length) into the
// matched term plus whatever prefix/suffix remains, or marks the whole split
// matched in place if the term spans it exactly. Derived caches are
// invalidated afterward.
func (p *Pass) Split(splitIndex, startIndex, length int, term Term) {
	source := p.Splits[splitIndex]
	if len(source.Text) == length {
		source.Match(term)
		p.Splits[splitIndex] = source
		p.invalidate()
		return
	}

	var replacement []Split
	switch {
	case startIndex == 0:
		replacement = []Split{
			SplitFromTerm(term),
			NewSplit(source.Text[length:]),
		}
	case startIndex+length < len(source.Text):
		replacement = []Split{
			NewSplit(source.Text[:startIndex]),
			SplitFromTerm(term),
			NewSplit(source.Text[startIndex+length:]),
		}
	default:
		replacement = []Split{
			NewSplit(source.Text[:startIndex]),
			SplitFromTerm(term),
		}
	}

	splits := make([]Split, 0, len(p.Splits)+len(replacement)-1)
	splits = append(splits, p.Splits[:splitIndex]...)
	splits = append(splits, replacement...)
	splits = append(splits, p.Splits[splitIndex+1:]...)
	p.Splits = splits
	p.invalidate()
}

// invalidate clears the cached derived fields after a mutation.
func (p *Pass) invalidate() {
	p.displayText = nil
	p.uniqueString = nil
	p.value = nil
	p.score = nil
}

// Clone returns a deep copy: every split is independently mutable, so
// subdividing the clone never affects the original pass.
func (p *Pass) Clone() *Pass {
	splits := make([]Split, len(p.Splits))
	for i, s := range p.Splits {
		splits[i] = s.Clone()
	}
	return &Pass{Input: p.Input, Splits: splits}
}
