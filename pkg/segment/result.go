package segment

import "time"

// SplitResult is what callers get back from SimpleSplit/FullSplit.
type SplitResult struct {
	Input        string
	Output       string
	Score        float64
	TermCount    int
	MatchedTerms []Term
	PassCount    int
	Passes       []*Pass
	ElapsedMs    float64
	FromCache    bool
}

// newSplitResult assembles a SplitResult from a completed search. passCount
// is the true pre-truncation pass count, even though passes itself may
// already be truncated to the caller's requested pass_display.
func newSplitResult(input string, matchedTerms []Term, passCount int, passes []*Pass, elapsed time.Duration) SplitResult {
	result := SplitResult{
		Input:        input,
		TermCount:    len(matchedTerms),
		MatchedTerms: matchedTerms,
		PassCount:    passCount,
		Passes:       passes,
		ElapsedMs:    float64(elapsed.Microseconds()) / 1000.0,
	}
	if len(passes) > 0 {
		result.Output = passes[0].DisplayText()
		result.Score = passes[0].Score()
	} else {
		result.Output = input
	}
	return result
}
