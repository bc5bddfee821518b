package segment

import "sort"

// searchLogic executes the primary search: it pre-segments the input, walks
// the sorted candidate-term list against every still-open pass, fills in
// any leftover unmatched splits, then sorts and deduplicates the resulting
// passes. It mirrors the reference implementation's split_logic exactly,
// including its pool-growth and early-stop rules.
func searchLogic(input string, dict *Dictionary, maxTerms, maxPasses int) ([]*Pass, []Term) {
	passes := []*Pass{NewPass(input)}

	passes = splitOnNumbers(passes, dict)
	passes = preserveA1(passes, dict)
	passes = splitOnBreakChars(passes)

	matchedTerms := dict.FindMatchingTerms(input, 3)
	sort.SliceStable(matchedTerms, func(i, j int) bool {
		return matchedTerms[i].Value() > matchedTerms[j].Value()
	})
	if len(matchedTerms) > maxTerms {
		matchedTerms = matchedTerms[:maxTerms]
	}

	// unlike the final dedup-by-display-text pass below, this set starts
	// empty and is only ever populated as clones are generated, matching
	// the reference implementation's unique_passes set.
	uniquePasses := make(map[string]struct{})

	for _, term := range matchedTerms {
		// Pool bounds are snapshotted at entry to this level but re-read
		// each iteration, so passes appended mid-loop are also visited.
		for passIndex := 0; passIndex < len(passes); passIndex++ {
			pass := passes[passIndex]
			if pass.IsDone() {
				continue
			}

			for splitIndex := 0; splitIndex < len(pass.Splits); splitIndex++ {
				split := pass.Splits[splitIndex]
				if split.Matched {
					continue
				}
				if !containsSubstring(split.Text, term.Compressed()) {
					continue
				}

				clone := pass.Clone()
				startIndex := indexOf(clone.Splits[splitIndex].Text, term.Compressed())
				clone.Split(splitIndex, startIndex, len(term.Compressed()), term)

				signature := clone.UniqueString()
				if _, seen := uniquePasses[signature]; seen {
					continue
				}
				uniquePasses[signature] = struct{}{}
				passes = append(passes, clone)
				if len(passes) > maxPasses {
					break
				}
			}
			if len(passes) > maxPasses {
				break
			}
		}

		if len(passes) > maxPasses || allDone(passes) {
			break
		}
	}

	// Fallback: resolve whatever is still unmatched directly against the
	// dictionary, or as a bare integer.
	for _, p := range passes {
		changed := false
		for i := range p.Splits {
			if p.Splits[i].Matched {
				continue
			}
			if term, ok := dict.FindTerm(p.Splits[i].Text); ok {
				p.Splits[i].Match(term)
				changed = true
			} else if isInteger(p.Splits[i].Text) {
				p.Splits[i].MatchWithoutTerm()
				changed = true
			}
		}
		if changed {
			p.invalidate()
		}
	}

	sort.SliceStable(passes, func(i, j int) bool {
		return passes[i].Score() > passes[j].Score()
	})

	deduped := make([]*Pass, 0, len(passes))
	seen := make(map[string]struct{}, len(passes))
	for _, p := range passes {
		text := p.DisplayText()
		if _, ok := seen[text]; ok {
			continue
		}
		seen[text] = struct{}{}
		deduped = append(deduped, p)
	}

	return deduped, matchedTerms
}

// containsSubstring reports whether needle occurs anywhere in haystack.
func containsSubstring(haystack, needle string) bool {
	return indexOf(haystack, needle) != -1
}

// allDone reports whether every pass in the pool is done.
func allDone(passes []*Pass) bool {
	for _, p := range passes {
		if !p.IsDone() {
			return false
		}
	}
	return true
}
