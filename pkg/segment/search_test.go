package segment

import "testing"

func TestSearchLogicCoversEveryCharacter(t *testing.T) {
	dict := testDictionary(t)
	passes, _ := searchLogic("splitthis", dict, 25, 10000)
	if len(passes) == 0 {
		t.Fatal("expected at least one candidate pass")
	}
	for _, p := range passes {
		total := 0
		for _, s := range p.Splits {
			total += len(s.Text)
		}
		if total < len("splitthis") {
			t.Errorf("pass %q covers fewer characters than the input", p.DisplayText())
		}
	}
}

func TestSearchLogicBestPassIsFullyMatched(t *testing.T) {
	dict := testDictionary(t)
	passes, _ := searchLogic("splitthis", dict, 25, 10000)
	if !passes[0].IsDone() {
		t.Errorf("expected the top-ranked pass to be fully matched, display=%q", passes[0].DisplayText())
	}
}

func TestSearchLogicIsSortedByScoreDescending(t *testing.T) {
	dict := testDictionary(t)
	passes, _ := searchLogic("thequickbrownfox", dict, 25, 10000)
	for i := 1; i < len(passes); i++ {
		if passes[i-1].Score() < passes[i].Score() {
			t.Fatalf("passes not sorted by descending score at index %d: %v < %v", i, passes[i-1].Score(), passes[i].Score())
		}
	}
}

func TestSearchLogicDeduplicatesByDisplayText(t *testing.T) {
	dict := testDictionary(t)
	passes, _ := searchLogic("thedogandthecat", dict, 25, 10000)
	seen := make(map[string]bool)
	for _, p := range passes {
		text := p.DisplayText()
		if seen[text] {
			t.Fatalf("duplicate display text in result set: %q", text)
		}
		seen[text] = true
	}
}

func TestSearchLogicRespectsMaxPasses(t *testing.T) {
	dict := testDictionary(t)
	// The search stops as soon as the pool exceeds maxPasses, so the pool
	// holds at most one pass beyond the cap.
	passes, _ := searchLogic("thequickbrownfoxjumpsoverthelazydog", dict, 25, 20)
	if len(passes) > 20+1 {
		t.Errorf("expected pass pool to stop growing once it exceeds maxPasses, got %d", len(passes))
	}
}

func TestSearchLogicFallsBackToBareIntegers(t *testing.T) {
	dict := testDictionary(t)
	passes, _ := searchLogic("the99", dict, 25, 10000)
	if !passes[0].IsDone() {
		t.Errorf("expected a bare trailing integer to resolve via MatchWithoutTerm, got %q", passes[0].DisplayText())
	}
}
