package segment

import "testing"

func newTestSplitter(t *testing.T) *Splitter {
	t.Helper()
	dict := testDictionary(t)
	s := NewSplitter(dict, DefaultConfig(), nil)
	t.Cleanup(s.Close)
	return s
}

func TestSimpleSplitReturnsBestGuess(t *testing.T) {
	s := newTestSplitter(t)
	result, err := s.SimpleSplit("splitthis", false, false)
	if err != nil {
		t.Fatalf("SimpleSplit returned an error: %v", err)
	}
	if result.Output == "" {
		t.Fatal("expected a non-empty output")
	}
	if result.FromCache {
		t.Error("first call should not be a cache hit")
	}
}

func TestSimpleSplitCacheHitOnSecondCall(t *testing.T) {
	s := newTestSplitter(t)
	first, err := s.SimpleSplit("splitthis", true, false)
	if err != nil {
		t.Fatalf("first SimpleSplit returned an error: %v", err)
	}
	if first.FromCache {
		t.Fatal("first call should not be a cache hit")
	}

	second, err := s.SimpleSplit("splitthis", true, false)
	if err != nil {
		t.Fatalf("second SimpleSplit returned an error: %v", err)
	}
	if !second.FromCache {
		t.Fatal("second call with useCache=true should be a cache hit")
	}
	if second.Output != first.Output {
		t.Errorf("cached output %q does not match original output %q", second.Output, first.Output)
	}
}

func TestSimpleSplitSkipsCacheWhenDisabled(t *testing.T) {
	s := newTestSplitter(t)
	s.SimpleSplit("splitthis", false, false)
	second, err := s.SimpleSplit("splitthis", false, false)
	if err != nil {
		t.Fatalf("SimpleSplit returned an error: %v", err)
	}
	if second.FromCache {
		t.Error("expected no cache hit when useCache is false")
	}
}

func TestFullSplitTruncatesToPassDisplay(t *testing.T) {
	s := newTestSplitter(t)
	result, err := s.FullSplit("thequickbrownfox", false, true, 2)
	if err != nil {
		t.Fatalf("FullSplit returned an error: %v", err)
	}
	if len(result.Passes) > 2 {
		t.Errorf("expected at most 2 passes returned, got %d", len(result.Passes))
	}
	if result.PassCount < len(result.Passes) {
		t.Errorf("PassCount (%d) should reflect the true pre-truncation size, not be less than the truncated slice (%d)", result.PassCount, len(result.Passes))
	}
}

func TestSplitTruncatesOverlongInput(t *testing.T) {
	s := newTestSplitter(t)
	maxChars := DefaultCaps().MaxInputChars
	huge := make([]byte, maxChars+50)
	for i := range huge {
		huge[i] = 'a'
	}
	result, err := s.SimpleSplit(string(huge), false, false)
	if err != nil {
		t.Fatalf("SimpleSplit returned an error for overlong input, want silent truncation: %v", err)
	}
	if len(result.Input) != maxChars {
		t.Errorf("Input length = %d, want truncated to %d", len(result.Input), maxChars)
	}
}
