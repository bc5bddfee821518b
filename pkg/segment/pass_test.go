package segment

import "testing"

func TestPassDisplayTextJoinsSplits(t *testing.T) {
	p := NewPassWithSplits("splitthis", []Split{NewSplit("split"), NewSplit("this")})
	if got := p.DisplayText(); got != "split this" {
		t.Errorf("DisplayText() = %q, want %q", got, "split this")
	}
}

func TestPassIsDoneAndUnmatchedCount(t *testing.T) {
	p := NewPassWithSplits("ab", []Split{NewSplit("a"), NewSplit("b")})
	if p.IsDone() {
		t.Fatal("a pass with unmatched splits should not be done")
	}
	if got := p.UnmatchedSplitCount(); got != 2 {
		t.Errorf("UnmatchedSplitCount() = %d, want 2", got)
	}

	term := NewTerm("a", 0.02, 1.0, NewSourceSet(SourceGoogleBooks1Gram))
	p.Split(0, 0, 1, term)
	if p.UnmatchedSplitCount() != 1 {
		t.Errorf("UnmatchedSplitCount() after one match = %d, want 1", p.UnmatchedSplitCount())
	}

	term2 := NewTerm("b", 0.02, 1.0, NewSourceSet(SourceGoogleBooks1Gram))
	p.Split(1, 0, 1, term2)
	if !p.IsDone() {
		t.Fatal("expected pass to be done once every split is matched")
	}
}

func TestPassSplitExactMatchInPlace(t *testing.T) {
	p := NewPassWithSplits("hello", []Split{NewSplit("hello")})
	term := NewTerm("hello", 0.0001, 1.0, NewSourceSet(SourceGoogleBooks1Gram))
	p.Split(0, 0, len("hello"), term)

	if len(p.Splits) != 1 {
		t.Fatalf("expected split count to stay at 1, got %d", len(p.Splits))
	}
	if !p.Splits[0].Matched {
		t.Fatal("expected the split to be matched")
	}
}

func TestPassSplitPrefixMatch(t *testing.T) {
	p := NewPassWithSplits("helloworld", []Split{NewSplit("helloworld")})
	term := NewTerm("hello", 0.0001, 1.0, NewSourceSet(SourceGoogleBooks1Gram))
	p.Split(0, 0, len("hello"), term)

	if len(p.Splits) != 2 {
		t.Fatalf("expected 2 splits after a prefix match, got %d", len(p.Splits))
	}
	if !p.Splits[0].Matched || p.Splits[0].Text != "hello" {
		t.Errorf("unexpected matched split: %+v", p.Splits[0])
	}
	if p.Splits[1].Matched || p.Splits[1].Text != "world" {
		t.Errorf("unexpected remainder split: %+v", p.Splits[1])
	}
}

func TestPassSplitMiddleMatch(t *testing.T) {
	p := NewPassWithSplits("xhelloy", []Split{NewSplit("xhelloy")})
	term := NewTerm("hello", 0.0001, 1.0, NewSourceSet(SourceGoogleBooks1Gram))
	p.Split(0, 1, len("hello"), term)

	if len(p.Splits) != 3 {
		t.Fatalf("expected 3 splits after a middle match, got %d", len(p.Splits))
	}
	if p.Splits[0].Text != "x" || p.Splits[2].Text != "y" {
		t.Errorf("unexpected prefix/suffix: %q / %q", p.Splits[0].Text, p.Splits[2].Text)
	}
	if !p.Splits[1].Matched || p.Splits[1].Text != "hello" {
		t.Errorf("unexpected matched split: %+v", p.Splits[1])
	}
}

func TestPassSplitSuffixMatch(t *testing.T) {
	p := NewPassWithSplits("worldhello", []Split{NewSplit("worldhello")})
	term := NewTerm("hello", 0.0001, 1.0, NewSourceSet(SourceGoogleBooks1Gram))
	p.Split(0, len("world"), len("hello"), term)

	if len(p.Splits) != 2 {
		t.Fatalf("expected 2 splits after a suffix match, got %d", len(p.Splits))
	}
	if p.Splits[0].Matched || p.Splits[0].Text != "world" {
		t.Errorf("unexpected remainder split: %+v", p.Splits[0])
	}
	if !p.Splits[1].Matched || p.Splits[1].Text != "hello" {
		t.Errorf("unexpected matched split: %+v", p.Splits[1])
	}
}

func TestPassScoreDoublesWhenDone(t *testing.T) {
	term := NewTerm("hello", 0.0001, 1.0, NewSourceSet(SourceGoogleBooks1Gram))
	p := NewPassWithSplits("hello", []Split{NewSplit("hello")})
	p.Split(0, 0, len("hello"), term)

	unfinished := NewPassWithSplits("helloworld", []Split{NewSplit("helloworld")})
	unfinished.Split(0, 0, len("hello"), term)

	if p.Score() <= unfinished.Score() {
		t.Errorf("a fully matched pass should outscore a partially matched one: %v vs %v", p.Score(), unfinished.Score())
	}
}

func TestPassCloneIsIndependent(t *testing.T) {
	p := NewPassWithSplits("ab", []Split{NewSplit("a"), NewSplit("b")})
	clone := p.Clone()

	term := NewTerm("a", 0.02, 1.0, NewSourceSet(SourceGoogleBooks1Gram))
	clone.Split(0, 0, 1, term)

	if p.Splits[0].Matched {
		t.Error("mutating the clone should not affect the original pass")
	}
	if p.DisplayText() != "a b" {
		t.Errorf("original pass text changed unexpectedly: %q", p.DisplayText())
	}
}

func TestPassUniqueStringDistinguishesMatchState(t *testing.T) {
	a := NewPassWithSplits("ab", []Split{NewSplit("a"), NewSplit("b")})
	b := a.Clone()
	term := NewTerm("a", 0.02, 1.0, NewSourceSet(SourceGoogleBooks1Gram))
	b.Split(0, 0, 1, term)

	if a.UniqueString() == b.UniqueString() {
		t.Error("passes with different match state should have different unique strings")
	}
}
