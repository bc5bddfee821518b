package segment

import (
	"reflect"
	"sort"
	"testing"
)

func newFinalized(patterns ...string) *AhoCorasick {
	ac := NewAhoCorasick()
	for _, p := range patterns {
		ac.Add(p)
	}
	ac.Finalize()
	return ac
}

func TestAhoCorasickFindAll(t *testing.T) {
	ac := newFinalized("he", "she", "his", "hers")

	got := ac.FindAll("ushers")
	sort.Strings(got)
	want := []string{"he", "hers", "she"}
	sort.Strings(want)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FindAll(%q) = %v, want %v", "ushers", got, want)
	}
}

func TestAhoCorasickNoMatches(t *testing.T) {
	ac := newFinalized("cat", "dog")
	got := ac.FindAll("elephant")
	if len(got) != 0 {
		t.Fatalf("FindAll(%q) = %v, want none", "elephant", got)
	}
}

func TestAhoCorasickOverlappingPatterns(t *testing.T) {
	ac := newFinalized("a", "ab", "abc")
	got := ac.FindAll("abc")
	sort.Strings(got)
	want := []string{"a", "ab", "abc"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FindAll(%q) = %v, want %v", "abc", got, want)
	}
}

func TestAhoCorasickEmptyPatternIgnored(t *testing.T) {
	ac := NewAhoCorasick()
	ac.Add("")
	ac.Add("x")
	ac.Finalize()

	got := ac.FindAll("xyz")
	want := []string{"x"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FindAll(%q) = %v, want %v", "xyz", got, want)
	}
}

func TestAhoCorasickAddAfterFinalizePanics(t *testing.T) {
	ac := newFinalized("a")
	defer func() {
		if recover() == nil {
			t.Fatal("expected Add after Finalize to panic")
		}
	}()
	ac.Add("b")
}
