package segment

import "time"

// Caps bounds one search invocation: how many characters of input are
// accepted, how many candidate terms are carried into the search, and how
// large the pass pool is allowed to grow before the search is cut short.
// A Splitter holds two sets of Caps — Default and Exhaustive — selected per
// call by the caller's exhaustive flag.
type Caps struct {
	MaxInputChars int
	MaxTerms      int
	MaxPasses     int
}

// DefaultCaps mirrors the reference implementation's everyday limits: tight
// enough to keep typical requests fast.
func DefaultCaps() Caps {
	return Caps{MaxInputChars: 100, MaxTerms: 25, MaxPasses: 10000}
}

// ExhaustiveCaps mirrors the reference implementation's opt-in limits for
// callers willing to trade latency for a more thorough search.
func ExhaustiveCaps() Caps {
	return Caps{MaxInputChars: 250, MaxTerms: 50, MaxPasses: 25000}
}

// Config bundles everything a Splitter needs beyond the dictionary itself:
// the two cap tiers, and the result cache's size and cleanup cadence.
type Config struct {
	Default         Caps
	Exhaustive      Caps
	MaxCacheItems   int
	CleanupInterval time.Duration
}

// DefaultConfig returns the out-of-the-box Config, matching the reference
// service's defaults.
func DefaultConfig() Config {
	return Config{
		Default:         DefaultCaps(),
		Exhaustive:      ExhaustiveCaps(),
		MaxCacheItems:   100000,
		CleanupInterval: 60 * time.Second,
	}
}
