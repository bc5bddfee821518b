package segment

import (
	"time"

	"go.uber.org/zap"
)

// Splitter is the top-level entry point: it owns a Dictionary, a result
// cache (consulted per call when useCache is set), and the two cap tiers a caller can choose between. It never
// panics; every failure mode surfaces as an error return.
type Splitter struct {
	dict   *Dictionary
	cache  *ResultCache
	config Config
	logger *zap.Logger
}

// NewSplitter wires a Dictionary and Config into a ready Splitter and starts
// its background cache eviction loop.
func NewSplitter(dict *Dictionary, config Config, logger *zap.Logger) *Splitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Splitter{
		dict:   dict,
		cache:  NewResultCache(config.MaxCacheItems, config.CleanupInterval),
		config: config,
		logger: logger,
	}
}

// Close stops the Splitter's background cache eviction loop.
func (s *Splitter) Close() {
	s.cache.Close()
}

// CacheStats exposes the result cache's cumulative counters, for the
// /getstats-style reporting the HTTP layer renders.
func (s *Splitter) CacheStats() (count, sets, hits, misses int) {
	return s.cache.Stats()
}

func (s *Splitter) caps(exhaustive bool) Caps {
	if exhaustive {
		return s.config.Exhaustive
	}
	return s.config.Default
}

// SimpleSplit returns a SplitResult whose Passes hold only the single best
// segmentation of input (its space-joined text is Output), going through
// the result cache when useCache is set.
func (s *Splitter) SimpleSplit(input string, useCache, exhaustive bool) (SplitResult, error) {
	return s.split(input, useCache, exhaustive, 1)
}

// FullSplit returns up to passDisplay candidate segmentations, most-likely
// first, along with the matched-term list and timing. PassCount on the
// result always reflects the true pre-truncation pool size, even when the
// Passes slice itself is cut down to passDisplay.
func (s *Splitter) FullSplit(input string, useCache, exhaustive bool, passDisplay int) (SplitResult, error) {
	if passDisplay < 1 {
		passDisplay = 1
	}
	return s.split(input, useCache, exhaustive, passDisplay)
}

func (s *Splitter) split(input string, useCache, exhaustive bool, passDisplay int) (SplitResult, error) {
	caps := s.caps(exhaustive)
	if len(input) > caps.MaxInputChars {
		input = input[:caps.MaxInputChars]
	}

	normalized := normalizeInput(input)

	cacheKey := normalized
	if useCache {
		if cached, ok := s.cache.Get(cacheKey); ok {
			cached.FromCache = true
			cached.Passes = truncatePasses(cached.Passes, passDisplay)
			return cached, nil
		}
	}

	start := time.Now()
	passes, matchedTerms := searchLogic(normalized, s.dict, caps.MaxTerms, caps.MaxPasses)
	elapsed := time.Since(start)

	result := newSplitResult(input, matchedTerms, len(passes), passes, elapsed)
	if useCache {
		s.cache.Set(cacheKey, result)
	}
	result.Passes = truncatePasses(result.Passes, passDisplay)
	return result, nil
}

// truncatePasses returns at most n passes from the front of passes, without
// mutating the underlying slice the cache may still be holding a reference
// to.
func truncatePasses(passes []*Pass, n int) []*Pass {
	if n <= 0 || n >= len(passes) {
		return passes
	}
	out := make([]*Pass, n)
	copy(out, passes[:n])
	return out
}
