// Package httpapi exposes the segmenter over HTTP using gin, mirroring the
// original Flask service's routes: /ping, /getstats, /wordsplit, plus a
// Prometheus /metrics endpoint the original never had.
package httpapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/jonhyland-go/centipede/internal/state"
	"github.com/jonhyland-go/centipede/internal/stats"
	"github.com/jonhyland-go/centipede/pkg/segment"
)

// Server bundles everything the HTTP handlers need: the splitter itself,
// service state, stats, and a logger.
type Server struct {
	splitter *segment.Splitter
	state    *state.ServiceState
	stats    *stats.Stats
	logger   *zap.Logger
}

// New builds a Server. Call Router to obtain a gin.Engine ready to run.
func New(splitter *segment.Splitter, st *state.ServiceState, sts *stats.Stats, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{splitter: splitter, state: st, stats: sts, logger: logger}
}

// Router builds the gin engine and registers every route.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/ping", s.handlePing)
	r.GET("/getstats", s.handleGetStats)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/wordsplit", s.handleWordSplit)
	return r
}

func (s *Server) observe(name string, start time.Time) {
	s.stats.Observe(name, time.Since(start))
}

// handlePing reports the current service state as a plain-text body.
func (s *Server) handlePing(c *gin.Context) {
	start := time.Now()
	defer s.observe("ping", start)
	c.String(http.StatusOK, s.state.State().String())
}

type splitCacheStats struct {
	ItemCount         int     `json:"itemCount"`
	Sets              int     `json:"sets"`
	Hits              int     `json:"hits"`
	Misses            int     `json:"misses"`
	EfficiencyPercent float64 `json:"efficiencyPercent"`
}

// handleGetStats reports cache and per-operation statistics as JSON,
// matching the shape the original service's JsonWriter produced.
func (s *Server) handleGetStats(c *gin.Context) {
	start := time.Now()
	defer s.observe("getstats", start)

	count, sets, hits, misses := s.splitter.CacheStats()
	percent := 0.0
	if hits+misses != 0 {
		percent = float64(hits) / float64(hits+misses) * 100.0
	}

	c.JSON(http.StatusOK, gin.H{
		"command":      "getstats",
		"serviceState": gin.H{"state": s.state.State().String()},
		"splitCache": splitCacheStats{
			ItemCount:         count,
			Sets:              sets,
			Hits:              hits,
			Misses:            misses,
			EfficiencyPercent: percent,
		},
		"operations": s.stats.Snapshot(),
	})
}

type wordSplitResult struct {
	Input     string  `json:"input"`
	Output    string  `json:"output"`
	Score     float64 `json:"score"`
	FromCache bool    `json:"fromCache"`
}

// handleWordSplit parses the query parameters, runs one split per
// comma-or-pipe-separated input, and renders the result list as JSON or
// plain text. Errors for individual inputs are collected and reported
// alongside any results that did succeed; the handler itself never returns
// a 5xx for a bad split.
func (s *Server) handleWordSplit(c *gin.Context) {
	start := time.Now()
	defer s.observe("wordsplit", start)

	rawInput := strings.ReplaceAll(c.Query("input"), "|", ",")
	inputs := strings.Split(rawInput, ",")
	if len(inputs) > 1000 {
		inputs = inputs[:1000]
	}

	passDisplay, err := strconv.Atoi(c.DefaultQuery("passdisplay", "5"))
	if err != nil || passDisplay < 1 {
		passDisplay = 5
	}
	exhaustive := c.DefaultQuery("exhaustive", "0") == "1"
	useCache := c.DefaultQuery("cache", "1") == "1"
	output := strings.ToLower(c.DefaultQuery("output", "json"))

	var results []wordSplitResult
	var errs []string
	for _, input := range inputs {
		var result segment.SplitResult
		var err error
		if exhaustive {
			result, err = s.splitter.FullSplit(input, useCache, exhaustive, passDisplay)
		} else {
			result, err = s.splitter.SimpleSplit(input, useCache, exhaustive)
		}
		if err != nil {
			s.logger.Warn("wordsplit failed for input", zap.String("input", input), zap.Error(err))
			errs = append(errs, err.Error())
			continue
		}
		results = append(results, wordSplitResult{
			Input:     result.Input,
			Output:    result.Output,
			Score:     result.Score,
			FromCache: result.FromCache,
		})
	}

	if output == "text" {
		var b strings.Builder
		for _, r := range results {
			b.WriteString(r.Output)
			b.WriteByte('\n')
		}
		c.String(http.StatusOK, b.String())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"command": "wordsplit",
		"input": gin.H{
			"passdisplay": passDisplay,
			"exhaustive":  exhaustive,
		},
		"output": results,
		"errors": errs,
	})
}
