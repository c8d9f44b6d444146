// Package analyzer arbitrates between the remote primary engine and the
// in-process fallback. Every call goes cache -> primary (bounded wait) ->
// fallback; the fallback is the same rule engine the primary runs, so a
// failed or slow primary only costs latency, never correctness.
package analyzer

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/campuspulse/sentilex/internal/cache"
	"github.com/campuspulse/sentilex/internal/engine"
	"github.com/campuspulse/sentilex/internal/models"
	"github.com/campuspulse/sentilex/internal/textutil"
)

const (
	DefaultPrimaryTimeout = 5 * time.Second
	DefaultWorkers        = 8
)

// ratingPattern matches answers that are bare numeric ratings rather than
// free text; those never reach the engine.
var ratingPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

const maxRatingLen = 5

// PrimaryClient is the remote analyzer service surface the arbitrator needs.
type PrimaryClient interface {
	AnalyzeSingle(ctx context.Context, text string) (models.AnalysisResult, error)
}

// Analyzer owns its result cache; the engine's lexicon store is shared
// read-only. A nil primary client, low-latency mode, or an unhealthy
// primary all route calls straight to the in-process engine.
type Analyzer struct {
	engine         *engine.Engine
	cache          *cache.Cache
	primary        PrimaryClient
	primaryHealthy *atomic.Bool
	timeout        time.Duration
	lowLatency     bool
	workers        int
}

// Options configures an Analyzer. Zero values select the defaults.
type Options struct {
	Primary        PrimaryClient
	PrimaryHealthy *atomic.Bool
	PrimaryTimeout time.Duration
	// LowLatency skips the primary engine unconditionally. Used when the
	// call volume makes the cross-process hop unacceptable.
	LowLatency bool
	Workers    int
	Cache      *cache.Cache
}

func New(eng *engine.Engine, opts Options) *Analyzer {
	if opts.PrimaryTimeout <= 0 {
		opts.PrimaryTimeout = DefaultPrimaryTimeout
	}
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.Cache == nil {
		opts.Cache = cache.New(cache.DefaultCapacity, cache.DefaultTTL)
	}
	return &Analyzer{
		engine:         eng,
		cache:          opts.Cache,
		primary:        opts.Primary,
		primaryHealthy: opts.PrimaryHealthy,
		timeout:        opts.PrimaryTimeout,
		lowLatency:     opts.LowLatency,
		workers:        opts.Workers,
	}
}

// Analyze scores one comment. It never returns an error: any primary-engine
// failure falls back to the in-process engine, which always terminates with
// a structurally valid result.
func (a *Analyzer) Analyze(ctx context.Context, text string) models.AnalysisResult {
	key := textutil.Normalize(strings.TrimSpace(text))
	if key == "" {
		return engine.EmptyResult()
	}

	if result, ok := a.cache.Get(key); ok {
		return result
	}

	result, ok := a.tryPrimary(ctx, text)
	if !ok {
		result = a.engine.Analyze(text)
	}

	a.cache.Set(key, result)
	return result
}

// tryPrimary invokes the remote engine with a hard deadline. A result that
// arrives after the deadline is discarded.
func (a *Analyzer) tryPrimary(ctx context.Context, text string) (models.AnalysisResult, bool) {
	if a.lowLatency || a.primary == nil {
		return models.AnalysisResult{}, false
	}
	if a.primaryHealthy != nil && !a.primaryHealthy.Load() {
		return models.AnalysisResult{}, false
	}

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	type outcome struct {
		result models.AnalysisResult
		err    error
	}
	ch := make(chan outcome, 1)
	go func() {
		result, err := a.primary.AnalyzeSingle(callCtx, text)
		ch <- outcome{result: result, err: err}
	}()

	select {
	case <-callCtx.Done():
		slog.Warn("[Analyzer] Primary engine timed out, using fallback",
			slog.Duration("timeout", a.timeout))
		return models.AnalysisResult{}, false
	case o := <-ch:
		if o.err != nil {
			slog.Warn("[Analyzer] Primary engine unavailable, using fallback",
				slog.String("error", o.err.Error()))
			return models.AnalysisResult{}, false
		}
		return o.result, true
	}
}

// AnalyzeMany scores a batch of comments and aggregates them into a
// breakdown. Pure-rating and empty answers are filtered out before scoring.
// Items fan out across a bounded worker pool; counts are reassembled in
// input order so aggregate reporting is tie-stable.
func (a *Analyzer) AnalyzeMany(ctx context.Context, comments []string) models.SentimentBreakdown {
	eligible := make([]int, 0, len(comments))
	for i, comment := range comments {
		if IsEligible(comment) {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		return models.SentimentBreakdown{}
	}

	results := make([]models.AnalysisResult, len(comments))

	var wg sync.WaitGroup
	sem := make(chan struct{}, a.workers)
	for _, i := range eligible {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = a.Analyze(ctx, comments[i])
		}(i)
	}
	wg.Wait()

	ordered := make([]models.AnalysisResult, 0, len(eligible))
	for _, i := range eligible {
		ordered = append(ordered, results[i])
	}
	return engine.BuildBreakdown(ordered)
}

// GenerateReport builds the full qualitative report through the arbitrated
// per-comment path, so cached and primary results are reused.
func (a *Analyzer) GenerateReport(ctx context.Context, comments []string) models.Report {
	report := models.Report{
		Categorized: map[models.Sentiment][]models.AnalyzedComment{
			models.SentimentPositive: {},
			models.SentimentNeutral:  {},
			models.SentimentNegative: {},
		},
	}

	var results []models.AnalysisResult
	for _, comment := range comments {
		if !IsEligible(comment) {
			continue
		}

		result := a.Analyze(ctx, comment)
		report.Categorized[result.Sentiment] = append(report.Categorized[result.Sentiment], models.AnalyzedComment{
			Text:   comment,
			Result: result,
			Parts:  a.engine.SplitBySentiment(comment),
		})
		results = append(results, result)
	}

	report.Total = len(results)
	report.Summary = engine.BuildBreakdown(results)
	return report
}

// SplitBySentiment exposes the engine's sentence regrouping for callers
// that stream per-comment results.
func (a *Analyzer) SplitBySentiment(text string) models.CommentParts {
	return a.engine.SplitBySentiment(text)
}

// IsEligible reports whether an answer is free text worth scoring: not
// blank and not a bare numeric rating.
func IsEligible(comment string) bool {
	trimmed := strings.TrimSpace(comment)
	if trimmed == "" {
		return false
	}
	if len(trimmed) <= maxRatingLen && ratingPattern.MatchString(trimmed) {
		return false
	}
	return true
}
