package analyzer

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspulse/sentilex/internal/engine"
	"github.com/campuspulse/sentilex/internal/lexicon"
	"github.com/campuspulse/sentilex/internal/models"
)

type fakePrimary struct {
	result models.AnalysisResult
	err    error
	delay  time.Duration
	calls  atomic.Int32
}

func (f *fakePrimary) AnalyzeSingle(ctx context.Context, text string) (models.AnalysisResult, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return models.AnalysisResult{}, ctx.Err()
		case <-time.After(f.delay):
		}
	}
	if f.err != nil {
		return models.AnalysisResult{}, f.err
	}
	return f.result, nil
}

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	return engine.New(lexicon.NewStore(), engine.DefaultParams())
}

func remoteResult() models.AnalysisResult {
	return models.AnalysisResult{
		Sentiment:  models.SentimentPositive,
		Confidence: 0.9,
		Method:     engine.MethodRemote,
	}
}

func TestAnalyzeUsesPrimary(t *testing.T) {
	primary := &fakePrimary{result: remoteResult()}
	a := New(newTestEngine(t), Options{Primary: primary})

	result := a.Analyze(context.Background(), "this is good")

	assert.Equal(t, remoteResult(), result)
	assert.Equal(t, int32(1), primary.calls.Load())
}

func TestAnalyzeFallsBackOnPrimaryError(t *testing.T) {
	primary := &fakePrimary{err: errors.New("connection refused")}
	a := New(newTestEngine(t), Options{Primary: primary})

	result := a.Analyze(context.Background(), "this is good")

	assert.Equal(t, models.SentimentPositive, result.Sentiment)
	assert.Equal(t, engine.MethodRules, result.Method)
}

func TestAnalyzeFallsBackOnPrimaryTimeout(t *testing.T) {
	eng := newTestEngine(t)
	primary := &fakePrimary{result: remoteResult(), delay: 200 * time.Millisecond}
	a := New(eng, Options{
		Primary:        primary,
		PrimaryTimeout: 10 * time.Millisecond,
	})

	start := time.Now()
	result := a.Analyze(context.Background(), "this is good")

	assert.Less(t, time.Since(start), 150*time.Millisecond)
	assert.Equal(t, engine.MethodRules, result.Method)
	assert.Equal(t, eng.Analyze("this is good"), result)
}

func TestAnalyzeWithoutPrimary(t *testing.T) {
	a := New(newTestEngine(t), Options{})

	result := a.Analyze(context.Background(), "this is not good")

	assert.Equal(t, models.SentimentNegative, result.Sentiment)
	assert.Equal(t, engine.MethodRules, result.Method)
}

func TestLowLatencyModeSkipsPrimary(t *testing.T) {
	primary := &fakePrimary{result: remoteResult()}
	a := New(newTestEngine(t), Options{Primary: primary, LowLatency: true})

	result := a.Analyze(context.Background(), "this is good")

	assert.Equal(t, engine.MethodRules, result.Method)
	assert.Equal(t, int32(0), primary.calls.Load())
}

func TestUnhealthyPrimaryIsSkipped(t *testing.T) {
	primary := &fakePrimary{result: remoteResult()}
	healthy := &atomic.Bool{}
	a := New(newTestEngine(t), Options{Primary: primary, PrimaryHealthy: healthy})

	result := a.Analyze(context.Background(), "this is good")

	assert.Equal(t, engine.MethodRules, result.Method)
	assert.Equal(t, int32(0), primary.calls.Load())
}

func TestAnalyzeCachesByNormalizedText(t *testing.T) {
	primary := &fakePrimary{result: remoteResult()}
	a := New(newTestEngine(t), Options{Primary: primary})

	first := a.Analyze(context.Background(), "Great event!")
	second := a.Analyze(context.Background(), "great event!")

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), primary.calls.Load())
}

func TestCachedResultMatchesFreshOne(t *testing.T) {
	a := New(newTestEngine(t), Options{})

	fresh := a.Analyze(context.Background(), "maganda ang event")
	cached := a.Analyze(context.Background(), "maganda ang event")

	assert.Equal(t, fresh, cached)
}

func TestAnalyzeEmptyTextSkipsEverything(t *testing.T) {
	primary := &fakePrimary{result: remoteResult()}
	a := New(newTestEngine(t), Options{Primary: primary})

	result := a.Analyze(context.Background(), "   ")

	assert.Equal(t, engine.MethodEmpty, result.Method)
	assert.Equal(t, int32(0), primary.calls.Load())
}

func TestIsEligible(t *testing.T) {
	cases := []struct {
		comment string
		want    bool
	}{
		{"", false},
		{"   ", false},
		{"5", false},
		{"4.5", false},
		{" 42 ", false},
		{"123456", true},
		{"great event", true},
		{"5 stars", true},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, IsEligible(tc.comment), "comment %q", tc.comment)
	}
}

func TestAnalyzeManyFiltersAndAggregates(t *testing.T) {
	a := New(newTestEngine(t), Options{})

	breakdown := a.AnalyzeMany(context.Background(), []string{
		"this is good",
		"this is not good",
		"5",
		"",
	})

	assert.Equal(t, 1, breakdown.Positive.Count)
	assert.Equal(t, 1, breakdown.Negative.Count)
	assert.Equal(t, 50.0, breakdown.Positive.Percentage)
	assert.Equal(t, 50.0, breakdown.Negative.Percentage)
}

func TestAnalyzeManyAllIneligible(t *testing.T) {
	a := New(newTestEngine(t), Options{})

	breakdown := a.AnalyzeMany(context.Background(), []string{"", "5", "3.5"})

	assert.Equal(t, models.SentimentBreakdown{}, breakdown)
}

func TestGenerateReportUsesArbitratedPath(t *testing.T) {
	primary := &fakePrimary{result: remoteResult()}
	a := New(newTestEngine(t), Options{Primary: primary})

	report := a.GenerateReport(context.Background(), []string{"this is good", "5"})

	assert.Equal(t, 1, report.Total)
	require.Len(t, report.Categorized[models.SentimentPositive], 1)
	assert.Equal(t, engine.MethodRemote, report.Categorized[models.SentimentPositive][0].Result.Method)
}
