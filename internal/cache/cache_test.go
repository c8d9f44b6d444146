package cache

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspulse/sentilex/internal/models"
)

func positiveResult() models.AnalysisResult {
	return models.AnalysisResult{Sentiment: models.SentimentPositive, Confidence: 0.7}
}

func TestCacheHit(t *testing.T) {
	c := New(10, time.Minute)
	c.Set("maganda", positiveResult())

	got, ok := c.Get("maganda")
	require.True(t, ok)
	assert.Equal(t, positiveResult(), got)
}

func TestCacheMiss(t *testing.T) {
	c := New(10, time.Minute)

	_, ok := c.Get("missing")
	assert.False(t, ok)
}

func TestCacheExpiry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := NewWithClock(10, 10*time.Minute, clock)

	c.Set("maganda", positiveResult())

	clock.Advance(9 * time.Minute)
	_, ok := c.Get("maganda")
	assert.True(t, ok)

	clock.Advance(time.Minute)
	_, ok = c.Get("maganda")
	assert.False(t, ok)
}

func TestCacheExpiredGetDropsEntry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := NewWithClock(10, time.Minute, clock)

	c.Set("maganda", positiveResult())
	clock.Advance(2 * time.Minute)

	_, ok := c.Get("maganda")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCacheCapacityEvictsOldest(t *testing.T) {
	c := New(2, time.Minute)

	c.Set("a", positiveResult())
	c.Set("b", positiveResult())
	c.Set("c", positiveResult())

	assert.Equal(t, 2, c.Len())

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestCacheSetRefreshesExistingKey(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := NewWithClock(10, 10*time.Minute, clock)

	c.Set("maganda", positiveResult())
	clock.Advance(6 * time.Minute)
	c.Set("maganda", positiveResult())

	clock.Advance(6 * time.Minute)
	_, ok := c.Get("maganda")
	assert.True(t, ok)
	assert.Equal(t, 1, c.Len())
}

func TestCacheDefaultsOnNonPositiveArguments(t *testing.T) {
	c := New(0, 0)

	c.Set("maganda", positiveResult())
	_, ok := c.Get("maganda")
	assert.True(t, ok)
}
