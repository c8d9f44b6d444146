package engine

import "strings"

// emoticonScore sums the polarity of every recognized glyph occurrence in
// the raw, non-lowercased text. The sign of the sum decides which score
// bucket absorbs it.
func emoticonScore(raw string) float64 {
	var score float64
	for glyph, value := range emoticonScores {
		if n := strings.Count(raw, glyph); n > 0 {
			score += float64(n) * value
		}
	}
	return score
}
