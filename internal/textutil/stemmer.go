package textutil

import "strings"

// Tagalog affixes, longest first. Ties keep declaration order, so matching is
// deterministic.
var tagalogPrefixes = []string{
	"nakakapag",
	"pinakama",
	"makipag",
	"nakipag",
	"ipinag",
	"nakaka",
	"pinaka",
	"napaka",
	"pagka",
	"ikina",
	"ipag",
	"naka",
	"nag",
	"mag",
	"pag",
	"mga",
	"ma",
	"na",
	"ka",
	"pa",
	"um",
	"in",
	"i",
}

var tagalogSuffixes = []string{
	"han",
	"hin",
	"an",
	"in",
	"ng",
}

const (
	minStemRunes  = 3
	minInputRunes = 5
)

// Stem strips the longest matching Tagalog-style prefix and then the longest
// matching suffix from word. The input is returned unchanged when it is
// shorter than five runes or when stripping would leave fewer than three
// runes. Stemming is pure and order-dependent: prefixes before suffixes,
// longest affix first.
func Stem(word string) string {
	if len([]rune(word)) < minInputRunes {
		return word
	}

	stemmed := word
	for _, prefix := range tagalogPrefixes {
		if strings.HasPrefix(stemmed, prefix) {
			candidate := stemmed[len(prefix):]
			if len([]rune(candidate)) >= minStemRunes {
				stemmed = candidate
			}
			break
		}
	}

	for _, suffix := range tagalogSuffixes {
		if strings.HasSuffix(stemmed, suffix) {
			candidate := stemmed[:len(stemmed)-len(suffix)]
			if len([]rune(candidate)) >= minStemRunes {
				stemmed = candidate
			}
			break
		}
	}

	return stemmed
}
