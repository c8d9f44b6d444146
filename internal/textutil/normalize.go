// Package textutil provides the text normalization, tokenization, and
// stemming primitives used by the sentiment engine.
//
// Tokenization treats Unicode letters, digits, the underscore, and the
// apostrophe as word characters; everything else is a boundary. Offsets are
// byte offsets into the input string.
package textutil

import (
	"regexp"
	"strings"
	"unicode"
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_']+`)

// Token is a single word with its byte range in the source text.
type Token struct {
	Text  string
	Start int
	End   int
}

// Normalize lower-cases text for lexicon matching and cache keying.
func Normalize(text string) string {
	return strings.ToLower(text)
}

// Tokenize splits text into word tokens with byte offsets, in order.
func Tokenize(text string) []Token {
	idxs := wordPattern.FindAllStringIndex(text, -1)
	if idxs == nil {
		return nil
	}

	tokens := make([]Token, 0, len(idxs))
	for _, idx := range idxs {
		tokens = append(tokens, Token{
			Text:  text[idx[0]:idx[1]],
			Start: idx[0],
			End:   idx[1],
		})
	}
	return tokens
}

// isWordRune reports whether r belongs inside a word token.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '\''
}

// boundedAt reports whether text[start:end] sits on word boundaries, i.e. is
// not embedded in a longer word.
func boundedAt(text string, start, end int) bool {
	if start > 0 {
		prev := []rune(text[:start])
		if isWordRune(prev[len(prev)-1]) {
			return false
		}
	}
	if end < len(text) {
		next := []rune(text[end:])
		if isWordRune(next[0]) {
			return false
		}
	}
	return true
}

// ContainsBounded reports whether phrase occurs in text at word boundaries.
func ContainsBounded(text, phrase string) bool {
	return len(IndexAllBounded(text, phrase)) > 0
}

// IndexAllBounded returns the [start, end) byte ranges of every
// word-boundary occurrence of phrase in text.
func IndexAllBounded(text, phrase string) [][2]int {
	if phrase == "" {
		return nil
	}

	var ranges [][2]int
	for from := 0; ; {
		i := strings.Index(text[from:], phrase)
		if i < 0 {
			break
		}
		start := from + i
		end := start + len(phrase)
		if boundedAt(text, start, end) {
			ranges = append(ranges, [2]int{start, end})
		}
		from = start + 1
	}
	return ranges
}

// SplitSentences splits on sentence-ending punctuation ('.', '!', '?'
// treated uniformly) and drops empty fragments.
func SplitSentences(text string) []string {
	replacer := strings.NewReplacer("!", ".", "?", ".")
	parts := strings.Split(replacer.Replace(text), ".")

	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}
