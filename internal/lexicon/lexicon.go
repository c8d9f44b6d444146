// Package lexicon holds the bilingual sentiment word/phrase table behind the
// rule engine. A static built-in table is always present; dynamically edited
// entries are merged on top of it, keyed by (word, language), and the whole
// table is swapped atomically on reload so readers never observe a partial
// merge.
package lexicon

import (
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/campuspulse/sentilex/internal/models"
	"github.com/campuspulse/sentilex/internal/textutil"
)

// Language tags a lexicon entry.
type Language string

const (
	LangEnglish Language = "en"
	LangTagalog Language = "tl"
)

const (
	defaultPhraseWeight = 2.5
	maxWeight           = 5.0
)

type sentimentLabel int

const (
	labelPositive sentimentLabel = iota
	labelNegative
)

func (l sentimentLabel) toModel() models.Sentiment {
	if l == labelNegative {
		return models.SentimentNegative
	}
	return models.SentimentPositive
}

// Entry is one word or phrase in the lexicon.
type Entry struct {
	Word      string
	Sentiment models.Sentiment
	Weight    float64
	Language  Language
	IsPhrase  bool
}

// Store merges the built-in table with dynamically loaded entries and serves
// concurrent lookups. Reload rebuilds every index and swaps it in one step.
type Store struct {
	mu      sync.RWMutex
	words   map[string]Entry // keyed lang + "\x00" + word
	stems   map[string]Entry
	posPhr  []string // longest first
	negPhr  []string
	dynamic map[string]Entry // survives subsequent loads
}

// NewStore builds a store holding only the built-in table.
func NewStore() *Store {
	s := &Store{dynamic: make(map[string]Entry)}
	s.rebuild()
	return s
}

func storeKey(lang Language, word string) string {
	return string(lang) + "\x00" + word
}

func isPhraseWord(word string) bool {
	return strings.ContainsAny(word, " -")
}

// Load merges externally supplied entries into the lexicon and returns the
// number accepted. Malformed entries (empty word, unknown sentiment, weight
// outside [0, 5]) are skipped with a diagnostic, never fatally.
func (s *Store) Load(entries []Entry) int {
	accepted := 0

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range entries {
		e.Word = strings.ToLower(strings.TrimSpace(e.Word))
		if e.Word == "" {
			slog.Warn("[Lexicon] Skipping entry with empty word")
			continue
		}
		switch e.Sentiment {
		case models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral:
		default:
			slog.Warn("[Lexicon] Skipping entry with invalid sentiment",
				slog.String("word", e.Word),
				slog.String("sentiment", string(e.Sentiment)))
			continue
		}
		if e.Weight < 0 || e.Weight > maxWeight {
			slog.Warn("[Lexicon] Skipping entry with out-of-range weight",
				slog.String("word", e.Word),
				slog.Float64("weight", e.Weight))
			continue
		}
		if e.Language != LangEnglish && e.Language != LangTagalog {
			e.Language = LangTagalog
		}
		e.IsPhrase = isPhraseWord(e.Word)

		s.dynamic[storeKey(e.Language, e.Word)] = e
		accepted++
	}

	s.rebuildLocked()

	slog.Info("[Lexicon] Dynamic entries merged",
		slog.Int("accepted", accepted),
		slog.Int("skipped", len(entries)-accepted))
	return accepted
}

// ParseEntries converts wire-form entries into lexicon entries. Validation
// happens in Load; this is a plain mapping.
func ParseEntries(inputs []models.LexiconEntryInput) []Entry {
	entries := make([]Entry, 0, len(inputs))
	for _, in := range inputs {
		entries = append(entries, Entry{
			Word:      in.Word,
			Sentiment: models.Sentiment(strings.ToLower(in.Sentiment)),
			Weight:    in.Weight,
			Language:  Language(in.Language),
		})
	}
	return entries
}

func (s *Store) rebuild() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rebuildLocked()
}

// rebuildLocked reindexes built-in plus dynamic entries. Dynamic entries win
// on (word, language) collisions. Caller holds the write lock.
func (s *Store) rebuildLocked() {
	merged := make(map[string]Entry)
	for _, e := range builtinEntries() {
		merged[storeKey(e.Language, e.Word)] = e
	}
	for k, e := range s.dynamic {
		merged[k] = e
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	words := make(map[string]Entry, len(merged))
	stems := make(map[string]Entry)
	var posPhr, negPhr []string

	for _, k := range keys {
		e := merged[k]
		if e.IsPhrase {
			switch e.Sentiment {
			case models.SentimentPositive:
				posPhr = append(posPhr, e.Word)
			case models.SentimentNegative:
				negPhr = append(negPhr, e.Word)
			}
			continue
		}

		words[k] = e
		stem := textutil.Stem(e.Word)
		if _, taken := stems[stem]; !taken {
			stems[stem] = e
		}
	}

	byLengthDesc(posPhr)
	byLengthDesc(negPhr)

	s.words = words
	s.stems = stems
	s.posPhr = posPhr
	s.negPhr = negPhr
}

// byLengthDesc orders phrases longest first, ties kept stable.
func byLengthDesc(phrases []string) {
	sort.SliceStable(phrases, func(i, j int) bool {
		return len(phrases[i]) > len(phrases[j])
	})
}

// Lookup finds an exact single-word entry, Tagalog table first.
func (s *Store) Lookup(word string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if e, ok := s.words[storeKey(LangTagalog, word)]; ok {
		return e, true
	}
	if e, ok := s.words[storeKey(LangEnglish, word)]; ok {
		return e, true
	}
	return Entry{}, false
}

// LookupStem stems the word and retries the lookup against both the exact
// table and the stem index.
func (s *Store) LookupStem(word string) (Entry, bool) {
	stem := textutil.Stem(word)
	if stem == word {
		return Entry{}, false
	}
	if e, ok := s.Lookup(stem); ok {
		return e, true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.stems[stem]
	return e, ok
}

// PositivePhrases returns the positive phrase table, longest phrase first.
func (s *Store) PositivePhrases() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.posPhr...)
}

// NegativePhrases returns the negative phrase table, longest phrase first.
func (s *Store) NegativePhrases() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.negPhr...)
}
