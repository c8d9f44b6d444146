package lexicon

// Built-in lexicon tables. Weights are magnitudes in [0, 5]; polarity lives
// in the sentiment field. Multi-word and hyphenated entries are matched as
// whole phrases before single-word scoring.

var builtinPositiveTL = map[string]float64{
	"maganda":    1,
	"mabuti":     1,
	"masaya":     1,
	"nakakatuwa": 1,
	"galing":     1,
	"bilib":      1,
	"husay":      1,
	"magaling":   1,
	"astig":      1,
	"sulit":      1,

	"napakaganda":  2,
	"napakagaling": 2,
	"napakasaya":   2,
	"napakaayos":   2,
	"tagumpay":     1,

	// Intensity words carry their own positive charge in feedback text.
	"napaka": 1.5,
	"sobra":  1.5,
	"labis":  1.5,
	"lubos":  1.5,
	"grabe":  1.5,

	"salamat":    1,
	"mahusay":    1,
	"maayos":     1,
	"natuto":     1,
	"natutunan":  1,
	"nakatulong": 1,

	// Slang
	"solid": 1,
	"swabe": 1,
	"oks":   0.5,
	"lupet": 1.5,
}

var builtinPositiveEN = map[string]float64{
	"good":        1,
	"great":       1.5,
	"nice":        1,
	"goods":       1,
	"awesome":     1.5,
	"amazing":     1.5,
	"wonderful":   1.5,
	"fantastic":   1.5,
	"best":        2,
	"excellent":   2,
	"outstanding": 2,
	"perfect":     2,
	"happy":       1,
	"love":        1.5,

	"effective":    1,
	"efficient":    1,
	"successful":   1,
	"productive":   1,
	"organized":    1,
	"smooth":       1,
	"professional": 1,

	"helpful":       1,
	"informative":   1.5,
	"enlightening":  1,
	"satisfied":     1,
	"enjoyed":       1.5,
	"enjoyable":     1,
	"fun":           1,
	"interesting":   1,
	"educational":   1,
	"insightful":    1.5,
	"valuable":      1.5,
	"useful":        1,
	"inspiring":     1.5,
	"motivating":    1,
	"engaging":      1,
	"memorable":     1.5,
	"unforgettable": 2,

	"grateful":    1,
	"appreciate":  1,
	"appreciated": 1,
	"thankful":    1,

	"super": 1.5,
	"very":  1.5,

	"recommend":   1.5,
	"recommended": 1.5,

	"well-organized": 1.5,
	"well-prepared":  1.5,
	"well-managed":   1.5,
	"well-planned":   1,
}

var builtinNegativeTL = map[string]float64{
	"masama":       1,
	"pangit":       1,
	"nakakaasar":   1,
	"nakakainis":   1,
	"galit":        1,
	"ayaw":         1,
	"badtrip":      1,
	"nakakagalit":  1,
	"nakakaantok":  1,
	"napakapangit": 2,
	"napakamasama": 2,
	"napakagalit":  2,
	"sayang":       1,

	"nakakadismaya": 1,
	"dismayado":     1,
	"nabigo":        1,

	"problema":   0.7,
	"mali":       0.8,
	"kulang":     0.7,
	"kakulangan": 0.8,
	"nahirapan":  0.8,
	"magulo":     0.8,

	"nagmamadali": 0.7,
	"masikip":     0.7,
	"mainit":      0.6,
	"matagal":     0.6,
	"maikli":      0.5,
	"mabagal":     0.6,

	"napagod":         0.6,
	"naumay":          0.7,
	"nagsawa":         0.7,
	"nakakabore":      0.8,
	"nakakaumay":      0.8,
	"nakakasawa":      0.7,
	"nakakafrustrate": 1,
}

var builtinNegativeEN = map[string]float64{
	"bad":      1,
	"terrible": 1.5,
	"awful":    1.5,
	"worst":    2,
	"horrible": 1.5,
	"pathetic": 1.5,
	"poor":     1,

	"boring":        1,
	"bored":         0.7,
	"tired":         0.6,
	"exhausted":     0.7,
	"disappointed":  1,
	"disappointing": 1,
	"failed":        1,
	"frustrated":    1,
	"frustrating":   1,

	"problem":     0.7,
	"issue":       0.7,
	"incomplete":  0.7,
	"crowded":     0.8,
	"difficult":   0.8,
	"hard":        0.7,
	"challenging": 0.6,

	"disorganized":  1,
	"chaotic":       1,
	"confusing":     0.8,
	"unclear":       0.7,
	"messy":         0.8,
	"noisy":         0.6,
	"uncomfortable": 0.7,

	"rushed":      0.8,
	"rushing":     0.8,
	"overcrowded": 0.8,
	"late":        0.7,
	"delayed":     0.7,
	"long":        0.5,
	"short":       0.5,

	"unprepared":     0.8,
	"unprofessional": 1,
	"lacking":        0.7,
	"inadequate":     0.8,
	"insufficient":   0.7,
	"mediocre":       0.6,
	"average":        0.4,
	"meh":            0.5,
	"underwhelming":  0.7,
	"unimpressive":   0.6,
	"forgettable":    0.6,
}

// Phrase tables. Matched longest-first at word boundaries; a phrase hit
// scores a fixed weight and its character range is excluded from word-level
// scoring.
var builtinPositivePhrases = []phraseEntry{
	{"grabe ang ganda", LangTagalog},
	{"thank you so much", LangEnglish},
	{"maraming salamat", LangTagalog},
	{"sobrang ganda", LangTagalog},
	{"sobrang galing", LangTagalog},
	{"sobrang saya", LangTagalog},
	{"sobrang ayos", LangTagalog},
	{"ang ganda", LangTagalog},
	{"ang galing", LangTagalog},
	{"ang saya", LangTagalog},
	{"job well done", LangEnglish},
	{"excellent work", LangEnglish},
	{"great job", LangEnglish},
	{"well done", LangEnglish},
	{"very good", LangEnglish},
	{"the best", LangEnglish},
	{"love it", LangEnglish},
	{"loved it", LangEnglish},
	{"worth it", LangEnglish},
	{"bet ko", LangTagalog},
	{"sulit sa oras", LangTagalog},
	{"thank you", LangEnglish},
	{"highly recommend", LangEnglish},
	{"irecommend ko", LangTagalog},
	{"must attend", LangEnglish},
}

var builtinNegativePhrases = []phraseEntry{
	{"hindi naging maayos", LangTagalog},
	{"hindi ako satisfied", LangTagalog},
	{"walang kwenta", LangTagalog},
	{"waste of time", LangEnglish},
	{"sobrang masama", LangTagalog},
	{"sobrang pangit", LangTagalog},
	{"hindi maganda", LangTagalog},
	{"hindi maayos", LangTagalog},
	{"hindi okay", LangTagalog},
	{"hindi ayos", LangTagalog},
	{"hindi prepared", LangTagalog},
	{"di maayos", LangTagalog},
	{"di maganda", LangTagalog},
	{"sayang lang", LangTagalog},
	{"ang sama", LangTagalog},
	{"bad experience", LangEnglish},
	{"poor quality", LangEnglish},
	{"very bad", LangEnglish},
	{"so bad", LangEnglish},
	{"not good", LangEnglish},
	{"not great", LangEnglish},
	{"not well", LangEnglish},
	{"too fast", LangEnglish},
	{"too slow", LangEnglish},
	{"nothing special", LangEnglish},
	{"could be better", LangEnglish},
	{"needs improvement", LangEnglish},
	{"room for improvement", LangEnglish},
	{"pwede pa", LangTagalog},
}

type phraseEntry struct {
	text string
	lang Language
}

// builtinEntries flattens the built-in tables into lexicon entries.
func builtinEntries() []Entry {
	var entries []Entry

	add := func(words map[string]float64, sentiment sentimentLabel, lang Language) {
		for word, weight := range words {
			entries = append(entries, Entry{
				Word:      word,
				Sentiment: sentiment.toModel(),
				Weight:    weight,
				Language:  lang,
				IsPhrase:  isPhraseWord(word),
			})
		}
	}

	add(builtinPositiveTL, labelPositive, LangTagalog)
	add(builtinPositiveEN, labelPositive, LangEnglish)
	add(builtinNegativeTL, labelNegative, LangTagalog)
	add(builtinNegativeEN, labelNegative, LangEnglish)

	for _, p := range builtinPositivePhrases {
		entries = append(entries, Entry{
			Word:      p.text,
			Sentiment: labelPositive.toModel(),
			Weight:    defaultPhraseWeight,
			Language:  p.lang,
			IsPhrase:  true,
		})
	}
	for _, p := range builtinNegativePhrases {
		entries = append(entries, Entry{
			Word:      p.text,
			Sentiment: labelNegative.toModel(),
			Weight:    defaultPhraseWeight,
			Language:  p.lang,
			IsPhrase:  true,
		})
	}

	return entries
}
