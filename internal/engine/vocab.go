package engine

// Context vocabulary shared by the scoring passes. These lists are fixed;
// editable sentiment words live in the lexicon store instead.

var negations = map[string]bool{
	"not":    true,
	"no":     true,
	"never":  true,
	"hindi":  true,
	"wala":   true,
	"walang": true,
	"di":     true,
}

var intensifiers = map[string]bool{
	"very":      true,
	"really":    true,
	"extremely": true,
	"super":     true,
	"sobra":     true,
	"sobrang":   true,
	"napaka":    true,
	"labis":     true,
	"grabe":     true,
	"talaga":    true,
	"so":        true,
	"too":       true,
}

var diminishers = map[string]bool{
	"slightly": true,
	"somewhat": true,
	"bit":      true,
	"little":   true,
	"medyo":    true,
	"konti":    true,
	"kaunti":   true,
	"bahagya":  true,
}

// Contrast words flip a review toward mixed sentiment anywhere in the text.
var contrastWords = map[string]bool{
	"but":        true,
	"however":    true,
	"although":   true,
	"pero":       true,
	"ngunit":     true,
	"subalit":    true,
	"gayunpaman": true,
}

// neutralIndicators are matched at word boundaries against the lowercased
// text; each hit feeds the neutral branch of the decision table.
var neutralIndicators = []string{
	"okay", "ok", "alright", "fine", "so-so", "average", "normal",
	"ordinary", "mediocre", "fair", "decent", "not bad", "moderate",
	"acceptable", "passable", "adequate", "sufficient",
	"okay lang", "ok lang", "oks lang", "ayos lang", "pwede na",
	"pwede naman", "ganon lang", "ganun lang", "sige lang",
	"lang naman", "naman", "typical", "karaniwan", "normal lang",
	"sige", "pwede", "maaari", "maybe", "perhaps", "siguro",
	"may improvement", "pwede pang", "pero okay", "pero ayos",
}

// constructivePatterns flag hedged praise-and-complaint sentences.
var constructivePatterns = []string{
	"could be improved", "could still be improved", "room for improvement",
	"with a few adjustments", "next time", "believe the next",
	"can be even better", "some areas", "however", "but", "although",
	"maaaring pagbutihin", "maaaring mapabuti", "may mga areas na maaaring",
	"sa susunod", "pwede pang mapabuti", "sana ay maayos",
	"pero", "ngunit", "subalit", "gayunpaman",
}

// Emoticon and emoji polarity table; scanned against the raw text, every
// occurrence contributes its value.
var emoticonScores = map[string]float64{
	"😊": 0.5, "😀": 0.5, "😃": 0.5, "😄": 0.5, "😍": 0.5,
	"👍": 0.5, "❤️": 0.5, "💯": 0.5, "✨": 0.5, "🎉": 0.5,
	":)": 0.5, ":-)": 0.5, ":D": 0.5,

	"😞": -0.5, "😢": -0.5, "😠": -0.5, "😡": -0.5, "😕": -0.5,
	"😔": -0.5, "👎": -0.5,
	":(": -0.5, ":-(": -0.5, "D:": -0.5,
}
