package nlp

import "strings"

// irregular maps inflected forms to dictionary base forms: the common
// irregular nouns and verbs plus menu vocabulary the suffix rules mishandle.
// Values must be fixed points of Lemma.
var irregular = map[string]string{
	// nouns
	"men": "man", "women": "woman", "children": "child",
	"teeth": "tooth", "feet": "foot", "geese": "goose", "mice": "mouse",
	"leaves": "leaf", "loaves": "loaf", "halves": "half",
	"knives": "knife", "wives": "wife", "lives": "life",
	"shelves": "shelf", "thieves": "thief",
	"menus": "menu", "shoes": "shoe", "buses": "bus",
	"cookies": "cookie", "smoothies": "smoothie", "brownies": "brownie",
	"veggies": "veggie", "movies": "movie",
	"quiches": "quiche", "mousses": "mousse",
	// verbs
	"ate": "eat", "went": "go", "gone": "go",
	"made": "make", "took": "take", "taken": "take",
	"came": "come", "gave": "give", "given": "give",
	"got": "get", "gotten": "get",
	"bought": "buy", "brought": "bring", "thought": "think",
	"caught": "catch", "taught": "teach", "sought": "seek",
	"found": "find", "left": "leave", "kept": "keep", "held": "hold",
	"sat": "sit", "stood": "stand", "felt": "feel", "met": "meet",
	"paid": "pay", "said": "say", "told": "tell", "sold": "sell",
	"chose": "choose", "chosen": "choose",
	"drank": "drink", "drunk": "drink", "ran": "run",
	"wrote": "write", "written": "write",
	"saw": "see", "seen": "see", "knew": "know", "known": "know",
	"grew": "grow", "grown": "grow", "threw": "throw", "thrown": "throw",
	"froze": "freeze", "frozen": "freeze",
	"broke": "break", "broken": "break", "spoke": "speak", "spoken": "speak",
	"began": "begin", "begun": "begin",
	"sent": "send", "spent": "spend", "built": "build", "lost": "lose",
	"meant": "mean", "heard": "hear", "slept": "sleep",
	"wore": "wear", "worn": "wear",
	"shook": "shake", "shaken": "shake",
	// short or exceptional regular forms the rules cannot reach
	"used": "use", "using": "use", "iced": "ice",
	"aged": "age", "aging": "age",
	"tasted": "taste", "tasting": "taste",
	"created": "create", "creating": "create",
	"changed": "change", "changing": "change",
	"arranged": "arrange", "arranging": "arrange",
	"sauteed": "saute", "sauteing": "saute",
	"agreed": "agree", "freed": "free", "guaranteed": "guarantee",
	"focused": "focus", "focusing": "focus",
}

// invariant holds words that look inflected but are already base forms.
var invariant = map[string]struct{}{
	"news": {}, "always": {}, "perhaps": {},
	"series": {}, "species": {},
	"pudding": {}, "dumpling": {}, "icing": {},
	"morning": {}, "evening": {}, "ceiling": {},
}

// Lemma maps a lowercase token to its dictionary base form. POS-agnostic:
// plural and verb inflection rules are tried in order, first match wins,
// and rules apply transitively (servings -> serving -> serve). Outputs are
// fixed points, so Lemma(Lemma(w)) == Lemma(w) for every input.
func Lemma(token string) string {
	if len(token) < 3 {
		return token
	}
	if base, ok := irregular[token]; ok {
		return base
	}
	if _, ok := invariant[token]; ok {
		return token
	}
	for _, rule := range []func(string) (string, bool){plural, past, gerund} {
		out, ok := rule(token)
		if !ok {
			continue
		}
		if out == token {
			return token
		}
		return Lemma(out)
	}
	return token
}

func plural(w string) (string, bool) {
	// -ss, -us, -is endings are not plurals (glass, citrus, basis).
	if strings.HasSuffix(w, "ss") || strings.HasSuffix(w, "us") || strings.HasSuffix(w, "is") {
		return "", false
	}
	switch {
	case strings.HasSuffix(w, "sses"):
		return w[:len(w)-2], true // glasses -> glass
	case strings.HasSuffix(w, "ies"):
		if len(w) > 4 {
			return w[:len(w)-3] + "y", true // berries -> berry, fries -> fry
		}
		return w[:len(w)-1], true // pies -> pie
	case hasAnySuffix(w, "ches", "shes", "xes", "zes", "oes"):
		return w[:len(w)-2], true // dishes -> dish, tomatoes -> tomato
	case strings.HasSuffix(w, "s") && len(w) >= 4:
		return w[:len(w)-1], true // wines -> wine, cocktails -> cocktail
	}
	return "", false
}

func past(w string) (string, bool) {
	if strings.HasSuffix(w, "ied") && len(w) >= 4 {
		if len(w) > 4 {
			return w[:len(w)-3] + "y", true // fried -> fry, married -> marry
		}
		return w[:len(w)-1], true // died -> die
	}
	if !strings.HasSuffix(w, "ed") || len(w) < 5 {
		return "", false
	}
	if strings.HasSuffix(w, "eed") {
		return w, true // need, exceed; agreed handled as irregular
	}
	stem := w[:len(w)-2]
	if len(stem) < 3 || !containsVowel(stem) {
		return w, true
	}
	return fixStem(stem), true
}

func gerund(w string) (string, bool) {
	if !strings.HasSuffix(w, "ing") || len(w) < 6 {
		return "", false // ring, icing, king stay put
	}
	stem := w[:len(w)-3]
	if len(stem) < 3 || !containsVowel(stem) {
		return w, true // spring, string
	}
	return fixStem(stem), true
}

// fixStem repairs a stem left by stripping -ed/-ing: undoubles suffixation
// doubling (topped -> top) and restores the silent e the inflection consumed
// (bake, serve, drizzle, marinate). Heuristic, tuned for menu vocabulary.
func fixStem(stem string) string {
	n := len(stem)
	last := stem[n-1]

	if n >= 4 && last == stem[n-2] && isConsonant(last) && !undoubleExempt(last) {
		return stem[:n-1] // stirred -> stir, topping -> top
	}

	switch {
	case last == 'v' || last == 'c' || last == 'z' || last == 'u':
		return stem + "e" // serve, slice, glaze, rescue
	case last == 's' && !strings.HasSuffix(stem, "ss"):
		return stem + "e" // braise, close, infuse
	case strings.HasSuffix(stem, "rg") || strings.HasSuffix(stem, "dg"):
		return stem + "e" // charge, dodge
	case last == 'l' && isConsonant(stem[n-2]) && stem[n-2] != 'l':
		return stem + "e" // drizzle, sparkle, crumble; grill keeps its ll
	case strings.HasSuffix(stem, "at") && n >= 5 && isConsonant(stem[n-3]):
		return stem + "e" // marinate, decorate; heat stays heat
	case measure(stem) == 1 && endsCVC(stem):
		return stem + "e" // bake, dine, smoke; season and open stay put
	}
	return stem
}

// undoubleExempt lists consonants that legitimately double at word end,
// so grill, press, buzz and staff survive stripping.
func undoubleExempt(c byte) bool {
	return c == 'l' || c == 's' || c == 'z' || c == 'f'
}

func hasAnySuffix(w string, suffixes ...string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(w, s) {
			return true
		}
	}
	return false
}

func isVowelAt(s string, i int) bool {
	switch s[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	case 'y':
		// y acts as a vowel after a consonant (fry, style)
		return i > 0 && !isVowelAt(s, i-1)
	}
	return false
}

func isConsonant(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	}
	return true
}

func containsVowel(s string) bool {
	for i := range s {
		if isVowelAt(s, i) {
			return true
		}
	}
	return false
}

// measure is Porter's m: the number of vowel-to-consonant transitions.
func measure(s string) int {
	m := 0
	prevVowel := false
	for i := 0; i < len(s); i++ {
		v := isVowelAt(s, i)
		if prevVowel && !v {
			m++
		}
		prevVowel = v
	}
	return m
}

// endsCVC reports a consonant-vowel-consonant ending where the final
// consonant is not w, x or y (Porter's *o condition).
func endsCVC(s string) bool {
	n := len(s)
	if n < 3 {
		return false
	}
	last := s[n-1]
	if last == 'w' || last == 'x' || last == 'y' {
		return false
	}
	return isConsonant(s[n-3]) && !isConsonant(s[n-2]) && isConsonant(last)
}
