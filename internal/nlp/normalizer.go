// Package nlp implements the shared text normalization pipeline: folding,
// markup and punctuation stripping, tokenization, stopword removal and
// lemmatization. Training and serving run the exact same pipeline, so the
// features of a request always line up with the features the model saw.
package nlp

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes and drops combining marks: café -> cafe.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var (
	tagRe       = regexp.MustCompile(`<[^>]*>`)
	nonLetterRe = regexp.MustCompile(`[^a-z]+`)
)

// DefaultMinTokenLen drops one- and two-letter tokens before lemmatization.
const DefaultMinTokenLen = 3

// Normalizer turns raw website text into the token sequence the feature
// encoder consumes. Pure and deterministic; safe for concurrent use.
type Normalizer struct {
	minTokenLen int
	stopwords   map[string]struct{}
}

// NewNormalizer creates a Normalizer. minTokenLen <= 0 selects the default.
func NewNormalizer(minTokenLen int) *Normalizer {
	if minTokenLen <= 0 {
		minTokenLen = DefaultMinTokenLen
	}
	return &Normalizer{minTokenLen: minTokenLen, stopwords: defaultStopwords()}
}

// Normalize lowercases and accent-folds the input, strips markup and
// non-letter runes, splits on whitespace, drops stopwords and short tokens,
// and lemmatizes each survivor. Lemmas that collapse into a stopword or
// below the length floor are dropped too, which makes the pipeline
// idempotent: Normalize(strings.Join(Normalize(raw), " ")) == Normalize(raw).
// Empty or noise-only input yields an empty slice, never an error.
func (n *Normalizer) Normalize(raw string) []string {
	if raw == "" {
		return nil
	}

	text := html.UnescapeString(raw)
	text = tagRe.ReplaceAllString(text, " ")
	text = strings.ToLower(text)
	if folded, _, err := transform.String(stripAccents, text); err == nil {
		text = folded
	}
	text = nonLetterRe.ReplaceAllString(text, " ")

	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if !n.keep(tok) {
			continue
		}
		lemma := Lemma(tok)
		if !n.keep(lemma) {
			continue
		}
		tokens = append(tokens, lemma)
	}
	return tokens
}

func (n *Normalizer) keep(tok string) bool {
	if len(tok) < n.minTokenLen {
		return false
	}
	_, stop := n.stopwords[tok]
	return !stop
}
