// Package feature turns normalized token sequences into dense fixed-length
// vectors: a TF-IDF vectorizer over unigrams and bigrams, followed by a
// truncated SVD projection. Fitting happens once at training time; transform
// is a pure function of the fitted state and is safe for concurrent use.
package feature

import (
	"fmt"
	"math"
	"sort"

	"github.com/thehickorykampala/hickory/internal/domain"
)

// DefaultMaxVocabulary caps the TF-IDF vocabulary size.
const DefaultMaxVocabulary = 500

// Vectorizer is a fitted TF-IDF term weighter. Terms are unigrams and
// space-joined bigrams, selected by document frequency, indexed in sorted
// order so indices are stable across runs.
type Vectorizer struct {
	vocab map[string]int
	terms []string
	idf   []float64
}

// FitVectorizer builds a vocabulary of at most maxVocab terms ranked by
// document frequency (ties broken by term) and computes smoothed IDF
// weights ln((1+N)/(1+df)) + 1.
func FitVectorizer(docs [][]string, maxVocab int) (*Vectorizer, error) {
	if maxVocab <= 0 {
		maxVocab = DefaultMaxVocabulary
	}
	if len(docs) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	df := make(map[string]int)
	for _, tokens := range docs {
		seen := make(map[string]struct{})
		for _, term := range ngrams(tokens) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}
	if len(df) == 0 {
		return nil, fmt.Errorf("fit vectorizer: no terms in corpus: %w", domain.ErrEmptyCorpus)
	}

	ranked := make([]string, 0, len(df))
	for term := range df {
		ranked = append(ranked, term)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if df[ranked[i]] != df[ranked[j]] {
			return df[ranked[i]] > df[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	if len(ranked) > maxVocab {
		ranked = ranked[:maxVocab]
	}

	// Index the selected terms alphabetically for stable positions.
	terms := make([]string, len(ranked))
	copy(terms, ranked)
	sort.Strings(terms)

	v := &Vectorizer{
		vocab: make(map[string]int, len(terms)),
		terms: terms,
		idf:   make([]float64, len(terms)),
	}
	n := float64(len(docs))
	for i, term := range terms {
		v.vocab[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return v, nil
}

// ReconstructVectorizer rebuilds a fitted Vectorizer from persisted state.
// terms must be in index order and len(idf) must match.
func ReconstructVectorizer(terms []string, idf []float64) (*Vectorizer, error) {
	if len(terms) == 0 || len(terms) != len(idf) {
		return nil, fmt.Errorf("reconstruct vectorizer: %d terms, %d idf weights: %w",
			len(terms), len(idf), domain.ErrDimMismatch)
	}
	v := &Vectorizer{
		vocab: make(map[string]int, len(terms)),
		terms: terms,
		idf:   idf,
	}
	for i, term := range terms {
		v.vocab[term] = i
	}
	return v, nil
}

// Transform maps a token sequence to an L2-normalized TF-IDF vector of
// length Dimension. Out-of-vocabulary terms contribute nothing; empty or
// fully out-of-vocabulary input yields the zero vector.
func (v *Vectorizer) Transform(tokens []string) []float64 {
	vec := make([]float64, len(v.terms))
	tf := make(map[int]int)
	total := 0
	for _, term := range ngrams(tokens) {
		if idx, ok := v.vocab[term]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec
	}
	for idx, count := range tf {
		vec[idx] = float64(count) / float64(total) * v.idf[idx]
	}

	norm := 0.0
	for _, x := range vec {
		norm += x * x
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// Dimension returns the vocabulary size.
func (v *Vectorizer) Dimension() int { return len(v.terms) }

// Terms returns the vocabulary in index order.
func (v *Vectorizer) Terms() []string { return v.terms }

// IDF returns the inverse-document-frequency weights in index order.
func (v *Vectorizer) IDF() []float64 { return v.idf }

// ngrams yields the unigrams and space-joined bigrams of a token sequence.
func ngrams(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]string, 0, 2*len(tokens)-1)
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}
