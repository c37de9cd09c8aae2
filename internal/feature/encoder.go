package feature

import (
	"fmt"

	"github.com/thehickorykampala/hickory/internal/domain"
)

// DefaultOutputDim is the reduced feature dimensionality.
const DefaultOutputDim = 50

// Config holds encoder fit parameters.
type Config struct {
	MaxVocabulary int
	OutputDim     int
	Seed          int64
}

// ApplyDefaults fills zero fields with default values.
func (c *Config) ApplyDefaults() {
	if c.MaxVocabulary <= 0 {
		c.MaxVocabulary = DefaultMaxVocabulary
	}
	if c.OutputDim <= 0 {
		c.OutputDim = DefaultOutputDim
	}
}

// Encoder couples a fitted Vectorizer with its SVD projection. It is the
// single artifact both training and serving must share: vectors produced
// through any other pairing are meaningless to the trained models.
type Encoder struct {
	vec *Vectorizer
	svd *SVD
}

// FitEncoder fits the TF-IDF vocabulary over the corpus, then the truncated
// decomposition over the resulting weight matrix. The output dimensionality
// is min(cfg.OutputDim, vocabulary size) and is constant for the fitted
// encoder regardless of later inputs.
func FitEncoder(docs [][]string, cfg Config) (*Encoder, error) {
	cfg.ApplyDefaults()

	vec, err := FitVectorizer(docs, cfg.MaxVocabulary)
	if err != nil {
		return nil, fmt.Errorf("fit encoder: %w", err)
	}

	rows := make([][]float64, len(docs))
	for i, tokens := range docs {
		rows[i] = vec.Transform(tokens)
	}

	svd, err := FitSVD(rows, cfg.OutputDim, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("fit encoder: %w", err)
	}
	return &Encoder{vec: vec, svd: svd}, nil
}

// ReconstructEncoder rebuilds an Encoder from persisted vectorizer and
// projection state.
func ReconstructEncoder(terms []string, idf []float64, components [][]float64, singular []float64) (*Encoder, error) {
	vec, err := ReconstructVectorizer(terms, idf)
	if err != nil {
		return nil, fmt.Errorf("reconstruct encoder: %w", err)
	}
	svd, err := ReconstructSVD(components, singular)
	if err != nil {
		return nil, fmt.Errorf("reconstruct encoder: %w", err)
	}
	if svd.InputDim() != vec.Dimension() {
		return nil, fmt.Errorf("reconstruct encoder: projection expects %d terms, vocabulary has %d: %w",
			svd.InputDim(), vec.Dimension(), domain.ErrDimMismatch)
	}
	return &Encoder{vec: vec, svd: svd}, nil
}

// Transform maps a token sequence to a dense OutputDim-length vector.
// Empty input yields the zero vector.
func (e *Encoder) Transform(tokens []string) []float64 {
	out, err := e.svd.Project(e.vec.Transform(tokens))
	if err != nil {
		// The vectorizer always emits vectors of its own dimension, which
		// ReconstructEncoder verified against the projection.
		panic(err)
	}
	return out
}

// OutputDim returns the fixed output vector length.
func (e *Encoder) OutputDim() int { return e.svd.Rank() }

// Vectorizer returns the fitted term weighter.
func (e *Encoder) Vectorizer() *Vectorizer { return e.vec }

// SVD returns the fitted projection.
func (e *Encoder) SVD() *SVD { return e.svd }
