package train

import (
	"github.com/thehickorykampala/hickory/internal/classify"
	"github.com/thehickorykampala/hickory/internal/domain"
	"github.com/thehickorykampala/hickory/internal/feature"
)

// CorpusReader loads the raw labeled corpus.
type CorpusReader interface {
	Load() ([]domain.Record, error)
}

// CleanedStore persists and reads the normalized corpus.
type CleanedStore interface {
	SaveCleaned(records []domain.CleanedRecord) error
}

// Normalizer turns raw text into the token sequence the encoder consumes.
type Normalizer interface {
	Normalize(text string) []string
}

// ArtifactStore persists training artifacts.
type ArtifactStore interface {
	SaveEncoder(enc *feature.Encoder) (fingerprint string, err error)
	SaveModel(m classify.Model, labels []domain.Label, vecFingerprint string) (fingerprint string, err error)
	SaveManifest(m domain.Manifest) error
}
