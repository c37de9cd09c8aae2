package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownLabel signals a category outside the closed label set.
	ErrUnknownLabel = errors.New("unknown label")
	// ErrEmptyCorpus signals a corpus with no usable records.
	ErrEmptyCorpus = errors.New("empty corpus")
	// ErrNotFitted signals use of an encoder or model before fitting.
	ErrNotFitted = errors.New("not fitted")
	// ErrDimMismatch signals a feature vector of unexpected length.
	ErrDimMismatch = errors.New("feature dimension mismatch")

	// ErrArtifactMissing signals a missing artifact file.
	ErrArtifactMissing = errors.New("artifact missing")
	// ErrArtifactCorrupt signals an unreadable or malformed artifact file.
	ErrArtifactCorrupt = errors.New("artifact corrupt")
	// ErrArtifactMismatch signals a model paired with the wrong vectorizer.
	ErrArtifactMismatch = errors.New("artifact pairing mismatch")
)

// ArtifactMismatchError wraps ErrArtifactMismatch with both fingerprints.
type ArtifactMismatchError struct {
	WantFingerprint string
	GotFingerprint  string
}

func (e *ArtifactMismatchError) Error() string {
	return fmt.Sprintf("%s: model trained against vectorizer %s, loaded %s",
		ErrArtifactMismatch.Error(), e.WantFingerprint, e.GotFingerprint)
}

func (e *ArtifactMismatchError) Unwrap() error { return ErrArtifactMismatch }

// NewArtifactMismatch creates a pairing mismatch error.
func NewArtifactMismatch(want, got string) error {
	return &ArtifactMismatchError{WantFingerprint: want, GotFingerprint: got}
}
