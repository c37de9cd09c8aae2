package domain

import (
	"fmt"
	"time"
)

// Manifest records the outcome of a training run and pins the artifact
// pairing: the selected model is only valid together with the vectorizer
// fingerprint recorded here.
type Manifest struct {
	Best                  string
	Accuracies            map[string]float64
	Labels                []Label
	VectorizerFingerprint string
	ModelFingerprint      string
	TrainedAt             time.Time
}

// Validate checks internal consistency: the best model must be among the
// evaluated ones, the label set must be closed, and both fingerprints must
// be present.
func (m Manifest) Validate() error {
	if m.Best == "" {
		return fmt.Errorf("manifest best model is required")
	}
	if _, ok := m.Accuracies[m.Best]; !ok {
		return fmt.Errorf("manifest best model %q has no recorded accuracy", m.Best)
	}
	if len(m.Labels) == 0 {
		return fmt.Errorf("manifest label set is required")
	}
	for _, l := range m.Labels {
		if !l.IsValid() {
			return fmt.Errorf("manifest label %q: %w", l, ErrUnknownLabel)
		}
	}
	if m.VectorizerFingerprint == "" || m.ModelFingerprint == "" {
		return fmt.Errorf("manifest fingerprints are required")
	}
	return nil
}
