package artifact

import (
	"encoding/json"
	"time"

	"github.com/thehickorykampala/hickory/internal/domain"
)

// encoderDTO is the on-disk form of a fitted feature encoder.
type encoderDTO struct {
	Terms      []string    `json:"terms"`
	IDF        []float64   `json:"idf"`
	Components [][]float64 `json:"components"`
	Singular   []float64   `json:"singular"`
}

// modelDTO is the on-disk form of one fitted model. The vectorizer
// fingerprint pins the encoder the model was trained against.
type modelDTO struct {
	Name                  string          `json:"name"`
	Labels                []string        `json:"labels"`
	VectorizerFingerprint string          `json:"vectorizer_fingerprint"`
	State                 json.RawMessage `json:"state"`
}

// manifestDTO is the on-disk form of the training manifest.
type manifestDTO struct {
	Best                  string             `json:"best"`
	Accuracies            map[string]float64 `json:"accuracies"`
	Labels                []string           `json:"labels"`
	VectorizerFingerprint string             `json:"vectorizer_fingerprint"`
	ModelFingerprint      string             `json:"model_fingerprint"`
	TrainedAt             time.Time          `json:"trained_at"`
}

func manifestToDTO(m domain.Manifest) manifestDTO {
	labels := make([]string, len(m.Labels))
	for i, l := range m.Labels {
		labels[i] = l.String()
	}
	return manifestDTO{
		Best:                  m.Best,
		Accuracies:            m.Accuracies,
		Labels:                labels,
		VectorizerFingerprint: m.VectorizerFingerprint,
		ModelFingerprint:      m.ModelFingerprint,
		TrainedAt:             m.TrainedAt,
	}
}

func manifestFromDTO(dto manifestDTO) (domain.Manifest, error) {
	labels, err := parseLabels(dto.Labels)
	if err != nil {
		return domain.Manifest{}, err
	}
	return domain.Manifest{
		Best:                  dto.Best,
		Accuracies:            dto.Accuracies,
		Labels:                labels,
		VectorizerFingerprint: dto.VectorizerFingerprint,
		ModelFingerprint:      dto.ModelFingerprint,
		TrainedAt:             dto.TrainedAt,
	}, nil
}

func parseLabels(raw []string) ([]domain.Label, error) {
	labels := make([]domain.Label, len(raw))
	for i, s := range raw {
		l, err := domain.ParseLabel(s)
		if err != nil {
			return nil, err
		}
		labels[i] = l
	}
	return labels, nil
}
