// Package predict serves classifications from the loaded artifact bundle.
package predict

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/thehickorykampala/hickory/internal/domain"
	"github.com/thehickorykampala/hickory/internal/metrics"
)

// Service classifies raw text against the trained model.
type Service struct {
	norm   Normalizer
	enc    Encoder
	model  Classifier
	labels []domain.Label
	logger *zap.Logger
}

// New creates a prediction service. The label order must be the class index
// order the model was trained with.
func New(norm Normalizer, enc Encoder, model Classifier,
	labels []domain.Label, logger *zap.Logger,
) (*Service, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("predict service: label set is required")
	}
	return &Service{norm: norm, enc: enc, model: model, labels: labels, logger: logger}, nil
}

// Labels returns the label order the service predicts over.
func (s *Service) Labels() []domain.Label {
	out := make([]domain.Label, len(s.labels))
	copy(out, s.labels)
	return out
}

// Predict classifies one text. Text that normalizes to nothing still gets a
// defined distribution: the encoder maps it to the zero vector, which every
// model in the bank accepts. Probability ties resolve to the first label in
// class index order.
func (s *Service) Predict(ctx context.Context, text string) (domain.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return domain.Prediction{}, err
	}
	start := time.Now()

	tokens := s.norm.Normalize(text)
	vec := s.enc.Transform(tokens)

	probs, err := s.model.Probabilities(vec)
	if err != nil {
		metrics.PredictionsTotal.WithLabelValues("", "error").Inc()
		return domain.Prediction{}, fmt.Errorf("classify: %w", err)
	}
	if len(probs) != len(s.labels) {
		metrics.PredictionsTotal.WithLabelValues("", "error").Inc()
		return domain.Prediction{}, fmt.Errorf("model returned %d probabilities for %d labels: %w",
			len(probs), len(s.labels), domain.ErrDimMismatch)
	}

	best := 0
	dist := make(map[domain.Label]float64, len(s.labels))
	for i, p := range probs {
		dist[s.labels[i]] = p
		if p > probs[best] {
			best = i
		}
	}

	pred := domain.Prediction{
		Category:      s.labels[best],
		Confidence:    probs[best],
		Probabilities: dist,
	}

	took := time.Since(start)
	metrics.PredictionsTotal.WithLabelValues(pred.Category.String(), "ok").Inc()
	metrics.PredictionDuration.Observe(took.Seconds())
	metrics.PredictionConfidence.Observe(pred.Confidence)
	s.logger.Debug("text classified",
		zap.String("category", pred.Category.String()),
		zap.Float64("confidence", pred.Confidence),
		zap.Int("tokens", len(tokens)),
		zap.Duration("took", took))

	return pred, nil
}
