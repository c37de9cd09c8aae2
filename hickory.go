// Package hickory classifies restaurant-related text into the content
// categories of The Hickory Kampala website. A Classifier opens a trained
// artifact bundle from disk and serves predictions in-process.
package hickory

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/thehickorykampala/hickory/internal/nlp"
	artifactrepo "github.com/thehickorykampala/hickory/internal/repository/artifact"
	predictuc "github.com/thehickorykampala/hickory/internal/usecase/predict"
)

// Prediction is the classification result for one text.
type Prediction struct {
	// Category is the winning label.
	Category string
	// Description is the human-readable summary of the category.
	Description string
	// Confidence is the probability of the winning label.
	Confidence float64
	// Probabilities is the full per-category distribution, summing to 1.
	Probabilities map[string]float64
}

// Classifier is the hickory SDK entry point.
type Classifier struct {
	svc    *predictuc.Service
	labels []string
}

// Open loads the trained artifact bundle from dir and returns a ready
// Classifier. The bundle pairing is verified on load: a model saved against
// a different vectorizer is rejected.
func Open(dir string) (*Classifier, error) {
	bundle, err := artifactrepo.New(dir).LoadBundle()
	if err != nil {
		return nil, fmt.Errorf("hickory: open artifact bundle: %w", err)
	}

	svc, err := predictuc.New(nlp.NewNormalizer(0), bundle.Encoder, bundle.Model, bundle.Labels, zap.NewNop())
	if err != nil {
		return nil, fmt.Errorf("hickory: %w", err)
	}

	labels := make([]string, len(bundle.Labels))
	for i, l := range bundle.Labels {
		labels[i] = l.String()
	}
	return &Classifier{svc: svc, labels: labels}, nil
}

// Classify predicts the category of one text. Safe for concurrent use.
func (c *Classifier) Classify(ctx context.Context, text string) (Prediction, error) {
	pred, err := c.svc.Predict(ctx, text)
	if err != nil {
		return Prediction{}, fmt.Errorf("hickory: classify: %w", err)
	}

	probs := make(map[string]float64, len(pred.Probabilities))
	for l, p := range pred.Probabilities {
		probs[l.String()] = p
	}
	return Prediction{
		Category:      pred.Category.String(),
		Description:   pred.Category.Description(),
		Confidence:    pred.Confidence,
		Probabilities: probs,
	}, nil
}

// Labels returns the category set in class index order.
func (c *Classifier) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}
