package predict

import (
	"context"
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"

	"github.com/thehickorykampala/hickory/internal/classify"
	"github.com/thehickorykampala/hickory/internal/domain"
	"github.com/thehickorykampala/hickory/internal/feature"
	"github.com/thehickorykampala/hickory/internal/nlp"
)

// trainedService fits a real pipeline on a small corpus so predictions go
// through the same normalizer, encoder and model as production serving.
func trainedService(t *testing.T) *Service {
	t.Helper()

	corpus := []struct {
		text  string
		label domain.Label
	}{
		{"Grilled seafood platter with prawns calamari and fresh fish beautifully presented", domain.LabelFood},
		{"Fresh shrimp pan-fried with chilli and garlic served on toasted bread", domain.LabelFood},
		{"Grilled jumbo prawns with garlic butter and lemon served with salad", domain.LabelFood},
		{"Lake Victoria tilapia fillet grilled and served with mashed potatoes", domain.LabelFood},
		{"Beef fillet steak with peppercorn sauce and potato wedges", domain.LabelFood},
		{"Pasta in creamy garlic sauce with chicken and Parmesan cheese", domain.LabelFood},
		{"The seafood was delicious and the service was excellent definitely coming back", domain.LabelReviews},
		{"Amazing food and beautiful ambiance the staff were very friendly", domain.LabelReviews},
		{"Best steak I have ever had in Kampala the dessert tasted fantastic", domain.LabelReviews},
		{"Disappointed with the slow service and the small portions", domain.LabelReviews},
		{"Lovely garden setting and the cocktails were wonderfully presented", domain.LabelReviews},
		{"Great value for money and an impressive wine selection", domain.LabelReviews},
		{"Cuban classic cocktail with rum mint sugar and lime juice", domain.LabelDrinks},
		{"Espresso with steamed milk a smooth and creamy cappuccino", domain.LabelDrinks},
		{"Gin and tonic with fresh mint a refreshing cocktail", domain.LabelDrinks},
		{"Vodka and triple sec with cranberry juice a classic cocktail", domain.LabelDrinks},
		{"South African Sauvignon Blanc crisp white wine with citrus notes", domain.LabelWines},
		{"Italian Chianti medium bodied red wine with cherry notes", domain.LabelWines},
		{"French Champagne elegant sparkling wine for celebrations", domain.LabelWines},
		{"Australian Shiraz bold and spicy red wine aged in oak", domain.LabelWines},
	}

	norm := nlp.NewNormalizer(0)
	docs := make([][]string, len(corpus))
	y := make([]int, len(corpus))
	for i, r := range corpus {
		docs[i] = norm.Normalize(r.text)
		y[i] = r.label.Index()
	}

	enc, err := feature.FitEncoder(docs, feature.Config{OutputDim: 10, Seed: 42})
	if err != nil {
		t.Fatalf("fit encoder: %v", err)
	}
	x := make([][]float64, len(docs))
	for i, doc := range docs {
		x[i] = enc.Transform(doc)
	}

	labels := domain.Labels()
	m := classify.NewLogisticRegression()
	if err := m.Fit(x, y, len(labels)); err != nil {
		t.Fatalf("fit model: %v", err)
	}

	svc, err := New(norm, enc, m, labels, zap.NewNop())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestService_PredictSeafoodPlatter(t *testing.T) {
	svc := trainedService(t)

	pred, err := svc.Predict(context.Background(),
		"The seafood platter was delicious and beautifully presented")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}

	if pred.Category != domain.LabelFood && pred.Category != domain.LabelReviews {
		t.Errorf("category = %q, want food or reviews", pred.Category)
	}
	if pred.Confidence <= 0.5 {
		t.Errorf("confidence = %v, want > 0.5", pred.Confidence)
	}
}

func TestService_PredictEmptyText(t *testing.T) {
	svc := trainedService(t)

	pred, err := svc.Predict(context.Background(), "")
	if err != nil {
		t.Fatalf("predict empty: %v", err)
	}
	if !pred.Category.IsValid() {
		t.Errorf("category = %q, want a valid label", pred.Category)
	}
	if math.IsNaN(pred.Confidence) {
		t.Error("confidence is NaN")
	}
	sum := 0.0
	for _, p := range pred.Probabilities {
		if math.IsNaN(p) {
			t.Fatal("probability is NaN")
		}
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("probabilities sum = %v, want 1", sum)
	}
}

func TestService_PredictDistribution(t *testing.T) {
	svc := trainedService(t)

	pred, err := svc.Predict(context.Background(),
		"South African red wine with dark fruit and oak notes")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if len(pred.Probabilities) != len(domain.Labels()) {
		t.Errorf("distribution over %d labels, want %d",
			len(pred.Probabilities), len(domain.Labels()))
	}
	if pred.Category != domain.LabelWines {
		t.Errorf("category = %q, want wines", pred.Category)
	}

	ranked := pred.Ranked()
	if ranked[0].Label != pred.Category {
		t.Errorf("top ranked = %q, category = %q", ranked[0].Label, pred.Category)
	}
	if ranked[0].Probability != pred.Confidence {
		t.Errorf("top probability = %v, confidence = %v", ranked[0].Probability, pred.Confidence)
	}
}

func TestService_PredictDeterministic(t *testing.T) {
	svc := trainedService(t)
	const text = "Grilled prawns with garlic butter"

	a, err := svc.Predict(context.Background(), text)
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	b, err := svc.Predict(context.Background(), text)
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if a.Category != b.Category || a.Confidence != b.Confidence {
		t.Errorf("predictions differ: (%q, %v) vs (%q, %v)",
			a.Category, a.Confidence, b.Category, b.Confidence)
	}
}

type badClassifier struct {
	probs []float64
	err   error
}

func (b badClassifier) Probabilities([]float64) ([]float64, error) { return b.probs, b.err }

type noopEncoder struct{}

func (noopEncoder) Transform([]string) []float64 { return make([]float64, 4) }

func TestService_PredictDimMismatch(t *testing.T) {
	svc, err := New(nlp.NewNormalizer(0), noopEncoder{},
		badClassifier{probs: []float64{0.5, 0.5}}, domain.Labels(), zap.NewNop())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if _, err := svc.Predict(context.Background(), "anything"); !errors.Is(err, domain.ErrDimMismatch) {
		t.Errorf("predict = %v, want ErrDimMismatch", err)
	}
}

func TestService_PredictClassifierError(t *testing.T) {
	svc, err := New(nlp.NewNormalizer(0), noopEncoder{},
		badClassifier{err: domain.ErrNotFitted}, domain.Labels(), zap.NewNop())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if _, err := svc.Predict(context.Background(), "anything"); !errors.Is(err, domain.ErrNotFitted) {
		t.Errorf("predict = %v, want ErrNotFitted", err)
	}
}

func TestNew_RequiresLabels(t *testing.T) {
	if _, err := New(nlp.NewNormalizer(0), noopEncoder{}, badClassifier{}, nil, zap.NewNop()); err == nil {
		t.Error("expected error for empty label set")
	}
}
