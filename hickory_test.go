package hickory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thehickorykampala/hickory/internal/classify"
	"github.com/thehickorykampala/hickory/internal/domain"
	"github.com/thehickorykampala/hickory/internal/feature"
	"github.com/thehickorykampala/hickory/internal/nlp"
	artifactrepo "github.com/thehickorykampala/hickory/internal/repository/artifact"
)

// writeBundle trains a small pipeline and persists it where Open can find it.
func writeBundle(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	corpus := []struct {
		text  string
		label domain.Label
	}{
		{"Grilled pork chops with mushroom sauce and fried plantain", domain.LabelFood},
		{"Beef fillet steak with peppercorn sauce and potato wedges", domain.LabelFood},
		{"Prawns pan fried with garlic butter and lemon", domain.LabelFood},
		{"Pasta carbonara with bacon cream and parmesan cheese", domain.LabelFood},
		{"Cuban mojito cocktail with rum mint and lime juice", domain.LabelDrinks},
		{"Gin and tonic with fresh mint leaves", domain.LabelDrinks},
		{"Cappuccino with steamed milk and foam", domain.LabelDrinks},
		{"Margarita cocktail with tequila and lime juice", domain.LabelDrinks},
		{"South African Sauvignon Blanc crisp white wine", domain.LabelWines},
		{"Italian Chianti red wine with cherry notes", domain.LabelWines},
		{"French Champagne sparkling wine for celebrations", domain.LabelWines},
		{"Australian Shiraz bold red wine aged in oak", domain.LabelWines},
	}

	norm := nlp.NewNormalizer(0)
	docs := make([][]string, len(corpus))
	y := make([]int, len(corpus))
	for i, r := range corpus {
		docs[i] = norm.Normalize(r.text)
		y[i] = r.label.Index()
	}

	enc, err := feature.FitEncoder(docs, feature.Config{OutputDim: 8, Seed: 42})
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

	repo := artifactrepo.New(dir)
	vecFP, err := repo.SaveEncoder(enc)
	if err != nil {
		t.Fatalf("save encoder: %v", err)
	}
	modFP, err := repo.SaveModel(m, labels, vecFP)
	if err != nil {
		t.Fatalf("save model: %v", err)
	}
	manifest := domain.Manifest{
		Best:                  m.Name(),
		Accuracies:            map[string]float64{m.Name(): 1.0},
		Labels:                labels,
		VectorizerFingerprint: vecFP,
		ModelFingerprint:      modFP,
		TrainedAt:             time.Now().UTC(),
	}
	if err := repo.SaveManifest(manifest); err != nil {
		t.Fatalf("save manifest: %v", err)
	}
	return dir
}

func TestOpenAndClassify(t *testing.T) {
	c, err := Open(writeBundle(t))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	pred, err := c.Classify(context.Background(), "Mojito cocktail with rum and mint")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if pred.Category != "drinks" {
		t.Errorf("category = %q, want drinks", pred.Category)
	}
	if pred.Description == "" {
		t.Error("description is empty")
	}
	if pred.Confidence <= 0 || pred.Confidence > 1 {
		t.Errorf("confidence = %v", pred.Confidence)
	}
	if len(pred.Probabilities) != len(domain.Labels()) {
		t.Errorf("probabilities = %d entries", len(pred.Probabilities))
	}
}

func TestOpen_MissingBundle(t *testing.T) {
	if _, err := Open(t.TempDir()); !errors.Is(err, domain.ErrArtifactMissing) {
		t.Errorf("open = %v, want ErrArtifactMissing", err)
	}
}

func TestClassifier_Labels(t *testing.T) {
	c, err := Open(writeBundle(t))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	labels := c.Labels()
	if len(labels) != len(domain.Labels()) {
		t.Fatalf("labels = %d", len(labels))
	}
	if labels[0] != "about" {
		t.Errorf("labels[0] = %q, want canonical order", labels[0])
	}
}
