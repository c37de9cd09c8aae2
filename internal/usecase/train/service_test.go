package train

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/thehickorykampala/hickory/internal/classify"
	"github.com/thehickorykampala/hickory/internal/domain"
	"github.com/thehickorykampala/hickory/internal/feature"
)

// --- mocks ---

type mockCorpus struct {
	records []domain.Record
	err     error
}

func (m *mockCorpus) Load() ([]domain.Record, error) { return m.records, m.err }

type mockCleanedStore struct {
	saved []domain.CleanedRecord
	err   error
}

func (m *mockCleanedStore) SaveCleaned(records []domain.CleanedRecord) error {
	m.saved = records
	return m.err
}

type fieldsNormalizer struct{}

func (fieldsNormalizer) Normalize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

type mockArtifactStore struct {
	encoders     int
	models       map[string]string // name -> vectorizer fingerprint it was saved with
	manifest     *domain.Manifest
	saveModelErr error
}

func newMockArtifactStore() *mockArtifactStore {
	return &mockArtifactStore{models: make(map[string]string)}
}

func (m *mockArtifactStore) SaveEncoder(*feature.Encoder) (string, error) {
	m.encoders++
	return "fp-encoder", nil
}

func (m *mockArtifactStore) SaveModel(mod classify.Model, _ []domain.Label, vecFP string) (string, error) {
	if m.saveModelErr != nil {
		return "", m.saveModelErr
	}
	m.models[mod.Name()] = vecFP
	return "fp-" + mod.Name(), nil
}

func (m *mockArtifactStore) SaveManifest(man domain.Manifest) error {
	m.manifest = &man
	return nil
}

// --- fixtures ---

func fixtureCorpus() []domain.Record {
	groups := []struct {
		label domain.Label
		rows  []string
	}{
		{domain.LabelFood, []string{
			"grilled pork chop mushroom sauce plantain",
			"beef fillet steak peppercorn sauce potato",
			"chicken breast spinach mozzarella rice",
			"tilapia fillet coconut sauce rice",
			"pasta bolognese parmesan garlic bread",
			"prawns garlic butter lemon salad chips",
			"lasagne bechamel mozzarella baked",
		}},
		{domain.LabelDrinks, []string{
			"rum mint sugar lime mojito cocktail",
			"gin tonic mint liqueur cocktail",
			"espresso steamed milk cappuccino coffee",
			"vodka cranberry triple sec cosmopolitan cocktail",
			"whiskey bourbon merlot classic cocktail",
			"tequila triple sec lime margarita cocktail",
			"spiced tea steamed milk chai",
		}},
		{domain.LabelWines, []string{
			"sauvignon blanc crisp citrus white wine",
			"cabernet sauvignon dark fruit oak red wine",
			"chardonnay buttery oak white wine",
			"merlot smooth medium bodied red wine",
			"prosecco sparkling celebratory wine",
			"pinotage smoky berry red wine",
			"champagne brut elegant sparkling wine",
		}},
	}
	var records []domain.Record
	for _, g := range groups {
		for _, text := range g.rows {
			records = append(records, domain.ReconstructRecord(text, g.label))
		}
	}
	return records
}

func newService(corpus *mockCorpus, store *mockArtifactStore) (*Service, *mockCleanedStore) {
	cleaned := &mockCleanedStore{}
	svc := New(corpus, cleaned, fieldsNormalizer{}, store,
		Config{TestFraction: 0.2, Seed: 42, OutputDim: 8}, zap.NewNop())
	return svc, cleaned
}

// --- tests ---

func TestService_Train(t *testing.T) {
	store := newMockArtifactStore()
	svc, cleaned := newService(&mockCorpus{records: fixtureCorpus()}, store)

	report, err := svc.Train(context.Background())
	if err != nil {
		t.Fatalf("train: %v", err)
	}

	if len(report.Evaluations) != 3 {
		t.Fatalf("evaluations = %d, want 3", len(report.Evaluations))
	}
	names := map[string]bool{}
	for _, e := range report.Evaluations {
		names[e.Model] = true
		if e.Accuracy < 0 || e.Accuracy > 1 {
			t.Errorf("%s accuracy = %v", e.Model, e.Accuracy)
		}
	}
	for _, want := range []string{classify.NameLogReg, classify.NameSVM, classify.NameForest} {
		if !names[want] {
			t.Errorf("missing evaluation for %s", want)
		}
	}

	if _, ok := report.BestEvaluation(); !ok {
		t.Errorf("best %q has no evaluation", report.Best)
	}
	if report.TrainSize+report.TestSize != len(fixtureCorpus()) {
		t.Errorf("split sizes %d+%d != corpus %d",
			report.TrainSize, report.TestSize, len(fixtureCorpus()))
	}

	if len(cleaned.saved) != len(fixtureCorpus()) {
		t.Errorf("cleaned rows = %d, want %d", len(cleaned.saved), len(fixtureCorpus()))
	}

	if store.encoders != 1 {
		t.Errorf("encoder saved %d times", store.encoders)
	}
	if len(store.models) != 3 {
		t.Errorf("models saved = %d, want 3", len(store.models))
	}
	for name, fp := range store.models {
		if fp != "fp-encoder" {
			t.Errorf("model %s saved against fingerprint %q", name, fp)
		}
	}
	if store.manifest == nil {
		t.Fatal("manifest not saved")
	}
	if store.manifest.Best != report.Best {
		t.Errorf("manifest best = %q, report best = %q", store.manifest.Best, report.Best)
	}
	if store.manifest.ModelFingerprint != "fp-"+report.Best {
		t.Errorf("manifest model fingerprint = %q", store.manifest.ModelFingerprint)
	}
	if len(store.manifest.Accuracies) != 3 {
		t.Errorf("manifest accuracies = %v", store.manifest.Accuracies)
	}
}

func TestService_TrainDeterministic(t *testing.T) {
	run := func() domain.TrainingReport {
		svc, _ := newService(&mockCorpus{records: fixtureCorpus()}, newMockArtifactStore())
		report, err := svc.Train(context.Background())
		if err != nil {
			t.Fatalf("train: %v", err)
		}
		return report
	}

	a, b := run(), run()
	if a.Best != b.Best {
		t.Errorf("best differs across identical runs: %q vs %q", a.Best, b.Best)
	}
	for i := range a.Evaluations {
		if a.Evaluations[i].Accuracy != b.Evaluations[i].Accuracy {
			t.Errorf("%s accuracy differs: %v vs %v",
				a.Evaluations[i].Model, a.Evaluations[i].Accuracy, b.Evaluations[i].Accuracy)
		}
	}
}

func TestSelectBest_TieBreak(t *testing.T) {
	tests := []struct {
		name  string
		evals []domain.Evaluation
		want  string
	}{
		{
			name: "highest accuracy wins",
			evals: []domain.Evaluation{
				{Model: classify.NameLogReg, Accuracy: 0.80},
				{Model: classify.NameSVM, Accuracy: 0.90},
				{Model: classify.NameForest, Accuracy: 0.85},
			},
			want: classify.NameSVM,
		},
		{
			name: "three-way tie prefers logistic regression",
			evals: []domain.Evaluation{
				{Model: classify.NameForest, Accuracy: 0.9},
				{Model: classify.NameSVM, Accuracy: 0.9},
				{Model: classify.NameLogReg, Accuracy: 0.9},
			},
			want: classify.NameLogReg,
		},
		{
			name: "svm beats forest at equal accuracy",
			evals: []domain.Evaluation{
				{Model: classify.NameLogReg, Accuracy: 0.7},
				{Model: classify.NameForest, Accuracy: 0.9},
				{Model: classify.NameSVM, Accuracy: 0.9},
			},
			want: classify.NameSVM,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := selectBest(tt.evals); got != tt.want {
				t.Errorf("selectBest = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestService_PreprocessKeepsEmptyRows(t *testing.T) {
	records := []domain.Record{
		domain.ReconstructRecord("grilled pork chop", domain.LabelFood),
		domain.ReconstructRecord("   ", domain.LabelHome),
	}
	svc, cleaned := newService(&mockCorpus{records: records}, newMockArtifactStore())

	got, err := svc.Preprocess()
	if err != nil {
		t.Fatalf("preprocess: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("cleaned rows = %d, want 2", len(got))
	}
	if len(got[1].Tokens()) != 0 {
		t.Errorf("blank row tokens = %v, want none", got[1].Tokens())
	}
	if got[1].Category() != domain.LabelHome {
		t.Errorf("blank row category = %q", got[1].Category())
	}
	if len(cleaned.saved) != 2 {
		t.Errorf("saved rows = %d, want 2", len(cleaned.saved))
	}
}

func TestService_TrainCorpusLoadError(t *testing.T) {
	svc, _ := newService(&mockCorpus{err: domain.ErrEmptyCorpus}, newMockArtifactStore())
	if _, err := svc.Train(context.Background()); !errors.Is(err, domain.ErrEmptyCorpus) {
		t.Errorf("train = %v, want ErrEmptyCorpus", err)
	}
}

func TestService_TrainPersistError(t *testing.T) {
	store := newMockArtifactStore()
	store.saveModelErr = errors.New("disk full")
	svc, _ := newService(&mockCorpus{records: fixtureCorpus()}, store)

	if _, err := svc.Train(context.Background()); err == nil {
		t.Fatal("expected persist error")
	}
	if store.manifest != nil {
		t.Error("manifest must not be written when a model save fails")
	}
}

func TestService_TrainHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc, _ := newService(&mockCorpus{records: fixtureCorpus()}, newMockArtifactStore())
	if _, err := svc.Train(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("train = %v, want context.Canceled", err)
	}
}
