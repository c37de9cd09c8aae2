package classify

import (
	"math"
	"testing"

	"github.com/thehickorykampala/hickory/internal/domain"
)

func TestEvaluate_AccuracyAndConfusion(t *testing.T) {
	x, y := separableSet()
	labels := []domain.Label{domain.LabelFood, domain.LabelDrinks, domain.LabelWines}

	m := NewLogisticRegression()
	if err := m.Fit(x, y, 3); err != nil {
		t.Fatalf("fit: %v", err)
	}

	eval, err := Evaluate(m, x, y, labels)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if eval.Model != NameLogReg {
		t.Errorf("model name = %q", eval.Model)
	}
	if eval.Accuracy != 1.0 {
		t.Errorf("accuracy on separable training data = %v, want 1.0", eval.Accuracy)
	}
	if eval.Total() != len(x) {
		t.Errorf("confusion total = %d, want %d", eval.Total(), len(x))
	}
	if eval.Correct() != len(x) {
		t.Errorf("confusion diagonal = %d, want %d", eval.Correct(), len(x))
	}
	if got := eval.Confusion[domain.LabelFood][domain.LabelFood]; got != 6 {
		t.Errorf("confusion[food][food] = %d, want 6", got)
	}
}

func TestEvaluate_DeterministicAcrossRuns(t *testing.T) {
	x, y := separableSet()
	labels := []domain.Label{domain.LabelFood, domain.LabelDrinks, domain.LabelWines}
	trainIdx, testIdx := Split(len(x), 0.25, 99)

	run := func() float64 {
		m := NewRandomForest(99)
		if err := m.Fit(Gather(x, trainIdx), GatherLabels(y, trainIdx), 3); err != nil {
			t.Fatalf("fit: %v", err)
		}
		eval, err := Evaluate(m, Gather(x, testIdx), GatherLabels(y, testIdx), labels)
		if err != nil {
			t.Fatalf("evaluate: %v", err)
		}
		return eval.Accuracy
	}

	if a, b := run(), run(); a != b {
		t.Fatalf("accuracy differs across identical runs: %v vs %v", a, b)
	}
}

func TestEvaluate_EmptySet(t *testing.T) {
	m := NewLogisticRegression()
	x, y := separableSet()
	if err := m.Fit(x, y, 3); err != nil {
		t.Fatalf("fit: %v", err)
	}
	eval, err := Evaluate(m, nil, nil, []domain.Label{domain.LabelFood, domain.LabelDrinks, domain.LabelWines})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if eval.Accuracy != 0 || math.IsNaN(eval.Accuracy) {
		t.Errorf("empty-set accuracy = %v, want 0", eval.Accuracy)
	}
}
