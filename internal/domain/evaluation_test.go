package domain

import "testing"

func TestEvaluation_CorrectAndTotal(t *testing.T) {
	e := Evaluation{
		Model:    "logreg",
		Accuracy: 0.75,
		Confusion: map[Label]map[Label]int{
			LabelFood:   {LabelFood: 5, LabelDrinks: 1},
			LabelDrinks: {LabelDrinks: 1, LabelFood: 1},
		},
	}

	if got := e.Correct(); got != 6 {
		t.Errorf("Correct() = %d, want 6", got)
	}
	if got := e.Total(); got != 8 {
		t.Errorf("Total() = %d, want 8", got)
	}
}

func TestTrainingReport_BestEvaluation(t *testing.T) {
	r := TrainingReport{
		Evaluations: []Evaluation{
			{Model: "logreg", Accuracy: 0.9},
			{Model: "svm", Accuracy: 0.85},
		},
		Best: "logreg",
	}

	e, ok := r.BestEvaluation()
	if !ok {
		t.Fatal("BestEvaluation() not found")
	}
	if e.Model != "logreg" || e.Accuracy != 0.9 {
		t.Errorf("BestEvaluation() = %+v", e)
	}

	r.Best = "forest"
	if _, ok := r.BestEvaluation(); ok {
		t.Error("BestEvaluation() found missing model")
	}
}

func TestPrediction_Ranked(t *testing.T) {
	p := Prediction{
		Category:   LabelFood,
		Confidence: 0.6,
		Probabilities: map[Label]float64{
			LabelFood:   0.6,
			LabelDrinks: 0.3,
			LabelWines:  0.1,
		},
	}

	ranked := p.Ranked()
	if len(ranked) != 3 {
		t.Fatalf("Ranked() len = %d, want 3", len(ranked))
	}
	if ranked[0].Label != LabelFood || ranked[2].Label != LabelWines {
		t.Errorf("Ranked() order = %v", ranked)
	}
}

func TestPrediction_RankedTieBreak(t *testing.T) {
	p := Prediction{Probabilities: map[Label]float64{LabelWines: 0.5, LabelCake: 0.5}}

	ranked := p.Ranked()
	if ranked[0].Label != LabelCake {
		t.Errorf("equal probabilities should rank by label, got %v first", ranked[0].Label)
	}
}
