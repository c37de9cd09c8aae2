package domain

// Evaluation is one classifier's performance on the held-out split.
type Evaluation struct {
	Model    string
	Accuracy float64
	// Confusion counts, Confusion[actual][predicted]. Rows sum to the number
	// of held-out records carrying that actual label.
	Confusion map[Label]map[Label]int
}

// Correct returns the diagonal sum of the confusion matrix.
func (e Evaluation) Correct() int {
	n := 0
	for l, row := range e.Confusion {
		n += row[l]
	}
	return n
}

// Total returns the number of evaluated records.
func (e Evaluation) Total() int {
	n := 0
	for _, row := range e.Confusion {
		for _, c := range row {
			n += c
		}
	}
	return n
}

// TrainingReport summarizes one training run across the classifier bank.
type TrainingReport struct {
	Evaluations []Evaluation
	Best        string
	TrainSize   int
	TestSize    int
}

// BestEvaluation returns the evaluation of the selected model.
func (r TrainingReport) BestEvaluation() (Evaluation, bool) {
	for _, e := range r.Evaluations {
		if e.Model == r.Best {
			return e, true
		}
	}
	return Evaluation{}, false
}
