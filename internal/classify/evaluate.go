package classify

import (
	"fmt"

	"github.com/thehickorykampala/hickory/internal/domain"
)

// Evaluate runs the model over a held-out set and returns its accuracy and
// confusion matrix. y holds class indices into labels; the confusion matrix
// is keyed actual label first, predicted label second.
func Evaluate(m Model, x [][]float64, y []int, labels []domain.Label) (domain.Evaluation, error) {
	if len(x) != len(y) {
		return domain.Evaluation{}, fmt.Errorf("evaluate %s: %d samples, %d labels: %w",
			m.Name(), len(x), len(y), domain.ErrDimMismatch)
	}

	confusion := make(map[domain.Label]map[domain.Label]int)
	correct := 0
	for i, row := range x {
		predicted, err := Predict(m, row)
		if err != nil {
			return domain.Evaluation{}, fmt.Errorf("evaluate %s: sample %d: %w", m.Name(), i, err)
		}
		actual := labels[y[i]]
		if confusion[actual] == nil {
			confusion[actual] = make(map[domain.Label]int)
		}
		confusion[actual][labels[predicted]]++
		if predicted == y[i] {
			correct++
		}
	}

	accuracy := 0.0
	if len(x) > 0 {
		accuracy = float64(correct) / float64(len(x))
	}
	return domain.Evaluation{
		Model:     m.Name(),
		Accuracy:  accuracy,
		Confusion: confusion,
	}, nil
}
