// Package classify implements the classifier bank: three independently
// trained multi-class models over the reduced feature space, a seeded
// held-out split, and the evaluation that ranks them.
package classify

import (
	"fmt"
	"math"

	"github.com/thehickorykampala/hickory/internal/domain"
)

// Model names, also used as artifact file suffixes.
const (
	NameLogReg = "logreg"
	NameSVM    = "svm"
	NameForest = "forest"
)

// Model is a trainable multi-class classifier. Fit consumes the full
// training matrix at once; Probabilities returns a distribution over the
// class indices the model was fitted with, summing to 1 and defined for
// every input including the zero vector.
type Model interface {
	Name() string
	Fit(x [][]float64, y []int, classes int) error
	Probabilities(v []float64) ([]float64, error)
	Encode() ([]byte, error)
}

// Decoder rebuilds a fitted model from its encoded form.
type Decoder func(data []byte) (Model, error)

var decoders = map[string]Decoder{
	NameLogReg: decodeLogisticRegression,
	NameSVM:    decodeLinearSVM,
	NameForest: decodeRandomForest,
}

// Decode rebuilds a fitted model by name.
func Decode(name string, data []byte) (Model, error) {
	dec, ok := decoders[name]
	if !ok {
		return nil, fmt.Errorf("decode model: unknown model %q", name)
	}
	return dec(data)
}

// Predict returns the argmax class index for the input. Probability ties
// resolve to the lowest class index for stable output.
func Predict(m Model, v []float64) (int, error) {
	probs, err := m.Probabilities(v)
	if err != nil {
		return 0, err
	}
	return argmax(probs), nil
}

func argmax(probs []float64) int {
	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}
	return best
}

// softmax exponentiates shifted by the max score, so large margins never
// overflow and the zero vector yields a uniform-over-bias distribution.
func softmax(scores []float64) []float64 {
	max := math.Inf(-1)
	for _, s := range scores {
		if s > max {
			max = s
		}
	}
	out := make([]float64, len(scores))
	sum := 0.0
	for i, s := range scores {
		out[i] = math.Exp(s - max)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

func validateTrainingSet(x [][]float64, y []int, classes int) (dim int, err error) {
	if len(x) == 0 {
		return 0, domain.ErrEmptyCorpus
	}
	if len(x) != len(y) {
		return 0, fmt.Errorf("%d samples, %d labels: %w", len(x), len(y), domain.ErrDimMismatch)
	}
	if classes < 2 {
		return 0, fmt.Errorf("need at least 2 classes, got %d", classes)
	}
	dim = len(x[0])
	for i, row := range x {
		if len(row) != dim {
			return 0, fmt.Errorf("sample %d has length %d, want %d: %w",
				i, len(row), dim, domain.ErrDimMismatch)
		}
	}
	for i, label := range y {
		if label < 0 || label >= classes {
			return 0, fmt.Errorf("sample %d has class %d outside [0, %d): %w",
				i, label, classes, domain.ErrUnknownLabel)
		}
	}
	return dim, nil
}

func checkInput(v []float64, dim int, fitted bool) error {
	if !fitted {
		return domain.ErrNotFitted
	}
	if len(v) != dim {
		return fmt.Errorf("input length %d, want %d: %w", len(v), dim, domain.ErrDimMismatch)
	}
	return nil
}
