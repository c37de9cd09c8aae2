package classify

import (
	"encoding/json"
	"fmt"
)

// LinearSVM is a one-vs-rest hinge-loss classifier trained with full-batch
// subgradient descent and L2 regularization. Weights start at zero, so
// training is deterministic.
type LinearSVM struct {
	learningRate float64
	epochs       int
	l2           float64

	weights [][]float64 // one binary separator per class, bias last
	classes int
	dim     int
}

// NewLinearSVM creates a linear SVM with default hyperparameters.
func NewLinearSVM() *LinearSVM {
	return &LinearSVM{
		learningRate: 0.5,
		epochs:       500,
		l2:           1e-3,
	}
}

// Name implements Model.
func (m *LinearSVM) Name() string { return NameSVM }

// Fit trains one binary margin separator per class against the rest.
func (m *LinearSVM) Fit(x [][]float64, y []int, classes int) error {
	dim, err := validateTrainingSet(x, y, classes)
	if err != nil {
		return fmt.Errorf("fit %s: %w", m.Name(), err)
	}
	m.classes = classes
	m.dim = dim
	m.weights = make([][]float64, classes)

	n := float64(len(x))
	for c := 0; c < classes; c++ {
		w := make([]float64, dim+1)
		grad := make([]float64, dim+1)
		for epoch := 0; epoch < m.epochs; epoch++ {
			for j := range grad {
				grad[j] = 0
			}
			for i, row := range x {
				target := -1.0
				if y[i] == c {
					target = 1.0
				}
				margin := w[dim]
				for j, v := range row {
					margin += w[j] * v
				}
				if target*margin < 1 {
					for j, v := range row {
						grad[j] -= target * v
					}
					grad[dim] -= target
				}
			}
			for j := 0; j <= dim; j++ {
				w[j] -= m.learningRate * (grad[j]/n + m.l2*w[j])
			}
		}
		m.weights[c] = w
	}
	return nil
}

// Probabilities returns a softmax over the raw one-vs-rest margins. The SVM
// has no native posterior; this margin-derived proxy keeps the contract
// (distribution over classes, summing to 1) while preserving the ranking of
// the decision function.
func (m *LinearSVM) Probabilities(v []float64) ([]float64, error) {
	if err := checkInput(v, m.dim, m.weights != nil); err != nil {
		return nil, fmt.Errorf("%s probabilities: %w", m.Name(), err)
	}
	margins := make([]float64, m.classes)
	for c, w := range m.weights {
		s := w[m.dim]
		for j, x := range v {
			s += w[j] * x
		}
		margins[c] = s
	}
	return softmax(margins), nil
}

type svmState struct {
	LearningRate float64     `json:"learning_rate"`
	Epochs       int         `json:"epochs"`
	L2           float64     `json:"l2"`
	Weights      [][]float64 `json:"weights"`
	Classes      int         `json:"classes"`
	Dim          int         `json:"dim"`
}

// Encode implements Model.
func (m *LinearSVM) Encode() ([]byte, error) {
	data, err := json.Marshal(svmState{
		LearningRate: m.learningRate,
		Epochs:       m.epochs,
		L2:           m.l2,
		Weights:      m.weights,
		Classes:      m.classes,
		Dim:          m.dim,
	})
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", m.Name(), err)
	}
	return data, nil
}

func decodeLinearSVM(data []byte) (Model, error) {
	var st svmState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("decode %s: %w", NameSVM, err)
	}
	return &LinearSVM{
		learningRate: st.LearningRate,
		epochs:       st.Epochs,
		l2:           st.L2,
		weights:      st.Weights,
		classes:      st.Classes,
		dim:          st.Dim,
	}, nil
}
