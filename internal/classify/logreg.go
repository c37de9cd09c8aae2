package classify

import (
	"encoding/json"
	"fmt"
)

// LogisticRegression is a multinomial softmax classifier trained with
// full-batch gradient descent and L2 regularization. Weights start at zero,
// so training is deterministic without any randomness.
type LogisticRegression struct {
	learningRate float64
	epochs       int
	l2           float64

	weights [][]float64 // classes rows of dim weights plus a trailing bias
	classes int
	dim     int
}

// NewLogisticRegression creates a logistic regression with default
// hyperparameters.
func NewLogisticRegression() *LogisticRegression {
	return &LogisticRegression{
		learningRate: 0.5,
		epochs:       500,
		l2:           1e-4,
	}
}

// Name implements Model.
func (m *LogisticRegression) Name() string { return NameLogReg }

// Fit trains softmax weights over the full batch.
func (m *LogisticRegression) Fit(x [][]float64, y []int, classes int) error {
	dim, err := validateTrainingSet(x, y, classes)
	if err != nil {
		return fmt.Errorf("fit %s: %w", m.Name(), err)
	}
	m.classes = classes
	m.dim = dim
	m.weights = make([][]float64, classes)
	for c := range m.weights {
		m.weights[c] = make([]float64, dim+1)
	}

	n := float64(len(x))
	grad := make([][]float64, classes)
	for c := range grad {
		grad[c] = make([]float64, dim+1)
	}

	for epoch := 0; epoch < m.epochs; epoch++ {
		for c := range grad {
			for j := range grad[c] {
				grad[c][j] = 0
			}
		}
		for i, row := range x {
			probs := softmax(m.scores(row))
			for c := 0; c < classes; c++ {
				delta := probs[c]
				if c == y[i] {
					delta -= 1
				}
				g := grad[c]
				for j, v := range row {
					g[j] += delta * v
				}
				g[dim] += delta
			}
		}
		for c := 0; c < classes; c++ {
			w := m.weights[c]
			g := grad[c]
			for j := 0; j <= dim; j++ {
				w[j] -= m.learningRate * (g[j]/n + m.l2*w[j])
			}
		}
	}
	return nil
}

// Probabilities returns the softmax distribution over classes.
func (m *LogisticRegression) Probabilities(v []float64) ([]float64, error) {
	if err := checkInput(v, m.dim, m.weights != nil); err != nil {
		return nil, fmt.Errorf("%s probabilities: %w", m.Name(), err)
	}
	return softmax(m.scores(v)), nil
}

func (m *LogisticRegression) scores(v []float64) []float64 {
	scores := make([]float64, m.classes)
	for c, w := range m.weights {
		s := w[m.dim] // bias
		for j, x := range v {
			s += w[j] * x
		}
		scores[c] = s
	}
	return scores
}

type logRegState struct {
	LearningRate float64     `json:"learning_rate"`
	Epochs       int         `json:"epochs"`
	L2           float64     `json:"l2"`
	Weights      [][]float64 `json:"weights"`
	Classes      int         `json:"classes"`
	Dim          int         `json:"dim"`
}

// Encode implements Model.
func (m *LogisticRegression) Encode() ([]byte, error) {
	data, err := json.Marshal(logRegState{
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

func decodeLogisticRegression(data []byte) (Model, error) {
	var st logRegState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("decode %s: %w", NameLogReg, err)
	}
	return &LogisticRegression{
		learningRate: st.LearningRate,
		epochs:       st.Epochs,
		l2:           st.L2,
		weights:      st.Weights,
		classes:      st.Classes,
		dim:          st.Dim,
	}, nil
}
