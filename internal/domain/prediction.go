package domain

import "sort"

// Prediction is the serving result for one input text.
type Prediction struct {
	Category   Label
	Confidence float64
	// Probabilities holds the full per-label distribution, summing to 1.
	Probabilities map[Label]float64
}

// LabelProbability is one (label, probability) pair for ordered display.
type LabelProbability struct {
	Label       Label
	Probability float64
}

// Ranked returns the distribution sorted by probability descending,
// ties broken by label for stable output.
func (p Prediction) Ranked() []LabelProbability {
	out := make([]LabelProbability, 0, len(p.Probabilities))
	for l, v := range p.Probabilities {
		out = append(out, LabelProbability{Label: l, Probability: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Probability != out[j].Probability {
			return out[i].Probability > out[j].Probability
		}
		return out[i].Label < out[j].Label
	})
	return out
}
