package predict

// Normalizer turns raw text into the token sequence the encoder consumes.
type Normalizer interface {
	Normalize(text string) []string
}

// Encoder maps a token sequence to a fixed-length feature vector.
type Encoder interface {
	Transform(tokens []string) []float64
}

// Classifier returns a probability distribution over the class indices.
// Satisfied by any fitted model from the classifier bank.
type Classifier interface {
	Probabilities(v []float64) ([]float64, error)
}
