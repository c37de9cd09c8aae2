package feature

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/thehickorykampala/hickory/internal/domain"
)

// DefaultSVDIterations is the fixed subspace-iteration count. The Gram
// matrix is at most 500x500, so convergence is cheap.
const DefaultSVDIterations = 50

// SVD is a rank-k truncated decomposition of a TF-IDF matrix. It stores the
// top right-singular vectors; Project maps a vocabulary-length vector onto
// the k-dimensional subspace.
type SVD struct {
	components [][]float64 // k rows of length dim
	singular   []float64
	dim        int
}

// FitSVD computes the top-k right-singular vectors of the row matrix via
// orthogonal (subspace) iteration on the Gram matrix. The starting subspace
// comes from the given seed, so the fit is deterministic; k is clamped to
// the column count.
func FitSVD(rows [][]float64, k int, seed int64) (*SVD, error) {
	if len(rows) == 0 {
		return nil, domain.ErrEmptyCorpus
	}
	dim := len(rows[0])
	for i, r := range rows {
		if len(r) != dim {
			return nil, fmt.Errorf("fit svd: row %d has length %d, want %d: %w",
				i, len(r), dim, domain.ErrDimMismatch)
		}
	}
	if k > dim {
		k = dim
	}
	if k <= 0 {
		return nil, fmt.Errorf("fit svd: rank must be positive")
	}

	gram := gramMatrix(rows, dim)

	rng := rand.New(rand.NewSource(seed))
	basis := make([][]float64, k)
	for i := range basis {
		basis[i] = make([]float64, dim)
		for j := range basis[i] {
			basis[i][j] = rng.NormFloat64()
		}
	}
	orthonormalize(basis)

	for iter := 0; iter < DefaultSVDIterations; iter++ {
		for i := range basis {
			basis[i] = matVec(gram, basis[i])
		}
		orthonormalize(basis)
	}

	// Rayleigh quotients of the Gram matrix are squared singular values.
	singular := make([]float64, k)
	for i, v := range basis {
		singular[i] = math.Sqrt(math.Max(0, dot(v, matVec(gram, v))))
	}
	sortBySingular(basis, singular)
	fixSigns(basis)

	return &SVD{components: basis, singular: singular, dim: dim}, nil
}

// ReconstructSVD rebuilds a fitted SVD from persisted state.
func ReconstructSVD(components [][]float64, singular []float64) (*SVD, error) {
	if len(components) == 0 || len(components) != len(singular) {
		return nil, fmt.Errorf("reconstruct svd: %d components, %d singular values: %w",
			len(components), len(singular), domain.ErrDimMismatch)
	}
	dim := len(components[0])
	for _, c := range components {
		if len(c) != dim {
			return nil, fmt.Errorf("reconstruct svd: ragged components: %w", domain.ErrDimMismatch)
		}
	}
	return &SVD{components: components, singular: singular, dim: dim}, nil
}

// Project maps a vocabulary-length vector onto the k-dimensional subspace.
func (s *SVD) Project(vec []float64) ([]float64, error) {
	if len(vec) != s.dim {
		return nil, fmt.Errorf("project: vector length %d, want %d: %w",
			len(vec), s.dim, domain.ErrDimMismatch)
	}
	out := make([]float64, len(s.components))
	for i, c := range s.components {
		out[i] = dot(c, vec)
	}
	return out, nil
}

// Rank returns the number of retained components.
func (s *SVD) Rank() int { return len(s.components) }

// InputDim returns the expected input vector length.
func (s *SVD) InputDim() int { return s.dim }

// Components returns the right-singular vectors, largest singular value first.
func (s *SVD) Components() [][]float64 { return s.components }

// Singular returns the singular values, descending.
func (s *SVD) Singular() []float64 { return s.singular }

func gramMatrix(rows [][]float64, dim int) [][]float64 {
	gram := make([][]float64, dim)
	for i := range gram {
		gram[i] = make([]float64, dim)
	}
	for _, r := range rows {
		for i, a := range r {
			if a == 0 {
				continue
			}
			for j, b := range r {
				gram[i][j] += a * b
			}
		}
	}
	return gram
}

func matVec(m [][]float64, v []float64) []float64 {
	out := make([]float64, len(m))
	for i, row := range m {
		out[i] = dot(row, v)
	}
	return out
}

func dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// orthonormalize applies modified Gram-Schmidt in place. Vectors that
// collapse to numerical zero are left normalized-as-possible rather than
// dropped so the basis keeps its shape.
func orthonormalize(vecs [][]float64) {
	for i := range vecs {
		for j := 0; j < i; j++ {
			p := dot(vecs[i], vecs[j])
			for k := range vecs[i] {
				vecs[i][k] -= p * vecs[j][k]
			}
		}
		n := math.Sqrt(dot(vecs[i], vecs[i]))
		if n > 1e-12 {
			for k := range vecs[i] {
				vecs[i][k] /= n
			}
		}
	}
}

func sortBySingular(basis [][]float64, singular []float64) {
	for i := 0; i < len(singular); i++ {
		max := i
		for j := i + 1; j < len(singular); j++ {
			if singular[j] > singular[max] {
				max = j
			}
		}
		singular[i], singular[max] = singular[max], singular[i]
		basis[i], basis[max] = basis[max], basis[i]
	}
}

// fixSigns flips each component so its largest-magnitude entry is positive,
// removing the sign ambiguity of singular vectors.
func fixSigns(basis [][]float64) {
	for _, v := range basis {
		maxAbs, sign := 0.0, 1.0
		for _, x := range v {
			if a := math.Abs(x); a > maxAbs {
				maxAbs = a
				if x < 0 {
					sign = -1
				} else {
					sign = 1
				}
			}
		}
		if sign < 0 {
			for i := range v {
				v[i] = -v[i]
			}
		}
	}
}
