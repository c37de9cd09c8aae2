package classify

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// RandomForest is an ensemble of CART trees grown on bootstrap samples with
// sqrt(d) feature subsampling. Every tree draws its randomness from a child
// seed derived from the forest seed, so a fitted forest is reproducible.
type RandomForest struct {
	trees    int
	maxDepth int
	minLeaf  int
	seed     int64

	roots   []*treeNode
	classes int
	dim     int
}

// NewRandomForest creates a random forest with default hyperparameters and
// the given seed.
func NewRandomForest(seed int64) *RandomForest {
	return &RandomForest{
		trees:    100,
		maxDepth: 12,
		minLeaf:  2,
		seed:     seed,
	}
}

// Name implements Model.
func (m *RandomForest) Name() string { return NameForest }

// treeNode is one CART node. Leaves carry class counts; internal nodes
// route on Feature <= Threshold. Fields are exported for JSON encoding.
type treeNode struct {
	Feature   int       `json:"f,omitempty"`
	Threshold float64   `json:"t,omitempty"`
	Left      *treeNode `json:"l,omitempty"`
	Right     *treeNode `json:"r,omitempty"`
	Counts    []int     `json:"c,omitempty"`
}

// Fit grows the ensemble.
func (m *RandomForest) Fit(x [][]float64, y []int, classes int) error {
	dim, err := validateTrainingSet(x, y, classes)
	if err != nil {
		return fmt.Errorf("fit %s: %w", m.Name(), err)
	}
	m.classes = classes
	m.dim = dim
	m.roots = make([]*treeNode, m.trees)

	features := int(math.Ceil(math.Sqrt(float64(dim))))
	for t := 0; t < m.trees; t++ {
		rng := rand.New(rand.NewSource(m.seed + int64(t)))
		sample := make([]int, len(x))
		for i := range sample {
			sample[i] = rng.Intn(len(x))
		}
		m.roots[t] = m.grow(x, y, sample, features, 0, rng)
	}
	return nil
}

func (m *RandomForest) grow(x [][]float64, y []int, idx []int, features, depth int, rng *rand.Rand) *treeNode {
	counts := make([]int, m.classes)
	for _, i := range idx {
		counts[y[i]]++
	}
	if depth >= m.maxDepth || len(idx) < 2*m.minLeaf || isPure(counts) {
		return &treeNode{Counts: counts}
	}

	feature, threshold, ok := m.bestSplit(x, y, idx, features, rng)
	if !ok {
		return &treeNode{Counts: counts}
	}

	var left, right []int
	for _, i := range idx {
		if x[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) < m.minLeaf || len(right) < m.minLeaf {
		return &treeNode{Counts: counts}
	}
	return &treeNode{
		Feature:   feature,
		Threshold: threshold,
		Left:      m.grow(x, y, left, features, depth+1, rng),
		Right:     m.grow(x, y, right, features, depth+1, rng),
	}
}

// bestSplit scans a random feature subset for the threshold minimizing the
// weighted Gini impurity of the children.
func (m *RandomForest) bestSplit(x [][]float64, y []int, idx []int, features int, rng *rand.Rand) (int, float64, bool) {
	candidates := rng.Perm(m.dim)[:features]
	sort.Ints(candidates) // candidate order must not depend on Perm's layout

	bestGini := math.Inf(1)
	bestFeature, bestThreshold := -1, 0.0

	values := make([]float64, 0, len(idx))
	for _, f := range candidates {
		values = values[:0]
		for _, i := range idx {
			values = append(values, x[i][f])
		}
		sort.Float64s(values)

		for vi := 0; vi+1 < len(values); vi++ {
			if values[vi] == values[vi+1] {
				continue
			}
			threshold := (values[vi] + values[vi+1]) / 2
			g := m.splitGini(x, y, idx, f, threshold)
			if g < bestGini {
				bestGini = g
				bestFeature = f
				bestThreshold = threshold
			}
		}
	}
	return bestFeature, bestThreshold, bestFeature >= 0
}

func (m *RandomForest) splitGini(x [][]float64, y []int, idx []int, feature int, threshold float64) float64 {
	leftCounts := make([]int, m.classes)
	rightCounts := make([]int, m.classes)
	nLeft, nRight := 0, 0
	for _, i := range idx {
		if x[i][feature] <= threshold {
			leftCounts[y[i]]++
			nLeft++
		} else {
			rightCounts[y[i]]++
			nRight++
		}
	}
	total := float64(nLeft + nRight)
	return float64(nLeft)/total*gini(leftCounts, nLeft) +
		float64(nRight)/total*gini(rightCounts, nRight)
}

func gini(counts []int, n int) float64 {
	if n == 0 {
		return 0
	}
	g := 1.0
	for _, c := range counts {
		p := float64(c) / float64(n)
		g -= p * p
	}
	return g
}

func isPure(counts []int) bool {
	nonZero := 0
	for _, c := range counts {
		if c > 0 {
			nonZero++
		}
	}
	return nonZero <= 1
}

// Probabilities returns per-class vote shares: each tree votes the
// plurality class of its leaf, and the share of trees voting a class is
// its probability.
func (m *RandomForest) Probabilities(v []float64) ([]float64, error) {
	if err := checkInput(v, m.dim, m.roots != nil); err != nil {
		return nil, fmt.Errorf("%s probabilities: %w", m.Name(), err)
	}
	votes := make([]float64, m.classes)
	for _, root := range m.roots {
		leaf := root
		for leaf.Counts == nil {
			if v[leaf.Feature] <= leaf.Threshold {
				leaf = leaf.Left
			} else {
				leaf = leaf.Right
			}
		}
		votes[argmaxInt(leaf.Counts)]++
	}
	for i := range votes {
		votes[i] /= float64(len(m.roots))
	}
	return votes, nil
}

func argmaxInt(counts []int) int {
	best := 0
	for i, c := range counts {
		if c > counts[best] {
			best = i
		}
	}
	return best
}

type forestState struct {
	Trees    int         `json:"trees"`
	MaxDepth int         `json:"max_depth"`
	MinLeaf  int         `json:"min_leaf"`
	Seed     int64       `json:"seed"`
	Roots    []*treeNode `json:"roots"`
	Classes  int         `json:"classes"`
	Dim      int         `json:"dim"`
}

// Encode implements Model.
func (m *RandomForest) Encode() ([]byte, error) {
	data, err := json.Marshal(forestState{
		Trees:    m.trees,
		MaxDepth: m.maxDepth,
		MinLeaf:  m.minLeaf,
		Seed:     m.seed,
		Roots:    m.roots,
		Classes:  m.classes,
		Dim:      m.dim,
	})
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", m.Name(), err)
	}
	return data, nil
}

func decodeRandomForest(data []byte) (Model, error) {
	var st forestState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("decode %s: %w", NameForest, err)
	}
	return &RandomForest{
		trees:    st.Trees,
		maxDepth: st.MaxDepth,
		minLeaf:  st.MinLeaf,
		seed:     st.Seed,
		roots:    st.Roots,
		classes:  st.Classes,
		dim:      st.Dim,
	}, nil
}
