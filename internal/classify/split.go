package classify

import (
	"math/rand"
)

// Split partitions the indices 0..n-1 into a train and held-out test set
// with a single seeded shuffle. The same (n, testFraction, seed) always
// yields the same partition.
func Split(n int, testFraction float64, seed int64) (train, test []int) {
	if n <= 0 {
		return nil, nil
	}
	if testFraction < 0 {
		testFraction = 0
	}
	if testFraction > 1 {
		testFraction = 1
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	nTest := int(float64(n) * testFraction)
	test = append(test, perm[:nTest]...)
	train = append(train, perm[nTest:]...)
	return train, test
}

// Gather selects the rows of x at the given indices.
func Gather(x [][]float64, idx []int) [][]float64 {
	out := make([][]float64, len(idx))
	for i, j := range idx {
		out[i] = x[j]
	}
	return out
}

// GatherLabels selects the entries of y at the given indices.
func GatherLabels(y []int, idx []int) []int {
	out := make([]int, len(idx))
	for i, j := range idx {
		out[i] = y[j]
	}
	return out
}
