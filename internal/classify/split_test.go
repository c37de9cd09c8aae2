package classify

import "testing"

func TestSplit_Deterministic(t *testing.T) {
	train1, test1 := Split(100, 0.2, 42)
	train2, test2 := Split(100, 0.2, 42)

	if len(train1) != len(train2) || len(test1) != len(test2) {
		t.Fatal("repeated splits with the same seed differ in size")
	}
	for i := range train1 {
		if train1[i] != train2[i] {
			t.Fatal("repeated splits with the same seed differ in order")
		}
	}
	for i := range test1 {
		if test1[i] != test2[i] {
			t.Fatal("repeated test splits with the same seed differ")
		}
	}
}

func TestSplit_Partition(t *testing.T) {
	train, test := Split(50, 0.3, 1)
	if len(test) != 15 {
		t.Fatalf("test size = %d, want 15", len(test))
	}
	if len(train)+len(test) != 50 {
		t.Fatalf("split sizes %d+%d != 50", len(train), len(test))
	}
	seen := make(map[int]bool, 50)
	for _, i := range append(append([]int{}, train...), test...) {
		if seen[i] {
			t.Fatalf("index %d appears twice", i)
		}
		seen[i] = true
	}
}

func TestSplit_DifferentSeedsDiffer(t *testing.T) {
	_, a := Split(100, 0.2, 1)
	_, b := Split(100, 0.2, 2)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical splits")
	}
}

func TestGather(t *testing.T) {
	x := [][]float64{{0}, {1}, {2}, {3}}
	y := []int{10, 11, 12, 13}
	idx := []int{3, 1}

	gx := Gather(x, idx)
	gy := GatherLabels(y, idx)
	if gx[0][0] != 3 || gx[1][0] != 1 {
		t.Errorf("Gather returned %v", gx)
	}
	if gy[0] != 13 || gy[1] != 11 {
		t.Errorf("GatherLabels returned %v", gy)
	}
}
