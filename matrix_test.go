package linkage

import "testing"

func TestCondensedMatrixAtAndSet(t *testing.T) {
	// 4 observations, 6 pairs: (0,1)(0,2)(0,3)(1,2)(1,3)(2,3)
	data := []float64{1, 2, 3, 4, 5, 6}
	m := newCondensedMatrix(data, 4)

	cases := []struct {
		row, col int
		want     float64
	}{
		{0, 1, 1}, {0, 2, 2}, {0, 3, 3},
		{1, 2, 4}, {1, 3, 5},
		{2, 3, 6},
	}
	for _, c := range cases {
		if got := m.at(c.row, c.col); got != c.want {
			t.Errorf("at(%d,%d) = %v, want %v", c.row, c.col, got, c.want)
		}
		// order shouldn't matter
		if got := m.at(c.col, c.row); got != c.want {
			t.Errorf("at(%d,%d) = %v, want %v", c.col, c.row, got, c.want)
		}
	}

	m.set(1, 3, 99)
	if got := m.at(1, 3); got != 99 {
		t.Errorf("after set, at(1,3) = %v, want 99", got)
	}

	m.updateAt(2, 3, func(v float64) float64 { return v + 1 })
	if got := m.at(2, 3); got != 7 {
		t.Errorf("after updateAt, at(2,3) = %v, want 7", got)
	}
}

func TestCondensedMatrixSquare(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	m := newCondensedMatrix(data, 4)
	m.square()
	want := []float64{1, 4, 9, 16, 25, 36}
	for i, v := range want {
		if data[i] != v {
			t.Errorf("data[%d] = %v, want %v", i, data[i], v)
		}
	}
}

func TestNewCondensedMatrixEmpty(t *testing.T) {
	m := newCondensedMatrix[float64](nil, 0)
	if m.Observations() != 0 {
		t.Errorf("Observations() = %d, want 0", m.Observations())
	}
	m = newCondensedMatrix[float64](nil, 1)
	if m.Observations() != 0 {
		t.Errorf("Observations() = %d, want 0 (N<=1 normalizes to 0)", m.Observations())
	}
}

func TestNewCondensedMatrixPanicsOnBadLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for inconsistent matrix length")
		}
	}()
	newCondensedMatrix([]float64{1, 2, 3}, 4)
}

func TestNewCondensedMatrixPanicsOnNonEmptyTooFewObservations(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-empty matrix with observations < 2")
		}
	}()
	newCondensedMatrix([]float64{1}, 1)
}
