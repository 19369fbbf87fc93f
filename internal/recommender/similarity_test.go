package recommender

import (
	"math"
	"testing"
)

func TestCosineMatrixDiagonalAndSymmetry(t *testing.T) {
	vectors := [][]float64{
		{1, 0, 2},
		{0, 3, 1},
		{2, 1, 0},
		{0, 0, 0}, // vector cero
	}
	m := CosineMatrix(vectors, 2)

	for i := 0; i < m.Dim; i++ {
		if m.Rows[i][i] != 1.0 {
			t.Errorf("sim(%d,%d) = %v, want 1.0", i, i, m.Rows[i][i])
		}
		for j := 0; j < m.Dim; j++ {
			if m.Rows[i][j] != m.Rows[j][i] {
				t.Errorf("sim(%d,%d)=%v != sim(%d,%d)=%v",
					i, j, m.Rows[i][j], j, i, m.Rows[j][i])
			}
		}
	}
}

func TestCosineMatrixZeroVector(t *testing.T) {
	m := CosineMatrix([][]float64{{1, 1}, {0, 0}}, 1)
	if m.Rows[0][1] != 0 {
		t.Errorf("sim contra vector cero = %v, want 0", m.Rows[0][1])
	}
	if m.Rows[1][1] != 1.0 {
		t.Errorf("sim(cero,cero) = %v, want 1.0 por convención", m.Rows[1][1])
	}
}

func TestCosineMatrixKnownValue(t *testing.T) {
	// cos entre (1,0) y (1,1) = 1/sqrt(2)
	m := CosineMatrix([][]float64{{1, 0}, {1, 1}}, 1)
	want := 1 / math.Sqrt(2)
	if diff := math.Abs(m.Rows[0][1] - want); diff > 1e-12 {
		t.Errorf("sim = %v, want %v", m.Rows[0][1], want)
	}
}

func TestCosineMatrixEmpty(t *testing.T) {
	m := CosineMatrix(nil, 4)
	if m.Dim != 0 || len(m.Rows) != 0 {
		t.Errorf("matriz de catálogo vacío: dim=%d rows=%d", m.Dim, len(m.Rows))
	}
}

func TestQuantileLinear(t *testing.T) {
	cases := []struct {
		values []float64
		q      float64
		want   float64
	}{
		{[]float64{10, 50, 100}, 0.70, 70}, // interpolación: 50 + 0.4*(100-50)
		{[]float64{100, 10, 50}, 0.70, 70}, // el orden de entrada no importa
		{[]float64{5}, 0.70, 5},
		{[]float64{1, 2, 3, 4}, 0, 1},
		{[]float64{1, 2, 3, 4}, 1, 4},
		{nil, 0.70, 0},
	}
	for _, tc := range cases {
		if got := quantileLinear(tc.values, tc.q); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("quantileLinear(%v, %v) = %v, want %v", tc.values, tc.q, got, tc.want)
		}
	}
}
