package recommender

import (
	"math"
	"sort"
)

// quantileLinear calcula el cuantil q con interpolación lineal sobre los
// valores ordenados (el método por defecto de pandas.Series.quantile, que es
// con el que se definió el corte del 70% de vote_count):
// pos = (n-1)*q; resultado = v[floor(pos)] + frac*(v[ceil(pos)] - v[floor(pos)]).
func quantileLinear(values []float64, q float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[n-1]
	}

	pos := float64(n-1) * q
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
