package recommender

import (
	"math"
	"runtime"
	"sync"
)

// Matrix es la matriz densa de similitud coseno del catálogo completo.
// Simétrica, diagonal = 1.0, Rows[i][j] = sim(vector i, vector j).
type Matrix struct {
	Dim  int
	Rows [][]float64
}

// Row devuelve la fila de similitudes de una película.
func (m *Matrix) Row(i int) []float64 {
	return m.Rows[i]
}

// CosineMatrix calcula la matriz completa de similitud coseno.
// Es O(n²) denso y se corre una sola vez, offline, sobre todo el catálogo;
// se reparte por filas entre workers para acortar el batch. Convenciones:
// sim(i,i) = 1.0 siempre, y si algún vector es cero, sim(i,j) = 0 fuera de
// la diagonal (evita división por cero).
func CosineMatrix(vectors [][]float64, workers int) *Matrix {
	n := len(vectors)
	m := &Matrix{Dim: n, Rows: make([][]float64, n)}
	for i := range m.Rows {
		m.Rows[i] = make([]float64, n)
	}
	if n == 0 {
		return m
	}

	norms := make([]float64, n)
	for i, v := range vectors {
		norms[i] = magnitude(v)
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	rowCh := make(chan int, n)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rowCh {
				m.Rows[i][i] = 1.0
				for j := i + 1; j < n; j++ {
					var sim float64
					if norms[i] > 0 && norms[j] > 0 {
						sim = dot(vectors[i], vectors[j]) / (norms[i] * norms[j])
					}
					m.Rows[i][j] = sim
					m.Rows[j][i] = sim
				}
			}
		}()
	}

	for i := 0; i < n; i++ {
		rowCh <- i
	}
	close(rowCh)
	wg.Wait()

	return m
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func magnitude(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
