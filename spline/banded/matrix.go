package banded

// Matrix is a square row-major matrix of float64 values.
type Matrix struct {
	Vals []float64
	N    int
}

// NewMatrix creates an n-by-n zero matrix.
func NewMatrix(n int) *Matrix {
	if n <= 0 {
		panic("banded: matrix size must be positive")
	}
	return &Matrix{
		Vals: make([]float64, n*n),
		N:    n,
	}
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.Vals[i*m.N+j]
}

// Set assigns the element at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	m.Vals[i*m.N+j] = v
}

// Add accumulates v onto the element at row i, column j.
func (m *Matrix) Add(i, j int, v float64) {
	m.Vals[i*m.N+j] += v
}

// Row returns the i-th row as a slice sharing the matrix storage.
func (m *Matrix) Row(i int) []float64 {
	return m.Vals[i*m.N : (i+1)*m.N]
}

// Copy returns a deep copy of the matrix.
func (m *Matrix) Copy() *Matrix {
	out := NewMatrix(m.N)
	copy(out.Vals, m.Vals)
	return out
}

// MultVec computes m * v and writes the result into out.
// v and out must both have length N and must not alias.
func (m *Matrix) MultVec(v, out []float64) {
	n := m.N
	for i := 0; i < n; i++ {
		row := m.Vals[i*n : (i+1)*n]
		sum := 0.0
		for j, rv := range row {
			sum += rv * v[j]
		}
		out[i] = sum
	}
}
