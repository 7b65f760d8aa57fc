package la

import "sort"

// CSR is a compressed-sparse-row matrix: Values/ColIndices hold nnz
// entries, RowPtrs has M+1 entries delimiting each row's slice. Column
// indices within a row are sorted ascending, per spec.md §4.A.
type CSR struct {
	M, N       int
	Values     []float64
	ColIndices []int
	RowPtrs    []int
}

// NNZ returns the number of stored entries.
func (c *CSR) NNZ() int { return len(c.Values) }

// at does a binary search for column j within row i, returning the index
// into Values/ColIndices, or -1 if not present.
func (c *CSR) at(i, j int) int {
	start, end := c.RowPtrs[i], c.RowPtrs[i+1]
	row := c.ColIndices[start:end]
	k := sort.SearchInts(row, j)
	if k < len(row) && row[k] == j {
		return start + k
	}
	return -1
}

// Get returns the value at (i,j), 0 if not stored.
func (c *CSR) Get(i, j int) float64 {
	k := c.at(i, j)
	if k < 0 {
		return 0
	}
	return c.Values[k]
}

// MatVec computes y = A*x, overwriting y. len(x) must equal c.N, len(y)
// must equal c.M.
func (c *CSR) MatVec(y, x []float64) {
	for i := 0; i < c.M; i++ {
		var sum float64
		for k := c.RowPtrs[i]; k < c.RowPtrs[i+1]; k++ {
			sum += c.Values[k] * x[c.ColIndices[k]]
		}
		y[i] = sum
	}
}

// Diagonal returns the matrix's main diagonal (length min(M,N)); entries
// that are not stored are zero.
func (c *CSR) Diagonal() []float64 {
	n := c.M
	if c.N < n {
		n = c.N
	}
	diag := make([]float64, n)
	for i := 0; i < n; i++ {
		diag[i] = c.Get(i, i)
	}
	return diag
}

// Submatrix extracts the sub-matrix at the given row and column index
// lists (rows may repeat or reorder; cols may reorder, and a repeated
// col index keeps only its last position), returning a new CSR over the reduced
// index space 0..len(rows)-1 x 0..len(cols)-1. Used to carve out K_ff,
// K_fc, K_cf, K_cc for boundary-condition partitioning (§4.D) and K_ii,
// K_im, K_mi, K_mm for static condensation (§4.E).
func (c *CSR) Submatrix(rows, cols []int) *CSR {
	colPos := make(map[int]int, len(cols))
	for newJ, oldJ := range cols {
		colPos[oldJ] = newJ
	}
	dok := NewDOK(len(rows), len(cols))
	for newI, oldI := range rows {
		for k := c.RowPtrs[oldI]; k < c.RowPtrs[oldI+1]; k++ {
			oldJ := c.ColIndices[k]
			if newJ, ok := colPos[oldJ]; ok {
				dok.Add(newI, newJ, c.Values[k])
			}
		}
	}
	return dok.ToCSR()
}

// ToDense materializes the matrix as a dense [][]float64. Intended only
// for small blocks (condensation inner partitions, dense LU fallback) —
// never for the full global matrix.
func (c *CSR) ToDense() [][]float64 {
	dense := make([][]float64, c.M)
	for i := range dense {
		dense[i] = make([]float64, c.N)
	}
	for i := 0; i < c.M; i++ {
		for k := c.RowPtrs[i]; k < c.RowPtrs[i+1]; k++ {
			dense[i][c.ColIndices[k]] = c.Values[k]
		}
	}
	return dense
}

// FromDense builds a CSR from a dense matrix, dropping entries below
// 1e-15 in magnitude.
func FromDense(dense [][]float64) *CSR {
	m := len(dense)
	n := 0
	if m > 0 {
		n = len(dense[0])
	}
	dok := NewDOK(m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if dense[i][j] != 0 {
				dok.Set(i, j, dense[i][j])
			}
		}
	}
	return dok.ToCSR()
}
