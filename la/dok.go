package la

import "sort"

// DOK is a dictionary-of-keys sparse matrix builder. It mirrors the
// teacher's use of gosl/la.Triplet (Init(m,n,nnz); Put(i,j,v); ToMatrix())
// for accumulating the global Jacobian (see fem/essenbcs.go's
// EssentialBcs.Build), but keys entries by a packed (row,col) integer
// instead of gosl's flat coordinate arrays, and converts once to
// row-compressed (CSR) storage rather than gosl's column-compressed form,
// per the sparse-assembly contract in spec.md §4.A.
type DOK struct {
	m, n    int
	entries map[int64]float64
}

// NewDOK returns a builder for an m-by-n matrix.
func NewDOK(m, n int) *DOK {
	return &DOK{m: m, n: n, entries: make(map[int64]float64)}
}

func key(i, j int) int64 {
	return int64(i)<<32 | int64(uint32(j))
}

// Set overwrites the value at (i,j).
func (d *DOK) Set(i, j int, v float64) {
	d.entries[key(i, j)] = v
}

// Add accumulates v into the existing value at (i,j).
func (d *DOK) Add(i, j int, v float64) {
	d.entries[key(i, j)] += v
}

// AddSubmatrix scatters a dense block into the builder using a DOF map:
// block[a][b] is added at (dofMap[a], dofMap[b]). This is the global
// assembly primitive used both for per-member 12x12 blocks (§4.D) and for
// condensed K* super-element blocks (§4.E).
func (d *DOK) AddSubmatrix(block [][]float64, dofMap []int) {
	for a, gi := range dofMap {
		for b, gj := range dofMap {
			v := block[a][b]
			if v != 0 {
				d.Add(gi, gj, v)
			}
		}
	}
}

// AddMat12 scatters a fixed 12x12 block using a 12-entry DOF map.
func (d *DOK) AddMat12(block *Mat12, dofMap [12]int) {
	for a, gi := range dofMap {
		for b, gj := range dofMap {
			v := block[a][b]
			if v != 0 {
				d.Add(gi, gj, v)
			}
		}
	}
}

// ToCSR converts the accumulated entries to row-compressed storage,
// discarding entries below 1e-15 in magnitude and sorting column indices
// ascending within each row, per spec.md §4.A.
func (d *DOK) ToCSR() *CSR {
	const dropTol = 1e-15

	type coord struct {
		i, j int
		v    float64
	}
	coords := make([]coord, 0, len(d.entries))
	for k, v := range d.entries {
		if v > dropTol || v < -dropTol {
			i := int(k >> 32)
			j := int(uint32(k & 0xffffffff))
			coords = append(coords, coord{i, j, v})
		}
	}
	sort.Slice(coords, func(a, b int) bool {
		if coords[a].i != coords[b].i {
			return coords[a].i < coords[b].i
		}
		return coords[a].j < coords[b].j
	})

	rowPtrs := make([]int, d.m+1)
	values := make([]float64, len(coords))
	colIdx := make([]int, len(coords))
	for idx, c := range coords {
		values[idx] = c.v
		colIdx[idx] = c.j
		rowPtrs[c.i+1]++
	}
	for i := 0; i < d.m; i++ {
		rowPtrs[i+1] += rowPtrs[i]
	}
	return &CSR{M: d.m, N: d.n, Values: values, ColIndices: colIdx, RowPtrs: rowPtrs}
}

// Rows and Cols report the builder's declared shape.
func (d *DOK) Rows() int { return d.m }
func (d *DOK) Cols() int { return d.n }
