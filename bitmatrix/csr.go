package bitmatrix

import (
	"context"
	"fmt"
	"sort"

	"github.com/reallybigsky/formal-lang-course/errs"
)

// Cell is a single nonzero coordinate, returned by Nonzero.
type Cell struct {
	Row, Col int
}

// CSR is a compressed-sparse-row boolean matrix: the arithmetic form used
// for Add, Mul, Kron and nnz scans (spec §4.1). Rows are stored contiguously
// and column indices within a row are sorted and deduplicated, which is
// what lets Mul and Add run by merging sorted runs instead of rebuilding a
// map on every call.
//
// A CSR is immutable once built: operations return a new CSR rather than
// mutating the receiver. Incremental construction belongs to Row; convert
// with ToCSR/(*CSR).ToRow when switching phases.
type CSR struct {
	rows, cols int
	rowPtr     []int // len rows+1
	colIdx     []int // len rowPtr[rows], sorted ascending within each row
}

// NewCSR builds a CSR of the given shape from an unordered, possibly
// duplicated list of nonzero cells. Returns ErrBadShape if rows<=0 or
// cols<=0, or ErrOutOfRange if any cell falls outside [0,rows)x[0,cols).
func NewCSR(rows, cols int, cells []Cell) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	for _, c := range cells {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return nil, ErrOutOfRange
		}
	}

	byRow := make([][]int, rows)
	for _, c := range cells {
		byRow[c.Row] = append(byRow[c.Row], c.Col)
	}

	m := &CSR{rows: rows, cols: cols, rowPtr: make([]int, rows+1)}
	for i := 0; i < rows; i++ {
		cols := byRow[i]
		sort.Ints(cols)
		cols = dedupSorted(cols)
		m.colIdx = append(m.colIdx, cols...)
		m.rowPtr[i+1] = len(m.colIdx)
	}
	return m, nil
}

// Zero returns the rows x cols all-zero matrix.
func Zero(rows, cols int) *CSR {
	m, err := NewCSR(rows, cols, nil)
	if err != nil {
		// rows/cols validated by caller contract of every call site in
		// this package; a failure here means a programmer error upstream.
		panic(err)
	}
	return m
}

// Identity returns the n x n identity matrix.
func Identity(n int) *CSR {
	cells := make([]Cell, n)
	for i := 0; i < n; i++ {
		cells[i] = Cell{Row: i, Col: i}
	}
	m, err := NewCSR(n, n, cells)
	if err != nil {
		panic(err)
	}
	return m
}

func dedupSorted(s []int) []int {
	if len(s) == 0 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// Rows returns the number of rows.
func (m *CSR) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *CSR) Cols() int { return m.cols }

// NNZ returns the number of nonzero cells.
func (m *CSR) NNZ() int { return len(m.colIdx) }

// RowNonzero returns the sorted column indices of nonzero cells in row i.
// The returned slice is an internal view and must not be mutated.
func (m *CSR) RowNonzero(i int) []int {
	return m.colIdx[m.rowPtr[i]:m.rowPtr[i+1]]
}

// At reports whether cell (i,j) is set. O(log deg(i)).
func (m *CSR) At(i, j int) bool {
	row := m.RowNonzero(i)
	idx := sort.SearchInts(row, j)
	return idx < len(row) && row[idx] == j
}

// Nonzero returns every nonzero cell in row-major order. Order is stable
// within one call (spec §4.1 only requires "unspecified but stable").
func (m *CSR) Nonzero() []Cell {
	cells := make([]Cell, 0, len(m.colIdx))
	for i := 0; i < m.rows; i++ {
		for _, j := range m.RowNonzero(i) {
			cells = append(cells, Cell{Row: i, Col: j})
		}
	}
	return cells
}

// Add returns the union of nonzero cells of m and n (boolean OR). Shapes
// must match exactly, else ErrShapeMismatch.
func (m *CSR) Add(n *CSR) (*CSR, error) {
	if m.rows != n.rows || m.cols != n.cols {
		return nil, shapeErrorf("Add", m.rows, m.cols, n.rows, n.cols)
	}

	cells := make([]Cell, 0, m.NNZ()+n.NNZ())
	for i := 0; i < m.rows; i++ {
		cells = append(cells, mergeRow(i, m.RowNonzero(i), n.RowNonzero(i))...)
	}
	return NewCSR(m.rows, m.cols, cells)
}

func mergeRow(row int, a, b []int) []Cell {
	out := make([]Cell, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, Cell{row, a[i]})
			i++
		case a[i] > b[j]:
			out = append(out, Cell{row, b[j]})
			j++
		default:
			out = append(out, Cell{row, a[i]})
			i++
			j++
		}
	}
	for ; i < len(a); i++ {
		out = append(out, Cell{row, a[i]})
	}
	for ; j < len(b); j++ {
		out = append(out, Cell{row, b[j]})
	}
	return out
}

// Mul computes the boolean-semiring matrix product m @ n: cell (i,k) is set
// iff some j has m[i,j] and n[j,k] both set. Requires m.Cols() == n.Rows(),
// else ErrShapeMismatch. Implemented by walking m's nonzero (i,j) cells and
// unioning in n's row j, which is the row-major analogue of a boolean
// sparse-times-sparse product.
func (m *CSR) Mul(n *CSR) (*CSR, error) {
	if m.cols != n.rows {
		return nil, shapeErrorf("Mul", m.rows, m.cols, n.rows, n.cols)
	}

	// accumulate per output row using a boolean presence scan, then sort.
	rowSets := make([]map[int]struct{}, m.rows)
	for i := 0; i < m.rows; i++ {
		js := m.RowNonzero(i)
		if len(js) == 0 {
			continue
		}
		set := make(map[int]struct{})
		for _, j := range js {
			for _, k := range n.RowNonzero(j) {
				set[k] = struct{}{}
			}
		}
		if len(set) > 0 {
			rowSets[i] = set
		}
	}

	cells := make([]Cell, 0)
	for i, set := range rowSets {
		for k := range set {
			cells = append(cells, Cell{Row: i, Col: k})
		}
	}
	return NewCSR(m.rows, n.cols, cells)
}

// Kron computes the Kronecker product of m and n: shape
// (m.Rows()*n.Rows(), m.Cols()*n.Cols()); cell (i*n.Rows()+p, j*n.Cols()+q)
// is set iff m[i,j] and n[p,q] are both set (spec §4.1, §4.3 step 2).
func Kron(m, n *CSR) *CSR {
	cells := make([]Cell, 0, m.NNZ()*n.NNZ())
	for i := 0; i < m.rows; i++ {
		for _, j := range m.RowNonzero(i) {
			for p := 0; p < n.rows; p++ {
				for _, q := range n.RowNonzero(p) {
					cells = append(cells, Cell{
						Row: i*n.rows + p,
						Col: j*n.cols + q,
					})
				}
			}
		}
	}
	out, err := NewCSR(m.rows*n.rows, m.cols*n.cols, cells)
	if err != nil {
		// m, n are already-validated CSRs; their product shape is always
		// positive, so this can only fire on a programmer error.
		panic(err)
	}
	return out
}

// BlockDiag stacks m and n block-diagonally: shape
// (m.Rows()+n.Rows(), m.Cols()+n.Cols()), with m occupying the top-left
// block and n the bottom-right block, the rest zero. This is the per-label
// primitive behind automaton.DirectSum (spec §4.1 direct_sum).
func BlockDiag(m, n *CSR) *CSR {
	cells := make([]Cell, 0, m.NNZ()+n.NNZ())
	cells = append(cells, m.Nonzero()...)
	for _, c := range n.Nonzero() {
		cells = append(cells, Cell{Row: c.Row + m.rows, Col: c.Col + m.cols})
	}
	out, err := NewCSR(m.rows+n.rows, m.cols+n.cols, cells)
	if err != nil {
		panic(err)
	}
	return out
}

// HConcat concatenates m and n horizontally: shape (m.Rows(), m.Cols()+n.Cols()).
// Requires m.Rows() == n.Rows(), else ErrShapeMismatch.
func HConcat(m, n *CSR) (*CSR, error) {
	if m.rows != n.rows {
		return nil, shapeErrorf("HConcat", m.rows, m.cols, n.rows, n.cols)
	}
	cells := make([]Cell, 0, m.NNZ()+n.NNZ())
	cells = append(cells, m.Nonzero()...)
	for _, c := range n.Nonzero() {
		cells = append(cells, Cell{Row: c.Row, Col: c.Col + m.cols})
	}
	return NewCSR(m.rows, m.cols+n.cols, cells)
}

// SumAll returns the union (boolean OR) of every matrix in mats, all of
// which must share the same shape. Callers must supply at least one matrix
// since the shape cannot otherwise be inferred; len(mats)==0 returns
// ErrShapeMismatch.
func SumAll(mats []*CSR) (*CSR, error) {
	if len(mats) == 0 {
		return nil, ErrShapeMismatch
	}
	acc := mats[0]
	for _, m := range mats[1:] {
		var err error
		acc, err = acc.Add(m)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// Closure computes the reflexive-*free* transitive closure of a single
// collapsed adjacency matrix (spec §4.1-closure step 2-3): repeatedly
// U <- U + U@U until nnz(U) stops growing. It does not add self-loops
// unless U already has them.
//
// Closure polls ctx once per iteration (spec §5 cooperative cancellation):
// on cancellation it returns a wrapped errs.Cancelled and no partial U.
func Closure(ctx context.Context, u *CSR) (*CSR, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("bitmatrix.Closure: %w: %v", errs.Cancelled, ctx.Err())
		default:
		}

		sq, err := u.Mul(u)
		if err != nil {
			return nil, err
		}
		next, err := u.Add(sq)
		if err != nil {
			return nil, err
		}
		if next.NNZ() == u.NNZ() {
			return next, nil
		}
		u = next
	}
}
