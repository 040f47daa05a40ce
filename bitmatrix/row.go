package bitmatrix

// Row is the row-mutable boolean matrix form used for incremental builds
// (spec §4.1 "row-mutable form"), in particular the BFS-RPQ two-block
// frontier/visited matrix of spec §4.5. Each row is a set of column
// indices; mutation is O(1) amortized per bit instead of CSR's
// rebuild-on-every-op.
type Row struct {
	rows, cols int
	data       []map[int]struct{}
}

// NewRow returns a zero-filled rows x cols Row. Returns ErrBadShape if
// rows<=0 or cols<=0.
func NewRow(rows, cols int) (*Row, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	data := make([]map[int]struct{}, rows)
	for i := range data {
		data[i] = make(map[int]struct{})
	}
	return &Row{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the number of rows.
func (r *Row) Rows() int { return r.rows }

// Cols returns the number of columns.
func (r *Row) Cols() int { return r.cols }

// Set turns bit (i,j) on.
func (r *Row) Set(i, j int) {
	r.data[i][j] = struct{}{}
}

// Clear turns bit (i,j) off.
func (r *Row) Clear(i, j int) {
	delete(r.data[i], j)
}

// Has reports whether bit (i,j) is on.
func (r *Row) Has(i, j int) bool {
	_, ok := r.data[i][j]
	return ok
}

// RowNonzero returns the (unsorted) column indices set in row i.
func (r *Row) RowNonzero(i int) []int {
	out := make([]int, 0, len(r.data[i]))
	for j := range r.data[i] {
		out = append(out, j)
	}
	return out
}

// NNZ returns the total number of set bits.
func (r *Row) NNZ() int {
	n := 0
	for _, row := range r.data {
		n += len(row)
	}
	return n
}

// Clone returns a deep, independent copy.
func (r *Row) Clone() *Row {
	out := &Row{rows: r.rows, cols: r.cols, data: make([]map[int]struct{}, r.rows)}
	for i, row := range r.data {
		cp := make(map[int]struct{}, len(row))
		for j := range row {
			cp[j] = struct{}{}
		}
		out.data[i] = cp
	}
	return out
}

// OrRow ORs every bit of row i of src into row i of the receiver (same row
// index in both). Used to merge a per-block update back into visited.
func (r *Row) OrRow(i int, src *Row) {
	for j := range src.data[i] {
		r.data[i][j] = struct{}{}
	}
}

// OrRowIndexed ORs row srcRow of src into row dstRow of the receiver. Used
// by the BFS-RPQ merge rule (spec §4.5 step 4-5), which rotates rows across
// the regex-block boundary: row i of a step matrix lands on row
// floor(i/|Q_r|)*|Q_r| + j of the destination, not row i itself.
func (r *Row) OrRowIndexed(dstRow int, src *Row, srcRow int) {
	for j := range src.data[srcRow] {
		r.data[dstRow][j] = struct{}{}
	}
}

// AndNotRow clears, in row i of the receiver, every bit that is also set in
// row i of other. Used for "frontier \ visited" masking (spec §4.5 step 2).
func (r *Row) AndNotRow(i int, other *Row) {
	for j := range other.data[i] {
		delete(r.data[i], j)
	}
}

// Equal reports whether r and o have exactly the same set bits (used to
// detect the BFS-RPQ fixed point, spec §4.5 step 7, via NNZ comparison in
// the caller — Equal itself is kept for tests).
func (r *Row) Equal(o *Row) bool {
	if r.rows != o.rows || r.cols != o.cols {
		return false
	}
	for i := 0; i < r.rows; i++ {
		if len(r.data[i]) != len(o.data[i]) {
			return false
		}
		for j := range r.data[i] {
			if _, ok := o.data[i][j]; !ok {
				return false
			}
		}
	}
	return true
}

// ToCSR converts the receiver to the CSR arithmetic form, preserving the
// exact nonzero cell set (spec §4.1 "a conversion...must preserve the set
// of nonzero cells").
func (r *Row) ToCSR() *CSR {
	cells := make([]Cell, 0, r.NNZ())
	for i, row := range r.data {
		for j := range row {
			cells = append(cells, Cell{Row: i, Col: j})
		}
	}
	m, err := NewCSR(r.rows, r.cols, cells)
	if err != nil {
		panic(err)
	}
	return m
}

// ToRow converts a CSR to the row-mutable incremental form.
func (m *CSR) ToRow() *Row {
	r, err := NewRow(m.rows, m.cols)
	if err != nil {
		panic(err)
	}
	for i := 0; i < m.rows; i++ {
		for _, j := range m.RowNonzero(i) {
			r.Set(i, j)
		}
	}
	return r
}

// MulRowCSR computes frontier @ m restricted to frontier's nonzero rows,
// returning a fresh Row of shape (frontier.Rows(), m.Cols()). This is the
// BFS-RPQ "step <- frontier . M_ℓ" operation (spec §4.5 step 4): since the
// frontier is typically sparse in rows, computing row-by-row via union of
// m's rows is cheaper than a full CSR product.
func MulRowCSR(frontier *Row, m *CSR) (*Row, error) {
	if frontier.cols != m.rows {
		return nil, shapeErrorf("MulRowCSR", frontier.rows, frontier.cols, m.rows, m.cols)
	}
	out, err := NewRow(frontier.rows, m.cols)
	if err != nil {
		return nil, err
	}
	for i, row := range frontier.data {
		for j := range row {
			for _, k := range m.RowNonzero(j) {
				out.data[i][k] = struct{}{}
			}
		}
	}
	return out, nil
}
