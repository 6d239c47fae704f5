package rq

import "fmt"

// Mat is a fixed-N matrix of ring elements. All operations panic on
// dimension mismatch; the reduction order for Dot and the componentwise
// ops is row-major, left-to-right, so results are reproducible for a
// given input.
type Mat struct {
	ring  *Ring
	rows  int
	cols  int
	cells [][]Elt
}

// NewMatWith builds an m x n matrix by calling f for every cell.
func (r *Ring) NewMatWith(rows, cols int, f func(i, j int) Elt) Mat {
	cells := make([][]Elt, rows)
	for i := 0; i < rows; i++ {
		cells[i] = make([]Elt, cols)
		for j := 0; j < cols; j++ {
			cells[i][j] = f(i, j)
		}
	}
	return Mat{ring: r, rows: rows, cols: cols, cells: cells}
}

// MatFromElement wraps a single ring element as a 1x1 matrix.
func (r *Ring) MatFromElement(e Elt) Mat {
	return Mat{ring: r, rows: 1, cols: 1, cells: [][]Elt{{e}}}
}

// MatFromVec stacks a slice of ring elements into a column matrix.
func (r *Ring) MatFromVec(v []Elt) Mat {
	cells := make([][]Elt, len(v))
	for i, e := range v {
		cells[i] = []Elt{e}
	}
	return Mat{ring: r, rows: len(v), cols: 1, cells: cells}
}

// Diag returns the n x n matrix with d on the diagonal and Zero elsewhere.
func (r *Ring) Diag(n int, d Elt) Mat {
	return r.NewMatWith(n, n, func(i, j int) Elt {
		if i == j {
			return d
		}
		return r.Zero()
	})
}

// Identity returns the n x n identity (Diag with One on the diagonal).
func (r *Ring) Identity(n int) Mat {
	return r.Diag(n, r.One())
}

// Dim returns (rows, cols).
func (m Mat) Dim() (int, int) { return m.rows, m.cols }

// Rows returns the row count.
func (m Mat) Rows() int { return m.rows }

// Cols returns the column count.
func (m Mat) Cols() int { return m.cols }

// At returns the (i,j) entry.
func (m Mat) At(i, j int) Elt { return m.cells[i][j] }

// Dot computes the standard (m x k)*(k x p) = (m x p) matrix product over
// R_q, reducing row-major and left-to-right within each dot product.
func (m Mat) Dot(other Mat) Mat {
	if m.cols != other.rows {
		panic(fmt.Sprintf("rq: dot dimension mismatch (%dx%d)*(%dx%d)", m.rows, m.cols, other.rows, other.cols))
	}
	r := m.ring
	out := make([][]Elt, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = make([]Elt, other.cols)
		for j := 0; j < other.cols; j++ {
			acc := r.Zero()
			for k := 0; k < m.cols; k++ {
				acc = r.Add(acc, r.Mul(m.cells[i][k], other.cells[k][j]))
			}
			out[i][j] = acc
		}
	}
	return Mat{ring: r, rows: m.rows, cols: other.cols, cells: out}
}

// Add returns the componentwise sum; shapes must match.
func (m Mat) Add(other Mat) Mat {
	m.mustSameDim(other, "add")
	return m.zipWith(other, m.ring.Add)
}

// Sub returns the componentwise difference; shapes must match.
func (m Mat) Sub(other Mat) Mat {
	m.mustSameDim(other, "sub")
	return m.zipWith(other, m.ring.Sub)
}

// ComponentwiseMul multiplies every entry by the same ring-element scalar
// s. This is entrywise ring multiplication, NOT a dot product.
func (m Mat) ComponentwiseMul(s Elt) Mat {
	r := m.ring
	out := make([][]Elt, m.rows)
	for i := range out {
		out[i] = make([]Elt, m.cols)
		for j := range out[i] {
			out[i][j] = r.Mul(m.cells[i][j], s)
		}
	}
	return Mat{ring: r, rows: m.rows, cols: m.cols, cells: out}
}

// ExtendRows appends other's rows below m's; column counts must match.
func (m Mat) ExtendRows(other Mat) Mat {
	if m.cols != other.cols {
		panic(fmt.Sprintf("rq: extend_rows width mismatch (%d vs %d)", m.cols, other.cols))
	}
	cells := make([][]Elt, 0, m.rows+other.rows)
	cells = append(cells, m.cells...)
	cells = append(cells, other.cells...)
	return Mat{ring: m.ring, rows: m.rows + other.rows, cols: m.cols, cells: cells}
}

// ExtendCols appends other's columns to the right of m's; row counts must match.
func (m Mat) ExtendCols(other Mat) Mat {
	if m.rows != other.rows {
		panic(fmt.Sprintf("rq: extend_cols height mismatch (%d vs %d)", m.rows, other.rows))
	}
	cells := make([][]Elt, m.rows)
	for i := 0; i < m.rows; i++ {
		row := make([]Elt, 0, m.cols+other.cols)
		row = append(row, m.cells[i]...)
		row = append(row, other.cells[i]...)
		cells[i] = row
	}
	return Mat{ring: m.ring, rows: m.rows, cols: m.cols + other.cols, cells: cells}
}

// SplitRows partitions m's rows at index k, returning (top, bottom).
func (m Mat) SplitRows(k int) (top, bottom Mat) {
	if k < 0 || k > m.rows {
		panic(fmt.Sprintf("rq: split_rows(%d) out of range for %d rows", k, m.rows))
	}
	top = Mat{ring: m.ring, rows: k, cols: m.cols, cells: m.cells[:k]}
	bottom = Mat{ring: m.ring, rows: m.rows - k, cols: m.cols, cells: m.cells[k:]}
	return top, bottom
}

// OneDMatToVec flattens an m x 1 matrix to a length-m slice.
func (m Mat) OneDMatToVec() []Elt {
	if m.cols != 1 {
		panic(fmt.Sprintf("rq: one_d_mat_to_vec requires a column matrix, got %d columns", m.cols))
	}
	out := make([]Elt, m.rows)
	for i := range out {
		out[i] = m.cells[i][0]
	}
	return out
}

// Equal reports whether m and other have the same shape and equal entries.
func (m Mat) Equal(other Mat) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if !m.ring.Equal(m.cells[i][j], other.cells[i][j]) {
				return false
			}
		}
	}
	return true
}

func (m Mat) zipWith(other Mat, op func(a, b Elt) Elt) Mat {
	out := make([][]Elt, m.rows)
	for i := range out {
		out[i] = make([]Elt, m.cols)
		for j := range out[i] {
			out[i][j] = op(m.cells[i][j], other.cells[i][j])
		}
	}
	return Mat{ring: m.ring, rows: m.rows, cols: m.cols, cells: out}
}

func (m Mat) mustSameDim(other Mat, op string) {
	if m.rows != other.rows || m.cols != other.cols {
		panic(fmt.Sprintf("rq: %s dimension mismatch (%dx%d) vs (%dx%d)", op, m.rows, m.cols, other.rows, other.cols))
	}
}
