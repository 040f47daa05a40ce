// Package bitmatrix implements the sparse boolean matrix layer of spec §4.1:
// a compressed sparse-row form (CSR) for arithmetic (Add, Mul, Kron, nnz,
// Nonzero) and a row-mutable form (Row) for incremental builds such as the
// BFS-RPQ frontier. Conversions between the two preserve the nonzero cell
// set exactly.
//
// Naming and error-wrapping follow lvlath/matrix: every sentinel below is
// "bitmatrix: ..." and is declared against one of the shared kinds in errs,
// wrapped with fmt.Errorf at the call site so errors.Is keeps working
// against both the local sentinel and the shared kind.
package bitmatrix

import (
	"fmt"

	"github.com/reallybigsky/formal-lang-course/errs"
)

var (
	// ErrShapeMismatch indicates two matrices have incompatible shapes for
	// the requested operation (Add requires equal shape; Mul requires
	// cols(A) == rows(B); DirectSum/Kron accept any shapes).
	ErrShapeMismatch = fmt.Errorf("bitmatrix: shape mismatch: %w", errs.ShapeMismatch)

	// ErrBadShape indicates a requested matrix shape is non-positive.
	ErrBadShape = fmt.Errorf("bitmatrix: shape must be > 0: %w", errs.ShapeMismatch)

	// ErrOutOfRange indicates a row or column index outside [0, dim).
	ErrOutOfRange = fmt.Errorf("bitmatrix: index out of range: %w", errs.ShapeMismatch)
)

// shapeErrorf wraps ErrShapeMismatch with operation context, keeping
// errors.Is(err, ErrShapeMismatch) and errors.Is(err, errs.ShapeMismatch)
// both true.
func shapeErrorf(op string, rA, cA, rB, cB int) error {
	return fmt.Errorf("bitmatrix.%s: (%d,%d) vs (%d,%d): %w", op, rA, cA, rB, cB, ErrShapeMismatch)
}
