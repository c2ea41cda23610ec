// SPDX-License-Identifier: MIT

// Package packed stores symmetric and lower-triangular N×N matrices in packed
// form: only the N(N+1)/2 cells of one triangle live in a flat array.
//
// The package provides:
//
//   - IndexScheme, the pure (row, col) → offset mapping. The upper scheme is
//     column-major (c(c+1)/2 + r for r ≤ c); the lower scheme is row-major
//     (r(r+1)/2 + c for r ≥ c). IndexOf never validates its input.
//   - Symmetric: upper-packed storage where (i,j) and (j,i) share one cell,
//     so symmetry holds by construction after any sequence of writes.
//   - LowerTriangular: lower-packed storage where cells above the diagonal
//     read as 0 and every write to them fails with matrix.ErrStructuralZero.
//   - Packed-aware arithmetic. Both operands must report the same
//     matrix.Layout tag and order for the provider fast path over the flat arrays.
//     Everything else falls back to the generic kernels in package matrix.
//   - Operator facades (SumSym, DiffSym, ScaleSym, ProductSym, ModSym, ...).
//   - Envelope serialization (JSON and TOML), gonum interop, and column
//     Covariance/Correlation built straight into packed storage.
//
// Ownership is explicit in constructor names: New*/From* copy the source,
// Wrap* aliases a caller-owned packed array so writes are visible both ways.
//
// Checked accessors (At/Set) return errors. The unchecked accessors (AtUpper,
// AtLower, AtDiagonal and their setters) are the hot path: they do no
// validation and address the wrong cell if their precondition is violated.
//
// The types are not safe for concurrent mutation.
package packed
