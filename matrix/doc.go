// SPDX-License-Identifier: MIT

// Package matrix is the generic matrix base the packed storage types build on.
//
// The matrix package provides:
//
//   - The Matrix contract: bounds-checked At/Set that return errors instead
//     of panicking, plus Clone.
//   - Dense, a row-major flat matrix with a per-instance NaN/Inf policy.
//   - Sentinel errors (ErrInvalidDimensions, ErrDimensionMismatch,
//     ErrAsymmetry, ErrStructuralZero, ErrNilMatrix, ...) matched with errors.Is.
//   - Central validators (ValidateNotNil, ValidateSameShape, ValidateSymmetric, ...).
//   - Generic kernels (Add, Sub, Scale, Hadamard, PointwiseDivide, Modulus,
//     Mul, MatVec, VecMat, TransposeMul, Transpose, Trace, norms) that every
//     structured storage falls back to.
//   - The Layout capability tag. Structured types report a Layout; kernels in
//     other packages compare tags to decide whether a flat-array fast path is
//     valid instead of down-casting to concrete types.
//
// Generic kernels always return a freshly allocated *Dense and never mutate
// their operands. Loop orders are fixed, so results are deterministic.
//
// See package packed for symmetric and lower-triangular packed storage.
package matrix
