// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, pointwise products, modulus,
// matrix multiplication, transpose, scalar scaling, traces and norms.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Purpose:
//   - Provide the generic (dense pairwise) kernels every structured storage
//     falls back to when a flat-array fast path does not apply.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Results are always freshly allocated *Dense values; operands are never mutated.
//   - Kernels write results straight into the result buffer, so IEEE semantics
//     (x/0 = ±Inf, Mod(x,0) = NaN) propagate; the NaN/Inf policy guards user Set only.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for dot products and traces.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd             = "Add"
	opSub             = "Sub"
	opMul             = "Mul"
	opTranspose       = "Transpose"
	opTransposeMul    = "TransposeMul"
	opScale           = "Scale"
	opNegate          = "Negate"
	opHadamard        = "Hadamard"
	opPointwiseDivide = "PointwiseDivide"
	opModulus         = "Modulus"
	opMatVec          = "MatVec"
	opVecMat          = "VecMat"
	opTrace           = "Trace"
	opNorm            = "Norm"
	opCopy            = "Copy"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Implementation:
//   - Stage 1: Wrap using fmt.Errorf("%s: %w", tag, err) to enable errors.Is/As.
//
// Inputs:
//   - tag: operation name/label (use package-level op* constants; no magic strings).
//   - err: underlying non-nil error to wrap.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// atErrorf decorates an element read failure with its coordinates.
func atErrorf(tag string, i, j int, err error) error {
	return matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
}

// binaryElementwise computes out[i,j] = f(a[i,j], b[i,j]) into a fresh Dense.
// Internal helper for Add/Sub/Hadamard/PointwiseDivide sharing validation,
// allocation and the *Dense fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateBinarySameShape).
//   - Any error surfaced by a.At / b.At (wrapped with coordinates).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func binaryElementwise(a, b Matrix, opTag string, f func(x, y float64) float64) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var idx int
			for idx = 0; idx < len(res.data); idx++ { // deterministic 0..n-1
				res.data[idx] = f(da.data[idx], db.data[idx])
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int       // loop iterators (deterministic order)
	var av, bv float64 // element temporaries
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, atErrorf(opTag, i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, atErrorf(opTag, i, j, err)
			}
			res.data[i*cols+j] = f(av, bv)
		}
	}

	return res, nil
}

// unaryElementwise computes out[i,j] = f(m[i,j]) into a fresh Dense.
// Errors: ErrNilMatrix; element read failures. Complexity: O(r*c).
func unaryElementwise(m Matrix, opTag string, f func(x float64) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast-path for Dense → Dense
	if dm, ok := m.(*Dense); ok {
		var idx int
		for idx = 0; idx < len(res.data); idx++ {
			res.data[idx] = f(dm.data[idx])
		}

		return res, nil
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErrorf(opTag, i, j, err)
			}
			res.data[i*cols+j] = f(v)
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: If both are *Dense, run a single flat loop; otherwise fall back to i→j.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The fast path is bandwidth-bound.
//
// AI-Hints:
//   - Hide concrete types (e.g., via wrappers) to force the fallback path in tests.
func Add(a, b Matrix) (Matrix, error) {
	return binaryElementwise(a, b, opAdd, func(x, y float64) float64 { return x + y })
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Sub(a, b Matrix) (Matrix, error) {
	return binaryElementwise(a, b, opSub, func(x, y float64) float64 { return x - y })
}

// Hadamard computes the elementwise product (a ⊙ b) with a fresh Dense result.
// Both inputs must be non-nil and have identical shapes; operands are not mutated.
//
// Notes:
//   - Hadamard ≠ matrix multiplication; it is elementwise. Use Mul for A×B.
func Hadamard(a, b Matrix) (Matrix, error) {
	return binaryElementwise(a, b, opHadamard, func(x, y float64) float64 { return x * y })
}

// PointwiseDivide computes C[i,j] = A[i,j] / B[i,j].
// Division by zero follows IEEE-754 (±Inf or NaN); it is not an error.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func PointwiseDivide(a, b Matrix) (Matrix, error) {
	return binaryElementwise(a, b, opPointwiseDivide, func(x, y float64) float64 { return x / y })
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Input is validated non-nil; the original matrix is never mutated.
//
// Notes:
//   - alpha = 0 yields an explicit zero matrix with the same shape.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	return unaryElementwise(m, opScale, func(x float64) float64 { return x * alpha })
}

// Negate returns -m as a fresh Dense.
func Negate(m Matrix) (Matrix, error) {
	return unaryElementwise(m, opNegate, func(x float64) float64 { return -x })
}

// Modulus returns the element-wise remainder m[i,j] mod divisor.
// The result has the sign of the dividend (math.Mod semantics); a zero
// divisor yields NaN cells rather than an error.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Modulus(m Matrix, divisor float64) (Matrix, error) {
	return unaryElementwise(m, opModulus, func(x float64) float64 { return math.Mod(x, divisor) })
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k with a fixed order.
//   - Every product term is accumulated, so 0·Inf and 0·NaN yield NaN on
//     both paths (IEEE 754), same as the packed element-wise kernels.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders (i→k→j for fast path, i→j→k for fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, atErrorf(opMul, i, k, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, atErrorf(opMul, k, j, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// TransposeMul computes C = Aᵀ × B without materializing Aᵀ.
// Errors: ErrNilMatrix; ErrDimensionMismatch when A.Rows != B.Rows.
// Complexity: Time O(n*r*c), Space O(r*c).
func TransposeMul(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTransposeMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opTransposeMul, err)
	}
	if a.Rows() != b.Rows() {
		return nil, matrixErrorf(opTransposeMul, ErrDimensionMismatch)
	}

	inner, rows, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTransposeMul, err)
	}

	var i, j, k int
	var av, bv, acc float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			acc = ZeroSum
			for k = 0; k < inner; k++ {
				if av, err = a.At(k, i); err != nil {
					return nil, atErrorf(opTransposeMul, k, i, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, atErrorf(opTransposeMul, k, j, err)
				}
				acc += av * bv
			}
			res.data[i*cols+j] = acc
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
// Fast-path copies *Dense data via flat indexing; fallback uses At.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int // loop iterators
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErrorf(opTranspose, i, j, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order; zero entries are multiplied like any
// other, so non-finite partners propagate NaN.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc, xv float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				xv = x[j]
				acc += d.data[base+j] * xv
			}
			y[i] = acc
		}

		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, atErrorf(opMatVec, i, j, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// VecMat computes the left product y = xᵀ * m (a row vector of length Cols).
// Contract: len(x) == m.Rows(). Complexity: Time O(r*c), Space O(c).
func VecMat(x []float64, m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, cols)

	var i, j int
	var mv float64
	var err error
	for j = 0; j < cols; j++ {
		y[j] = ZeroSum
		for i = 0; i < rows; i++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, atErrorf(opVecMat, i, j, err)
			}
			y[j] += x[i] * mv
		}
	}

	return y, nil
}

// Trace returns the sum of the diagonal of a square matrix.
// Errors: ErrNilMatrix; ErrDimensionMismatch for non-square input.
// Complexity: O(n).
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var (
		i   int
		v   float64
		sum = ZeroSum
		err error
	)
	for i = 0; i < m.Rows(); i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, atErrorf(opTrace, i, i, err)
		}
		sum += v
	}

	return sum, nil
}

// NormL1 returns the maximum absolute column sum.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func NormL1(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	var (
		i, j     int
		v, colSm float64
		best     = NormZero
		err      error
	)
	for j = 0; j < m.Cols(); j++ {
		colSm = NormZero
		for i = 0; i < m.Rows(); i++ {
			if v, err = m.At(i, j); err != nil {
				return 0, atErrorf(opNorm, i, j, err)
			}
			colSm += math.Abs(v)
		}
		best = math.Max(best, colSm)
	}

	return best, nil
}

// NormInf returns the maximum absolute row sum.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func NormInf(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	var (
		i, j     int
		v, rowSm float64
		best     = NormZero
		err      error
	)
	for i = 0; i < m.Rows(); i++ {
		rowSm = NormZero
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, atErrorf(opNorm, i, j, err)
			}
			rowSm += math.Abs(v)
		}
		best = math.Max(best, rowSm)
	}

	return best, nil
}

// NormFrobenius returns sqrt(Σ m[i,j]²), accumulated with math.Hypot to
// avoid intermediate overflow.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func NormFrobenius(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	var (
		i, j int
		v    float64
		acc  = NormZero
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, atErrorf(opNorm, i, j, err)
			}
			acc = math.Hypot(acc, v)
		}
	}

	return acc, nil
}

// Copy writes every element of src into dst via dst.Set.
// Shapes must match; the first failing Set aborts (structured destinations
// may reject cells they do not store).
// Errors: ErrNilMatrix, ErrDimensionMismatch, any Set error. Complexity: O(r*c).
func Copy(dst, src Matrix) error {
	if err := ValidateBinarySameShape(dst, src); err != nil {
		return matrixErrorf(opCopy, err)
	}
	if dd, ok := dst.(*Dense); ok {
		if ds, ok2 := src.(*Dense); ok2 {
			copy(dd.data, ds.data)

			return nil
		}
	}
	var i, j int
	var v float64
	var err error
	for i = 0; i < src.Rows(); i++ {
		for j = 0; j < src.Cols(); j++ {
			if v, err = src.At(i, j); err != nil {
				return atErrorf(opCopy, i, j, err)
			}
			if err = dst.Set(i, j, v); err != nil {
				return matrixErrorf(opCopy, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return nil
}
