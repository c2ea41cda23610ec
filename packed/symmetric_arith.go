// SPDX-License-Identifier: MIT

// Package packed - arithmetic on Symmetric.
//
// Dispatch rule (capability tag, no down-casting):
//   - Both operands report LayoutPackedUpper and the same order → the provider
//     runs the element-wise op over the two flat arrays; result is *Symmetric.
//     Valid because element-wise ops commute with the fixed packing bijection.
//   - Anything else → the generic matrix kernel (dense double loop); result is *matrix.Dense.
//   - Multiplications always take the generic path; the provider has no
//     structured-multiply entry point.

package packed

import (
	"math"

	"github.com/katalvlaran/lvpack/matrix"
	"github.com/katalvlaran/lvpack/parallel"
	"github.com/katalvlaran/lvpack/provider"
	"gonum.org/v1/gonum/stat/distuv"
)

type (
	arrayOp   func(p provider.Provider, a, b, out []float64) error
	genericOp func(a, b matrix.Matrix) (matrix.Matrix, error)
)

// binary validates shapes, then runs fast on the packed arrays or generic on
// the logical matrices.
func (s *Symmetric) binary(other matrix.Matrix, op string, fast arrayOp, generic genericOp) (matrix.Matrix, error) {
	if err := matrix.ValidateBinarySameShape(s, other); err != nil {
		return nil, packedErrorf(op, err)
	}
	if od, ok := flatOf(s, other); ok {
		res := s.emptyLike()
		if err := fast(s.opts.arrays(), s.data, od, res.data); err != nil {
			return nil, packedErrorf(op, err)
		}

		return res, nil
	}
	res, err := generic(s, other)
	if err != nil {
		return nil, packedErrorf(op, err)
	}

	return res, nil
}

// Add returns s + other. *Symmetric when other is packed-upper of equal
// order, *matrix.Dense otherwise.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(N²/2) fast, O(N²) generic.
func (s *Symmetric) Add(other matrix.Matrix) (matrix.Matrix, error) {
	return s.binary(other, opAdd, provider.Provider.AddArrays, matrix.Add)
}

// Sub returns s - other; dispatch as Add.
func (s *Symmetric) Sub(other matrix.Matrix) (matrix.Matrix, error) {
	return s.binary(other, opSub, provider.Provider.SubtractArrays, matrix.Sub)
}

// PointwiseMultiply returns the Hadamard product s ⊙ other; dispatch as Add.
func (s *Symmetric) PointwiseMultiply(other matrix.Matrix) (matrix.Matrix, error) {
	return s.binary(other, opPointwiseMul, provider.Provider.PointwiseMultiplyArrays, matrix.Hadamard)
}

// PointwiseDivide returns s ./ other (IEEE division); dispatch as Add.
func (s *Symmetric) PointwiseDivide(other matrix.Matrix) (matrix.Matrix, error) {
	return s.binary(other, opPointwiseDiv, provider.Provider.PointwiseDivideArrays, matrix.PointwiseDivide)
}

// Scale returns k·s; always packed.
// Errors: ErrNilMatrix for a nil receiver. Complexity: O(N²/2).
func (s *Symmetric) Scale(k float64) (*Symmetric, error) {
	if s == nil {
		return nil, packedErrorf(opScale, matrix.ErrNilMatrix)
	}
	res := s.emptyLike()
	if err := s.opts.arrays().ScaleArray(k, s.data, res.data); err != nil {
		return nil, packedErrorf(opScale, err)
	}

	return res, nil
}

// Negate returns -s; always packed.
func (s *Symmetric) Negate() (*Symmetric, error) {
	if s == nil {
		return nil, packedErrorf(opNegate, matrix.ErrNilMatrix)
	}
	res := s.emptyLike()
	if err := s.opts.arrays().ScaleArray(-1, s.data, res.data); err != nil {
		return nil, packedErrorf(opNegate, err)
	}

	return res, nil
}

// Plus returns an owned copy of s (unary plus).
func (s *Symmetric) Plus() *Symmetric { return s.dup() }

// Modulus returns the cell-wise remainder s mod divisor with the sign of the
// dividend (math.Mod). The copy is updated through parallel.For; every index
// owns exactly one packed cell, so chunks never write the same offset.
// Errors: ErrNilMatrix. Complexity: O(N²/2).
func (s *Symmetric) Modulus(divisor float64) (*Symmetric, error) {
	if s == nil {
		return nil, packedErrorf(opModulus, matrix.ErrNilMatrix)
	}
	res := s.dup()
	parallel.For(0, len(res.data), func(i int) {
		res.data[i] = math.Mod(res.data[i], divisor)
	})

	return res, nil
}

// Mul returns s × other through the generic kernel (*matrix.Dense).
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(N²·c).
func (s *Symmetric) Mul(other matrix.Matrix) (matrix.Matrix, error) {
	if s == nil {
		return nil, packedErrorf(opMul, matrix.ErrNilMatrix)
	}
	// TODO: packed-aware multiply once provider.Provider grows a
	// structured-multiply entry point.
	res, err := matrix.Mul(s, other)
	if err != nil {
		return nil, packedErrorf(opMul, err)
	}

	return res, nil
}

// TransposeMul returns sᵀ × other, which equals s × other; generic path.
func (s *Symmetric) TransposeMul(other matrix.Matrix) (matrix.Matrix, error) {
	if s == nil {
		return nil, packedErrorf(opTransposeMul, matrix.ErrNilMatrix)
	}
	res, err := matrix.TransposeMul(s, other)
	if err != nil {
		return nil, packedErrorf(opTransposeMul, err)
	}

	return res, nil
}

// MatVec returns s·x. Errors: ErrNilMatrix, ErrDimensionMismatch.
func (s *Symmetric) MatVec(x []float64) ([]float64, error) {
	if s == nil {
		return nil, packedErrorf(opMatVec, matrix.ErrNilMatrix)
	}
	y, err := matrix.MatVec(s, x)
	if err != nil {
		return nil, packedErrorf(opMatVec, err)
	}

	return y, nil
}

// VecMat returns xᵀ·s (left multiply). Errors: ErrNilMatrix, ErrDimensionMismatch.
func (s *Symmetric) VecMat(x []float64) ([]float64, error) {
	if s == nil {
		return nil, packedErrorf(opVecMat, matrix.ErrNilMatrix)
	}
	y, err := matrix.VecMat(x, s)
	if err != nil {
		return nil, packedErrorf(opVecMat, err)
	}

	return y, nil
}

// Trace sums the diagonal through AtDiagonal.
// Errors: ErrDimensionMismatch if rows and columns disagree (cannot happen
// for a matrix built by this package). Complexity: O(N).
func (s *Symmetric) Trace() (float64, error) {
	if err := matrix.ValidateSquareNonNil(s); err != nil {
		return 0, packedErrorf(opTrace, err)
	}
	sum := 0.0
	for i := 0; i < s.Order(); i++ {
		sum += s.AtDiagonal(i)
	}

	return sum, nil
}

// FrobeniusNorm returns sqrt(Σ diag² + 2·Σ offdiag²) straight from the packed array.
// Complexity: O(N²/2).
func (s *Symmetric) FrobeniusNorm() float64 {
	var diag, off float64
	var r, c int
	var v float64
	for c = 0; c < s.Order(); c++ {
		for r = 0; r <= c; r++ {
			v = s.AtUpper(r, c)
			if r == c {
				diag += v * v
			} else {
				off += v * v
			}
		}
	}

	return math.Sqrt(diag + 2*off)
}

// L1Norm returns the maximum absolute column sum (generic).
func (s *Symmetric) L1Norm() (float64, error) {
	v, err := matrix.NormL1(s)
	if err != nil {
		return 0, packedErrorf(opNorm, err)
	}

	return v, nil
}

// InfinityNorm returns the maximum absolute row sum. For a symmetric matrix
// it equals L1Norm.
func (s *Symmetric) InfinityNorm() (float64, error) {
	v, err := matrix.NormInf(s)
	if err != nil {
		return 0, packedErrorf(opNorm, err)
	}

	return v, nil
}

// ---------- Triangle extraction ----------

// triangle materializes the cells selected by keep into a fresh Dense,
// reading through the unchecked accessors.
func (s *Symmetric) triangle(keep func(r, c int) bool) (*matrix.Dense, error) {
	n := s.Order()
	buf := make([]float64, n*n)
	var r, c int
	for r = 0; r < n; r++ {
		for c = 0; c < n; c++ {
			if !keep(r, c) {
				continue
			}
			if r >= c {
				buf[r*n+c] = s.AtLower(r, c)
			} else {
				buf[r*n+c] = s.AtUpper(r, c)
			}
		}
	}
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, packedErrorf(opTriangle, err)
	}
	// raw ingestion: stored NaN/Inf (policy off) must survive extraction
	if err = d.Fill(buf); err != nil {
		return nil, packedErrorf(opTriangle, err)
	}

	return d, nil
}

// LowerTriangle returns the lower triangle including the diagonal as Dense.
func (s *Symmetric) LowerTriangle() (*matrix.Dense, error) {
	return s.triangle(func(r, c int) bool { return r >= c })
}

// StrictlyLowerTriangle returns the lower triangle without the diagonal.
func (s *Symmetric) StrictlyLowerTriangle() (*matrix.Dense, error) {
	return s.triangle(func(r, c int) bool { return r > c })
}

// UpperTriangle returns the upper triangle including the diagonal as Dense.
func (s *Symmetric) UpperTriangle() (*matrix.Dense, error) {
	return s.triangle(func(r, c int) bool { return r <= c })
}

// StrictlyUpperTriangle returns the upper triangle without the diagonal.
func (s *Symmetric) StrictlyUpperTriangle() (*matrix.Dense, error) {
	return s.triangle(func(r, c int) bool { return r < c })
}

// ---------- Copy & fill ----------

// CopyTo writes s into dst. Whole-array copy when dst reports the same packed
// layout and order; otherwise every cell goes through dst.Set, so a
// destination that rejects cells (e.g. LowerTriangular) fails with its error.
// Errors: ErrNilMatrix, ErrDimensionMismatch, dst.Set errors.
func (s *Symmetric) CopyTo(dst matrix.Matrix) error {
	if err := matrix.ValidateBinarySameShape(s, dst); err != nil {
		return packedErrorf(opCopyTo, err)
	}
	if dd, ok := flatOf(s, dst); ok {
		copy(dd, s.data)

		return nil
	}
	if err := matrix.Copy(dst, s); err != nil {
		return packedErrorf(opCopyTo, err)
	}

	return nil
}

// Randomize overwrites every packed cell with sampler.Rand(), in packed
// order. Any distuv distribution works; seeding is the sampler's business.
// Errors: ErrNilMatrix for a nil receiver or sampler. Complexity: O(N²/2) draws.
func (s *Symmetric) Randomize(sampler distuv.Rander) error {
	if s == nil || sampler == nil {
		return packedErrorf(opRandomize, matrix.ErrNilMatrix)
	}
	for i := range s.data {
		s.data[i] = sampler.Rand()
	}

	return nil
}
