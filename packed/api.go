// SPDX-License-Identifier: MIT
// Package packed: operator facades.
//
// Purpose:
//   - Give the arithmetic operators (+, unary +, -, unary -, scalar *, matrix *,
//     vector *, %) named entry points, since Go has no operator overloading.
//   - Each facade performs only the argument checks (nil → ErrNilMatrix,
//     shape → ErrDimensionMismatch) and delegates to the named method.
//
// Result types follow the methods: *Symmetric when both operands are packed
// symmetric of equal order, otherwise whatever the generic dispatch returns.

package packed

import "github.com/katalvlaran/lvpack/matrix"

const (
	opSum     = "SumSym"
	opPlus    = "PlusSym"
	opDiff    = "DiffSym"
	opNeg     = "NegSym"
	opScaleF  = "ScaleSym"
	opProduct = "ProductSym"
	opMulVec  = "MulVecSym"
	opVecMul  = "VecMulSym"
	opMod     = "ModSym"
)

// checkPair enforces non-nil operands of equal shape.
func checkPair(op string, a *Symmetric, b matrix.Matrix) error {
	if a == nil {
		return packedErrorf(op, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateBinarySameShape(a, b); err != nil {
		return packedErrorf(op, err)
	}

	return nil
}

// SumSym is a + b.
func SumSym(a *Symmetric, b matrix.Matrix) (matrix.Matrix, error) {
	if err := checkPair(opSum, a, b); err != nil {
		return nil, err
	}

	return a.Add(b)
}

// PlusSym is unary +a: an owned copy.
func PlusSym(a *Symmetric) (*Symmetric, error) {
	if a == nil {
		return nil, packedErrorf(opPlus, matrix.ErrNilMatrix)
	}

	return a.Plus(), nil
}

// DiffSym is a - b.
func DiffSym(a *Symmetric, b matrix.Matrix) (matrix.Matrix, error) {
	if err := checkPair(opDiff, a, b); err != nil {
		return nil, err
	}

	return a.Sub(b)
}

// NegSym is unary -a.
func NegSym(a *Symmetric) (*Symmetric, error) {
	if a == nil {
		return nil, packedErrorf(opNeg, matrix.ErrNilMatrix)
	}

	return a.Negate()
}

// ScaleSym is a * k.
func ScaleSym(a *Symmetric, k float64) (*Symmetric, error) {
	if a == nil {
		return nil, packedErrorf(opScaleF, matrix.ErrNilMatrix)
	}

	return a.Scale(k)
}

// ScaleSymLeft is k * a.
func ScaleSymLeft(k float64, a *Symmetric) (*Symmetric, error) { return ScaleSym(a, k) }

// ProductSym is a * b (matrix product, generic path).
func ProductSym(a *Symmetric, b matrix.Matrix) (matrix.Matrix, error) {
	if a == nil {
		return nil, packedErrorf(opProduct, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, packedErrorf(opProduct, err)
	}

	return a.Mul(b)
}

// MulVecSym is a * x.
func MulVecSym(a *Symmetric, x []float64) ([]float64, error) {
	if a == nil || x == nil {
		return nil, packedErrorf(opMulVec, matrix.ErrNilMatrix)
	}
	if len(x) != a.Cols() {
		return nil, packedErrorf(opMulVec, matrix.ErrDimensionMismatch)
	}

	return a.MatVec(x)
}

// VecMulSym is x * a (left multiply).
func VecMulSym(x []float64, a *Symmetric) ([]float64, error) {
	if a == nil || x == nil {
		return nil, packedErrorf(opVecMul, matrix.ErrNilMatrix)
	}
	if len(x) != a.Rows() {
		return nil, packedErrorf(opVecMul, matrix.ErrDimensionMismatch)
	}

	return a.VecMat(x)
}

// ModSym is a % k.
func ModSym(a *Symmetric, k float64) (*Symmetric, error) {
	if a == nil {
		return nil, packedErrorf(opMod, matrix.ErrNilMatrix)
	}

	return a.Modulus(k)
}
