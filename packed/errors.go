// SPDX-License-Identifier: MIT

package packed

import "fmt"

// Operation tags used in error wrappers.
const (
	opNewSymmetric  = "NewSymmetric"
	opWrapSymmetric = "WrapSymmetric"
	opFromPacked    = "NewSymmetricFromPacked"
	opFrom2D        = "NewSymmetricFrom2D"
	opFrom          = "NewSymmetricFrom"
	opIdentity      = "IdentitySymmetric"
	opNewLower      = "NewLowerTriangular"
	opWrapLower     = "WrapLowerTriangular"
	opLowerFrom2D   = "NewLowerTriangularFrom2D"
	opLowerFrom     = "NewLowerTriangularFrom"
	opAt            = "At"
	opSet           = "Set"
	opAdd           = "Add"
	opSub           = "Sub"
	opScale         = "Scale"
	opNegate        = "Negate"
	opPointwiseMul  = "PointwiseMultiply"
	opPointwiseDiv  = "PointwiseDivide"
	opModulus       = "Modulus"
	opMul           = "Mul"
	opMatVec        = "MatVec"
	opVecMat        = "VecMat"
	opTransposeMul  = "TransposeMul"
	opTrace         = "Trace"
	opNorm          = "Norm"
	opTriangle      = "Triangle"
	opCopyTo        = "CopyTo"
	opRandomize     = "Randomize"
)

// packedErrorf wraps err with an operation tag, preserving the sentinel via %w.
func packedErrorf(op string, err error) error {
	return fmt.Errorf("packed.%s: %w", op, err)
}

// cellErrorf wraps err with an operation tag and the offending coordinates.
func cellErrorf(op string, row, col int, err error) error {
	return fmt.Errorf("packed.%s(%d,%d): %w", op, row, col, err)
}
