// Package lvpack stores symmetric and lower-triangular matrices in packed
// form: only the N(N+1)/2 cells of one triangle are kept, in a single flat
// float64 array, and the other half is implied.
//
// What is in the box?
//
//	matrix/   - the Matrix contract, Dense row-major storage, validators and
//	            the generic kernels every storage scheme falls back to
//	packed/   - index schemes, Symmetric (upper, column-major) and
//	            LowerTriangular (lower, row-major), packed arithmetic,
//	            operator facades, JSON/TOML envelopes, gonum interop and
//	            column statistics
//	provider/ - flat-array arithmetic behind the packed fast path (gonum/floats)
//	parallel/ - bounded errgroup fan-out over index ranges
//	cmd/lvpack - CLI: pack, unpack, info, identity
//
// Fast path:
//
//	Element-wise operations between two packed matrices that report the same
//	Layout tag and order run over the flat arrays and stay packed. Any other
//	pairing goes through the generic matrix kernels and yields a *matrix.Dense.
//
// Quick start:
//
//	s, _ := packed.WrapSymmetric(3, []float64{1, 2, 0, 3, 0, 0})
//	fmt.Print(s)
//	// [1, 2, 3]
//	// [2, 0, 0]
//	// [3, 0, 0]
//
// Installation:
//
//	go get github.com/katalvlaran/lvpack
package lvpack
