// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Private Kernels and Options Snapshot
//
// Purpose:
//   - Expose UNEXPORTED ew* micro-kernels and internal options snapshot to matrix_test ONLY.
//   - Enable white-box verification of fast-path (*Dense) vs generic fallback, without widening the prod API.
//
// Provided Surface:
//   - Ew*_TestOnly(...) wrappers: thin pass-through to private ew* kernels.
//   - OptionsSnapshot + GatherOptionsSnapshot_TestOnly: read-only view of internal Options.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields.

// Panic message exports to avoid "magic strings" in tests.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

// EwAllClose_TestOnly forwards to the private ewAllClose kernel.
func EwAllClose_TestOnly(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// EwLowerTriangle_TestOnly forwards to ewTriangle with the inclusive lower mask.
func EwLowerTriangle_TestOnly(X Matrix) (*Dense, error) { return ewTriangle(X, maskLower) }

// EwStrictUpperTriangle_TestOnly forwards to ewTriangle with the strict upper mask.
func EwStrictUpperTriangle_TestOnly(X Matrix) (*Dense, error) {
	return ewTriangle(X, maskStrictUpper)
}

// OptionsSnapshot is a stable, read-only view of internal Options for tests.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly resolves opts via gatherOptions and snapshots the result.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, ValidateNaNInf: o.validateNaNInf}
}

// DenseValidates_TestOnly reports the NaN/Inf policy captured by a Dense.
func DenseValidates_TestOnly(m *Dense) bool { return m.validateNaNInf }
