// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private display planners and the allocator.
//
// Purpose:
//   - Expose UNEXPORTED helpers to matrix_test ONLY, without widening the prod API.
//   - The _test.go suffix keeps this file out of production builds.

var (
	// ExportedRowPlan exposes rowPlan for truncation-geometry tests.
	ExportedRowPlan = rowPlan
	// ExportedColPlan exposes colPlan for truncation-geometry tests.
	ExportedColPlan = colPlan
	// ExportedAllocBuffer exposes allocBuffer for allocation-failure tests.
	ExportedAllocBuffer = allocBuffer
	// ExportedElided is the marker used by the planners for an ellipsis slot.
	ExportedElided = elided
)
