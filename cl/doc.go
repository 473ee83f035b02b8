// Package cl is a low-overhead Go binding over the OpenCL C API.
//
// The package mirrors the native calling convention one-to-one: every native
// entry point returns a status code, and every non-success status surfaces as
// an *Error carrying that code. Object handles (platform, device, context,
// command queue, memory object, program, kernel, event, sampler) are opaque
// values owned by the driver; this package adds type-safe marshaling and a
// release-exactly-once ownership discipline on top, nothing else.
//
// The native library is linked in when the binary is built with the "cl"
// build tag. Without it every operation returns ErrDriverNotLoaded, which lets
// dependent code compile and test on machines without an OpenCL runtime.
// Functions introduced after OpenCL 1.2 are additionally gated behind version
// tags (cl20, cl21, cl22, cl30) so that a binary never links against a symbol
// the target driver may not export. Vendor extensions follow the same scheme
// (clegl for the EGL interop extensions).
//
// Ownership rules:
//
//   - A successful creation call returns an owned wrapper. The caller must
//     arrange for Release to run, typically with defer.
//   - Release runs the native release exactly once; further calls (and any
//     use of the wrapper afterwards) return ErrReleased.
//   - Retain increments the driver-side reference count and returns a new
//     owned wrapper with its own release obligation.
//   - A failed creation produces no wrapper and never triggers a release.
//
// Thread safety is the driver's: the binding holds no shared mutable state
// beyond the released flag of each wrapper and the registry that keeps user
// callbacks reachable until the driver can no longer invoke them.
package cl
