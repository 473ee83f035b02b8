package compute

// DeviceInfo describes the device a backend computes on.
type DeviceInfo struct {
	Name          string `json:"name"`
	Vendor        string `json:"vendor"`
	Version       string `json:"version"`
	DriverVersion string `json:"driverVersion"`
	ComputeUnits  uint32 `json:"computeUnits"`
	GlobalMemory  uint64 `json:"globalMemory"` // in bytes
}

// Backend is one way to run the benchmark workloads. Implementations manage
// their own device resources; selection and CPU fallback are the Manager's
// job, not the backend's.
type Backend interface {
	// Name identifies the backend in logs and metrics ("opencl", "cpu").
	Name() string

	// SAXPY computes y = alpha*x + y and returns the new y. x and y must
	// have equal length; neither input is modified.
	SAXPY(alpha float32, x, y []float32) ([]float32, error)

	// MatrixMultiply computes C = A * B where A is m×k and B is k×n, both
	// in row-major order.
	MatrixMultiply(a, b []float32, m, k, n int) ([]float32, error)

	// DeviceInfo returns information about the device the backend runs on.
	DeviceInfo() DeviceInfo

	// IsAvailable performs a quick availability check without heavy
	// initialization.
	IsAvailable() bool

	// Initialize prepares the backend. Called once before first use.
	Initialize() error

	// Cleanup releases device resources. Must be called when the backend
	// is no longer needed; device memory does not free itself.
	Cleanup() error
}
