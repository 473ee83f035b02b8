package compute

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// CPUBackend is the fallback backend. It runs everything through gonum, so it
// is always available and serves as the reference the device results are
// verified against.
type CPUBackend struct {
	log         *zap.Logger
	initialized bool
}

func NewCPUBackend(log *zap.Logger) *CPUBackend {
	return &CPUBackend{log: log}
}

func (c *CPUBackend) Name() string { return "cpu" }

func (c *CPUBackend) Initialize() error {
	if c.initialized {
		return nil
	}
	c.initialized = true
	c.log.Info("cpu backend initialized")
	return nil
}

func (c *CPUBackend) Cleanup() error {
	c.initialized = false
	return nil
}

func (c *CPUBackend) IsAvailable() bool { return true }

func (c *CPUBackend) DeviceInfo() DeviceInfo {
	return DeviceInfo{
		Name:          fmt.Sprintf("CPU (%s)", runtime.GOARCH),
		Vendor:        runtime.GOOS,
		Version:       runtime.Version(),
		DriverVersion: runtime.Version(),
		ComputeUnits:  uint32(runtime.NumCPU()),
	}
}

func (c *CPUBackend) SAXPY(alpha float32, x, y []float32) ([]float32, error) {
	if !c.initialized {
		return nil, fmt.Errorf("cpu backend not initialized")
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("saxpy length mismatch: len(x)=%d len(y)=%d", len(x), len(y))
	}
	out := Float32To64(y)
	floats.AddScaled(out, float64(alpha), Float32To64(x))
	return Float64To32(out), nil
}

func (c *CPUBackend) MatrixMultiply(a, b []float32, m, k, n int) ([]float32, error) {
	if !c.initialized {
		return nil, fmt.Errorf("cpu backend not initialized")
	}
	if len(a) != m*k {
		return nil, fmt.Errorf("matrix A size mismatch: expected %d, got %d", m*k, len(a))
	}
	if len(b) != k*n {
		return nil, fmt.Errorf("matrix B size mismatch: expected %d, got %d", k*n, len(b))
	}

	am := mat.NewDense(m, k, Float32To64(a))
	bm := mat.NewDense(k, n, Float32To64(b))
	var cm mat.Dense
	cm.Mul(am, bm)
	return Float64To32(cm.RawMatrix().Data), nil
}
