package compute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/fxnlabs/gocl/cl"
)

func TestCLBackendWithoutDriver(t *testing.T) {
	if cl.DriverLoaded() {
		t.Skip("native driver linked in; unloaded-driver behavior not testable")
	}

	backend := NewCLBackend(zap.NewNop(), -1, cl.DeviceTypeAll)
	assert.Equal(t, "opencl", backend.Name())
	assert.False(t, backend.IsAvailable())

	err := backend.Initialize()
	assert.ErrorIs(t, err, cl.ErrDriverNotLoaded)

	_, err = backend.SAXPY(1, []float32{1}, []float32{1})
	assert.ErrorContains(t, err, "not initialized")

	assert.NoError(t, backend.Cleanup())
	assert.Zero(t, backend.DeviceInfo())
}

func TestFloatBytes(t *testing.T) {
	assert.Nil(t, floatBytes(nil))

	f := []float32{1}
	b := floatBytes(f)
	assert.Len(t, b, 4)
	// 1.0f is 0x3f800000 little-endian.
	assert.Equal(t, []byte{0, 0, 0x80, 0x3f}, b)
}

func TestFloatConversions(t *testing.T) {
	f64 := Float32To64([]float32{1.5, -2})
	assert.Equal(t, []float64{1.5, -2}, f64)
	assert.Equal(t, []float32{1.5, -2}, Float64To32(f64))
	assert.Empty(t, Float32To64(nil))
}
