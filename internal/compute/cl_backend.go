package compute

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/fxnlabs/gocl/cl"
	"github.com/fxnlabs/gocl/fixtures"
)

// CLBackend runs the workloads on an OpenCL device. The binary must carry the
// "cl" build tag for the native entry points to be linked; without it
// IsAvailable reports false and the Manager falls back to the CPU.
type CLBackend struct {
	log *zap.Logger

	platformIndex int
	deviceType    cl.DeviceType

	device *cl.Device
	ctx    *cl.Context
	queue  *cl.CommandQueue
	prog   *cl.Program
	saxpy  *cl.Kernel
	matmul *cl.Kernel
}

// NewCLBackend selects a device at Initialize time: the platform at
// platformIndex, or the first platform with a device of the given type when
// platformIndex is negative.
func NewCLBackend(log *zap.Logger, platformIndex int, deviceType cl.DeviceType) *CLBackend {
	return &CLBackend{log: log, platformIndex: platformIndex, deviceType: deviceType}
}

func (b *CLBackend) Name() string { return "opencl" }

func (b *CLBackend) IsAvailable() bool { return cl.DriverLoaded() }

func (b *CLBackend) Initialize() error {
	if b.ctx != nil {
		return nil
	}
	platform, device, err := b.selectDevice()
	if err != nil {
		return err
	}
	b.device = device

	ctx, err := cl.CreateContext(&platform, []*cl.Device{device}, func(errInfo string, _ []byte) {
		b.log.Warn("driver reported context error", zap.String("info", errInfo))
	})
	if err != nil {
		return fmt.Errorf("create context: %w", err)
	}
	queue, err := cl.CreateCommandQueue(ctx, device, 0)
	if err != nil {
		releaseQuietly(b.log, ctx)
		return fmt.Errorf("create queue: %w", err)
	}
	prog, err := cl.CreateProgramWithSource(ctx, fixtures.SaxpyKernel, fixtures.MatmulKernel)
	if err != nil {
		releaseQuietly(b.log, queue, ctx)
		return fmt.Errorf("create program: %w", err)
	}
	if err := prog.Build([]*cl.Device{device}, "", nil); err != nil {
		if log, logErr := prog.BuildLog(device); logErr == nil && log != "" {
			b.log.Error("kernel build failed", zap.String("buildLog", log))
		}
		releaseQuietly(b.log, prog, queue, ctx)
		return fmt.Errorf("build program: %w", err)
	}
	saxpy, err := cl.CreateKernel(prog, "saxpy")
	if err != nil {
		releaseQuietly(b.log, prog, queue, ctx)
		return fmt.Errorf("create saxpy kernel: %w", err)
	}
	matmul, err := cl.CreateKernel(prog, "matmul")
	if err != nil {
		releaseQuietly(b.log, saxpy, prog, queue, ctx)
		return fmt.Errorf("create matmul kernel: %w", err)
	}

	b.ctx, b.queue, b.prog, b.saxpy, b.matmul = ctx, queue, prog, saxpy, matmul

	name, _ := device.Name()
	b.log.Info("opencl backend initialized", zap.String("device", name))
	return nil
}

func (b *CLBackend) selectDevice() (cl.Platform, *cl.Device, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		return cl.Platform{}, nil, err
	}
	if len(platforms) == 0 {
		return cl.Platform{}, nil, fmt.Errorf("no opencl platforms found")
	}
	if b.platformIndex >= 0 {
		if b.platformIndex >= len(platforms) {
			return cl.Platform{}, nil, fmt.Errorf("platform index %d out of range, %d available", b.platformIndex, len(platforms))
		}
		platforms = platforms[b.platformIndex : b.platformIndex+1]
	}
	for _, platform := range platforms {
		devices, err := platform.Devices(b.deviceType)
		if err != nil {
			return cl.Platform{}, nil, err
		}
		if len(devices) > 0 {
			return platform, devices[0], nil
		}
	}
	return cl.Platform{}, nil, fmt.Errorf("no %s device found", b.deviceType)
}

func (b *CLBackend) Cleanup() error {
	if b.ctx == nil {
		return nil
	}
	releaseQuietly(b.log, b.matmul, b.saxpy, b.prog, b.queue, b.ctx)
	b.device, b.ctx, b.queue, b.prog, b.saxpy, b.matmul = nil, nil, nil, nil, nil, nil
	return nil
}

func (b *CLBackend) DeviceInfo() DeviceInfo {
	if b.device == nil {
		return DeviceInfo{}
	}
	name, _ := b.device.Name()
	vendor, _ := b.device.Vendor()
	version, _ := b.device.Version()
	driver, _ := b.device.DriverVersion()
	units, _ := b.device.MaxComputeUnits()
	mem, _ := b.device.GlobalMemSize()
	return DeviceInfo{
		Name:          name,
		Vendor:        vendor,
		Version:       version,
		DriverVersion: driver,
		ComputeUnits:  units,
		GlobalMemory:  mem,
	}
}

func (b *CLBackend) SAXPY(alpha float32, x, y []float32) ([]float32, error) {
	if b.ctx == nil {
		return nil, fmt.Errorf("opencl backend not initialized")
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("saxpy length mismatch: len(x)=%d len(y)=%d", len(x), len(y))
	}
	n := len(x)
	if n == 0 {
		return nil, nil
	}

	xBuf, err := cl.CreateBuffer(b.ctx, cl.MemReadOnly|cl.MemCopyHostPtr, uintptr(n*4), floatBytes(x))
	if err != nil {
		return nil, err
	}
	defer releaseQuietly(b.log, xBuf)
	out := append([]float32(nil), y...)
	yBuf, err := cl.CreateBuffer(b.ctx, cl.MemReadWrite|cl.MemCopyHostPtr, uintptr(n*4), floatBytes(out))
	if err != nil {
		return nil, err
	}
	defer releaseQuietly(b.log, yBuf)

	if err := b.saxpy.SetArgFloat32(0, alpha); err != nil {
		return nil, err
	}
	if err := b.saxpy.SetArgBuffer(1, &xBuf.MemObject); err != nil {
		return nil, err
	}
	if err := b.saxpy.SetArgBuffer(2, &yBuf.MemObject); err != nil {
		return nil, err
	}
	if err := b.saxpy.SetArgUint32(3, uint32(n)); err != nil {
		return nil, err
	}

	ev, err := b.queue.EnqueueNDRangeKernel(b.saxpy, nil, []uintptr{uintptr(n)}, nil, nil)
	if err != nil {
		return nil, err
	}
	defer releaseQuietly(b.log, ev)

	rdEv, err := b.queue.EnqueueReadBuffer(yBuf, true, 0, floatBytes(out), []*cl.Event{ev})
	if err != nil {
		return nil, err
	}
	releaseQuietly(b.log, rdEv)
	return out, nil
}

func (b *CLBackend) MatrixMultiply(a, bm []float32, m, k, n int) ([]float32, error) {
	if b.ctx == nil {
		return nil, fmt.Errorf("opencl backend not initialized")
	}
	if len(a) != m*k {
		return nil, fmt.Errorf("matrix A size mismatch: expected %d, got %d", m*k, len(a))
	}
	if len(bm) != k*n {
		return nil, fmt.Errorf("matrix B size mismatch: expected %d, got %d", k*n, len(bm))
	}

	aBuf, err := cl.CreateBuffer(b.ctx, cl.MemReadOnly|cl.MemCopyHostPtr, uintptr(m*k*4), floatBytes(a))
	if err != nil {
		return nil, err
	}
	defer releaseQuietly(b.log, aBuf)
	bBuf, err := cl.CreateBuffer(b.ctx, cl.MemReadOnly|cl.MemCopyHostPtr, uintptr(k*n*4), floatBytes(bm))
	if err != nil {
		return nil, err
	}
	defer releaseQuietly(b.log, bBuf)
	cBuf, err := cl.CreateBuffer(b.ctx, cl.MemWriteOnly, uintptr(m*n*4), nil)
	if err != nil {
		return nil, err
	}
	defer releaseQuietly(b.log, cBuf)

	if err := b.matmul.SetArgBuffer(0, &aBuf.MemObject); err != nil {
		return nil, err
	}
	if err := b.matmul.SetArgBuffer(1, &bBuf.MemObject); err != nil {
		return nil, err
	}
	if err := b.matmul.SetArgBuffer(2, &cBuf.MemObject); err != nil {
		return nil, err
	}
	if err := b.matmul.SetArgUint32(3, uint32(m)); err != nil {
		return nil, err
	}
	if err := b.matmul.SetArgUint32(4, uint32(k)); err != nil {
		return nil, err
	}
	if err := b.matmul.SetArgUint32(5, uint32(n)); err != nil {
		return nil, err
	}

	ev, err := b.queue.EnqueueNDRangeKernel(b.matmul, nil, []uintptr{uintptr(m), uintptr(n)}, nil, nil)
	if err != nil {
		return nil, err
	}
	defer releaseQuietly(b.log, ev)

	out := make([]float32, m*n)
	rdEv, err := b.queue.EnqueueReadBuffer(cBuf, true, 0, floatBytes(out), []*cl.Event{ev})
	if err != nil {
		return nil, err
	}
	releaseQuietly(b.log, rdEv)
	return out, nil
}

// releaser is satisfied by every owned wrapper in the binding.
type releaser interface{ Release() error }

func releaseQuietly(log *zap.Logger, objects ...releaser) {
	for _, obj := range objects {
		if err := obj.Release(); err != nil {
			log.Warn("release failed", zap.Error(err))
		}
	}
}

// floatBytes reinterprets a float32 slice as its underlying bytes so buffer
// transfers avoid a copy. The caller keeps the slice alive for the duration
// of the native call.
func floatBytes(f []float32) []byte {
	if len(f) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&f[0])), len(f)*4)
}
