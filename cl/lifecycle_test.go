package cl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustContext(t *testing.T, f *fakeDriver) (*Context, []*Device) {
	t.Helper()
	platforms, err := GetPlatforms()
	require.NoError(t, err)
	require.Len(t, platforms, 1)
	devices, err := platforms[0].Devices(DeviceTypeGPU)
	require.NoError(t, err)
	require.Len(t, devices, 2)
	ctx, err := CreateContext(&platforms[0], devices, nil)
	require.NoError(t, err)
	return ctx, devices
}

func TestDriverNotLoaded(t *testing.T) {
	f := newFakeDriver()
	f.install(t)
	clGetPlatformIDs = nil

	assert.False(t, DriverLoaded())

	_, err := GetPlatforms()
	assert.ErrorIs(t, err, ErrDriverNotLoaded)
}

func TestReleaseExactlyOnce(t *testing.T) {
	f := newFakeDriver()
	f.install(t)

	ctx, _ := mustContext(t, f)
	id := uintptr(ctx.ID())

	require.NoError(t, ctx.Release())
	assert.Equal(t, 1, f.releases[id])

	err := ctx.Release()
	assert.ErrorIs(t, err, ErrReleased)
	assert.Equal(t, 1, f.releases[id], "second Release must not reach the driver")
}

func TestUseAfterRelease(t *testing.T) {
	f := newFakeDriver()
	f.install(t)

	ctx, _ := mustContext(t, f)
	require.NoError(t, ctx.Release())

	_, err := ctx.ReferenceCount()
	assert.ErrorIs(t, err, ErrReleased)

	_, err = ctx.Retain()
	assert.ErrorIs(t, err, ErrReleased)
}

func TestRetainReturnsIndependentOwner(t *testing.T) {
	f := newFakeDriver()
	f.install(t)

	ctx, _ := mustContext(t, f)
	dup, err := ctx.Retain()
	require.NoError(t, err)
	assert.Equal(t, ctx.ID(), dup.ID())
	assert.Equal(t, 2, f.refs[uintptr(ctx.ID())])

	require.NoError(t, ctx.Release())
	require.NoError(t, dup.Release())
	assert.Equal(t, 2, f.releases[uintptr(ctx.ID())])
	assert.Equal(t, 0, f.refs[uintptr(ctx.ID())])
}

func TestBorrowedDeviceNotOwned(t *testing.T) {
	f := newFakeDriver()
	f.install(t)

	platforms, err := GetPlatforms()
	require.NoError(t, err)
	devices, err := platforms[0].Devices(DeviceTypeAll)
	require.NoError(t, err)

	err = devices[0].Release()
	assert.ErrorIs(t, err, ErrNotOwned)
	assert.Zero(t, f.calls["clReleaseDevice"])

	owned, err := devices[0].Retain()
	require.NoError(t, err)
	require.NoError(t, owned.Release())
	assert.Equal(t, 1, f.calls["clReleaseDevice"])
}

func TestFailedCreationOwnsNothing(t *testing.T) {
	f := newFakeDriver()
	f.install(t)

	ctx, devices := mustContext(t, f)
	f.failNext("clCreateCommandQueue", OutOfResources)

	_, err := CreateCommandQueue(ctx, devices[0], 0)
	var clErr *Error
	require.ErrorAs(t, err, &clErr)
	assert.Equal(t, OutOfResources, clErr.Status)
	assert.Equal(t, "clCreateCommandQueue", clErr.Op)
	assert.Zero(t, f.calls["clReleaseCommandQueue"])

	require.NoError(t, ctx.Release())
}

func TestDeviceNotFoundIsEmpty(t *testing.T) {
	f := newFakeDriver()
	f.install(t)

	platforms, err := GetPlatforms()
	require.NoError(t, err)

	devices, err := platforms[0].Devices(DeviceTypeCustom)
	assert.NoError(t, err)
	assert.Empty(t, devices)
}

func TestSubDevicesAreOwned(t *testing.T) {
	f := newFakeDriver()
	f.install(t)

	platforms, err := GetPlatforms()
	require.NoError(t, err)
	devices, err := platforms[0].Devices(DeviceTypeGPU)
	require.NoError(t, err)

	subs, err := devices[0].Partition([]DevicePartitionProperty{DevicePartitionEqually, 2, 0})
	require.NoError(t, err)
	require.Len(t, subs, 2)

	for _, sub := range subs {
		require.NoError(t, sub.Release())
	}
	assert.Equal(t, 2, f.calls["clReleaseDevice"])
}

func TestLifecycleObservers(t *testing.T) {
	f := newFakeDriver()
	f.install(t)

	acquired := map[string]int{}
	released := map[string]int{}
	SetLifecycleObservers(
		func(class string) { acquired[class]++ },
		func(class string) { released[class]++ },
	)
	t.Cleanup(func() { SetLifecycleObservers(nil, nil) })

	ctx, devices := mustContext(t, f)
	queue, err := CreateCommandQueue(ctx, devices[0], 0)
	require.NoError(t, err)
	buf, err := CreateBuffer(ctx, MemReadWrite, 64, nil)
	require.NoError(t, err)

	require.NoError(t, buf.Release())
	require.NoError(t, queue.Release())
	require.NoError(t, ctx.Release())

	assert.Equal(t, 1, acquired["context"])
	assert.Equal(t, 1, acquired["queue"])
	assert.Equal(t, 1, acquired["mem"])
	assert.Equal(t, 1, released["context"])
	assert.Equal(t, 1, released["queue"])
	assert.Equal(t, 1, released["mem"])
}

// TestComputePipeline walks the full object graph the way a host program
// does, then tears it down in an order unrelated to creation. Every owned
// handle must see exactly one native release.
func TestComputePipeline(t *testing.T) {
	f := newFakeDriver()
	f.install(t)

	ctx, devices := mustContext(t, f)
	queue, err := CreateCommandQueue(ctx, devices[0], QueueProfiling)
	require.NoError(t, err)

	input := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	buf, err := CreateBuffer(ctx, MemReadWrite|MemCopyHostPtr, uintptr(len(input)), input)
	require.NoError(t, err)

	program, err := CreateProgramWithSource(ctx, "__kernel void saxpy() {}")
	require.NoError(t, err)
	require.NoError(t, program.Build(devices, "-cl-fast-relaxed-math", nil))
	assert.Equal(t, "-cl-fast-relaxed-math", f.buildOptions)

	kernel, err := CreateKernel(program, "saxpy")
	require.NoError(t, err)
	require.NoError(t, kernel.SetArgBuffer(0, &buf.MemObject))

	ev, err := queue.EnqueueNDRangeKernel(kernel, nil, []uintptr{8}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), f.lastWorkDim)
	assert.Equal(t, []uintptr{8}, f.lastGlobalSize)

	out := make([]byte, len(input))
	readEv, err := queue.EnqueueReadBuffer(buf, true, 0, out, []*Event{ev})
	require.NoError(t, err)
	assert.Equal(t, input, out)

	// Release in an order unrelated to creation.
	handles := []uintptr{
		uintptr(ctx.ID()), uintptr(queue.ID()), uintptr(buf.ID()),
		uintptr(program.ID()), uintptr(kernel.ID()),
		uintptr(ev.ID()), uintptr(readEv.ID()),
	}
	require.NoError(t, ctx.Release())
	require.NoError(t, kernel.Release())
	require.NoError(t, readEv.Release())
	require.NoError(t, buf.Release())
	require.NoError(t, queue.Release())
	require.NoError(t, ev.Release())
	require.NoError(t, program.Release())

	for _, h := range handles {
		assert.Equal(t, 1, f.releases[h], "handle %#x", h)
	}
}

func TestReleasedEventInWaitList(t *testing.T) {
	f := newFakeDriver()
	f.install(t)

	ctx, devices := mustContext(t, f)
	queue, err := CreateCommandQueue(ctx, devices[0], 0)
	require.NoError(t, err)
	buf, err := CreateBuffer(ctx, MemReadWrite|MemCopyHostPtr, 4, []byte{1, 2, 3, 4})
	require.NoError(t, err)
	ev, err := CreateUserEvent(ctx)
	require.NoError(t, err)
	require.NoError(t, ev.Release())

	before := f.calls["clEnqueueReadBuffer"]
	_, err = queue.EnqueueReadBuffer(buf, true, 0, make([]byte, 4), []*Event{ev})
	assert.ErrorIs(t, err, ErrReleased)
	assert.Equal(t, before, f.calls["clEnqueueReadBuffer"], "released wait event must not reach the driver")

	require.NoError(t, buf.Release())
	require.NoError(t, queue.Release())
	require.NoError(t, ctx.Release())
}

// Blocking reads still hand back an owned completion event; a consumer that
// releases everything it acquired must leave no live handles behind.
func TestReadRoundTripLeavesNoLiveHandles(t *testing.T) {
	f := newFakeDriver()
	f.install(t)

	ctx, devices := mustContext(t, f)
	queue, err := CreateCommandQueue(ctx, devices[0], 0)
	require.NoError(t, err)
	buf, err := CreateBuffer(ctx, MemReadWrite|MemCopyHostPtr, 8, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)
	program, err := CreateProgramWithSource(ctx, "__kernel void saxpy() {}")
	require.NoError(t, err)
	require.NoError(t, program.Build(devices, "", nil))
	kernel, err := CreateKernel(program, "saxpy")
	require.NoError(t, err)
	require.NoError(t, kernel.SetArgBuffer(0, &buf.MemObject))

	kernelEv, err := queue.EnqueueNDRangeKernel(kernel, nil, []uintptr{8}, nil, nil)
	require.NoError(t, err)
	out := make([]byte, 8)
	readEv, err := queue.EnqueueReadBuffer(buf, true, 0, out, []*Event{kernelEv})
	require.NoError(t, err)

	require.NoError(t, readEv.Release())
	require.NoError(t, kernelEv.Release())
	require.NoError(t, kernel.Release())
	require.NoError(t, program.Release())
	require.NoError(t, buf.Release())
	require.NoError(t, queue.Release())
	require.NoError(t, ctx.Release())

	for h, refs := range f.refs {
		assert.Zero(t, refs, "handle %#x still holds %d ref(s)", h, refs)
		assert.Equal(t, 1, f.releases[h], "handle %#x", h)
	}
}

func TestInvalidNDRange(t *testing.T) {
	f := newFakeDriver()
	f.install(t)

	ctx, devices := mustContext(t, f)
	queue, err := CreateCommandQueue(ctx, devices[0], 0)
	require.NoError(t, err)
	program, err := CreateProgramWithSource(ctx, "__kernel void saxpy() {}")
	require.NoError(t, err)
	require.NoError(t, program.Build(devices, "", nil))
	kernel, err := CreateKernel(program, "saxpy")
	require.NoError(t, err)

	t.Run("work dimension", func(t *testing.T) {
		_, err := queue.EnqueueNDRangeKernel(kernel, nil, []uintptr{1, 2, 3, 4}, nil, nil)
		var clErr *Error
		require.ErrorAs(t, err, &clErr)
		assert.Equal(t, InvalidWorkDimension, clErr.Status)
	})
	t.Run("offset length", func(t *testing.T) {
		_, err := queue.EnqueueNDRangeKernel(kernel, []uintptr{0}, []uintptr{4, 4}, nil, nil)
		var clErr *Error
		require.ErrorAs(t, err, &clErr)
		assert.Equal(t, InvalidGlobalOffset, clErr.Status)
	})
	t.Run("local length", func(t *testing.T) {
		_, err := queue.EnqueueNDRangeKernel(kernel, nil, []uintptr{4, 4}, []uintptr{2}, nil)
		var clErr *Error
		require.ErrorAs(t, err, &clErr)
		assert.Equal(t, InvalidWorkGroupSize, clErr.Status)
	})

	require.NoError(t, kernel.Release())
	require.NoError(t, program.Release())
	require.NoError(t, queue.Release())
	require.NoError(t, ctx.Release())
}

func TestStatusError(t *testing.T) {
	err := clError("clCreateBuffer", InvalidBufferSize)

	var clErr *Error
	require.True(t, errors.As(err, &clErr))
	assert.Equal(t, "cl: clCreateBuffer: CL_INVALID_BUFFER_SIZE", err.Error())
	assert.True(t, errors.Is(err, &Error{Status: InvalidBufferSize}))
	assert.False(t, errors.Is(err, &Error{Status: OutOfResources}))
	assert.Equal(t, "CL_ERROR(-9999)", Status(-9999).String())
}
