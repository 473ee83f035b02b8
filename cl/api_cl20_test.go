//go:build cl20 || cl21 || cl22 || cl30
// +build cl20 cl21 cl22 cl30

package cl

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSVMLifecycle(t *testing.T) {
	f := newFakeDriver()
	f.install(t)

	savedAlloc, savedFree := clSVMAlloc, clSVMFree
	t.Cleanup(func() { clSVMAlloc, clSVMFree = savedAlloc, savedFree })

	backing := make([]byte, 64)
	frees := 0
	clSVMAlloc = func(context ContextID, flags MemFlags, size uintptr, alignment uint32) unsafe.Pointer {
		return unsafe.Pointer(&backing[0])
	}
	clSVMFree = func(context ContextID, ptr unsafe.Pointer) { frees++ }

	ctx, _ := mustContext(t, f)
	svm, err := SVMAlloc(ctx, MemReadWrite, 64, 0)
	require.NoError(t, err)
	assert.Len(t, svm.Bytes(), 64)

	require.NoError(t, svm.Free())
	assert.Equal(t, 1, frees)

	err = svm.Free()
	assert.ErrorIs(t, err, ErrReleased)
	assert.Equal(t, 1, frees, "double free must not reach the driver")
	assert.Nil(t, svm.Bytes())

	require.NoError(t, ctx.Release())
}

func TestSVMAllocFailure(t *testing.T) {
	f := newFakeDriver()
	f.install(t)

	savedAlloc := clSVMAlloc
	t.Cleanup(func() { clSVMAlloc = savedAlloc })
	clSVMAlloc = func(context ContextID, flags MemFlags, size uintptr, alignment uint32) unsafe.Pointer {
		return nil
	}

	ctx, _ := mustContext(t, f)
	_, err := SVMAlloc(ctx, MemReadWrite, 1<<40, 0)
	var clErr *Error
	require.ErrorAs(t, err, &clErr)
	assert.Equal(t, OutOfResources, clErr.Status)

	require.NoError(t, ctx.Release())
}

func TestSVMMemFill(t *testing.T) {
	f := newFakeDriver()
	f.install(t)

	savedAlloc, savedFree, savedFill := clSVMAlloc, clSVMFree, clEnqueueSVMMemFill
	t.Cleanup(func() { clSVMAlloc, clSVMFree, clEnqueueSVMMemFill = savedAlloc, savedFree, savedFill })

	backing := make([]byte, 16)
	clSVMAlloc = func(context ContextID, flags MemFlags, size uintptr, alignment uint32) unsafe.Pointer {
		return unsafe.Pointer(&backing[0])
	}
	clSVMFree = func(context ContextID, ptr unsafe.Pointer) {}
	clEnqueueSVMMemFill = func(queue QueueID, ptr, pattern unsafe.Pointer, patternSize, size uintptr, numWait uint32, waitList *EventID, event *EventID) Status {
		dst := unsafe.Slice((*byte)(ptr), size)
		src := unsafe.Slice((*byte)(pattern), patternSize)
		for i := range dst {
			dst[i] = src[uintptr(i)%patternSize]
		}
		if event != nil {
			*event = EventID(f.alloc())
		}
		return Success
	}

	ctx, devices := mustContext(t, f)
	queue, err := CreateCommandQueue(ctx, devices[0], 0)
	require.NoError(t, err)
	svm, err := SVMAlloc(ctx, MemReadWrite, 16, 0)
	require.NoError(t, err)

	ev, err := queue.EnqueueSVMMemFill(svm, []byte{0xAB, 0xCD}, 16, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAB, 0xCD}, svm.Bytes()[:2])
	assert.Equal(t, []byte{0xAB, 0xCD}, svm.Bytes()[14:])

	_, err = queue.EnqueueSVMMemFill(svm, nil, 16, nil)
	var clErr *Error
	require.ErrorAs(t, err, &clErr)
	assert.Equal(t, InvalidValue, clErr.Status)

	require.NoError(t, ev.Release())
	require.NoError(t, svm.Free())
	require.NoError(t, queue.Release())
	require.NoError(t, ctx.Release())
}

func TestQueueWithPropertiesNotLoaded(t *testing.T) {
	f := newFakeDriver()
	f.install(t)

	saved := clCreateCommandQueueWithProperties
	t.Cleanup(func() { clCreateCommandQueueWithProperties = saved })
	clCreateCommandQueueWithProperties = nil

	ctx, devices := mustContext(t, f)
	_, err := CreateCommandQueueWithProperties(ctx, devices[0], nil)
	assert.ErrorIs(t, err, ErrDriverNotLoaded)

	require.NoError(t, ctx.Release())
}
