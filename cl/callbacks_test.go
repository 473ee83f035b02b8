package cl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registrySize() int {
	callbacks.mu.Lock()
	defer callbacks.mu.Unlock()
	return len(callbacks.m)
}

func TestContextNotifyRetention(t *testing.T) {
	f := newFakeDriver()
	f.install(t)

	before := registrySize()

	platforms, err := GetPlatforms()
	require.NoError(t, err)
	devices, err := platforms[0].Devices(DeviceTypeGPU)
	require.NoError(t, err)

	var gotErr string
	var gotPrivate []byte
	ctx, err := CreateContext(&platforms[0], devices, func(errInfo string, privateInfo []byte) {
		gotErr = errInfo
		gotPrivate = privateInfo
	})
	require.NoError(t, err)
	assert.Equal(t, before+1, registrySize(), "notify pinned for the context's lifetime")

	// The driver may report asynchronously any time before release.
	invokeContextNotify(ctx.notifyID, "CL_OUT_OF_RESOURCES in queue flush", []byte{0xde, 0xad})
	assert.Equal(t, "CL_OUT_OF_RESOURCES in queue flush", gotErr)
	assert.Equal(t, []byte{0xde, 0xad}, gotPrivate)

	require.NoError(t, ctx.Release())
	assert.Equal(t, before, registrySize(), "notify unpinned on release")
}

func TestContextNotifyUnpinnedOnFailedCreate(t *testing.T) {
	f := newFakeDriver()
	f.install(t)

	platforms, err := GetPlatforms()
	require.NoError(t, err)
	devices, err := platforms[0].Devices(DeviceTypeGPU)
	require.NoError(t, err)

	before := registrySize()
	f.failNext("clCreateContext", OutOfHostMemory)

	_, err = CreateContext(&platforms[0], devices, func(string, []byte) {})
	require.Error(t, err)
	assert.Equal(t, before, registrySize(), "failed creation must not leak the closure")
}

func TestBuildNotifyIsOneShot(t *testing.T) {
	f := newFakeDriver()
	f.install(t)

	ctx, devices := mustContext(t, f)
	program, err := CreateProgramWithSource(ctx, "__kernel void saxpy() {}")
	require.NoError(t, err)

	before := registrySize()
	var notified *Program
	require.NoError(t, program.Build(devices, "", func(p *Program) { notified = p }))

	// The fake delivers the completion synchronously inside clBuildProgram.
	assert.Same(t, program, notified)
	assert.Equal(t, before, registrySize(), "delivered build notify must unpin")

	require.NoError(t, program.Release())
	require.NoError(t, ctx.Release())
}

func TestMemDestructorFiresOnFinalRelease(t *testing.T) {
	f := newFakeDriver()
	f.install(t)

	ctx, _ := mustContext(t, f)
	buf, err := CreateBuffer(ctx, MemReadWrite, 32, nil)
	require.NoError(t, err)

	fired := false
	require.NoError(t, buf.SetDestructorCallback(func() { fired = true }))

	dup, err := buf.Retain()
	require.NoError(t, err)
	require.NoError(t, dup.Release())
	assert.False(t, fired, "destructor must wait for the last reference")

	require.NoError(t, buf.Release())
	assert.True(t, fired)

	require.NoError(t, ctx.Release())
}

func TestEventCallbackIsOneShot(t *testing.T) {
	f := newFakeDriver()
	f.install(t)

	ctx, _ := mustContext(t, f)
	ev, err := CreateUserEvent(ctx)
	require.NoError(t, err)

	before := registrySize()
	var got int32 = -1
	require.NoError(t, ev.SetCallback(Complete, func(status int32) { got = status }))

	assert.Equal(t, Complete, got)
	assert.Equal(t, before, registrySize())

	require.NoError(t, ev.Release())
	require.NoError(t, ctx.Release())
}
