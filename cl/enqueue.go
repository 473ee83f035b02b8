package cl

import "unsafe"

// Enqueue operations mirror the native clEnqueue* entry points. Each returns
// an owned completion event the caller must release. Blocking variants return
// after the transfer finished; non-blocking variants require the supplied Go
// memory to stay alive until the returned event completes, as the native
// specification requires for the underlying host pointer.

func (q *CommandQueue) enqueueEvent() *Event {
	observeAcquire("event")
	return &Event{}
}

// EnqueueReadBuffer reads size=len(data) bytes from the buffer at offset into
// data.
func (q *CommandQueue) EnqueueReadBuffer(buf *Buffer, blocking bool, offset uintptr, data []byte, waitList []*Event) (*Event, error) {
	if err := q.guard(); err != nil {
		return nil, err
	}
	if err := buf.guard(); err != nil {
		return nil, err
	}
	if clEnqueueReadBuffer == nil {
		return nil, ErrDriverNotLoaded
	}
	if len(data) == 0 {
		return nil, clError("clEnqueueReadBuffer", InvalidValue)
	}
	numWait, wait, err := eventArgs(waitList)
	if err != nil {
		return nil, err
	}
	var eventID EventID
	status := clEnqueueReadBuffer(q.id, buf.id, blocking, offset, uintptr(len(data)), unsafe.Pointer(&data[0]), numWait, wait, &eventID)
	if status != Success {
		return nil, clError("clEnqueueReadBuffer", status)
	}
	ev := q.enqueueEvent()
	ev.id = eventID
	return ev, nil
}

// EnqueueWriteBuffer writes len(data) bytes from data into the buffer at
// offset.
func (q *CommandQueue) EnqueueWriteBuffer(buf *Buffer, blocking bool, offset uintptr, data []byte, waitList []*Event) (*Event, error) {
	if err := q.guard(); err != nil {
		return nil, err
	}
	if err := buf.guard(); err != nil {
		return nil, err
	}
	if clEnqueueWriteBuffer == nil {
		return nil, ErrDriverNotLoaded
	}
	if len(data) == 0 {
		return nil, clError("clEnqueueWriteBuffer", InvalidValue)
	}
	numWait, wait, err := eventArgs(waitList)
	if err != nil {
		return nil, err
	}
	var eventID EventID
	status := clEnqueueWriteBuffer(q.id, buf.id, blocking, offset, uintptr(len(data)), unsafe.Pointer(&data[0]), numWait, wait, &eventID)
	if status != Success {
		return nil, clError("clEnqueueWriteBuffer", status)
	}
	ev := q.enqueueEvent()
	ev.id = eventID
	return ev, nil
}

// EnqueueCopyBuffer copies size bytes between two buffers on the device.
func (q *CommandQueue) EnqueueCopyBuffer(src, dst *Buffer, srcOffset, dstOffset, size uintptr, waitList []*Event) (*Event, error) {
	if err := q.guard(); err != nil {
		return nil, err
	}
	if err := src.guard(); err != nil {
		return nil, err
	}
	if err := dst.guard(); err != nil {
		return nil, err
	}
	if clEnqueueCopyBuffer == nil {
		return nil, ErrDriverNotLoaded
	}
	numWait, wait, err := eventArgs(waitList)
	if err != nil {
		return nil, err
	}
	var eventID EventID
	status := clEnqueueCopyBuffer(q.id, src.id, dst.id, srcOffset, dstOffset, size, numWait, wait, &eventID)
	if status != Success {
		return nil, clError("clEnqueueCopyBuffer", status)
	}
	ev := q.enqueueEvent()
	ev.id = eventID
	return ev, nil
}

// EnqueueFillBuffer fills size bytes of the buffer at offset with the
// repeating pattern.
func (q *CommandQueue) EnqueueFillBuffer(buf *Buffer, pattern []byte, offset, size uintptr, waitList []*Event) (*Event, error) {
	if err := q.guard(); err != nil {
		return nil, err
	}
	if err := buf.guard(); err != nil {
		return nil, err
	}
	if clEnqueueFillBuffer == nil {
		return nil, ErrDriverNotLoaded
	}
	if len(pattern) == 0 {
		return nil, clError("clEnqueueFillBuffer", InvalidValue)
	}
	numWait, wait, err := eventArgs(waitList)
	if err != nil {
		return nil, err
	}
	var eventID EventID
	status := clEnqueueFillBuffer(q.id, buf.id, unsafe.Pointer(&pattern[0]), uintptr(len(pattern)), offset, size, numWait, wait, &eventID)
	if status != Success {
		return nil, clError("clEnqueueFillBuffer", status)
	}
	ev := q.enqueueEvent()
	ev.id = eventID
	return ev, nil
}

// MappedRegion is a host-visible view of a buffer region produced by
// EnqueueMapBuffer. It must be handed back to EnqueueUnmapMemObject.
type MappedRegion struct {
	ptr  unsafe.Pointer
	size uintptr
}

// Bytes returns the mapped region as a byte slice. The slice is only valid
// until the region is unmapped.
func (r *MappedRegion) Bytes() []byte {
	if r.ptr == nil {
		return nil
	}
	return unsafe.Slice((*byte)(r.ptr), r.size)
}

// EnqueueMapBuffer maps size bytes of the buffer at offset into host memory.
func (q *CommandQueue) EnqueueMapBuffer(buf *Buffer, blocking bool, flags MapFlags, offset, size uintptr, waitList []*Event) (*MappedRegion, *Event, error) {
	if err := q.guard(); err != nil {
		return nil, nil, err
	}
	if err := buf.guard(); err != nil {
		return nil, nil, err
	}
	if clEnqueueMapBuffer == nil {
		return nil, nil, ErrDriverNotLoaded
	}
	numWait, wait, err := eventArgs(waitList)
	if err != nil {
		return nil, nil, err
	}
	var eventID EventID
	var status Status
	ptr := clEnqueueMapBuffer(q.id, buf.id, blocking, flags, offset, size, numWait, wait, &eventID, &status)
	if status != Success {
		return nil, nil, clError("clEnqueueMapBuffer", status)
	}
	ev := q.enqueueEvent()
	ev.id = eventID
	return &MappedRegion{ptr: ptr, size: size}, ev, nil
}

// EnqueueUnmapMemObject releases a mapping produced by EnqueueMapBuffer.
func (q *CommandQueue) EnqueueUnmapMemObject(mem *MemObject, region *MappedRegion, waitList []*Event) (*Event, error) {
	if err := q.guard(); err != nil {
		return nil, err
	}
	if err := mem.guard(); err != nil {
		return nil, err
	}
	if clEnqueueUnmapMemObject == nil {
		return nil, ErrDriverNotLoaded
	}
	numWait, wait, err := eventArgs(waitList)
	if err != nil {
		return nil, err
	}
	var eventID EventID
	status := clEnqueueUnmapMemObject(q.id, mem.id, region.ptr, numWait, wait, &eventID)
	if status != Success {
		return nil, clError("clEnqueueUnmapMemObject", status)
	}
	region.ptr = nil
	ev := q.enqueueEvent()
	ev.id = eventID
	return ev, nil
}

// EnqueueReadImage reads an image region into data.
func (q *CommandQueue) EnqueueReadImage(img *Image, blocking bool, origin, region [3]uintptr, rowPitch, slicePitch uintptr, data []byte, waitList []*Event) (*Event, error) {
	if err := q.guard(); err != nil {
		return nil, err
	}
	if err := img.guard(); err != nil {
		return nil, err
	}
	if clEnqueueReadImage == nil {
		return nil, ErrDriverNotLoaded
	}
	if len(data) == 0 {
		return nil, clError("clEnqueueReadImage", InvalidValue)
	}
	numWait, wait, err := eventArgs(waitList)
	if err != nil {
		return nil, err
	}
	var eventID EventID
	status := clEnqueueReadImage(q.id, img.id, blocking, &origin[0], &region[0], rowPitch, slicePitch, unsafe.Pointer(&data[0]), numWait, wait, &eventID)
	if status != Success {
		return nil, clError("clEnqueueReadImage", status)
	}
	ev := q.enqueueEvent()
	ev.id = eventID
	return ev, nil
}

// EnqueueWriteImage writes data into an image region.
func (q *CommandQueue) EnqueueWriteImage(img *Image, blocking bool, origin, region [3]uintptr, rowPitch, slicePitch uintptr, data []byte, waitList []*Event) (*Event, error) {
	if err := q.guard(); err != nil {
		return nil, err
	}
	if err := img.guard(); err != nil {
		return nil, err
	}
	if clEnqueueWriteImage == nil {
		return nil, ErrDriverNotLoaded
	}
	if len(data) == 0 {
		return nil, clError("clEnqueueWriteImage", InvalidValue)
	}
	numWait, wait, err := eventArgs(waitList)
	if err != nil {
		return nil, err
	}
	var eventID EventID
	status := clEnqueueWriteImage(q.id, img.id, blocking, &origin[0], &region[0], rowPitch, slicePitch, unsafe.Pointer(&data[0]), numWait, wait, &eventID)
	if status != Success {
		return nil, clError("clEnqueueWriteImage", status)
	}
	ev := q.enqueueEvent()
	ev.id = eventID
	return ev, nil
}

// EnqueueNDRangeKernel enqueues kernel execution over the global work size.
// globalOffset and localSize may be nil to let the driver choose.
func (q *CommandQueue) EnqueueNDRangeKernel(kernel *Kernel, globalOffset, globalSize, localSize []uintptr, waitList []*Event) (*Event, error) {
	if err := q.guard(); err != nil {
		return nil, err
	}
	if err := kernel.guard(); err != nil {
		return nil, err
	}
	if clEnqueueNDRangeKernel == nil {
		return nil, ErrDriverNotLoaded
	}
	workDim := uint32(len(globalSize))
	if workDim == 0 || workDim > 3 {
		return nil, clError("clEnqueueNDRangeKernel", InvalidWorkDimension)
	}
	if globalOffset != nil && len(globalOffset) != int(workDim) {
		return nil, clError("clEnqueueNDRangeKernel", InvalidGlobalOffset)
	}
	if localSize != nil && len(localSize) != int(workDim) {
		return nil, clError("clEnqueueNDRangeKernel", InvalidWorkGroupSize)
	}
	var offsetPtr, localPtr *uintptr
	if globalOffset != nil {
		offsetPtr = &globalOffset[0]
	}
	if localSize != nil {
		localPtr = &localSize[0]
	}
	numWait, wait, err := eventArgs(waitList)
	if err != nil {
		return nil, err
	}
	var eventID EventID
	status := clEnqueueNDRangeKernel(q.id, kernel.id, workDim, offsetPtr, &globalSize[0], localPtr, numWait, wait, &eventID)
	if status != Success {
		return nil, clError("clEnqueueNDRangeKernel", status)
	}
	ev := q.enqueueEvent()
	ev.id = eventID
	return ev, nil
}

// EnqueueMarker enqueues a marker that completes when every event in
// waitList (or, with an empty list, every previously enqueued command) has
// completed.
func (q *CommandQueue) EnqueueMarker(waitList []*Event) (*Event, error) {
	if err := q.guard(); err != nil {
		return nil, err
	}
	if clEnqueueMarkerWithWaitList == nil {
		return nil, ErrDriverNotLoaded
	}
	numWait, wait, err := eventArgs(waitList)
	if err != nil {
		return nil, err
	}
	var eventID EventID
	status := clEnqueueMarkerWithWaitList(q.id, numWait, wait, &eventID)
	if status != Success {
		return nil, clError("clEnqueueMarkerWithWaitList", status)
	}
	ev := q.enqueueEvent()
	ev.id = eventID
	return ev, nil
}

// EnqueueBarrier enqueues a barrier blocking later commands until the wait
// list (or all prior commands) completes.
func (q *CommandQueue) EnqueueBarrier(waitList []*Event) (*Event, error) {
	if err := q.guard(); err != nil {
		return nil, err
	}
	if clEnqueueBarrierWithWaitList == nil {
		return nil, ErrDriverNotLoaded
	}
	numWait, wait, err := eventArgs(waitList)
	if err != nil {
		return nil, err
	}
	var eventID EventID
	status := clEnqueueBarrierWithWaitList(q.id, numWait, wait, &eventID)
	if status != Success {
		return nil, clError("clEnqueueBarrierWithWaitList", status)
	}
	ev := q.enqueueEvent()
	ev.id = eventID
	return ev, nil
}
