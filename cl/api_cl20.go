//go:build cl20 || cl21 || cl22 || cl30
// +build cl20 cl21 cl22 cl30

package cl

import "unsafe"

// OpenCL 2.0 surface. Compiling this file requires a driver exporting the 2.0
// entry points; select it with one of the version build tags (cl20 and up).

var (
	clCreateCommandQueueWithProperties func(context ContextID, device DeviceID, properties *QueueProperty, errRet *Status) QueueID
	clCreatePipe                       func(context ContextID, flags MemFlags, packetSize, maxPackets uint32, errRet *Status) MemID
	clGetPipeInfo                      func(pipe MemID, param PipeInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status
	clCreateSamplerWithProperties      func(context ContextID, properties *SamplerProperty, errRet *Status) SamplerID
	clSVMAlloc                         func(context ContextID, flags MemFlags, size uintptr, alignment uint32) unsafe.Pointer
	clSVMFree                          func(context ContextID, ptr unsafe.Pointer)
	clSetKernelArgSVMPointer           func(kernel KernelID, index uint32, ptr unsafe.Pointer) Status
	clSetKernelExecInfo                func(kernel KernelID, param KernelExecInfo, size uintptr, value unsafe.Pointer) Status
	clEnqueueSVMMap                    func(queue QueueID, blocking bool, flags MapFlags, ptr unsafe.Pointer, size uintptr, numWait uint32, waitList *EventID, event *EventID) Status
	clEnqueueSVMUnmap                  func(queue QueueID, ptr unsafe.Pointer, numWait uint32, waitList *EventID, event *EventID) Status
	clEnqueueSVMMemcpy                 func(queue QueueID, blocking bool, dst, src unsafe.Pointer, size uintptr, numWait uint32, waitList *EventID, event *EventID) Status
	clEnqueueSVMMemFill                func(queue QueueID, ptr, pattern unsafe.Pointer, patternSize, size uintptr, numWait uint32, waitList *EventID, event *EventID) Status
)

// QueueProperty is an entry of the zero-terminated cl_queue_properties list.
type QueueProperty uint64

const QueuePropertiesKey QueueProperty = 0x1093

// PipeInfo names a cl_pipe_info query.
type PipeInfo uint32

const (
	PipePacketSize PipeInfo = 0x1120
	PipeMaxPackets PipeInfo = 0x1121
)

// SamplerProperty is an entry of the zero-terminated cl_sampler_properties
// list.
type SamplerProperty uint64

const (
	SamplerPropNormalizedCoords SamplerProperty = 0x1152
	SamplerPropAddressingMode   SamplerProperty = 0x1153
	SamplerPropFilterMode       SamplerProperty = 0x1154
)

// KernelExecInfo names a clSetKernelExecInfo parameter.
type KernelExecInfo uint32

const (
	KernelExecInfoSVMPtrs            KernelExecInfo = 0x11B6
	KernelExecInfoSVMFineGrainSystem KernelExecInfo = 0x11B7
)

// CreateCommandQueueWithProperties creates a command queue using the OpenCL
// 2.0 entry point. properties is the raw zero-terminated property list; pass
// nil for driver defaults.
func CreateCommandQueueWithProperties(ctx *Context, device *Device, properties []QueueProperty) (*CommandQueue, error) {
	if clCreateCommandQueueWithProperties == nil {
		return nil, ErrDriverNotLoaded
	}
	if err := ctx.guard(); err != nil {
		return nil, err
	}
	if err := device.guard(); err != nil {
		return nil, err
	}
	var props *QueueProperty
	if len(properties) > 0 {
		props = &properties[0]
	}
	var status Status
	id := clCreateCommandQueueWithProperties(ctx.id, device.id, props, &status)
	if status != Success {
		return nil, clError("clCreateCommandQueueWithProperties", status)
	}
	observeAcquire("queue")
	return &CommandQueue{id: id}, nil
}

// Pipe owns a native pipe object.
type Pipe struct {
	MemObject
}

// CreatePipe creates a pipe holding maxPackets packets of packetSize bytes.
func CreatePipe(ctx *Context, flags MemFlags, packetSize, maxPackets uint32) (*Pipe, error) {
	if clCreatePipe == nil {
		return nil, ErrDriverNotLoaded
	}
	if err := ctx.guard(); err != nil {
		return nil, err
	}
	var status Status
	id := clCreatePipe(ctx.id, flags, packetSize, maxPackets, &status)
	if status != Success {
		return nil, clError("clCreatePipe", status)
	}
	observeAcquire("mem")
	return &Pipe{MemObject{id: id}}, nil
}

// PacketSize returns CL_PIPE_PACKET_SIZE.
func (p *Pipe) PacketSize() (uint32, error) {
	if err := p.guard(); err != nil {
		return 0, err
	}
	if clGetPipeInfo == nil {
		return 0, ErrDriverNotLoaded
	}
	return getInfoUint32("clGetPipeInfo", func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return clGetPipeInfo(p.id, PipePacketSize, size, value, sizeRet)
	})
}

// MaxPackets returns CL_PIPE_MAX_PACKETS.
func (p *Pipe) MaxPackets() (uint32, error) {
	if err := p.guard(); err != nil {
		return 0, err
	}
	if clGetPipeInfo == nil {
		return 0, ErrDriverNotLoaded
	}
	return getInfoUint32("clGetPipeInfo", func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return clGetPipeInfo(p.id, PipeMaxPackets, size, value, sizeRet)
	})
}

// CreateSamplerWithProperties creates a sampler from the raw zero-terminated
// property list; pass nil for driver defaults.
func CreateSamplerWithProperties(ctx *Context, properties []SamplerProperty) (*Sampler, error) {
	if clCreateSamplerWithProperties == nil {
		return nil, ErrDriverNotLoaded
	}
	if err := ctx.guard(); err != nil {
		return nil, err
	}
	var props *SamplerProperty
	if len(properties) > 0 {
		props = &properties[0]
	}
	var status Status
	id := clCreateSamplerWithProperties(ctx.id, props, &status)
	if status != Success {
		return nil, clError("clCreateSamplerWithProperties", status)
	}
	observeAcquire("sampler")
	return &Sampler{id: id}, nil
}

// SVMBuffer is a shared virtual memory allocation. SVM memory is freed with
// Free, not reference counted, so the wrapper only guards double free.
type SVMBuffer struct {
	handle
	ctx  ContextID
	ptr  unsafe.Pointer
	size uintptr
}

// SVMAlloc allocates size bytes of shared virtual memory. alignment zero
// selects the largest supported type alignment.
func SVMAlloc(ctx *Context, flags MemFlags, size uintptr, alignment uint32) (*SVMBuffer, error) {
	if clSVMAlloc == nil {
		return nil, ErrDriverNotLoaded
	}
	if err := ctx.guard(); err != nil {
		return nil, err
	}
	ptr := clSVMAlloc(ctx.id, flags, size, alignment)
	if ptr == nil {
		// clSVMAlloc reports failure through a NULL pointer, not a status.
		return nil, clError("clSVMAlloc", OutOfResources)
	}
	observeAcquire("svm")
	return &SVMBuffer{ctx: ctx.id, ptr: ptr, size: size}, nil
}

// Bytes returns the allocation as a byte slice, valid until Free.
func (s *SVMBuffer) Bytes() []byte {
	if s.released.Load() || s.ptr == nil {
		return nil
	}
	return unsafe.Slice((*byte)(s.ptr), s.size)
}

// Pointer returns the raw SVM pointer for kernel arguments.
func (s *SVMBuffer) Pointer() unsafe.Pointer { return s.ptr }

// Free releases the allocation, exactly once.
func (s *SVMBuffer) Free() error {
	return s.release("clSVMFree", "svm", func() Status {
		clSVMFree(s.ctx, s.ptr)
		return Success
	})
}

// SetArgSVMPointer binds an SVM allocation to argument index.
func (k *Kernel) SetArgSVMPointer(index uint32, svm *SVMBuffer) error {
	if err := k.guard(); err != nil {
		return err
	}
	if err := svm.guard(); err != nil {
		return err
	}
	if clSetKernelArgSVMPointer == nil {
		return ErrDriverNotLoaded
	}
	if status := clSetKernelArgSVMPointer(k.id, index, svm.ptr); status != Success {
		return clError("clSetKernelArgSVMPointer", status)
	}
	return nil
}

// SetExecInfoSVMPointers declares the SVM allocations a kernel may access
// indirectly.
func (k *Kernel) SetExecInfoSVMPointers(svms []*SVMBuffer) error {
	if err := k.guard(); err != nil {
		return err
	}
	if clSetKernelExecInfo == nil {
		return ErrDriverNotLoaded
	}
	if len(svms) == 0 {
		return clError("clSetKernelExecInfo", InvalidValue)
	}
	ptrs := make([]unsafe.Pointer, len(svms))
	for i, s := range svms {
		if err := s.guard(); err != nil {
			return err
		}
		ptrs[i] = s.ptr
	}
	size := uintptr(len(ptrs)) * unsafe.Sizeof(ptrs[0])
	if status := clSetKernelExecInfo(k.id, KernelExecInfoSVMPtrs, size, unsafe.Pointer(&ptrs[0])); status != Success {
		return clError("clSetKernelExecInfo", status)
	}
	return nil
}

// EnqueueSVMMap makes an SVM region coherent for host access.
func (q *CommandQueue) EnqueueSVMMap(blocking bool, flags MapFlags, svm *SVMBuffer, waitList []*Event) (*Event, error) {
	if err := q.guard(); err != nil {
		return nil, err
	}
	if err := svm.guard(); err != nil {
		return nil, err
	}
	if clEnqueueSVMMap == nil {
		return nil, ErrDriverNotLoaded
	}
	numWait, wait, err := eventArgs(waitList)
	if err != nil {
		return nil, err
	}
	var eventID EventID
	status := clEnqueueSVMMap(q.id, blocking, flags, svm.ptr, svm.size, numWait, wait, &eventID)
	if status != Success {
		return nil, clError("clEnqueueSVMMap", status)
	}
	ev := q.enqueueEvent()
	ev.id = eventID
	return ev, nil
}

// EnqueueSVMUnmap releases a mapping made by EnqueueSVMMap.
func (q *CommandQueue) EnqueueSVMUnmap(svm *SVMBuffer, waitList []*Event) (*Event, error) {
	if err := q.guard(); err != nil {
		return nil, err
	}
	if err := svm.guard(); err != nil {
		return nil, err
	}
	if clEnqueueSVMUnmap == nil {
		return nil, ErrDriverNotLoaded
	}
	numWait, wait, err := eventArgs(waitList)
	if err != nil {
		return nil, err
	}
	var eventID EventID
	status := clEnqueueSVMUnmap(q.id, svm.ptr, numWait, wait, &eventID)
	if status != Success {
		return nil, clError("clEnqueueSVMUnmap", status)
	}
	ev := q.enqueueEvent()
	ev.id = eventID
	return ev, nil
}

// EnqueueSVMMemFill fills size bytes of an SVM region by repeating pattern.
// size must be a multiple of the pattern length.
func (q *CommandQueue) EnqueueSVMMemFill(svm *SVMBuffer, pattern []byte, size uintptr, waitList []*Event) (*Event, error) {
	if err := q.guard(); err != nil {
		return nil, err
	}
	if err := svm.guard(); err != nil {
		return nil, err
	}
	if clEnqueueSVMMemFill == nil {
		return nil, ErrDriverNotLoaded
	}
	if len(pattern) == 0 {
		return nil, clError("clEnqueueSVMMemFill", InvalidValue)
	}
	numWait, wait, err := eventArgs(waitList)
	if err != nil {
		return nil, err
	}
	var eventID EventID
	status := clEnqueueSVMMemFill(q.id, svm.ptr, unsafe.Pointer(&pattern[0]), uintptr(len(pattern)), size, numWait, wait, &eventID)
	if status != Success {
		return nil, clError("clEnqueueSVMMemFill", status)
	}
	ev := q.enqueueEvent()
	ev.id = eventID
	return ev, nil
}

// EnqueueSVMMemcpy copies size bytes between SVM regions.
func (q *CommandQueue) EnqueueSVMMemcpy(blocking bool, dst, src *SVMBuffer, size uintptr, waitList []*Event) (*Event, error) {
	if err := q.guard(); err != nil {
		return nil, err
	}
	if err := dst.guard(); err != nil {
		return nil, err
	}
	if err := src.guard(); err != nil {
		return nil, err
	}
	if clEnqueueSVMMemcpy == nil {
		return nil, ErrDriverNotLoaded
	}
	numWait, wait, err := eventArgs(waitList)
	if err != nil {
		return nil, err
	}
	var eventID EventID
	status := clEnqueueSVMMemcpy(q.id, blocking, dst.ptr, src.ptr, size, numWait, wait, &eventID)
	if status != Success {
		return nil, clError("clEnqueueSVMMemcpy", status)
	}
	ev := q.enqueueEvent()
	ev.id = eventID
	return ev, nil
}
