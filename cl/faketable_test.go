package cl

import (
	"testing"
	"unsafe"
)

// fakeDriver backs the dispatch table with an in-memory implementation so the
// wrapper semantics are testable without a native runtime. It models one
// platform with two GPU devices, reference-counted handles and buffer
// storage.
type fakeDriver struct {
	platform PlatformID
	devices  []DeviceID

	platformInfo map[PlatformInfo]string
	deviceInfo   map[DeviceInfo]string

	next uintptr
	refs map[uintptr]int

	calls    map[string]int
	releases map[uintptr]int
	fail     map[string]Status

	bufs           map[MemID][]byte
	memDestructors map[MemID]uintptr

	buildOptions   string
	lastWorkDim    uint32
	lastGlobalSize []uintptr
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		platform: 0x10,
		devices:  []DeviceID{0x21, 0x22},
		platformInfo: map[PlatformInfo]string{
			PlatformName:       "Fake OpenCL",
			PlatformVendor:     "gocl",
			PlatformVersion:    "OpenCL 3.0 fake",
			PlatformProfile:    "FULL_PROFILE",
			PlatformExtensions: "cl_khr_icd cl_khr_fp64",
		},
		deviceInfo: map[DeviceInfo]string{
			DeviceNameInfo:    "FakeDevice",
			DeviceVendorInfo:  "gocl",
			DeviceVersionInfo: "OpenCL 3.0",
		},
		next:           0x1000,
		refs:           make(map[uintptr]int),
		calls:          make(map[string]int),
		releases:       make(map[uintptr]int),
		fail:           make(map[string]Status),
		bufs:           make(map[MemID][]byte),
		memDestructors: make(map[MemID]uintptr),
	}
}

func (f *fakeDriver) alloc() uintptr {
	f.next++
	f.refs[f.next] = 1
	return f.next
}

// failNext makes the next invocation of op return status instead of running.
func (f *fakeDriver) failNext(op string, status Status) {
	f.fail[op] = status
}

func (f *fakeDriver) check(op string) (Status, bool) {
	f.calls[op]++
	if status, ok := f.fail[op]; ok {
		delete(f.fail, op)
		return status, true
	}
	return Success, false
}

func (f *fakeDriver) retain(op string, h uintptr) Status {
	if status, failed := f.check(op); failed {
		return status
	}
	if f.refs[h] <= 0 {
		return InvalidValue
	}
	f.refs[h]++
	return Success
}

func (f *fakeDriver) release(op string, h uintptr) Status {
	if status, failed := f.check(op); failed {
		return status
	}
	if f.refs[h] <= 0 {
		return InvalidValue
	}
	f.refs[h]--
	f.releases[h]++
	return Success
}

func putInfoBytes(size uintptr, value unsafe.Pointer, sizeRet *uintptr, data []byte) Status {
	if sizeRet != nil {
		*sizeRet = uintptr(len(data))
	}
	if value == nil {
		return Success
	}
	if size < uintptr(len(data)) {
		return InvalidValue
	}
	copy(unsafe.Slice((*byte)(value), len(data)), data)
	return Success
}

// putInfoString includes the NUL terminator in the reported size, as native
// drivers do.
func putInfoString(size uintptr, value unsafe.Pointer, sizeRet *uintptr, s string) Status {
	return putInfoBytes(size, value, sizeRet, append([]byte(s), 0))
}

func putInfoUint32(size uintptr, value unsafe.Pointer, sizeRet *uintptr, v uint32) Status {
	var buf [4]byte
	*(*uint32)(unsafe.Pointer(&buf[0])) = v
	return putInfoBytes(size, value, sizeRet, buf[:])
}

func putInfoUint64(size uintptr, value unsafe.Pointer, sizeRet *uintptr, v uint64) Status {
	var buf [8]byte
	*(*uint64)(unsafe.Pointer(&buf[0])) = v
	return putInfoBytes(size, value, sizeRet, buf[:])
}

func goString(p *byte) string {
	if p == nil {
		return ""
	}
	var n uintptr
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// install populates the dispatch table with the fake and restores the prior
// table when the test finishes.
func (f *fakeDriver) install(t *testing.T) {
	t.Helper()
	saved := saveDispatch()
	t.Cleanup(func() { restoreDispatch(saved) })

	clGetPlatformIDs = func(numEntries uint32, platforms *PlatformID, numPlatforms *uint32) Status {
		if status, failed := f.check("clGetPlatformIDs"); failed {
			return status
		}
		if numPlatforms != nil {
			*numPlatforms = 1
		}
		if platforms != nil && numEntries >= 1 {
			*platforms = f.platform
		}
		return Success
	}
	clGetPlatformInfo = func(platform PlatformID, param PlatformInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		if status, failed := f.check("clGetPlatformInfo"); failed {
			return status
		}
		if platform != f.platform {
			return InvalidPlatform
		}
		s, ok := f.platformInfo[param]
		if !ok {
			return InvalidValue
		}
		return putInfoString(size, value, sizeRet, s)
	}
	clGetDeviceIDs = func(platform PlatformID, deviceType DeviceType, numEntries uint32, devices *DeviceID, numDevices *uint32) Status {
		if status, failed := f.check("clGetDeviceIDs"); failed {
			return status
		}
		if deviceType == DeviceTypeCustom {
			return DeviceNotFound
		}
		if numDevices != nil {
			*numDevices = uint32(len(f.devices))
		}
		if devices != nil {
			copy(unsafe.Slice(devices, numEntries), f.devices)
		}
		return Success
	}
	clGetDeviceInfo = func(device DeviceID, param DeviceInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		if status, failed := f.check("clGetDeviceInfo"); failed {
			return status
		}
		switch param {
		case DeviceTypeInfo:
			return putInfoUint64(size, value, sizeRet, uint64(DeviceTypeGPU))
		case DeviceMaxComputeUnits:
			return putInfoUint32(size, value, sizeRet, 16)
		}
		s, ok := f.deviceInfo[param]
		if !ok {
			return InvalidValue
		}
		return putInfoString(size, value, sizeRet, s)
	}
	clRetainDevice = func(device DeviceID) Status { return f.retain("clRetainDevice", uintptr(device)) }
	clReleaseDevice = func(device DeviceID) Status { return f.release("clReleaseDevice", uintptr(device)) }
	clCreateSubDevices = func(device DeviceID, properties *DevicePartitionProperty, numDevices uint32, outDevices *DeviceID, numRet *uint32) Status {
		if status, failed := f.check("clCreateSubDevices"); failed {
			return status
		}
		if numRet != nil {
			*numRet = 2
		}
		if outDevices != nil {
			out := unsafe.Slice(outDevices, numDevices)
			for i := range out {
				out[i] = DeviceID(f.alloc())
			}
		}
		return Success
	}

	clCreateContext = func(properties *ContextProperty, numDevices uint32, devices *DeviceID, notify uintptr, errRet *Status) ContextID {
		status, failed := f.check("clCreateContext")
		if failed {
			*errRet = status
			return 0
		}
		*errRet = Success
		return ContextID(f.alloc())
	}
	clCreateContextFromType = func(properties *ContextProperty, deviceType DeviceType, notify uintptr, errRet *Status) ContextID {
		status, failed := f.check("clCreateContextFromType")
		if failed {
			*errRet = status
			return 0
		}
		*errRet = Success
		return ContextID(f.alloc())
	}
	clRetainContext = func(context ContextID) Status { return f.retain("clRetainContext", uintptr(context)) }
	clReleaseContext = func(context ContextID) Status { return f.release("clReleaseContext", uintptr(context)) }
	clGetContextInfo = func(context ContextID, param ContextInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		if status, failed := f.check("clGetContextInfo"); failed {
			return status
		}
		switch param {
		case ContextReferenceCount:
			return putInfoUint32(size, value, sizeRet, uint32(f.refs[uintptr(context)]))
		case ContextNumDevices:
			return putInfoUint32(size, value, sizeRet, uint32(len(f.devices)))
		case ContextDevices:
			raw := unsafe.Slice((*byte)(unsafe.Pointer(&f.devices[0])), len(f.devices)*int(unsafe.Sizeof(DeviceID(0))))
			return putInfoBytes(size, value, sizeRet, raw)
		}
		return InvalidValue
	}

	clCreateCommandQueue = func(context ContextID, device DeviceID, properties QueueProperties, errRet *Status) QueueID {
		status, failed := f.check("clCreateCommandQueue")
		if failed {
			*errRet = status
			return 0
		}
		*errRet = Success
		return QueueID(f.alloc())
	}
	clRetainCommandQueue = func(queue QueueID) Status { return f.retain("clRetainCommandQueue", uintptr(queue)) }
	clReleaseCommandQueue = func(queue QueueID) Status { return f.release("clReleaseCommandQueue", uintptr(queue)) }
	clFlush = func(queue QueueID) Status {
		status, _ := f.check("clFlush")
		return status
	}
	clFinish = func(queue QueueID) Status {
		status, _ := f.check("clFinish")
		return status
	}
	clGetCommandQueueInfo = func(queue QueueID, param QueueInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		if status, failed := f.check("clGetCommandQueueInfo"); failed {
			return status
		}
		switch param {
		case QueueReferenceCount:
			return putInfoUint32(size, value, sizeRet, uint32(f.refs[uintptr(queue)]))
		case QueuePropertiesInfo:
			return putInfoUint64(size, value, sizeRet, uint64(QueueProfiling))
		}
		return InvalidValue
	}

	clCreateBuffer = func(context ContextID, flags MemFlags, size uintptr, hostPtr unsafe.Pointer, errRet *Status) MemID {
		status, failed := f.check("clCreateBuffer")
		if failed {
			*errRet = status
			return 0
		}
		id := MemID(f.alloc())
		data := make([]byte, size)
		if hostPtr != nil && flags&MemCopyHostPtr != 0 {
			copy(data, unsafe.Slice((*byte)(hostPtr), size))
		}
		f.bufs[id] = data
		*errRet = Success
		return id
	}
	clRetainMemObject = func(mem MemID) Status { return f.retain("clRetainMemObject", uintptr(mem)) }
	clReleaseMemObject = func(mem MemID) Status {
		status := f.release("clReleaseMemObject", uintptr(mem))
		if status == Success && f.refs[uintptr(mem)] == 0 {
			if id, ok := f.memDestructors[mem]; ok {
				delete(f.memDestructors, mem)
				invokeMemDestructor(id)
			}
		}
		return status
	}
	clGetMemObjectInfo = func(mem MemID, param MemInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		if status, failed := f.check("clGetMemObjectInfo"); failed {
			return status
		}
		switch param {
		case MemSize:
			return putInfoUint64(size, value, sizeRet, uint64(len(f.bufs[mem])))
		case MemReferenceCount:
			return putInfoUint32(size, value, sizeRet, uint32(f.refs[uintptr(mem)]))
		}
		return InvalidValue
	}
	clSetMemObjectDestructorCallback = func(mem MemID, notify uintptr) Status {
		if status, failed := f.check("clSetMemObjectDestructorCallback"); failed {
			return status
		}
		f.memDestructors[mem] = notify
		return Success
	}

	clCreateProgramWithSource = func(context ContextID, count uint32, strs **byte, lengths *uintptr, errRet *Status) ProgramID {
		status, failed := f.check("clCreateProgramWithSource")
		if failed {
			*errRet = status
			return 0
		}
		*errRet = Success
		return ProgramID(f.alloc())
	}
	clRetainProgram = func(program ProgramID) Status { return f.retain("clRetainProgram", uintptr(program)) }
	clReleaseProgram = func(program ProgramID) Status { return f.release("clReleaseProgram", uintptr(program)) }
	clBuildProgram = func(program ProgramID, numDevices uint32, devices *DeviceID, options *byte, notify uintptr) Status {
		if status, failed := f.check("clBuildProgram"); failed {
			return status
		}
		f.buildOptions = goString(options)
		if notify != 0 {
			invokeBuildNotify(notify, program)
		}
		return Success
	}
	clGetProgramInfo = func(program ProgramID, param ProgramInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		if status, failed := f.check("clGetProgramInfo"); failed {
			return status
		}
		if param == ProgramKernelNames {
			return putInfoString(size, value, sizeRet, "saxpy")
		}
		return InvalidValue
	}
	clGetProgramBuildInfo = func(program ProgramID, device DeviceID, param ProgramBuildInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		if status, failed := f.check("clGetProgramBuildInfo"); failed {
			return status
		}
		switch param {
		case ProgramBuildLog:
			return putInfoString(size, value, sizeRet, "build ok")
		case ProgramBuildStatusInfo:
			return putInfoUint32(size, value, sizeRet, uint32(BuildSuccess))
		}
		return InvalidValue
	}

	clCreateKernel = func(program ProgramID, name *byte, errRet *Status) KernelID {
		status, failed := f.check("clCreateKernel")
		if failed {
			*errRet = status
			return 0
		}
		if goString(name) != "saxpy" {
			*errRet = InvalidKernelName
			return 0
		}
		*errRet = Success
		return KernelID(f.alloc())
	}
	clRetainKernel = func(kernel KernelID) Status { return f.retain("clRetainKernel", uintptr(kernel)) }
	clReleaseKernel = func(kernel KernelID) Status { return f.release("clReleaseKernel", uintptr(kernel)) }
	clSetKernelArg = func(kernel KernelID, index uint32, size uintptr, value unsafe.Pointer) Status {
		status, _ := f.check("clSetKernelArg")
		return status
	}
	clGetKernelInfo = func(kernel KernelID, param KernelInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		if status, failed := f.check("clGetKernelInfo"); failed {
			return status
		}
		switch param {
		case KernelFunctionName:
			return putInfoString(size, value, sizeRet, "saxpy")
		case KernelNumArgs:
			return putInfoUint32(size, value, sizeRet, 4)
		}
		return InvalidValue
	}

	clEnqueueWriteBuffer = func(queue QueueID, buffer MemID, blocking bool, offset, size uintptr, ptr unsafe.Pointer, numWait uint32, waitList *EventID, event *EventID) Status {
		if status, failed := f.check("clEnqueueWriteBuffer"); failed {
			return status
		}
		copy(f.bufs[buffer][offset:], unsafe.Slice((*byte)(ptr), size))
		if event != nil {
			*event = EventID(f.alloc())
		}
		return Success
	}
	clEnqueueReadBuffer = func(queue QueueID, buffer MemID, blocking bool, offset, size uintptr, ptr unsafe.Pointer, numWait uint32, waitList *EventID, event *EventID) Status {
		if status, failed := f.check("clEnqueueReadBuffer"); failed {
			return status
		}
		copy(unsafe.Slice((*byte)(ptr), size), f.bufs[buffer][offset:])
		if event != nil {
			*event = EventID(f.alloc())
		}
		return Success
	}
	clEnqueueNDRangeKernel = func(queue QueueID, kernel KernelID, workDim uint32, globalOffset, globalSize, localSize *uintptr, numWait uint32, waitList *EventID, event *EventID) Status {
		if status, failed := f.check("clEnqueueNDRangeKernel"); failed {
			return status
		}
		f.lastWorkDim = workDim
		f.lastGlobalSize = append([]uintptr(nil), unsafe.Slice(globalSize, workDim)...)
		if event != nil {
			*event = EventID(f.alloc())
		}
		return Success
	}

	clCreateUserEvent = func(context ContextID, errRet *Status) EventID {
		status, failed := f.check("clCreateUserEvent")
		if failed {
			*errRet = status
			return 0
		}
		*errRet = Success
		return EventID(f.alloc())
	}
	clRetainEvent = func(event EventID) Status { return f.retain("clRetainEvent", uintptr(event)) }
	clReleaseEvent = func(event EventID) Status { return f.release("clReleaseEvent", uintptr(event)) }
	clWaitForEvents = func(numEvents uint32, events *EventID) Status {
		status, _ := f.check("clWaitForEvents")
		return status
	}
	clSetUserEventStatus = func(event EventID, status int32) Status {
		st, _ := f.check("clSetUserEventStatus")
		return st
	}
	clSetEventCallback = func(event EventID, callbackType int32, notify uintptr) Status {
		if status, failed := f.check("clSetEventCallback"); failed {
			return status
		}
		invokeEventNotify(notify, callbackType)
		return Success
	}
	clGetEventProfilingInfo = func(event EventID, param ProfilingInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		if status, failed := f.check("clGetEventProfilingInfo"); failed {
			return status
		}
		switch param {
		case ProfilingCommandStart:
			return putInfoUint64(size, value, sizeRet, 1000)
		case ProfilingCommandEnd:
			return putInfoUint64(size, value, sizeRet, 4500)
		}
		return putInfoUint64(size, value, sizeRet, 0)
	}
	clGetEventInfo = func(event EventID, param EventInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		if status, failed := f.check("clGetEventInfo"); failed {
			return status
		}
		if param == EventExecutionStatus {
			return putInfoUint32(size, value, sizeRet, uint32(Complete))
		}
		return InvalidValue
	}

	clCreateSampler = func(context ContextID, normalizedCoords bool, addressing AddressingMode, filter FilterMode, errRet *Status) SamplerID {
		status, failed := f.check("clCreateSampler")
		if failed {
			*errRet = status
			return 0
		}
		*errRet = Success
		return SamplerID(f.alloc())
	}
	clRetainSampler = func(sampler SamplerID) Status { return f.retain("clRetainSampler", uintptr(sampler)) }
	clReleaseSampler = func(sampler SamplerID) Status { return f.release("clReleaseSampler", uintptr(sampler)) }
}

// dispatchState snapshots every baseline table entry so tests can restore it.
type dispatchState struct {
	getPlatformIDs          func(uint32, *PlatformID, *uint32) Status
	getPlatformInfo         func(PlatformID, PlatformInfo, uintptr, unsafe.Pointer, *uintptr) Status
	getDeviceIDs            func(PlatformID, DeviceType, uint32, *DeviceID, *uint32) Status
	getDeviceInfo           func(DeviceID, DeviceInfo, uintptr, unsafe.Pointer, *uintptr) Status
	createSubDevices        func(DeviceID, *DevicePartitionProperty, uint32, *DeviceID, *uint32) Status
	retainDevice            func(DeviceID) Status
	releaseDevice           func(DeviceID) Status
	createContext           func(*ContextProperty, uint32, *DeviceID, uintptr, *Status) ContextID
	createContextFromType   func(*ContextProperty, DeviceType, uintptr, *Status) ContextID
	retainContext           func(ContextID) Status
	releaseContext          func(ContextID) Status
	getContextInfo          func(ContextID, ContextInfo, uintptr, unsafe.Pointer, *uintptr) Status
	createCommandQueue      func(ContextID, DeviceID, QueueProperties, *Status) QueueID
	retainCommandQueue      func(QueueID) Status
	releaseCommandQueue     func(QueueID) Status
	getCommandQueueInfo     func(QueueID, QueueInfo, uintptr, unsafe.Pointer, *uintptr) Status
	flush                   func(QueueID) Status
	finish                  func(QueueID) Status
	createBuffer            func(ContextID, MemFlags, uintptr, unsafe.Pointer, *Status) MemID
	retainMemObject         func(MemID) Status
	releaseMemObject        func(MemID) Status
	getMemObjectInfo        func(MemID, MemInfo, uintptr, unsafe.Pointer, *uintptr) Status
	setMemDestructor        func(MemID, uintptr) Status
	createProgramWithSource func(ContextID, uint32, **byte, *uintptr, *Status) ProgramID
	retainProgram           func(ProgramID) Status
	releaseProgram          func(ProgramID) Status
	buildProgram            func(ProgramID, uint32, *DeviceID, *byte, uintptr) Status
	getProgramInfo          func(ProgramID, ProgramInfo, uintptr, unsafe.Pointer, *uintptr) Status
	getProgramBuildInfo     func(ProgramID, DeviceID, ProgramBuildInfo, uintptr, unsafe.Pointer, *uintptr) Status
	createKernel            func(ProgramID, *byte, *Status) KernelID
	retainKernel            func(KernelID) Status
	releaseKernel           func(KernelID) Status
	setKernelArg            func(KernelID, uint32, uintptr, unsafe.Pointer) Status
	getKernelInfo           func(KernelID, KernelInfo, uintptr, unsafe.Pointer, *uintptr) Status
	enqueueReadBuffer       func(QueueID, MemID, bool, uintptr, uintptr, unsafe.Pointer, uint32, *EventID, *EventID) Status
	enqueueWriteBuffer      func(QueueID, MemID, bool, uintptr, uintptr, unsafe.Pointer, uint32, *EventID, *EventID) Status
	enqueueNDRangeKernel    func(QueueID, KernelID, uint32, *uintptr, *uintptr, *uintptr, uint32, *EventID, *EventID) Status
	createUserEvent         func(ContextID, *Status) EventID
	retainEvent             func(EventID) Status
	releaseEvent            func(EventID) Status
	waitForEvents           func(uint32, *EventID) Status
	setUserEventStatus      func(EventID, int32) Status
	setEventCallback        func(EventID, int32, uintptr) Status
	getEventProfilingInfo   func(EventID, ProfilingInfo, uintptr, unsafe.Pointer, *uintptr) Status
	getEventInfo            func(EventID, EventInfo, uintptr, unsafe.Pointer, *uintptr) Status
	createSampler           func(ContextID, bool, AddressingMode, FilterMode, *Status) SamplerID
	retainSampler           func(SamplerID) Status
	releaseSampler          func(SamplerID) Status
}

func saveDispatch() dispatchState {
	return dispatchState{
		getPlatformIDs:          clGetPlatformIDs,
		getPlatformInfo:         clGetPlatformInfo,
		getDeviceIDs:            clGetDeviceIDs,
		getDeviceInfo:           clGetDeviceInfo,
		createSubDevices:        clCreateSubDevices,
		retainDevice:            clRetainDevice,
		releaseDevice:           clReleaseDevice,
		createContext:           clCreateContext,
		createContextFromType:   clCreateContextFromType,
		retainContext:           clRetainContext,
		releaseContext:          clReleaseContext,
		getContextInfo:          clGetContextInfo,
		createCommandQueue:      clCreateCommandQueue,
		retainCommandQueue:      clRetainCommandQueue,
		releaseCommandQueue:     clReleaseCommandQueue,
		getCommandQueueInfo:     clGetCommandQueueInfo,
		flush:                   clFlush,
		finish:                  clFinish,
		createBuffer:            clCreateBuffer,
		retainMemObject:         clRetainMemObject,
		releaseMemObject:        clReleaseMemObject,
		getMemObjectInfo:        clGetMemObjectInfo,
		setMemDestructor:        clSetMemObjectDestructorCallback,
		createProgramWithSource: clCreateProgramWithSource,
		retainProgram:           clRetainProgram,
		releaseProgram:          clReleaseProgram,
		buildProgram:            clBuildProgram,
		getProgramInfo:          clGetProgramInfo,
		getProgramBuildInfo:     clGetProgramBuildInfo,
		createKernel:            clCreateKernel,
		retainKernel:            clRetainKernel,
		releaseKernel:           clReleaseKernel,
		setKernelArg:            clSetKernelArg,
		getKernelInfo:           clGetKernelInfo,
		enqueueReadBuffer:       clEnqueueReadBuffer,
		enqueueWriteBuffer:      clEnqueueWriteBuffer,
		enqueueNDRangeKernel:    clEnqueueNDRangeKernel,
		createUserEvent:         clCreateUserEvent,
		retainEvent:             clRetainEvent,
		releaseEvent:            clReleaseEvent,
		waitForEvents:           clWaitForEvents,
		setUserEventStatus:      clSetUserEventStatus,
		setEventCallback:        clSetEventCallback,
		getEventProfilingInfo:   clGetEventProfilingInfo,
		getEventInfo:            clGetEventInfo,
		createSampler:           clCreateSampler,
		retainSampler:           clRetainSampler,
		releaseSampler:          clReleaseSampler,
	}
}

func restoreDispatch(s dispatchState) {
	clGetPlatformIDs = s.getPlatformIDs
	clGetPlatformInfo = s.getPlatformInfo
	clGetDeviceIDs = s.getDeviceIDs
	clGetDeviceInfo = s.getDeviceInfo
	clCreateSubDevices = s.createSubDevices
	clRetainDevice = s.retainDevice
	clReleaseDevice = s.releaseDevice
	clCreateContext = s.createContext
	clCreateContextFromType = s.createContextFromType
	clRetainContext = s.retainContext
	clReleaseContext = s.releaseContext
	clGetContextInfo = s.getContextInfo
	clCreateCommandQueue = s.createCommandQueue
	clRetainCommandQueue = s.retainCommandQueue
	clReleaseCommandQueue = s.releaseCommandQueue
	clGetCommandQueueInfo = s.getCommandQueueInfo
	clFlush = s.flush
	clFinish = s.finish
	clCreateBuffer = s.createBuffer
	clRetainMemObject = s.retainMemObject
	clReleaseMemObject = s.releaseMemObject
	clGetMemObjectInfo = s.getMemObjectInfo
	clSetMemObjectDestructorCallback = s.setMemDestructor
	clCreateProgramWithSource = s.createProgramWithSource
	clRetainProgram = s.retainProgram
	clReleaseProgram = s.releaseProgram
	clBuildProgram = s.buildProgram
	clGetProgramInfo = s.getProgramInfo
	clGetProgramBuildInfo = s.getProgramBuildInfo
	clCreateKernel = s.createKernel
	clRetainKernel = s.retainKernel
	clReleaseKernel = s.releaseKernel
	clSetKernelArg = s.setKernelArg
	clGetKernelInfo = s.getKernelInfo
	clEnqueueReadBuffer = s.enqueueReadBuffer
	clEnqueueWriteBuffer = s.enqueueWriteBuffer
	clEnqueueNDRangeKernel = s.enqueueNDRangeKernel
	clCreateUserEvent = s.createUserEvent
	clRetainEvent = s.retainEvent
	clReleaseEvent = s.releaseEvent
	clWaitForEvents = s.waitForEvents
	clSetUserEventStatus = s.setUserEventStatus
	clSetEventCallback = s.setEventCallback
	clGetEventProfilingInfo = s.getEventProfilingInfo
	clGetEventInfo = s.getEventInfo
	clCreateSampler = s.createSampler
	clRetainSampler = s.retainSampler
	clReleaseSampler = s.releaseSampler
}
