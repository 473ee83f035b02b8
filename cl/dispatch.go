package cl

import "unsafe"

// The binding reaches every native entry point through a package-level
// function variable mirroring the C signature. The variables are populated by
// the cgo files compiled under the "cl" build tag; version- and
// extension-gated entry points are declared next to the gated wrappers that
// use them, so a build without the matching tag carries neither the wrapper
// nor the symbol reference. Tests install pure-Go fakes.
//
// A nil variable means the entry point is not linked into this binary; the
// wrappers translate that into ErrDriverNotLoaded before touching the driver.
var (
	// Platform API.
	clGetPlatformIDs  func(numEntries uint32, platforms *PlatformID, numPlatforms *uint32) Status
	clGetPlatformInfo func(platform PlatformID, param PlatformInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status

	// Device API.
	clGetDeviceIDs     func(platform PlatformID, deviceType DeviceType, numEntries uint32, devices *DeviceID, numDevices *uint32) Status
	clGetDeviceInfo    func(device DeviceID, param DeviceInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status
	clCreateSubDevices func(device DeviceID, properties *DevicePartitionProperty, numDevices uint32, outDevices *DeviceID, numRet *uint32) Status
	clRetainDevice     func(device DeviceID) Status
	clReleaseDevice    func(device DeviceID) Status

	// Context API. notify is a callback registry id, zero when no callback
	// was supplied; the cgo layer wires it to the exported trampoline.
	clCreateContext         func(properties *ContextProperty, numDevices uint32, devices *DeviceID, notify uintptr, errRet *Status) ContextID
	clCreateContextFromType func(properties *ContextProperty, deviceType DeviceType, notify uintptr, errRet *Status) ContextID
	clRetainContext         func(context ContextID) Status
	clReleaseContext        func(context ContextID) Status
	clGetContextInfo        func(context ContextID, param ContextInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status

	// Command queue API (OpenCL 1.2 creation path).
	clCreateCommandQueue  func(context ContextID, device DeviceID, properties QueueProperties, errRet *Status) QueueID
	clRetainCommandQueue  func(queue QueueID) Status
	clReleaseCommandQueue func(queue QueueID) Status
	clGetCommandQueueInfo func(queue QueueID, param QueueInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status
	clFlush               func(queue QueueID) Status
	clFinish              func(queue QueueID) Status

	// Memory object API.
	clCreateBuffer                   func(context ContextID, flags MemFlags, size uintptr, hostPtr unsafe.Pointer, errRet *Status) MemID
	clCreateSubBuffer                func(buffer MemID, flags MemFlags, origin, size uintptr, errRet *Status) MemID
	clCreateImage                    func(context ContextID, flags MemFlags, format *ImageFormat, desc *ImageDesc, hostPtr unsafe.Pointer, errRet *Status) MemID
	clRetainMemObject                func(mem MemID) Status
	clReleaseMemObject               func(mem MemID) Status
	clGetMemObjectInfo               func(mem MemID, param MemInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status
	clGetImageInfo                   func(mem MemID, param ImageInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status
	clGetSupportedImageFormats       func(context ContextID, flags MemFlags, imageType MemObjectType, numEntries uint32, formats *ImageFormat, numRet *uint32) Status
	clSetMemObjectDestructorCallback func(mem MemID, notify uintptr) Status

	// Sampler API (OpenCL 1.2 creation path).
	clCreateSampler  func(context ContextID, normalizedCoords bool, addressing AddressingMode, filter FilterMode, errRet *Status) SamplerID
	clRetainSampler  func(sampler SamplerID) Status
	clReleaseSampler func(sampler SamplerID) Status
	clGetSamplerInfo func(sampler SamplerID, param SamplerInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status

	// Program API. notify is a callback registry id, zero for a blocking
	// build.
	clCreateProgramWithSource         func(context ContextID, count uint32, strings **byte, lengths *uintptr, errRet *Status) ProgramID
	clCreateProgramWithBinary         func(context ContextID, numDevices uint32, devices *DeviceID, lengths *uintptr, binaries **byte, binaryStatus *Status, errRet *Status) ProgramID
	clCreateProgramWithBuiltInKernels func(context ContextID, numDevices uint32, devices *DeviceID, kernelNames *byte, errRet *Status) ProgramID
	clRetainProgram                   func(program ProgramID) Status
	clReleaseProgram                  func(program ProgramID) Status
	clBuildProgram                    func(program ProgramID, numDevices uint32, devices *DeviceID, options *byte, notify uintptr) Status
	clCompileProgram                  func(program ProgramID, numDevices uint32, devices *DeviceID, options *byte, numHeaders uint32, headers *ProgramID, headerNames **byte, notify uintptr) Status
	clLinkProgram                     func(context ContextID, numDevices uint32, devices *DeviceID, options *byte, numPrograms uint32, programs *ProgramID, notify uintptr, errRet *Status) ProgramID
	clUnloadPlatformCompiler          func(platform PlatformID) Status
	clGetProgramInfo                  func(program ProgramID, param ProgramInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status
	clGetProgramBuildInfo             func(program ProgramID, device DeviceID, param ProgramBuildInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status

	// Kernel API.
	clCreateKernel           func(program ProgramID, name *byte, errRet *Status) KernelID
	clCreateKernelsInProgram func(program ProgramID, numKernels uint32, kernels *KernelID, numRet *uint32) Status
	clRetainKernel           func(kernel KernelID) Status
	clReleaseKernel          func(kernel KernelID) Status
	clSetKernelArg           func(kernel KernelID, index uint32, size uintptr, value unsafe.Pointer) Status
	clGetKernelInfo          func(kernel KernelID, param KernelInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status
	clGetKernelArgInfo       func(kernel KernelID, index uint32, param KernelArgInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status
	clGetKernelWorkGroupInfo func(kernel KernelID, device DeviceID, param KernelWorkGroupInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status

	// Event API.
	clWaitForEvents         func(numEvents uint32, events *EventID) Status
	clGetEventInfo          func(event EventID, param EventInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status
	clCreateUserEvent       func(context ContextID, errRet *Status) EventID
	clRetainEvent           func(event EventID) Status
	clReleaseEvent          func(event EventID) Status
	clSetUserEventStatus    func(event EventID, status int32) Status
	clSetEventCallback      func(event EventID, callbackType int32, notify uintptr) Status
	clGetEventProfilingInfo func(event EventID, param ProfilingInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status

	// Enqueue API.
	clEnqueueReadBuffer          func(queue QueueID, buffer MemID, blocking bool, offset, size uintptr, ptr unsafe.Pointer, numWait uint32, waitList *EventID, event *EventID) Status
	clEnqueueWriteBuffer         func(queue QueueID, buffer MemID, blocking bool, offset, size uintptr, ptr unsafe.Pointer, numWait uint32, waitList *EventID, event *EventID) Status
	clEnqueueCopyBuffer          func(queue QueueID, src, dst MemID, srcOffset, dstOffset, size uintptr, numWait uint32, waitList *EventID, event *EventID) Status
	clEnqueueFillBuffer          func(queue QueueID, buffer MemID, pattern unsafe.Pointer, patternSize, offset, size uintptr, numWait uint32, waitList *EventID, event *EventID) Status
	clEnqueueMapBuffer           func(queue QueueID, buffer MemID, blocking bool, flags MapFlags, offset, size uintptr, numWait uint32, waitList *EventID, event *EventID, errRet *Status) unsafe.Pointer
	clEnqueueUnmapMemObject      func(queue QueueID, mem MemID, ptr unsafe.Pointer, numWait uint32, waitList *EventID, event *EventID) Status
	clEnqueueReadImage           func(queue QueueID, image MemID, blocking bool, origin, region *uintptr, rowPitch, slicePitch uintptr, ptr unsafe.Pointer, numWait uint32, waitList *EventID, event *EventID) Status
	clEnqueueWriteImage          func(queue QueueID, image MemID, blocking bool, origin, region *uintptr, rowPitch, slicePitch uintptr, ptr unsafe.Pointer, numWait uint32, waitList *EventID, event *EventID) Status
	clEnqueueNDRangeKernel       func(queue QueueID, kernel KernelID, workDim uint32, globalOffset, globalSize, localSize *uintptr, numWait uint32, waitList *EventID, event *EventID) Status
	clEnqueueMarkerWithWaitList  func(queue QueueID, numWait uint32, waitList *EventID, event *EventID) Status
	clEnqueueBarrierWithWaitList func(queue QueueID, numWait uint32, waitList *EventID, event *EventID) Status
)

func eventArgs(waitList []*Event) (uint32, *EventID, error) {
	if len(waitList) == 0 {
		return 0, nil, nil
	}
	ids := make([]EventID, len(waitList))
	for i, e := range waitList {
		if err := e.guard(); err != nil {
			return 0, nil, err
		}
		ids[i] = e.id
	}
	return uint32(len(ids)), &ids[0], nil
}
