//go:build cl
// +build cl

package cl

/*
#cgo CFLAGS: -DCL_TARGET_OPENCL_VERSION=300 -DCL_USE_DEPRECATED_OPENCL_1_2_APIS
#cgo linux LDFLAGS: -lOpenCL
#cgo windows LDFLAGS: -lOpenCL
#cgo darwin LDFLAGS: -framework OpenCL

#ifdef __APPLE__
#include <OpenCL/opencl.h>
#else
#include <CL/cl.h>
#endif
#include <stdlib.h>
#include <stdint.h>

// Trampolines bounce driver callbacks into exported Go functions, carrying
// the callback registry id through user_data so no Go pointer crosses the
// boundary.
extern void goclContextNotify(char *errinfo, void *private_info, size_t cb, void *user_data);
extern void goclBuildNotify(cl_program program, void *user_data);
extern void goclObjectDestructor(void *user_data);
extern void goclEventNotify(cl_event event, cl_int status, void *user_data);

static void gocl_context_notify_tramp(const char *errinfo, const void *private_info, size_t cb, void *user_data) {
	goclContextNotify((char *)errinfo, (void *)private_info, cb, user_data);
}

static void gocl_build_notify_tramp(cl_program program, void *user_data) {
	goclBuildNotify(program, user_data);
}

static void gocl_mem_destructor_tramp(cl_mem mem, void *user_data) {
	(void)mem;
	goclObjectDestructor(user_data);
}

static void gocl_event_notify_tramp(cl_event event, cl_int status, void *user_data) {
	goclEventNotify(event, status, user_data);
}

static cl_context gocl_create_context(const cl_context_properties *props, cl_uint num_devices,
		const cl_device_id *devices, uintptr_t notify, cl_int *err) {
	if (notify != 0) {
		return clCreateContext(props, num_devices, devices, gocl_context_notify_tramp, (void *)notify, err);
	}
	return clCreateContext(props, num_devices, devices, NULL, NULL, err);
}

static cl_context gocl_create_context_from_type(const cl_context_properties *props, cl_device_type type,
		uintptr_t notify, cl_int *err) {
	if (notify != 0) {
		return clCreateContextFromType(props, type, gocl_context_notify_tramp, (void *)notify, err);
	}
	return clCreateContextFromType(props, type, NULL, NULL, err);
}

static cl_int gocl_build_program(cl_program program, cl_uint num_devices, const cl_device_id *devices,
		const char *options, uintptr_t notify) {
	if (notify != 0) {
		return clBuildProgram(program, num_devices, devices, options, gocl_build_notify_tramp, (void *)notify);
	}
	return clBuildProgram(program, num_devices, devices, options, NULL, NULL);
}

static cl_int gocl_compile_program(cl_program program, cl_uint num_devices, const cl_device_id *devices,
		const char *options, cl_uint num_headers, const cl_program *headers, const char **header_names,
		uintptr_t notify) {
	if (notify != 0) {
		return clCompileProgram(program, num_devices, devices, options, num_headers, headers, header_names,
			gocl_build_notify_tramp, (void *)notify);
	}
	return clCompileProgram(program, num_devices, devices, options, num_headers, headers, header_names, NULL, NULL);
}

static cl_program gocl_link_program(cl_context context, cl_uint num_devices, const cl_device_id *devices,
		const char *options, cl_uint num_programs, const cl_program *programs, uintptr_t notify, cl_int *err) {
	if (notify != 0) {
		return clLinkProgram(context, num_devices, devices, options, num_programs, programs,
			gocl_build_notify_tramp, (void *)notify, err);
	}
	return clLinkProgram(context, num_devices, devices, options, num_programs, programs, NULL, NULL, err);
}

static cl_int gocl_set_mem_destructor(cl_mem mem, uintptr_t notify) {
	return clSetMemObjectDestructorCallback(mem, gocl_mem_destructor_tramp, (void *)notify);
}

static cl_int gocl_set_event_callback(cl_event event, cl_int type, uintptr_t notify) {
	return clSetEventCallback(event, type, gocl_event_notify_tramp, (void *)notify);
}
*/
import "C"
import "unsafe"

func clBool(b bool) C.cl_bool {
	if b {
		return C.CL_TRUE
	}
	return C.CL_FALSE
}

// cMalloc-based copies keep Go pointers out of the pointer arrays that
// clCreateProgramWith* and clCompileProgram take, per the cgo pointer rules.
func cStrings(count uint32, strs **byte, lengths *uintptr) ([]*C.char, func()) {
	n := int(count)
	ptrs := unsafe.Slice(strs, n)
	lens := unsafe.Slice(lengths, n)
	out := make([]*C.char, n)
	for i := 0; i < n; i++ {
		out[i] = (*C.char)(C.CBytes(unsafe.Slice(ptrs[i], lens[i])))
	}
	return out, func() {
		for _, p := range out {
			C.free(unsafe.Pointer(p))
		}
	}
}

func init() {
	clGetPlatformIDs = func(numEntries uint32, platforms *PlatformID, numPlatforms *uint32) Status {
		return Status(C.clGetPlatformIDs(C.cl_uint(numEntries),
			(*C.cl_platform_id)(unsafe.Pointer(platforms)), (*C.cl_uint)(unsafe.Pointer(numPlatforms))))
	}
	clGetPlatformInfo = func(platform PlatformID, param PlatformInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return Status(C.clGetPlatformInfo(C.cl_platform_id(unsafe.Pointer(platform)), C.cl_platform_info(param),
			C.size_t(size), value, (*C.size_t)(unsafe.Pointer(sizeRet))))
	}

	clGetDeviceIDs = func(platform PlatformID, deviceType DeviceType, numEntries uint32, devices *DeviceID, numDevices *uint32) Status {
		return Status(C.clGetDeviceIDs(C.cl_platform_id(unsafe.Pointer(platform)), C.cl_device_type(deviceType),
			C.cl_uint(numEntries), (*C.cl_device_id)(unsafe.Pointer(devices)), (*C.cl_uint)(unsafe.Pointer(numDevices))))
	}
	clGetDeviceInfo = func(device DeviceID, param DeviceInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return Status(C.clGetDeviceInfo(C.cl_device_id(unsafe.Pointer(device)), C.cl_device_info(param),
			C.size_t(size), value, (*C.size_t)(unsafe.Pointer(sizeRet))))
	}
	clCreateSubDevices = func(device DeviceID, properties *DevicePartitionProperty, numDevices uint32, outDevices *DeviceID, numRet *uint32) Status {
		return Status(C.clCreateSubDevices(C.cl_device_id(unsafe.Pointer(device)),
			(*C.cl_device_partition_property)(unsafe.Pointer(properties)), C.cl_uint(numDevices),
			(*C.cl_device_id)(unsafe.Pointer(outDevices)), (*C.cl_uint)(unsafe.Pointer(numRet))))
	}
	clRetainDevice = func(device DeviceID) Status {
		return Status(C.clRetainDevice(C.cl_device_id(unsafe.Pointer(device))))
	}
	clReleaseDevice = func(device DeviceID) Status {
		return Status(C.clReleaseDevice(C.cl_device_id(unsafe.Pointer(device))))
	}

	clCreateContext = func(properties *ContextProperty, numDevices uint32, devices *DeviceID, notify uintptr, errRet *Status) ContextID {
		id := C.gocl_create_context((*C.cl_context_properties)(unsafe.Pointer(properties)), C.cl_uint(numDevices),
			(*C.cl_device_id)(unsafe.Pointer(devices)), C.uintptr_t(notify), (*C.cl_int)(unsafe.Pointer(errRet)))
		return ContextID(uintptr(unsafe.Pointer(id)))
	}
	clCreateContextFromType = func(properties *ContextProperty, deviceType DeviceType, notify uintptr, errRet *Status) ContextID {
		id := C.gocl_create_context_from_type((*C.cl_context_properties)(unsafe.Pointer(properties)),
			C.cl_device_type(deviceType), C.uintptr_t(notify), (*C.cl_int)(unsafe.Pointer(errRet)))
		return ContextID(uintptr(unsafe.Pointer(id)))
	}
	clRetainContext = func(context ContextID) Status {
		return Status(C.clRetainContext(C.cl_context(unsafe.Pointer(context))))
	}
	clReleaseContext = func(context ContextID) Status {
		return Status(C.clReleaseContext(C.cl_context(unsafe.Pointer(context))))
	}
	clGetContextInfo = func(context ContextID, param ContextInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return Status(C.clGetContextInfo(C.cl_context(unsafe.Pointer(context)), C.cl_context_info(param),
			C.size_t(size), value, (*C.size_t)(unsafe.Pointer(sizeRet))))
	}

	clCreateCommandQueue = func(context ContextID, device DeviceID, properties QueueProperties, errRet *Status) QueueID {
		id := C.clCreateCommandQueue(C.cl_context(unsafe.Pointer(context)), C.cl_device_id(unsafe.Pointer(device)),
			C.cl_command_queue_properties(properties), (*C.cl_int)(unsafe.Pointer(errRet)))
		return QueueID(uintptr(unsafe.Pointer(id)))
	}
	clRetainCommandQueue = func(queue QueueID) Status {
		return Status(C.clRetainCommandQueue(C.cl_command_queue(unsafe.Pointer(queue))))
	}
	clReleaseCommandQueue = func(queue QueueID) Status {
		return Status(C.clReleaseCommandQueue(C.cl_command_queue(unsafe.Pointer(queue))))
	}
	clGetCommandQueueInfo = func(queue QueueID, param QueueInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return Status(C.clGetCommandQueueInfo(C.cl_command_queue(unsafe.Pointer(queue)), C.cl_command_queue_info(param),
			C.size_t(size), value, (*C.size_t)(unsafe.Pointer(sizeRet))))
	}
	clFlush = func(queue QueueID) Status {
		return Status(C.clFlush(C.cl_command_queue(unsafe.Pointer(queue))))
	}
	clFinish = func(queue QueueID) Status {
		return Status(C.clFinish(C.cl_command_queue(unsafe.Pointer(queue))))
	}

	clCreateBuffer = func(context ContextID, flags MemFlags, size uintptr, hostPtr unsafe.Pointer, errRet *Status) MemID {
		id := C.clCreateBuffer(C.cl_context(unsafe.Pointer(context)), C.cl_mem_flags(flags), C.size_t(size),
			hostPtr, (*C.cl_int)(unsafe.Pointer(errRet)))
		return MemID(uintptr(unsafe.Pointer(id)))
	}
	clCreateSubBuffer = func(buffer MemID, flags MemFlags, origin, size uintptr, errRet *Status) MemID {
		region := C.cl_buffer_region{origin: C.size_t(origin), size: C.size_t(size)}
		id := C.clCreateSubBuffer(C.cl_mem(unsafe.Pointer(buffer)), C.cl_mem_flags(flags),
			C.CL_BUFFER_CREATE_TYPE_REGION, unsafe.Pointer(&region), (*C.cl_int)(unsafe.Pointer(errRet)))
		return MemID(uintptr(unsafe.Pointer(id)))
	}
	clCreateImage = func(context ContextID, flags MemFlags, format *ImageFormat, desc *ImageDesc, hostPtr unsafe.Pointer, errRet *Status) MemID {
		id := C.clCreateImage(C.cl_context(unsafe.Pointer(context)), C.cl_mem_flags(flags),
			(*C.cl_image_format)(unsafe.Pointer(format)), (*C.cl_image_desc)(unsafe.Pointer(desc)),
			hostPtr, (*C.cl_int)(unsafe.Pointer(errRet)))
		return MemID(uintptr(unsafe.Pointer(id)))
	}
	clRetainMemObject = func(mem MemID) Status {
		return Status(C.clRetainMemObject(C.cl_mem(unsafe.Pointer(mem))))
	}
	clReleaseMemObject = func(mem MemID) Status {
		return Status(C.clReleaseMemObject(C.cl_mem(unsafe.Pointer(mem))))
	}
	clGetMemObjectInfo = func(mem MemID, param MemInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return Status(C.clGetMemObjectInfo(C.cl_mem(unsafe.Pointer(mem)), C.cl_mem_info(param),
			C.size_t(size), value, (*C.size_t)(unsafe.Pointer(sizeRet))))
	}
	clGetImageInfo = func(mem MemID, param ImageInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return Status(C.clGetImageInfo(C.cl_mem(unsafe.Pointer(mem)), C.cl_image_info(param),
			C.size_t(size), value, (*C.size_t)(unsafe.Pointer(sizeRet))))
	}
	clGetSupportedImageFormats = func(context ContextID, flags MemFlags, imageType MemObjectType, numEntries uint32, formats *ImageFormat, numRet *uint32) Status {
		return Status(C.clGetSupportedImageFormats(C.cl_context(unsafe.Pointer(context)), C.cl_mem_flags(flags),
			C.cl_mem_object_type(imageType), C.cl_uint(numEntries),
			(*C.cl_image_format)(unsafe.Pointer(formats)), (*C.cl_uint)(unsafe.Pointer(numRet))))
	}
	clSetMemObjectDestructorCallback = func(mem MemID, notify uintptr) Status {
		return Status(C.gocl_set_mem_destructor(C.cl_mem(unsafe.Pointer(mem)), C.uintptr_t(notify)))
	}

	clCreateSampler = func(context ContextID, normalizedCoords bool, addressing AddressingMode, filter FilterMode, errRet *Status) SamplerID {
		id := C.clCreateSampler(C.cl_context(unsafe.Pointer(context)), clBool(normalizedCoords),
			C.cl_addressing_mode(addressing), C.cl_filter_mode(filter), (*C.cl_int)(unsafe.Pointer(errRet)))
		return SamplerID(uintptr(unsafe.Pointer(id)))
	}
	clRetainSampler = func(sampler SamplerID) Status {
		return Status(C.clRetainSampler(C.cl_sampler(unsafe.Pointer(sampler))))
	}
	clReleaseSampler = func(sampler SamplerID) Status {
		return Status(C.clReleaseSampler(C.cl_sampler(unsafe.Pointer(sampler))))
	}
	clGetSamplerInfo = func(sampler SamplerID, param SamplerInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return Status(C.clGetSamplerInfo(C.cl_sampler(unsafe.Pointer(sampler)), C.cl_sampler_info(param),
			C.size_t(size), value, (*C.size_t)(unsafe.Pointer(sizeRet))))
	}

	clCreateProgramWithSource = func(context ContextID, count uint32, strs **byte, lengths *uintptr, errRet *Status) ProgramID {
		cstrs, free := cStrings(count, strs, lengths)
		defer free()
		lens := make([]C.size_t, count)
		for i, l := range unsafe.Slice(lengths, count) {
			lens[i] = C.size_t(l)
		}
		id := C.clCreateProgramWithSource(C.cl_context(unsafe.Pointer(context)), C.cl_uint(count),
			&cstrs[0], &lens[0], (*C.cl_int)(unsafe.Pointer(errRet)))
		return ProgramID(uintptr(unsafe.Pointer(id)))
	}
	clCreateProgramWithBinary = func(context ContextID, numDevices uint32, devices *DeviceID, lengths *uintptr, binaries **byte, binaryStatus *Status, errRet *Status) ProgramID {
		cbins, free := cStrings(numDevices, binaries, lengths)
		defer free()
		lens := make([]C.size_t, numDevices)
		for i, l := range unsafe.Slice(lengths, numDevices) {
			lens[i] = C.size_t(l)
		}
		id := C.clCreateProgramWithBinary(C.cl_context(unsafe.Pointer(context)), C.cl_uint(numDevices),
			(*C.cl_device_id)(unsafe.Pointer(devices)), &lens[0], (**C.uchar)(unsafe.Pointer(&cbins[0])),
			(*C.cl_int)(unsafe.Pointer(binaryStatus)), (*C.cl_int)(unsafe.Pointer(errRet)))
		return ProgramID(uintptr(unsafe.Pointer(id)))
	}
	clCreateProgramWithBuiltInKernels = func(context ContextID, numDevices uint32, devices *DeviceID, kernelNames *byte, errRet *Status) ProgramID {
		id := C.clCreateProgramWithBuiltInKernels(C.cl_context(unsafe.Pointer(context)), C.cl_uint(numDevices),
			(*C.cl_device_id)(unsafe.Pointer(devices)), (*C.char)(unsafe.Pointer(kernelNames)),
			(*C.cl_int)(unsafe.Pointer(errRet)))
		return ProgramID(uintptr(unsafe.Pointer(id)))
	}
	clRetainProgram = func(program ProgramID) Status {
		return Status(C.clRetainProgram(C.cl_program(unsafe.Pointer(program))))
	}
	clReleaseProgram = func(program ProgramID) Status {
		return Status(C.clReleaseProgram(C.cl_program(unsafe.Pointer(program))))
	}
	clBuildProgram = func(program ProgramID, numDevices uint32, devices *DeviceID, options *byte, notify uintptr) Status {
		return Status(C.gocl_build_program(C.cl_program(unsafe.Pointer(program)), C.cl_uint(numDevices),
			(*C.cl_device_id)(unsafe.Pointer(devices)), (*C.char)(unsafe.Pointer(options)), C.uintptr_t(notify)))
	}
	clCompileProgram = func(program ProgramID, numDevices uint32, devices *DeviceID, options *byte, numHeaders uint32, headers *ProgramID, headerNames **byte, notify uintptr) Status {
		var cnames **C.char
		var freeNames func()
		if numHeaders > 0 {
			names := unsafe.Slice(headerNames, numHeaders)
			lens := make([]uintptr, numHeaders)
			for i, p := range names {
				n := uintptr(0)
				for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
					n++
				}
				lens[i] = n + 1
			}
			arr, free := cStrings(numHeaders, headerNames, &lens[0])
			cnames = &arr[0]
			freeNames = free
			defer freeNames()
		}
		return Status(C.gocl_compile_program(C.cl_program(unsafe.Pointer(program)), C.cl_uint(numDevices),
			(*C.cl_device_id)(unsafe.Pointer(devices)), (*C.char)(unsafe.Pointer(options)),
			C.cl_uint(numHeaders), (*C.cl_program)(unsafe.Pointer(headers)), cnames, C.uintptr_t(notify)))
	}
	clLinkProgram = func(context ContextID, numDevices uint32, devices *DeviceID, options *byte, numPrograms uint32, programs *ProgramID, notify uintptr, errRet *Status) ProgramID {
		id := C.gocl_link_program(C.cl_context(unsafe.Pointer(context)), C.cl_uint(numDevices),
			(*C.cl_device_id)(unsafe.Pointer(devices)), (*C.char)(unsafe.Pointer(options)),
			C.cl_uint(numPrograms), (*C.cl_program)(unsafe.Pointer(programs)), C.uintptr_t(notify),
			(*C.cl_int)(unsafe.Pointer(errRet)))
		return ProgramID(uintptr(unsafe.Pointer(id)))
	}
	clUnloadPlatformCompiler = func(platform PlatformID) Status {
		return Status(C.clUnloadPlatformCompiler(C.cl_platform_id(unsafe.Pointer(platform))))
	}
	clGetProgramInfo = func(program ProgramID, param ProgramInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return Status(C.clGetProgramInfo(C.cl_program(unsafe.Pointer(program)), C.cl_program_info(param),
			C.size_t(size), value, (*C.size_t)(unsafe.Pointer(sizeRet))))
	}
	clGetProgramBuildInfo = func(program ProgramID, device DeviceID, param ProgramBuildInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return Status(C.clGetProgramBuildInfo(C.cl_program(unsafe.Pointer(program)), C.cl_device_id(unsafe.Pointer(device)),
			C.cl_program_build_info(param), C.size_t(size), value, (*C.size_t)(unsafe.Pointer(sizeRet))))
	}

	clCreateKernel = func(program ProgramID, name *byte, errRet *Status) KernelID {
		id := C.clCreateKernel(C.cl_program(unsafe.Pointer(program)), (*C.char)(unsafe.Pointer(name)),
			(*C.cl_int)(unsafe.Pointer(errRet)))
		return KernelID(uintptr(unsafe.Pointer(id)))
	}
	clCreateKernelsInProgram = func(program ProgramID, numKernels uint32, kernels *KernelID, numRet *uint32) Status {
		return Status(C.clCreateKernelsInProgram(C.cl_program(unsafe.Pointer(program)), C.cl_uint(numKernels),
			(*C.cl_kernel)(unsafe.Pointer(kernels)), (*C.cl_uint)(unsafe.Pointer(numRet))))
	}
	clRetainKernel = func(kernel KernelID) Status {
		return Status(C.clRetainKernel(C.cl_kernel(unsafe.Pointer(kernel))))
	}
	clReleaseKernel = func(kernel KernelID) Status {
		return Status(C.clReleaseKernel(C.cl_kernel(unsafe.Pointer(kernel))))
	}
	clSetKernelArg = func(kernel KernelID, index uint32, size uintptr, value unsafe.Pointer) Status {
		return Status(C.clSetKernelArg(C.cl_kernel(unsafe.Pointer(kernel)), C.cl_uint(index), C.size_t(size), value))
	}
	clGetKernelInfo = func(kernel KernelID, param KernelInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return Status(C.clGetKernelInfo(C.cl_kernel(unsafe.Pointer(kernel)), C.cl_kernel_info(param),
			C.size_t(size), value, (*C.size_t)(unsafe.Pointer(sizeRet))))
	}
	clGetKernelArgInfo = func(kernel KernelID, index uint32, param KernelArgInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return Status(C.clGetKernelArgInfo(C.cl_kernel(unsafe.Pointer(kernel)), C.cl_uint(index),
			C.cl_kernel_arg_info(param), C.size_t(size), value, (*C.size_t)(unsafe.Pointer(sizeRet))))
	}
	clGetKernelWorkGroupInfo = func(kernel KernelID, device DeviceID, param KernelWorkGroupInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return Status(C.clGetKernelWorkGroupInfo(C.cl_kernel(unsafe.Pointer(kernel)), C.cl_device_id(unsafe.Pointer(device)),
			C.cl_kernel_work_group_info(param), C.size_t(size), value, (*C.size_t)(unsafe.Pointer(sizeRet))))
	}

	clWaitForEvents = func(numEvents uint32, events *EventID) Status {
		return Status(C.clWaitForEvents(C.cl_uint(numEvents), (*C.cl_event)(unsafe.Pointer(events))))
	}
	clGetEventInfo = func(event EventID, param EventInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return Status(C.clGetEventInfo(C.cl_event(unsafe.Pointer(event)), C.cl_event_info(param),
			C.size_t(size), value, (*C.size_t)(unsafe.Pointer(sizeRet))))
	}
	clCreateUserEvent = func(context ContextID, errRet *Status) EventID {
		id := C.clCreateUserEvent(C.cl_context(unsafe.Pointer(context)), (*C.cl_int)(unsafe.Pointer(errRet)))
		return EventID(uintptr(unsafe.Pointer(id)))
	}
	clRetainEvent = func(event EventID) Status {
		return Status(C.clRetainEvent(C.cl_event(unsafe.Pointer(event))))
	}
	clReleaseEvent = func(event EventID) Status {
		return Status(C.clReleaseEvent(C.cl_event(unsafe.Pointer(event))))
	}
	clSetUserEventStatus = func(event EventID, status int32) Status {
		return Status(C.clSetUserEventStatus(C.cl_event(unsafe.Pointer(event)), C.cl_int(status)))
	}
	clSetEventCallback = func(event EventID, callbackType int32, notify uintptr) Status {
		return Status(C.gocl_set_event_callback(C.cl_event(unsafe.Pointer(event)), C.cl_int(callbackType), C.uintptr_t(notify)))
	}
	clGetEventProfilingInfo = func(event EventID, param ProfilingInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return Status(C.clGetEventProfilingInfo(C.cl_event(unsafe.Pointer(event)), C.cl_profiling_info(param),
			C.size_t(size), value, (*C.size_t)(unsafe.Pointer(sizeRet))))
	}

	clEnqueueReadBuffer = func(queue QueueID, buffer MemID, blocking bool, offset, size uintptr, ptr unsafe.Pointer, numWait uint32, waitList *EventID, event *EventID) Status {
		return Status(C.clEnqueueReadBuffer(C.cl_command_queue(unsafe.Pointer(queue)), C.cl_mem(unsafe.Pointer(buffer)),
			clBool(blocking), C.size_t(offset), C.size_t(size), ptr,
			C.cl_uint(numWait), (*C.cl_event)(unsafe.Pointer(waitList)), (*C.cl_event)(unsafe.Pointer(event))))
	}
	clEnqueueWriteBuffer = func(queue QueueID, buffer MemID, blocking bool, offset, size uintptr, ptr unsafe.Pointer, numWait uint32, waitList *EventID, event *EventID) Status {
		return Status(C.clEnqueueWriteBuffer(C.cl_command_queue(unsafe.Pointer(queue)), C.cl_mem(unsafe.Pointer(buffer)),
			clBool(blocking), C.size_t(offset), C.size_t(size), ptr,
			C.cl_uint(numWait), (*C.cl_event)(unsafe.Pointer(waitList)), (*C.cl_event)(unsafe.Pointer(event))))
	}
	clEnqueueCopyBuffer = func(queue QueueID, src, dst MemID, srcOffset, dstOffset, size uintptr, numWait uint32, waitList *EventID, event *EventID) Status {
		return Status(C.clEnqueueCopyBuffer(C.cl_command_queue(unsafe.Pointer(queue)), C.cl_mem(unsafe.Pointer(src)),
			C.cl_mem(unsafe.Pointer(dst)), C.size_t(srcOffset), C.size_t(dstOffset), C.size_t(size),
			C.cl_uint(numWait), (*C.cl_event)(unsafe.Pointer(waitList)), (*C.cl_event)(unsafe.Pointer(event))))
	}
	clEnqueueFillBuffer = func(queue QueueID, buffer MemID, pattern unsafe.Pointer, patternSize, offset, size uintptr, numWait uint32, waitList *EventID, event *EventID) Status {
		return Status(C.clEnqueueFillBuffer(C.cl_command_queue(unsafe.Pointer(queue)), C.cl_mem(unsafe.Pointer(buffer)),
			pattern, C.size_t(patternSize), C.size_t(offset), C.size_t(size),
			C.cl_uint(numWait), (*C.cl_event)(unsafe.Pointer(waitList)), (*C.cl_event)(unsafe.Pointer(event))))
	}
	clEnqueueMapBuffer = func(queue QueueID, buffer MemID, blocking bool, flags MapFlags, offset, size uintptr, numWait uint32, waitList *EventID, event *EventID, errRet *Status) unsafe.Pointer {
		return C.clEnqueueMapBuffer(C.cl_command_queue(unsafe.Pointer(queue)), C.cl_mem(unsafe.Pointer(buffer)),
			clBool(blocking), C.cl_map_flags(flags), C.size_t(offset), C.size_t(size),
			C.cl_uint(numWait), (*C.cl_event)(unsafe.Pointer(waitList)), (*C.cl_event)(unsafe.Pointer(event)),
			(*C.cl_int)(unsafe.Pointer(errRet)))
	}
	clEnqueueUnmapMemObject = func(queue QueueID, mem MemID, ptr unsafe.Pointer, numWait uint32, waitList *EventID, event *EventID) Status {
		return Status(C.clEnqueueUnmapMemObject(C.cl_command_queue(unsafe.Pointer(queue)), C.cl_mem(unsafe.Pointer(mem)),
			ptr, C.cl_uint(numWait), (*C.cl_event)(unsafe.Pointer(waitList)), (*C.cl_event)(unsafe.Pointer(event))))
	}
	clEnqueueReadImage = func(queue QueueID, image MemID, blocking bool, origin, region *uintptr, rowPitch, slicePitch uintptr, ptr unsafe.Pointer, numWait uint32, waitList *EventID, event *EventID) Status {
		return Status(C.clEnqueueReadImage(C.cl_command_queue(unsafe.Pointer(queue)), C.cl_mem(unsafe.Pointer(image)),
			clBool(blocking), (*C.size_t)(unsafe.Pointer(origin)), (*C.size_t)(unsafe.Pointer(region)),
			C.size_t(rowPitch), C.size_t(slicePitch), ptr,
			C.cl_uint(numWait), (*C.cl_event)(unsafe.Pointer(waitList)), (*C.cl_event)(unsafe.Pointer(event))))
	}
	clEnqueueWriteImage = func(queue QueueID, image MemID, blocking bool, origin, region *uintptr, rowPitch, slicePitch uintptr, ptr unsafe.Pointer, numWait uint32, waitList *EventID, event *EventID) Status {
		return Status(C.clEnqueueWriteImage(C.cl_command_queue(unsafe.Pointer(queue)), C.cl_mem(unsafe.Pointer(image)),
			clBool(blocking), (*C.size_t)(unsafe.Pointer(origin)), (*C.size_t)(unsafe.Pointer(region)),
			C.size_t(rowPitch), C.size_t(slicePitch), ptr,
			C.cl_uint(numWait), (*C.cl_event)(unsafe.Pointer(waitList)), (*C.cl_event)(unsafe.Pointer(event))))
	}
	clEnqueueNDRangeKernel = func(queue QueueID, kernel KernelID, workDim uint32, globalOffset, globalSize, localSize *uintptr, numWait uint32, waitList *EventID, event *EventID) Status {
		return Status(C.clEnqueueNDRangeKernel(C.cl_command_queue(unsafe.Pointer(queue)), C.cl_kernel(unsafe.Pointer(kernel)),
			C.cl_uint(workDim), (*C.size_t)(unsafe.Pointer(globalOffset)), (*C.size_t)(unsafe.Pointer(globalSize)),
			(*C.size_t)(unsafe.Pointer(localSize)),
			C.cl_uint(numWait), (*C.cl_event)(unsafe.Pointer(waitList)), (*C.cl_event)(unsafe.Pointer(event))))
	}
	clEnqueueMarkerWithWaitList = func(queue QueueID, numWait uint32, waitList *EventID, event *EventID) Status {
		return Status(C.clEnqueueMarkerWithWaitList(C.cl_command_queue(unsafe.Pointer(queue)),
			C.cl_uint(numWait), (*C.cl_event)(unsafe.Pointer(waitList)), (*C.cl_event)(unsafe.Pointer(event))))
	}
	clEnqueueBarrierWithWaitList = func(queue QueueID, numWait uint32, waitList *EventID, event *EventID) Status {
		return Status(C.clEnqueueBarrierWithWaitList(C.cl_command_queue(unsafe.Pointer(queue)),
			C.cl_uint(numWait), (*C.cl_event)(unsafe.Pointer(waitList)), (*C.cl_event)(unsafe.Pointer(event))))
	}
}
