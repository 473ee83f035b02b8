//go:build cl && (cl20 || cl21 || cl22 || cl30)
// +build cl
// +build cl20 cl21 cl22 cl30

package cl

/*
#cgo CFLAGS: -DCL_TARGET_OPENCL_VERSION=300 -DCL_USE_DEPRECATED_OPENCL_1_2_APIS

#ifdef __APPLE__
#include <OpenCL/opencl.h>
#else
#include <CL/cl.h>
#endif
*/
import "C"
import "unsafe"

func init() {
	clCreateCommandQueueWithProperties = func(context ContextID, device DeviceID, properties *QueueProperty, errRet *Status) QueueID {
		id := C.clCreateCommandQueueWithProperties(C.cl_context(unsafe.Pointer(context)),
			C.cl_device_id(unsafe.Pointer(device)), (*C.cl_queue_properties)(unsafe.Pointer(properties)),
			(*C.cl_int)(unsafe.Pointer(errRet)))
		return QueueID(uintptr(unsafe.Pointer(id)))
	}
	clCreatePipe = func(context ContextID, flags MemFlags, packetSize, maxPackets uint32, errRet *Status) MemID {
		id := C.clCreatePipe(C.cl_context(unsafe.Pointer(context)), C.cl_mem_flags(flags),
			C.cl_uint(packetSize), C.cl_uint(maxPackets), nil, (*C.cl_int)(unsafe.Pointer(errRet)))
		return MemID(uintptr(unsafe.Pointer(id)))
	}
	clGetPipeInfo = func(pipe MemID, param PipeInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return Status(C.clGetPipeInfo(C.cl_mem(unsafe.Pointer(pipe)), C.cl_pipe_info(param),
			C.size_t(size), value, (*C.size_t)(unsafe.Pointer(sizeRet))))
	}
	clCreateSamplerWithProperties = func(context ContextID, properties *SamplerProperty, errRet *Status) SamplerID {
		id := C.clCreateSamplerWithProperties(C.cl_context(unsafe.Pointer(context)),
			(*C.cl_sampler_properties)(unsafe.Pointer(properties)), (*C.cl_int)(unsafe.Pointer(errRet)))
		return SamplerID(uintptr(unsafe.Pointer(id)))
	}
	clSVMAlloc = func(context ContextID, flags MemFlags, size uintptr, alignment uint32) unsafe.Pointer {
		return C.clSVMAlloc(C.cl_context(unsafe.Pointer(context)), C.cl_svm_mem_flags(flags),
			C.size_t(size), C.cl_uint(alignment))
	}
	clSVMFree = func(context ContextID, ptr unsafe.Pointer) {
		C.clSVMFree(C.cl_context(unsafe.Pointer(context)), ptr)
	}
	clSetKernelArgSVMPointer = func(kernel KernelID, index uint32, ptr unsafe.Pointer) Status {
		return Status(C.clSetKernelArgSVMPointer(C.cl_kernel(unsafe.Pointer(kernel)), C.cl_uint(index), ptr))
	}
	clSetKernelExecInfo = func(kernel KernelID, param KernelExecInfo, size uintptr, value unsafe.Pointer) Status {
		return Status(C.clSetKernelExecInfo(C.cl_kernel(unsafe.Pointer(kernel)), C.cl_kernel_exec_info(param),
			C.size_t(size), value))
	}
	clEnqueueSVMMap = func(queue QueueID, blocking bool, flags MapFlags, ptr unsafe.Pointer, size uintptr, numWait uint32, waitList *EventID, event *EventID) Status {
		return Status(C.clEnqueueSVMMap(C.cl_command_queue(unsafe.Pointer(queue)), clBool(blocking),
			C.cl_map_flags(flags), ptr, C.size_t(size),
			C.cl_uint(numWait), (*C.cl_event)(unsafe.Pointer(waitList)), (*C.cl_event)(unsafe.Pointer(event))))
	}
	clEnqueueSVMUnmap = func(queue QueueID, ptr unsafe.Pointer, numWait uint32, waitList *EventID, event *EventID) Status {
		return Status(C.clEnqueueSVMUnmap(C.cl_command_queue(unsafe.Pointer(queue)), ptr,
			C.cl_uint(numWait), (*C.cl_event)(unsafe.Pointer(waitList)), (*C.cl_event)(unsafe.Pointer(event))))
	}
	clEnqueueSVMMemcpy = func(queue QueueID, blocking bool, dst, src unsafe.Pointer, size uintptr, numWait uint32, waitList *EventID, event *EventID) Status {
		return Status(C.clEnqueueSVMMemcpy(C.cl_command_queue(unsafe.Pointer(queue)), clBool(blocking),
			dst, src, C.size_t(size),
			C.cl_uint(numWait), (*C.cl_event)(unsafe.Pointer(waitList)), (*C.cl_event)(unsafe.Pointer(event))))
	}
	clEnqueueSVMMemFill = func(queue QueueID, ptr, pattern unsafe.Pointer, patternSize, size uintptr, numWait uint32, waitList *EventID, event *EventID) Status {
		return Status(C.clEnqueueSVMMemFill(C.cl_command_queue(unsafe.Pointer(queue)), ptr,
			pattern, C.size_t(patternSize), C.size_t(size),
			C.cl_uint(numWait), (*C.cl_event)(unsafe.Pointer(waitList)), (*C.cl_event)(unsafe.Pointer(event))))
	}
}
