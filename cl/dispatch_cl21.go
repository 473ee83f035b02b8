//go:build cl && (cl21 || cl22 || cl30)
// +build cl
// +build cl21 cl22 cl30

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
	clCloneKernel = func(kernel KernelID, errRet *Status) KernelID {
		id := C.clCloneKernel(C.cl_kernel(unsafe.Pointer(kernel)), (*C.cl_int)(unsafe.Pointer(errRet)))
		return KernelID(uintptr(unsafe.Pointer(id)))
	}
	clCreateProgramWithIL = func(context ContextID, il unsafe.Pointer, length uintptr, errRet *Status) ProgramID {
		id := C.clCreateProgramWithIL(C.cl_context(unsafe.Pointer(context)), il, C.size_t(length),
			(*C.cl_int)(unsafe.Pointer(errRet)))
		return ProgramID(uintptr(unsafe.Pointer(id)))
	}
	clGetKernelSubGroupInfo = func(kernel KernelID, device DeviceID, param KernelSubGroupInfo, inputSize uintptr, input unsafe.Pointer, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return Status(C.clGetKernelSubGroupInfo(C.cl_kernel(unsafe.Pointer(kernel)),
			C.cl_device_id(unsafe.Pointer(device)), C.cl_kernel_sub_group_info(param),
			C.size_t(inputSize), input, C.size_t(size), value, (*C.size_t)(unsafe.Pointer(sizeRet))))
	}
	clSetDefaultDeviceCommandQueue = func(context ContextID, device DeviceID, queue QueueID) Status {
		return Status(C.clSetDefaultDeviceCommandQueue(C.cl_context(unsafe.Pointer(context)),
			C.cl_device_id(unsafe.Pointer(device)), C.cl_command_queue(unsafe.Pointer(queue))))
	}
	clGetDeviceAndHostTimer = func(device DeviceID, deviceTimestamp, hostTimestamp *uint64) Status {
		return Status(C.clGetDeviceAndHostTimer(C.cl_device_id(unsafe.Pointer(device)),
			(*C.cl_ulong)(unsafe.Pointer(deviceTimestamp)), (*C.cl_ulong)(unsafe.Pointer(hostTimestamp))))
	}
	clGetHostTimer = func(device DeviceID, hostTimestamp *uint64) Status {
		return Status(C.clGetHostTimer(C.cl_device_id(unsafe.Pointer(device)),
			(*C.cl_ulong)(unsafe.Pointer(hostTimestamp))))
	}
}
