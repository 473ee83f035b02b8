//go:build cl && clegl
// +build cl,clegl

package cl

/*
#cgo CFLAGS: -DCL_TARGET_OPENCL_VERSION=300 -DCL_USE_DEPRECATED_OPENCL_1_2_APIS

#ifdef __APPLE__
#include <OpenCL/opencl.h>
#else
#include <CL/cl.h>
#endif
#include <CL/cl_egl.h>
*/
import "C"
import "unsafe"

func init() {
	clCreateFromEGLImageKHR = func(context ContextID, display EGLDisplay, image EGLImage, flags MemFlags, properties *EGLImageProperty, errRet *Status) MemID {
		id := C.clCreateFromEGLImageKHR(C.cl_context(unsafe.Pointer(context)),
			C.CLeglDisplayKHR(unsafe.Pointer(display)), C.CLeglImageKHR(unsafe.Pointer(image)),
			C.cl_mem_flags(flags), (*C.cl_egl_image_properties_khr)(unsafe.Pointer(properties)),
			(*C.cl_int)(unsafe.Pointer(errRet)))
		return MemID(uintptr(unsafe.Pointer(id)))
	}
	clEnqueueAcquireEGLObjectsKHR = func(queue QueueID, numObjects uint32, objects *MemID, numWait uint32, waitList *EventID, event *EventID) Status {
		return Status(C.clEnqueueAcquireEGLObjectsKHR(C.cl_command_queue(unsafe.Pointer(queue)),
			C.cl_uint(numObjects), (*C.cl_mem)(unsafe.Pointer(objects)),
			C.cl_uint(numWait), (*C.cl_event)(unsafe.Pointer(waitList)), (*C.cl_event)(unsafe.Pointer(event))))
	}
	clEnqueueReleaseEGLObjectsKHR = func(queue QueueID, numObjects uint32, objects *MemID, numWait uint32, waitList *EventID, event *EventID) Status {
		return Status(C.clEnqueueReleaseEGLObjectsKHR(C.cl_command_queue(unsafe.Pointer(queue)),
			C.cl_uint(numObjects), (*C.cl_mem)(unsafe.Pointer(objects)),
			C.cl_uint(numWait), (*C.cl_event)(unsafe.Pointer(waitList)), (*C.cl_event)(unsafe.Pointer(event))))
	}
	clCreateEventFromEGLSyncKHR = func(context ContextID, sync EGLSync, display EGLDisplay, errRet *Status) EventID {
		id := C.clCreateEventFromEGLSyncKHR(C.cl_context(unsafe.Pointer(context)),
			C.CLeglSyncKHR(unsafe.Pointer(sync)), C.CLeglDisplayKHR(unsafe.Pointer(display)),
			(*C.cl_int)(unsafe.Pointer(errRet)))
		return EventID(uintptr(unsafe.Pointer(id)))
	}
}
