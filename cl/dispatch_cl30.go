//go:build cl && cl30
// +build cl,cl30

package cl

/*
#cgo CFLAGS: -DCL_TARGET_OPENCL_VERSION=300 -DCL_USE_DEPRECATED_OPENCL_1_2_APIS

#ifdef __APPLE__
#include <OpenCL/opencl.h>
#else
#include <CL/cl.h>
#endif
#include <stdint.h>

extern void goclObjectDestructor(void *user_data);

static void gocl_context_destructor_tramp(cl_context context, void *user_data) {
	(void)context;
	goclObjectDestructor(user_data);
}

static cl_int gocl_set_context_destructor(cl_context context, uintptr_t notify) {
	return clSetContextDestructorCallback(context, gocl_context_destructor_tramp, (void *)notify);
}
*/
import "C"
import "unsafe"

func init() {
	clCreateBufferWithProperties = func(context ContextID, properties *MemProperty, flags MemFlags, size uintptr, hostPtr unsafe.Pointer, errRet *Status) MemID {
		id := C.clCreateBufferWithProperties(C.cl_context(unsafe.Pointer(context)),
			(*C.cl_mem_properties)(unsafe.Pointer(properties)), C.cl_mem_flags(flags), C.size_t(size),
			hostPtr, (*C.cl_int)(unsafe.Pointer(errRet)))
		return MemID(uintptr(unsafe.Pointer(id)))
	}
	clCreateImageWithProperties = func(context ContextID, properties *MemProperty, flags MemFlags, format *ImageFormat, desc *ImageDesc, hostPtr unsafe.Pointer, errRet *Status) MemID {
		id := C.clCreateImageWithProperties(C.cl_context(unsafe.Pointer(context)),
			(*C.cl_mem_properties)(unsafe.Pointer(properties)), C.cl_mem_flags(flags),
			(*C.cl_image_format)(unsafe.Pointer(format)), (*C.cl_image_desc)(unsafe.Pointer(desc)),
			hostPtr, (*C.cl_int)(unsafe.Pointer(errRet)))
		return MemID(uintptr(unsafe.Pointer(id)))
	}
	clSetContextDestructorCallback = func(context ContextID, notify uintptr) Status {
		return Status(C.gocl_set_context_destructor(C.cl_context(unsafe.Pointer(context)), C.uintptr_t(notify)))
	}
}
