//go:build cl
// +build cl

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

//export goclContextNotify
func goclContextNotify(errinfo *C.char, privateInfo unsafe.Pointer, cb C.size_t, userData unsafe.Pointer) {
	var private []byte
	if privateInfo != nil && cb > 0 {
		private = C.GoBytes(privateInfo, C.int(cb))
	}
	invokeContextNotify(uintptr(userData), C.GoString(errinfo), private)
}

//export goclBuildNotify
func goclBuildNotify(program C.cl_program, userData unsafe.Pointer) {
	invokeBuildNotify(uintptr(userData), ProgramID(uintptr(unsafe.Pointer(program))))
}

//export goclObjectDestructor
func goclObjectDestructor(userData unsafe.Pointer) {
	invokeMemDestructor(uintptr(userData))
}

//export goclEventNotify
func goclEventNotify(event C.cl_event, status C.cl_int, userData unsafe.Pointer) {
	_ = event
	invokeEventNotify(uintptr(userData), int32(status))
}
