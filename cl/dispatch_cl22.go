//go:build cl && (cl22 || cl30)
// +build cl
// +build cl22 cl30

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

static void gocl_program_release_tramp(cl_program program, void *user_data) {
	(void)program;
	goclObjectDestructor(user_data);
}

static cl_int gocl_set_program_release_callback(cl_program program, uintptr_t notify) {
	return clSetProgramReleaseCallback(program, gocl_program_release_tramp, (void *)notify);
}
*/
import "C"
import "unsafe"

func init() {
	clSetProgramReleaseCallback = func(program ProgramID, notify uintptr) Status {
		return Status(C.gocl_set_program_release_callback(C.cl_program(unsafe.Pointer(program)), C.uintptr_t(notify)))
	}
	clSetProgramSpecializationConstant = func(program ProgramID, specID uint32, size uintptr, value unsafe.Pointer) Status {
		return Status(C.clSetProgramSpecializationConstant(C.cl_program(unsafe.Pointer(program)),
			C.cl_uint(specID), C.size_t(size), value))
	}
}
