//go:build cl21 || cl22 || cl30
// +build cl21 cl22 cl30

package cl

import "unsafe"

// OpenCL 2.1 surface.

var (
	clCloneKernel                  func(kernel KernelID, errRet *Status) KernelID
	clCreateProgramWithIL          func(context ContextID, il unsafe.Pointer, length uintptr, errRet *Status) ProgramID
	clGetKernelSubGroupInfo        func(kernel KernelID, device DeviceID, param KernelSubGroupInfo, inputSize uintptr, input unsafe.Pointer, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status
	clSetDefaultDeviceCommandQueue func(context ContextID, device DeviceID, queue QueueID) Status
	clGetDeviceAndHostTimer        func(device DeviceID, deviceTimestamp, hostTimestamp *uint64) Status
	clGetHostTimer                 func(device DeviceID, hostTimestamp *uint64) Status
)

// KernelSubGroupInfo names a cl_kernel_sub_group_info query.
type KernelSubGroupInfo uint32

const (
	KernelMaxSubGroupSizeForNDRange KernelSubGroupInfo = 0x2033
	KernelSubGroupCountForNDRange   KernelSubGroupInfo = 0x2034
	KernelLocalSizeForSubGroupCount KernelSubGroupInfo = 0x11B8
	KernelMaxNumSubGroups           KernelSubGroupInfo = 0x11B9
	KernelCompileNumSubGroups       KernelSubGroupInfo = 0x11BA
)

// Clone copies the kernel object, including its argument bindings. The clone
// is an independently owned object.
func (k *Kernel) Clone() (*Kernel, error) {
	if err := k.guard(); err != nil {
		return nil, err
	}
	if clCloneKernel == nil {
		return nil, ErrDriverNotLoaded
	}
	var status Status
	id := clCloneKernel(k.id, &status)
	if status != Success {
		return nil, clError("clCloneKernel", status)
	}
	observeAcquire("kernel")
	return &Kernel{id: id}, nil
}

// CreateProgramWithIL creates a program from an intermediate language binary
// (typically SPIR-V).
func CreateProgramWithIL(ctx *Context, il []byte) (*Program, error) {
	if clCreateProgramWithIL == nil {
		return nil, ErrDriverNotLoaded
	}
	if err := ctx.guard(); err != nil {
		return nil, err
	}
	if len(il) == 0 {
		return nil, clError("clCreateProgramWithIL", InvalidValue)
	}
	var status Status
	id := clCreateProgramWithIL(ctx.id, unsafe.Pointer(&il[0]), uintptr(len(il)), &status)
	if status != Success {
		return nil, clError("clCreateProgramWithIL", status)
	}
	observeAcquire("program")
	return &Program{id: id}, nil
}

// SubGroupInfo fetches a raw sub-group parameter. input carries the
// query-specific input value (an NDRange or a sub-group count) and may be
// nil.
func (k *Kernel) SubGroupInfo(device *Device, param KernelSubGroupInfo, input []uintptr) ([]byte, error) {
	if err := k.guard(); err != nil {
		return nil, err
	}
	if err := device.guard(); err != nil {
		return nil, err
	}
	if clGetKernelSubGroupInfo == nil {
		return nil, ErrDriverNotLoaded
	}
	var inputPtr unsafe.Pointer
	var inputSize uintptr
	if len(input) > 0 {
		inputPtr = unsafe.Pointer(&input[0])
		inputSize = uintptr(len(input)) * unsafe.Sizeof(input[0])
	}
	return getInfoBytes("clGetKernelSubGroupInfo", func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return clGetKernelSubGroupInfo(k.id, device.id, param, inputSize, inputPtr, size, value, sizeRet)
	})
}

// MaxSubGroupSizeForNDRange returns the maximum sub-group size for the given
// local work size.
func (k *Kernel) MaxSubGroupSizeForNDRange(device *Device, localSize []uintptr) (uintptr, error) {
	raw, err := k.SubGroupInfo(device, KernelMaxSubGroupSizeForNDRange, localSize)
	if err != nil {
		return 0, err
	}
	if len(raw) < int(unsafe.Sizeof(uintptr(0))) {
		return 0, clError("clGetKernelSubGroupInfo", InvalidValue)
	}
	return *(*uintptr)(unsafe.Pointer(&raw[0])), nil
}

// SetDefaultDeviceCommandQueue replaces the device's default on-device queue.
func SetDefaultDeviceCommandQueue(ctx *Context, device *Device, queue *CommandQueue) error {
	if clSetDefaultDeviceCommandQueue == nil {
		return ErrDriverNotLoaded
	}
	if err := ctx.guard(); err != nil {
		return err
	}
	if err := device.guard(); err != nil {
		return err
	}
	if err := queue.guard(); err != nil {
		return err
	}
	if status := clSetDefaultDeviceCommandQueue(ctx.id, device.id, queue.id); status != Success {
		return clError("clSetDefaultDeviceCommandQueue", status)
	}
	return nil
}

// DeviceAndHostTimer samples the device and host timers at the same point in
// time, both in nanoseconds.
func (d *Device) DeviceAndHostTimer() (deviceTS, hostTS uint64, err error) {
	if err := d.guard(); err != nil {
		return 0, 0, err
	}
	if clGetDeviceAndHostTimer == nil {
		return 0, 0, ErrDriverNotLoaded
	}
	if status := clGetDeviceAndHostTimer(d.id, &deviceTS, &hostTS); status != Success {
		return 0, 0, clError("clGetDeviceAndHostTimer", status)
	}
	return deviceTS, hostTS, nil
}

// HostTimer samples the host timer the device timer is correlated against.
func (d *Device) HostTimer() (uint64, error) {
	if err := d.guard(); err != nil {
		return 0, err
	}
	if clGetHostTimer == nil {
		return 0, ErrDriverNotLoaded
	}
	var ts uint64
	if status := clGetHostTimer(d.id, &ts); status != Success {
		return 0, clError("clGetHostTimer", status)
	}
	return ts, nil
}

// HostTimerResolution returns CL_PLATFORM_HOST_TIMER_RESOLUTION in
// nanoseconds.
func (p Platform) HostTimerResolution() (uint64, error) {
	if clGetPlatformInfo == nil {
		return 0, ErrDriverNotLoaded
	}
	return getInfoUint64("clGetPlatformInfo", p.infoCall(PlatformHostTimerResolution))
}
