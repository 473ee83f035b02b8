package cl

import "unsafe"

// Kernel owns a native cl_kernel handle.
type Kernel struct {
	handle
	id KernelID
}

// CreateKernel creates a kernel object for a named kernel function in a
// program with a successfully built executable.
func CreateKernel(program *Program, name string) (*Kernel, error) {
	if clCreateKernel == nil {
		return nil, ErrDriverNotLoaded
	}
	if err := program.guard(); err != nil {
		return nil, err
	}
	cname := nulTerminated(name)
	var status Status
	id := clCreateKernel(program.id, &cname[0], &status)
	if status != Success {
		return nil, clError("clCreateKernel", status)
	}
	observeAcquire("kernel")
	return &Kernel{id: id}, nil
}

// CreateKernelsInProgram creates kernel objects for every kernel function in
// the program, using the native two-call count convention. All returned
// kernels are owned.
func CreateKernelsInProgram(program *Program) ([]*Kernel, error) {
	if clCreateKernelsInProgram == nil {
		return nil, ErrDriverNotLoaded
	}
	if err := program.guard(); err != nil {
		return nil, err
	}
	var count uint32
	if status := clCreateKernelsInProgram(program.id, 0, nil, &count); status != Success {
		return nil, clError("clCreateKernelsInProgram", status)
	}
	if count == 0 {
		return nil, nil
	}
	ids := make([]KernelID, count)
	if status := clCreateKernelsInProgram(program.id, count, &ids[0], nil); status != Success {
		return nil, clError("clCreateKernelsInProgram", status)
	}
	kernels := make([]*Kernel, count)
	for i, id := range ids {
		observeAcquire("kernel")
		kernels[i] = &Kernel{id: id}
	}
	return kernels, nil
}

// ID returns the opaque native handle.
func (k *Kernel) ID() KernelID { return k.id }

// Retain increments the driver-side reference count and returns a new owned
// wrapper.
func (k *Kernel) Retain() (*Kernel, error) {
	if err := k.guard(); err != nil {
		return nil, err
	}
	if clRetainKernel == nil {
		return nil, ErrDriverNotLoaded
	}
	if status := clRetainKernel(k.id); status != Success {
		return nil, clError("clRetainKernel", status)
	}
	observeAcquire("kernel")
	return &Kernel{id: k.id}, nil
}

// Release decrements the driver-side reference count, exactly once.
func (k *Kernel) Release() error {
	return k.release("clReleaseKernel", "kernel", func() Status {
		return clReleaseKernel(k.id)
	})
}

// SetArg sets argument index from raw bytes, mirroring clSetKernelArg.
func (k *Kernel) SetArg(index uint32, size uintptr, value unsafe.Pointer) error {
	if err := k.guard(); err != nil {
		return err
	}
	if clSetKernelArg == nil {
		return ErrDriverNotLoaded
	}
	if status := clSetKernelArg(k.id, index, size, value); status != Success {
		return clError("clSetKernelArg", status)
	}
	return nil
}

// SetArgBuffer binds a memory object to argument index.
func (k *Kernel) SetArgBuffer(index uint32, mem *MemObject) error {
	if err := mem.guard(); err != nil {
		return err
	}
	id := mem.id
	return k.SetArg(index, unsafe.Sizeof(id), unsafe.Pointer(&id))
}

// SetArgSampler binds a sampler to argument index.
func (k *Kernel) SetArgSampler(index uint32, sampler *Sampler) error {
	if err := sampler.guard(); err != nil {
		return err
	}
	id := sampler.id
	return k.SetArg(index, unsafe.Sizeof(id), unsafe.Pointer(&id))
}

// SetArgInt32 passes a 32-bit scalar argument.
func (k *Kernel) SetArgInt32(index uint32, v int32) error {
	return k.SetArg(index, unsafe.Sizeof(v), unsafe.Pointer(&v))
}

// SetArgUint32 passes a 32-bit scalar argument.
func (k *Kernel) SetArgUint32(index uint32, v uint32) error {
	return k.SetArg(index, unsafe.Sizeof(v), unsafe.Pointer(&v))
}

// SetArgFloat32 passes a float scalar argument.
func (k *Kernel) SetArgFloat32(index uint32, v float32) error {
	return k.SetArg(index, unsafe.Sizeof(v), unsafe.Pointer(&v))
}

// SetArgUint64 passes a 64-bit scalar argument.
func (k *Kernel) SetArgUint64(index uint32, v uint64) error {
	return k.SetArg(index, unsafe.Sizeof(v), unsafe.Pointer(&v))
}

// SetArgLocal reserves size bytes of local memory for argument index.
func (k *Kernel) SetArgLocal(index uint32, size uintptr) error {
	return k.SetArg(index, size, nil)
}

// Info fetches a raw kernel parameter.
func (k *Kernel) Info(param KernelInfo) ([]byte, error) {
	if err := k.guard(); err != nil {
		return nil, err
	}
	if clGetKernelInfo == nil {
		return nil, ErrDriverNotLoaded
	}
	return getInfoBytes("clGetKernelInfo", k.infoCall(param))
}

func (k *Kernel) infoCall(param KernelInfo) infoFunc {
	return func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return clGetKernelInfo(k.id, param, size, value, sizeRet)
	}
}

// FunctionName returns CL_KERNEL_FUNCTION_NAME.
func (k *Kernel) FunctionName() (string, error) {
	if err := k.guard(); err != nil {
		return "", err
	}
	if clGetKernelInfo == nil {
		return "", ErrDriverNotLoaded
	}
	return getInfoString("clGetKernelInfo", k.infoCall(KernelFunctionName))
}

// NumArgs returns CL_KERNEL_NUM_ARGS.
func (k *Kernel) NumArgs() (uint32, error) {
	if err := k.guard(); err != nil {
		return 0, err
	}
	if clGetKernelInfo == nil {
		return 0, ErrDriverNotLoaded
	}
	return getInfoUint32("clGetKernelInfo", k.infoCall(KernelNumArgs))
}

// Attributes returns CL_KERNEL_ATTRIBUTES.
func (k *Kernel) Attributes() (string, error) {
	if err := k.guard(); err != nil {
		return "", err
	}
	if clGetKernelInfo == nil {
		return "", ErrDriverNotLoaded
	}
	return getInfoString("clGetKernelInfo", k.infoCall(KernelAttributes))
}

// ArgInfo fetches a raw kernel argument parameter. Available only when the
// program was built with -cl-kernel-arg-info; otherwise the driver reports
// KernelArgInfoNotAvail.
func (k *Kernel) ArgInfo(index uint32, param KernelArgInfo) ([]byte, error) {
	if err := k.guard(); err != nil {
		return nil, err
	}
	if clGetKernelArgInfo == nil {
		return nil, ErrDriverNotLoaded
	}
	return getInfoBytes("clGetKernelArgInfo", func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return clGetKernelArgInfo(k.id, index, param, size, value, sizeRet)
	})
}

// ArgTypeName returns CL_KERNEL_ARG_TYPE_NAME for the argument.
func (k *Kernel) ArgTypeName(index uint32) (string, error) {
	if err := k.guard(); err != nil {
		return "", err
	}
	if clGetKernelArgInfo == nil {
		return "", ErrDriverNotLoaded
	}
	return getInfoString("clGetKernelArgInfo", func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return clGetKernelArgInfo(k.id, index, KernelArgTypeName, size, value, sizeRet)
	})
}

// WorkGroupInfo fetches a raw per-device work-group parameter.
func (k *Kernel) WorkGroupInfo(device *Device, param KernelWorkGroupInfo) ([]byte, error) {
	if err := k.guard(); err != nil {
		return nil, err
	}
	if err := device.guard(); err != nil {
		return nil, err
	}
	if clGetKernelWorkGroupInfo == nil {
		return nil, ErrDriverNotLoaded
	}
	return getInfoBytes("clGetKernelWorkGroupInfo", k.workGroupInfoCall(device.id, param))
}

func (k *Kernel) workGroupInfoCall(device DeviceID, param KernelWorkGroupInfo) infoFunc {
	return func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return clGetKernelWorkGroupInfo(k.id, device, param, size, value, sizeRet)
	}
}

// WorkGroupSize returns CL_KERNEL_WORK_GROUP_SIZE for the device.
func (k *Kernel) WorkGroupSize(device *Device) (uintptr, error) {
	if err := k.guard(); err != nil {
		return 0, err
	}
	if err := device.guard(); err != nil {
		return 0, err
	}
	if clGetKernelWorkGroupInfo == nil {
		return 0, ErrDriverNotLoaded
	}
	return getInfoSize("clGetKernelWorkGroupInfo", k.workGroupInfoCall(device.id, KernelWorkGroupSize))
}

// PreferredWorkGroupSizeMultiple returns the device's preferred work-group
// size multiple for this kernel.
func (k *Kernel) PreferredWorkGroupSizeMultiple(device *Device) (uintptr, error) {
	if err := k.guard(); err != nil {
		return 0, err
	}
	if err := device.guard(); err != nil {
		return 0, err
	}
	if clGetKernelWorkGroupInfo == nil {
		return 0, ErrDriverNotLoaded
	}
	return getInfoSize("clGetKernelWorkGroupInfo", k.workGroupInfoCall(device.id, KernelPreferredWGSizeMult))
}
