package cl

import "unsafe"

// Sampler owns a native cl_sampler handle.
type Sampler struct {
	handle
	id SamplerID
}

// CreateSampler creates a sampler using the OpenCL 1.2 entry point. On
// 2.0-capable builds prefer CreateSamplerWithProperties.
func CreateSampler(ctx *Context, normalizedCoords bool, addressing AddressingMode, filter FilterMode) (*Sampler, error) {
	if clCreateSampler == nil {
		return nil, ErrDriverNotLoaded
	}
	if err := ctx.guard(); err != nil {
		return nil, err
	}
	var status Status
	id := clCreateSampler(ctx.id, normalizedCoords, addressing, filter, &status)
	if status != Success {
		return nil, clError("clCreateSampler", status)
	}
	observeAcquire("sampler")
	return &Sampler{id: id}, nil
}

// ID returns the opaque native handle.
func (s *Sampler) ID() SamplerID { return s.id }

// Retain increments the driver-side reference count and returns a new owned
// wrapper.
func (s *Sampler) Retain() (*Sampler, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	if clRetainSampler == nil {
		return nil, ErrDriverNotLoaded
	}
	if status := clRetainSampler(s.id); status != Success {
		return nil, clError("clRetainSampler", status)
	}
	observeAcquire("sampler")
	return &Sampler{id: s.id}, nil
}

// Release decrements the driver-side reference count, exactly once.
func (s *Sampler) Release() error {
	return s.release("clReleaseSampler", "sampler", func() Status {
		return clReleaseSampler(s.id)
	})
}

// Info fetches a raw sampler parameter.
func (s *Sampler) Info(param SamplerInfo) ([]byte, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	if clGetSamplerInfo == nil {
		return nil, ErrDriverNotLoaded
	}
	return getInfoBytes("clGetSamplerInfo", func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return clGetSamplerInfo(s.id, param, size, value, sizeRet)
	})
}

// AddressingMode returns CL_SAMPLER_ADDRESSING_MODE.
func (s *Sampler) AddressingMode() (AddressingMode, error) {
	if err := s.guard(); err != nil {
		return 0, err
	}
	if clGetSamplerInfo == nil {
		return 0, ErrDriverNotLoaded
	}
	v, err := getInfoUint32("clGetSamplerInfo", func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return clGetSamplerInfo(s.id, SamplerAddressingModeInfo, size, value, sizeRet)
	})
	return AddressingMode(v), err
}

// FilterMode returns CL_SAMPLER_FILTER_MODE.
func (s *Sampler) FilterMode() (FilterMode, error) {
	if err := s.guard(); err != nil {
		return 0, err
	}
	if clGetSamplerInfo == nil {
		return 0, ErrDriverNotLoaded
	}
	v, err := getInfoUint32("clGetSamplerInfo", func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return clGetSamplerInfo(s.id, SamplerFilterModeInfo, size, value, sizeRet)
	})
	return FilterMode(v), err
}
