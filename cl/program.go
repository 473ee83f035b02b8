package cl

import "unsafe"

// Program owns a native cl_program handle.
type Program struct {
	handle
	id ProgramID
}

// CreateProgramWithSource creates a program from OpenCL C source strings.
func CreateProgramWithSource(ctx *Context, sources ...string) (*Program, error) {
	if clCreateProgramWithSource == nil {
		return nil, ErrDriverNotLoaded
	}
	if err := ctx.guard(); err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, clError("clCreateProgramWithSource", InvalidValue)
	}
	ptrs := make([]*byte, len(sources))
	lengths := make([]uintptr, len(sources))
	bufs := make([][]byte, len(sources))
	for i, s := range sources {
		bufs[i] = []byte(s)
		if len(bufs[i]) == 0 {
			bufs[i] = []byte{0}
		}
		ptrs[i] = &bufs[i][0]
		lengths[i] = uintptr(len(s))
	}
	var status Status
	id := clCreateProgramWithSource(ctx.id, uint32(len(sources)), &ptrs[0], &lengths[0], &status)
	if status != Success {
		return nil, clError("clCreateProgramWithSource", status)
	}
	observeAcquire("program")
	return &Program{id: id}, nil
}

// CreateProgramWithBinary creates a program from per-device binaries
// previously produced by ProgramInfo queries.
func CreateProgramWithBinary(ctx *Context, devices []*Device, binaries [][]byte) (*Program, error) {
	if clCreateProgramWithBinary == nil {
		return nil, ErrDriverNotLoaded
	}
	if err := ctx.guard(); err != nil {
		return nil, err
	}
	if len(devices) == 0 || len(devices) != len(binaries) {
		return nil, clError("clCreateProgramWithBinary", InvalidValue)
	}
	ids := make([]DeviceID, len(devices))
	ptrs := make([]*byte, len(binaries))
	lengths := make([]uintptr, len(binaries))
	for i := range devices {
		if err := devices[i].guard(); err != nil {
			return nil, err
		}
		ids[i] = devices[i].id
		if len(binaries[i]) == 0 {
			return nil, clError("clCreateProgramWithBinary", InvalidValue)
		}
		ptrs[i] = &binaries[i][0]
		lengths[i] = uintptr(len(binaries[i]))
	}
	binaryStatus := make([]Status, len(devices))
	var status Status
	id := clCreateProgramWithBinary(ctx.id, uint32(len(ids)), &ids[0], &lengths[0], &ptrs[0], &binaryStatus[0], &status)
	if status != Success {
		return nil, clError("clCreateProgramWithBinary", status)
	}
	observeAcquire("program")
	return &Program{id: id}, nil
}

// CreateProgramWithBuiltInKernels creates a program from the semicolon
// separated list of built-in kernel names.
func CreateProgramWithBuiltInKernels(ctx *Context, devices []*Device, kernelNames string) (*Program, error) {
	if clCreateProgramWithBuiltInKernels == nil {
		return nil, ErrDriverNotLoaded
	}
	if err := ctx.guard(); err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, clError("clCreateProgramWithBuiltInKernels", InvalidValue)
	}
	ids := make([]DeviceID, len(devices))
	for i, d := range devices {
		if err := d.guard(); err != nil {
			return nil, err
		}
		ids[i] = d.id
	}
	names := nulTerminated(kernelNames)
	var status Status
	id := clCreateProgramWithBuiltInKernels(ctx.id, uint32(len(ids)), &ids[0], &names[0], &status)
	if status != Success {
		return nil, clError("clCreateProgramWithBuiltInKernels", status)
	}
	observeAcquire("program")
	return &Program{id: id}, nil
}

// ID returns the opaque native handle.
func (p *Program) ID() ProgramID { return p.id }

// Retain increments the driver-side reference count and returns a new owned
// wrapper.
func (p *Program) Retain() (*Program, error) {
	if err := p.guard(); err != nil {
		return nil, err
	}
	if clRetainProgram == nil {
		return nil, ErrDriverNotLoaded
	}
	if status := clRetainProgram(p.id); status != Success {
		return nil, clError("clRetainProgram", status)
	}
	observeAcquire("program")
	return &Program{id: p.id}, nil
}

// Release decrements the driver-side reference count, exactly once.
func (p *Program) Release() error {
	return p.release("clReleaseProgram", "program", func() Status {
		return clReleaseProgram(p.id)
	})
}

func deviceIDs(devices []*Device) (uint32, *DeviceID, error) {
	if len(devices) == 0 {
		return 0, nil, nil
	}
	ids := make([]DeviceID, len(devices))
	for i, d := range devices {
		if err := d.guard(); err != nil {
			return 0, nil, err
		}
		ids[i] = d.id
	}
	return uint32(len(ids)), &ids[0], nil
}

// Build builds the program for the given devices (all context devices when
// devices is empty). With a nil notify the call blocks until the build
// finishes; otherwise it returns immediately and notify fires once when the
// build completes, with the closure pinned until then.
func (p *Program) Build(devices []*Device, options string, notify BuildNotify) error {
	if err := p.guard(); err != nil {
		return err
	}
	if clBuildProgram == nil {
		return ErrDriverNotLoaded
	}
	num, ids, err := deviceIDs(devices)
	if err != nil {
		return err
	}
	var opts *byte
	if options != "" {
		b := nulTerminated(options)
		opts = &b[0]
	}
	var notifyID uintptr
	if notify != nil {
		notifyID = callbacks.pin(func(ProgramID) { notify(p) })
	}
	if status := clBuildProgram(p.id, num, ids, opts, notifyID); status != Success {
		callbacks.unpin(notifyID)
		return clError("clBuildProgram", status)
	}
	return nil
}

// Compile compiles the program's source with the given embedded headers.
func (p *Program) Compile(devices []*Device, options string, headers map[string]*Program, notify BuildNotify) error {
	if err := p.guard(); err != nil {
		return err
	}
	if clCompileProgram == nil {
		return ErrDriverNotLoaded
	}
	num, ids, err := deviceIDs(devices)
	if err != nil {
		return err
	}
	var opts *byte
	if options != "" {
		b := nulTerminated(options)
		opts = &b[0]
	}
	var numHeaders uint32
	var headerIDs *ProgramID
	var headerNames **byte
	if len(headers) > 0 {
		hids := make([]ProgramID, 0, len(headers))
		hnames := make([]*byte, 0, len(headers))
		for name, hp := range headers {
			if err := hp.guard(); err != nil {
				return err
			}
			hids = append(hids, hp.id)
			nb := nulTerminated(name)
			hnames = append(hnames, &nb[0])
		}
		numHeaders = uint32(len(hids))
		headerIDs = &hids[0]
		headerNames = &hnames[0]
	}
	var notifyID uintptr
	if notify != nil {
		notifyID = callbacks.pin(func(ProgramID) { notify(p) })
	}
	if status := clCompileProgram(p.id, num, ids, opts, numHeaders, headerIDs, headerNames, notifyID); status != Success {
		callbacks.unpin(notifyID)
		return clError("clCompileProgram", status)
	}
	return nil
}

// LinkProgram links compiled programs into a new executable program. The
// returned program is owned.
func LinkProgram(ctx *Context, devices []*Device, options string, programs []*Program, notify BuildNotify) (*Program, error) {
	if clLinkProgram == nil {
		return nil, ErrDriverNotLoaded
	}
	if err := ctx.guard(); err != nil {
		return nil, err
	}
	if len(programs) == 0 {
		return nil, clError("clLinkProgram", InvalidValue)
	}
	num, ids, err := deviceIDs(devices)
	if err != nil {
		return nil, err
	}
	pids := make([]ProgramID, len(programs))
	for i, pr := range programs {
		if err := pr.guard(); err != nil {
			return nil, err
		}
		pids[i] = pr.id
	}
	var opts *byte
	if options != "" {
		b := nulTerminated(options)
		opts = &b[0]
	}
	linked := &Program{}
	var notifyID uintptr
	if notify != nil {
		notifyID = callbacks.pin(func(ProgramID) { notify(linked) })
	}
	var status Status
	id := clLinkProgram(ctx.id, num, ids, opts, uint32(len(pids)), &pids[0], notifyID, &status)
	if status != Success {
		callbacks.unpin(notifyID)
		return nil, clError("clLinkProgram", status)
	}
	observeAcquire("program")
	linked.id = id
	return linked, nil
}

// Info fetches a raw program parameter.
func (p *Program) Info(param ProgramInfo) ([]byte, error) {
	if err := p.guard(); err != nil {
		return nil, err
	}
	if clGetProgramInfo == nil {
		return nil, ErrDriverNotLoaded
	}
	return getInfoBytes("clGetProgramInfo", p.infoCall(param))
}

func (p *Program) infoCall(param ProgramInfo) infoFunc {
	return func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return clGetProgramInfo(p.id, param, size, value, sizeRet)
	}
}

// KernelNames returns the semicolon separated kernel names in the program.
func (p *Program) KernelNames() (string, error) {
	if err := p.guard(); err != nil {
		return "", err
	}
	if clGetProgramInfo == nil {
		return "", ErrDriverNotLoaded
	}
	return getInfoString("clGetProgramInfo", p.infoCall(ProgramKernelNames))
}

// Source returns the concatenated program source.
func (p *Program) Source() (string, error) {
	if err := p.guard(); err != nil {
		return "", err
	}
	if clGetProgramInfo == nil {
		return "", ErrDriverNotLoaded
	}
	return getInfoString("clGetProgramInfo", p.infoCall(ProgramSource))
}

// BuildInfo fetches a raw per-device build parameter.
func (p *Program) BuildInfo(device *Device, param ProgramBuildInfo) ([]byte, error) {
	if err := p.guard(); err != nil {
		return nil, err
	}
	if err := device.guard(); err != nil {
		return nil, err
	}
	if clGetProgramBuildInfo == nil {
		return nil, ErrDriverNotLoaded
	}
	return getInfoBytes("clGetProgramBuildInfo", p.buildInfoCall(device.id, param))
}

func (p *Program) buildInfoCall(device DeviceID, param ProgramBuildInfo) infoFunc {
	return func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return clGetProgramBuildInfo(p.id, device, param, size, value, sizeRet)
	}
}

// BuildLog returns CL_PROGRAM_BUILD_LOG for the device, the first thing to
// inspect after a BuildProgramFailure status.
func (p *Program) BuildLog(device *Device) (string, error) {
	if err := p.guard(); err != nil {
		return "", err
	}
	if err := device.guard(); err != nil {
		return "", err
	}
	if clGetProgramBuildInfo == nil {
		return "", ErrDriverNotLoaded
	}
	return getInfoString("clGetProgramBuildInfo", p.buildInfoCall(device.id, ProgramBuildLog))
}

// BuildStatus returns CL_PROGRAM_BUILD_STATUS for the device.
func (p *Program) BuildStatus(device *Device) (BuildStatus, error) {
	if err := p.guard(); err != nil {
		return BuildNone, err
	}
	if err := device.guard(); err != nil {
		return BuildNone, err
	}
	if clGetProgramBuildInfo == nil {
		return BuildNone, ErrDriverNotLoaded
	}
	v, err := getInfoUint32("clGetProgramBuildInfo", p.buildInfoCall(device.id, ProgramBuildStatusInfo))
	return BuildStatus(int32(v)), err
}
