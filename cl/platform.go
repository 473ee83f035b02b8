package cl

import "unsafe"

// Platform identifies an OpenCL platform. Platforms are enumerated, never
// created, so the wrapper carries no release obligation.
type Platform struct {
	id PlatformID
}

// GetPlatforms enumerates the available platforms with the native two-call
// convention: one call for the count, one for the ids.
func GetPlatforms() ([]Platform, error) {
	if clGetPlatformIDs == nil {
		return nil, ErrDriverNotLoaded
	}
	var count uint32
	if status := clGetPlatformIDs(0, nil, &count); status != Success {
		return nil, clError("clGetPlatformIDs", status)
	}
	if count == 0 {
		return nil, nil
	}
	ids := make([]PlatformID, count)
	if status := clGetPlatformIDs(count, &ids[0], nil); status != Success {
		return nil, clError("clGetPlatformIDs", status)
	}
	platforms := make([]Platform, count)
	for i, id := range ids {
		platforms[i] = Platform{id: id}
	}
	return platforms, nil
}

// ID returns the opaque native handle.
func (p Platform) ID() PlatformID { return p.id }

// Info fetches a raw platform parameter.
func (p Platform) Info(param PlatformInfo) ([]byte, error) {
	if clGetPlatformInfo == nil {
		return nil, ErrDriverNotLoaded
	}
	return getInfoBytes("clGetPlatformInfo", p.infoCall(param))
}

func (p Platform) infoCall(param PlatformInfo) infoFunc {
	return func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return clGetPlatformInfo(p.id, param, size, value, sizeRet)
	}
}

func (p Platform) infoString(param PlatformInfo) (string, error) {
	if clGetPlatformInfo == nil {
		return "", ErrDriverNotLoaded
	}
	return getInfoString("clGetPlatformInfo", p.infoCall(param))
}

// Name returns CL_PLATFORM_NAME.
func (p Platform) Name() (string, error) { return p.infoString(PlatformName) }

// Vendor returns CL_PLATFORM_VENDOR.
func (p Platform) Vendor() (string, error) { return p.infoString(PlatformVendor) }

// Version returns CL_PLATFORM_VERSION.
func (p Platform) Version() (string, error) { return p.infoString(PlatformVersion) }

// Profile returns CL_PLATFORM_PROFILE.
func (p Platform) Profile() (string, error) { return p.infoString(PlatformProfile) }

// Extensions returns the platform extension names.
func (p Platform) Extensions() ([]string, error) {
	s, err := p.infoString(PlatformExtensions)
	if err != nil {
		return nil, err
	}
	return spaceSeparated(s), nil
}

// Devices enumerates the platform's devices of the given type. The returned
// devices are borrowed: enumeration does not retain, so they carry no release
// obligation. A platform with no matching devices yields an empty slice, the
// CL_DEVICE_NOT_FOUND status is not treated as an error.
func (p Platform) Devices(deviceType DeviceType) ([]*Device, error) {
	if clGetDeviceIDs == nil {
		return nil, ErrDriverNotLoaded
	}
	var count uint32
	status := clGetDeviceIDs(p.id, deviceType, 0, nil, &count)
	if status == DeviceNotFound {
		return nil, nil
	}
	if status != Success {
		return nil, clError("clGetDeviceIDs", status)
	}
	if count == 0 {
		return nil, nil
	}
	ids := make([]DeviceID, count)
	if status := clGetDeviceIDs(p.id, deviceType, count, &ids[0], nil); status != Success {
		return nil, clError("clGetDeviceIDs", status)
	}
	devices := make([]*Device, count)
	for i, id := range ids {
		devices[i] = &Device{id: id}
	}
	return devices, nil
}

// UnloadCompiler hints the driver to unload the platform compiler.
func (p Platform) UnloadCompiler() error {
	if clUnloadPlatformCompiler == nil {
		return ErrDriverNotLoaded
	}
	if status := clUnloadPlatformCompiler(p.id); status != Success {
		return clError("clUnloadPlatformCompiler", status)
	}
	return nil
}
