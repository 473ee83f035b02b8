package cl

import "unsafe"

// Device identifies an OpenCL device. Root devices obtained from
// Platform.Devices are borrowed; sub-devices created by Partition (and
// wrappers returned by Retain) are owned and must be released.
type Device struct {
	handle
	id    DeviceID
	owned bool
}

// ID returns the opaque native handle.
func (d *Device) ID() DeviceID { return d.id }

// Retain increments the driver-side reference count and returns a new owned
// wrapper with an independent release obligation. Retaining a root device is
// legal but a no-op in the driver.
func (d *Device) Retain() (*Device, error) {
	if err := d.guard(); err != nil {
		return nil, err
	}
	if clRetainDevice == nil {
		return nil, ErrDriverNotLoaded
	}
	if status := clRetainDevice(d.id); status != Success {
		return nil, clError("clRetainDevice", status)
	}
	observeAcquire("device")
	return &Device{id: d.id, owned: true}, nil
}

// Release decrements the driver-side reference count. Only owned wrappers
// (sub-devices, retained wrappers) may be released; root devices are borrowed
// and return ErrNotOwned.
func (d *Device) Release() error {
	if !d.owned {
		return ErrNotOwned
	}
	return d.release("clReleaseDevice", "device", func() Status {
		return clReleaseDevice(d.id)
	})
}

// Partition splits the device along the given zero-terminated partition
// property list. The returned sub-devices are owned.
func (d *Device) Partition(properties []DevicePartitionProperty) ([]*Device, error) {
	if err := d.guard(); err != nil {
		return nil, err
	}
	if clCreateSubDevices == nil {
		return nil, ErrDriverNotLoaded
	}
	var props *DevicePartitionProperty
	if len(properties) > 0 {
		props = &properties[0]
	}
	var count uint32
	if status := clCreateSubDevices(d.id, props, 0, nil, &count); status != Success {
		return nil, clError("clCreateSubDevices", status)
	}
	if count == 0 {
		return nil, nil
	}
	ids := make([]DeviceID, count)
	if status := clCreateSubDevices(d.id, props, count, &ids[0], nil); status != Success {
		return nil, clError("clCreateSubDevices", status)
	}
	subs := make([]*Device, count)
	for i, id := range ids {
		observeAcquire("device")
		subs[i] = &Device{id: id, owned: true}
	}
	return subs, nil
}

// Info fetches a raw device parameter.
func (d *Device) Info(param DeviceInfo) ([]byte, error) {
	if err := d.guard(); err != nil {
		return nil, err
	}
	if clGetDeviceInfo == nil {
		return nil, ErrDriverNotLoaded
	}
	return getInfoBytes("clGetDeviceInfo", d.infoCall(param))
}

func (d *Device) infoCall(param DeviceInfo) infoFunc {
	return func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return clGetDeviceInfo(d.id, param, size, value, sizeRet)
	}
}

func (d *Device) infoString(param DeviceInfo) (string, error) {
	if err := d.guard(); err != nil {
		return "", err
	}
	if clGetDeviceInfo == nil {
		return "", ErrDriverNotLoaded
	}
	return getInfoString("clGetDeviceInfo", d.infoCall(param))
}

func (d *Device) infoUint32(param DeviceInfo) (uint32, error) {
	if err := d.guard(); err != nil {
		return 0, err
	}
	if clGetDeviceInfo == nil {
		return 0, ErrDriverNotLoaded
	}
	return getInfoUint32("clGetDeviceInfo", d.infoCall(param))
}

func (d *Device) infoUint64(param DeviceInfo) (uint64, error) {
	if err := d.guard(); err != nil {
		return 0, err
	}
	if clGetDeviceInfo == nil {
		return 0, ErrDriverNotLoaded
	}
	return getInfoUint64("clGetDeviceInfo", d.infoCall(param))
}

// Name returns CL_DEVICE_NAME.
func (d *Device) Name() (string, error) { return d.infoString(DeviceNameInfo) }

// Vendor returns CL_DEVICE_VENDOR.
func (d *Device) Vendor() (string, error) { return d.infoString(DeviceVendorInfo) }

// Version returns CL_DEVICE_VERSION.
func (d *Device) Version() (string, error) { return d.infoString(DeviceVersionInfo) }

// DriverVersion returns CL_DRIVER_VERSION.
func (d *Device) DriverVersion() (string, error) { return d.infoString(DriverVersionInfo) }

// Profile returns CL_DEVICE_PROFILE.
func (d *Device) Profile() (string, error) { return d.infoString(DeviceProfileInfo) }

// OpenCLCVersion returns CL_DEVICE_OPENCL_C_VERSION.
func (d *Device) OpenCLCVersion() (string, error) { return d.infoString(DeviceOpenCLCVersion) }

// Extensions returns the device extension names.
func (d *Device) Extensions() ([]string, error) {
	s, err := d.infoString(DeviceExtensionsInfo)
	if err != nil {
		return nil, err
	}
	return spaceSeparated(s), nil
}

// Type returns CL_DEVICE_TYPE.
func (d *Device) Type() (DeviceType, error) {
	v, err := d.infoUint64(DeviceTypeInfo)
	return DeviceType(v), err
}

// MaxComputeUnits returns CL_DEVICE_MAX_COMPUTE_UNITS.
func (d *Device) MaxComputeUnits() (uint32, error) { return d.infoUint32(DeviceMaxComputeUnits) }

// MaxClockFrequency returns CL_DEVICE_MAX_CLOCK_FREQUENCY in MHz.
func (d *Device) MaxClockFrequency() (uint32, error) { return d.infoUint32(DeviceMaxClockFrequency) }

// GlobalMemSize returns CL_DEVICE_GLOBAL_MEM_SIZE in bytes.
func (d *Device) GlobalMemSize() (uint64, error) { return d.infoUint64(DeviceGlobalMemSize) }

// LocalMemSize returns CL_DEVICE_LOCAL_MEM_SIZE in bytes.
func (d *Device) LocalMemSize() (uint64, error) { return d.infoUint64(DeviceLocalMemSize) }

// MaxMemAllocSize returns CL_DEVICE_MAX_MEM_ALLOC_SIZE in bytes.
func (d *Device) MaxMemAllocSize() (uint64, error) { return d.infoUint64(DeviceMaxMemAllocSize) }

// MaxWorkGroupSize returns CL_DEVICE_MAX_WORK_GROUP_SIZE.
func (d *Device) MaxWorkGroupSize() (uintptr, error) {
	if err := d.guard(); err != nil {
		return 0, err
	}
	if clGetDeviceInfo == nil {
		return 0, ErrDriverNotLoaded
	}
	return getInfoSize("clGetDeviceInfo", d.infoCall(DeviceMaxWorkGroupSize))
}

// MaxWorkItemSizes returns CL_DEVICE_MAX_WORK_ITEM_SIZES.
func (d *Device) MaxWorkItemSizes() ([]uintptr, error) {
	if err := d.guard(); err != nil {
		return nil, err
	}
	if clGetDeviceInfo == nil {
		return nil, ErrDriverNotLoaded
	}
	return getInfoSizes("clGetDeviceInfo", d.infoCall(DeviceMaxWorkItemSizes))
}

// Available returns CL_DEVICE_AVAILABLE.
func (d *Device) Available() (bool, error) {
	v, err := d.infoUint32(DeviceAvailable)
	return v != 0, err
}
