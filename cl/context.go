package cl

import "unsafe"

// Context owns a native cl_context handle. Any notify callback registered at
// creation stays pinned until Release, since the driver may deliver
// asynchronous error reports for the context's whole lifetime.
type Context struct {
	handle
	id       ContextID
	notifyID uintptr
}

// CreateContext creates a context over the given devices, optionally pinned
// to the platform when platform is non-nil. notify may be nil.
func CreateContext(platform *Platform, devices []*Device, notify ContextNotify) (*Context, error) {
	if clCreateContext == nil {
		return nil, ErrDriverNotLoaded
	}
	if len(devices) == 0 {
		return nil, clError("clCreateContext", InvalidValue)
	}
	ids := make([]DeviceID, len(devices))
	for i, d := range devices {
		if err := d.guard(); err != nil {
			return nil, err
		}
		ids[i] = d.id
	}
	var props *ContextProperty
	if platform != nil {
		list := []ContextProperty{ContextPlatform, ContextProperty(platform.id), 0}
		props = &list[0]
	}
	var notifyID uintptr
	if notify != nil {
		notifyID = callbacks.pin(notify)
	}
	var status Status
	id := clCreateContext(props, uint32(len(ids)), &ids[0], notifyID, &status)
	if status != Success {
		callbacks.unpin(notifyID)
		return nil, clError("clCreateContext", status)
	}
	observeAcquire("context")
	return &Context{id: id, notifyID: notifyID}, nil
}

// CreateContextFromType creates a context over all devices of the given type.
func CreateContextFromType(platform *Platform, deviceType DeviceType, notify ContextNotify) (*Context, error) {
	if clCreateContextFromType == nil {
		return nil, ErrDriverNotLoaded
	}
	var props *ContextProperty
	if platform != nil {
		list := []ContextProperty{ContextPlatform, ContextProperty(platform.id), 0}
		props = &list[0]
	}
	var notifyID uintptr
	if notify != nil {
		notifyID = callbacks.pin(notify)
	}
	var status Status
	id := clCreateContextFromType(props, deviceType, notifyID, &status)
	if status != Success {
		callbacks.unpin(notifyID)
		return nil, clError("clCreateContextFromType", status)
	}
	observeAcquire("context")
	return &Context{id: id, notifyID: notifyID}, nil
}

// ID returns the opaque native handle.
func (c *Context) ID() ContextID { return c.id }

// Retain increments the driver-side reference count and returns a new owned
// wrapper. The notify callback stays pinned to the original wrapper.
func (c *Context) Retain() (*Context, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	if clRetainContext == nil {
		return nil, ErrDriverNotLoaded
	}
	if status := clRetainContext(c.id); status != Success {
		return nil, clError("clRetainContext", status)
	}
	observeAcquire("context")
	return &Context{id: c.id}, nil
}

// Release decrements the driver-side reference count, exactly once, and
// unpins the notify callback.
func (c *Context) Release() error {
	err := c.release("clReleaseContext", "context", func() Status {
		return clReleaseContext(c.id)
	})
	if err == nil {
		callbacks.unpin(c.notifyID)
	}
	return err
}

// Info fetches a raw context parameter.
func (c *Context) Info(param ContextInfo) ([]byte, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	if clGetContextInfo == nil {
		return nil, ErrDriverNotLoaded
	}
	return getInfoBytes("clGetContextInfo", c.infoCall(param))
}

func (c *Context) infoCall(param ContextInfo) infoFunc {
	return func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return clGetContextInfo(c.id, param, size, value, sizeRet)
	}
}

// ReferenceCount returns CL_CONTEXT_REFERENCE_COUNT. The value is advisory:
// it reflects the driver's count at query time.
func (c *Context) ReferenceCount() (uint32, error) {
	if err := c.guard(); err != nil {
		return 0, err
	}
	if clGetContextInfo == nil {
		return 0, ErrDriverNotLoaded
	}
	return getInfoUint32("clGetContextInfo", c.infoCall(ContextReferenceCount))
}

// NumDevices returns CL_CONTEXT_NUM_DEVICES.
func (c *Context) NumDevices() (uint32, error) {
	if err := c.guard(); err != nil {
		return 0, err
	}
	if clGetContextInfo == nil {
		return 0, ErrDriverNotLoaded
	}
	return getInfoUint32("clGetContextInfo", c.infoCall(ContextNumDevices))
}

// Devices returns the devices the context was created over, borrowed.
func (c *Context) Devices() ([]*Device, error) {
	raw, err := c.Info(ContextDevices)
	if err != nil || len(raw) == 0 {
		return nil, err
	}
	n := len(raw) / int(unsafe.Sizeof(DeviceID(0)))
	ids := unsafe.Slice((*DeviceID)(unsafe.Pointer(&raw[0])), n)
	devices := make([]*Device, n)
	for i, id := range ids {
		devices[i] = &Device{id: id}
	}
	return devices, nil
}
