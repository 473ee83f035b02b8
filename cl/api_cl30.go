//go:build cl30
// +build cl30

package cl

import "unsafe"

// OpenCL 3.0 surface.

var (
	clCreateBufferWithProperties   func(context ContextID, properties *MemProperty, flags MemFlags, size uintptr, hostPtr unsafe.Pointer, errRet *Status) MemID
	clCreateImageWithProperties    func(context ContextID, properties *MemProperty, flags MemFlags, format *ImageFormat, desc *ImageDesc, hostPtr unsafe.Pointer, errRet *Status) MemID
	clSetContextDestructorCallback func(context ContextID, notify uintptr) Status
)

// MemProperty is an entry of the zero-terminated cl_mem_properties list. The
// core specification defines no properties yet; extensions do.
type MemProperty uint64

// CreateBufferWithProperties creates a buffer with the raw zero-terminated
// property list; pass nil for none.
func CreateBufferWithProperties(ctx *Context, properties []MemProperty, flags MemFlags, size uintptr, hostData []byte) (*Buffer, error) {
	if clCreateBufferWithProperties == nil {
		return nil, ErrDriverNotLoaded
	}
	if err := ctx.guard(); err != nil {
		return nil, err
	}
	var props *MemProperty
	if len(properties) > 0 {
		props = &properties[0]
	}
	var hostPtr unsafe.Pointer
	if len(hostData) > 0 {
		hostPtr = unsafe.Pointer(&hostData[0])
	}
	var status Status
	id := clCreateBufferWithProperties(ctx.id, props, flags, size, hostPtr, &status)
	if status != Success {
		return nil, clError("clCreateBufferWithProperties", status)
	}
	observeAcquire("mem")
	return &Buffer{MemObject{id: id}}, nil
}

// CreateImageWithProperties creates an image with the raw zero-terminated
// property list; pass nil for none.
func CreateImageWithProperties(ctx *Context, properties []MemProperty, flags MemFlags, format ImageFormat, desc ImageDesc, hostData []byte) (*Image, error) {
	if clCreateImageWithProperties == nil {
		return nil, ErrDriverNotLoaded
	}
	if err := ctx.guard(); err != nil {
		return nil, err
	}
	var props *MemProperty
	if len(properties) > 0 {
		props = &properties[0]
	}
	var hostPtr unsafe.Pointer
	if len(hostData) > 0 {
		hostPtr = unsafe.Pointer(&hostData[0])
	}
	var status Status
	id := clCreateImageWithProperties(ctx.id, props, flags, &format, &desc, hostPtr, &status)
	if status != Success {
		return nil, clError("clCreateImageWithProperties", status)
	}
	observeAcquire("mem")
	return &Image{MemObject{id: id}}, nil
}

// SetDestructorCallback registers notify to fire when the context is being
// destroyed by the driver. Callbacks fire in reverse registration order; the
// closure stays pinned until delivery.
func (c *Context) SetDestructorCallback(notify func()) error {
	if err := c.guard(); err != nil {
		return err
	}
	if clSetContextDestructorCallback == nil {
		return ErrDriverNotLoaded
	}
	id := callbacks.pin(MemDestructorNotify(notify))
	if status := clSetContextDestructorCallback(c.id, id); status != Success {
		callbacks.unpin(id)
		return clError("clSetContextDestructorCallback", status)
	}
	return nil
}

// NumericVersion returns CL_PLATFORM_NUMERIC_VERSION.
func (p Platform) NumericVersion() (uint32, error) {
	if clGetPlatformInfo == nil {
		return 0, ErrDriverNotLoaded
	}
	return getInfoUint32("clGetPlatformInfo", p.infoCall(PlatformNumericVersion))
}

// ExtensionsWithVersion returns CL_PLATFORM_EXTENSIONS_WITH_VERSION as
// name/version pairs.
func (p Platform) ExtensionsWithVersion() ([]NameVersion, error) {
	if clGetPlatformInfo == nil {
		return nil, ErrDriverNotLoaded
	}
	raw, err := getInfoBytes("clGetPlatformInfo", p.infoCall(PlatformExtensionsWithVersion))
	if err != nil || len(raw) == 0 {
		return nil, err
	}
	// cl_name_version is a packed uint32 followed by a 64-byte name.
	const entrySize = 4 + 64
	n := len(raw) / entrySize
	out := make([]NameVersion, 0, n)
	for i := 0; i < n; i++ {
		entry := raw[i*entrySize : (i+1)*entrySize]
		version := uint32(entry[0]) | uint32(entry[1])<<8 | uint32(entry[2])<<16 | uint32(entry[3])<<24
		name := entry[4:]
		end := 0
		for end < len(name) && name[end] != 0 {
			end++
		}
		out = append(out, NameVersion{Version: version, Name: string(name[:end])})
	}
	return out, nil
}
