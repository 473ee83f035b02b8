package cl

import "unsafe"

// MemObject is the shared lifecycle of buffer and image handles.
type MemObject struct {
	handle
	id MemID
}

// Buffer owns a native buffer object.
type Buffer struct {
	MemObject
}

// Image owns a native image object.
type Image struct {
	MemObject
}

// CreateBuffer creates a buffer of size bytes. hostData may be nil; when the
// flags include MemUseHostPtr or MemCopyHostPtr it must cover size bytes.
// With MemUseHostPtr the caller keeps hostData alive for the buffer's
// lifetime, as the native specification requires.
func CreateBuffer(ctx *Context, flags MemFlags, size uintptr, hostData []byte) (*Buffer, error) {
	if clCreateBuffer == nil {
		return nil, ErrDriverNotLoaded
	}
	if err := ctx.guard(); err != nil {
		return nil, err
	}
	var hostPtr unsafe.Pointer
	if len(hostData) > 0 {
		hostPtr = unsafe.Pointer(&hostData[0])
	}
	var status Status
	id := clCreateBuffer(ctx.id, flags, size, hostPtr, &status)
	if status != Success {
		return nil, clError("clCreateBuffer", status)
	}
	observeAcquire("mem")
	return &Buffer{MemObject{id: id}}, nil
}

// CreateSubBuffer creates a buffer aliasing a region of b. The sub-buffer is
// an independently owned object with its own release obligation.
func (b *Buffer) CreateSubBuffer(flags MemFlags, origin, size uintptr) (*Buffer, error) {
	if err := b.guard(); err != nil {
		return nil, err
	}
	if clCreateSubBuffer == nil {
		return nil, ErrDriverNotLoaded
	}
	var status Status
	id := clCreateSubBuffer(b.id, flags, origin, size, &status)
	if status != Success {
		return nil, clError("clCreateSubBuffer", status)
	}
	observeAcquire("mem")
	return &Buffer{MemObject{id: id}}, nil
}

// CreateImage creates an image described by format and desc. hostData rules
// match CreateBuffer.
func CreateImage(ctx *Context, flags MemFlags, format ImageFormat, desc ImageDesc, hostData []byte) (*Image, error) {
	if clCreateImage == nil {
		return nil, ErrDriverNotLoaded
	}
	if err := ctx.guard(); err != nil {
		return nil, err
	}
	var hostPtr unsafe.Pointer
	if len(hostData) > 0 {
		hostPtr = unsafe.Pointer(&hostData[0])
	}
	var status Status
	id := clCreateImage(ctx.id, flags, &format, &desc, hostPtr, &status)
	if status != Success {
		return nil, clError("clCreateImage", status)
	}
	observeAcquire("mem")
	return &Image{MemObject{id: id}}, nil
}

// GetSupportedImageFormats lists the image formats the context supports for
// the given flags and image type, using the two-call convention.
func GetSupportedImageFormats(ctx *Context, flags MemFlags, imageType MemObjectType) ([]ImageFormat, error) {
	if clGetSupportedImageFormats == nil {
		return nil, ErrDriverNotLoaded
	}
	if err := ctx.guard(); err != nil {
		return nil, err
	}
	var count uint32
	if status := clGetSupportedImageFormats(ctx.id, flags, imageType, 0, nil, &count); status != Success {
		return nil, clError("clGetSupportedImageFormats", status)
	}
	if count == 0 {
		return nil, nil
	}
	formats := make([]ImageFormat, count)
	if status := clGetSupportedImageFormats(ctx.id, flags, imageType, count, &formats[0], nil); status != Success {
		return nil, clError("clGetSupportedImageFormats", status)
	}
	return formats, nil
}

// ID returns the opaque native handle.
func (m *MemObject) ID() MemID { return m.id }

// Retain increments the driver-side reference count and returns a new owned
// handle for the same memory object.
func (m *MemObject) Retain() (*MemObject, error) {
	if err := m.guard(); err != nil {
		return nil, err
	}
	if clRetainMemObject == nil {
		return nil, ErrDriverNotLoaded
	}
	if status := clRetainMemObject(m.id); status != Success {
		return nil, clError("clRetainMemObject", status)
	}
	observeAcquire("mem")
	return &MemObject{id: m.id}, nil
}

// Release decrements the driver-side reference count, exactly once.
func (m *MemObject) Release() error {
	return m.release("clReleaseMemObject", "mem", func() Status {
		return clReleaseMemObject(m.id)
	})
}

// SetDestructorCallback registers notify to run when the driver frees the
// memory object's resources. The closure stays pinned until the driver
// delivers it; callbacks fire in reverse registration order per the native
// specification.
func (m *MemObject) SetDestructorCallback(notify MemDestructorNotify) error {
	if err := m.guard(); err != nil {
		return err
	}
	if clSetMemObjectDestructorCallback == nil {
		return ErrDriverNotLoaded
	}
	id := callbacks.pin(notify)
	if status := clSetMemObjectDestructorCallback(m.id, id); status != Success {
		callbacks.unpin(id)
		return clError("clSetMemObjectDestructorCallback", status)
	}
	return nil
}

// Info fetches a raw memory object parameter.
func (m *MemObject) Info(param MemInfo) ([]byte, error) {
	if err := m.guard(); err != nil {
		return nil, err
	}
	if clGetMemObjectInfo == nil {
		return nil, ErrDriverNotLoaded
	}
	return getInfoBytes("clGetMemObjectInfo", m.infoCall(param))
}

func (m *MemObject) infoCall(param MemInfo) infoFunc {
	return func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return clGetMemObjectInfo(m.id, param, size, value, sizeRet)
	}
}

// Size returns CL_MEM_SIZE in bytes.
func (m *MemObject) Size() (uintptr, error) {
	if err := m.guard(); err != nil {
		return 0, err
	}
	if clGetMemObjectInfo == nil {
		return 0, ErrDriverNotLoaded
	}
	return getInfoSize("clGetMemObjectInfo", m.infoCall(MemSize))
}

// ReferenceCount returns CL_MEM_REFERENCE_COUNT.
func (m *MemObject) ReferenceCount() (uint32, error) {
	if err := m.guard(); err != nil {
		return 0, err
	}
	if clGetMemObjectInfo == nil {
		return 0, ErrDriverNotLoaded
	}
	return getInfoUint32("clGetMemObjectInfo", m.infoCall(MemReferenceCount))
}

// Flags returns CL_MEM_FLAGS.
func (m *MemObject) Flags() (MemFlags, error) {
	if err := m.guard(); err != nil {
		return 0, err
	}
	if clGetMemObjectInfo == nil {
		return 0, ErrDriverNotLoaded
	}
	v, err := getInfoUint64("clGetMemObjectInfo", m.infoCall(MemFlagsInfo))
	return MemFlags(v), err
}

// ImageInfo fetches a raw image parameter.
func (im *Image) ImageInfo(param ImageInfo) ([]byte, error) {
	if err := im.guard(); err != nil {
		return nil, err
	}
	if clGetImageInfo == nil {
		return nil, ErrDriverNotLoaded
	}
	return getInfoBytes("clGetImageInfo", func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return clGetImageInfo(im.id, param, size, value, sizeRet)
	})
}

// Width returns CL_IMAGE_WIDTH.
func (im *Image) Width() (uintptr, error) {
	if err := im.guard(); err != nil {
		return 0, err
	}
	if clGetImageInfo == nil {
		return 0, ErrDriverNotLoaded
	}
	return getInfoSize("clGetImageInfo", func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return clGetImageInfo(im.id, ImageWidth, size, value, sizeRet)
	})
}

// Height returns CL_IMAGE_HEIGHT.
func (im *Image) Height() (uintptr, error) {
	if err := im.guard(); err != nil {
		return 0, err
	}
	if clGetImageInfo == nil {
		return 0, ErrDriverNotLoaded
	}
	return getInfoSize("clGetImageInfo", func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return clGetImageInfo(im.id, ImageHeight, size, value, sizeRet)
	})
}
