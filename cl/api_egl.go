//go:build clegl
// +build clegl

package cl

// cl_khr_egl_image and cl_khr_egl_event interop. Requires a driver exporting
// the KHR entry points; select with the clegl build tag.

// EGL handles are opaque to OpenCL just as CL handles are opaque to us.
type (
	EGLDisplay uintptr
	EGLImage   uintptr
	EGLSync    uintptr
)

// EGLImageProperty is an entry of the zero-terminated
// cl_egl_image_properties_khr list.
type EGLImageProperty uintptr

var (
	clCreateFromEGLImageKHR       func(context ContextID, display EGLDisplay, image EGLImage, flags MemFlags, properties *EGLImageProperty, errRet *Status) MemID
	clEnqueueAcquireEGLObjectsKHR func(queue QueueID, numObjects uint32, objects *MemID, numWait uint32, waitList *EventID, event *EventID) Status
	clEnqueueReleaseEGLObjectsKHR func(queue QueueID, numObjects uint32, objects *MemID, numWait uint32, waitList *EventID, event *EventID) Status
	clCreateEventFromEGLSyncKHR   func(context ContextID, sync EGLSync, display EGLDisplay, errRet *Status) EventID
)

// CreateFromEGLImage creates a memory object backed by an EGL image. The
// returned object is owned like any other memory object.
func CreateFromEGLImage(ctx *Context, display EGLDisplay, image EGLImage, flags MemFlags, properties []EGLImageProperty) (*Image, error) {
	if clCreateFromEGLImageKHR == nil {
		return nil, ErrDriverNotLoaded
	}
	if err := ctx.guard(); err != nil {
		return nil, err
	}
	var props *EGLImageProperty
	if len(properties) > 0 {
		props = &properties[0]
	}
	var status Status
	id := clCreateFromEGLImageKHR(ctx.id, display, image, flags, props, &status)
	if status != Success {
		return nil, clError("clCreateFromEGLImageKHR", status)
	}
	observeAcquire("mem")
	return &Image{MemObject{id: id}}, nil
}

func eglObjectArgs(objects []*MemObject) (uint32, *MemID, error) {
	if len(objects) == 0 {
		return 0, nil, clError("clEnqueueAcquireEGLObjectsKHR", InvalidValue)
	}
	ids := make([]MemID, len(objects))
	for i, o := range objects {
		if err := o.guard(); err != nil {
			return 0, nil, err
		}
		ids[i] = o.id
	}
	return uint32(len(ids)), &ids[0], nil
}

// EnqueueAcquireEGLObjects acquires EGL-backed memory objects for use by
// OpenCL.
func (q *CommandQueue) EnqueueAcquireEGLObjects(objects []*MemObject, waitList []*Event) (*Event, error) {
	if err := q.guard(); err != nil {
		return nil, err
	}
	if clEnqueueAcquireEGLObjectsKHR == nil {
		return nil, ErrDriverNotLoaded
	}
	num, ids, err := eglObjectArgs(objects)
	if err != nil {
		return nil, err
	}
	numWait, wait, err := eventArgs(waitList)
	if err != nil {
		return nil, err
	}
	var eventID EventID
	status := clEnqueueAcquireEGLObjectsKHR(q.id, num, ids, numWait, wait, &eventID)
	if status != Success {
		return nil, clError("clEnqueueAcquireEGLObjectsKHR", status)
	}
	ev := q.enqueueEvent()
	ev.id = eventID
	return ev, nil
}

// EnqueueReleaseEGLObjects releases EGL-backed memory objects back to EGL.
func (q *CommandQueue) EnqueueReleaseEGLObjects(objects []*MemObject, waitList []*Event) (*Event, error) {
	if err := q.guard(); err != nil {
		return nil, err
	}
	if clEnqueueReleaseEGLObjectsKHR == nil {
		return nil, ErrDriverNotLoaded
	}
	num, ids, err := eglObjectArgs(objects)
	if err != nil {
		return nil, err
	}
	numWait, wait, err := eventArgs(waitList)
	if err != nil {
		return nil, err
	}
	var eventID EventID
	status := clEnqueueReleaseEGLObjectsKHR(q.id, num, ids, numWait, wait, &eventID)
	if status != Success {
		return nil, clError("clEnqueueReleaseEGLObjectsKHR", status)
	}
	ev := q.enqueueEvent()
	ev.id = eventID
	return ev, nil
}

// CreateEventFromEGLSync creates an event linked to an EGL fence sync object.
func CreateEventFromEGLSync(ctx *Context, sync EGLSync, display EGLDisplay) (*Event, error) {
	if clCreateEventFromEGLSyncKHR == nil {
		return nil, ErrDriverNotLoaded
	}
	if err := ctx.guard(); err != nil {
		return nil, err
	}
	var status Status
	id := clCreateEventFromEGLSyncKHR(ctx.id, sync, display, &status)
	if status != Success {
		return nil, clError("clCreateEventFromEGLSyncKHR", status)
	}
	observeAcquire("event")
	return &Event{id: id}, nil
}
