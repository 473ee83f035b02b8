package cl

import "unsafe"

// CommandQueue owns a native cl_command_queue handle.
type CommandQueue struct {
	handle
	id QueueID
}

// CreateCommandQueue creates an in-order command queue on the device using
// the OpenCL 1.2 entry point. On 2.0-capable builds prefer
// CreateCommandQueueWithProperties.
func CreateCommandQueue(ctx *Context, device *Device, properties QueueProperties) (*CommandQueue, error) {
	if clCreateCommandQueue == nil {
		return nil, ErrDriverNotLoaded
	}
	if err := ctx.guard(); err != nil {
		return nil, err
	}
	if err := device.guard(); err != nil {
		return nil, err
	}
	var status Status
	id := clCreateCommandQueue(ctx.id, device.id, properties, &status)
	if status != Success {
		return nil, clError("clCreateCommandQueue", status)
	}
	observeAcquire("queue")
	return &CommandQueue{id: id}, nil
}

// ID returns the opaque native handle.
func (q *CommandQueue) ID() QueueID { return q.id }

// Retain increments the driver-side reference count and returns a new owned
// wrapper.
func (q *CommandQueue) Retain() (*CommandQueue, error) {
	if err := q.guard(); err != nil {
		return nil, err
	}
	if clRetainCommandQueue == nil {
		return nil, ErrDriverNotLoaded
	}
	if status := clRetainCommandQueue(q.id); status != Success {
		return nil, clError("clRetainCommandQueue", status)
	}
	observeAcquire("queue")
	return &CommandQueue{id: q.id}, nil
}

// Release decrements the driver-side reference count, exactly once.
func (q *CommandQueue) Release() error {
	return q.release("clReleaseCommandQueue", "queue", func() Status {
		return clReleaseCommandQueue(q.id)
	})
}

// Flush submits all queued commands to the device.
func (q *CommandQueue) Flush() error {
	if err := q.guard(); err != nil {
		return err
	}
	if clFlush == nil {
		return ErrDriverNotLoaded
	}
	if status := clFlush(q.id); status != Success {
		return clError("clFlush", status)
	}
	return nil
}

// Finish blocks until all queued commands have completed. Blocking happens in
// the driver; the binding adds no timeout of its own.
func (q *CommandQueue) Finish() error {
	if err := q.guard(); err != nil {
		return err
	}
	if clFinish == nil {
		return ErrDriverNotLoaded
	}
	if status := clFinish(q.id); status != Success {
		return clError("clFinish", status)
	}
	return nil
}

// Info fetches a raw queue parameter.
func (q *CommandQueue) Info(param QueueInfo) ([]byte, error) {
	if err := q.guard(); err != nil {
		return nil, err
	}
	if clGetCommandQueueInfo == nil {
		return nil, ErrDriverNotLoaded
	}
	return getInfoBytes("clGetCommandQueueInfo", q.infoCall(param))
}

func (q *CommandQueue) infoCall(param QueueInfo) infoFunc {
	return func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return clGetCommandQueueInfo(q.id, param, size, value, sizeRet)
	}
}

// ReferenceCount returns CL_QUEUE_REFERENCE_COUNT.
func (q *CommandQueue) ReferenceCount() (uint32, error) {
	if err := q.guard(); err != nil {
		return 0, err
	}
	if clGetCommandQueueInfo == nil {
		return 0, ErrDriverNotLoaded
	}
	return getInfoUint32("clGetCommandQueueInfo", q.infoCall(QueueReferenceCount))
}

// Properties returns CL_QUEUE_PROPERTIES.
func (q *CommandQueue) Properties() (QueueProperties, error) {
	if err := q.guard(); err != nil {
		return 0, err
	}
	if clGetCommandQueueInfo == nil {
		return 0, ErrDriverNotLoaded
	}
	v, err := getInfoUint64("clGetCommandQueueInfo", q.infoCall(QueuePropertiesInfo))
	return QueueProperties(v), err
}
