package cl

import "unsafe"

// Event owns a native cl_event handle. Events returned by enqueue operations
// track asynchronous command completion; the binding forwards waits to the
// driver and layers no host-side synchronization on top.
type Event struct {
	handle
	id EventID
}

// CreateUserEvent creates a user event in the Submitted state.
func CreateUserEvent(ctx *Context) (*Event, error) {
	if clCreateUserEvent == nil {
		return nil, ErrDriverNotLoaded
	}
	if err := ctx.guard(); err != nil {
		return nil, err
	}
	var status Status
	id := clCreateUserEvent(ctx.id, &status)
	if status != Success {
		return nil, clError("clCreateUserEvent", status)
	}
	observeAcquire("event")
	return &Event{id: id}, nil
}

// WaitForEvents blocks until every listed event reaches Complete or an
// associated command fails.
func WaitForEvents(events ...*Event) error {
	if clWaitForEvents == nil {
		return ErrDriverNotLoaded
	}
	if len(events) == 0 {
		return clError("clWaitForEvents", InvalidValue)
	}
	ids := make([]EventID, len(events))
	for i, e := range events {
		if err := e.guard(); err != nil {
			return err
		}
		ids[i] = e.id
	}
	if status := clWaitForEvents(uint32(len(ids)), &ids[0]); status != Success {
		return clError("clWaitForEvents", status)
	}
	return nil
}

// ID returns the opaque native handle.
func (e *Event) ID() EventID { return e.id }

// Wait blocks until this event completes.
func (e *Event) Wait() error {
	return WaitForEvents(e)
}

// Retain increments the driver-side reference count and returns a new owned
// wrapper.
func (e *Event) Retain() (*Event, error) {
	if err := e.guard(); err != nil {
		return nil, err
	}
	if clRetainEvent == nil {
		return nil, ErrDriverNotLoaded
	}
	if status := clRetainEvent(e.id); status != Success {
		return nil, clError("clRetainEvent", status)
	}
	observeAcquire("event")
	return &Event{id: e.id}, nil
}

// Release decrements the driver-side reference count, exactly once.
func (e *Event) Release() error {
	return e.release("clReleaseEvent", "event", func() Status {
		return clReleaseEvent(e.id)
	})
}

// SetUserEventStatus moves a user event to Complete or to a negative error
// status. It may be called exactly once per user event, a rule enforced by
// the driver.
func (e *Event) SetUserEventStatus(status int32) error {
	if err := e.guard(); err != nil {
		return err
	}
	if clSetUserEventStatus == nil {
		return ErrDriverNotLoaded
	}
	if st := clSetUserEventStatus(e.id, status); st != Success {
		return clError("clSetUserEventStatus", st)
	}
	return nil
}

// SetCallback registers notify for the given execution status transition.
// The closure is pinned until the driver delivers it; the driver calls each
// registered callback exactly once.
func (e *Event) SetCallback(callbackType int32, notify EventNotify) error {
	if err := e.guard(); err != nil {
		return err
	}
	if clSetEventCallback == nil {
		return ErrDriverNotLoaded
	}
	id := callbacks.pin(notify)
	if status := clSetEventCallback(e.id, callbackType, id); status != Success {
		callbacks.unpin(id)
		return clError("clSetEventCallback", status)
	}
	return nil
}

// Info fetches a raw event parameter.
func (e *Event) Info(param EventInfo) ([]byte, error) {
	if err := e.guard(); err != nil {
		return nil, err
	}
	if clGetEventInfo == nil {
		return nil, ErrDriverNotLoaded
	}
	return getInfoBytes("clGetEventInfo", e.infoCall(param))
}

func (e *Event) infoCall(param EventInfo) infoFunc {
	return func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return clGetEventInfo(e.id, param, size, value, sizeRet)
	}
}

// ExecutionStatus returns CL_EVENT_COMMAND_EXECUTION_STATUS: one of Queued,
// Submitted, Running, Complete, or a negative error status.
func (e *Event) ExecutionStatus() (int32, error) {
	if err := e.guard(); err != nil {
		return 0, err
	}
	if clGetEventInfo == nil {
		return 0, ErrDriverNotLoaded
	}
	v, err := getInfoUint32("clGetEventInfo", e.infoCall(EventExecutionStatus))
	return int32(v), err
}

// ProfilingInfo returns a device time counter in nanoseconds. Requires the
// queue to have been created with QueueProfiling; otherwise the driver
// reports ProfilingInfoNotAvail.
func (e *Event) ProfilingInfo(param ProfilingInfo) (uint64, error) {
	if err := e.guard(); err != nil {
		return 0, err
	}
	if clGetEventProfilingInfo == nil {
		return 0, ErrDriverNotLoaded
	}
	return getInfoUint64("clGetEventProfilingInfo", func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status {
		return clGetEventProfilingInfo(e.id, param, size, value, sizeRet)
	})
}

// Duration returns the device-side execution time of the command, the
// difference between the start and end profiling counters.
func (e *Event) Duration() (uint64, error) {
	start, err := e.ProfilingInfo(ProfilingCommandStart)
	if err != nil {
		return 0, err
	}
	end, err := e.ProfilingInfo(ProfilingCommandEnd)
	if err != nil {
		return 0, err
	}
	return end - start, nil
}
