//go:build cl22 || cl30
// +build cl22 cl30

package cl

import "unsafe"

// OpenCL 2.2 surface.

var (
	clSetProgramReleaseCallback        func(program ProgramID, notify uintptr) Status
	clSetProgramSpecializationConstant func(program ProgramID, specID uint32, size uintptr, value unsafe.Pointer) Status
)

// SetReleaseCallback registers notify to fire when the program's resources
// are destroyed by the driver. The closure stays pinned until delivery.
func (p *Program) SetReleaseCallback(notify func()) error {
	if err := p.guard(); err != nil {
		return err
	}
	if clSetProgramReleaseCallback == nil {
		return ErrDriverNotLoaded
	}
	id := callbacks.pin(MemDestructorNotify(notify))
	if status := clSetProgramReleaseCallback(p.id, id); status != Success {
		callbacks.unpin(id)
		return clError("clSetProgramReleaseCallback", status)
	}
	return nil
}

// SetSpecializationConstant sets the value of a SPIR-V specialization
// constant before the program is built.
func (p *Program) SetSpecializationConstant(specID uint32, value []byte) error {
	if err := p.guard(); err != nil {
		return err
	}
	if clSetProgramSpecializationConstant == nil {
		return ErrDriverNotLoaded
	}
	if len(value) == 0 {
		return clError("clSetProgramSpecializationConstant", InvalidValue)
	}
	if status := clSetProgramSpecializationConstant(p.id, specID, uintptr(len(value)), unsafe.Pointer(&value[0])); status != Success {
		return clError("clSetProgramSpecializationConstant", status)
	}
	return nil
}
