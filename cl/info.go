package cl

import (
	"strings"
	"unsafe"
)

// infoFunc is one bound parameter query: the object and parameter name are
// captured, only the buffer plumbing varies between the two calls of the
// size-then-fetch convention.
type infoFunc func(size uintptr, value unsafe.Pointer, sizeRet *uintptr) Status

// getInfoBytes performs the native two-call convention: first call with a nil
// buffer to learn the required size, second call with a buffer of exactly
// that size. No fixed maximum is assumed.
func getInfoBytes(op string, call infoFunc) ([]byte, error) {
	var size uintptr
	if status := call(0, nil, &size); status != Success {
		return nil, clError(op, status)
	}
	if size == 0 {
		return nil, nil
	}
	buf := make([]byte, size)
	if status := call(size, unsafe.Pointer(&buf[0]), nil); status != Success {
		return nil, clError(op, status)
	}
	return buf, nil
}

// getInfoString fetches a string-valued parameter and strips the trailing
// NUL terminator the native API includes in the reported size.
func getInfoString(op string, call infoFunc) (string, error) {
	raw, err := getInfoBytes(op, call)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(raw), "\x00"), nil
}

func getInfoUint32(op string, call infoFunc) (uint32, error) {
	var v uint32
	if status := call(unsafe.Sizeof(v), unsafe.Pointer(&v), nil); status != Success {
		return 0, clError(op, status)
	}
	return v, nil
}

func getInfoUint64(op string, call infoFunc) (uint64, error) {
	var v uint64
	if status := call(unsafe.Sizeof(v), unsafe.Pointer(&v), nil); status != Success {
		return 0, clError(op, status)
	}
	return v, nil
}

func getInfoSize(op string, call infoFunc) (uintptr, error) {
	var v uintptr
	if status := call(unsafe.Sizeof(v), unsafe.Pointer(&v), nil); status != Success {
		return 0, clError(op, status)
	}
	return v, nil
}

// getInfoSizes fetches a variable-length list of size_t values, sized by the
// first call's reported byte count.
func getInfoSizes(op string, call infoFunc) ([]uintptr, error) {
	raw, err := getInfoBytes(op, call)
	if err != nil || len(raw) == 0 {
		return nil, err
	}
	n := len(raw) / int(unsafe.Sizeof(uintptr(0)))
	out := make([]uintptr, n)
	copy(out, unsafe.Slice((*uintptr)(unsafe.Pointer(&raw[0])), n))
	return out, nil
}

// nulTerminated returns s as a NUL-terminated byte sequence for handing to
// native entry points that expect C strings.
func nulTerminated(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// spaceSeparated splits an extensions-style string into its fields.
func spaceSeparated(s string) []string {
	return strings.Fields(s)
}
