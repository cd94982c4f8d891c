//go:build linux && (amd64 || 386 || arm || arm64 || riscv64)

package nocrt

import "unsafe"

// Test-only address helpers. The raw transitions take plain machine words,
// so the caller has to pin the memory itself (runtime.KeepAlive after the
// call).

func fdsAddr(fds *[2]int32) uintptr {
	return uintptr(unsafe.Pointer(fds))
}

func bufAddr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}
