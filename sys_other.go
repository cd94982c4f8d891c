// Completion: 100% - Fallback for unsupported targets
//go:build !linux || (!amd64 && !386 && !arm && !arm64 && !riscv64)

package nocrt

// NewSyscaller returns the native syscall backend. The compiled target has
// none, so this always panics. Stub generation and decoding still work on
// such targets; only the kernel transition itself is missing.
func NewSyscaller() Syscaller {
	panic("nocrt: no syscall backend for this target (need linux on amd64, 386, arm, arm64 or riscv64)")
}
