// Completion: 100% - RISC-V64 syscall backend complete
//go:build linux && riscv64

package nocrt

// Raw kernel transitions for RISC-V64, implemented in sys_linux_riscv64.s
// with the `ecall` instruction.
//
// Arguments are passed as:
//	Nr: a7
//	Args: a0, a1, a2, a3, a4, a5
// Return value is in:
//	Ret: a0
// Note that the first argument register doubles as the result register.

func rawSyscall0(nr uintptr) uintptr
func rawSyscall1(nr, a0 uintptr) uintptr
func rawSyscall2(nr, a0, a1 uintptr) uintptr
func rawSyscall3(nr, a0, a1, a2 uintptr) uintptr
func rawSyscall4(nr, a0, a1, a2, a3 uintptr) uintptr
func rawSyscall5(nr, a0, a1, a2, a3, a4 uintptr) uintptr
func rawSyscall6(nr, a0, a1, a2, a3, a4, a5 uintptr) uintptr

// linuxDispatch invokes syscalls on the compiled-for architecture through
// tuned sequences per arity. It is stateless and freely copyable.
type linuxDispatch struct{}

func (linuxDispatch) Syscall0(nr uintptr) uintptr { return rawSyscall0(nr) }
func (linuxDispatch) Syscall1(nr, a0 uintptr) uintptr {
	return rawSyscall1(nr, a0)
}
func (linuxDispatch) Syscall2(nr, a0, a1 uintptr) uintptr {
	return rawSyscall2(nr, a0, a1)
}
func (linuxDispatch) Syscall3(nr, a0, a1, a2 uintptr) uintptr {
	return rawSyscall3(nr, a0, a1, a2)
}
func (linuxDispatch) Syscall4(nr, a0, a1, a2, a3 uintptr) uintptr {
	return rawSyscall4(nr, a0, a1, a2, a3)
}
func (linuxDispatch) Syscall5(nr, a0, a1, a2, a3, a4 uintptr) uintptr {
	return rawSyscall5(nr, a0, a1, a2, a3, a4)
}
func (linuxDispatch) Syscall6(nr, a0, a1, a2, a3, a4, a5 uintptr) uintptr {
	return rawSyscall6(nr, a0, a1, a2, a3, a4, a5)
}

// NewSyscaller returns the native syscall backend for the compiled target.
//
// The transitions do not notify the Go scheduler, so a call that can block
// indefinitely will stall the whole OS thread. That is the intended
// tradeoff: the dispatch path stays a direct, statically resolved
// instruction sequence.
func NewSyscaller() Syscaller {
	return linuxDispatch{}
}
