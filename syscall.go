// Completion: 100% - Portable syscall dispatch interface complete
package nocrt

// Syscaller is the seam between portable code and the per-architecture
// kernel transition. Everything above it is architecture-agnostic; switching
// the target architecture is purely a matter of substituting the value behind
// this interface.
//
// The seven arities are a code-size and clarity optimization, not a semantic
// difference: the transition instruction behaves identically no matter which
// argument registers happen to hold zero. A backend with nothing to gain from
// tuned sequences can implement only Syscall6 and wrap itself in Fanin.
//
// Nothing here is checked. The caller attests that the compiled target
// matches the backend's architecture and that argument values are valid
// machine words for the requested syscall; there is no safety net between
// these calls and kernel-visible memory.
type Syscaller interface {
	Syscall0(nr uintptr) uintptr
	Syscall1(nr, a0 uintptr) uintptr
	Syscall2(nr, a0, a1 uintptr) uintptr
	Syscall3(nr, a0, a1, a2 uintptr) uintptr
	Syscall4(nr, a0, a1, a2, a3 uintptr) uintptr
	Syscall5(nr, a0, a1, a2, a3, a4 uintptr) uintptr
	Syscall6(nr, a0, a1, a2, a3, a4, a5 uintptr) uintptr
}

// Syscaller6 is the mandatory core of a backend: the maximal-arity kernel
// transition.
type Syscaller6 interface {
	Syscall6(nr, a0, a1, a2, a3, a4, a5 uintptr) uintptr
}

// Fanin turns a Syscall6-only backend into a full Syscaller by zero-padding
// the missing arguments and forwarding. The kernel-visible effect and the
// returned word are identical to tuned lower-arity sequences. A backend with
// tuned sequences for only some arities can embed a Fanin of itself and
// shadow just those methods.
type Fanin struct {
	Backend Syscaller6
}

func (f Fanin) Syscall0(nr uintptr) uintptr {
	return f.Backend.Syscall6(nr, 0, 0, 0, 0, 0, 0)
}

func (f Fanin) Syscall1(nr, a0 uintptr) uintptr {
	return f.Backend.Syscall6(nr, a0, 0, 0, 0, 0, 0)
}

func (f Fanin) Syscall2(nr, a0, a1 uintptr) uintptr {
	return f.Backend.Syscall6(nr, a0, a1, 0, 0, 0, 0)
}

func (f Fanin) Syscall3(nr, a0, a1, a2 uintptr) uintptr {
	return f.Backend.Syscall6(nr, a0, a1, a2, 0, 0, 0)
}

func (f Fanin) Syscall4(nr, a0, a1, a2, a3 uintptr) uintptr {
	return f.Backend.Syscall6(nr, a0, a1, a2, a3, 0, 0)
}

func (f Fanin) Syscall5(nr, a0, a1, a2, a3, a4 uintptr) uintptr {
	return f.Backend.Syscall6(nr, a0, a1, a2, a3, a4, 0)
}

func (f Fanin) Syscall6(nr, a0, a1, a2, a3, a4, a5 uintptr) uintptr {
	return f.Backend.Syscall6(nr, a0, a1, a2, a3, a4, a5)
}
