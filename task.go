// Completion: 100% - Execution context and capability operations complete
//go:build linux && (amd64 || 386 || arm || arm64 || riscv64)

package nocrt

// Task represents the implicit kernel context of one thread of execution:
// descriptor table, credentials, signal mask. None of that state is modeled
// here, only the capability to call into the kernel on behalf of the thread.
//
// At most one Task may exist per OS thread, and a Task must never be used
// from any thread but the one it was created on. Neither rule is enforced
// mechanically; the creator of the thread is responsible for both. Callers
// that need a stable thread identity should pair NewTask with
// runtime.LockOSThread.
type Task struct {
	// Syscall is the dispatch backend the Task owns. It can be swapped for
	// an instrumented implementation in tests.
	Syscall Syscaller

	noCopy noCopy
}

// NewTask creates the execution context for the calling thread, backed by the
// native syscall backend. The caller attests that no other Task exists for
// this thread.
func NewTask() *Task {
	return &Task{Syscall: NewSyscaller()}
}

// Close unlinks fd from the descriptor table of the calling task. The unlink
// happens unconditionally: whatever this returns, the descriptor value is
// invalid afterwards and must not be retried or restarted, not even on EINTR.
//
// EBADF is returned if fd was not a valid descriptor; the call was a no-op
// then. Every other error code stems from the deferred teardown of the
// underlying open file description and is diagnostic only; the descriptor is
// closed regardless, so most callers should ignore it.
func (t *Task) Close(fd int) error {
	if _, e := Decode(t.Syscall.Syscall1(sysClose, uintptr(fd))); e != 0 {
		return e
	}
	return nil
}

// Exit terminates the calling thread. It never returns, under no input. Only
// the low 8 bits of code are kernel-significant.
//
// This is the thread-level exit. Under the Go runtime, killing a single
// thread leaves the scheduler in an undefined state, so from ordinary Go
// code ExitGroup is almost always the call you want; Exit is for threads
// this package's consumers manage themselves (cloned workers, freestanding
// binaries).
func (t *Task) Exit(code int) {
	t.Syscall.Syscall1(sysExit, uintptr(code))
	panic("nocrt: exit syscall returned")
}

// ExitGroup terminates all threads of the calling process. It never returns.
// Only the low 8 bits of code are kernel-significant.
func (t *Task) ExitGroup(code int) {
	t.Syscall.Syscall1(sysExitGroup, uintptr(code))
	panic("nocrt: exit_group syscall returned")
}

// RestartSyscall resumes a previously interrupted syscall with time-adjusted
// parameters and returns its result. The kernel normally issues this itself
// when resuming a frozen task; user space has no ordinary reason to call it.
// If nothing is pending, EINTR is returned.
func (t *Task) RestartSyscall() (uintptr, error) {
	r, e := Decode(t.Syscall.Syscall0(sysRestartSyscall))
	if e != 0 {
		return 0, e
	}
	return r, nil
}

// Getpid returns the process ID of the calling task. The syscall cannot
// fail.
func (t *Task) Getpid() int {
	return int(t.Syscall.Syscall0(sysGetpid))
}

// noCopy flags Task to `go vet` as must-not-copy.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
