//go:build linux && 386

package nocrt

// Syscall numbers for x86, transcribed from the kernel's syscall table.
const (
	sysRestartSyscall uintptr = 0
	sysExit           uintptr = 1
	sysRead           uintptr = 3
	sysWrite          uintptr = 4
	sysClose          uintptr = 6
	sysGetpid         uintptr = 20
	sysExitGroup      uintptr = 252
	sysPipe2          uintptr = 331
)
