//go:build linux && amd64

package nocrt

// Syscall numbers for x86_64, transcribed from the kernel's syscall table.
const (
	sysRead           uintptr = 0
	sysWrite          uintptr = 1
	sysClose          uintptr = 3
	sysGetpid         uintptr = 39
	sysExit           uintptr = 60
	sysRestartSyscall uintptr = 219
	sysExitGroup      uintptr = 231
	sysPipe2          uintptr = 293
)
