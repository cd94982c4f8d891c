//go:build linux && arm64

package nocrt

// Syscall numbers for ARM64, which follows the kernel's asm-generic table.
const (
	sysClose          uintptr = 57
	sysPipe2          uintptr = 59
	sysRead           uintptr = 63
	sysWrite          uintptr = 64
	sysExit           uintptr = 93
	sysExitGroup      uintptr = 94
	sysRestartSyscall uintptr = 128
	sysGetpid         uintptr = 172
)
