// Package nocrt lets binaries run on Linux without any C runtime or dynamic
// loader. It generates the architecture-correct assembly text of an ELF
// entry stub that bridges from the kernel's process-start state to a
// portable loader function, and it provides a uniform way to invoke raw
// Linux system calls across ARM32, ARM64, RISC-V64, x86 and x86_64.
//
// Stub generation and result decoding are portable and work for every
// supported architecture from any host; the syscall backend itself only
// exists for the compiled target.
package nocrt
