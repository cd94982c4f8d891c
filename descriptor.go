// Completion: 100% - All five architecture descriptors complete
package nocrt

// This file describes, per architecture, everything the entry stub generator
// needs: the GNU-as identifier prefix, the entry-point alignment and the exact
// transition sequence from the kernel's process-start state to a portable
// loader function.
//
// All descriptors are plain text and compile on every platform, so foreign
// architectures can be generated (and tested) from any host.

// AsmPrefix prefixes a GNU-as pseudo-identifier with the character the
// architecture expects. Most architectures use '%'; on x86 that character
// starts a register name, so '@' is used instead.
func (a Arch) AsmPrefix(id string) string {
	switch a {
	case ArchX86, ArchX86_64:
		return "@" + id
	default:
		return "%" + id
	}
}

// EntryAlign returns the minimum byte alignment of a function entry point.
// Zero means no alignment directive is needed.
func (a Arch) EntryAlign() int {
	if a == ArchARM32 {
		return 0
	}
	return 16
}

// EntryCode returns the transition sequence of the entry point: mark the
// return-address register as permanently undefined (there is no frame to
// unwind into), call the loader with the kernel-provided stack pointer as
// only argument, then tail-jump to the address the loader returned.
//
// The sequence must never touch the stack pointer or anything below it: the
// loader reads argc/argv/envp/auxv straight from the frame the kernel built.
func (a Arch) EntryCode(loaderSym string) string {
	switch a {
	case ArchARM32:
		return "" +
			".cfi_undefined r14\n" +
			"mov r0, sp\n" +
			"bl " + loaderSym + "\n" +
			"bx r0\n"
	case ArchARM64:
		return "" +
			".cfi_undefined x30\n" +
			"mov x0, sp\n" +
			"bl " + loaderSym + "\n" +
			"br x0\n"
	case ArchRiscv64:
		return "" +
			".cfi_undefined ra\n" +
			"mv a0, sp\n" +
			"call " + loaderSym + "\n" +
			"jr a0\n"
	case ArchX86:
		// The argument travels on the stack. The SysV psABI wants a
		// 16-byte aligned stack at the call, so pad before the push.
		// Everything is popped again before the tail jump, leaving the
		// kernel frame untouched for the application.
		return "" +
			".cfi_undefined eip\n" +
			"mov eax, esp\n" +
			"sub esp, 12\n" +
			"push eax\n" +
			"call " + loaderSym + "\n" +
			"add esp, 16\n" +
			"jmp eax\n"
	case ArchX86_64:
		return "" +
			".cfi_undefined rip\n" +
			"mov rdi, rsp\n" +
			"call " + loaderSym + "\n" +
			"jmp rax\n"
	default:
		return ""
	}
}

// EntryCustomBegin returns architecture-mandated text placed right after the
// symbol label, before any code.
//
// ARM32 wants the EHABI function marker. ARM64 wants a BTI landing pad so the
// kernel entry jump passes branch-target enforcement; the instruction
// requires an ARMv8.5 assembler but encodes as a NOP on older cores.
func (a Arch) EntryCustomBegin(sym string) string {
	switch a {
	case ArchARM32:
		return ".fnstart\n"
	case ArchARM64:
		return "bti c\n"
	default:
		return ""
	}
}

// EntryCustomEnd returns architecture-mandated text placed after the entry
// code, before the symbol size record.
func (a Arch) EntryCustomEnd(sym string) string {
	if a == ArchARM32 {
		return ".fnend\n"
	}
	return ""
}
