// Completion: 100% - Entry stub generation complete for all architectures
package nocrt

import "strconv"

// EntryPoint names the pieces of a generated ELF entry stub. All three names
// must be valid assembler identifiers; no validation happens here, since the
// generated text is only ever checked by the assembler that consumes it.
type EntryPoint struct {
	Section string // section the stub is placed in, e.g. ".text.start"
	Symbol  string // global function symbol of the stub, e.g. "_start"
	Loader  string // symbol of the loader function the stub calls
}

// EntryStub returns the complete GNU-as text of an ELF entry point for the
// architecture. The stub is the first code the kernel jumps to: it forwards
// the kernel-built stack frame to the loader and then tail-jumps to whatever
// address the loader returns.
//
// The loader must match `extern fn(stack_pointer: word) -> word` in the
// architecture's C ABI and is called exactly once; the returned address must
// be a function that never returns.
//
// This is a pure text transform with no runtime component. Feed the result
// to the system assembler (for example through a .S file or cgo __asm__).
func (a Arch) EntryStub(ep EntryPoint) string {
	var b asmBuilder

	// Allocated ("a") and executable ("x") section holding program code.
	b.Emit(".pushsection " + ep.Section + ", \"ax\", " + a.AsmPrefix("progbits"))
	b.Emit(".balign " + strconv.Itoa(a.EntryAlign()))
	// Global and function-typed, so the linker accepts it as an ELF entry
	// point and unwinders see a proper symbol.
	b.Emit(".globl " + ep.Symbol)
	b.Emit(".type " + ep.Symbol + ", STT_FUNC")
	b.Emit(ep.Symbol + ":")
	b.Raw(a.EntryCustomBegin(ep.Symbol))
	b.Emit(".cfi_startproc")
	b.Raw(a.EntryCode(ep.Loader))
	b.Emit(".cfi_endproc")
	b.Raw(a.EntryCustomEnd(ep.Symbol))
	b.Emit(".size " + ep.Symbol + ", . - " + ep.Symbol)
	b.Emit(".popsection")

	return b.String()
}
