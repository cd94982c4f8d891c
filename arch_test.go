package nocrt

import "testing"

func TestParseArch(t *testing.T) {
	tests := []struct {
		in   string
		want Arch
	}{
		{"arm", ArchARM32},
		{"ARM32", ArchARM32},
		{"armv7", ArchARM32},
		{"arm64", ArchARM64},
		{"aarch64", ArchARM64},
		{"riscv64", ArchRiscv64},
		{"rv64", ArchRiscv64},
		{"386", ArchX86},
		{"i686", ArchX86},
		{"x86", ArchX86},
		{"amd64", ArchX86_64},
		{"x86_64", ArchX86_64},
		{"x86-64", ArchX86_64},
	}
	for _, tt := range tests {
		got, err := ParseArch(tt.in)
		if err != nil {
			t.Errorf("ParseArch(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseArch(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseArch("mips"); err == nil {
		t.Error("ParseArch(\"mips\") should fail")
	}
	if _, err := ParseArch(""); err == nil {
		t.Error("ParseArch(\"\") should fail")
	}
}

func TestArchProperties(t *testing.T) {
	for _, a := range Arches() {
		if a.String() == "unknown" {
			t.Errorf("%d: no name", int(a))
		}

		// Alignment must be 0 or a power of two.
		align := a.EntryAlign()
		if align != 0 && align&(align-1) != 0 {
			t.Errorf("%v: EntryAlign() = %d, not 0 or a power of two", a, align)
		}

		prefix := a.AsmPrefix("progbits")
		if prefix != "%progbits" && prefix != "@progbits" {
			t.Errorf("%v: AsmPrefix(progbits) = %q", a, prefix)
		}

		bits := a.PointerBits()
		if bits != 32 && bits != 64 {
			t.Errorf("%v: PointerBits() = %d", a, bits)
		}
	}

	// ARM32 is the only unaligned entry.
	if ArchARM32.EntryAlign() != 0 {
		t.Errorf("arm: EntryAlign() = %d, want 0", ArchARM32.EntryAlign())
	}
	// x86 section markers use '@', everything else '%'.
	if ArchX86.AsmPrefix("progbits") != "@progbits" {
		t.Error("x86 prefix should be @")
	}
	if ArchX86_64.AsmPrefix("progbits") != "@progbits" {
		t.Error("x86_64 prefix should be @")
	}
	if ArchARM64.AsmPrefix("progbits") != "%progbits" {
		t.Error("aarch64 prefix should be %")
	}
}
