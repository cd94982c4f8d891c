package nocrt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// recorder captures the exact words a backend would hand to the kernel.
type recorder struct {
	nr   uintptr
	args [6]uintptr
	ret  uintptr
}

func (r *recorder) Syscall6(nr, a0, a1, a2, a3, a4, a5 uintptr) uintptr {
	r.nr = nr
	r.args = [6]uintptr{a0, a1, a2, a3, a4, a5}
	return r.ret
}

// Every arity below six must be observably identical to Syscall6 with the
// missing arguments set to zero.
func TestFaninZeroPads(t *testing.T) {
	rec := &recorder{ret: 42}
	f := Fanin{Backend: rec}

	tests := []struct {
		name string
		call func() uintptr
		want [6]uintptr
	}{
		{"Syscall0", func() uintptr { return f.Syscall0(7) }, [6]uintptr{}},
		{"Syscall1", func() uintptr { return f.Syscall1(7, 1) }, [6]uintptr{1}},
		{"Syscall2", func() uintptr { return f.Syscall2(7, 1, 2) }, [6]uintptr{1, 2}},
		{"Syscall3", func() uintptr { return f.Syscall3(7, 1, 2, 3) }, [6]uintptr{1, 2, 3}},
		{"Syscall4", func() uintptr { return f.Syscall4(7, 1, 2, 3, 4) }, [6]uintptr{1, 2, 3, 4}},
		{"Syscall5", func() uintptr { return f.Syscall5(7, 1, 2, 3, 4, 5) }, [6]uintptr{1, 2, 3, 4, 5}},
		{"Syscall6", func() uintptr { return f.Syscall6(7, 1, 2, 3, 4, 5, 6) }, [6]uintptr{1, 2, 3, 4, 5, 6}},
	}
	for _, tt := range tests {
		got := tt.call()
		if got != 42 {
			t.Errorf("%s: return word %d not passed through", tt.name, got)
		}
		if rec.nr != 7 {
			t.Errorf("%s: syscall number %d not passed through", tt.name, rec.nr)
		}
		if diff := cmp.Diff(tt.want, rec.args); diff != "" {
			t.Errorf("%s: argument words mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

// Fanin itself satisfies the full dispatch interface, so a Syscall6-only
// backend can be dropped in anywhere a Syscaller is expected.
func TestFaninIsSyscaller(t *testing.T) {
	var _ Syscaller = Fanin{Backend: &recorder{}}
}
