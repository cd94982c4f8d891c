//go:build linux && (amd64 || 386 || arm || arm64 || riscv64)

package nocrt

import (
	"os"
	"runtime"
	"testing"
)

func TestSyscall0Getpid(t *testing.T) {
	d := NewSyscaller()
	got, e := Decode(d.Syscall0(sysGetpid))
	if e != 0 {
		t.Fatalf("getpid failed: %v", e)
	}
	if int(got) != os.Getpid() {
		t.Errorf("getpid = %d, want %d", got, os.Getpid())
	}
}

// A tuned low-arity sequence and the zero-padded Syscall6 fan-in must be
// observably identical: same kernel-visible effect, same returned word.
func TestTunedMatchesFanin(t *testing.T) {
	tuned := NewSyscaller()
	fanned := Fanin{Backend: tuned}

	if a, b := tuned.Syscall0(sysGetpid), fanned.Syscall0(sysGetpid); a != b {
		t.Errorf("syscall0 getpid: tuned %d != fan-in %d", a, b)
	}

	// close on a never-allocated descriptor is side-effect free, so both
	// paths can take it and must report the same word.
	bad := ^uintptr(0)
	if a, b := tuned.Syscall1(sysClose, bad), fanned.Syscall1(sysClose, bad); a != b {
		t.Errorf("syscall1 close: tuned %#x != fan-in %#x", a, b)
	}
}

func TestCloseNeverAllocated(t *testing.T) {
	d := NewSyscaller()
	_, e := Decode(d.Syscall1(sysClose, ^uintptr(0)))
	if e != EBADF {
		t.Errorf("close(-1) = %v, want EBADF", e)
	}
}

// End-to-end: pipe, write 6 bytes, read them back, close both ends.
func TestPipeRoundTrip(t *testing.T) {
	d := NewSyscaller()

	var fds [2]int32
	r, e := Decode(d.Syscall2(sysPipe2, fdsAddr(&fds), 0))
	if e != 0 {
		t.Fatalf("pipe2 failed: %v", e)
	}
	if r != 0 {
		t.Fatalf("pipe2 returned %d", r)
	}
	runtime.KeepAlive(&fds)
	if fds[0] <= 2 || fds[1] <= 2 || fds[0] == fds[1] {
		t.Fatalf("pipe2 handed out implausible descriptors %v", fds)
	}

	msg := []byte("foobar")
	n, e := Decode(d.Syscall3(sysWrite, uintptr(fds[1]), bufAddr(msg), uintptr(len(msg))))
	if e != 0 || n != 6 {
		t.Fatalf("write = %d, %v", n, e)
	}
	runtime.KeepAlive(msg)

	buf := make([]byte, 16)
	n, e = Decode(d.Syscall3(sysRead, uintptr(fds[0]), bufAddr(buf), 6))
	if e != 0 || n != 6 {
		t.Fatalf("read = %d, %v", n, e)
	}
	runtime.KeepAlive(buf)
	if string(buf[:6]) != "foobar" {
		t.Errorf("read back %q, want %q", buf[:6], "foobar")
	}

	if _, e := Decode(d.Syscall1(sysClose, uintptr(fds[0]))); e != 0 {
		t.Errorf("close(read end) = %v", e)
	}
	if _, e := Decode(d.Syscall1(sysClose, uintptr(fds[1]))); e != 0 {
		t.Errorf("close(write end) = %v", e)
	}
}
