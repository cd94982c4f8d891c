//go:build linux && (amd64 || 386 || arm || arm64 || riscv64)

package nocrt

import (
	"errors"
	"os"
	"os/exec"
	"strconv"
	"testing"

	"golang.org/x/sys/unix"
)

// The helper mode lets the exit tests observe a real process status: the
// test binary re-runs itself with NOCRT_HELPER_EXIT set and terminates
// through the execution context instead of running any tests.
func TestMain(m *testing.M) {
	if v := os.Getenv("NOCRT_HELPER_EXIT"); v != "" {
		code, err := strconv.Atoi(v)
		if err != nil {
			os.Exit(2)
		}
		NewTask().ExitGroup(code)
	}
	os.Exit(m.Run())
}

func exitStatus(t *testing.T, code string) int {
	t.Helper()
	cmd := exec.Command(os.Args[0], "-test.run=^$")
	cmd.Env = append(os.Environ(), "NOCRT_HELPER_EXIT="+code)
	err := cmd.Run()
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if !errors.As(err, &ee) {
		t.Fatalf("helper process failed to run: %v", err)
	}
	return ee.ExitCode()
}

// Only the low byte of the exit code reaches a process-status observer:
// exit(256) and exit(0) are indistinguishable.
func TestExitCodeLowByte(t *testing.T) {
	if got := exitStatus(t, "0"); got != 0 {
		t.Errorf("exit(0): observed status %d", got)
	}
	if got := exitStatus(t, "256"); got != 0 {
		t.Errorf("exit(256): observed status %d, want 0 (low byte only)", got)
	}
	if got := exitStatus(t, "7"); got != 7 {
		t.Errorf("exit(7): observed status %d", got)
	}
}

func TestTaskCreation(t *testing.T) {
	task := NewTask()
	if task.Syscall == nil {
		t.Fatal("Task has no dispatch backend")
	}
}

func TestTaskGetpid(t *testing.T) {
	if got := NewTask().Getpid(); got != os.Getpid() {
		t.Errorf("Getpid() = %d, want %d", got, os.Getpid())
	}
}

func TestTaskCloseInvalid(t *testing.T) {
	err := NewTask().Close(-1)
	if !errors.Is(err, EBADF) {
		t.Errorf("Close(-1) = %v, want EBADF", err)
	}
}

// Close a pair of real descriptors (allocated through the host stack, so
// this also cross-checks the raw path against x/sys), then verify that the
// slots are gone.
func TestTaskClosePipe(t *testing.T) {
	var fds [2]int
	if err := unix.Pipe2(fds[:], 0); err != nil {
		t.Fatalf("pipe2: %v", err)
	}

	task := NewTask()
	if err := task.Close(fds[0]); err != nil {
		t.Errorf("Close(read end) = %v", err)
	}
	if err := task.Close(fds[1]); err != nil {
		t.Errorf("Close(write end) = %v", err)
	}

	// The unlink already happened, so a second close is a no-op EBADF.
	if err := task.Close(fds[0]); !errors.Is(err, EBADF) {
		t.Errorf("double Close = %v, want EBADF", err)
	}
}

// Nothing is pending, so the kernel reports EINTR. That is documented
// behavior, not a failure of the restart machinery.
func TestTaskRestartSyscall(t *testing.T) {
	_, err := NewTask().RestartSyscall()
	if !errors.Is(err, EINTR) {
		t.Errorf("RestartSyscall() = %v, want EINTR", err)
	}
}
