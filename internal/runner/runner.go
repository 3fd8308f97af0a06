package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"time"
)

// waitDelay bounds how long Run waits for pipes after the process is killed
const waitDelay = time.Second

// ErrNotFound is returned when the requested executable is not installed
var ErrNotFound = errors.New("command not found")

// Runner is the interface for invoking external diagnostic commands
type Runner interface {
	// Output runs the command and returns its stdout
	Output(ctx context.Context, name string, args ...string) (string, error)

	// CombinedOutput runs the command and returns stdout followed by stderr
	CombinedOutput(ctx context.Context, name string, args ...string) (string, error)

	// LookPath resolves an executable on PATH
	LookPath(name string) (string, error)
}

// ExecRunner runs commands through os/exec, each bounded by a timeout
type ExecRunner struct {
	timeout time.Duration
}

// NewExecRunner creates a new runner with a per-command timeout
func NewExecRunner(timeout time.Duration) *ExecRunner {
	return &ExecRunner{timeout: timeout}
}

// Output runs the command and returns its stdout
func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	stdout, _, err := r.run(ctx, name, args)
	return stdout, err
}

// CombinedOutput runs the command and returns stdout followed by stderr.
// Some tools (java -version) only report on stderr.
func (r *ExecRunner) CombinedOutput(ctx context.Context, name string, args ...string) (string, error) {
	stdout, stderr, err := r.run(ctx, name, args)
	return stdout + stderr, err
}

// LookPath resolves an executable on PATH
func (r *ExecRunner) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return path, nil
}

func (r *ExecRunner) run(ctx context.Context, name string, args []string) (string, string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelay
	hideWindow(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.String(), stderr.String(), nil
	}

	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return "", "", fmt.Errorf("%s: %w", name, ErrNotFound)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout.String(), stderr.String(), fmt.Errorf("%s exited with code %d: %s",
			name, exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), stderr.String(), fmt.Errorf("%s failed: %w", name, err)
}
