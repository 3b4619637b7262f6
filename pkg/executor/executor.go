// Package executor runs follow-up commands as child processes that inherit
// the caller's standard streams.
package executor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
)

// Executor is a hook.Spawner backed by os/exec
type Executor struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	env    []string // nil inherits the current environment
}

// Option configures an Executor
type Option func(*Executor)

// WithStdio replaces the inherited standard streams
func WithStdio(in io.Reader, out, err io.Writer) Option {
	return func(e *Executor) {
		e.stdin = in
		e.stdout = out
		e.stderr = err
	}
}

// WithEnv sets the child environment instead of inheriting it
func WithEnv(env []string) Option {
	return func(e *Executor) {
		e.env = env
	}
}

// New creates a new executor instance
func New(opts ...Option) *Executor {
	e := &Executor{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Spawn runs command in dir and waits for it to finish
func (e *Executor) Spawn(dir, command string, args []string) error {
	if command == "" {
		return fmt.Errorf("no command specified")
	}

	cmd := exec.Command(command, args...)
	cmd.Dir = dir
	cmd.Env = e.env

	// Connect standard streams
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.ExitCode() < 0 {
				return fmt.Errorf("%s terminated by signal: %w", command, err)
			}
			return fmt.Errorf("%s exited with code %d: %w", command, exitErr.ExitCode(), err)
		}
		return fmt.Errorf("failed to execute %s: %w", command, err)
	}

	return nil
}

// ExitCode extracts the child exit code from an error returned by Spawn. A
// child killed by a signal reports 128+signal.
func ExitCode(err error) (int, bool) {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return 0, false
	}
	if code := exitErr.ExitCode(); code >= 0 {
		return code, true
	}
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal()), true
	}
	return 0, false
}
