// Package cmdexec abstracts external command execution for testability.
// Production code uses the Runner interface; tests inject FakeRunner from testutil.
package cmdexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
)

// ErrSpawn is returned when an executable cannot be located or started.
// A command that starts and exits non-zero is not an error.
var ErrSpawn = errors.New("cannot start executable")

// Result is the captured outcome of a finished external command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner abstracts external command execution.
type Runner interface {
	// Run executes name with args, capturing stdout and stderr separately.
	// A nil env inherits the current process environment; a non-nil env is
	// used as the complete environment of the child.
	Run(ctx context.Context, env map[string]string, name string, args ...string) (Result, error)

	// RunInteractive executes name with the runner's stdio attached and
	// returns the exit code. env follows the same rules as Run.
	RunInteractive(ctx context.Context, env map[string]string, name string, args ...string) (int, error)
}

// RealRunner executes actual external commands via os/exec.
type RealRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRealRunner returns a RealRunner wired to the process stdio.
func NewRealRunner() *RealRunner {
	return &RealRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes the command using os/exec.CommandContext.
func (r *RealRunner) Run(ctx context.Context, env map[string]string, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = mapToEnvSlice(env)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	code, err := exitCode(cmd.Run())
	if err != nil {
		return Result{}, fmt.Errorf("cmdexec.Run: %s: %w: %w", name, ErrSpawn, err)
	}
	return Result{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: code}, nil
}

// RunInteractive executes the command attached to the runner's stdio.
func (r *RealRunner) RunInteractive(ctx context.Context, env map[string]string, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = mapToEnvSlice(env)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	code, err := exitCode(cmd.Run())
	if err != nil {
		return 0, fmt.Errorf("cmdexec.RunInteractive: %s: %w: %w", name, ErrSpawn, err)
	}
	return code, nil
}

// exitCode separates "ran and exited" from "never ran".
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, err
}

// mapToEnvSlice converts a map of environment variables to a sorted slice of
// "KEY=VALUE" strings. A nil map yields nil so that exec inherits os.Environ.
func mapToEnvSlice(env map[string]string) []string {
	if env == nil {
		return nil
	}
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(result)
	return result
}
