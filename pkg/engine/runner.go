// pkg/engine/runner.go
package engine

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

// Runner executes external manager commands. The split between Run and
// Output mirrors the two ways the engine shells out: operations stream
// their output to the user, installed-state probes capture it.
type Runner interface {
	// Run executes argv, streaming stdout/stderr through, and returns the
	// command's exit code
	Run(ctx context.Context, argv []string) (int, error)

	// Output executes argv and returns captured stdout plus the exit code
	Output(ctx context.Context, argv []string) (string, int, error)
}

type execRunner struct{}

// NewRunner returns the os/exec backed Runner
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, argv []string) (int, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	return exitCode(cmd.Run())
}

func (execRunner) Output(ctx context.Context, argv []string) (string, int, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	out, err := cmd.Output()
	code, err := exitCode(err)
	return string(out), code, err
}

// exitCode separates "the command ran and exited non-zero" from "the
// command could not run at all"
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
