// internal/runner/runner.go

// Package runner executes one resolved invocation under its timeout.
// Every failure mode comes back as a typed result; nothing escapes as a
// panic or an error the caller has to interpret. Stdout and stderr are
// captured merged; interleaving is not guaranteed, which is fine
// because downstream parsing is line-oriented and order-insensitive.
package runner

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"scanforge/internal/core/domain"
	"scanforge/internal/core/ports"
	"scanforge/internal/platform/errors"
	"scanforge/internal/platform/logx"
)

// ExecRunner runs invocations as OS processes.
type ExecRunner struct {
	logger logx.Logger
}

// NewExecRunner creates the process runner.
func NewExecRunner(logger logx.Logger) *ExecRunner {
	return &ExecRunner{logger: logger.With("component", "runner")}
}

// Execute spawns the invocation's argument vector, writes and closes the
// stdin payload when present, and waits up to the timeout. On timeout the
// process is killed and the partial output kept. Argv[0] must already be
// resolved to an executable path.
func (r *ExecRunner) Execute(ctx context.Context, inv domain.Invocation) ports.RunResult {
	if len(inv.Argv) == 0 {
		return ports.RunResult{
			Status: ports.RunLaunchError,
			Err:    errors.Wrap(errors.ErrLaunchFailed, "empty argument vector"),
		}
	}

	runCtx, cancel := context.WithTimeout(ctx, inv.Timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, inv.Argv[0], inv.Argv[1:]...)

	// Tools colorize and page for humans; force plain output for parsing.
	cmd.Env = append(os.Environ(), "TERM=dumb", "NO_COLOR=1")

	if inv.HasInput() {
		cmd.Stdin = strings.NewReader(inv.Input)
	}

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	if err := cmd.Start(); err != nil {
		r.logger.Warn("failed to start process",
			"command", inv.Command(),
			"error", err.Error(),
		)
		return ports.RunResult{
			Status: ports.RunLaunchError,
			Err:    errors.Wrapf(errors.ErrLaunchFailed, "start %s: %v", inv.Command(), err),
		}
	}

	waitErr := cmd.Wait()
	output := buf.String()

	// Deadline or parent cancellation: the process was killed before
	// finishing on its own, never a launch failure.
	if runCtx.Err() != nil {
		r.logger.Warn("process killed before completion",
			"command", inv.Command(),
			"reason", runCtx.Err().Error(),
			"timeout", inv.Timeout.String(),
		)
		return ports.RunResult{
			Status: ports.RunTimeout,
			Output: output,
		}
	}

	exitCode := 0
	if waitErr != nil {
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			// Wait failures other than a non-zero exit (I/O on a dead
			// pipe, signal delivery) count as launch-level errors.
			return ports.RunResult{
				Status: ports.RunLaunchError,
				Output: output,
				Err:    errors.Wrapf(errors.ErrLaunchFailed, "wait %s: %v", inv.Command(), waitErr),
			}
		}
	}

	r.logger.Debug("process completed",
		"command", inv.Command(),
		"exit_code", exitCode,
		"output_bytes", len(output),
	)

	return ports.RunResult{
		Status:   ports.RunCompleted,
		Output:   output,
		ExitCode: exitCode,
	}
}
