// internal/core/ports/ports.go
package ports

import (
	"context"

	"scanforge/internal/core/domain"
)

// ToolCatalog is the read-only collaborator describing the runnable
// analysis tools. Loaded once before a run; the engine never mutates it.
type ToolCatalog interface {
	// Get returns the descriptor for a tool id, if registered.
	Get(id string) (domain.ToolDescriptor, bool)

	// List returns every registered descriptor.
	List() []domain.ToolDescriptor
}

// ProgressSink receives human-readable status lines from the engine.
// Implementations must tolerate concurrent calls; the engine does not
// serialize into the sink.
type ProgressSink interface {
	Emit(msg string)
}

// SinkFunc adapts a plain function to a ProgressSink.
type SinkFunc func(msg string)

// Emit calls the wrapped function.
func (f SinkFunc) Emit(msg string) { f(msg) }

// NopSink discards every message.
var NopSink ProgressSink = SinkFunc(func(string) {})

// RunStatus classifies how an invocation ended.
type RunStatus int

const (
	// RunCompleted means the process ran to exit (any exit code).
	RunCompleted RunStatus = iota

	// RunTimeout means the process was killed at its deadline.
	RunTimeout

	// RunLaunchError means the process never started.
	RunLaunchError
)

// RunResult is the typed outcome of one invocation. Every failure mode
// is a status, never a panic or an error crossing the component boundary.
type RunResult struct {
	Status   RunStatus
	Output   string
	ExitCode int
	Err      error // detail for LaunchError; nil otherwise
}

// Runner executes one resolved invocation under its timeout.
type Runner interface {
	Execute(ctx context.Context, inv domain.Invocation) RunResult
}

// PathResolver maps a logical command name to an executable path.
// The second return is false when the tool is not installed.
type PathResolver interface {
	Resolve(name string) (string, bool)
}

// InvocationBuilder builds the primary invocation of a tool, or reports
// NotApplicable with a false second return. Builders are pure and safe
// to call speculatively.
type InvocationBuilder func(toolID string, target domain.Target, ectx *domain.ExecutionContext) (*domain.Invocation, bool)

// Normalizer converts raw captured output into findings.
type Normalizer func(toolID, raw string, target domain.Target) []domain.Finding
