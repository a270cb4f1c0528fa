// internal/builder/builder.go

// Package builder maps (tool id, target, execution context) to concrete
// invocations. Builders are pure: they never resolve paths, touch the
// network, or spawn anything, so the orchestrator can call them
// speculatively for every selected tool. A nil invocation means the
// tool has no meaningful command for this target/context combination.
package builder

import (
	"time"

	"scanforge/internal/core/domain"
)

type buildFunc func(t domain.Target, ec *domain.ExecutionContext) *domain.Invocation

// Build returns the primary invocation for a tool, or (nil, false) when
// the tool is unknown or not applicable. Unknown ids are indistinguishable
// from not-applicable on purpose: both roll up the same way.
func Build(toolID string, target domain.Target, ectx *domain.ExecutionContext) (*domain.Invocation, bool) {
	fn, ok := commands[toolID]
	if !ok {
		return nil, false
	}
	inv := fn(target, ectx)
	if inv == nil {
		return nil, false
	}
	return inv, true
}

// BuildPipeline returns the stdin-mode invocation used when a pipeline
// link feeds a destination tool. The input payload is attached to the
// returned invocation. (nil, false) when the tool has no stdin mode.
func BuildPipeline(toolID string, target domain.Target, ectx *domain.ExecutionContext, input string) (*domain.Invocation, bool) {
	fn, ok := pipelineCommands[toolID]
	if !ok {
		return nil, false
	}
	inv := fn(target, ectx)
	if inv == nil {
		return nil, false
	}
	inv.Input = input
	return inv, true
}

// inv is a small helper keeping the command table readable.
func inv(timeout time.Duration, argv ...string) *domain.Invocation {
	return &domain.Invocation{Argv: argv, Timeout: timeout}
}
