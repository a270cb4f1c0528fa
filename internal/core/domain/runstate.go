// internal/core/domain/runstate.go
package domain

import (
	"sync"

	"github.com/google/uuid"
)

// RunState is the mutable state of one Run call: the selection, the
// shared execution context, the captured primary outputs that feed
// pipelines, and the finding accumulator. Workers never touch the maps
// directly; every merge goes through the mutex-guarded methods, one
// serialized step per completed task.
type RunState struct {
	RunID    string
	Target   Target
	Selected map[string]bool
	Context  *ExecutionContext

	mu       sync.Mutex
	outputs  map[string]string
	findings []Finding
}

// NewRunState creates the state for a single run.
func NewRunState(target Target, selectedIDs []string, ec *ExecutionContext) *RunState {
	selected := make(map[string]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}
	return &RunState{
		RunID:    uuid.NewString(),
		Target:   target,
		Selected: selected,
		Context:  ec,
		outputs:  make(map[string]string),
	}
}

// MergeResult records one completed task: the tool's captured primary
// output and the findings normalized from it.
func (rs *RunState) MergeResult(toolID, output string, findings []Finding) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if output != "" {
		rs.outputs[toolID] = output
	}
	rs.findings = append(rs.findings, findings...)
}

// AddFindings appends findings without touching the output map (used by
// the pipeline composer, whose outputs never feed further links).
func (rs *RunState) AddFindings(findings []Finding) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.findings = append(rs.findings, findings...)
}

// Output returns the captured primary output of a tool, if any.
func (rs *RunState) Output(toolID string) (string, bool) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	out, ok := rs.outputs[toolID]
	return out, ok
}

// Findings returns a copy of the accumulated findings.
func (rs *RunState) Findings() []Finding {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	out := make([]Finding, len(rs.findings))
	copy(out, rs.findings)
	return out
}

// FindingCount returns the current number of accumulated findings.
func (rs *RunState) FindingCount() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return len(rs.findings)
}
