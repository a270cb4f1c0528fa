// internal/core/usecases/tool_task.go
package usecases

import (
	"context"
	"fmt"

	"scanforge/internal/core/domain"
	"scanforge/internal/core/ports"
	"scanforge/internal/platform/logx"
)

// toolTask adapts one resolved tool invocation to workerpool.Task. The
// invocation is fully built before submission; Execute only spawns,
// waits and normalizes. Results live on the task itself and are merged
// into the run state by the executor after the phase barrier, so tasks
// never write shared structures.
type toolTask struct {
	toolID string
	name   string
	inv    domain.Invocation
	target domain.Target

	runner    ports.Runner
	normalize ports.Normalizer
	sink      ports.ProgressSink
	logger    logx.Logger

	// written by Execute, read after the phase barrier
	status   ports.RunStatus
	output   string
	findings []domain.Finding
}

func newToolTask(
	toolID, name string,
	inv domain.Invocation,
	target domain.Target,
	runner ports.Runner,
	normalize ports.Normalizer,
	sink ports.ProgressSink,
	logger logx.Logger,
) *toolTask {
	return &toolTask{
		toolID:    toolID,
		name:      name,
		inv:       inv,
		target:    target,
		runner:    runner,
		normalize: normalize,
		sink:      sink,
		logger:    logger.With("tool", toolID),
	}
}

// Execute runs the invocation and normalizes its output. Nothing here is
// fatal for the run: a timeout becomes a synthetic finding, a launch
// error is reported and dropped.
func (t *toolTask) Execute(ctx context.Context) error {
	t.sink.Emit(fmt.Sprintf("[*] Running %s against %s", t.name, t.target.Raw))

	res := t.runner.Execute(ctx, t.inv)
	t.status = res.Status
	t.output = res.Output

	switch res.Status {
	case ports.RunTimeout:
		t.sink.Emit(fmt.Sprintf("[!] %s timed out after %s", t.name, t.inv.Timeout))
		t.findings = []domain.Finding{domain.NewFinding(
			fmt.Sprintf("[%s] Scan timed out", t.toolID),
			domain.SeverityInfo,
			fmt.Sprintf("Tool did not complete within %s; partial results discarded.", t.inv.Timeout),
			t.toolID,
			t.target.Raw,
		)}
		// timeout output is partial and unparseable, keep it out of pipelines
		t.output = ""

	case ports.RunLaunchError:
		t.logger.Warn("launch failed", "error", res.Err.Error())
		t.sink.Emit(fmt.Sprintf("[!] %s failed to start", t.name))

	case ports.RunCompleted:
		t.findings = t.normalize(t.toolID, res.Output, t.target)
		t.sink.Emit(fmt.Sprintf("[+] %s finished: %d findings", t.name, len(t.findings)))
	}

	return nil
}

// Name identifies the task in pool logs.
func (t *toolTask) Name() string { return t.toolID }
