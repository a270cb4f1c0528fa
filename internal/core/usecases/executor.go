// internal/core/usecases/executor.go

// Package usecases contains the execution engine: phase scheduling over
// a shared worker pool, per-tool task adaptation, and the post-phase
// pipeline composer.
package usecases

import (
	"context"
	"fmt"
	"strings"

	"scanforge/internal/core/domain"
	"scanforge/internal/core/ports"
	"scanforge/internal/platform/logx"
	"scanforge/internal/platform/workerpool"
)

// Executor coordinates a full assessment run: reconnaissance phase,
// vulnerability testing phase, then pipeline enrichment. Both phases
// share one bounded worker pool; the pool's blocking Submit is the
// barrier between them.
type Executor struct {
	catalog   ports.ToolCatalog
	resolver  ports.PathResolver
	runner    ports.Runner
	build     ports.InvocationBuilder
	pipeline  PipelineBuilder
	normalize ports.Normalizer
	sink      ports.ProgressSink
	logger    logx.Logger

	workers   int
	wordlist  string
	linkTable []domain.PipelineLink
}

// PipelineBuilder builds the stdin-mode invocation of a pipeline
// destination, with the input payload attached.
type PipelineBuilder func(toolID string, target domain.Target, ectx *domain.ExecutionContext, input string) (*domain.Invocation, bool)

// ExecutorOptions configures the executor.
type ExecutorOptions struct {
	Catalog   ports.ToolCatalog
	Resolver  ports.PathResolver
	Runner    ports.Runner
	Build     ports.InvocationBuilder
	Pipeline  PipelineBuilder
	Normalize ports.Normalizer
	Sink      ports.ProgressSink
	Logger    logx.Logger

	// Workers bounds concurrent tool processes. Defaults to 5.
	Workers int

	// Wordlist overrides the probed discovery wordlist when non-empty.
	Wordlist string

	// Links overrides the default pipeline table (tests use this).
	Links []domain.PipelineLink
}

// NewExecutor creates the execution engine.
func NewExecutor(opts ExecutorOptions) *Executor {
	if opts.Workers <= 0 {
		opts.Workers = 5
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	if opts.Sink == nil {
		opts.Sink = ports.NopSink
	}
	if opts.Links == nil {
		opts.Links = domain.DefaultPipeline
	}

	return &Executor{
		catalog:   opts.Catalog,
		resolver:  opts.Resolver,
		runner:    opts.Runner,
		build:     opts.Build,
		pipeline:  opts.Pipeline,
		normalize: opts.Normalize,
		sink:      opts.Sink,
		logger:    opts.Logger.With("component", "executor"),
		workers:   opts.Workers,
		wordlist:  opts.Wordlist,
		linkTable: opts.Links,
	}
}

// Run executes the selected tools against the target and returns every
// accumulated finding. The error return is only for an invalid target.
// An empty selection returns an empty slice without spawning anything;
// a selection where no tool is applicable and installed also returns
// empty, after the rollup lines.
func (e *Executor) Run(ctx context.Context, rawTarget string, selected []string) ([]domain.Finding, error) {
	target := domain.NewTarget(rawTarget)
	if err := target.Validate(); err != nil {
		return nil, err
	}

	if len(selected) == 0 {
		return []domain.Finding{}, nil
	}

	ectx, err := domain.NewExecutionContext(e.wordlist)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := ectx.Cleanup(); cerr != nil {
			e.logger.Warn("scratch cleanup failed", "error", cerr.Error())
		}
	}()

	state := domain.NewRunState(target, selected, ectx)

	recon, vuln := e.partition(selected)
	e.logger.Info("starting run",
		"run_id", state.RunID,
		"target", target.Raw,
		"recon_tools", len(recon),
		"vuln_tools", len(vuln),
		"workers", e.workers,
	)

	pool := workerpool.New(workerpool.Config{Workers: e.workers, Logger: e.logger})
	pool.Start()
	defer pool.Stop()

	ran := 0
	if len(recon) > 0 {
		e.sink.Emit(fmt.Sprintf("=== Phase 1: Reconnaissance (%d tools) ===", len(recon)))
		n := e.runPhase(pool, recon, target, ectx, state)
		ran += n
		e.sink.Emit(fmt.Sprintf("Phase 1 complete: %d/%d tools ran", n, len(recon)))
	}

	// the run context is only consulted between phases; in-flight tools
	// are bounded by their own timeouts
	if ctx.Err() == nil && len(vuln) > 0 {
		e.sink.Emit(fmt.Sprintf("=== Phase 2: Vulnerability Testing (%d tools) ===", len(vuln)))
		n := e.runPhase(pool, vuln, target, ectx, state)
		ran += n
		e.sink.Emit(fmt.Sprintf("Phase 2 complete: %d/%d tools ran", n, len(vuln)))
	}

	if ran == 0 {
		e.sink.Emit("[!] No external tools to run")
		e.logger.Warn("no selected tool was applicable and installed",
			"run_id", state.RunID,
			"selected", len(selected),
		)
		return []domain.Finding{}, nil
	}

	if ctx.Err() == nil {
		e.runPipelines(ctx, target, ectx, state)
	}

	findings := state.Findings()
	e.logger.Info("run finished",
		"run_id", state.RunID,
		"tools_ran", ran,
		"findings", len(findings),
	)
	return findings, nil
}

// partition splits the selection into recon and vulnerability-testing
// phases by catalog category, preserving selection order. Ids missing
// from the catalog land in the vuln phase and roll up as not applicable
// when their builder rejects them.
func (e *Executor) partition(selected []string) (recon, vuln []string) {
	for _, id := range selected {
		d, ok := e.catalog.Get(id)
		if ok && d.Category.IsRecon() {
			recon = append(recon, id)
		} else {
			vuln = append(vuln, id)
		}
	}
	return recon, vuln
}

// runPhase builds, resolves and submits one phase's tasks, then merges
// their results. Submit blocks until every task finished, so the next
// phase never overlaps this one. Returns the number of tasks submitted.
func (e *Executor) runPhase(pool *workerpool.WorkerPool, toolIDs []string, target domain.Target, ectx *domain.ExecutionContext, state *domain.RunState) int {
	var tasks []workerpool.Task
	var notApplicable, notInstalled []string

	for _, id := range toolIDs {
		inv, ok := e.build(id, target, ectx)
		if !ok {
			notApplicable = append(notApplicable, id)
			continue
		}

		name, binary := id, inv.Argv[0]
		if d, found := e.catalog.Get(id); found {
			name, binary = d.Name, d.Binary
		}

		path, installed := e.resolver.Resolve(binary)
		if !installed {
			notInstalled = append(notInstalled, fmt.Sprintf("%s [%s]", name, binary))
			continue
		}
		inv.Argv[0] = path

		tasks = append(tasks, newToolTask(id, name, *inv, target, e.runner, e.normalize, e.sink, e.logger))
	}

	// one rollup line per skip reason, not one per tool
	if len(notApplicable) > 0 {
		e.sink.Emit(fmt.Sprintf("[-] Skipped %d (not applicable for this target): %s",
			len(notApplicable), strings.Join(notApplicable, ", ")))
	}
	if len(notInstalled) > 0 {
		e.sink.Emit(fmt.Sprintf("[-] Skipped %d (not installed): %s",
			len(notInstalled), strings.Join(notInstalled, ", ")))
	}

	if len(tasks) == 0 {
		return 0
	}

	pool.Submit(tasks)

	// barrier passed: every task's result fields are settled
	for _, task := range tasks {
		tt := task.(*toolTask)
		state.MergeResult(tt.toolID, tt.output, tt.findings)
	}

	return len(tasks)
}
