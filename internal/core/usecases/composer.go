// internal/core/usecases/composer.go
package usecases

import (
	"context"
	"fmt"

	"scanforge/internal/core/domain"
	"scanforge/internal/core/ports"
)

// runPipelines walks the active link table in declaration order after
// both phases completed. Each link re-invokes its destination in stdin
// mode, fed the source's captured primary output. Links are best-effort:
// a missing source output, an uninstalled destination or a failed run
// skips the link without affecting the rest.
func (e *Executor) runPipelines(ctx context.Context, target domain.Target, ectx *domain.ExecutionContext, state *domain.RunState) {
	active := domain.ActiveLinks(e.linkTable, state.Selected)
	if len(active) == 0 {
		return
	}

	e.sink.Emit(fmt.Sprintf("=== Pipeline enrichment (%d links) ===", len(active)))

	for _, link := range active {
		input, ok := state.Output(link.Source)
		if !ok || input == "" {
			e.logger.Debug("pipeline link skipped, no source output",
				"source", link.Source, "dest", link.Dest)
			continue
		}

		inv, ok := e.pipeline(link.Dest, target, ectx, input)
		if !ok {
			e.logger.Debug("pipeline link skipped, destination has no stdin mode",
				"source", link.Source, "dest", link.Dest)
			continue
		}

		binary := inv.Argv[0]
		if d, found := e.catalog.Get(link.Dest); found {
			binary = d.Binary
		}
		path, installed := e.resolver.Resolve(binary)
		if !installed {
			e.logger.Debug("pipeline link skipped, destination not installed",
				"dest", link.Dest, "binary", binary)
			continue
		}
		inv.Argv[0] = path

		e.sink.Emit(fmt.Sprintf("[*] Pipeline: %s -> %s (%s)", link.Source, link.Dest, link.Description))

		res := e.runner.Execute(ctx, *inv)
		switch res.Status {
		case ports.RunCompleted:
			findings := e.normalize(link.Dest, res.Output, target)
			state.AddFindings(findings)
			e.sink.Emit(fmt.Sprintf("[+] Pipeline %s -> %s: %d findings", link.Source, link.Dest, len(findings)))

		case ports.RunTimeout:
			e.sink.Emit(fmt.Sprintf("[!] Pipeline %s -> %s timed out", link.Source, link.Dest))

		case ports.RunLaunchError:
			e.logger.Warn("pipeline destination failed to start",
				"dest", link.Dest, "error", res.Err.Error())
		}
	}
}
