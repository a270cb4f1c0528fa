// internal/core/usecases/mocks_test.go
package usecases

import (
	"context"
	"path/filepath"
	"sync"

	"scanforge/internal/core/domain"
	"scanforge/internal/core/ports"
	"scanforge/internal/platform/errors"
)

// fakeCatalog serves descriptors from a fixed map.
type fakeCatalog struct {
	tools map[string]domain.ToolDescriptor
}

func newFakeCatalog(descriptors ...domain.ToolDescriptor) *fakeCatalog {
	c := &fakeCatalog{tools: make(map[string]domain.ToolDescriptor)}
	for _, d := range descriptors {
		c.tools[d.ID] = d
	}
	return c
}

func (c *fakeCatalog) Get(id string) (domain.ToolDescriptor, bool) {
	d, ok := c.tools[id]
	return d, ok
}

func (c *fakeCatalog) List() []domain.ToolDescriptor {
	out := make([]domain.ToolDescriptor, 0, len(c.tools))
	for _, d := range c.tools {
		out = append(out, d)
	}
	return out
}

// fakeResolver resolves only the binaries it was told are installed.
type fakeResolver struct {
	installed map[string]bool
}

func newFakeResolver(binaries ...string) *fakeResolver {
	r := &fakeResolver{installed: make(map[string]bool)}
	for _, b := range binaries {
		r.installed[b] = true
	}
	return r
}

func (r *fakeResolver) Resolve(name string) (string, bool) {
	if r.installed[name] {
		return "/fake/bin/" + name, true
	}
	return "", false
}

// scripted is one canned runner response.
type scripted struct {
	status ports.RunStatus
	output string
}

// fakeRunner returns canned results keyed by binary basename and records
// every execution in order.
type fakeRunner struct {
	mu      sync.Mutex
	scripts map[string]scripted
	calls   []domain.Invocation
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{scripts: make(map[string]scripted)}
}

func (r *fakeRunner) script(binary string, status ports.RunStatus, output string) {
	r.scripts[binary] = scripted{status: status, output: output}
}

func (r *fakeRunner) Execute(_ context.Context, inv domain.Invocation) ports.RunResult {
	r.mu.Lock()
	r.calls = append(r.calls, inv)
	r.mu.Unlock()

	s, ok := r.scripts[filepath.Base(inv.Argv[0])]
	if !ok {
		return ports.RunResult{Status: ports.RunCompleted, Output: ""}
	}

	res := ports.RunResult{Status: s.status, Output: s.output}
	if s.status == ports.RunLaunchError {
		res.Err = errors.ErrLaunchFailed
	}
	return res
}

// executedBinaries returns the basenames of every spawned binary in
// execution order.
func (r *fakeRunner) executedBinaries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.calls))
	for _, inv := range r.calls {
		out = append(out, filepath.Base(inv.Argv[0]))
	}
	return out
}

func (r *fakeRunner) callFor(binary string) (domain.Invocation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inv := range r.calls {
		if filepath.Base(inv.Argv[0]) == binary {
			return inv, true
		}
	}
	return domain.Invocation{}, false
}

// captureSink records every emitted status line.
type captureSink struct {
	mu    sync.Mutex
	lines []string
}

func (s *captureSink) Emit(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, msg)
}

func (s *captureSink) all() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}
