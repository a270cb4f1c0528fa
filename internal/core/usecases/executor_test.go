// internal/core/usecases/executor_test.go
package usecases

import (
	"context"
	"strings"
	"testing"

	"scanforge/internal/builder"
	"scanforge/internal/core/domain"
	"scanforge/internal/core/ports"
	"scanforge/internal/normalize"
	"scanforge/internal/platform/logx"
)

func testDescriptors() []domain.ToolDescriptor {
	return []domain.ToolDescriptor{
		{ID: "subfinder", Name: "Subfinder", Category: "Subdomain", Binary: "subfinder"},
		{ID: "nmap", Name: "Nmap", Category: "Network Scanner", Binary: "nmap"},
		{ID: "httprobe", Name: "Httprobe", Category: "HTTP Probe", Binary: "httprobe"},
		{ID: "sqlmap", Name: "SQLMap", Category: "SQL Injection", Binary: "sqlmap"},
		{ID: "nikto", Name: "Nikto", Category: "Web Scanner", Binary: "nikto"},
	}
}

func newTestExecutor(runner *fakeRunner, sink ports.ProgressSink, binaries ...string) *Executor {
	return NewExecutor(ExecutorOptions{
		Catalog:   newFakeCatalog(testDescriptors()...),
		Resolver:  newFakeResolver(binaries...),
		Runner:    runner,
		Build:     builder.Build,
		Pipeline:  builder.BuildPipeline,
		Normalize: normalize.Normalize,
		Sink:      sink,
		Logger:    logx.NewSilent(),
		Workers:   4,
	})
}

func TestRun_EmptySelection(t *testing.T) {
	runner := newFakeRunner()
	exec := newTestExecutor(runner, ports.NopSink, "subfinder")

	findings, err := exec.Run(context.Background(), "https://example.com", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(findings) != 0 {
		t.Errorf("got %d findings, want 0", len(findings))
	}
	if len(runner.executedBinaries()) != 0 {
		t.Errorf("nothing should spawn: %v", runner.executedBinaries())
	}
}

func TestRun_EmptyTarget(t *testing.T) {
	exec := newTestExecutor(newFakeRunner(), ports.NopSink)
	if _, err := exec.Run(context.Background(), "", []string{"nmap"}); err == nil {
		t.Fatal("empty target should fail validation")
	}
}

func TestRun_UnknownToolRollsUp(t *testing.T) {
	runner := newFakeRunner()
	sink := &captureSink{}
	exec := newTestExecutor(runner, sink, "subfinder")

	findings, err := exec.Run(context.Background(), "https://example.com", []string{"no_such_tool"})
	if err != nil {
		t.Fatalf("unrunnable selection is not fatal, got err=%v", err)
	}
	if len(findings) != 0 {
		t.Errorf("got %d findings, want 0", len(findings))
	}
	if !sinkContains(sink, "not applicable") {
		t.Errorf("expected a not-applicable rollup, got %v", sink.all())
	}
	if len(runner.executedBinaries()) != 0 {
		t.Error("unknown tools must not spawn")
	}
}

func TestRun_NotInstalledRollsUp(t *testing.T) {
	runner := newFakeRunner()
	sink := &captureSink{}
	exec := newTestExecutor(runner, sink) // nothing installed

	findings, err := exec.Run(context.Background(), "https://example.com", []string{"nmap"})
	if err != nil {
		t.Fatalf("unrunnable selection is not fatal, got err=%v", err)
	}
	if len(findings) != 0 {
		t.Errorf("got %d findings, want 0", len(findings))
	}
	if !sinkContains(sink, "not installed") {
		t.Errorf("expected a not-installed rollup, got %v", sink.all())
	}
	if !sinkContains(sink, "No external tools to run") {
		t.Errorf("expected the no-tools notice, got %v", sink.all())
	}
}

func TestRun_ReconRunsBeforeVulnTesting(t *testing.T) {
	runner := newFakeRunner()
	runner.script("subfinder", ports.RunCompleted, "a.example.com\n")
	runner.script("nmap", ports.RunCompleted, "22/tcp open ssh\n")
	runner.script("sqlmap", ports.RunCompleted, "clean\n")
	runner.script("nikto", ports.RunCompleted, "clean\n")

	exec := newTestExecutor(runner, ports.NopSink, "subfinder", "nmap", "sqlmap", "nikto")

	_, err := exec.Run(context.Background(), "https://example.com",
		[]string{"sqlmap", "subfinder", "nikto", "nmap"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order := runner.executedBinaries()
	lastRecon, firstVuln := -1, len(order)
	for i, bin := range order {
		switch bin {
		case "subfinder", "nmap":
			if i > lastRecon {
				lastRecon = i
			}
		case "sqlmap", "nikto":
			if i < firstVuln {
				firstVuln = i
			}
		}
	}
	if lastRecon == -1 || firstVuln == len(order) {
		t.Fatalf("both phases should run: %v", order)
	}
	if lastRecon > firstVuln {
		t.Errorf("vuln tool started before recon finished: %v", order)
	}
}

func TestRun_TimeoutBecomesSyntheticFinding(t *testing.T) {
	runner := newFakeRunner()
	runner.script("nmap", ports.RunTimeout, "partial 22/tcp open\n")
	runner.script("subfinder", ports.RunCompleted, "a.example.com\nb.example.com\n")

	exec := newTestExecutor(runner, ports.NopSink, "nmap", "subfinder")

	findings, err := exec.Run(context.Background(), "https://example.com",
		[]string{"nmap", "subfinder"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var timedOut, rollup bool
	for _, f := range findings {
		if strings.Contains(f.Title, "[nmap]") && strings.Contains(f.Title, "timed out") {
			timedOut = true
			if f.Severity != domain.SeverityInfo {
				t.Errorf("timeout finding severity = %s, want info", f.Severity)
			}
		}
		if strings.Contains(f.Title, "[subfinder]") {
			rollup = true
		}
	}
	if !timedOut {
		t.Errorf("missing synthetic timeout finding: %v", findings)
	}
	if !rollup {
		t.Error("sibling tool should complete despite the timeout")
	}
}

func TestRun_PipelineFeedsDestinationStdin(t *testing.T) {
	hosts := "a.example.com\nb.example.com\n"
	runner := newFakeRunner()
	runner.script("subfinder", ports.RunCompleted, hosts)
	runner.script("httprobe", ports.RunCompleted, "https://a.example.com\n")

	exec := newTestExecutor(runner, ports.NopSink, "subfinder", "httprobe")

	findings, err := exec.Run(context.Background(), "https://example.com",
		[]string{"subfinder", "httprobe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	call, ok := runner.callFor("httprobe")
	if !ok {
		t.Fatal("pipeline destination never ran")
	}
	if call.Input != hosts {
		t.Errorf("stdin payload = %q, want source output", call.Input)
	}

	var live bool
	for _, f := range findings {
		if strings.Contains(f.Title, "[httprobe]") && strings.Contains(f.Title, "live") {
			live = true
		}
	}
	if !live {
		t.Errorf("pipeline findings missing: %v", findings)
	}
}

func TestRun_PipelineSkippedWithoutSourceOutput(t *testing.T) {
	runner := newFakeRunner()
	runner.script("subfinder", ports.RunCompleted, "")

	exec := newTestExecutor(runner, ports.NopSink, "subfinder", "httprobe")

	_, err := exec.Run(context.Background(), "https://example.com",
		[]string{"subfinder", "httprobe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := runner.callFor("httprobe"); ok {
		t.Error("link must not fire without source output")
	}
}

func TestRun_TimeoutOutputNeverFeedsPipelines(t *testing.T) {
	runner := newFakeRunner()
	runner.script("subfinder", ports.RunTimeout, "half-written.example.com")

	exec := newTestExecutor(runner, ports.NopSink, "subfinder", "httprobe")

	_, err := exec.Run(context.Background(), "https://example.com",
		[]string{"subfinder", "httprobe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := runner.callFor("httprobe"); ok {
		t.Error("partial timeout output must not reach pipeline destinations")
	}
}

func sinkContains(s *captureSink, substr string) bool {
	for _, line := range s.all() {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
