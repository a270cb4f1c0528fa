// internal/builder/builder_test.go
package builder

import (
	"strings"
	"testing"

	"scanforge/internal/core/domain"
)

var (
	endpoint = domain.NewTarget("https://app.example.com/login?id=1")
	bareHost = domain.NewTarget("example.com")
	noCtx    = &domain.ExecutionContext{}
	withList = &domain.ExecutionContext{Wordlist: "/tmp/words.txt"}
)

func pathTarget(t *testing.T) domain.Target {
	t.Helper()
	return domain.NewTarget(t.TempDir())
}

func TestBuild_UnknownTool(t *testing.T) {
	if _, ok := Build("no_such_tool", endpoint, noCtx); ok {
		t.Error("unknown tool id should be not applicable")
	}
}

func TestBuild_NotApplicable(t *testing.T) {
	tests := []struct {
		name   string
		toolID string
		target domain.Target
		ectx   *domain.ExecutionContext
	}{
		{"network scanner on local path", "nmap", pathTarget(t), noCtx},
		{"web scanner on bare host", "nikto", bareHost, noCtx},
		{"sqlmap on bare host", "sqlmap", bareHost, noCtx},
		{"gobuster without wordlist", "gobuster", endpoint, noCtx},
		{"ffuf without wordlist", "ffuf", endpoint, noCtx},
		{"wfuzz without wordlist", "wfuzz", endpoint, noCtx},
		{"kiterunner without wordlist", "kiterunner", endpoint, noCtx},
		{"secret scanner on endpoint", "gitleaks", endpoint, noCtx},
		{"sast on endpoint", "semgrep", endpoint, noCtx},
		{"hydra never standalone", "hydra", endpoint, noCtx},
		{"hakrawler never standalone", "hakrawler", endpoint, noCtx},
		{"subjack never standalone", "subjack", endpoint, noCtx},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if inv, ok := Build(tt.toolID, tt.target, tt.ectx); ok {
				t.Errorf("expected not applicable, got %v", inv.Argv)
			}
		})
	}
}

func TestBuild_Applicable(t *testing.T) {
	tests := []struct {
		name     string
		toolID   string
		target   domain.Target
		ectx     *domain.ExecutionContext
		wantArgv []string // required members, not the full vector
	}{
		{"nmap on endpoint", "nmap", endpoint, noCtx, []string{"nmap", "app.example.com"}},
		{"nmap on bare host", "nmap", bareHost, noCtx, []string{"nmap", "example.com"}},
		{"nikto gets full url", "nikto", endpoint, noCtx, []string{"nikto", endpoint.Raw}},
		{"sqlmap keeps query string", "sqlmap", endpoint, noCtx, []string{"sqlmap", endpoint.Raw}},
		{"gobuster with wordlist", "gobuster", endpoint, withList, []string{"gobuster", "/tmp/words.txt"}},
		{"subfinder uses registered domain", "subfinder", endpoint, noCtx, []string{"subfinder", "example.com"}},
		{"amass uses registered domain", "amass", endpoint, noCtx, []string{"amass", "example.com"}},
		{"kiterunner binary is kr", "kiterunner", endpoint, withList, []string{"kr"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := Build(tt.toolID, tt.target, tt.ectx)
			if !ok {
				t.Fatal("expected applicable invocation")
			}
			if inv.Timeout <= 0 {
				t.Error("invocation needs a positive timeout")
			}
			if inv.HasInput() {
				t.Error("primary invocation should not carry stdin input")
			}
			for _, want := range tt.wantArgv {
				if !containsArg(inv.Argv, want) {
					t.Errorf("argv %v missing %q", inv.Argv, want)
				}
			}
		})
	}
}

func TestBuild_SecretScannersOnPath(t *testing.T) {
	target := pathTarget(t)
	for _, id := range []string{"gitleaks", "trufflehog", "detect_secrets", "semgrep", "bandit", "brakeman"} {
		inv, ok := Build(id, target, noCtx)
		if !ok {
			t.Errorf("%s should be applicable on a local path", id)
			continue
		}
		if !containsArg(inv.Argv, target.Raw) {
			t.Errorf("%s argv %v missing path %q", id, inv.Argv, target.Raw)
		}
	}
}

func TestBuildPipeline(t *testing.T) {
	input := "a.example.com\nb.example.com\n"

	inv, ok := BuildPipeline("httprobe", bareHost, noCtx, input)
	if !ok {
		t.Fatal("httprobe should have a stdin mode")
	}
	if inv.Input != input {
		t.Errorf("Input = %q, want payload attached", inv.Input)
	}
	if !inv.HasInput() {
		t.Error("HasInput should report true")
	}

	if _, ok := BuildPipeline("gobuster", bareHost, noCtx, input); ok {
		t.Error("gobuster has no stdin mode")
	}

	if _, ok := BuildPipeline("httprobe", pathTarget(t), noCtx, input); ok {
		t.Error("stdin probes are not applicable to path targets")
	}
}

func TestBuild_IsPure(t *testing.T) {
	a, _ := Build("nmap", endpoint, noCtx)
	b, _ := Build("nmap", endpoint, noCtx)
	if strings.Join(a.Argv, " ") != strings.Join(b.Argv, " ") || a.Timeout != b.Timeout {
		t.Error("identical inputs should build identical invocations")
	}
}

func containsArg(argv []string, want string) bool {
	for _, a := range argv {
		if a == want {
			return true
		}
	}
	return false
}
