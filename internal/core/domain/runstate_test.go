// internal/core/domain/runstate_test.go
package domain

import (
	"fmt"
	"sync"
	"testing"
)

func newTestState(selected ...string) *RunState {
	return NewRunState(NewTarget("example.com"), selected, &ExecutionContext{})
}

func TestRunState_MergeResult(t *testing.T) {
	rs := newTestState("subfinder")

	rs.MergeResult("subfinder", "a.example.com\n", []Finding{
		NewFinding("hosts", SeverityInfo, "", "subfinder", "example.com"),
	})

	out, ok := rs.Output("subfinder")
	if !ok || out != "a.example.com\n" {
		t.Errorf("Output = %q, %v", out, ok)
	}
	if rs.FindingCount() != 1 {
		t.Errorf("FindingCount = %d, want 1", rs.FindingCount())
	}

	// empty output is not recorded, findings still are
	rs.MergeResult("nmap", "", []Finding{
		NewFinding("port", SeverityInfo, "", "nmap", "example.com"),
	})
	if _, ok := rs.Output("nmap"); ok {
		t.Error("empty output should not be recorded")
	}
	if rs.FindingCount() != 2 {
		t.Errorf("FindingCount = %d, want 2", rs.FindingCount())
	}
}

func TestRunState_FindingsReturnsCopy(t *testing.T) {
	rs := newTestState()
	rs.AddFindings([]Finding{NewFinding("a", SeverityInfo, "", "t", "x")})

	got := rs.Findings()
	got[0].Title = "mutated"

	if rs.Findings()[0].Title != "a" {
		t.Error("Findings should return a copy")
	}
}

func TestRunState_ConcurrentMerge(t *testing.T) {
	rs := newTestState()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("tool-%d", n)
			rs.MergeResult(id, "output", []Finding{
				NewFinding(id, SeverityInfo, "", id, "example.com"),
			})
		}(i)
	}
	wg.Wait()

	if rs.FindingCount() != 20 {
		t.Errorf("FindingCount = %d, want 20", rs.FindingCount())
	}
}

func TestNewRunState(t *testing.T) {
	rs := NewRunState(NewTarget("example.com"), []string{"nmap", "nikto"}, &ExecutionContext{})
	if rs.RunID == "" {
		t.Error("run should get an id")
	}
	if !rs.Selected["nmap"] || !rs.Selected["nikto"] || rs.Selected["sqlmap"] {
		t.Errorf("unexpected selection: %v", rs.Selected)
	}
}
