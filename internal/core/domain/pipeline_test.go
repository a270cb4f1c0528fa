// internal/core/domain/pipeline_test.go
package domain

import "testing"

func TestActiveLinks(t *testing.T) {
	table := []PipelineLink{
		{Source: "subfinder", Dest: "httprobe"},
		{Source: "subfinder", Dest: "dnsx"},
		{Source: "gau", Dest: "qsreplace"},
	}

	tests := []struct {
		name     string
		selected []string
		want     int
	}{
		{"both endpoints selected", []string{"subfinder", "httprobe"}, 1},
		{"source only", []string{"subfinder"}, 0},
		{"dest only", []string{"httprobe", "dnsx"}, 0},
		{"all selected", []string{"subfinder", "httprobe", "dnsx", "gau", "qsreplace"}, 3},
		{"nothing selected", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected := make(map[string]bool)
			for _, id := range tt.selected {
				selected[id] = true
			}
			got := ActiveLinks(table, selected)
			if len(got) != tt.want {
				t.Errorf("got %d active links, want %d", len(got), tt.want)
			}
		})
	}
}

func TestActiveLinks_PreservesOrder(t *testing.T) {
	selected := map[string]bool{"subfinder": true, "httprobe": true, "dnsx": true}
	got := ActiveLinks(DefaultPipeline, selected)
	if len(got) != 2 {
		t.Fatalf("got %d links, want 2", len(got))
	}
	if got[0].Dest != "httprobe" || got[1].Dest != "dnsx" {
		t.Errorf("declaration order not preserved: %v", got)
	}
}

func TestDefaultPipeline_EndpointsAreDistinctTools(t *testing.T) {
	for _, link := range DefaultPipeline {
		if link.Source == link.Dest {
			t.Errorf("link %s -> %s is a self loop", link.Source, link.Dest)
		}
	}
}
