// internal/adapters/output/report.go
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"scanforge/internal/core/domain"
)

// Report is the persisted result of one run.
type Report struct {
	RunID     string           `json:"run_id" yaml:"run_id"`
	Target    string           `json:"target" yaml:"target"`
	StartedAt time.Time        `json:"started_at" yaml:"started_at"`
	Duration  string           `json:"duration" yaml:"duration"`
	Tools     []string         `json:"tools" yaml:"tools"`
	Findings  []domain.Finding `json:"findings" yaml:"findings"`
}

// sanitizeTarget turns a target string into a filename fragment.
func sanitizeTarget(target string) string {
	out := make([]rune, 0, len(target))
	for _, r := range target {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' {
			out = append(out, r)
		} else {
			out = append(out, '_')
		}
	}
	return string(out)
}

// WriteJSON persists the report as indented JSON under dir and returns
// the written path.
func WriteJSON(dir string, report Report) (string, error) {
	path, f, err := createReportFile(dir, report, "json")
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return "", fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return path, nil
}

// WriteYAML persists the report as YAML under dir and returns the
// written path.
func WriteYAML(dir string, report Report) (string, error) {
	path, f, err := createReportFile(dir, report, "yaml")
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	defer enc.Close()
	if err := enc.Encode(report); err != nil {
		return "", fmt.Errorf("failed to encode YAML report: %w", err)
	}
	return path, nil
}

func createReportFile(dir string, report Report, ext string) (string, *os.File, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := report.StartedAt.Format("20060102_150405")
	filename := fmt.Sprintf("scanforge_%s_%s.%s", sanitizeTarget(report.Target), timestamp, ext)
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create report file: %w", err)
	}
	return path, f, nil
}
