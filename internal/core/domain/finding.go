// internal/core/domain/finding.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Severity classifies how serious a finding is. The set is closed and
// ordered: critical > high > medium > low > info.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
)

// severityRank maps severities to their ordering weight (higher = worse).
var severityRank = map[Severity]int{
	SeverityCritical: 4,
	SeverityHigh:     3,
	SeverityMedium:   2,
	SeverityLow:      1,
	SeverityInfo:     0,
}

// IsValid reports whether the severity belongs to the closed set.
func (s Severity) IsValid() bool {
	_, ok := severityRank[s]
	return ok
}

// Rank returns the ordering weight of the severity. Unknown severities
// rank as info.
func (s Severity) Rank() int {
	return severityRank[s]
}

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// ParseSeverity normalizes a free-form severity token coming out of tool
// output. Unknown tokens map to info, never an error: normalizers must
// not fail on unexpected text.
func ParseSeverity(raw string) Severity {
	s := Severity(raw)
	if s.IsValid() {
		return s
	}
	return SeverityInfo
}

// Finding is a normalized record of one reportable observation produced
// from a tool's output. Findings accumulate as an unordered multiset;
// cross-run deduplication belongs to the caller.
type Finding struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Severity    Severity  `json:"severity" yaml:"severity"`
	Description string    `json:"description" yaml:"description"`
	Tool        string    `json:"tool" yaml:"tool"`
	Target      string    `json:"target" yaml:"target"`
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`
}

// NewFinding creates a finding with a fresh id and timestamp.
func NewFinding(title string, severity Severity, description, tool, target string) Finding {
	if !severity.IsValid() {
		severity = SeverityInfo
	}
	return Finding{
		ID:          uuid.NewString(),
		Title:       title,
		Severity:    severity,
		Description: description,
		Tool:        tool,
		Target:      target,
		Timestamp:   time.Now().UTC(),
	}
}

// CountBySeverity tallies findings per severity level.
func CountBySeverity(findings []Finding) map[Severity]int {
	counts := make(map[Severity]int, len(severityRank))
	for _, f := range findings {
		counts[f.Severity]++
	}
	return counts
}
