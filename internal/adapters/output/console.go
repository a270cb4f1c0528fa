// internal/adapters/output/console.go

// Package output renders run progress and findings: a pterm console sink
// for live status lines and report writers for persisted results.
package output

import (
	"strconv"
	"strings"
	"sync"

	"github.com/pterm/pterm"

	"scanforge/internal/core/domain"
)

// ConsoleSink is a ProgressSink that renders engine status lines with
// pterm. Workers emit concurrently; a mutex keeps lines whole.
type ConsoleSink struct {
	mu    sync.Mutex
	quiet bool
}

// NewConsoleSink creates the console sink. Quiet mode drops everything
// except phase headers.
func NewConsoleSink(quiet bool) *ConsoleSink {
	return &ConsoleSink{quiet: quiet}
}

// Emit renders one status line, picking the pterm style from the
// engine's message prefix.
func (s *ConsoleSink) Emit(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case strings.HasPrefix(msg, "==="):
		pterm.DefaultSection.Println(strings.Trim(msg, "= "))
	case s.quiet:
		return
	case strings.HasPrefix(msg, "[+]"):
		pterm.Success.Println(strings.TrimSpace(msg[3:]))
	case strings.HasPrefix(msg, "[!]"):
		pterm.Warning.Println(strings.TrimSpace(msg[3:]))
	case strings.HasPrefix(msg, "[-]"):
		pterm.Debug.Println(strings.TrimSpace(msg[3:]))
	case strings.HasPrefix(msg, "[*]"):
		pterm.Info.Println(strings.TrimSpace(msg[3:]))
	default:
		pterm.Println(msg)
	}
}

// PrintHeader renders the run banner.
func PrintHeader(target string, tools, workers int) {
	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("ScanForge - Assessment Engine")
	pterm.Println()
	pterm.Info.Println("Target: " + pterm.Cyan(target))
	pterm.Info.Println("Tools: " + strconv.Itoa(tools) + "  Workers: " + strconv.Itoa(workers))
	pterm.Println()
}

// PrintSummary renders the severity breakdown table after a run.
func PrintSummary(findings []domain.Finding) {
	pterm.Println()
	pterm.DefaultSection.Println("Results")

	if len(findings) == 0 {
		pterm.Info.Println("No findings.")
		return
	}

	counts := domain.CountBySeverity(findings)
	rows := pterm.TableData{{"SEVERITY", "COUNT"}}
	for _, sev := range []domain.Severity{
		domain.SeverityCritical,
		domain.SeverityHigh,
		domain.SeverityMedium,
		domain.SeverityLow,
		domain.SeverityInfo,
	} {
		if n := counts[sev]; n > 0 {
			rows = append(rows, []string{strings.ToUpper(sev.String()), strconv.Itoa(n)})
		}
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		pterm.Warning.Println("failed to render summary table: " + err.Error())
	}

	pterm.Println()
	pterm.Success.Printfln("Total findings: %d", len(findings))
}
