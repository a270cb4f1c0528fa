// internal/normalize/families.go
package normalize

import (
	"fmt"
	"sort"
	"strings"

	"scanforge/internal/core/domain"
)

const (
	// maxListedHosts caps the hosts listed in a subdomain rollup finding.
	maxListedHosts = 50

	// maxListedURLs caps the URLs listed in a URL rollup finding.
	maxListedURLs = 30

	// maxSecretEvidence bounds secret-scanner evidence so leaked values
	// are not reproduced at full length in reports.
	maxSecretEvidence = 200

	// maxGenericPrefix bounds the raw-output prefix of the fallback finding.
	maxGenericPrefix = 2000
)

// parseSubdomains treats every non-empty dotted line as a host and
// emits one summary finding over the capped unique set.
func parseSubdomains(toolID, raw string, target domain.Target) []domain.Finding {
	unique := make(map[string]bool)
	for _, line := range lines(raw) {
		if strings.Contains(line, ".") && !unique[line] {
			unique[line] = true
		}
	}
	if len(unique) == 0 {
		return nil
	}

	hosts := make([]string, 0, len(unique))
	for h := range unique {
		hosts = append(hosts, h)
	}
	sort.Strings(hosts)

	listed := hosts
	if len(listed) > maxListedHosts {
		listed = listed[:maxListedHosts]
	}

	f := domain.NewFinding(
		fmt.Sprintf("[%s] Found %d hosts", toolID, len(hosts)),
		domain.SeverityInfo,
		strings.Join(listed, "\n"),
		toolID,
		target.Raw,
	)
	return []domain.Finding{f}
}

// parseURLs is the subdomain rollup filtered to URL-shaped lines.
func parseURLs(toolID, raw string, target domain.Target) []domain.Finding {
	var urls []string
	for _, line := range lines(raw) {
		if strings.HasPrefix(line, "http://") || strings.HasPrefix(line, "https://") {
			urls = append(urls, line)
		}
	}
	if len(urls) == 0 {
		return nil
	}

	desc := strings.Join(capList(urls, maxListedURLs), "\n")
	if len(urls) > maxListedURLs {
		desc += fmt.Sprintf("\n... and %d more", len(urls)-maxListedURLs)
	}

	f := domain.NewFinding(
		fmt.Sprintf("[%s] Discovered %d URLs", toolID, len(urls)),
		domain.SeverityInfo,
		desc,
		toolID,
		target.Raw,
	)
	return []domain.Finding{f}
}

// parseLiveness summarizes scheme-prefixed probe lines as live services.
func parseLiveness(toolID, raw string, target domain.Target) []domain.Finding {
	var live []string
	for _, line := range lines(raw) {
		if strings.HasPrefix(line, "http://") || strings.HasPrefix(line, "https://") {
			live = append(live, line)
		}
	}
	if len(live) == 0 {
		return nil
	}

	f := domain.NewFinding(
		fmt.Sprintf("[%s] %d live HTTP services", toolID, len(live)),
		domain.SeverityInfo,
		strings.Join(capList(live, maxListedURLs), "\n"),
		toolID,
		target.Raw,
	)
	return []domain.Finding{f}
}

// parseTakeover flags possible subdomain takeovers, one finding per hit.
func parseTakeover(toolID, raw string, target domain.Target) []domain.Finding {
	var findings []domain.Finding
	for _, line := range lines(raw) {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "vulnerable") || strings.Contains(lower, "takeover") {
			findings = append(findings, domain.NewFinding(
				fmt.Sprintf("[%s] Possible subdomain takeover", toolID),
				domain.SeverityHigh,
				line,
				toolID,
				target.Raw,
			))
		}
	}
	return findings
}

func parseSQLi(toolID, raw string, target domain.Target) []domain.Finding {
	var findings []domain.Finding
	for _, line := range lines(raw) {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "is vulnerable") || strings.Contains(lower, "injectable") {
			findings = append(findings, domain.NewFinding(
				fmt.Sprintf("[%s] SQL injection found", toolID),
				domain.SeverityCritical,
				line,
				toolID,
				target.Raw,
			))
		}
	}
	return findings
}

func parseCmdInjection(toolID, raw string, target domain.Target) []domain.Finding {
	var findings []domain.Finding
	for _, line := range lines(raw) {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "is vulnerable") || strings.Contains(lower, "injectable") || strings.Contains(lower, "injection point") {
			findings = append(findings, domain.NewFinding(
				fmt.Sprintf("[%s] Injection found", toolID),
				domain.SeverityCritical,
				line,
				toolID,
				target.Raw,
			))
		}
	}
	return findings
}

func parseXSS(toolID, raw string, target domain.Target) []domain.Finding {
	var findings []domain.Finding
	for _, line := range lines(raw) {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "vuln") || strings.Contains(lower, "xss") || strings.Contains(line, "POC") {
			findings = append(findings, domain.NewFinding(
				fmt.Sprintf("[%s] XSS vulnerability", toolID),
				domain.SeverityHigh,
				line,
				toolID,
				target.Raw,
			))
		}
	}
	return findings
}

func parseSecrets(toolID, raw string, target domain.Target) []domain.Finding {
	var findings []domain.Finding
	for _, line := range lines(raw) {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "secret") || strings.Contains(lower, "leak") || strings.Contains(lower, "key") {
			findings = append(findings, domain.NewFinding(
				fmt.Sprintf("[%s] Secret detected", toolID),
				domain.SeverityHigh,
				truncate(line, maxSecretEvidence),
				toolID,
				target.Raw,
			))
		}
	}
	return findings
}

func parseCredentials(toolID, raw string, target domain.Target) []domain.Finding {
	var findings []domain.Finding
	for _, line := range lines(raw) {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "login:") || strings.Contains(lower, "password:") || strings.Contains(lower, "success") {
			findings = append(findings, domain.NewFinding(
				fmt.Sprintf("[%s] Credentials recovered", toolID),
				domain.SeverityCritical,
				line,
				toolID,
				target.Raw,
			))
		}
	}
	return findings
}

// tlsRedFlags is the fixed set of substrings that make a transport
// security line reportable.
var tlsRedFlags = []struct {
	marker   string
	severity domain.Severity
	title    string
}{
	{"expired", domain.SeverityHigh, "Expired certificate"},
	{"self signed", domain.SeverityMedium, "Self-signed certificate"},
	{"self-signed", domain.SeverityMedium, "Self-signed certificate"},
	{"sslv2", domain.SeverityHigh, "Legacy protocol enabled"},
	{"sslv3", domain.SeverityHigh, "Legacy protocol enabled"},
	{"tlsv1.0", domain.SeverityMedium, "Legacy protocol enabled"},
	{"tlsv1.1", domain.SeverityMedium, "Legacy protocol enabled"},
	{"rc4", domain.SeverityMedium, "Weak cipher enabled"},
	{"null cipher", domain.SeverityHigh, "Weak cipher enabled"},
	{"weak", domain.SeverityMedium, "Weak configuration"},
	{"insecure", domain.SeverityMedium, "Insecure configuration"},
}

// parseTLS scans for red-flag markers. When none match it still emits
// one explicit clean-scan finding: absence of evidence must be visible,
// never silent.
func parseTLS(toolID, raw string, target domain.Target) []domain.Finding {
	var findings []domain.Finding
	for _, line := range lines(raw) {
		lower := strings.ToLower(line)
		for _, flag := range tlsRedFlags {
			if strings.Contains(lower, flag.marker) {
				findings = append(findings, domain.NewFinding(
					fmt.Sprintf("[%s] %s", toolID, flag.title),
					flag.severity,
					line,
					toolID,
					target.Raw,
				))
				break
			}
		}
	}
	if len(findings) == 0 {
		findings = append(findings, domain.NewFinding(
			fmt.Sprintf("[%s] TLS scan completed, no issues flagged", toolID),
			domain.SeverityInfo,
			"Scan output contained none of the known red-flag markers.",
			toolID,
			target.Raw,
		))
	}
	return findings
}

// parsePorts extracts "<port>/tcp|udp ... open ..." lines.
func parsePorts(toolID, raw string, target domain.Target) []domain.Finding {
	var findings []domain.Finding
	for _, line := range lines(raw) {
		if !strings.Contains(line, "/tcp") && !strings.Contains(line, "/udp") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || !strings.Contains(line, "open") {
			continue
		}
		service := ""
		if len(fields) >= 3 {
			service = " (" + fields[2] + ")"
		}
		findings = append(findings, domain.NewFinding(
			fmt.Sprintf("[%s] Open port: %s%s", toolID, fields[0], service),
			domain.SeverityInfo,
			line,
			toolID,
			target.Raw,
		))
	}
	return findings
}

// parseRuleEngine extracts the bracketed severity tag rule engines put
// on every match line.
func parseRuleEngine(toolID, raw string, target domain.Target) []domain.Finding {
	var findings []domain.Finding
	for _, line := range lines(raw) {
		severity := domain.SeverityInfo
		lower := strings.ToLower(line)
		for _, sev := range []domain.Severity{domain.SeverityCritical, domain.SeverityHigh, domain.SeverityMedium, domain.SeverityLow} {
			if strings.Contains(lower, "["+string(sev)+"]") {
				severity = sev
				break
			}
		}
		findings = append(findings, domain.NewFinding(
			fmt.Sprintf("[%s] %s", toolID, truncate(line, 120)),
			severity,
			line,
			toolID,
			target.Raw,
		))
	}
	return findings
}

// parseSAST extracts "Severity: HIGH|MEDIUM|LOW" tags from static
// analyzer output.
func parseSAST(toolID, raw string, target domain.Target) []domain.Finding {
	var findings []domain.Finding
	for _, line := range lines(raw) {
		for _, sev := range []string{"HIGH", "MEDIUM", "LOW"} {
			if strings.Contains(line, "Severity: "+sev) {
				findings = append(findings, domain.NewFinding(
					fmt.Sprintf("[%s] %s", toolID, truncate(line, 100)),
					domain.ParseSeverity(strings.ToLower(sev)),
					line,
					toolID,
					target.Raw,
				))
				break
			}
		}
	}
	return findings
}

// parseGeneric is the fallback: exactly one info finding carrying a
// bounded prefix of the raw output plus a total-size note.
func parseGeneric(toolID, raw string, target domain.Target) []domain.Finding {
	trimmed := strings.TrimSpace(raw)
	desc := trimmed
	if len(desc) > maxGenericPrefix {
		desc = desc[:maxGenericPrefix] + fmt.Sprintf("\n... (%d bytes total)", len(trimmed))
	}
	f := domain.NewFinding(
		fmt.Sprintf("[%s] Scan results", toolID),
		domain.SeverityInfo,
		desc,
		toolID,
		target.Raw,
	)
	return []domain.Finding{f}
}

// lines splits raw output into trimmed non-empty lines.
func lines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func hasContent(raw string) bool {
	return strings.TrimSpace(raw) != ""
}

func capList(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
