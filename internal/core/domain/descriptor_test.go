// internal/core/domain/descriptor_test.go
package domain

import "testing"

func TestToolCategory_IsRecon(t *testing.T) {
	recon := []ToolCategory{
		"Network Scanner", "Port Scanner", "Subdomain",
		"Subdomain Takeover", "OSINT/Recon", "HTTP Probe",
		"DNS Recon", "Web Recon", "Web Crawler",
		"Visual Recon", "Fingerprinting", "URL Manipulation",
		"Pattern Grep", "Param Discovery", "Dir Discovery",
		"Dir Scanner", "API Testing", "SSL/TLS", "Wordlists",
	}
	for _, c := range recon {
		if !c.IsRecon() {
			t.Errorf("%s should run in the reconnaissance phase", c)
		}
	}

	vuln := []ToolCategory{
		"Web Scanner", "SQL Injection", "XSS Scanner", "SSTI Scanner",
		"Command Injection", "Vulnerability Scanner", "CMS Scanner",
		"Brute Force", "Password Cracker", "SAST", "Secret Scanner",
		"Exploit Search", "Unknown",
	}
	for _, c := range vuln {
		if c.IsRecon() {
			t.Errorf("%s should run in the vulnerability-testing phase", c)
		}
	}
}
