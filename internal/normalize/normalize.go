// internal/normalize/normalize.go

// Package normalize converts raw tool output into Finding records. The
// emitters are heterogeneous free-text programs with no common schema,
// so dispatch is by tool family: a closed set of line-oriented,
// order-insensitive heuristics plus a generic fallback that guarantees
// no output is ever silently dropped.
package normalize

import (
	"scanforge/internal/core/domain"
)

// Family identifies one parsing heuristic. New tool families add a
// variant here and a parser in families.go; nothing else changes.
type Family string

const (
	FamilySubdomains Family = "subdomains"
	FamilyURLs       Family = "urls"
	FamilyLiveness   Family = "liveness"
	FamilyTakeover   Family = "takeover"
	FamilySQLi       Family = "sqli"
	FamilyCmdInject  Family = "cmd-injection"
	FamilyXSS        Family = "xss"
	FamilySecrets    Family = "secrets"
	FamilyCreds      Family = "credentials"
	FamilyTLS        Family = "tls"
	FamilyPorts      Family = "ports"
	FamilyRules      Family = "rule-engine"
	FamilySAST       Family = "sast"
	FamilyGeneric    Family = "generic"
)

// families maps tool ids to their parsing family. Ids absent here fall
// through to the generic single-finding parser.
var families = map[string]Family{
	"subfinder":         FamilySubdomains,
	"amass":             FamilySubdomains,
	"findomain":         FamilySubdomains,
	"chaos":             FamilySubdomains,
	"github_subdomains": FamilySubdomains,
	"assetfinder":       FamilySubdomains,
	"dnsx":              FamilySubdomains,
	"unfurl":            FamilySubdomains,

	"waybackurls": FamilyURLs,
	"gau":         FamilyURLs,
	"katana":      FamilyURLs,
	"paramspider": FamilyURLs,
	"qsreplace":   FamilyURLs,

	"httpx_tool": FamilyLiveness,
	"httprobe":   FamilyLiveness,

	"subjack": FamilyTakeover,

	"sqlmap": FamilySQLi,

	"commix": FamilyCmdInject,
	"tplmap": FamilyCmdInject,

	"dalfox":   FamilyXSS,
	"xsstrike": FamilyXSS,

	"gitleaks":       FamilySecrets,
	"trufflehog":     FamilySecrets,
	"detect_secrets": FamilySecrets,

	"hydra":   FamilyCreds,
	"medusa":  FamilyCreds,
	"john":    FamilyCreds,
	"hashcat": FamilyCreds,

	"sslscan": FamilyTLS,
	"sslyze":  FamilyTLS,
	"testssl": FamilyTLS,

	"nmap":     FamilyPorts,
	"masscan":  FamilyPorts,
	"rustscan": FamilyPorts,
	"naabu":    FamilyPorts,

	"nuclei": FamilyRules,

	"bandit":  FamilySAST,
	"semgrep": FamilySAST,
}

type parser func(toolID, raw string, target domain.Target) []domain.Finding

var parsers = map[Family]parser{
	FamilySubdomains: parseSubdomains,
	FamilyURLs:       parseURLs,
	FamilyLiveness:   parseLiveness,
	FamilyTakeover:   parseTakeover,
	FamilySQLi:       parseSQLi,
	FamilyCmdInject:  parseCmdInjection,
	FamilyXSS:        parseXSS,
	FamilySecrets:    parseSecrets,
	FamilyCreds:      parseCredentials,
	FamilyTLS:        parseTLS,
	FamilyPorts:      parsePorts,
	FamilyRules:      parseRuleEngine,
	FamilySAST:       parseSAST,
	FamilyGeneric:    parseGeneric,
}

// FamilyOf returns the parsing family of a tool id.
func FamilyOf(toolID string) Family {
	if f, ok := families[toolID]; ok {
		return f
	}
	return FamilyGeneric
}

// Normalize converts raw captured output into zero or more findings.
// Empty or whitespace-only output yields nothing. The function is pure
// with respect to its inputs: identical calls produce structurally
// identical finding sequences.
func Normalize(toolID, raw string, target domain.Target) []domain.Finding {
	if !hasContent(raw) {
		return nil
	}
	return parsers[FamilyOf(toolID)](toolID, raw, target)
}
