// internal/core/domain/pipeline.go
package domain

// PipelineLink declares that one tool's primary output feeds another
// tool's stdin. The table is fixed at start; a link is active only when
// both endpoints are in the run's selection.
type PipelineLink struct {
	// Source is the tool id whose captured output feeds the link.
	Source string

	// Dest is the tool id re-invoked with that output as stdin.
	Dest string

	// Description explains the enrichment for progress reporting.
	Description string
}

// DefaultPipeline is the static link table, walked in declaration order
// after both phases complete. Destinations are stdin-driven tools that
// have no standalone invocation of their own.
var DefaultPipeline = []PipelineLink{
	{Source: "subfinder", Dest: "httprobe", Description: "probe discovered subdomains for live HTTP services"},
	{Source: "subfinder", Dest: "dnsx", Description: "resolve discovered subdomains"},
	{Source: "assetfinder", Dest: "httprobe", Description: "probe discovered assets for live HTTP services"},
	{Source: "amass", Dest: "dnsx", Description: "resolve enumerated hosts"},
	{Source: "waybackurls", Dest: "unfurl", Description: "extract unique domains from archived URLs"},
	{Source: "gau", Dest: "qsreplace", Description: "normalize query strings of collected URLs"},
	{Source: "katana", Dest: "nuclei", Description: "scan crawled URLs with templated checks"},
	{Source: "httpx_tool", Dest: "nuclei", Description: "scan live services with templated checks"},
}

// ActiveLinks filters the table down to links whose endpoints are both
// in the selection, preserving declaration order.
func ActiveLinks(table []PipelineLink, selected map[string]bool) []PipelineLink {
	var active []PipelineLink
	for _, link := range table {
		if selected[link.Source] && selected[link.Dest] {
			active = append(active, link)
		}
	}
	return active
}
