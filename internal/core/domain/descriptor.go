// internal/core/domain/descriptor.go
package domain

// ToolCategory is the declarative category of an analysis tool. The set
// mirrors the external tool registry; a fixed subset of categories forms
// the reconnaissance phase, everything else runs in vulnerability testing.
type ToolCategory string

// reconCategories is the static subset of categories scheduled in the
// reconnaissance phase.
var reconCategories = map[ToolCategory]bool{
	"Network Scanner":    true,
	"Port Scanner":       true,
	"Subdomain":          true,
	"Subdomain Takeover": true,
	"OSINT/Recon":        true,
	"HTTP Probe":         true,
	"DNS Recon":          true,
	"Web Recon":          true,
	"Web Crawler":        true,
	"Visual Recon":       true,
	"Fingerprinting":     true,
	"Param Discovery":    true,
	"Dir Discovery":      true,
	"Dir Scanner":        true,
	"API Testing":        true,
	"SSL/TLS":            true,
	"URL Manipulation":   true,
	"Pattern Grep":       true,
	"Wordlists":          true,
}

// IsRecon reports whether tools of this category run in the
// reconnaissance phase.
func (c ToolCategory) IsRecon() bool { return reconCategories[c] }

// String returns the string representation of the category.
func (c ToolCategory) String() string { return string(c) }

// ToolDescriptor is the immutable declarative metadata of one runnable
// analysis tool, supplied by the external tool catalog.
type ToolDescriptor struct {
	// ID is the stable identifier used for selection and pipelines.
	ID string `yaml:"id"`

	// Name is the human-readable display name.
	Name string `yaml:"name"`

	// Category drives phase assignment.
	Category ToolCategory `yaml:"category"`

	// Binary is the executable name handed to the path resolver.
	Binary string `yaml:"binary"`
}
