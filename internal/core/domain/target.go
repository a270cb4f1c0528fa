// internal/core/domain/target.go
package domain

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// TargetKind classifies the shape of a scan target.
type TargetKind string

const (
	// TargetKindEndpoint is a scheme-prefixed network endpoint (http/https URL).
	TargetKindEndpoint TargetKind = "endpoint"

	// TargetKindPath is an existing local filesystem path.
	TargetKindPath TargetKind = "path"

	// TargetKindHost is a bare hostname or address without a scheme.
	TargetKindHost TargetKind = "host"
)

// Target is the object of one assessment run. Raw keeps the exact string
// the caller supplied; builders pick the representation they need.
type Target struct {
	Raw  string
	Kind TargetKind
}

// NewTarget classifies a raw target string. Shape detection is a literal
// scheme check followed by a filesystem existence check, matching the
// order builders rely on.
func NewTarget(raw string) Target {
	raw = strings.TrimSpace(raw)
	t := Target{Raw: raw, Kind: TargetKindHost}
	switch {
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		t.Kind = TargetKindEndpoint
	default:
		if _, err := os.Stat(raw); err == nil {
			t.Kind = TargetKindPath
		}
	}
	return t
}

// Validate verifies the target is usable at all. Per-tool applicability
// is the builders' job, not validation.
func (t Target) Validate() error {
	if t.Raw == "" {
		return ErrEmptyTarget
	}
	if t.Kind == TargetKindEndpoint {
		u, err := url.Parse(t.Raw)
		if err != nil || u.Hostname() == "" {
			return fmt.Errorf("%w: %s", ErrInvalidTarget, t.Raw)
		}
	}
	return nil
}

// IsEndpoint reports whether the target is a network endpoint.
func (t Target) IsEndpoint() bool { return t.Kind == TargetKindEndpoint }

// IsPath reports whether the target is a local filesystem path.
func (t Target) IsPath() bool { return t.Kind == TargetKindPath }

// IsNetwork reports whether the target names something reachable over
// the network (endpoint or bare host).
func (t Target) IsNetwork() bool { return t.Kind != TargetKindPath }

// Host extracts the hostname from an endpoint target, or returns the raw
// value for bare hosts. Empty for filesystem paths.
func (t Target) Host() string {
	switch t.Kind {
	case TargetKindEndpoint:
		if u, err := url.Parse(t.Raw); err == nil {
			return u.Hostname()
		}
		return ""
	case TargetKindHost:
		return t.Raw
	default:
		return ""
	}
}

// RegisteredDomain derives the eTLD+1 for the target host, the value
// subdomain enumerators want (app.example.co.uk -> example.co.uk).
// Falls back to the full host when the public suffix list has no answer
// (IP addresses, internal names).
func (t Target) RegisteredDomain() string {
	host := t.Host()
	if host == "" {
		return ""
	}
	if domain, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return domain
	}
	return host
}
