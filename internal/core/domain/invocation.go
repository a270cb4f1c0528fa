// internal/core/domain/invocation.go
package domain

import "time"

// Invocation is the result of a successful command build: a concrete
// argument vector, a hard timeout, and an optional stdin payload.
// Argv[0] is an executable *name*; resolving it to a path is the path
// resolver's job, never the builder's.
type Invocation struct {
	Argv    []string
	Timeout time.Duration
	Input   string
}

// Command returns the executable name of the invocation.
func (i Invocation) Command() string {
	if len(i.Argv) == 0 {
		return ""
	}
	return i.Argv[0]
}

// HasInput reports whether the invocation carries a stdin payload.
func (i Invocation) HasInput() bool { return i.Input != "" }
