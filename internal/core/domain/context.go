// internal/core/domain/context.go
package domain

import (
	"os"
	"path/filepath"
)

// defaultWordlistPaths are the well-known locations probed for a usable
// discovery wordlist, in preference order.
var defaultWordlistPaths = []string{
	"/usr/share/wordlists/dirb/common.txt",
	"/usr/share/seclists/Discovery/Web-Content/common.txt",
	"/usr/share/wordlists/dirbuster/directory-list-2.3-small.txt",
	"/usr/share/dirb/wordlists/common.txt",
}

// ExecutionContext holds the per-run shared resources: a fresh scratch
// directory and the resolved default wordlist, if any. It is built once
// when a run starts, read-only afterwards, and safe for concurrent reads.
type ExecutionContext struct {
	// WorkDir is a scratch directory private to the run.
	WorkDir string

	// Wordlist is the absolute path of the discovery wordlist, or empty
	// when none was found. Builders that need one return NotApplicable
	// on empty.
	Wordlist string
}

// NewExecutionContext creates the per-run context. wordlistOverride, when
// non-empty and existing, wins over the probe list. A missing wordlist is
// not an error: dependent builders simply become NotApplicable.
func NewExecutionContext(wordlistOverride string) (*ExecutionContext, error) {
	workDir, err := os.MkdirTemp("", "scanforge-")
	if err != nil {
		return nil, err
	}

	ec := &ExecutionContext{WorkDir: workDir}

	if wordlistOverride != "" {
		if fileExists(wordlistOverride) {
			ec.Wordlist = wordlistOverride
			return ec, nil
		}
	}
	for _, p := range defaultWordlistPaths {
		if fileExists(p) {
			ec.Wordlist = p
			break
		}
	}
	return ec, nil
}

// HasWordlist reports whether a usable wordlist was resolved.
func (ec *ExecutionContext) HasWordlist() bool { return ec.Wordlist != "" }

// Cleanup removes the scratch directory. Safe to call once the run is over.
func (ec *ExecutionContext) Cleanup() error {
	if ec.WorkDir == "" {
		return nil
	}
	return os.RemoveAll(ec.WorkDir)
}

// ScratchFile returns a path inside the scratch directory.
func (ec *ExecutionContext) ScratchFile(name string) string {
	return filepath.Join(ec.WorkDir, name)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
