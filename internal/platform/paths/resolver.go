// internal/platform/paths/resolver.go

// Package paths locates external tool binaries. Security tooling rarely
// lives on the stock PATH: Go tools install under ~/go/bin, Rust tools
// under ~/.cargo/bin, pipx puts shims in ~/.local/bin. The resolver
// checks PATH first and then a fixed ordered list of those directories.
package paths

import (
	"os"
	"os/exec"
	"path/filepath"
)

// Resolver locates executables for logical command names. Not-found is a
// normal result consumed by the orchestrator to mark a tool as not
// installed; it never aborts a run.
type Resolver struct {
	extraDirs []string
}

// NewResolver builds a resolver with the standard fallback directories:
// home-relative toolchain bins, common system-local bins, and the
// directories named by GOPATH/GOBIN.
func NewResolver() *Resolver {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs,
			filepath.Join(home, "go", "bin"),
			filepath.Join(home, ".local", "bin"),
			filepath.Join(home, ".cargo", "bin"),
		)
	}
	dirs = append(dirs,
		"/usr/local/go/bin",
		"/usr/local/bin",
		"/snap/bin",
	)
	if gopath := os.Getenv("GOPATH"); gopath != "" {
		dirs = append(dirs, filepath.Join(gopath, "bin"))
	}
	if gobin := os.Getenv("GOBIN"); gobin != "" {
		dirs = append(dirs, gobin)
	}
	return &Resolver{extraDirs: dirs}
}

// NewResolverWithDirs builds a resolver probing only the given fallback
// directories. Used by tests and callers with custom installs.
func NewResolverWithDirs(dirs ...string) *Resolver {
	return &Resolver{extraDirs: dirs}
}

// Resolve finds the absolute path for a command name, checking PATH and
// then the fallback directories, trying both the bare name and the
// suffixed Windows variant.
func (r *Resolver) Resolve(name string) (string, bool) {
	if p, err := exec.LookPath(name); err == nil {
		return p, true
	}
	for _, dir := range r.extraDirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		for _, candidate := range []string{name, name + ".exe"} {
			full := filepath.Join(dir, candidate)
			if fi, err := os.Stat(full); err == nil && !fi.IsDir() {
				return full, true
			}
		}
	}
	return "", false
}
