// internal/platform/paths/resolver_test.go
package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolve_PathHit(t *testing.T) {
	r := NewResolverWithDirs()
	// sh is on PATH everywhere the suite runs
	if _, ok := r.Resolve("sh"); !ok {
		t.Error("sh should resolve via PATH")
	}
}

func TestResolve_FallbackDir(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "fake-scanner")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	r := NewResolverWithDirs(dir)
	got, ok := r.Resolve("fake-scanner")
	if !ok {
		t.Fatal("binary in fallback dir should resolve")
	}
	if got != bin {
		t.Errorf("Resolve = %q, want %q", got, bin)
	}
}

func TestResolve_ExeSuffix(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "fake-scanner.exe")
	if err := os.WriteFile(bin, []byte("bin"), 0o755); err != nil {
		t.Fatal(err)
	}

	r := NewResolverWithDirs(dir)
	if got, ok := r.Resolve("fake-scanner"); !ok || got != bin {
		t.Errorf("Resolve = %q, %v; want the .exe variant", got, ok)
	}
}

func TestResolve_NotFound(t *testing.T) {
	r := NewResolverWithDirs(t.TempDir())
	if _, ok := r.Resolve("definitely-not-installed-anywhere"); ok {
		t.Error("missing binary should not resolve")
	}
}

func TestResolve_OrderPrefersEarlierDir(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	for _, dir := range []string{first, second} {
		if err := os.WriteFile(filepath.Join(dir, "dup"), []byte("bin"), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	r := NewResolverWithDirs(first, second)
	if got, _ := r.Resolve("dup"); got != filepath.Join(first, "dup") {
		t.Errorf("Resolve = %q, want hit from the first directory", got)
	}
}

func TestResolve_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "toolname"), 0o755); err != nil {
		t.Fatal(err)
	}

	r := NewResolverWithDirs(dir)
	if _, ok := r.Resolve("toolname"); ok {
		t.Error("a directory must not resolve as a binary")
	}
}
