// internal/core/domain/context_test.go
package domain

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewExecutionContext_OverrideWins(t *testing.T) {
	wordlist := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(wordlist, []byte("admin\nlogin\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ec, err := NewExecutionContext(wordlist)
	if err != nil {
		t.Fatal(err)
	}
	defer ec.Cleanup()

	if !ec.HasWordlist() || ec.Wordlist != wordlist {
		t.Errorf("Wordlist = %q, want %q", ec.Wordlist, wordlist)
	}
}

func TestNewExecutionContext_MissingOverrideFallsBack(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")

	ec, err := NewExecutionContext(missing)
	if err != nil {
		t.Fatal(err)
	}
	defer ec.Cleanup()

	if ec.Wordlist == missing {
		t.Error("missing override should not be kept")
	}
}

func TestExecutionContext_ScratchDir(t *testing.T) {
	ec, err := NewExecutionContext("")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(filepath.Base(ec.WorkDir), "scanforge-") {
		t.Errorf("WorkDir = %q, want scanforge- prefix", ec.WorkDir)
	}
	if info, err := os.Stat(ec.WorkDir); err != nil || !info.IsDir() {
		t.Fatalf("WorkDir should exist: %v", err)
	}

	scratch := ec.ScratchFile("targets.txt")
	if filepath.Dir(scratch) != ec.WorkDir {
		t.Errorf("ScratchFile outside WorkDir: %q", scratch)
	}

	if err := ec.Cleanup(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(ec.WorkDir); !os.IsNotExist(err) {
		t.Error("Cleanup should remove the scratch directory")
	}
}
