// internal/platform/errors/errors_test.go
package errors

import "testing"

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("wrapping nil should stay nil")
	}

	err := Wrap(ErrLaunchFailed, "start nmap")
	if !Is(err, ErrLaunchFailed) {
		t.Error("wrapped error should match its sentinel")
	}
	if got := err.Error(); got != "start nmap: process launch failed" {
		t.Errorf("Error() = %q", got)
	}
}

func TestWrapf(t *testing.T) {
	err := Wrapf(ErrTimeout, "tool %s after %ds", "nmap", 120)
	if !IsTimeout(err) {
		t.Error("Wrapf should preserve the sentinel chain")
	}
	if got := err.Error(); got != "tool nmap after 120s: operation timed out" {
		t.Errorf("Error() = %q", got)
	}
}

func TestSentinelHelpers(t *testing.T) {
	if !IsLaunchFailed(Wrap(ErrLaunchFailed, "x")) {
		t.Error("IsLaunchFailed")
	}
	if !IsNotFound(Wrap(ErrNotFound, "x")) {
		t.Error("IsNotFound")
	}
	if IsTimeout(ErrNotFound) {
		t.Error("helpers must not cross-match")
	}
}
