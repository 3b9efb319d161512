// predicates_test.go — verification of classification and query helpers.
package failchain

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsKind_MatchesOwnKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		is   func(error) bool
	}{
		{"InvalidArgument", InvalidArgument("x", nil), IsInvalidArgument},
		{"Logic", Logic("x", nil), IsLogic},
		{"Shutdown", Shutdown("x", nil), IsShutdown},
		{"File", File("x", 2, nil), IsFile},
		{"Syscall", Syscall("x", 1, nil), IsSyscall},
		{"Resource", Resource("x", nil), IsResource},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.is(tc.err) {
				t.Fatalf("predicate = false for its own kind")
			}
			if tc.is(nil) {
				t.Fatalf("predicate = true for nil")
			}
			if tc.is(errors.New("plain")) {
				t.Fatalf("predicate = true for a plain error")
			}
		})
	}
}

func TestIsKind_FollowsCausalChain(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("boot: %w", Shutdown("stop", File("open", 2, nil)))
	if !IsShutdown(err) || !IsFile(err) {
		t.Fatalf("expected Shutdown and File along the chain")
	}
	if IsLogic(err) {
		t.Fatalf("IsLogic = true, want false")
	}
}

func TestIsKind_IgnoresHistory(t *testing.T) {
	t.Parallel()

	s := Shutdown("stop", nil)
	s.Remember(Logic("remembered", nil))
	if IsLogic(s) {
		t.Fatalf("history entries must not match predicates")
	}
}

func TestIsKind_JoinedBranches(t *testing.T) {
	t.Parallel()

	err := errors.Join(errors.New("a"), Resource("r", nil))
	if !IsResource(err) {
		t.Fatalf("IsResource should scan joined branches")
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	if got := KindOf(nil); got != "" {
		t.Fatalf("KindOf(nil) = %q", got)
	}
	if got := KindOf(errors.New("plain")); got != "" {
		t.Fatalf("KindOf(plain) = %q", got)
	}
	err := fmt.Errorf("outer: %w", Syscall("fork", 11, nil))
	if got := KindOf(err); got != KindSyscall {
		t.Fatalf("KindOf = %q, want %q", got, KindSyscall)
	}
}

func TestReasonOf(t *testing.T) {
	t.Parallel()

	if got := ReasonOf(nil); got != "" {
		t.Fatalf("ReasonOf(nil) = %q", got)
	}
	err := fmt.Errorf("outer: %w", Logic("inner reason", nil))
	if got := ReasonOf(err); got != "inner reason" {
		t.Fatalf("ReasonOf = %q", got)
	}
}

func TestErrnoOf(t *testing.T) {
	t.Parallel()

	if _, ok := ErrnoOf(nil); ok {
		t.Fatalf("ErrnoOf(nil) ok = true")
	}
	if _, ok := ErrnoOf(Logic("x", nil)); ok {
		t.Fatalf("ErrnoOf(Logic) ok = true")
	}

	// The first errno-bearing failure wins.
	err := InvalidArgument("cfg", File("read", 5, Syscall("inner", 9, nil)))
	if n, ok := ErrnoOf(err); !ok || n != 5 {
		t.Fatalf("ErrnoOf = %d, %v, want 5, true", n, ok)
	}
}
