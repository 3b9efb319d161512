// unwrap_test.go — verification of predecessor discovery, identity and the history walk.
package failchain

import (
	"errors"
	"fmt"
	"testing"
)

// ---------- helpers -----------------------------------------------------------

type leafErr struct{ s string }

func (e leafErr) Error() string { return e.s }

// value-typed error holding an incomparable field
type sliceErr struct{ parts []string }

func (e sliceErr) Error() string { return fmt.Sprint(e.parts) }

// comparable struct whose interface field may hold an incomparable value
type boxErr struct{ v any }

func (e boxErr) Error() string { return "box" }

type panickyUnwrap struct{}

func (panickyUnwrap) Error() string { panic("no message") }
func (panickyUnwrap) Unwrap() error { panic("no cause") }

type myJoin struct{ kids []error }

func (j *myJoin) Error() string   { return "join" }
func (j *myJoin) Unwrap() []error { return j.kids }

// ---------- tests: predecessors ----------------------------------------------

func TestPredecessors_Forms(t *testing.T) {
	t.Parallel()

	leaf := leafErr{"leaf"}

	if got := predecessors(leaf); got != nil {
		t.Fatalf("predecessors(leaf) = %v, want nil", got)
	}
	if got := predecessors(fmt.Errorf("w: %w", leaf)); len(got) != 1 || got[0] != error(leaf) {
		t.Fatalf("single form: got %v", got)
	}
	if got := predecessors(Logic("x", nil)); got != nil {
		t.Fatalf("failure without cause: got %v", got)
	}

	j := &myJoin{kids: []error{nil, leaf, nil, leafErr{"other"}}}
	got := predecessors(j)
	if len(got) != 2 || got[0] != error(leaf) {
		t.Fatalf("multi form should drop nils: got %v", got)
	}
}

func TestPredecessors_PanickingUnwrap(t *testing.T) {
	t.Parallel()

	if got := predecessors(panickyUnwrap{}); got != nil {
		t.Fatalf("predecessors = %v, want nil", got)
	}
	if got := safeMessage(panickyUnwrap{}); got != "" {
		t.Fatalf("safeMessage = %q, want empty", got)
	}
}

func TestChainCapable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want bool
	}{
		{leafErr{"x"}, false},
		{fmt.Errorf("w: %w", leafErr{"x"}), true},
		{errors.Join(leafErr{"x"}), true},
		{Logic("no cause", nil), true},
		{foreignValue{v: 1}, false},
	}
	for i, tc := range cases {
		if got := chainCapable(tc.err); got != tc.want {
			t.Fatalf("case %d (%T): chainCapable = %v, want %v", i, tc.err, got, tc.want)
		}
	}
}

// ---------- tests: identity ---------------------------------------------------

func TestIdentity_CopiesShareOneNode(t *testing.T) {
	t.Parallel()

	f := Logic("x", nil)
	cp := f
	id1, ok1 := identity(f)
	id2, ok2 := identity(cp.Self())
	if !ok1 || !ok2 || id1 != id2 {
		t.Fatalf("copies have different identities: %v %v", id1, id2)
	}

	other := Logic("x", nil)
	id3, _ := identity(other)
	if id3 == id1 {
		t.Fatalf("distinct failures share an identity")
	}
}

func TestIdentity_UntrackableValues(t *testing.T) {
	t.Parallel()

	if _, ok := identity(nil); ok {
		t.Fatalf("nil should not be trackable")
	}
	if _, ok := identity(sliceErr{parts: []string{"a"}}); ok {
		t.Fatalf("incomparable type should not be trackable")
	}
	if _, ok := identity(boxErr{v: []int{1}}); ok {
		t.Fatalf("unhashable value should not be trackable")
	}
	if _, ok := identity(boxErr{v: 1}); !ok {
		t.Fatalf("hashable value should be trackable")
	}
}

func TestTrail_EnterLeave(t *testing.T) {
	t.Parallel()

	tr := newTrail()
	f := Logic("x", nil)

	if !tr.enter(f) {
		t.Fatalf("first enter should succeed")
	}
	if tr.enter(f) {
		t.Fatalf("second enter should report the node as present")
	}
	if !tr.contains(f) {
		t.Fatalf("contains = false after enter")
	}
	if got := tr.exclude([]error{f, leafErr{"y"}}); len(got) != 1 {
		t.Fatalf("exclude kept %d errors, want 1", len(got))
	}
	tr.leave(f)
	if tr.contains(f) {
		t.Fatalf("contains = true after leave")
	}

	// Untrackable values are always admitted.
	s := sliceErr{parts: []string{"a"}}
	if !tr.enter(s) || !tr.enter(s) {
		t.Fatalf("untrackable values should always enter")
	}
}

// ---------- tests: historyOf --------------------------------------------------

func TestHistoryOf_OldestFirst(t *testing.T) {
	t.Parallel()

	a := Logic("a", nil)
	b := Logic("b", nil)
	c := Logic("c", nil)
	var h error
	h = a.Remember(h)
	h = b.Remember(h)
	c.Remember(h)

	got := historyOf(c)
	if len(got) != 2 || got[0] != error(a) || got[1] != error(b) {
		t.Fatalf("historyOf = %v, want [a b]", got)
	}
}

func TestHistoryOf_StopsAtForeignEntry(t *testing.T) {
	t.Parallel()

	leaf := leafErr{"io"}
	b := Logic("b", nil)
	b.Remember(leaf)
	c := Logic("c", nil)
	c.Remember(b)

	got := historyOf(c)
	if len(got) != 2 || got[0] != error(leaf) || got[1] != error(b) {
		t.Fatalf("historyOf = %v, want [io b]", got)
	}
}

func TestHistoryOf_LongChainIsBounded(t *testing.T) {
	t.Parallel()

	var h error
	for i := 0; i < maxDepth+10; i++ {
		h = Logic(fmt.Sprint(i), nil).Remember(h)
	}
	top := Shutdown("top", nil)
	top.Remember(h)

	if got := len(historyOf(top)); got != maxDepth {
		t.Fatalf("historyOf length = %d, want %d", got, maxDepth)
	}
}
