// unwrap.go — predecessor discovery and path tracking for the renderer.
//
// Scope:
//   - Causal predecessors come from the stdlib Unwrap forms: Unwrap() error
//     and Unwrap() []error (errors.Join, multi-%w).
//   - History predecessors come from Failure.Earlier.
//   - A trail records the nodes on the path currently being rendered so that
//     cyclic graphs terminate.
//
// Identity:
//   - Failures from this package are identified by their shared *core, so all
//     copies of one failure are the same node.
//   - Other errors are identified by value when their dynamic type is
//     comparable, by pointer when it is a pointer. Values that are neither
//     cannot be tracked and are treated as acyclic.
package failchain

import "reflect"

// maxDepth bounds both walks against graphs whose nodes cannot be tracked.
const maxDepth = 1 << 12

// single/multi unwrap interfaces (stdlib-compatible)
type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

// chainCapable reports whether err exposes either Unwrap form, regardless of
// whether it currently has a predecessor.
func chainCapable(err error) bool {
	switch err.(type) {
	case singleUnwrapper, multiUnwrapper:
		return true
	}
	return false
}

// predecessors returns the non-nil causal predecessors of err. A panicking
// Unwrap method yields no predecessors.
func predecessors(err error) (out []error) {
	defer func() {
		if recover() != nil {
			out = nil
		}
	}()
	switch u := err.(type) {
	case multiUnwrapper:
		kids := u.Unwrap()
		out = make([]error, 0, len(kids))
		for _, k := range kids {
			if k != nil {
				out = append(out, k)
			}
		}
		return out
	case singleUnwrapper:
		if c := u.Unwrap(); c != nil {
			return []error{c}
		}
	}
	return nil
}

// identity returns a comparable key for err, or false if err cannot be
// tracked.
func identity(err error) (any, bool) {
	if err == nil {
		return nil, false
	}
	if f, ok := err.(Failure); ok {
		if c := coreOf(f); c != nil {
			return c, true
		}
	}
	rv := reflect.ValueOf(err)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return rv.Pointer(), true
	}
	if rv.Type().Comparable() && hashable(err) {
		return err, true
	}
	return nil, false
}

// hashable reports whether v can be used as a map key. A comparable struct
// type still panics when one of its interface fields holds an incomparable
// value.
func hashable(v any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	_ = map[any]struct{}{v: {}}
	return true
}

// trail is the set of nodes on the path being rendered.
type trail struct {
	on map[any]int
}

func newTrail() *trail {
	return &trail{on: make(map[any]int, 8)}
}

// enter puts err on the trail. It returns false if err is already on it.
func (t *trail) enter(err error) bool {
	id, ok := identity(err)
	if !ok {
		return true
	}
	if t.on[id] > 0 {
		return false
	}
	t.on[id]++
	return true
}

func (t *trail) leave(err error) {
	id, ok := identity(err)
	if !ok {
		return
	}
	if t.on[id] <= 1 {
		delete(t.on, id)
		return
	}
	t.on[id]--
}

func (t *trail) contains(err error) bool {
	id, ok := identity(err)
	return ok && t.on[id] > 0
}

// exclude drops the errors already on the trail.
func (t *trail) exclude(errs []error) []error {
	if len(errs) == 0 {
		return errs
	}
	out := make([]error, 0, len(errs))
	for _, e := range errs {
		if !t.contains(e) {
			out = append(out, e)
		}
	}
	return out
}

// historyOf returns the remembered predecessors of f, oldest first. The walk
// stops at the first entry without a predecessor, at the first non-Failure
// entry, or at an entry seen before (including f itself).
func historyOf(f Failure) []error {
	seen := newTrail()
	seen.enter(f)

	var newestFirst []error
	next := f.Earlier()
	for next != nil && len(newestFirst) < maxDepth {
		if !seen.enter(next) {
			break
		}
		newestFirst = append(newestFirst, next)
		nf, ok := next.(Failure)
		if !ok {
			break
		}
		next = nf.Earlier()
	}

	out := make([]error, len(newestFirst))
	for i, e := range newestFirst {
		out[len(newestFirst)-1-i] = e
	}
	return out
}
