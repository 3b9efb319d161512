// failure.go — the Failure contract and the data block shared by its copies.
//
// A failure carries a causal predecessor (what was being handled when it was
// raised) and a history predecessor (failures remembered, but not raised,
// while a sequence of steps ran).
//
// Design tenets:
//   - Interop-first: every kind is an error; errors.Is/As follow the causal edge.
//   - Shared core: kinds are small values around one shared *core, so copies
//     agree on reason and history.
//   - Policy-free: no logging or metrics here; see the report package.
package failchain

// DefaultIndent is the per-level indent used by Error formatting with %+v.
const DefaultIndent = "    "

// Failure is the capability set implemented by every concrete failure kind.
//
// The error returned by Self, Remember and Earlier is the type-erased handle
// to a failure. Recovering the concrete kind from a handle is an explicit
// type check (errors.As or a type switch).
type Failure interface {
	error

	// Name returns the type tag of the kind. It is never empty and is the
	// same for every value of a kind.
	Name() string

	// Reason returns the reason supplied at construction, after any
	// kind-specific transformation. It may be empty.
	Reason() string

	// Unwrap returns the causal predecessor, or nil.
	Unwrap() error

	// Earlier returns the next-older remembered failure, or nil.
	Earlier() error

	// Remember stores earlier as the history predecessor, replacing any
	// previous value, and returns a handle to the receiver (not to earlier).
	// On a zero-value kind it returns a LogicFailure holding earlier instead.
	//
	//   h = a.Remember(h)
	//   h = b.Remember(h)
	//   c.Remember(h) // c → b → a
	Remember(earlier error) error

	// Self returns a type-erased handle to the receiver.
	Self() error

	// ToString renders the failure with both chains, indenting the first line
	// indent×level and each nested level by one more indent.
	ToString(level int, indent string) string
}

// core is the data block shared by all copies of a failure value.
//
// reason and cause are written once at construction. earlier is the only
// mutable field; Remember is not synchronized and callers must serialize it
// against other Remember calls and renders of the same failure.
type core struct {
	reason  string
	cause   error
	earlier error
}

func newCore(reason string, cause error) *core {
	return &core{reason: reason, cause: cause}
}

// The accessors tolerate a nil core so that zero-value kinds render as their
// bare type tag. Zero values cannot hold history; see remember.

func (c *core) Reason() string {
	if c == nil {
		return ""
	}
	return c.reason
}

func (c *core) Unwrap() error {
	if c == nil {
		return nil
	}
	return c.cause
}

func (c *core) Earlier() error {
	if c == nil {
		return nil
	}
	return c.earlier
}

// remember links earlier into the history and hands back self so callers can
// thread the returned handle through successive steps.
//
// A zero-value kind has no core to link into. It keeps the history intact
// by returning a new LogicFailure that remembers earlier instead.
func (c *core) remember(self Failure, earlier error) error {
	if c == nil {
		return Logic("Remember called on a zero-value "+self.Name(), nil).Remember(earlier)
	}
	c.earlier = earlier
	return self.Self()
}

// coreOf returns the shared core behind f, or nil for Failure
// implementations defined outside this package.
func coreOf(f Failure) *core {
	if h, ok := f.(interface{ shared() *core }); ok {
		return h.shared()
	}
	return nil
}

func (c *core) shared() *core { return c }
