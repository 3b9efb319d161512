// kind.go — the closed set of failure kinds.
//
// Conventions:
//   - A Kind is the type tag returned by Failure.Name and equals the Go type
//     name of the concrete failure.
//   - The set is fixed; code outside this package classifies failures by Kind
//     rather than by message text.
package failchain

// Kind is the stable type tag of a failure kind.
type Kind string

const (
	// KindInvalidArgument marks a precondition violation.
	KindInvalidArgument Kind = "InvalidArgumentFailure"
	// KindLogic marks API misuse or wrong call ordering.
	KindLogic Kind = "LogicFailure"
	// KindShutdown marks terminal aggregation during teardown.
	KindShutdown Kind = "ShutdownFailure"
	// KindFile marks an I/O failure with an OS error code.
	KindFile Kind = "FileFailure"
	// KindSyscall marks a failed raw OS call.
	KindSyscall Kind = "SyscallFailure"
	// KindResource is the catch-all for library and resource-limit failures.
	KindResource Kind = "ResourceFailure"
)

var allKinds = []Kind{
	KindInvalidArgument,
	KindLogic,
	KindShutdown,
	KindFile,
	KindSyscall,
	KindResource,
}

var kindSet = map[Kind]struct{}{
	KindInvalidArgument: {},
	KindLogic:           {},
	KindShutdown:        {},
	KindFile:            {},
	KindSyscall:         {},
	KindResource:        {},
}

// Kinds returns a copy of the kind tags in a stable order.
func Kinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds)
	return out
}

// IsKnown reports whether k is one of the kinds defined by this package.
func (k Kind) IsKnown() bool {
	_, ok := kindSet[k]
	return ok
}

func (k Kind) String() string { return string(k) }
