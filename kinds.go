// kinds.go — concrete failure kinds and their constructors.
//
// Scope:
//   - Six kinds, each a small value type around the shared *core.
//   - Constructors never fail. The causal predecessor is passed explicitly as
//     the last argument (nil when the failure is not raised while handling
//     another one).
//   - File and Syscall record an OS error code and fold it into the reason.
//
// Copy semantics:
//   - Kinds are values; assigning one copies the *core pointer, so every copy
//     observes the same reason and history.
package failchain

import "strconv"

// -----------------------------------------------------------------------------
// InvalidArgumentFailure
// -----------------------------------------------------------------------------

// InvalidArgumentFailure reports a precondition violation.
type InvalidArgumentFailure struct{ *core }

// InvalidArgument creates an InvalidArgumentFailure.
func InvalidArgument(reason string, cause error) InvalidArgumentFailure {
	return InvalidArgumentFailure{newCore(reason, cause)}
}

func (e InvalidArgumentFailure) Name() string                 { return string(KindInvalidArgument) }
func (e InvalidArgumentFailure) Error() string                { return label(e) }
func (e InvalidArgumentFailure) Self() error                  { return e }
func (e InvalidArgumentFailure) Remember(earlier error) error { return e.remember(e, earlier) }
func (e InvalidArgumentFailure) ToString(level int, indent string) string {
	return render(e, level, indent)
}

// -----------------------------------------------------------------------------
// LogicFailure
// -----------------------------------------------------------------------------

// LogicFailure reports API misuse, such as calls made in the wrong order.
type LogicFailure struct{ *core }

// Logic creates a LogicFailure.
func Logic(reason string, cause error) LogicFailure {
	return LogicFailure{newCore(reason, cause)}
}

func (e LogicFailure) Name() string                 { return string(KindLogic) }
func (e LogicFailure) Error() string                { return label(e) }
func (e LogicFailure) Self() error                  { return e }
func (e LogicFailure) Remember(earlier error) error { return e.remember(e, earlier) }
func (e LogicFailure) ToString(level int, indent string) string {
	return render(e, level, indent)
}

// -----------------------------------------------------------------------------
// ShutdownFailure
// -----------------------------------------------------------------------------

// ShutdownFailure is raised once at the end of a teardown, after the failures
// of the individual steps have been remembered into its history.
type ShutdownFailure struct{ *core }

// Shutdown creates a ShutdownFailure.
func Shutdown(reason string, cause error) ShutdownFailure {
	return ShutdownFailure{newCore(reason, cause)}
}

func (e ShutdownFailure) Name() string                 { return string(KindShutdown) }
func (e ShutdownFailure) Error() string                { return label(e) }
func (e ShutdownFailure) Self() error                  { return e }
func (e ShutdownFailure) Remember(earlier error) error { return e.remember(e, earlier) }
func (e ShutdownFailure) ToString(level int, indent string) string {
	return render(e, level, indent)
}

// -----------------------------------------------------------------------------
// FileFailure
// -----------------------------------------------------------------------------

// FileFailure reports an I/O failure. An errno of 0 means no OS error code.
type FileFailure struct {
	*core
	errno int
}

// File creates a FileFailure. A non-zero errno is appended to the reason as
// " (errno = N)".
func File(reason string, errno int, cause error) FileFailure {
	if errno != 0 {
		reason += " (errno = " + strconv.Itoa(errno) + ")"
	}
	return FileFailure{core: newCore(reason, cause), errno: errno}
}

// Errno returns the OS error code recorded at construction.
func (e FileFailure) Errno() int { return e.errno }

func (e FileFailure) Name() string                 { return string(KindFile) }
func (e FileFailure) Error() string                { return label(e) }
func (e FileFailure) Self() error                  { return e }
func (e FileFailure) Remember(earlier error) error { return e.remember(e, earlier) }
func (e FileFailure) ToString(level int, indent string) string {
	return render(e, level, indent)
}

// -----------------------------------------------------------------------------
// SyscallFailure
// -----------------------------------------------------------------------------

// SyscallFailure reports a failed OS call.
type SyscallFailure struct {
	*core
	errno int
}

// Syscall creates a SyscallFailure. The errno is always appended to the
// reason as "(errno = N)", separated by a space when reason is non-empty.
func Syscall(reason string, errno int, cause error) SyscallFailure {
	if reason != "" {
		reason += " "
	}
	reason += "(errno = " + strconv.Itoa(errno) + ")"
	return SyscallFailure{core: newCore(reason, cause), errno: errno}
}

// Errno returns the OS error code recorded at construction.
func (e SyscallFailure) Errno() int { return e.errno }

func (e SyscallFailure) Name() string                 { return string(KindSyscall) }
func (e SyscallFailure) Error() string                { return label(e) }
func (e SyscallFailure) Self() error                  { return e }
func (e SyscallFailure) Remember(earlier error) error { return e.remember(e, earlier) }
func (e SyscallFailure) ToString(level int, indent string) string {
	return render(e, level, indent)
}

// -----------------------------------------------------------------------------
// ResourceFailure
// -----------------------------------------------------------------------------

// ResourceFailure covers failures of third-party code, libraries and resource
// limits. Foreign errors are adopted as the cause of a ResourceFailure.
type ResourceFailure struct{ *core }

// Resource creates a ResourceFailure.
func Resource(reason string, cause error) ResourceFailure {
	return ResourceFailure{newCore(reason, cause)}
}

func (e ResourceFailure) Name() string                 { return string(KindResource) }
func (e ResourceFailure) Error() string                { return label(e) }
func (e ResourceFailure) Self() error                  { return e }
func (e ResourceFailure) Remember(earlier error) error { return e.remember(e, earlier) }
func (e ResourceFailure) ToString(level int, indent string) string {
	return render(e, level, indent)
}

// -----------------------------------------------------------------------------
// Interface conformance guards
// -----------------------------------------------------------------------------

var (
	_ Failure = InvalidArgumentFailure{}
	_ Failure = LogicFailure{}
	_ Failure = ShutdownFailure{}
	_ Failure = FileFailure{}
	_ Failure = SyscallFailure{}
	_ Failure = ResourceFailure{}
)
