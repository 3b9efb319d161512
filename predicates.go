// predicates.go — stdlib-aligned predicates over the failure kinds.
//
// Scope:
//   • Answer "which kind is this?" without string matching.
//   • Interop-first: errors.As follows the causal edge (Unwrap), including
//     joined errors; the history edge is not traversed.
package failchain

import "errors"

// IsInvalidArgument reports whether err is, or was caused by, an
// InvalidArgumentFailure.
func IsInvalidArgument(err error) bool {
	var target InvalidArgumentFailure
	return err != nil && errors.As(err, &target)
}

// IsLogic reports whether err is, or was caused by, a LogicFailure.
func IsLogic(err error) bool {
	var target LogicFailure
	return err != nil && errors.As(err, &target)
}

// IsShutdown reports whether err is, or was caused by, a ShutdownFailure.
func IsShutdown(err error) bool {
	var target ShutdownFailure
	return err != nil && errors.As(err, &target)
}

// IsFile reports whether err is, or was caused by, a FileFailure.
func IsFile(err error) bool {
	var target FileFailure
	return err != nil && errors.As(err, &target)
}

// IsSyscall reports whether err is, or was caused by, a SyscallFailure.
func IsSyscall(err error) bool {
	var target SyscallFailure
	return err != nil && errors.As(err, &target)
}

// IsResource reports whether err is, or was caused by, a ResourceFailure.
func IsResource(err error) bool {
	var target ResourceFailure
	return err != nil && errors.As(err, &target)
}

// KindOf returns the kind of the first Failure along err's causal chain, or
// "" if there is none.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var f Failure
	if errors.As(err, &f) {
		return Kind(f.Name())
	}
	return ""
}

// ReasonOf returns the reason of the first Failure along err's causal chain,
// or "" if there is none.
func ReasonOf(err error) string {
	if err == nil {
		return ""
	}
	var f Failure
	if errors.As(err, &f) {
		return f.Reason()
	}
	return ""
}

// ErrnoOf returns the OS error code of the first File or Syscall failure along
// err's causal chain.
func ErrnoOf(err error) (int, bool) {
	if err == nil {
		return 0, false
	}
	var en interface{ Errno() int }
	if errors.As(err, &en) {
		return en.Errno(), true
	}
	return 0, false
}
