// wrap.go — adopting arbitrary errors into the failure model.
//
// Purpose
//   - Give foreign errors a Failure face so they can take part in a history
//     chain (only Failures can Remember).
//   - Keep the foreign error reachable: it becomes the causal predecessor, so
//     errors.Is/As and the renderer still see it.
package failchain

// From converts any error into a Failure.
//   - nil → nil
//   - Failure → returned as-is
//   - other error → ResourceFailure with an empty reason and err as its cause
func From(err error) Failure {
	if err == nil {
		return nil
	}
	if f, ok := err.(Failure); ok {
		return f
	}
	return Resource("", err)
}

// Wrap adopts err as the cause of a ResourceFailure with the given reason.
// If err is nil the ResourceFailure has no cause.
func Wrap(err error, reason string) ResourceFailure {
	return Resource(reason, err)
}
