// history.go — building and reading history chains.
//
// A history chain is built by threading the handle returned from Remember:
//
//	var h error
//	h = stepA.Remember(h)
//	h = stepB.Remember(h)
//	return Shutdown("teardown incomplete", nil).Remember(h)
//
// Chain does the threading for a list of errors; History reads it back.
package failchain

// History returns the remembered predecessors of err oldest-first. It returns
// nil when err is not a Failure or has no history. Cycles end the walk.
func History(err error) []error {
	f, ok := err.(Failure)
	if !ok || f.Earlier() == nil {
		return nil
	}
	return historyOf(f)
}

// Chain remembers each non-nil error in order and returns a handle to the
// newest one. Errors that are not Failures are adopted with From first.
//   - All nil → nil
//   - One non-nil → its Failure handle, with no history attached
//   - 2+ non-nil → the last one, its history reaching back to the first
//
// Chain overwrites the history predecessor of every Failure it is given.
func Chain(errs ...error) error {
	var h error
	for _, err := range errs {
		if err == nil {
			continue
		}
		h = From(err).Remember(h)
	}
	return h
}

// Depth returns the number of remembered predecessors of err.
func Depth(err error) int {
	return len(History(err))
}
