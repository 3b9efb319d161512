// recover.go — turning raised values into handles.
//
// Go has no implicit "currently handled failure". Code that needs one calls
// Catch around the fallible work and passes the returned error as the cause
// of the failure it raises next:
//
//	if err := failchain.Catch(step); err != nil {
//	    return failchain.InvalidArgument("step threw", err)
//	}
package failchain

import "fmt"

// foreignValue carries a panic value that is neither an error nor text. It has
// no message and no predecessor, so it renders as "unknown exception".
type foreignValue struct {
	v any
}

func (f foreignValue) Error() string { return "" }

// textValue carries a panic value that has text but is not an error.
type textValue struct {
	s string
}

func (t textValue) Error() string { return t.s }

// Recovered converts a value obtained from recover() into an error handle.
//   - nil → nil
//   - error → returned unchanged
//   - string or fmt.Stringer → an error with that text and no predecessor
//   - anything else → an error with an empty message and no predecessor
func Recovered(v any) error {
	switch x := v.(type) {
	case nil:
		return nil
	case error:
		return x
	case string:
		return textValue{s: x}
	case fmt.Stringer:
		return textValue{s: x.String()}
	default:
		return foreignValue{v: v}
	}
}

// Catch runs fn and returns its error. If fn panics, the panic value is
// converted with Recovered and returned instead.
func Catch(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = Recovered(r)
		}
	}()
	return fn()
}

// ValueOf returns the raw panic value behind an error produced by Recovered
// for a value that had no text, and false for any other error.
func ValueOf(err error) (any, bool) {
	if fv, ok := err.(foreignValue); ok {
		return fv.v, true
	}
	return nil, false
}
