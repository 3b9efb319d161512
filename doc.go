// doc.go — package documentation for failchain
//
// Package failchain provides a small failure model with two chains and a
// renderer that turns both into indented diagnostic text.
//
// # Kinds
//
// The set of kinds is closed:
//
//	+--------------------------+--------------------------------------------+
//	| Kind                     | Use                                        |
//	+--------------------------+--------------------------------------------+
//	| InvalidArgumentFailure   | precondition violated                      |
//	| LogicFailure             | API misuse, wrong call order               |
//	| ShutdownFailure          | terminal failure of a teardown             |
//	| FileFailure              | I/O failure, errno folded into the reason  |
//	| SyscallFailure           | raw OS call failure, errno always shown    |
//	| ResourceFailure          | library, third-party, resource limits      |
//	+--------------------------+--------------------------------------------+
//
// Kinds are values around a shared core. Copying a failure is cheap and every
// copy sees the same reason and history.
//
// # Causal chain
//
// The causal predecessor is the failure that was being handled when a new one
// was raised. It is passed as the last constructor argument and exposed
// through Unwrap, so errors.Is/As see it:
//
//	if err := parse(b); err != nil {
//	    return failchain.InvalidArgument("bad header", err)
//	}
//
// Panics are brought into the chain with Catch or Recovered.
//
// # History chain
//
// Remember links a failure to an earlier one without raising anything, and
// returns a handle to the receiver. Threading that handle through a sequence
// of steps builds a list that is rendered oldest-first:
//
//	var h error
//	if err := closeDB(); err != nil {
//	    h = failchain.From(err).Remember(h)
//	}
//	if err := flushLog(); err != nil {
//	    h = failchain.From(err).Remember(h)
//	}
//	if h != nil {
//	    return failchain.Shutdown("teardown incomplete", nil).Remember(h)
//	}
//
// Remember is not synchronized. Serialize it against other Remember calls and
// renders of the same failure.
//
// # Rendering
//
// ToString(level, indent) and the %+v verb render both chains:
//
//	ShutdownFailure: teardown incomplete
//	    Exception history:
//	        Exception #1:
//	            FileFailure: cannot open "db.lock" (errno = 2)
//	        Exception #2:
//	            ResourceFailure: flush log:
//	                disk quota exceeded
//
// Causal predecessors that are not failures are printed by capability: their
// message, a note when they wrap further errors, or "unknown exception" when
// they have neither text nor a predecessor. Rendering never panics and stops
// at cycles.
//
// # Interop
//
//   - %v and %s print Error(): the kind name plus ": reason" when non-empty.
//   - errors.Is/As follow Unwrap (the causal edge) only.
//   - Render works on any error, not only failures.
package failchain
