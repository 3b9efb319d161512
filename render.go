// render.go — recursive rendering of the causal and history chains.
//
// Layout (indent = I, level = L, margin(n) = I repeated n times):
//
//   margin(L)   Name: reason
//   margin(L)+I Exception history:               (only when there are entries)
//   margin(L+2) Exception #1:                    (oldest first)
//   margin(L+3) Name: reason                     (+ its causal block, no history)
//   ...
//   :\n + causal predecessor at L+1              (only when Unwrap() != nil)
//
// Causal predecessors are classified by capability:
//   - Failure                       → full render one level deeper
//   - message + Unwrap              → message, derived note, then its predecessor
//   - Unwrap without message        → "<unlabeled chained failure>", then its predecessor
//   - Unwrap() []error              → "<joined failures>", then each child
//   - neither                       → message or "unknown exception"; the walk ends
//
// The renderer never panics. A node that is already being rendered further up
// the same path is skipped, so cyclic graphs terminate.
package failchain

import (
	"fmt"
	"io"
	"strings"
)

const (
	historyHeading  = "Exception history:"
	derivedNote     = " (derived from message-bearing and chain-capable capabilities)"
	unlabeledChain  = "<unlabeled chained failure>"
	unknownFailure  = "unknown exception"
	joinedLabel     = "<joined failures>"
	generationLabel = "Exception #"
)

// label returns the first-line text of a failure: its name, plus the reason
// when non-empty.
func label(f Failure) string {
	if r := f.Reason(); r != "" {
		return f.Name() + ": " + r
	}
	return f.Name()
}

// foreignLabel returns the text printed for an error that is not a Failure.
func foreignLabel(err error) string {
	if _, ok := err.(multiUnwrapper); ok {
		return joinedLabel
	}
	msg := safeMessage(err)
	if chainCapable(err) {
		if msg == "" {
			return unlabeledChain
		}
		return msg + derivedNote
	}
	if msg == "" {
		return unknownFailure
	}
	return msg
}

// safeMessage calls err.Error(), treating a panicking Error method (typically
// a nil pointer receiver) as an empty message.
func safeMessage(err error) (msg string) {
	defer func() {
		if recover() != nil {
			msg = ""
		}
	}()
	return err.Error()
}

type renderer struct {
	sb     strings.Builder
	indent string
	trail  *trail
	depth  int
}

func newRenderer(indent string) *renderer {
	return &renderer{indent: indent, trail: newTrail()}
}

func (r *renderer) margin(level int) string {
	if level <= 0 || r.indent == "" {
		return ""
	}
	return strings.Repeat(r.indent, level)
}

func render(f Failure, level int, indent string) string {
	r := newRenderer(indent)
	r.failure(f, level)
	return r.sb.String()
}

// Render renders any error. Failures render exactly as ToString does; other
// errors print their label followed by their causal predecessors. A nil error
// renders as the empty string.
func Render(err error, level int, indent string) string {
	if err == nil {
		return ""
	}
	if f, ok := err.(Failure); ok {
		return f.ToString(level, indent)
	}
	r := newRenderer(indent)
	r.sb.WriteString(r.margin(level))
	r.sb.WriteString(foreignLabel(err))
	r.trail.enter(err)
	r.cause(err, level)
	r.trail.leave(err)
	return r.sb.String()
}

// failure writes f at level, followed by its history and causal blocks.
func (r *renderer) failure(f Failure, level int) {
	r.trail.enter(f)
	defer r.trail.leave(f)

	margin := r.margin(level)
	r.sb.WriteString(margin)
	r.sb.WriteString(label(f))

	if f.Earlier() != nil {
		if entries := historyOf(f); len(entries) > 0 {
			r.sb.WriteString("\n")
			r.sb.WriteString(margin)
			r.sb.WriteString(r.indent)
			r.sb.WriteString(historyHeading)
			r.history(entries, level+2)
		}
	}

	r.cause(f, level)
}

// history writes the remembered predecessors, given oldest-first. Entries are
// flat: each shows its label and causal block but not its own history.
func (r *renderer) history(entries []error, level int) {
	margin := r.margin(level)
	for i, e := range entries {
		r.sb.WriteString("\n")
		r.sb.WriteString(margin)
		r.sb.WriteString(generationLabel)
		fmt.Fprintf(&r.sb, "%d:\n", i+1)
		r.sb.WriteString(margin)
		r.sb.WriteString(r.indent)
		if ef, ok := e.(Failure); ok {
			r.sb.WriteString(label(ef))
		} else {
			r.sb.WriteString(foreignLabel(e))
		}
		if r.trail.enter(e) {
			r.cause(e, level+1)
			r.trail.leave(e)
		}
	}
}

// cause writes the causal block of err: ":\n" followed by each predecessor
// one level below level. Nothing is written when err has no predecessor
// that is not already on the current path.
func (r *renderer) cause(err error, level int) {
	if r.depth >= maxDepth {
		return
	}
	preds := r.trail.exclude(predecessors(err))
	if len(preds) == 0 {
		return
	}
	r.depth++
	defer func() { r.depth-- }()

	margin := r.margin(level)
	r.sb.WriteString(":\n")
	for i, p := range preds {
		if i > 0 {
			r.sb.WriteString("\n")
		}
		if pf, ok := p.(Failure); ok {
			r.failure(pf, level+1)
			continue
		}
		r.sb.WriteString(margin)
		r.sb.WriteString(r.indent)
		r.sb.WriteString(foreignLabel(p))
		r.trail.enter(p)
		r.cause(p, level+1)
		r.trail.leave(p)
	}
}

// -----------------------------------------------------------------------------
// fmt.Formatter
// -----------------------------------------------------------------------------

// formatFailure implements the verbs shared by every kind:
//
//	%s, %v → Error()
//	%+v    → ToString(0, DefaultIndent)
//	%q     → quoted Error()
func formatFailure(s fmt.State, verb rune, f Failure) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, f.ToString(0, DefaultIndent))
			return
		}
		_, _ = io.WriteString(s, f.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", f.Error())
	default:
		_, _ = io.WriteString(s, f.Error())
	}
}

func (e InvalidArgumentFailure) Format(s fmt.State, verb rune) { formatFailure(s, verb, e) }
func (e LogicFailure) Format(s fmt.State, verb rune)           { formatFailure(s, verb, e) }
func (e ShutdownFailure) Format(s fmt.State, verb rune)        { formatFailure(s, verb, e) }
func (e FileFailure) Format(s fmt.State, verb rune)            { formatFailure(s, verb, e) }
func (e SyscallFailure) Format(s fmt.State, verb rune)         { formatFailure(s, verb, e) }
func (e ResourceFailure) Format(s fmt.State, verb rune)        { formatFailure(s, verb, e) }
