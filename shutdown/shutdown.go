// Package shutdown runs teardown steps under the "keep going, remember,
// report once" policy.
//
// Every step is attempted even when an earlier one fails. Each failure is
// remembered into a history chain and logged; Run then returns a single
// ShutdownFailure whose history lists them oldest first, or nil when every
// step succeeded.
package shutdown

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/xgx-io/failchain"
)

// Step is one named teardown action.
type Step struct {
	Name string
	Fn   func(context.Context) error
}

// Sequence is an ordered list of teardown steps. Add and Run may be called
// from different goroutines; Run works on the steps registered when it
// starts.
type Sequence struct {
	mu      sync.Mutex
	name    string
	steps   []Step
	reverse bool
	logger  *slog.Logger
}

// Option customises a Sequence.
type Option func(*Sequence)

// WithLogger sets the logger used for step failures. nil selects
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Sequence) { s.logger = l }
}

// Reverse runs steps in reverse registration order, the usual order for
// releasing resources acquired in sequence.
func Reverse() Option {
	return func(s *Sequence) { s.reverse = true }
}

// New returns an empty sequence. name appears in the reason of the
// ShutdownFailure returned by Run.
func New(name string, opts ...Option) *Sequence {
	s := &Sequence{name: name}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Add registers a step. A nil fn is rejected.
func (s *Sequence) Add(name string, fn func(context.Context) error) error {
	if fn == nil {
		return failchain.InvalidArgument(fmt.Sprintf("step %q has no function", name), nil)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps = append(s.steps, Step{Name: name, Fn: fn})
	return nil
}

// Len returns the number of registered steps.
func (s *Sequence) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.steps)
}

// Run executes every step and returns nil or one ShutdownFailure carrying
// the failed steps as history.
//
// Each failed step is remembered as a fresh ResourceFailure("<step> failed")
// whose cause is the step's error or panic value. The step's own error is
// never modified, so sentinel failures can be returned by many steps. Cancelling ctx does not skip steps; it is passed
// to each step and its error, if any, becomes the cause of the result.
func (s *Sequence) Run(ctx context.Context) error {
	s.mu.Lock()
	steps := slices.Clone(s.steps)
	s.mu.Unlock()
	if s.reverse {
		slices.Reverse(steps)
	}

	var (
		history error
		failed  int
	)
	for _, step := range steps {
		err := failchain.Catch(func() error { return step.Fn(ctx) })
		if err == nil {
			s.logger.DebugContext(ctx, "shutdown.step.complete", "sequence", s.name, "step", step.Name)
			continue
		}
		failed++
		history = failchain.Resource(step.Name+" failed", err).Remember(history)
		s.logger.WarnContext(ctx, "shutdown.step.failed",
			"sequence", s.name,
			"step", step.Name,
			"kind", kindOf(err),
			"error", err,
		)
	}

	if failed == 0 {
		s.logger.InfoContext(ctx, "shutdown.complete", "sequence", s.name, "steps", len(steps))
		return nil
	}

	reason := fmt.Sprintf("%s: %d of %d step(s) failed", s.name, failed, len(steps))
	result := failchain.Shutdown(reason, ctx.Err())
	result.Remember(history)
	s.logger.ErrorContext(ctx, "shutdown.incomplete", "sequence", s.name, "failed", failed, "steps", len(steps))
	return result
}

func kindOf(err error) string {
	if k := failchain.KindOf(err); k != "" {
		return k.String()
	}
	return "foreign"
}
