// Package report is the sink for failures that reach the top of a program:
// it renders them with both chains, logs them through slog and counts them
// by kind.
package report

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/xgx-io/failchain"
)

// ForeignKind is the kind label used for errors that carry no Failure on
// their causal chain.
const ForeignKind = "foreign"

// Reporter renders and logs failures. The zero value is not usable; call New.
type Reporter struct {
	logger *slog.Logger
	level  slog.Level
	indent string

	reported *prometheus.CounterVec
}

// Option customises a Reporter.
type Option func(*Reporter)

// WithLogger sets the destination logger. nil selects slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Reporter) { r.logger = l }
}

// WithLevel sets the record level. The default is slog.LevelError.
func WithLevel(level slog.Level) Option {
	return func(r *Reporter) { r.level = level }
}

// WithIndent sets the per-level indent of the rendered text. The default is
// failchain.DefaultIndent.
func WithIndent(indent string) Option {
	return func(r *Reporter) { r.indent = indent }
}

// New returns a Reporter with its counters created but not registered.
func New(opts ...Option) *Reporter {
	r := &Reporter{
		level:  slog.LevelError,
		indent: failchain.DefaultIndent,
		reported: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "failchain",
			Name:      "reported_failures_total",
			Help:      "Total number of failures reported, by kind",
		}, []string{"kind"}),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Register registers the reporter's metrics with reg.
func (r *Reporter) Register(reg prometheus.Registerer) error {
	if reg == nil {
		return failchain.InvalidArgument("nil metrics registerer", nil)
	}
	if err := reg.Register(r.reported); err != nil {
		return failchain.Resource("could not register report metrics", err)
	}
	return nil
}

// Report logs err as one record and counts it. A nil err is ignored.
//
// The record message is "failure.reported"; attributes are id (a fresh
// UUID for correlating the record), kind, reason, history (number of
// remembered predecessors) and failure (the rendered text).
func (r *Reporter) Report(ctx context.Context, err error) {
	if err == nil {
		return
	}
	kind := string(failchain.KindOf(err))
	if kind == "" {
		kind = ForeignKind
	}
	r.reported.WithLabelValues(kind).Inc()

	r.logger.Log(ctx, r.level, "failure.reported",
		slog.String("id", uuid.NewString()),
		slog.String("kind", kind),
		slog.String("reason", failchain.ReasonOf(err)),
		slog.Int("history", failchain.Depth(err)),
		slog.String("failure", failchain.Render(err, 0, r.indent)),
	)
}

// Render returns the text Report would log for err.
func (r *Reporter) Render(err error) string {
	return failchain.Render(err, 0, r.indent)
}
