package domain

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mouse-blink/suppressor/internal/adapter"
	m "github.com/mouse-blink/suppressor/internal/model"
)

// Reporter writes one diagnostic line per suppressed mutation.
type Reporter struct {
	sink   adapter.DiagnosticSink
	prefix string
	logger logrus.FieldLogger
}

// NewReporter constructs a Reporter. Mutator ids starting with prefix are
// shortened in the output.
func NewReporter(sink adapter.DiagnosticSink, prefix string, logger logrus.FieldLogger) *Reporter {
	return &Reporter{sink: sink, prefix: prefix, logger: logger}
}

// Report emits the diagnostic for c. Sink failures are logged and swallowed.
func (r *Reporter) Report(c m.MutationCandidate) {
	if r.sink == nil {
		return
	}

	if err := r.sink.WriteLine(FormatSuppression(c, r.prefix)); err != nil && r.logger != nil {
		r.logger.WithError(err).WithField("class", c.Class).Warn("failed to write suppression diagnostic")
	}
}

// FormatSuppression renders the diagnostic line for a suppressed candidate.
func FormatSuppression(c m.MutationCandidate, prefix string) string {
	return fmt.Sprintf("Suppressing mutation in %s, line %d: %s (would have %s).",
		c.Class, c.Line, m.ShortMutator(c.Mutator, prefix), c.Description)
}
