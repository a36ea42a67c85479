package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/AntonioJCosta/run/internal/core/domain/script"
	"github.com/AntonioJCosta/run/internal/core/ports"
)

// Reporter prints the start and end of a dispatched script.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Started implements ports.RunReporter.
func (r *Reporter) Started(entry script.Entry) {
	fmt.Fprintf(r.out, "%s %s %s\n", InfoColor("Running"), ScriptNameColor(entry.Name), DetailColor("> "+entry.Script.Command))
}

// Finished implements ports.RunReporter.
func (r *Reporter) Finished(outcome ports.Outcome) {
	if outcome.ExitCode == 0 {
		fmt.Fprintf(r.out, "%s %s\n", SuccessColor("Finished in"), FormatElapsed(outcome.Elapsed))
		return
	}
	fmt.Fprintf(r.out, "%s %d\n", ErrorColor("Exited with code"), outcome.ExitCode)
}

// FormatElapsed rounds d to a readable precision.
func FormatElapsed(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return d.Round(time.Millisecond).String()
	default:
		return d.Round(10 * time.Millisecond).String()
	}
}

var _ ports.RunReporter = (*Reporter)(nil)
