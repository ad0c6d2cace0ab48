package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/thoreinstein/rigup/internal/logging"
)

// Presenter renders a Report as text for the operator. Rendering is pure
// formatting; it never inspects the host.
type Presenter struct {
	out io.Writer

	okColor   *color.Color
	failColor *color.Color
	skipColor *color.Color
	headColor *color.Color
}

// NewPresenter creates a Presenter writing to out. Colors are enabled only
// when out supports them.
func NewPresenter(out io.Writer) *Presenter {
	p := &Presenter{out: out}
	if logging.SupportsColor(out) {
		p.okColor = color.New(color.FgGreen)
		p.failColor = color.New(color.FgRed, color.Bold)
		p.skipColor = color.New(color.FgYellow)
		p.headColor = color.New(color.Bold)
	}
	return p
}

// Present renders the report: the fatal condition first, then attempts
// grouped by outcome in run order, then operator directives.
func (p *Presenter) Present(r *Report) {
	if r.Fatal != "" {
		p.printf(p.failColor, "FATAL: %s\n\n", r.Fatal)
	}

	groups := []struct {
		outcome Outcome
		heading string
		color   *color.Color
	}{
		{Failed, "Failed", p.failColor},
		{Installed, "Installed", p.okColor},
		{AlreadyPresent, "Already present", p.okColor},
		{SkippedOptional, "Skipped", p.skipColor},
	}

	for _, g := range groups {
		attempts := r.byOutcome(g.outcome)
		if len(attempts) == 0 {
			continue
		}
		p.printf(p.headColor, "%s (%d):\n", g.heading, len(attempts))
		for _, a := range attempts {
			line := fmt.Sprintf("  %s %s", outcomeIcon(a.Outcome), a.Capability.Name)
			if a.Strategy != "" {
				line += fmt.Sprintf(" [%s]", a.Strategy)
			}
			if a.Detail != "" {
				line += ": " + a.Detail
			}
			p.printf(g.color, "%s\n", line)
		}
	}

	if len(r.Directives) > 0 {
		p.printf(p.headColor, "\nManual follow-ups:\n")
		for _, d := range r.Directives {
			fmt.Fprintf(p.out, "  - %s\n", d)
		}
	}

	fmt.Fprintf(p.out, "\nSummary: %d installed, %d already present, %d failed, %d skipped\n",
		r.CountByOutcome(Installed),
		r.CountByOutcome(AlreadyPresent),
		r.CountByOutcome(Failed),
		r.CountByOutcome(SkippedOptional))
}

func (r *Report) byOutcome(o Outcome) []InstallAttempt {
	var out []InstallAttempt
	for _, a := range r.Attempts {
		if a.Outcome == o {
			out = append(out, a)
		}
	}
	return out
}

func (p *Presenter) printf(c *color.Color, format string, args ...any) {
	if c != nil {
		c.Fprintf(p.out, format, args...)
		return
	}
	fmt.Fprintf(p.out, format, args...)
}

func outcomeIcon(o Outcome) string {
	switch o {
	case Installed, AlreadyPresent:
		return "✓"
	case Failed:
		return "✗"
	case SkippedOptional:
		return "-"
	default:
		return "?"
	}
}
