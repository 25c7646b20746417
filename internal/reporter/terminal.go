package reporter

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/trustlens/trustlens/internal/assess"
)

// TerminalReporter outputs results to the terminal with colors
type TerminalReporter struct {
	w io.Writer
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer) *TerminalReporter {
	return &TerminalReporter{w: w}
}

// Report outputs assessed items to the terminal, highest risk first
// within the catalog order preserved per item.
func (r *TerminalReporter) Report(items []ItemAssessment) error {
	if len(items) == 0 {
		color.New(color.FgGreen).Fprintln(r.w, "✓ Nothing to assess")
		return nil
	}

	for _, item := range items {
		r.printItem(item)
	}

	r.printSummary(items)

	for _, item := range items {
		if assess.LevelForScore(item.Result.OverallScore) == assess.RiskHigh {
			return fmt.Errorf("high-risk listings found")
		}
	}

	return nil
}

func (r *TerminalReporter) printItem(item ItemAssessment) {
	level := assess.LevelForScore(item.Result.OverallScore)

	fmt.Fprintln(r.w)
	color.New(color.FgWhite, color.Bold).Fprintf(r.w, "%s\n", item.Name)
	levelColor(level).Fprintf(r.w, "  %s %s risk", levelIcon(level), level)
	fmt.Fprintf(r.w, " — trust score %.1f/10\n", item.Result.OverallScore)

	for _, dim := range assess.Dimensions {
		risk, ok := item.Result.DimensionRisks[dim]
		if !ok {
			continue
		}
		scale, bucket := assess.BucketForRisk(risk)
		fmt.Fprintf(r.w, "    %-24s ", dim)
		levelColor(bucket).Fprintf(r.w, "%s (%d/10)\n", bucket, scale)
	}

	for _, label := range item.Result.Labels {
		c := color.New(color.FgBlue)
		switch label.Severity {
		case assess.High:
			c = color.New(color.FgRed)
		case assess.Medium:
			c = color.New(color.FgYellow)
		}
		c.Fprintf(r.w, "    %s", label.Marker())
		fmt.Fprintf(r.w, " %s\n", label.Text)
	}
}

func (r *TerminalReporter) printSummary(items []ItemAssessment) {
	summary := ComputeSummary(items)

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "─────────────────────────────────────")

	parts := []string{}
	if summary.HighRisk > 0 {
		parts = append(parts, color.RedString("%d high risk", summary.HighRisk))
	}
	if summary.MediumRisk > 0 {
		parts = append(parts, color.YellowString("%d medium risk", summary.MediumRisk))
	}
	if summary.LowRisk > 0 {
		parts = append(parts, color.GreenString("%d low risk", summary.LowRisk))
	}

	fmt.Fprintf(r.w, "Assessed %d listings (%d risk labels): ", summary.TotalItems, summary.TotalLabels)
	for i, part := range parts {
		if i > 0 {
			fmt.Fprint(r.w, ", ")
		}
		fmt.Fprint(r.w, part)
	}
	fmt.Fprintln(r.w)
}

func levelColor(level assess.RiskLevel) *color.Color {
	switch level {
	case assess.RiskHigh:
		return color.New(color.FgRed)
	case assess.RiskMedium:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

func levelIcon(level assess.RiskLevel) string {
	switch level {
	case assess.RiskHigh:
		return "✗"
	case assess.RiskMedium:
		return "⚠"
	default:
		return "✓"
	}
}
