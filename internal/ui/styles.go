package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/trustlens/trustlens/internal/assess"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Risk level styles
	RiskHigh   lipgloss.Style
	RiskMedium lipgloss.Style
	RiskLow    lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Dim       lipgloss.Style
	Separator lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconHigh    string
	IconMedium  string
	IconLow     string
	IconWarning string
	IconSuccess string
}

// NewStyles creates a new Styles instance
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.RiskHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))     // Red
		s.RiskMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))  // Yellow
		s.RiskLow = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))     // Green
		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))     // Green
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))     // Yellow

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))          // Gray
		s.Dim = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
		s.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

		s.IconHigh = "●"
		s.IconMedium = "●"
		s.IconLow = "●"
		s.IconWarning = "⚠"
		s.IconSuccess = "✓"
	} else {
		s.RiskHigh = lipgloss.NewStyle()
		s.RiskMedium = lipgloss.NewStyle()
		s.RiskLow = lipgloss.NewStyle()
		s.Success = lipgloss.NewStyle()
		s.Warning = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.Dim = lipgloss.NewStyle()
		s.Separator = lipgloss.NewStyle()

		s.IconHigh = "HIGH:"
		s.IconMedium = "MED:"
		s.IconLow = "LOW:"
		s.IconWarning = "WARN:"
		s.IconSuccess = "OK:"
	}

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}

// RiskStyle returns the style for a risk level.
func (s *Styles) RiskStyle(level assess.RiskLevel) lipgloss.Style {
	switch level {
	case assess.RiskHigh:
		return s.RiskHigh
	case assess.RiskMedium:
		return s.RiskMedium
	default:
		return s.RiskLow
	}
}

// RiskIcon returns the icon for a risk level.
func (s *Styles) RiskIcon(level assess.RiskLevel) string {
	switch level {
	case assess.RiskHigh:
		return s.IconHigh
	case assess.RiskMedium:
		return s.IconMedium
	default:
		return s.IconLow
	}
}
