package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/trustlens/trustlens/internal/assess"
	"github.com/trustlens/trustlens/internal/feedback"
	"github.com/trustlens/trustlens/internal/reporter"
)

// BrowseModel is the bubbletea model for the interactive catalog
// browser: an item list on the left, assessment details on the right,
// and feedback capture keys.
type BrowseModel struct {
	items    []reporter.ItemAssessment
	feedback *feedback.Log
	cursor   int
	width    int
	height   int
	status   string
	keys     browseKeyMap
	styles   browseStyles
}

type browseKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Accurate   key.Binding
	Inaccurate key.Binding
	Report     key.Binding
	Quit       key.Binding
}

type browseStyles struct {
	selected  lipgloss.Style
	item      lipgloss.Style
	header    lipgloss.Style
	dim       lipgloss.Style
	detail    lipgloss.Style
	riskHigh  lipgloss.Style
	riskMed   lipgloss.Style
	riskLow   lipgloss.Style
	statusBar lipgloss.Style
	helpBar   lipgloss.Style
	pane      lipgloss.Style
}

func defaultBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Accurate: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "mark accurate"),
		),
		Inaccurate: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "mark inaccurate"),
		),
		Report: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "report suspicious"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func defaultBrowseStyles() browseStyles {
	return browseStyles{
		selected:  lipgloss.NewStyle().Background(lipgloss.Color("237")).Bold(true),
		item:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("236")).Padding(0, 1),
		dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		riskHigh:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		riskMed:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		riskLow:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		statusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 1),
		helpBar:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Background(lipgloss.Color("235")),
		pane:      lipgloss.NewStyle().Padding(0, 1),
	}
}

// NewBrowseModel creates a browse model over assessed catalog items.
func NewBrowseModel(items []reporter.ItemAssessment, log *feedback.Log) BrowseModel {
	return BrowseModel{
		items:    items,
		feedback: log,
		keys:     defaultBrowseKeyMap(),
		styles:   defaultBrowseStyles(),
	}
}

// Init initializes the model
func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.status = ""
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
				m.status = ""
			}

		case key.Matches(msg, m.keys.Accurate):
			m.recordVerdict(feedback.VerdictAccurate, &m)

		case key.Matches(msg, m.keys.Inaccurate):
			m.recordVerdict(feedback.VerdictInaccurate, &m)

		case key.Matches(msg, m.keys.Report):
			m.recordVerdict(feedback.VerdictSuspicious, &m)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m BrowseModel) recordVerdict(verdict feedback.Verdict, out *BrowseModel) {
	if len(m.items) == 0 || m.feedback == nil {
		return
	}
	item := m.items[m.cursor]
	if _, err := m.feedback.Record(item.Name, verdict, item.Result.OverallScore); err != nil {
		out.status = fmt.Sprintf("could not record feedback: %v", err)
		return
	}
	out.status = fmt.Sprintf("feedback recorded for %q: %s", item.Name, verdict)
}

// View renders the browser
func (m BrowseModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	listWidth := m.width / 3
	if listWidth < 24 {
		listWidth = 24
	}
	detailWidth := m.width - listWidth - 3
	bodyHeight := m.height - 4
	if bodyHeight < 5 {
		bodyHeight = 5
	}

	list := m.renderList(listWidth, bodyHeight)
	detail := m.renderDetail(detailWidth, bodyHeight)
	body := lipgloss.JoinHorizontal(lipgloss.Top, list, " │ ", detail)

	var sb strings.Builder
	sb.WriteString(m.styles.header.Width(m.width).Render("trustlens — listing trust review"))
	sb.WriteString("\n")
	sb.WriteString(body)
	sb.WriteString("\n")

	status := m.status
	if status == "" && len(m.items) > 0 {
		item := m.items[m.cursor]
		status = fmt.Sprintf("%d/%d  score %.1f/10", m.cursor+1, len(m.items), item.Result.OverallScore)
	}
	sb.WriteString(m.styles.statusBar.Width(m.width).Render(status))
	sb.WriteString("\n")

	help := " ↑↓ navigate  a accurate  x inaccurate  r report suspicious  q quit"
	sb.WriteString(m.styles.helpBar.Width(m.width).Render(help))

	return sb.String()
}

func (m BrowseModel) renderList(width, height int) string {
	var lines []string
	for i, item := range m.items {
		level := assess.LevelForScore(item.Result.OverallScore)
		icon := m.riskStyle(level).Render("●")
		name := item.Name
		if lipgloss.Width(name) > width-4 {
			name = name[:width-5] + "…"
		}
		line := fmt.Sprintf("%s %s", icon, name)
		if i == m.cursor {
			line = m.styles.selected.Render(line)
		} else {
			line = m.styles.item.Render(line)
		}
		lines = append(lines, line)
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return m.styles.pane.Width(width).Render(strings.Join(lines, "\n"))
}

func (m BrowseModel) renderDetail(width, height int) string {
	if len(m.items) == 0 {
		return m.styles.dim.Render("no items loaded")
	}
	item := m.items[m.cursor]
	level := assess.LevelForScore(item.Result.OverallScore)

	var sb strings.Builder
	sb.WriteString(m.styles.item.Bold(true).Render(item.Name))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.detail.Width(width).Render(item.Text))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Trust score: %.1f/10  ", item.Result.OverallScore))
	sb.WriteString(m.riskStyle(level).Render(fmt.Sprintf("%s risk", level)))
	sb.WriteString("\n\n")

	sb.WriteString(m.styles.dim.Render("Dimension risks:"))
	sb.WriteString("\n")
	for _, dim := range assess.Dimensions {
		risk, ok := item.Result.DimensionRisks[dim]
		if !ok {
			continue
		}
		scale, bucket := assess.BucketForRisk(risk)
		sb.WriteString(fmt.Sprintf("  %-24s %s\n", dim,
			m.riskStyle(bucket).Render(fmt.Sprintf("%s (%d/10)", bucket, scale))))
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.dim.Render("Risk labels:"))
	sb.WriteString("\n")
	if len(item.Result.Labels) == 0 {
		sb.WriteString(m.styles.riskLow.Render("  ✓ no specific risk labels"))
		sb.WriteString("\n")
	}
	for _, label := range item.Result.Labels {
		style := m.styles.dim
		switch label.Severity {
		case assess.High:
			style = m.styles.riskHigh
		case assess.Medium:
			style = m.styles.riskMed
		}
		line := fmt.Sprintf("  %s %s", style.Render(label.Marker()), label.Text)
		sb.WriteString(lipgloss.NewStyle().Width(width).Render(line))
		sb.WriteString("\n")
	}

	content := sb.String()
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
		content = strings.Join(lines, "\n")
	}
	return m.styles.pane.Width(width).Render(content)
}

func (m BrowseModel) riskStyle(level assess.RiskLevel) lipgloss.Style {
	switch level {
	case assess.RiskHigh:
		return m.styles.riskHigh
	case assess.RiskMedium:
		return m.styles.riskMed
	default:
		return m.styles.riskLow
	}
}
