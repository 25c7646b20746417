package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/trustlens/trustlens/internal/feedback"
	"github.com/trustlens/trustlens/internal/ui"
)

var feedbackPath string

var browseCmd = &cobra.Command{
	Use:   "browse [catalog.yaml]",
	Short: "Interactively browse assessed listings",
	Long: `Open an interactive browser over the assessed catalog.

The left pane lists items with a colored risk icon; the right pane shows
the listing text, trust score, dimension risk breakdown and risk labels.
Reviewer verdicts are appended to a local feedback log.

Controls:
  ↑/k, ↓/j  Navigate up/down
  a         Mark the assessment accurate
  x         Mark the assessment inaccurate
  r         Report the listing text as suspicious
  q         Quit

Examples:
  trustlens browse
  trustlens browse catalog.yaml`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runBrowse,
	SilenceUsage: true,
}

func init() {
	browseCmd.Flags().StringVar(&feedbackPath, "feedback-log", "", "Feedback log file (default ~/.trustlens/feedback.jsonl)")
	RootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	items, engine, err := loadCatalogAndEngine(args)
	if err != nil {
		return err
	}

	logPath := feedbackPath
	if logPath == "" {
		logPath, err = feedback.DefaultPath()
		if err != nil {
			return err
		}
	}

	assessed := assessAll(engine, items)
	model := ui.NewBrowseModel(assessed, feedback.OpenLog(logPath))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}
