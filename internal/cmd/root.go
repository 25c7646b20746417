package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/trustlens/trustlens/internal/ui"
)

var (
	// Global flags
	verbose       bool
	format        string
	baselinesPath string
)

// RootCmd is the top-level trustlens command.
var RootCmd = &cobra.Command{
	Use:   "trustlens",
	Short: "A trust and risk scorer for product-listing texts",
	Long: `trustlens scores short product-listing texts for trustworthiness.

It detects marketing exaggeration, factual inconsistency with the
listing's structured metadata, lack of originality relative to similar
listings, and vague or unverifiable language, and combines the four
signals into a single explainable 0-10 trust score with ranked risk
labels for a human reviewer.`,
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
	RootCmd.PersistentFlags().StringVarP(&baselinesPath, "baselines", "b", "", "Category baselines YAML file (built-in defaults when empty)")
}

// GetUI returns a UI configured for the current flags and TTY.
func GetUI() *ui.UI {
	return ui.New(os.Stdout, os.Stderr, format)
}
