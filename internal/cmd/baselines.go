package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/trustlens/trustlens/internal/assess"
	"github.com/trustlens/trustlens/internal/baseline"
	"github.com/trustlens/trustlens/internal/catalog"
)

var baselinesCmd = &cobra.Command{
	Use:   "baselines [catalog.yaml]",
	Short: "Compute category baselines from a catalog",
	Long: `Derive per-category reference statistics from a catalog corpus:
average sentiment polarity and average listing length in words.

The output is YAML, suitable for --baselines on later runs.

Examples:
  trustlens baselines catalog.yaml > baselines.yaml`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runBaselines,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(baselinesCmd)
}

func runBaselines(cmd *cobra.Command, args []string) error {
	var items []catalog.Item
	var err error
	if len(args) > 0 {
		items, err = catalog.Load(args[0])
	} else {
		items, err = catalog.Sample()
	}
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	byCategory := map[string][]string{}
	for _, item := range items {
		if item.Metadata == nil || item.Metadata.Category == "" || item.Text == "" {
			continue
		}
		byCategory[item.Metadata.Category] = append(byCategory[item.Metadata.Category], item.Text)
	}

	scorer := assess.NewVaderScorer()
	reg := baseline.Compute(byCategory, func(text string) float64 {
		polarity, err := scorer.Compound(text)
		if err != nil {
			return 0
		}
		return polarity
	})

	if verbose {
		fmt.Fprintf(os.Stderr, "Computed baselines for %d categories from %d listings\n", len(reg), len(items))
	}

	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	return enc.Encode(reg)
}
