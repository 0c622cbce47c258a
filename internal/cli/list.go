package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lorehaven/canon/internal/model"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List entries, store-wide or for one category",
	Long: `List prints entries with their status symbol and summary. Without an
argument every category is listed.

Example:
  canon list
  canon list characters`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	s := openStore(cfg)

	categories := model.Categories()
	if len(args) == 1 {
		cat, err := model.ParseCategory(args[0])
		if err != nil {
			return err
		}
		categories = []model.Category{cat}
	}

	total := 0
	for _, cat := range categories {
		entries, err := s.List(string(cat))
		if err != nil {
			return err
		}
		if len(entries) == 0 && len(args) == 0 {
			continue
		}

		fmt.Printf("%s (%d)\n", cat.Title(), len(entries))
		for _, e := range entries {
			line := fmt.Sprintf("  %s %s", e.Status.Symbol(), e.Name)
			if e.Summary != "" {
				line += " — " + e.Summary
			}
			fmt.Println(line)
		}
		total += len(entries)
	}

	if verbose {
		fmt.Printf("\n%d entries\n", total)
	}
	return nil
}
