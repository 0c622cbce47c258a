package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lorehaven/canon/internal/model"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a new canon store",
	Long: `Init creates the store layout: one directory per category with a sentinel
index table, plus the changelog anchor file. Running it against an
existing store is safe — present files are left untouched.

Example:
  canon init --store ./worldbible`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		s := openStore(cfg)

		if err := s.Init(); err != nil {
			return fmt.Errorf("init store: %w", err)
		}

		fmt.Printf("✓ Initialized canon store: %s\n", cfg.Store.Path)
		if verbose {
			for _, c := range model.Categories() {
				fmt.Printf("  %s/\n", c)
			}
			fmt.Println("  CHANGELOG.md")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
