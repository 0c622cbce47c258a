package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rebuildCmd represents the rebuild command
var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Regenerate all category index files",
	Long: `Rebuild rewrites every category index table from the entry files on disk.
Use it after editing entries by hand or when an index has drifted.

Example:
  canon rebuild --store ./worldbible`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		s := openStore(cfg)

		if err := s.RebuildIndexes(); err != nil {
			return fmt.Errorf("rebuild indexes: %w", err)
		}

		fmt.Printf("✓ Rebuilt category indexes: %s\n", cfg.Store.Path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rebuildCmd)
}
