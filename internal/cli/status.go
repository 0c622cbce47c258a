package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lorehaven/canon/internal/model"
)

var statusContributor string

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status <category> <name> <new-status>",
	Short: "Change an entry's canon status",
	Long: `Status sets an entry's canon lifecycle value. Transitions are free: any of
the five statuses can be set at any time, including moving an established
entry back to proposed. The integrity scanner — not this command — is the
guard against inconsistent states; entries marked contradicted are flagged
on every scan until resolved.

There is no delete command: deprecating an entry is the soft-delete.

Example:
  canon status character "Elena Voss" established
  canon status rule magic-decay contradicted --contributor theo`,
	Args: cobra.ExactArgs(3),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVar(&statusContributor, "contributor", "", "contributor identifier")
}

func runStatus(cmd *cobra.Command, args []string) error {
	category, name, status := args[0], args[1], args[2]

	cfg := loadConfig()
	contributor := statusContributor
	if contributor == "" {
		contributor = cfg.Store.Contributor
	}

	s := openStore(cfg)
	entry, err := s.SetStatus(category, model.Slug(name), status, contributor)
	if err != nil {
		return err
	}

	fmt.Printf("✓ %s — %q is now %s %s\n", entry.Path, entry.Name, entry.Status.Symbol(), entry.Status)
	return nil
}
