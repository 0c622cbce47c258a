package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lorehaven/canon/internal/extract"
	"github.com/lorehaven/canon/internal/model"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <category> <name>",
	Short: "Print one entry",
	Long: `Show prints an entry's metadata and body. The name is resolved through the
same slug normalization used at creation, so "Elena Voss" and elena-voss
address the same entry.

Example:
  canon show character "Elena Voss"`,
	Args: cobra.ExactArgs(2),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	category, name := args[0], args[1]

	cfg := loadConfig()
	s := openStore(cfg)

	entry, err := s.Get(category, model.Slug(name))
	if err != nil {
		return err
	}

	fmt.Printf("%s %s (%s/%s)\n", entry.Status.Symbol(), entry.Name, entry.Category, model.Slug(entry.Name))
	fmt.Printf("Status:       %s\n", entry.Status)
	if entry.Summary != "" {
		fmt.Printf("Summary:      %s\n", entry.Summary)
	}
	fmt.Printf("Created:      %s\n", entry.CreatedAt.Format("2006-01-02"))
	fmt.Printf("Updated:      %s\n", entry.UpdatedAt.Format("2006-01-02"))
	fmt.Printf("Contributors: %s\n", strings.Join(entry.Contributors, ", "))
	if refs := extract.References(entry.Body); len(refs) > 0 {
		fmt.Printf("References:   %s\n", strings.Join(refs, ", "))
	}
	fmt.Println()
	fmt.Println(entry.Body)
	return nil
}
