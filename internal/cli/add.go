package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lorehaven/canon/internal/llm"
	"github.com/lorehaven/canon/internal/model"
	"github.com/lorehaven/canon/internal/store"
)

var (
	addStatus      string
	addContributor string
	addSummary     string
	addLLM         bool
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <category> <name>",
	Short: "Create a new canon entry",
	Long: `Add creates one entry in the store: a markdown file scaffolded from the
entry template, a Created record in the changelog, and a new row in the
category index.

The category is case-insensitive and accepts singular or plural forms.
Creation refuses a name whose slug already exists in the same category;
the same name under a different category is allowed here and surfaced by
'canon scan' as a duplicate conflict instead.

Example:
  canon add character "Elena Voss" --status proposed --contributor mira
  canon add location Oakhaven --summary "Fishing town on the Gray Coast"
  canon add faction "The Order" --llm`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addStatus, "status", "", "canon status (default: proposed)")
	addCmd.Flags().StringVar(&addContributor, "contributor", "", "contributor identifier")
	addCmd.Flags().StringVar(&addSummary, "summary", "", "one-line summary for the category index")
	addCmd.Flags().BoolVar(&addLLM, "llm", false, "draft the index summary with the configured LLM provider")
}

func runAdd(cmd *cobra.Command, args []string) error {
	category, name := args[0], args[1]

	cfg := loadConfig()
	contributor := addContributor
	if contributor == "" {
		contributor = cfg.Store.Contributor
	}

	s := openStore(cfg)
	entry, err := s.Create(category, name, addStatus, contributor, addSummary)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return fmt.Errorf("%w (use a different name, or 'canon show %s %s' to inspect it)", err, category, name)
		}
		return err
	}

	// Summary drafting is best-effort and happens after the entry exists;
	// a provider failure leaves the manual summary in place.
	if addLLM && addSummary == "" {
		if err := draftSummary(cfg, s, entry); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM summary skipped: %v\n", err)
		}
	}

	fmt.Printf("✓ Created %s — %q (%s %s)\n", entry.Path, entry.Name, entry.Status.Symbol(), entry.Status)
	if verbose {
		fmt.Fprintf(os.Stderr, "Changelog and %s index updated\n", entry.Category)
	}
	return nil
}

// draftSummary asks the configured provider for a one-line summary and
// stores it on the entry.
func draftSummary(cfg *model.Config, s *store.Store, entry *model.Entry) error {
	llmCfg := cfg.LLM
	if llmCfg.Provider == "" {
		llmCfg.Provider = "openai"
	}
	if llmCfg.Provider == "openai" {
		llmCfg.APIKey = os.Getenv("OPENAI_API_KEY")
		if llmCfg.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	provider, err := llm.NewProvider(llm.ConfigFromModel(llmCfg))
	if err != nil {
		return err
	}
	if provider == nil {
		return fmt.Errorf("no LLM provider configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(llmCfg.Timeout)*time.Second)
	defer cancel()

	summary, err := provider.Summarize(ctx, llm.SummarizeRequest{
		Name:     entry.Name,
		Category: entry.Category,
		Body:     entry.Body,
	})
	if err != nil {
		return err
	}

	if _, err := s.SetSummary(string(entry.Category), model.Slug(entry.Name), summary); err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Drafted summary via %s: %s\n", provider.Name(), summary)
	}
	return nil
}
