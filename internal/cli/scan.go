package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lorehaven/canon/internal/model"
	"github.com/lorehaven/canon/internal/render"
	"github.com/lorehaven/canon/internal/scan"
)

var (
	outJSON  string
	outMD    string
	noFooter bool
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run the integrity scanner over the store",
	Long: `Scan loads every entry, rebuilds the link graph, and runs four
independent checks:
- contradiction: entries marked contradicted (error)
- duplicate: the same name backed by more than one file, store-wide (error)
- broken-link: [[references]] that resolve to no entry (warning);
  fragment-qualified targets like [[Name#section]] are never flagged
- completeness: scaffolded entries never filled in (info) and sources
  sections left empty (warning)

All checks always run; conflicts are enumerated in full, never truncated.
The command exits non-zero when any error-severity conflict is present.

Example:
  canon scan
  canon scan --json report.json --md report.md`,
	Args: cobra.NoArgs,
	RunE: runScanCmd,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&outJSON, "json", "", "output JSON report path (optional)")
	scanCmd.Flags().StringVar(&outMD, "md", "", "output Markdown report path (optional)")
	scanCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

func runScanCmd(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	cfg.Output.IncludeFooter = !noFooter
	s := openStore(cfg)

	if verbose {
		fmt.Fprintf(os.Stderr, "Scanning store: %s\n\n", cfg.Store.Path)
	}

	scanner := scan.NewScanner(s)
	report, err := scanner.Scan()
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	renderer := render.NewRenderer(cfg.Output.IncludeFooter)
	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(report, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}

	renderer.RenderSummary(report, os.Stdout)

	// Findings are data, not failures, except that error severity is the
	// documented non-zero exit signal for CLI consumers.
	if report.HasErrors() {
		return fmt.Errorf("integrity scan found %d error-severity conflict(s)", report.CountBySeverity()[model.SeverityError])
	}
	return nil
}
