// Package render writes integrity reports as JSON, Markdown, and a terminal
// summary.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lorehaven/canon/internal/model"
)

// Renderer renders integrity reports
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes the report as a Markdown document.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	if err := os.WriteFile(path, []byte(r.Markdown(report)), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Markdown renders the report body. Conflicts are grouped by severity,
// errors first.
func (r *Renderer) Markdown(report *model.Report) string {
	var b strings.Builder

	b.WriteString("# Canon Integrity Report\n\n")
	fmt.Fprintf(&b, "- Store: `%s`\n", report.StorePath)
	fmt.Fprintf(&b, "- Scanned: %s\n", report.ScannedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "- Entries: %d\n", report.Entries)
	fmt.Fprintf(&b, "- Reference targets: %d\n", report.References)
	fmt.Fprintf(&b, "- Conflicts: %d\n\n", len(report.Conflicts))

	if len(report.Conflicts) == 0 {
		b.WriteString("No conflicts found.\n")
	}

	for _, severity := range []model.Severity{model.SeverityError, model.SeverityWarning, model.SeverityInfo} {
		section := filterBySeverity(report.Conflicts, severity)
		if len(section) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s (%d)\n\n", severityHeading(severity), len(section))
		for _, c := range section {
			fmt.Fprintf(&b, "- **%s** — %s", c.Type, c.Description)
			if len(c.Locations) > 0 {
				fmt.Fprintf(&b, " (%s)", strings.Join(c.Locations, ", "))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\n\nGenerated by canon, scan %s\n", report.ScanID)
	}

	return b.String()
}

// RenderSummary prints severity counts and the worst findings to w.
func (r *Renderer) RenderSummary(report *model.Report, w io.Writer) {
	counts := report.CountBySeverity()
	fmt.Fprintf(w, "Scanned %d entries, %d reference targets\n", report.Entries, report.References)
	fmt.Fprintf(w, "Conflicts: %d error(s), %d warning(s), %d info\n",
		counts[model.SeverityError], counts[model.SeverityWarning], counts[model.SeverityInfo])

	for _, c := range report.Conflicts {
		if c.Severity != model.SeverityError {
			continue
		}
		fmt.Fprintf(w, "  ✗ %s: %s\n", c.Type, c.Description)
	}
}

func filterBySeverity(conflicts []model.Conflict, severity model.Severity) []model.Conflict {
	var out []model.Conflict
	for _, c := range conflicts {
		if c.Severity == severity {
			out = append(out, c)
		}
	}
	return out
}

func severityHeading(severity model.Severity) string {
	switch severity {
	case model.SeverityError:
		return "Errors"
	case model.SeverityWarning:
		return "Warnings"
	default:
		return "Info"
	}
}
