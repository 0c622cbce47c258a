// Package audit maintains the store's derived views: the append-only
// changelog and the per-category indexes. Both are projections of the entry
// store; when they diverge, the store wins.
package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lorehaven/canon/internal/model"
)

// anchor is the fixed first line of the changelog. New date headings are
// inserted immediately after it, so the newest date sits on top.
const anchor = "# Changelog"

const changelogFile = "CHANGELOG.md"

// Changelog is the append-only audit trail. Records are only ever inserted,
// never rewritten or removed.
type Changelog struct {
	path string
}

// NewChangelog creates a changelog bound to the given store root.
func NewChangelog(root string) *Changelog {
	return &Changelog{path: filepath.Join(root, changelogFile)}
}

// Path returns the changelog file location.
func (c *Changelog) Path() string {
	return c.path
}

// Init writes the anchor file if it does not exist yet.
func (c *Changelog) Init() error {
	if _, err := os.Stat(c.path); err == nil {
		return nil
	}
	if err := os.WriteFile(c.path, []byte(anchor+"\n"), 0644); err != nil {
		return fmt.Errorf("write changelog: %w", err)
	}
	return nil
}

// Append inserts one record. Records sharing a calendar date are grouped
// under a single date heading; a new heading is created right after the
// anchor line when the date has no heading yet.
func (c *Changelog) Append(rec model.AuditRecord) error {
	if err := c.Init(); err != nil {
		return err
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("read changelog: %w", err)
	}

	heading := "## " + rec.Date.Format("2006-01-02")
	bullet := fmt.Sprintf("- %s: %s (%s)", rec.Action, rec.Description, rec.Contributor)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	out := insertRecord(lines, heading, bullet)

	if err := os.WriteFile(c.path, []byte(strings.Join(out, "\n")+"\n"), 0644); err != nil {
		return fmt.Errorf("write changelog: %w", err)
	}
	return nil
}

// insertRecord places the bullet under its date heading, creating the
// heading after the anchor line if needed. Existing lines are never touched.
func insertRecord(lines []string, heading, bullet string) []string {
	for i, line := range lines {
		if strings.TrimSpace(line) != heading {
			continue
		}
		// Skip the blank line that follows the heading, then insert the
		// bullet ahead of any existing ones.
		at := i + 1
		if at < len(lines) && strings.TrimSpace(lines[at]) == "" {
			at++
		}
		return splice(lines, at, bullet)
	}

	// No heading for this date yet: open a new block under the anchor.
	for i, line := range lines {
		if strings.TrimSpace(line) != anchor {
			continue
		}
		return splice(lines, i+1, "", heading, "", bullet)
	}

	// Anchor missing (hand-edited file): append a full block at the end.
	return append(lines, "", heading, "", bullet)
}

func splice(lines []string, at int, insert ...string) []string {
	out := make([]string, 0, len(lines)+len(insert))
	out = append(out, lines[:at]...)
	out = append(out, insert...)
	out = append(out, lines[at:]...)
	return out
}
