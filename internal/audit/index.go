package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lorehaven/canon/internal/model"
)

const indexFile = "_index.md"

// sentinelRow is present while a category has no entries and is replaced by
// the first real row.
const sentinelRow = "| _No entries yet._ |  |  |"

// Row is one denormalized index line: a link to the entry, its status
// symbol, and a one-line summary.
type Row struct {
	Name    string // Display name
	Link    string // File name relative to the category directory
	Symbol  string // Status display symbol
	Summary string
}

func (r Row) render() string {
	return fmt.Sprintf("| [%s](%s) | %s | %s |", r.Name, r.Link, r.Symbol, r.Summary)
}

// Index maintains the per-category summary tables. An index is a view of
// the store, not a source of truth.
type Index struct {
	root string
}

// NewIndex creates an index manager bound to the given store root.
func NewIndex(root string) *Index {
	return &Index{root: root}
}

// Path returns the index file location for a category.
func (ix *Index) Path(category model.Category) string {
	return filepath.Join(ix.root, string(category), indexFile)
}

// Init writes an empty index with the sentinel row if none exists yet.
func (ix *Index) Init(category model.Category) error {
	path := ix.Path(category)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create category dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(emptyIndex(category)), 0644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

func emptyIndex(category model.Category) string {
	return fmt.Sprintf(`# %s

| Entry | Status | Summary |
| --- | --- | --- |
%s
`, category.Title(), sentinelRow)
}

// Patch upserts one row: the sentinel is replaced on first insertion, an
// existing row for the same entry is rewritten in place, and otherwise the
// row is appended to the table.
func (ix *Index) Patch(category model.Category, row Row) error {
	if err := ix.Init(category); err != nil {
		return err
	}

	path := ix.Path(category)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read index: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	marker := "](" + row.Link + ")"
	placed := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == sentinelRow || strings.Contains(trimmed, marker) {
			lines[i] = row.render()
			placed = true
			break
		}
	}
	if !placed {
		lines = append(lines, row.render())
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// Rebuild regenerates a category index from the store's entries, replacing
// whatever the file contained. Entries must all belong to the category.
func (ix *Index) Rebuild(category model.Category, entries []*model.Entry) error {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("# %s\n\n", category.Title()))
	b.WriteString("| Entry | Status | Summary |\n")
	b.WriteString("| --- | --- | --- |\n")

	if len(entries) == 0 {
		b.WriteString(sentinelRow + "\n")
	}
	for _, e := range entries {
		row := Row{
			Name:    e.Name,
			Link:    filepath.Base(e.Path),
			Symbol:  e.Status.Symbol(),
			Summary: e.Summary,
		}
		b.WriteString(row.render() + "\n")
	}

	path := ix.Path(category)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create category dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}
