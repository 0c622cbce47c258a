package store

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lorehaven/canon/internal/extract"
	"github.com/lorehaven/canon/internal/model"
)

// dateLayout is the calendar-date format used in frontmatter. Timestamps on
// entries are informational only; no concurrency check reads them.
const dateLayout = "2006-01-02"

const frontmatterDelimiter = "---"

// frontmatter is the YAML header persisted at the top of every entry file.
// The category is not stored here; it is derived from the directory.
type frontmatter struct {
	Name         string   `yaml:"name"`
	Status       string   `yaml:"status"`
	Summary      string   `yaml:"summary,omitempty"`
	Created      string   `yaml:"created"`
	Updated      string   `yaml:"updated"`
	Contributors []string `yaml:"contributors,omitempty"`
}

// encodeEntry serializes an entry to its on-disk form: a YAML frontmatter
// block followed by the body verbatim.
func encodeEntry(e *model.Entry) ([]byte, error) {
	fm := frontmatter{
		Name:         e.Name,
		Status:       string(e.Status),
		Summary:      e.Summary,
		Created:      e.CreatedAt.Format(dateLayout),
		Updated:      e.UpdatedAt.Format(dateLayout),
		Contributors: e.Contributors,
	}

	header, err := yaml.Marshal(fm)
	if err != nil {
		return nil, fmt.Errorf("marshal frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString(frontmatterDelimiter)
	b.WriteString("\n")
	b.Write(header)
	b.WriteString(frontmatterDelimiter)
	b.WriteString("\n\n")
	b.WriteString(e.Body)
	if !strings.HasSuffix(e.Body, "\n") {
		b.WriteString("\n")
	}
	return []byte(b.String()), nil
}

// decodeEntry parses an entry file. Category and path are supplied by the
// caller since they come from the directory layout, not the file content.
func decodeEntry(data []byte, category model.Category, path string) (*model.Entry, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")

	rest, ok := strings.CutPrefix(text, frontmatterDelimiter+"\n")
	if !ok {
		return nil, fmt.Errorf("%s: missing frontmatter header", path)
	}

	header, body, ok := strings.Cut(rest, "\n"+frontmatterDelimiter+"\n")
	if !ok {
		return nil, fmt.Errorf("%s: unterminated frontmatter header", path)
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return nil, fmt.Errorf("%s: parse frontmatter: %w", path, err)
	}
	if fm.Name == "" {
		return nil, fmt.Errorf("%s: frontmatter has no name", path)
	}

	status, err := model.ParseStatus(fm.Status)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	created, err := parseDate(fm.Created, path)
	if err != nil {
		return nil, err
	}
	updated, err := parseDate(fm.Updated, path)
	if err != nil {
		return nil, err
	}

	return &model.Entry{
		Name:         fm.Name,
		Category:     category,
		Status:       status,
		Summary:      fm.Summary,
		CreatedAt:    created,
		UpdatedAt:    updated,
		Contributors: fm.Contributors,
		Body:         strings.TrimPrefix(body, "\n"),
		Path:         path,
	}, nil
}

func parseDate(s, path string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: parse date %q: %w", path, s, err)
	}
	return t, nil
}

// scaffoldBody returns the template body for a freshly created entry. The
// placeholder literals are the ones the integrity scanner's completeness
// check looks for.
func scaffoldBody(name string) string {
	return fmt.Sprintf(`# %s

%s

%s

## Sources

%s
`, name, extract.PlaceholderDescription, extract.PlaceholderDetails, extract.PlaceholderSources)
}
