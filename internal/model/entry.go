package model

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Entry represents a single canon record backed by one file in the store
type Entry struct {
	Name         string    `json:"name"`              // Display name, verbatim as authored
	Category     Category  `json:"category"`          // Derived from the directory, not frontmatter
	Status       Status    `json:"status"`            // Canon lifecycle status
	Summary      string    `json:"summary,omitempty"` // One-line summary shown in the category index
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Contributors []string  `json:"contributors,omitempty"` // Ordered, first = creator
	Body         string    `json:"-"`                      // Free text, may embed [[References]]
	Path         string    `json:"path,omitempty"`         // File path relative to the store root
}

// Category is the fixed set of canon entry kinds. The canonical form is the
// plural directory name.
type Category string

const (
	CategoryCharacters Category = "characters"
	CategoryLocations  Category = "locations"
	CategoryFactions   Category = "factions"
	CategoryEvents     Category = "events"
	CategoryRules      Category = "rules"
	CategoryCultures   Category = "cultures"
	CategoryArtifacts  Category = "artifacts"
	CategorySpecies    Category = "species"
)

// Categories lists every canon category in display order.
func Categories() []Category {
	return []Category{
		CategoryCharacters,
		CategoryLocations,
		CategoryFactions,
		CategoryEvents,
		CategoryRules,
		CategoryCultures,
		CategoryArtifacts,
		CategorySpecies,
	}
}

// categoryAliases maps accepted spellings (singular and plural, lowercased)
// to the canonical plural form.
var categoryAliases = map[string]Category{
	"character": CategoryCharacters,
	"location":  CategoryLocations,
	"faction":   CategoryFactions,
	"event":     CategoryEvents,
	"rule":      CategoryRules,
	"culture":   CategoryCultures,
	"artifact":  CategoryArtifacts,
	"species":   CategorySpecies,
}

func init() {
	for _, c := range Categories() {
		categoryAliases[string(c)] = c
	}
}

// ParseCategory normalizes user input (case-insensitive, singular or plural)
// to a canonical Category.
func ParseCategory(s string) (Category, error) {
	c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("unknown category %q (valid: %s)", s, strings.Join(categoryNames(), ", "))
	}
	return c, nil
}

func categoryNames() []string {
	names := make([]string, 0, len(Categories()))
	for _, c := range Categories() {
		names = append(names, string(c))
	}
	sort.Strings(names)
	return names
}

// Title returns the category name capitalized for headings.
func (c Category) Title() string {
	s := string(c)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Status is the five-value canon lifecycle tag
type Status string

const (
	StatusEstablished  Status = "established"
	StatusProposed     Status = "proposed"
	StatusDeprecated   Status = "deprecated"
	StatusContradicted Status = "contradicted"
	StatusSpeculative  Status = "speculative"
)

// DefaultStatus is assigned when an entry is created without an explicit status.
const DefaultStatus = StatusProposed

// statusSymbols maps each status to its fixed display symbol.
var statusSymbols = map[Status]string{
	StatusEstablished:  "✓",
	StatusProposed:     "?",
	StatusDeprecated:   "✗",
	StatusContradicted: "⚠",
	StatusSpeculative:  "~",
}

// ParseStatus validates a status string. Any of the five values can be set
// at creation or at explicit update time; there is no transition graph.
// Inconsistent states are surfaced by the integrity scanner instead.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := statusSymbols[st]; !ok {
		return "", fmt.Errorf("unknown status %q (valid: established, proposed, deprecated, contradicted, speculative)", s)
	}
	return st, nil
}

// Symbol returns the display symbol for the status.
func (s Status) Symbol() string {
	if sym, ok := statusSymbols[s]; ok {
		return sym
	}
	return "?"
}

// Slug converts a display name to its filesystem-safe address: lowercased,
// runs of non-alphanumerics collapsed to a single hyphen.
func Slug(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
