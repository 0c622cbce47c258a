package extract

import "strings"

// Placeholder phrases written into scaffolded entry bodies. The completeness
// check looks for these exact literals; the store's template and this list
// must stay in sync.
const (
	PlaceholderDescription = "*Describe this entry here.*"
	PlaceholderDetails     = "*Add notable details, history, and relationships.*"
	PlaceholderSources     = "*No sources documented yet.*"
)

// sourcesHeading marks the start of the sources section in an entry body.
const sourcesHeading = "## Sources"

// bodyPlaceholders are the markers that flag an entry as scaffolded but
// never completed. The sources placeholder is handled by MissingSources
// instead, so it is not in this set.
var bodyPlaceholders = []string{
	PlaceholderDescription,
	PlaceholderDetails,
}

// UnfilledPlaceholders returns the template placeholder phrases still
// present in a body, in template order. Empty result means the body was
// filled in (or never scaffolded from the template at all).
func UnfilledPlaceholders(body string) []string {
	var found []string
	for _, marker := range bodyPlaceholders {
		if strings.Contains(body, marker) {
			found = append(found, marker)
		}
	}
	return found
}

// MissingSources reports whether a body has a sources section that is empty
// or still contains its placeholder text. Bodies without a sources section
// are not flagged.
func MissingSources(body string) bool {
	idx := strings.Index(body, sourcesHeading)
	if idx < 0 {
		return false
	}
	section := body[idx+len(sourcesHeading):]

	// The section runs until the next heading, if any
	if next := strings.Index(section, "\n#"); next >= 0 {
		section = section[:next]
	}

	section = strings.TrimSpace(section)
	return section == "" || strings.Contains(section, PlaceholderSources)
}
