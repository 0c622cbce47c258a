package extract

import "strings"

// References extracts reference targets from an entry body. A reference is
// written [[Target Name]] or [[Target Name|Display Text]]; the display alias
// is discarded. Targets are deduplicated per document and returned in order
// of first appearance. Fragment-qualified targets like [[Ghost#appearances]]
// are returned verbatim; the scanner decides what to do with them.
//
// Pure function: no I/O, no resolution against the store.
func References(body string) []string {
	var targets []string
	seen := make(map[string]struct{})

	rest := body
	for {
		start := strings.Index(rest, "[[")
		if start < 0 {
			break
		}
		rest = rest[start+2:]

		end := strings.Index(rest, "]]")
		if end < 0 {
			break
		}
		inner := rest[:end]
		rest = rest[end+2:]

		// Discard the display alias
		if pipe := strings.Index(inner, "|"); pipe >= 0 {
			inner = inner[:pipe]
		}

		target := strings.TrimSpace(inner)
		if target == "" {
			continue
		}
		if _, ok := seen[target]; ok {
			continue
		}
		seen[target] = struct{}{}
		targets = append(targets, target)
	}

	return targets
}

// IsFragment reports whether a reference target points at a subsection
// (carries a #fragment). Fragment references are assumed valid by convention
// and are exempt from broken-link checking.
func IsFragment(target string) bool {
	return strings.Contains(target, "#")
}

// BaseName strips any #fragment suffix from a reference target.
func BaseName(target string) string {
	if i := strings.Index(target, "#"); i >= 0 {
		return strings.TrimSpace(target[:i])
	}
	return target
}
