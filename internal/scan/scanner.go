// Package scan implements the integrity scanner: four independent checks
// over the entry store and its link graph. Findings are data, not errors:
// every check runs to completion and the full list is always returned; only
// I/O failure aborts a scan.
package scan

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lorehaven/canon/internal/extract"
	"github.com/lorehaven/canon/internal/graph"
	"github.com/lorehaven/canon/internal/model"
	"github.com/lorehaven/canon/internal/store"
)

// Scanner runs integrity checks over a store. Scanning is read-only and
// mutates nothing; two runs over an unchanged store yield identical
// conflict sets.
type Scanner struct {
	store *store.Store
}

// NewScanner creates a scanner for the given store.
func NewScanner(s *store.Store) *Scanner {
	return &Scanner{store: s}
}

// Scan loads every entry, rebuilds the link graph, and runs all four checks.
// Checks never short-circuit: each one runs even when earlier ones found
// nothing, and conflicts are never truncated.
func (s *Scanner) Scan() (*model.Report, error) {
	entries, err := s.store.ListAll()
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	g := graph.Build(entries)

	conflicts := make([]model.Conflict, 0)
	conflicts = append(conflicts, checkContradictions(entries)...)
	conflicts = append(conflicts, checkDuplicates(g)...)
	conflicts = append(conflicts, checkBrokenLinks(g)...)
	conflicts = append(conflicts, checkCompleteness(entries)...)

	return &model.Report{
		ScanID:     uuid.NewString(),
		StorePath:  s.store.Root(),
		ScannedAt:  time.Now().UTC(),
		Entries:    len(entries),
		References: len(g.Edges),
		Conflicts:  conflicts,
	}, nil
}

// checkContradictions flags every entry with status=contradicted, regardless
// of any other property or how the entry reached that state.
func checkContradictions(entries []*model.Entry) []model.Conflict {
	var conflicts []model.Conflict
	for _, e := range entries {
		if e.Status != model.StatusContradicted {
			continue
		}
		conflicts = append(conflicts, model.Conflict{
			Type:        model.ConflictContradiction,
			Severity:    model.SeverityError,
			Locations:   []string{e.Path},
			Subject:     e.Name,
			Description: fmt.Sprintf("%q is marked contradicted and needs resolution", e.Name),
		})
	}
	return conflicts
}

// checkDuplicates groups entries store-wide by display name; any name backed
// by more than one file yields a single conflict listing every location.
// Comparison is exact-match on the name string, no case folding or
// whitespace normalization (a known gap, kept deliberately).
func checkDuplicates(g *graph.Graph) []model.Conflict {
	names := make([]string, 0, len(g.Nodes))
	for name, paths := range g.Nodes {
		if len(paths) > 1 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var conflicts []model.Conflict
	for _, name := range names {
		paths := append([]string(nil), g.Nodes[name]...)
		sort.Strings(paths)
		conflicts = append(conflicts, model.Conflict{
			Type:        model.ConflictDuplicate,
			Severity:    model.SeverityError,
			Locations:   paths,
			Subject:     name,
			Description: fmt.Sprintf("%q is defined in %d files", name, len(paths)),
		})
	}
	return conflicts
}

// checkBrokenLinks reports each distinct reference target that resolves to
// no entry, once per missing target, however many bodies mention it.
// Fragment-qualified targets ([[Name#section]]) are assumed valid by
// convention and never flagged, even when the base name does not resolve.
func checkBrokenLinks(g *graph.Graph) []model.Conflict {
	targets := make([]string, 0, len(g.Edges))
	for target := range g.Edges {
		if extract.IsFragment(target) {
			continue
		}
		if !g.HasNode(target) {
			targets = append(targets, target)
		}
	}
	sort.Strings(targets)

	var conflicts []model.Conflict
	for _, target := range targets {
		conflicts = append(conflicts, model.Conflict{
			Type:        model.ConflictBrokenLink,
			Severity:    model.SeverityWarning,
			Subject:     target,
			Description: fmt.Sprintf("reference target %q has no entry", target),
		})
	}
	return conflicts
}

// checkCompleteness flags scaffolded-but-unfilled entries (orphan, info) and
// sources sections left empty or on their placeholder (missing-source,
// warning).
func checkCompleteness(entries []*model.Entry) []model.Conflict {
	var conflicts []model.Conflict
	for _, e := range entries {
		if markers := extract.UnfilledPlaceholders(e.Body); len(markers) > 0 {
			conflicts = append(conflicts, model.Conflict{
				Type:        model.ConflictOrphan,
				Severity:    model.SeverityInfo,
				Locations:   []string{e.Path},
				Subject:     e.Name,
				Description: fmt.Sprintf("%q still contains %d template placeholder(s)", e.Name, len(markers)),
			})
		}
		if extract.MissingSources(e.Body) {
			conflicts = append(conflicts, model.Conflict{
				Type:        model.ConflictMissingSource,
				Severity:    model.SeverityWarning,
				Locations:   []string{e.Path},
				Subject:     e.Name,
				Description: fmt.Sprintf("%q has a sources section with no sources", e.Name),
			})
		}
	}
	return conflicts
}
