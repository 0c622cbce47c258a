// Package graph builds the in-memory link graph over canon entries. The
// graph exists only for the duration of an integrity scan; it is rebuilt
// from the store on every run and never persisted.
package graph

import (
	"github.com/lorehaven/canon/internal/extract"
	"github.com/lorehaven/canon/internal/model"
)

// Graph holds every entry name in the store and every reference target
// aggregated store-wide.
type Graph struct {
	// Nodes maps an entry name to the file paths backing it. More than one
	// path under the same name is the duplicate signal.
	Nodes map[string][]string

	// Edges is the set of distinct reference targets across all bodies.
	// Source attribution is not tracked; a broken link is reported once per
	// missing target, not once per occurrence.
	Edges map[string]struct{}
}

// Build constructs the graph from the given entries.
func Build(entries []*model.Entry) *Graph {
	g := &Graph{
		Nodes: make(map[string][]string, len(entries)),
		Edges: make(map[string]struct{}),
	}

	for _, e := range entries {
		g.Nodes[e.Name] = append(g.Nodes[e.Name], e.Path)
		for _, target := range extract.References(e.Body) {
			g.Edges[target] = struct{}{}
		}
	}

	return g
}

// HasNode reports whether an entry with the exact given name exists.
// Comparison is exact-match: no case folding or whitespace normalization
// is applied (a known gap, kept to match observed behavior).
func (g *Graph) HasNode(name string) bool {
	_, ok := g.Nodes[name]
	return ok
}
