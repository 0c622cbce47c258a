package model

import "time"

// Conflict is a single finding produced by the integrity scanner.
// Conflicts are data, not errors: the scanner enumerates all of them and
// never aborts because one was found.
type Conflict struct {
	Type        ConflictType `json:"type"`
	Severity    Severity     `json:"severity"`
	Locations   []string     `json:"locations,omitempty"` // Implicated file paths (store-relative)
	Subject     string       `json:"subject"`             // Entry name or reference target
	Description string       `json:"description"`
}

// ConflictType classifies a scanner finding
type ConflictType string

const (
	ConflictContradiction ConflictType = "contradiction" // Entry carries status=contradicted
	ConflictBrokenLink    ConflictType = "broken-link"   // Reference target resolves to no entry
	ConflictDuplicate     ConflictType = "duplicate"     // Same name backed by more than one file
	ConflictMissingSource ConflictType = "missing-source" // Sources section empty or placeholder
	ConflictOrphan        ConflictType = "orphan"        // Scaffolded entry never filled in
)

// Severity indicates how a consumer should weigh a conflict
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Report is the complete result of one integrity scan run.
type Report struct {
	ScanID     string     `json:"scan_id"`    // Unique per run
	StorePath  string     `json:"store_path"` // Root that was scanned
	ScannedAt  time.Time  `json:"scanned_at"`
	Entries    int        `json:"entries"`    // Entries loaded
	References int        `json:"references"` // Distinct reference targets store-wide
	Conflicts  []Conflict `json:"conflicts"`
}

// CountBySeverity tallies conflicts per severity level.
func (r *Report) CountBySeverity() map[Severity]int {
	counts := make(map[Severity]int)
	for _, c := range r.Conflicts {
		counts[c.Severity]++
	}
	return counts
}

// HasErrors reports whether any error-severity conflict is present. A CLI
// wrapping the scanner treats this as its failure signal.
func (r *Report) HasErrors() bool {
	for _, c := range r.Conflicts {
		if c.Severity == SeverityError {
			return true
		}
	}
	return false
}
