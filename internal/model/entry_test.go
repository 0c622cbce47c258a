package model

import "testing"

func TestParseCategory_Normalization(t *testing.T) {
	tests := []struct {
		input string
		want  Category
	}{
		{"character", CategoryCharacters},
		{"characters", CategoryCharacters},
		{"Character", CategoryCharacters},
		{"LOCATIONS", CategoryLocations},
		{" faction ", CategoryFactions},
		{"species", CategorySpecies}, // Same singular and plural
		{"rule", CategoryRules},
	}

	for _, tt := range tests {
		got, err := ParseCategory(tt.input)
		if err != nil {
			t.Errorf("ParseCategory(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseCategory_Unknown(t *testing.T) {
	if _, err := ParseCategory("spaceship"); err == nil {
		t.Error("Expected error for unknown category, got nil")
	}
	if _, err := ParseCategory(""); err == nil {
		t.Error("Expected error for empty category, got nil")
	}
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"established", "proposed", "deprecated", "contradicted", "speculative"} {
		if _, err := ParseStatus(valid); err != nil {
			t.Errorf("ParseStatus(%q): unexpected error: %v", valid, err)
		}
	}

	// Unrecognized values must be rejected before any write happens
	for _, invalid := range []string{"canon", "draft", "CONFIRMED?", ""} {
		if _, err := ParseStatus(invalid); err == nil {
			t.Errorf("ParseStatus(%q): expected error, got nil", invalid)
		}
	}
}

func TestStatusSymbols(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusEstablished, "✓"},
		{StatusProposed, "?"},
		{StatusDeprecated, "✗"},
		{StatusContradicted, "⚠"},
		{StatusSpeculative, "~"},
	}

	for _, tt := range tests {
		if got := tt.status.Symbol(); got != tt.want {
			t.Errorf("Symbol(%s) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Elena Voss", "elena-voss"},
		{"The Order", "the-order"},
		{"Oakhaven", "oakhaven"},
		{"St. Maren's Gate", "st-maren-s-gate"},
		{"  spaced  out  ", "spaced-out"},
		{"---", ""},
	}

	for _, tt := range tests {
		if got := Slug(tt.name); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestAuditActionForStatus(t *testing.T) {
	tests := []struct {
		from, to Status
		want     Action
	}{
		{StatusProposed, StatusEstablished, ActionEstablished},
		{StatusEstablished, StatusDeprecated, ActionDeprecated},
		{StatusContradicted, StatusProposed, ActionResolved},
		{StatusContradicted, StatusDeprecated, ActionDeprecated},
		{StatusProposed, StatusSpeculative, ActionUpdated},
		{StatusEstablished, StatusProposed, ActionUpdated}, // Free transitions, even backwards
	}

	for _, tt := range tests {
		if got := AuditActionForStatus(tt.from, tt.to); got != tt.want {
			t.Errorf("AuditActionForStatus(%s, %s) = %s, want %s", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestReportHasErrors(t *testing.T) {
	report := &Report{
		Conflicts: []Conflict{
			{Type: ConflictBrokenLink, Severity: SeverityWarning},
			{Type: ConflictOrphan, Severity: SeverityInfo},
		},
	}
	if report.HasErrors() {
		t.Error("Expected no errors for warning/info conflicts")
	}

	report.Conflicts = append(report.Conflicts, Conflict{Type: ConflictDuplicate, Severity: SeverityError})
	if !report.HasErrors() {
		t.Error("Expected HasErrors after adding an error-severity conflict")
	}

	counts := report.CountBySeverity()
	if counts[SeverityError] != 1 || counts[SeverityWarning] != 1 || counts[SeverityInfo] != 1 {
		t.Errorf("CountBySeverity = %v, want one of each", counts)
	}
}
