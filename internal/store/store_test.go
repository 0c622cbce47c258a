package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lorehaven/canon/internal/cache"
	"github.com/lorehaven/canon/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(t.TempDir(), nil, 0)
	if err := s.Init(); err != nil {
		t.Fatalf("init store: %v", err)
	}
	return s
}

func TestCreate_PersistsEntry(t *testing.T) {
	s := newTestStore(t)

	entry, err := s.Create("character", "Elena Voss", "", "mira", "Exiled cartographer.")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if entry.Status != model.DefaultStatus {
		t.Errorf("Status = %q, want default %q", entry.Status, model.DefaultStatus)
	}
	if entry.Name != "Elena Voss" {
		t.Errorf("Display name not preserved verbatim: %q", entry.Name)
	}
	if entry.Path != "characters/elena-voss.md" {
		t.Errorf("Path = %q, want characters/elena-voss.md", entry.Path)
	}
	if len(entry.Contributors) != 1 || entry.Contributors[0] != "mira" {
		t.Errorf("Contributors = %v, want [mira]", entry.Contributors)
	}

	got, err := s.Get("characters", "elena-voss")
	if err != nil {
		t.Fatalf("Get after Create: %v", err)
	}
	if got.Name != "Elena Voss" || got.Summary != "Exiled cartographer." {
		t.Errorf("Reloaded entry differs: %+v", got)
	}
}

func TestCreate_RejectsBadInputsBeforeWriting(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Create("spaceship", "X", "", "mira", ""); err == nil {
		t.Error("Expected error for unknown category")
	}
	if _, err := s.Create("character", "X", "confirmed", "mira", ""); err == nil {
		t.Error("Expected error for unknown status")
	}
	if _, err := s.Create("character", "***", "", "mira", ""); err == nil {
		t.Error("Expected error for name with empty slug")
	}

	// None of the rejected calls may have left an entry behind
	entries, err := s.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty store after rejected creates, got %d entries", len(entries))
	}
}

func TestCreate_PerCategoryUniqueness(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Create("character", "Elena", "", "mira", ""); err != nil {
		t.Fatalf("first create: %v", err)
	}

	// Same category: rejected at write time
	_, err := s.Create("character", "Elena", "", "theo", "")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("Expected ErrAlreadyExists, got %v", err)
	}

	// Different category: allowed here; the scanner reports the collision
	if _, err := s.Create("location", "Elena", "", "theo", ""); err != nil {
		t.Errorf("Cross-category create must succeed, got %v", err)
	}
}

func TestCreate_AppendsChangelogAndPatchesIndex(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Create("location", "Oakhaven", "established", "mira", "Fishing town."); err != nil {
		t.Fatalf("create: %v", err)
	}

	clog, err := os.ReadFile(filepath.Join(s.Root(), "CHANGELOG.md"))
	if err != nil {
		t.Fatalf("read changelog: %v", err)
	}
	if !strings.Contains(string(clog), `- Created: locations/oakhaven — "Oakhaven" (mira)`) {
		t.Errorf("Changelog missing Created record:\n%s", clog)
	}
	if !strings.Contains(string(clog), "## "+time.Now().UTC().Format("2006-01-02")) {
		t.Errorf("Changelog missing date heading:\n%s", clog)
	}

	index, err := os.ReadFile(filepath.Join(s.Root(), "locations", "_index.md"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if strings.Contains(string(index), "_No entries yet._") {
		t.Errorf("Sentinel row not replaced:\n%s", index)
	}
	if !strings.Contains(string(index), "| [Oakhaven](oakhaven.md) | ✓ | Fishing town. |") {
		t.Errorf("Index missing entry row:\n%s", index)
	}
}

func TestGet_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get("character", "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestListAndListAll(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"Elena Voss", "Brennan Oak"} {
		if _, err := s.Create("character", name, "", "mira", ""); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
	if _, err := s.Create("location", "Oakhaven", "", "mira", ""); err != nil {
		t.Fatalf("create Oakhaven: %v", err)
	}

	characters, err := s.List("characters")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(characters) != 2 {
		t.Errorf("Expected 2 characters, got %d", len(characters))
	}
	// Sorted by slug: brennan-oak before elena-voss
	if characters[0].Name != "Brennan Oak" {
		t.Errorf("Expected sorted order, got %q first", characters[0].Name)
	}

	all, err := s.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 entries store-wide, got %d", len(all))
	}
}

func TestSetStatus_FreeTransitionsAndAudit(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Create("rule", "Magic Decay", "established", "mira", ""); err != nil {
		t.Fatalf("create: %v", err)
	}

	// established → contradicted is allowed; no transition graph exists
	entry, err := s.SetStatus("rule", "magic-decay", "contradicted", "theo")
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if entry.Status != model.StatusContradicted {
		t.Errorf("Status = %q, want contradicted", entry.Status)
	}
	if len(entry.Contributors) != 2 || entry.Contributors[1] != "theo" {
		t.Errorf("Contributors = %v, want mira then theo", entry.Contributors)
	}

	// And back out again, recorded as Resolved
	if _, err := s.SetStatus("rule", "magic-decay", "proposed", "theo"); err != nil {
		t.Fatalf("SetStatus back: %v", err)
	}

	clog, err := os.ReadFile(filepath.Join(s.Root(), "CHANGELOG.md"))
	if err != nil {
		t.Fatalf("read changelog: %v", err)
	}
	for _, want := range []string{
		"- Created: rules/magic-decay",
		"- Updated: rules/magic-decay — established → contradicted (theo)",
		"- Resolved: rules/magic-decay — contradicted → proposed (theo)",
	} {
		if !strings.Contains(string(clog), want) {
			t.Errorf("Changelog missing %q:\n%s", want, clog)
		}
	}

	// Index symbol follows the latest status
	index, err := os.ReadFile(filepath.Join(s.Root(), "rules", "_index.md"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if !strings.Contains(string(index), "| ? |") {
		t.Errorf("Index symbol not refreshed:\n%s", index)
	}
	if strings.Count(string(index), "magic-decay.md") != 1 {
		t.Errorf("Index row duplicated on status change:\n%s", index)
	}
}

func TestUpdateBody(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Create("character", "Elena Voss", "", "mira", ""); err != nil {
		t.Fatalf("create: %v", err)
	}

	body := "# Elena Voss\n\nFled to [[Oakhaven]].\n\n## Sources\n\n- Chronicle, ch. 4\n"
	entry, err := s.UpdateBody("character", "elena-voss", body, "theo")
	if err != nil {
		t.Fatalf("UpdateBody: %v", err)
	}
	if entry.Body != body {
		t.Errorf("Body not replaced: %q", entry.Body)
	}

	got, err := s.Get("character", "elena-voss")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Body != body {
		t.Errorf("Persisted body differs: %q", got.Body)
	}
}

func TestSetSummary_RefreshesIndexRow(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Create("faction", "The Order", "", "mira", ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.SetSummary("faction", "the-order", "Monastic order, now scattered."); err != nil {
		t.Fatalf("SetSummary: %v", err)
	}

	index, err := os.ReadFile(filepath.Join(s.Root(), "factions", "_index.md"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if !strings.Contains(string(index), "Monastic order, now scattered.") {
		t.Errorf("Index summary not refreshed:\n%s", index)
	}
}

func TestStore_CachedReadsSurviveRewrite(t *testing.T) {
	s := NewStore(t.TempDir(), cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	if _, err := s.Create("character", "Elena Voss", "", "mira", ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Get("character", "elena-voss"); err != nil {
		t.Fatalf("first get: %v", err)
	}

	// A write changes the file's mtime, so the cache key rolls over and the
	// next read sees the new status rather than the cached parse.
	if _, err := s.SetStatus("character", "elena-voss", "established", "mira"); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	got, err := s.Get("character", "elena-voss")
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if got.Status != model.StatusEstablished {
		t.Errorf("Cached stale status served: %q", got.Status)
	}
}
