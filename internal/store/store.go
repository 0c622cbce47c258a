// Package store is the file-backed entry store. Every entry is one markdown
// file with a YAML frontmatter header, addressed by (category, slug).
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/lorehaven/canon/internal/audit"
	"github.com/lorehaven/canon/internal/cache"
	"github.com/lorehaven/canon/internal/model"
)

// ErrAlreadyExists is returned by Create when an entry with the same
// (category, slug) address is already present. The check is per-category
// only: the same name under a different category is allowed here and caught
// later by the integrity scanner as a duplicate conflict.
var ErrAlreadyExists = errors.New("entry already exists")

// ErrNotFound is returned when no entry exists at the requested address.
var ErrNotFound = errors.New("entry not found")

// Store persists canon entries under a root directory, one subdirectory per
// category. A Create performs three writes (entry file, changelog record,
// index row) with no transactional grouping; an interrupt in between leaves
// the derived views stale, and the entry file wins on divergence.
type Store struct {
	root      string
	cache     cache.Cache
	cacheTTL  time.Duration
	changelog *audit.Changelog
	index     *audit.Index
	now       func() time.Time
}

// NewStore creates a store rooted at the given directory. A nil entryCache
// disables caching.
func NewStore(root string, entryCache cache.Cache, cacheTTL time.Duration) *Store {
	if entryCache == nil {
		entryCache = cache.Nop{}
	}
	return &Store{
		root:      root,
		cache:     entryCache,
		cacheTTL:  cacheTTL,
		changelog: audit.NewChangelog(root),
		index:     audit.NewIndex(root),
		now:       time.Now,
	}
}

// Root returns the store root directory.
func (s *Store) Root() string {
	return s.root
}

// Init scaffolds the store: one directory and sentinel index per category,
// plus the changelog anchor file.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return fmt.Errorf("create store root: %w", err)
	}
	for _, c := range model.Categories() {
		if err := s.index.Init(c); err != nil {
			return err
		}
	}
	return s.changelog.Init()
}

// Create persists a new entry. The category is normalized (case-insensitive,
// singular or plural), the status must be one of the five canonical values
// (empty defaults to proposed), and the display name is preserved verbatim
// while its slug addresses the file. On success one Created changelog record
// is appended and the category index is patched.
func (s *Store) Create(category, name, status, contributor, summary string) (*model.Entry, error) {
	cat, err := model.ParseCategory(category)
	if err != nil {
		return nil, err
	}

	st := model.DefaultStatus
	if status != "" {
		if st, err = model.ParseStatus(status); err != nil {
			return nil, err
		}
	}

	slug := model.Slug(name)
	if slug == "" {
		return nil, fmt.Errorf("name %q produces an empty slug", name)
	}

	path := s.entryPath(cat, slug)
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("%s/%s: %w", cat, slug, ErrAlreadyExists)
	}

	now := s.now().UTC()
	entry := &model.Entry{
		Name:         name,
		Category:     cat,
		Status:       st,
		Summary:      summary,
		CreatedAt:    now,
		UpdatedAt:    now,
		Contributors: []string{contributor},
		Body:         scaffoldBody(name),
		Path:         s.relPath(path),
	}

	if err := s.writeEntry(entry, path); err != nil {
		return nil, err
	}

	rec := model.AuditRecord{
		Date:        now,
		Action:      model.ActionCreated,
		Description: fmt.Sprintf("%s/%s — %q", cat, slug, name),
		Contributor: contributor,
	}
	if err := s.changelog.Append(rec); err != nil {
		return nil, err
	}

	if err := s.patchIndex(entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// Get loads one entry by category and slug.
func (s *Store) Get(category, slug string) (*model.Entry, error) {
	cat, err := model.ParseCategory(category)
	if err != nil {
		return nil, err
	}

	path := s.entryPath(cat, slug)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s/%s: %w", cat, slug, ErrNotFound)
		}
		return nil, fmt.Errorf("stat entry: %w", err)
	}

	return s.readEntry(path, cat, info.ModTime())
}

// List loads every entry in one category, sorted by slug.
func (s *Store) List(category string) ([]*model.Entry, error) {
	cat, err := model.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	return s.listCategory(cat)
}

// ListAll loads every entry in the store, sorted by path. Missing category
// directories are treated as empty, not as errors.
func (s *Store) ListAll() ([]*model.Entry, error) {
	var all []*model.Entry
	for _, cat := range model.Categories() {
		entries, err := s.listCategory(cat)
		if err != nil {
			return nil, err
		}
		all = append(all, entries...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Path < all[j].Path })
	return all, nil
}

// SetStatus applies a status change. Any of the five values may be set at
// any time, there is no transition graph; the scanner is the only guard
// against inconsistent states. The matching changelog action is appended
// and the index row's symbol refreshed.
func (s *Store) SetStatus(category, slug, status, contributor string) (*model.Entry, error) {
	st, err := model.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	entry, err := s.Get(category, slug)
	if err != nil {
		return nil, err
	}

	from := entry.Status
	entry.Status = st
	entry.UpdatedAt = s.now().UTC()
	entry.Contributors = appendContributor(entry.Contributors, contributor)

	path := filepath.Join(s.root, entry.Path)
	if err := s.writeEntry(entry, path); err != nil {
		return nil, err
	}

	rec := model.AuditRecord{
		Date:        entry.UpdatedAt,
		Action:      model.AuditActionForStatus(from, st),
		Description: fmt.Sprintf("%s/%s — %s → %s", entry.Category, slug, from, st),
		Contributor: contributor,
	}
	if err := s.changelog.Append(rec); err != nil {
		return nil, err
	}

	if err := s.patchIndex(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// UpdateBody replaces an entry's body, bumps the updated date, and records
// the contributor and an Updated changelog record.
func (s *Store) UpdateBody(category, slug, body, contributor string) (*model.Entry, error) {
	entry, err := s.Get(category, slug)
	if err != nil {
		return nil, err
	}

	entry.Body = body
	entry.UpdatedAt = s.now().UTC()
	entry.Contributors = appendContributor(entry.Contributors, contributor)

	path := filepath.Join(s.root, entry.Path)
	if err := s.writeEntry(entry, path); err != nil {
		return nil, err
	}

	rec := model.AuditRecord{
		Date:        entry.UpdatedAt,
		Action:      model.ActionUpdated,
		Description: fmt.Sprintf("%s/%s — body edited", entry.Category, slug),
		Contributor: contributor,
	}
	if err := s.changelog.Append(rec); err != nil {
		return nil, err
	}
	return entry, nil
}

// SetSummary replaces an entry's one-line summary and refreshes its index
// row. Summaries are index metadata, not canon content, so no changelog
// record is appended.
func (s *Store) SetSummary(category, slug, summary string) (*model.Entry, error) {
	entry, err := s.Get(category, slug)
	if err != nil {
		return nil, err
	}

	entry.Summary = summary
	path := filepath.Join(s.root, entry.Path)
	if err := s.writeEntry(entry, path); err != nil {
		return nil, err
	}
	if err := s.patchIndex(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// RebuildIndexes regenerates every category index from store state.
func (s *Store) RebuildIndexes() error {
	for _, cat := range model.Categories() {
		entries, err := s.listCategory(cat)
		if err != nil {
			return err
		}
		if err := s.index.Rebuild(cat, entries); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) listCategory(cat model.Category) ([]*model.Entry, error) {
	dir := filepath.Join(s.root, string(cat))
	dirents, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read category dir: %w", err)
	}

	var entries []*model.Entry
	for _, de := range dirents {
		name := de.Name()
		if de.IsDir() || !strings.HasSuffix(name, ".md") || name == "_index.md" {
			continue
		}
		info, err := de.Info()
		if err != nil {
			return nil, fmt.Errorf("stat entry: %w", err)
		}
		entry, err := s.readEntry(filepath.Join(dir, name), cat, info.ModTime())
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}

func (s *Store) readEntry(path string, cat model.Category, modTime time.Time) (*model.Entry, error) {
	key := cache.Key(path, modTime)
	if entry, ok := s.cache.Get(key); ok {
		return entry, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read entry: %w", err)
	}

	entry, err := decodeEntry(data, cat, s.relPath(path))
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(key, entry, s.cacheTTL)
	return entry, nil
}

func (s *Store) writeEntry(entry *model.Entry, path string) error {
	data, err := encodeEntry(entry)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create category dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write entry: %w", err)
	}
	return nil
}

func (s *Store) patchIndex(entry *model.Entry) error {
	return s.index.Patch(entry.Category, audit.Row{
		Name:    entry.Name,
		Link:    filepath.Base(entry.Path),
		Symbol:  entry.Status.Symbol(),
		Summary: entry.Summary,
	})
}

func (s *Store) entryPath(cat model.Category, slug string) string {
	return filepath.Join(s.root, string(cat), slug+".md")
}

func (s *Store) relPath(path string) string {
	if rel, err := filepath.Rel(s.root, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(path)
}

func appendContributor(contributors []string, contributor string) []string {
	for _, c := range contributors {
		if c == contributor {
			return contributors
		}
	}
	return append(contributors, contributor)
}
