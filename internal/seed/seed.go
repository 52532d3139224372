// Package seed loads a dataset of folders, tags and notes into a store.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gopkg.in/yaml.v3"

	"noteful/internal/domain"
)

//go:embed data.yaml
var defaultData []byte

// Named is a folder or tag record.
type Named struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Note is a note record. Ids are given so notes can reference seeded folders and tags.
type Note struct {
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	Content  string   `yaml:"content"`
	FolderID string   `yaml:"folderId"`
	Tags     []string `yaml:"tags"`
}

// Dataset is the content of a seed file.
type Dataset struct {
	Folders []Named `yaml:"folders"`
	Tags    []Named `yaml:"tags"`
	Notes   []Note  `yaml:"notes"`
}

// Default returns the built-in dataset.
func Default() (*Dataset, error) {
	return Load(bytes.NewReader(defaultData))
}

// Load decodes and validates a YAML dataset. Unknown keys are rejected.
func Load(r io.Reader) (*Dataset, error) {
	var d Dataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode seed data: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks that every id is a well-formed reference used once, that
// names are present and unique per kind, and that notes have titles and list
// each tag at most once.
func (d *Dataset) Validate() error {
	ids := map[string]bool{}
	checkID := func(kind, id string) error {
		if !domain.IsValidReference(id) {
			return fmt.Errorf("%s id %q is not valid", kind, id)
		}
		if ids[id] {
			return fmt.Errorf("%s id %q is used twice", kind, id)
		}
		ids[id] = true
		return nil
	}
	checkNamed := func(kind string, records []Named) error {
		names := map[string]bool{}
		for _, r := range records {
			if err := checkID(kind, r.ID); err != nil {
				return err
			}
			if r.Name == "" {
				return fmt.Errorf("%s %s has no name", kind, r.ID)
			}
			if names[r.Name] {
				return fmt.Errorf("%s name %q is used twice", kind, r.Name)
			}
			names[r.Name] = true
		}
		return nil
	}
	if err := checkNamed("folder", d.Folders); err != nil {
		return err
	}
	if err := checkNamed("tag", d.Tags); err != nil {
		return err
	}
	for _, n := range d.Notes {
		if err := checkID("note", n.ID); err != nil {
			return err
		}
		if n.Title == "" {
			return fmt.Errorf("note %s has no title", n.ID)
		}
		if n.FolderID != "" && !domain.IsValidReference(n.FolderID) {
			return fmt.Errorf("note %s: folderId %q is not valid", n.ID, n.FolderID)
		}
		tags := map[string]bool{}
		for _, t := range n.Tags {
			if !domain.IsValidReference(t) {
				return fmt.Errorf("note %s: tag %q is not valid", n.ID, t)
			}
			if tags[t] {
				return fmt.Errorf("note %s: tag %q is listed twice", n.ID, t)
			}
			tags[t] = true
		}
	}
	return nil
}

// Repositories are the stores a Seeder writes to.
type Repositories struct {
	Folders domain.FolderRepository
	Tags    domain.TagRepository
	Notes   domain.NoteRepository
}

// Counts reports how many records were inserted.
type Counts struct {
	Folders int
	Tags    int
	Notes   int
}

// Seeder writes datasets through the repositories.
type Seeder struct {
	repos  Repositories
	logger *slog.Logger
	now    func() time.Time
}

// NewSeeder returns a Seeder writing to repos and logging a summary to logger.
func NewSeeder(repos Repositories, logger *slog.Logger) *Seeder {
	return &Seeder{repos: repos, logger: logger, now: func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }}
}

// Seed calls reset, if given, then inserts d. Notes get updatedAt one second
// apart in file order, newest first, so listings come back in file order.
func (s *Seeder) Seed(ctx context.Context, d *Dataset, reset func(context.Context) error) (Counts, error) {
	var c Counts
	if reset != nil {
		if err := reset(ctx); err != nil {
			return c, fmt.Errorf("reset store: %w", err)
		}
	}
	now := s.now()
	for _, f := range d.Folders {
		if err := s.repos.Folders.Create(ctx, domain.NewFolder(f.ID, f.Name, now, now)); err != nil {
			return c, fmt.Errorf("insert folder %q: %w", f.Name, err)
		}
		c.Folders++
	}
	for _, t := range d.Tags {
		if err := s.repos.Tags.Create(ctx, domain.NewTag(t.ID, t.Name, now, now)); err != nil {
			return c, fmt.Errorf("insert tag %q: %w", t.Name, err)
		}
		c.Tags++
	}
	for i, n := range d.Notes {
		at := now.Add(-time.Duration(i) * time.Second)
		tags := n.Tags
		if tags == nil {
			tags = []string{}
		}
		note := &domain.Note{
			ID:        n.ID,
			Title:     n.Title,
			Content:   n.Content,
			FolderID:  n.FolderID,
			TagIDs:    tags,
			CreatedAt: at,
			UpdatedAt: at,
		}
		if err := s.repos.Notes.Create(ctx, note); err != nil {
			return c, fmt.Errorf("insert note %q: %w", n.Title, err)
		}
		c.Notes++
	}
	s.logger.InfoContext(ctx, "seeded store", "folders", c.Folders, "tags", c.Tags, "notes", c.Notes)
	return c, nil
}
