package domain

import (
	"context"
	"slices"
	"sort"
	"strings"
	"time"
)

// Note is a titled piece of text, optionally filed in one folder and
// labelled with a set of tags.
// swagger:model Note
type Note struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	FolderID string `json:"folderId,omitempty"`
	// TagIDs is a set; order carries no meaning.
	TagIDs    []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoteWithTags is a note whose tag references are expanded to full tags.
// swagger:model NoteWithTags
type NoteWithTags struct {
	*Note
	Tags []*Tag `json:"tags"`
}

// NoteDraft is the input for creating a note. Empty FolderID means no folder.
type NoteDraft struct {
	Title    string
	Content  string
	FolderID string
	TagIDs   []string
}

// NotePatch lists the note fields to change. Unset fields are left alone.
// A set FolderID with an empty value clears the folder reference.
type NotePatch struct {
	Title    Optional[string]
	Content  Optional[string]
	FolderID Optional[string]
	TagIDs   Optional[[]string]
}

// Empty reports whether the patch changes nothing.
func (p NotePatch) Empty() bool {
	return !p.Title.Set && !p.Content.Set && !p.FolderID.Set && !p.TagIDs.Set
}

// Apply returns a copy of n with the patch applied. UpdatedAt is not touched.
func (p NotePatch) Apply(n Note) Note {
	if p.Title.Set {
		n.Title = p.Title.Value
	}
	if p.Content.Set {
		n.Content = p.Content.Value
	}
	if p.FolderID.Set {
		n.FolderID = p.FolderID.Value
	}
	if p.TagIDs.Set {
		n.TagIDs = append([]string{}, p.TagIDs.Value...)
	}
	return n
}

// NoteFilter narrows a note listing. Zero-valued fields do not filter.
type NoteFilter struct {
	// SearchTerm matches title or content, case-insensitively, as a substring.
	SearchTerm string
	FolderID   string
	// TagID matches notes whose tag set contains it.
	TagID string
	// Page limits the result when non-nil.
	Page *PaginationParams
}

// Matches reports whether n passes every filter that is set. Page is ignored.
func (f NoteFilter) Matches(n *Note) bool {
	if f.SearchTerm != "" {
		term := strings.ToLower(f.SearchTerm)
		if !strings.Contains(strings.ToLower(n.Title), term) && !strings.Contains(strings.ToLower(n.Content), term) {
			return false
		}
	}
	if f.FolderID != "" && n.FolderID != f.FolderID {
		return false
	}
	if f.TagID != "" && !slices.Contains(n.TagIDs, f.TagID) {
		return false
	}
	return true
}

// SortByRecency orders notes by UpdatedAt descending, ties broken by id.
func SortByRecency(notes []*Note) {
	sort.Slice(notes, func(i, j int) bool {
		if !notes[i].UpdatedAt.Equal(notes[j].UpdatedAt) {
			return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
		}
		return notes[i].ID < notes[j].ID
	})
}

// NoteRepository defines storage for notes.
type NoteRepository interface {
	// List returns the matching notes, most recently updated first.
	List(ctx context.Context, filter NoteFilter) ([]*Note, error)
	GetByID(ctx context.Context, id string) (*Note, error)
	Create(ctx context.Context, n *Note) error
	// Update applies patch and sets updated_at. Returns ErrNotFound for an unknown id.
	Update(ctx context.Context, id string, patch NotePatch, updatedAt time.Time) (*Note, error)
	// Delete removes the note. Returns ErrNotFound when nothing was removed.
	Delete(ctx context.Context, id string) error
	// PullTag removes tagID from every note's tag set and returns how many notes changed.
	PullTag(ctx context.Context, tagID string) (int64, error)
	// ClearFolder unsets the folder of every note filed in folderID and returns how many changed.
	ClearFolder(ctx context.Context, folderID string) (int64, error)
}

// NoteService defines the business logic for notes.
type NoteService interface {
	List(ctx context.Context, filter NoteFilter) ([]*Note, error)
	GetByID(ctx context.Context, id string) (*NoteWithTags, error)
	Create(ctx context.Context, draft NoteDraft) (*Note, error)
	Update(ctx context.Context, id string, patch NotePatch) (*Note, error)
	// Delete is idempotent: a missing note is not an error.
	Delete(ctx context.Context, id string) error
}

// IntegrityCoordinator repairs notes after a folder or tag they reference is deleted.
type IntegrityCoordinator interface {
	TagDeleted(ctx context.Context, tagID string) error
	FolderDeleted(ctx context.Context, folderID string) error
}
