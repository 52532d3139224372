package memory

import (
	"context"
	"slices"
	"time"

	"noteful/internal/domain"
)

type noteRecord struct {
	note domain.Note
}

func (r *noteRecord) snapshot() *domain.Note {
	n := r.note
	n.TagIDs = append([]string{}, r.note.TagIDs...)
	return &n
}

type noteRepository struct {
	store *Store
}

// NewNoteRepository returns a domain.NoteRepository backed by store.
func NewNoteRepository(store *Store) domain.NoteRepository {
	return &noteRepository{store: store}
}

func (r *noteRepository) List(ctx context.Context, filter domain.NoteFilter) ([]*domain.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*domain.Note, 0)
	for _, rec := range r.store.notes {
		if filter.Matches(&rec.note) {
			out = append(out, rec.snapshot())
		}
	}
	domain.SortByRecency(out)
	if filter.Page != nil {
		start, end := filter.Page.Window(len(out))
		out = out[start:end]
	}
	return out, nil
}

func (r *noteRepository) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	rec, ok := r.store.notes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return rec.snapshot(), nil
}

func (r *noteRepository) Create(ctx context.Context, n *domain.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	rec := &noteRecord{note: *n}
	rec.note.TagIDs = append([]string{}, n.TagIDs...)
	r.store.notes[n.ID] = rec
	return nil
}

func (r *noteRepository) Update(ctx context.Context, id string, patch domain.NotePatch, updatedAt time.Time) (*domain.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	rec, ok := r.store.notes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	rec.note = patch.Apply(rec.note)
	rec.note.UpdatedAt = updatedAt
	return rec.snapshot(), nil
}

func (r *noteRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.notes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.notes, id)
	return nil
}

func (r *noteRepository) PullTag(ctx context.Context, tagID string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var changed int64
	for _, rec := range r.store.notes {
		if !slices.Contains(rec.note.TagIDs, tagID) {
			continue
		}
		rec.note.TagIDs = slices.DeleteFunc(rec.note.TagIDs, func(id string) bool { return id == tagID })
		changed++
	}
	return changed, nil
}

func (r *noteRepository) ClearFolder(ctx context.Context, folderID string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var changed int64
	for _, rec := range r.store.notes {
		if rec.note.FolderID == folderID {
			rec.note.FolderID = ""
			changed++
		}
	}
	return changed, nil
}
