package services

import (
	"context"
	"errors"
	"time"

	"noteful/internal/domain"
)

// timestamp is the service clock. Postgres keeps microseconds, so finer
// precision would make a created entity differ from its stored copy.
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

type noteService struct {
	noteRepo       domain.NoteRepository
	tagRepo        domain.TagRepository
	contextTimeout time.Duration
	now            func() time.Time
}

// NewNoteService returns a NoteService. tagRepo is used to expand tag
// references when a single note is read.
func NewNoteService(noteRepo domain.NoteRepository, tagRepo domain.TagRepository, timeout time.Duration) domain.NoteService {
	return &noteService{
		noteRepo:       noteRepo,
		tagRepo:        tagRepo,
		contextTimeout: timeout,
		now:            timestamp,
	}
}

// normalizeTags checks every reference and drops repeats, keeping the first occurrence.
func normalizeTags(ids []string) ([]string, error) {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !domain.IsValidReference(id) {
			return nil, domain.InvalidTagsError()
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out, nil
}

func (s *noteService) List(ctx context.Context, filter domain.NoteFilter) ([]*domain.Note, error) {
	if filter.FolderID != "" {
		if err := domain.RequireReference("folderId", filter.FolderID); err != nil {
			return nil, err
		}
	}
	if filter.TagID != "" {
		if err := domain.RequireReference("tagId", filter.TagID); err != nil {
			return nil, err
		}
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.noteRepo.List(ctx, filter)
}

// GetByID returns the note with its tags expanded in the note's own order.
// References to tags that no longer exist are left out.
func (s *noteService) GetByID(ctx context.Context, id string) (*domain.NoteWithTags, error) {
	if err := domain.RequireReference("id", id); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	n, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	found, err := s.tagRepo.ListByIDs(ctx, n.TagIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.Tag, len(found))
	for _, t := range found {
		byID[t.ID] = t
	}
	tags := make([]*domain.Tag, 0, len(n.TagIDs))
	for _, tid := range n.TagIDs {
		if t, ok := byID[tid]; ok {
			tags = append(tags, t)
		}
	}
	return &domain.NoteWithTags{Note: n, Tags: tags}, nil
}

func (s *noteService) Create(ctx context.Context, draft domain.NoteDraft) (*domain.Note, error) {
	title, err := domain.RequireField("title", draft.Title)
	if err != nil {
		return nil, err
	}
	if draft.FolderID != "" {
		if err := domain.RequireReference("folderId", draft.FolderID); err != nil {
			return nil, err
		}
	}
	tags, err := normalizeTags(draft.TagIDs)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	n := &domain.Note{
		ID:        domain.NewReference(),
		Title:     title,
		Content:   draft.Content,
		FolderID:  draft.FolderID,
		TagIDs:    tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.noteRepo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// Update applies only the fields set in patch. A set but empty FolderID
// clears the folder.
func (s *noteService) Update(ctx context.Context, id string, patch domain.NotePatch) (*domain.Note, error) {
	if err := domain.RequireReference("id", id); err != nil {
		return nil, err
	}
	if patch.Title.Set {
		title, err := domain.RequireField("title", patch.Title.Value)
		if err != nil {
			return nil, err
		}
		patch.Title.Value = title
	}
	if patch.FolderID.Set && patch.FolderID.Value != "" {
		if err := domain.RequireReference("folderId", patch.FolderID.Value); err != nil {
			return nil, err
		}
	}
	if patch.TagIDs.Set {
		tags, err := normalizeTags(patch.TagIDs.Value)
		if err != nil {
			return nil, err
		}
		patch.TagIDs.Value = tags
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.noteRepo.Update(ctx, id, patch, s.now())
}

func (s *noteService) Delete(ctx context.Context, id string) error {
	if err := domain.RequireReference("id", id); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.noteRepo.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}
