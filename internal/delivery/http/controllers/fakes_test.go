package controllers

import (
	"context"
	"io"
	"log/slog"

	"noteful/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeFolderService implements domain.FolderService for handler tests.
type fakeFolderService struct {
	folders    []*domain.Folder
	folder     *domain.Folder
	err        error
	lastID     string
	lastName   string
	deletedIDs []string
}

func (f *fakeFolderService) List(ctx context.Context) ([]*domain.Folder, error) {
	return f.folders, f.err
}

func (f *fakeFolderService) GetByID(ctx context.Context, id string) (*domain.Folder, error) {
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.folder, nil
}

func (f *fakeFolderService) Create(ctx context.Context, name string) (*domain.Folder, error) {
	f.lastName = name
	if f.err != nil {
		return nil, f.err
	}
	return f.folder, nil
}

func (f *fakeFolderService) Update(ctx context.Context, id, name string) (*domain.Folder, error) {
	f.lastID, f.lastName = id, name
	if f.err != nil {
		return nil, f.err
	}
	return f.folder, nil
}

func (f *fakeFolderService) Delete(ctx context.Context, id string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return f.err
}

// fakeTagService implements domain.TagService for handler tests.
type fakeTagService struct {
	tags     []*domain.Tag
	tag      *domain.Tag
	err      error
	lastID   string
	lastName string
}

func (f *fakeTagService) List(ctx context.Context) ([]*domain.Tag, error) {
	return f.tags, f.err
}

func (f *fakeTagService) GetByID(ctx context.Context, id string) (*domain.Tag, error) {
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.tag, nil
}

func (f *fakeTagService) Create(ctx context.Context, name string) (*domain.Tag, error) {
	f.lastName = name
	if f.err != nil {
		return nil, f.err
	}
	return f.tag, nil
}

func (f *fakeTagService) Update(ctx context.Context, id, name string) (*domain.Tag, error) {
	f.lastID, f.lastName = id, name
	if f.err != nil {
		return nil, f.err
	}
	return f.tag, nil
}

func (f *fakeTagService) Delete(ctx context.Context, id string) error {
	f.lastID = id
	return f.err
}

// fakeNoteService implements domain.NoteService for handler tests.
type fakeNoteService struct {
	notes      []*domain.Note
	note       *domain.Note
	withTags   *domain.NoteWithTags
	err        error
	lastFilter domain.NoteFilter
	lastDraft  domain.NoteDraft
	lastID     string
	lastPatch  domain.NotePatch
	updated    bool
}

func (f *fakeNoteService) List(ctx context.Context, filter domain.NoteFilter) ([]*domain.Note, error) {
	f.lastFilter = filter
	return f.notes, f.err
}

func (f *fakeNoteService) GetByID(ctx context.Context, id string) (*domain.NoteWithTags, error) {
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.withTags, nil
}

func (f *fakeNoteService) Create(ctx context.Context, draft domain.NoteDraft) (*domain.Note, error) {
	f.lastDraft = draft
	if f.err != nil {
		return nil, f.err
	}
	return f.note, nil
}

func (f *fakeNoteService) Update(ctx context.Context, id string, patch domain.NotePatch) (*domain.Note, error) {
	f.lastID, f.lastPatch, f.updated = id, patch, true
	if f.err != nil {
		return nil, f.err
	}
	return f.note, nil
}

func (f *fakeNoteService) Delete(ctx context.Context, id string) error {
	f.lastID = id
	return f.err
}
