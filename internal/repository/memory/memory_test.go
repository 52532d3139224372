package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteful/internal/domain"
)

var (
	t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	t1 = t0.Add(time.Hour)
	t2 = t0.Add(2 * time.Hour)
)

func TestFolderRepository_UniqueNames(t *testing.T) {
	ctx := context.Background()
	repo := NewFolderRepository(NewStore())

	require.NoError(t, repo.Create(ctx, domain.NewFolder("f-1", "Work", t0, t0)))
	require.ErrorIs(t, repo.Create(ctx, domain.NewFolder("f-2", "Work", t0, t0)), domain.ErrDuplicateName)
	require.NoError(t, repo.Create(ctx, domain.NewFolder("f-2", "work", t0, t0)), "names are case-sensitive")

	err := repo.Update(ctx, &domain.Folder{ID: "f-2", Name: "Work", UpdatedAt: t1})
	require.ErrorIs(t, err, domain.ErrDuplicateName)

	renamed := &domain.Folder{ID: "f-1", Name: "Archive", UpdatedAt: t1}
	require.NoError(t, repo.Update(ctx, renamed))
	assert.Equal(t, t0, renamed.CreatedAt)

	// the old name is free again
	require.NoError(t, repo.Create(ctx, domain.NewFolder("f-3", "Work", t0, t0)))

	require.ErrorIs(t, repo.Update(ctx, &domain.Folder{ID: "missing", Name: "X"}), domain.ErrNotFound)
}

func TestFolderRepository_ListSortsByteWise(t *testing.T) {
	ctx := context.Background()
	repo := NewFolderRepository(NewStore())
	for i, name := range []string{"apple", "Zebra", "banana", "Apple"} {
		require.NoError(t, repo.Create(ctx, domain.NewFolder(string(rune('a'+i)), name, t0, t0)))
	}
	got, err := repo.List(ctx)
	require.NoError(t, err)
	var names []string
	for _, f := range got {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"Apple", "Zebra", "apple", "banana"}, names)
}

func TestTagRepository_DeleteAndListByIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewTagRepository(NewStore())
	require.NoError(t, repo.Create(ctx, domain.NewTag("t-1", "go", t0, t0)))
	require.NoError(t, repo.Create(ctx, domain.NewTag("t-2", "sql", t0, t0)))

	got, err := repo.ListByIDs(ctx, []string{"t-2", "t-missing", "t-1"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.NoError(t, repo.Delete(ctx, "t-1"))
	require.ErrorIs(t, repo.Delete(ctx, "t-1"), domain.ErrNotFound)
	_, err = repo.GetByID(ctx, "t-1")
	require.ErrorIs(t, err, domain.ErrNotFound)

	// name released on delete
	require.NoError(t, repo.Create(ctx, domain.NewTag("t-3", "go", t0, t0)))
}

func seedNotes(t *testing.T, repo domain.NoteRepository) {
	t.Helper()
	ctx := context.Background()
	notes := []*domain.Note{
		{ID: "n-1", Title: "Posuere cats", FolderID: "f-1", TagIDs: []string{"t-1", "t-2"}, CreatedAt: t0, UpdatedAt: t0},
		{ID: "n-2", Title: "Dogs", Content: "lorem POSUERE", TagIDs: []string{"t-2"}, CreatedAt: t0, UpdatedAt: t2},
		{ID: "n-3", Title: "Birds", FolderID: "f-1", CreatedAt: t0, UpdatedAt: t1},
	}
	for _, n := range notes {
		require.NoError(t, repo.Create(ctx, n))
	}
}

func noteIDs(notes []*domain.Note) []string {
	ids := make([]string, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID)
	}
	return ids
}

func TestNoteRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewNoteRepository(NewStore())
	seedNotes(t, repo)

	tests := []struct {
		name   string
		filter domain.NoteFilter
		want   []string
	}{
		{"all, newest first", domain.NoteFilter{}, []string{"n-2", "n-3", "n-1"}},
		{"search title or content", domain.NoteFilter{SearchTerm: "posuere"}, []string{"n-2", "n-1"}},
		{"folder", domain.NoteFilter{FolderID: "f-1"}, []string{"n-3", "n-1"}},
		{"tag", domain.NoteFilter{TagID: "t-2"}, []string{"n-2", "n-1"}},
		{"combined", domain.NoteFilter{FolderID: "f-1", TagID: "t-2"}, []string{"n-1"}},
		{"page", domain.NoteFilter{Page: &domain.PaginationParams{Page: 2, PageSize: 2}}, []string{"n-1"}},
		{"page past end", domain.NoteFilter{Page: &domain.PaginationParams{Page: 5, PageSize: 2}}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, noteIDs(got))
		})
	}
}

func TestNoteRepository_UpdateIsolation(t *testing.T) {
	ctx := context.Background()
	repo := NewNoteRepository(NewStore())
	seedNotes(t, repo)

	got, err := repo.GetByID(ctx, "n-1")
	require.NoError(t, err)
	got.TagIDs[0] = "mutated"

	again, err := repo.GetByID(ctx, "n-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"t-1", "t-2"}, again.TagIDs)

	updated, err := repo.Update(ctx, "n-1", domain.NotePatch{FolderID: domain.Some("")}, t2)
	require.NoError(t, err)
	assert.Equal(t, "", updated.FolderID)
	assert.Equal(t, t2, updated.UpdatedAt)
	assert.Equal(t, "Posuere cats", updated.Title)

	_, err = repo.Update(ctx, "missing", domain.NotePatch{}, t2)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNoteRepository_Cascades(t *testing.T) {
	ctx := context.Background()
	repo := NewNoteRepository(NewStore())
	seedNotes(t, repo)

	n, err := repo.PullTag(ctx, "t-2")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	n, err = repo.PullTag(ctx, "t-2")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	got, err := repo.GetByID(ctx, "n-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"t-1"}, got.TagIDs)

	n, err = repo.ClearFolder(ctx, "f-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	got, err = repo.GetByID(ctx, "n-3")
	require.NoError(t, err)
	assert.Equal(t, "", got.FolderID)
}

func TestStore_Reset(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	notes := NewNoteRepository(store)
	seedNotes(t, notes)
	require.NoError(t, NewFolderRepository(store).Create(ctx, domain.NewFolder("f-1", "Work", t0, t0)))

	store.Reset()

	all, err := notes.List(ctx, domain.NoteFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
	folders, err := NewFolderRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, folders)
}
