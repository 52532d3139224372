package services

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"noteful/internal/domain"
)

func TestFolderService_Create(t *testing.T) {
	f := newFixture(PolicyUnlink)

	got, err := f.folders.Create(ctx, "  Work ")
	require.NoError(t, err)
	assert.True(t, domain.IsValidReference(got.ID))
	assert.Equal(t, "Work", got.Name)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)

	stored, err := f.folders.GetByID(ctx, got.ID)
	require.NoError(t, err)
	assert.Equal(t, got, stored)

	tests := []struct {
		name    string
		input   string
		kind    error
		message string
	}{
		{"empty name", "", domain.ErrMissingField, "Missing `name` in request body"},
		{"blank name", "   ", domain.ErrMissingField, "Missing `name` in request body"},
		{"duplicate", "Work", domain.ErrConflict, "The folder name already exists"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.folders.Create(ctx, tt.input)
			require.ErrorIs(t, err, tt.kind)
			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestFolderService_ValidatesBeforeStore(t *testing.T) {
	// a nil repository panics on any call
	svc := NewFolderService(nil, nil, time.Second)

	_, err := svc.GetByID(ctx, "NOT-A-VALID-ID")
	assert.EqualError(t, err, "The id is not valid")
	_, err = svc.Update(ctx, "NOT-A-VALID-ID", "x")
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
	_, err = svc.Update(ctx, missingID, "")
	assert.ErrorIs(t, err, domain.ErrMissingField)
	_, err = svc.Create(ctx, "")
	assert.ErrorIs(t, err, domain.ErrMissingField)
	assert.ErrorIs(t, svc.Delete(ctx, "NOT-A-VALID-ID"), domain.ErrInvalidReference)
}

func TestFolderService_Update(t *testing.T) {
	f := newFixture(PolicyUnlink)
	work, err := f.folders.Create(ctx, "Work")
	require.NoError(t, err)
	_, err = f.folders.Create(ctx, "Home")
	require.NoError(t, err)

	renamed, err := f.folders.Update(ctx, work.ID, "Office")
	require.NoError(t, err)
	assert.Equal(t, "Office", renamed.Name)
	assert.Equal(t, work.CreatedAt, renamed.CreatedAt)
	assert.True(t, renamed.UpdatedAt.After(work.UpdatedAt))

	_, err = f.folders.Update(ctx, work.ID, "Home")
	assert.EqualError(t, err, "The folder name already exists")

	_, err = f.folders.Update(ctx, missingID, "Anything")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFolderService_DeleteUnfilesNotes(t *testing.T) {
	f := newFixture(PolicyUnlink)
	folder, err := f.folders.Create(ctx, "Work")
	require.NoError(t, err)
	n, err := f.notes.Create(ctx, domain.NoteDraft{Title: "filed", FolderID: folder.ID})
	require.NoError(t, err)

	require.NoError(t, f.folders.Delete(ctx, folder.ID))
	require.NoError(t, f.folders.Delete(ctx, folder.ID), "delete is idempotent")

	_, err = f.folders.GetByID(ctx, folder.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	got, err := f.notes.GetByID(ctx, n.ID)
	require.NoError(t, err)
	assert.Empty(t, got.FolderID)
	assert.Equal(t, n.UpdatedAt, got.UpdatedAt, "cascade does not touch updatedAt")
}

func TestFolderService_DeleteWithPolicyNone(t *testing.T) {
	f := newFixture(PolicyNone)
	folder, err := f.folders.Create(ctx, "Work")
	require.NoError(t, err)
	n, err := f.notes.Create(ctx, domain.NoteDraft{Title: "filed", FolderID: folder.ID})
	require.NoError(t, err)

	require.NoError(t, f.folders.Delete(ctx, folder.ID))
	got, err := f.notes.GetByID(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, folder.ID, got.FolderID)
}

func TestFolderService_ListIsSortedByteWise(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		f := newFixture(PolicyUnlink)
		names := rapid.SliceOfN(rapid.StringMatching(`[A-Za-z][A-Za-z0-9 ]{0,7}[A-Za-z0-9]`), 1, 15).Draw(rt, "names")
		created := map[string]bool{}
		for _, name := range names {
			_, err := f.folders.Create(ctx, name)
			if created[name] {
				require.ErrorIs(rt, err, domain.ErrConflict)
				continue
			}
			require.NoError(rt, err)
			created[name] = true
		}

		got, err := f.folders.List(ctx)
		require.NoError(rt, err)
		require.Len(rt, got, len(created))
		require.True(rt, sort.SliceIsSorted(got, func(i, j int) bool { return got[i].Name < got[j].Name }))
		for i := 1; i < len(got); i++ {
			require.NotEqual(rt, got[i-1].Name, got[i].Name)
		}
	})
}
