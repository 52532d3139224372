package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteful/internal/domain"
)

// flakyNoteRepo fails the first failures cascade calls.
type flakyNoteRepo struct {
	domain.NoteRepository
	failures int
	calls    int
}

func (r *flakyNoteRepo) PullTag(ctx context.Context, tagID string) (int64, error) {
	r.calls++
	if r.calls <= r.failures {
		return 0, errors.New("store unavailable")
	}
	return r.NoteRepository.PullTag(ctx, tagID)
}

func (r *flakyNoteRepo) ClearFolder(ctx context.Context, folderID string) (int64, error) {
	r.calls++
	if r.calls <= r.failures {
		return 0, errors.New("store unavailable")
	}
	return r.NoteRepository.ClearFolder(ctx, folderID)
}

func TestParseCascadePolicy(t *testing.T) {
	p, err := ParseCascadePolicy("unlink")
	require.NoError(t, err)
	assert.Equal(t, PolicyUnlink, p)
	p, err = ParseCascadePolicy("none")
	require.NoError(t, err)
	assert.Equal(t, PolicyNone, p)
	_, err = ParseCascadePolicy("cascade")
	assert.Error(t, err)
}

func TestIntegrityCoordinator_Retries(t *testing.T) {
	tests := []struct {
		name      string
		failures  int
		attempts  int
		wantErr   bool
		wantCalls int
	}{
		{"first try", 0, 3, false, 1},
		{"recovers", 2, 3, false, 3},
		{"gives up", 5, 3, true, 3},
		{"attempts floor at one", 1, 0, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(PolicyUnlink)
			repo := &flakyNoteRepo{NoteRepository: f.noteRep, failures: tt.failures}
			c := NewIntegrityCoordinator(repo, PolicyUnlink, PolicyUnlink, tt.attempts, nil)

			err := c.TagDeleted(ctx, missingID)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "store unavailable")
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, repo.calls)
		})
	}
}

func TestIntegrityCoordinator_RepeatedDeleteHeals(t *testing.T) {
	f := newFixture(PolicyUnlink)
	tag, err := f.tags.Create(ctx, "go")
	require.NoError(t, err)
	n, err := f.notes.Create(ctx, domain.NoteDraft{Title: "tagged", TagIDs: []string{tag.ID}})
	require.NoError(t, err)

	// every cascade attempt fails on the first delete
	repo := &flakyNoteRepo{NoteRepository: f.noteRep, failures: 3}
	f.tags.integrity = NewIntegrityCoordinator(repo, PolicyUnlink, PolicyUnlink, 3, nil)

	require.Error(t, f.tags.Delete(ctx, tag.ID))
	_, err = f.tags.GetByID(ctx, tag.ID)
	require.ErrorIs(t, err, domain.ErrNotFound, "phase one is not rolled back")
	dangling, err := f.noteRep.GetByID(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{tag.ID}, dangling.TagIDs)

	view, err := f.notes.GetByID(ctx, n.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Tags, "dangling references are not populated")

	require.NoError(t, f.tags.Delete(ctx, tag.ID))
	healed, err := f.noteRep.GetByID(ctx, n.ID)
	require.NoError(t, err)
	assert.Empty(t, healed.TagIDs)
}

func TestIntegrityCoordinator_PolicyNone(t *testing.T) {
	f := newFixture(PolicyUnlink)
	repo := &flakyNoteRepo{NoteRepository: f.noteRep, failures: 10}
	c := NewIntegrityCoordinator(repo, PolicyNone, PolicyNone, 3, nil)

	require.NoError(t, c.TagDeleted(ctx, missingID))
	require.NoError(t, c.FolderDeleted(ctx, missingID))
	assert.Zero(t, repo.calls)
}

func TestIntegrityCoordinator_StopsOnCancelledContext(t *testing.T) {
	f := newFixture(PolicyUnlink)
	repo := &flakyNoteRepo{NoteRepository: f.noteRep, failures: 10}
	c := NewIntegrityCoordinator(repo, PolicyUnlink, PolicyUnlink, 5, nil)

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	require.Error(t, c.FolderDeleted(cctx, missingID))
	assert.Equal(t, 1, repo.calls)
}
