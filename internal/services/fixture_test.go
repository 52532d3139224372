package services

import (
	"context"
	"time"

	"noteful/internal/domain"
	"noteful/internal/repository/memory"
)

// tickClock advances one second per reading so timestamps are distinct.
type tickClock struct {
	t time.Time
}

func (c *tickClock) now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

type fixture struct {
	store   *memory.Store
	noteRep domain.NoteRepository
	folders *folderService
	tags    *tagService
	notes   *noteService
	clock   *tickClock
}

func newFixture(policy CascadePolicy) *fixture {
	store := memory.NewStore()
	noteRepo := memory.NewNoteRepository(store)
	tagRepo := memory.NewTagRepository(store)
	integrity := NewIntegrityCoordinator(noteRepo, policy, policy, 3, nil)
	clock := &tickClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}

	f := &fixture{
		store:   store,
		noteRep: noteRepo,
		folders: NewFolderService(memory.NewFolderRepository(store), integrity, time.Second).(*folderService),
		tags:    NewTagService(tagRepo, integrity, time.Second).(*tagService),
		notes:   NewNoteService(noteRepo, tagRepo, time.Second).(*noteService),
		clock:   clock,
	}
	f.folders.now = clock.now
	f.tags.now = clock.now
	f.notes.now = clock.now
	return f
}

const missingID = "00000000-0000-4000-8000-000000000000"

var ctx = context.Background()
