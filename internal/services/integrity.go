package services

import (
	"context"
	"fmt"
	"log/slog"

	"noteful/internal/domain"
)

// CascadePolicy says what happens to notes that reference a deleted folder or tag.
type CascadePolicy string

const (
	// PolicyUnlink removes the reference from every note that holds it.
	PolicyUnlink CascadePolicy = "unlink"
	// PolicyNone leaves dangling references in place.
	PolicyNone CascadePolicy = "none"
)

// ParseCascadePolicy accepts "unlink" or "none".
func ParseCascadePolicy(s string) (CascadePolicy, error) {
	switch p := CascadePolicy(s); p {
	case PolicyUnlink, PolicyNone:
		return p, nil
	default:
		return "", fmt.Errorf("unknown cascade policy %q", s)
	}
}

type integrityCoordinator struct {
	noteRepo     domain.NoteRepository
	tagPolicy    CascadePolicy
	folderPolicy CascadePolicy
	attempts     int
	logger       *slog.Logger
}

// NewIntegrityCoordinator returns a coordinator that repairs notes after a
// tag or folder delete according to the given policies. Each repair is tried
// up to attempts times; the entity delete itself is never rolled back, so a
// failed repair leaves dangling references until the delete is repeated.
func NewIntegrityCoordinator(noteRepo domain.NoteRepository, tagPolicy, folderPolicy CascadePolicy, attempts int, logger *slog.Logger) domain.IntegrityCoordinator {
	if attempts < 1 {
		attempts = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &integrityCoordinator{
		noteRepo:     noteRepo,
		tagPolicy:    tagPolicy,
		folderPolicy: folderPolicy,
		attempts:     attempts,
		logger:       logger,
	}
}

func (c *integrityCoordinator) TagDeleted(ctx context.Context, tagID string) error {
	if c.tagPolicy == PolicyNone {
		return nil
	}
	return c.repair(ctx, "tag", tagID, c.noteRepo.PullTag)
}

func (c *integrityCoordinator) FolderDeleted(ctx context.Context, folderID string) error {
	if c.folderPolicy == PolicyNone {
		return nil
	}
	return c.repair(ctx, "folder", folderID, c.noteRepo.ClearFolder)
}

func (c *integrityCoordinator) repair(ctx context.Context, entity, id string, op func(context.Context, string) (int64, error)) error {
	var err error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		var changed int64
		changed, err = op(ctx, id)
		if err == nil {
			if changed > 0 {
				c.logger.InfoContext(ctx, "unlinked deleted reference", "entity", entity, "id", id, "notes", changed)
			}
			return nil
		}
		c.logger.WarnContext(ctx, "cascade failed", "entity", entity, "id", id, "attempt", attempt, "error", err)
		if ctx.Err() != nil {
			break
		}
	}
	return fmt.Errorf("unlink %s %s from notes: %w", entity, id, err)
}
