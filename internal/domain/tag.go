package domain

import (
	"context"
	"time"
)

// Tag is a label that notes reference by id. Names are unique across all tags.
// swagger:model Tag
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewTag returns a new Tag with the given fields.
func NewTag(id, name string, createdAt, updatedAt time.Time) *Tag {
	return &Tag{
		ID:        id,
		Name:      name,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// TagRepository defines storage for tags.
type TagRepository interface {
	// List returns every tag ordered by name, byte-wise.
	List(ctx context.Context) ([]*Tag, error)
	// ListByIDs returns the tags whose ids are in ids, in no particular order.
	// Unknown ids are skipped.
	ListByIDs(ctx context.Context, ids []string) ([]*Tag, error)
	GetByID(ctx context.Context, id string) (*Tag, error)
	// Create stores t under t.ID. Returns ErrDuplicateName when the name is taken.
	Create(ctx context.Context, t *Tag) error
	// Update writes t.Name and t.UpdatedAt to the tag t.ID and refreshes t.CreatedAt
	// from the store. Returns ErrNotFound or ErrDuplicateName.
	Update(ctx context.Context, t *Tag) error
	// Delete removes the tag. Returns ErrNotFound when nothing was removed.
	Delete(ctx context.Context, id string) error
}

// TagService defines the business logic for tags.
type TagService interface {
	List(ctx context.Context) ([]*Tag, error)
	GetByID(ctx context.Context, id string) (*Tag, error)
	Create(ctx context.Context, name string) (*Tag, error)
	Update(ctx context.Context, id, name string) (*Tag, error)
	// Delete is idempotent and unlinks the tag from every note that holds it.
	Delete(ctx context.Context, id string) error
}
