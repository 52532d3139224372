package domain

import (
	"context"
	"time"
)

// Folder groups notes. Names are unique across all folders.
// swagger:model Folder
type Folder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewFolder returns a new Folder with the given fields.
func NewFolder(id, name string, createdAt, updatedAt time.Time) *Folder {
	return &Folder{
		ID:        id,
		Name:      name,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// FolderRepository defines storage for folders.
type FolderRepository interface {
	// List returns every folder ordered by name, byte-wise.
	List(ctx context.Context) ([]*Folder, error)
	GetByID(ctx context.Context, id string) (*Folder, error)
	// Create stores f under f.ID. Returns ErrDuplicateName when the name is taken.
	Create(ctx context.Context, f *Folder) error
	// Update writes f.Name and f.UpdatedAt to the folder f.ID and refreshes f.CreatedAt
	// from the store. Returns ErrNotFound or ErrDuplicateName.
	Update(ctx context.Context, f *Folder) error
	// Delete removes the folder. Returns ErrNotFound when nothing was removed.
	Delete(ctx context.Context, id string) error
}

// FolderService defines the business logic for folders.
type FolderService interface {
	List(ctx context.Context) ([]*Folder, error)
	GetByID(ctx context.Context, id string) (*Folder, error)
	Create(ctx context.Context, name string) (*Folder, error)
	Update(ctx context.Context, id, name string) (*Folder, error)
	// Delete is idempotent: a missing folder is not an error.
	Delete(ctx context.Context, id string) error
}
