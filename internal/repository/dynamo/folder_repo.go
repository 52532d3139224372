package dynamo

import (
	"context"

	"noteful/internal/domain"
)

type folderRepository struct {
	items namedTable
}

// NewFolderRepository returns a domain.FolderRepository backed by table.
func NewFolderRepository(table *Table) domain.FolderRepository {
	return &folderRepository{items: namedTable{table: table, entity: "folder"}}
}

func toFolder(it namedItem) *domain.Folder {
	return domain.NewFolder(it.ID, it.Name, it.CreatedAt, it.UpdatedAt)
}

func (r *folderRepository) List(ctx context.Context) ([]*domain.Folder, error) {
	items, err := r.items.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Folder, 0, len(items))
	for _, it := range items {
		out = append(out, toFolder(it))
	}
	return out, nil
}

func (r *folderRepository) GetByID(ctx context.Context, id string) (*domain.Folder, error) {
	it, err := r.items.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toFolder(*it), nil
}

func (r *folderRepository) Create(ctx context.Context, f *domain.Folder) error {
	return r.items.create(ctx, f.ID, f.Name, f.CreatedAt, f.UpdatedAt)
}

func (r *folderRepository) Update(ctx context.Context, f *domain.Folder) error {
	createdAt, err := r.items.update(ctx, f.ID, f.Name, f.UpdatedAt)
	if err != nil {
		return err
	}
	f.CreatedAt = createdAt
	return nil
}

func (r *folderRepository) Delete(ctx context.Context, id string) error {
	return r.items.delete(ctx, id)
}
