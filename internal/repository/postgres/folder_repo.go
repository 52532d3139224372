package postgres

import (
	"context"
	"database/sql"

	"noteful/internal/domain"
)

type folderRepository struct {
	table namedTable
}

// NewFolderRepository returns a domain.FolderRepository implemented with Postgres.
func NewFolderRepository(db *sql.DB) domain.FolderRepository {
	return &folderRepository{table: namedTable{db: db, table: "folders"}}
}

func folderFromRow(r namedRow) *domain.Folder {
	return domain.NewFolder(r.ID, r.Name, r.CreatedAt, r.UpdatedAt)
}

func (r *folderRepository) List(ctx context.Context) ([]*domain.Folder, error) {
	rows, err := r.table.list(ctx)
	if err != nil {
		return nil, err
	}
	folders := make([]*domain.Folder, 0, len(rows))
	for _, row := range rows {
		folders = append(folders, folderFromRow(row))
	}
	return folders, nil
}

func (r *folderRepository) GetByID(ctx context.Context, id string) (*domain.Folder, error) {
	row, err := r.table.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return folderFromRow(*row), nil
}

func (r *folderRepository) Create(ctx context.Context, f *domain.Folder) error {
	return r.table.create(ctx, namedRow{ID: f.ID, Name: f.Name, CreatedAt: f.CreatedAt, UpdatedAt: f.UpdatedAt})
}

func (r *folderRepository) Update(ctx context.Context, f *domain.Folder) error {
	createdAt, err := r.table.update(ctx, f.ID, f.Name, f.UpdatedAt)
	if err != nil {
		return err
	}
	f.CreatedAt = createdAt
	return nil
}

func (r *folderRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}
