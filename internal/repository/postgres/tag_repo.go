package postgres

import (
	"context"
	"database/sql"

	"noteful/internal/domain"
)

type tagRepository struct {
	table namedTable
}

// NewTagRepository returns a domain.TagRepository implemented with Postgres.
func NewTagRepository(db *sql.DB) domain.TagRepository {
	return &tagRepository{table: namedTable{db: db, table: "tags"}}
}

func tagFromRow(r namedRow) *domain.Tag {
	return domain.NewTag(r.ID, r.Name, r.CreatedAt, r.UpdatedAt)
}

func tagsFromRows(rows []namedRow) []*domain.Tag {
	tags := make([]*domain.Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, tagFromRow(row))
	}
	return tags
}

func (r *tagRepository) List(ctx context.Context) ([]*domain.Tag, error) {
	rows, err := r.table.list(ctx)
	if err != nil {
		return nil, err
	}
	return tagsFromRows(rows), nil
}

func (r *tagRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Tag, error) {
	rows, err := r.table.listByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return tagsFromRows(rows), nil
}

func (r *tagRepository) GetByID(ctx context.Context, id string) (*domain.Tag, error) {
	row, err := r.table.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return tagFromRow(*row), nil
}

func (r *tagRepository) Create(ctx context.Context, t *domain.Tag) error {
	return r.table.create(ctx, namedRow{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt})
}

func (r *tagRepository) Update(ctx context.Context, t *domain.Tag) error {
	createdAt, err := r.table.update(ctx, t.ID, t.Name, t.UpdatedAt)
	if err != nil {
		return err
	}
	t.CreatedAt = createdAt
	return nil
}

func (r *tagRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}
