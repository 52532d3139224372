package dynamo

import (
	"context"

	"noteful/internal/domain"
)

type tagRepository struct {
	items namedTable
}

// NewTagRepository returns a domain.TagRepository backed by table.
func NewTagRepository(table *Table) domain.TagRepository {
	return &tagRepository{items: namedTable{table: table, entity: "tag"}}
}

func toTag(it namedItem) *domain.Tag {
	return domain.NewTag(it.ID, it.Name, it.CreatedAt, it.UpdatedAt)
}

func (r *tagRepository) List(ctx context.Context) ([]*domain.Tag, error) {
	items, err := r.items.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Tag, 0, len(items))
	for _, it := range items {
		out = append(out, toTag(it))
	}
	return out, nil
}

func (r *tagRepository) GetByID(ctx context.Context, id string) (*domain.Tag, error) {
	it, err := r.items.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTag(*it), nil
}

func (r *tagRepository) Create(ctx context.Context, t *domain.Tag) error {
	return r.items.create(ctx, t.ID, t.Name, t.CreatedAt, t.UpdatedAt)
}

func (r *tagRepository) Update(ctx context.Context, t *domain.Tag) error {
	createdAt, err := r.items.update(ctx, t.ID, t.Name, t.UpdatedAt)
	if err != nil {
		return err
	}
	t.CreatedAt = createdAt
	return nil
}

func (r *tagRepository) Delete(ctx context.Context, id string) error {
	return r.items.delete(ctx, id)
}

func (r *tagRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Tag, error) {
	items, err := r.items.listByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Tag, 0, len(items))
	for _, it := range items {
		out = append(out, toTag(it))
	}
	return out, nil
}
