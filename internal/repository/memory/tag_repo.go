package memory

import (
	"context"

	"noteful/internal/domain"
)

type tagRepository struct {
	store *Store
}

// NewTagRepository returns a domain.TagRepository backed by store.
func NewTagRepository(store *Store) domain.TagRepository {
	return &tagRepository{store: store}
}

func toTag(r namedRecord) *domain.Tag {
	return domain.NewTag(r.id, r.name, r.createdAt, r.updatedAt)
}

func (r *tagRepository) List(ctx context.Context) ([]*domain.Tag, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	records := r.store.tags.sorted()
	out := make([]*domain.Tag, 0, len(records))
	for _, rec := range records {
		out = append(out, toTag(rec))
	}
	return out, nil
}

func (r *tagRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Tag, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*domain.Tag, 0, len(ids))
	for _, id := range ids {
		if rec, ok := r.store.tags.byID[id]; ok {
			out = append(out, toTag(*rec))
		}
	}
	return out, nil
}

func (r *tagRepository) GetByID(ctx context.Context, id string) (*domain.Tag, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	rec, ok := r.store.tags.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return toTag(*rec), nil
}

func (r *tagRepository) Create(ctx context.Context, t *domain.Tag) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if !r.store.tags.insert(namedRecord{id: t.ID, name: t.Name, createdAt: t.CreatedAt, updatedAt: t.UpdatedAt}) {
		return domain.ErrDuplicateName
	}
	return nil
}

func (r *tagRepository) Update(ctx context.Context, t *domain.Tag) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	rec, found, ok := r.store.tags.rename(t.ID, t.Name, t.UpdatedAt)
	if !found {
		return domain.ErrNotFound
	}
	if !ok {
		return domain.ErrDuplicateName
	}
	t.CreatedAt = rec.createdAt
	return nil
}

func (r *tagRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if !r.store.tags.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}
