package memory

import (
	"context"

	"noteful/internal/domain"
)

type folderRepository struct {
	store *Store
}

// NewFolderRepository returns a domain.FolderRepository backed by store.
func NewFolderRepository(store *Store) domain.FolderRepository {
	return &folderRepository{store: store}
}

func toFolder(r namedRecord) *domain.Folder {
	return domain.NewFolder(r.id, r.name, r.createdAt, r.updatedAt)
}

func (r *folderRepository) List(ctx context.Context) ([]*domain.Folder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	records := r.store.folders.sorted()
	out := make([]*domain.Folder, 0, len(records))
	for _, rec := range records {
		out = append(out, toFolder(rec))
	}
	return out, nil
}

func (r *folderRepository) GetByID(ctx context.Context, id string) (*domain.Folder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	rec, ok := r.store.folders.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return toFolder(*rec), nil
}

func (r *folderRepository) Create(ctx context.Context, f *domain.Folder) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if !r.store.folders.insert(namedRecord{id: f.ID, name: f.Name, createdAt: f.CreatedAt, updatedAt: f.UpdatedAt}) {
		return domain.ErrDuplicateName
	}
	return nil
}

func (r *folderRepository) Update(ctx context.Context, f *domain.Folder) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	rec, found, ok := r.store.folders.rename(f.ID, f.Name, f.UpdatedAt)
	if !found {
		return domain.ErrNotFound
	}
	if !ok {
		return domain.ErrDuplicateName
	}
	f.CreatedAt = rec.createdAt
	return nil
}

func (r *folderRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if !r.store.folders.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}
