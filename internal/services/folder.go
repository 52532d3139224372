package services

import (
	"context"
	"errors"
	"time"

	"noteful/internal/domain"
)

type folderService struct {
	folderRepo     domain.FolderRepository
	integrity      domain.IntegrityCoordinator
	contextTimeout time.Duration
	now            func() time.Time
}

// NewFolderService returns a FolderService. integrity is told about every
// delete so notes filed in the folder can be repaired.
func NewFolderService(folderRepo domain.FolderRepository, integrity domain.IntegrityCoordinator, timeout time.Duration) domain.FolderService {
	return &folderService{
		folderRepo:     folderRepo,
		integrity:      integrity,
		contextTimeout: timeout,
		now:            timestamp,
	}
}

func (s *folderService) List(ctx context.Context) ([]*domain.Folder, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.folderRepo.List(ctx)
}

func (s *folderService) GetByID(ctx context.Context, id string) (*domain.Folder, error) {
	if err := domain.RequireReference("id", id); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.folderRepo.GetByID(ctx, id)
}

func (s *folderService) Create(ctx context.Context, name string) (*domain.Folder, error) {
	name, err := domain.RequireField("name", name)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	f := domain.NewFolder(domain.NewReference(), name, now, now)
	if err := s.folderRepo.Create(ctx, f); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			return nil, domain.NameConflictError("folder")
		}
		return nil, err
	}
	return f, nil
}

func (s *folderService) Update(ctx context.Context, id, name string) (*domain.Folder, error) {
	if err := domain.RequireReference("id", id); err != nil {
		return nil, err
	}
	name, err := domain.RequireField("name", name)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	f := &domain.Folder{ID: id, Name: name, UpdatedAt: s.now()}
	if err := s.folderRepo.Update(ctx, f); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			return nil, domain.NameConflictError("folder")
		}
		return nil, err
	}
	return f, nil
}

// Delete removes the folder, then has the integrity coordinator unfile its
// notes. The second step runs even when the folder was already gone.
func (s *folderService) Delete(ctx context.Context, id string) error {
	if err := domain.RequireReference("id", id); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.folderRepo.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return s.integrity.FolderDeleted(ctx, id)
}
