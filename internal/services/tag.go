package services

import (
	"context"
	"errors"
	"time"

	"noteful/internal/domain"
)

type tagService struct {
	tagRepo        domain.TagRepository
	integrity      domain.IntegrityCoordinator
	contextTimeout time.Duration
	now            func() time.Time
}

// NewTagService returns a TagService. integrity is told about every
// delete so notes carrying the tag can be repaired.
func NewTagService(tagRepo domain.TagRepository, integrity domain.IntegrityCoordinator, timeout time.Duration) domain.TagService {
	return &tagService{
		tagRepo:        tagRepo,
		integrity:      integrity,
		contextTimeout: timeout,
		now:            timestamp,
	}
}

func (s *tagService) List(ctx context.Context) ([]*domain.Tag, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.tagRepo.List(ctx)
}

func (s *tagService) GetByID(ctx context.Context, id string) (*domain.Tag, error) {
	if err := domain.RequireReference("id", id); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.tagRepo.GetByID(ctx, id)
}

func (s *tagService) Create(ctx context.Context, name string) (*domain.Tag, error) {
	name, err := domain.RequireField("name", name)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	t := domain.NewTag(domain.NewReference(), name, now, now)
	if err := s.tagRepo.Create(ctx, t); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			return nil, domain.NameConflictError("tag")
		}
		return nil, err
	}
	return t, nil
}

func (s *tagService) Update(ctx context.Context, id, name string) (*domain.Tag, error) {
	if err := domain.RequireReference("id", id); err != nil {
		return nil, err
	}
	name, err := domain.RequireField("name", name)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	t := &domain.Tag{ID: id, Name: name, UpdatedAt: s.now()}
	if err := s.tagRepo.Update(ctx, t); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			return nil, domain.NameConflictError("tag")
		}
		return nil, err
	}
	return t, nil
}

// Delete removes the tag, then has the integrity coordinator unlink it from its
// notes. The second step runs even when the tag was already gone.
func (s *tagService) Delete(ctx context.Context, id string) error {
	if err := domain.RequireReference("id", id); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.tagRepo.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return s.integrity.TagDeleted(ctx, id)
}
