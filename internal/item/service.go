package item

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service interface {
	List(ctx context.Context) ([]Item, error)
	Find(ctx context.Context, id string) (Item, error)
	Create(ctx context.Context, params CreateParams) (Item, error)
	Update(ctx context.Context, id string, params UpdateParams) (Item, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

var _ Service = (*service)(nil)

// NewService returns the item service. A nil clock defaults to time.Now.
func NewService(repo Repository, clock func() time.Time) *service {
	if clock == nil {
		clock = time.Now
	}

	return &service{
		repo:  repo,
		now:   clock,
		newID: uuid.NewString,
	}
}

func (s *service) List(ctx context.Context) ([]Item, error) {
	return s.repo.List(ctx)
}

func (s *service) Find(ctx context.Context, id string) (Item, error) {
	return s.repo.Find(ctx, id)
}

func (s *service) Create(ctx context.Context, params CreateParams) (Item, error) {
	now := s.now().UTC()
	newItem := Item{
		ID:          s.newID(),
		Name:        strings.TrimSpace(params.Name),
		Description: strings.TrimSpace(params.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return s.repo.Create(ctx, newItem)
}

func (s *service) Update(ctx context.Context, id string, params UpdateParams) (Item, error) {
	now := s.now().UTC()

	return s.repo.Update(ctx, id, func(it Item) Item {
		if params.Name != nil {
			it.Name = strings.TrimSpace(*params.Name)
		}
		if params.Description != nil {
			it.Description = strings.TrimSpace(*params.Description)
		}

		// updatedAt never moves backwards, even if the wall clock does.
		if now.After(it.UpdatedAt) {
			it.UpdatedAt = now
		}
		return it
	})
}

func (s *service) Delete(ctx context.Context, id string) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}
