package item

import (
	"context"
	"errors"
)

type StubService struct {
	ListFunc   func(ctx context.Context) ([]Item, error)
	FindFunc   func(ctx context.Context, id string) (Item, error)
	CreateFunc func(ctx context.Context, params CreateParams) (Item, error)
	UpdateFunc func(ctx context.Context, id string, params UpdateParams) (Item, error)
	DeleteFunc func(ctx context.Context, id string) error
}

var _ Service = &StubService{}

func (s *StubService) List(ctx context.Context) ([]Item, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx)
}

func (s *StubService) Find(ctx context.Context, id string) (Item, error) {
	if s.FindFunc == nil {
		return Item{}, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, id)
}

func (s *StubService) Create(ctx context.Context, params CreateParams) (Item, error) {
	if s.CreateFunc == nil {
		return Item{}, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubService) Update(ctx context.Context, id string, params UpdateParams) (Item, error) {
	if s.UpdateFunc == nil {
		return Item{}, errors.New("Update() not implemented by stub")
	}
	return s.UpdateFunc(ctx, id, params)
}

func (s *StubService) Delete(ctx context.Context, id string) error {
	if s.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return s.DeleteFunc(ctx, id)
}

// StubRepo keeps items in memory so service tests can inspect what was
// stored.
type StubRepo struct {
	Items []Item

	ListFunc   func(ctx context.Context) ([]Item, error)
	FindFunc   func(ctx context.Context, id string) (Item, error)
	CreateFunc func(ctx context.Context, item Item) (Item, error)
	UpdateFunc func(ctx context.Context, id string, change func(Item) Item) (Item, error)
	DeleteFunc func(ctx context.Context, id string) (bool, error)
}

var _ Repository = &StubRepo{}

func (r *StubRepo) List(ctx context.Context) ([]Item, error) {
	if r.ListFunc != nil {
		return r.ListFunc(ctx)
	}
	return append([]Item{}, r.Items...), nil
}

func (r *StubRepo) Find(ctx context.Context, id string) (Item, error) {
	if r.FindFunc != nil {
		return r.FindFunc(ctx, id)
	}
	if i := indexOf(r.Items, id); i >= 0 {
		return r.Items[i], nil
	}
	return Item{}, ErrNotFound
}

func (r *StubRepo) Create(ctx context.Context, item Item) (Item, error) {
	if r.CreateFunc != nil {
		return r.CreateFunc(ctx, item)
	}
	r.Items = append(r.Items, item)
	return item, nil
}

func (r *StubRepo) Update(ctx context.Context, id string, change func(Item) Item) (Item, error) {
	if r.UpdateFunc != nil {
		return r.UpdateFunc(ctx, id, change)
	}
	i := indexOf(r.Items, id)
	if i < 0 {
		return Item{}, ErrNotFound
	}
	r.Items[i] = change(r.Items[i])
	return r.Items[i], nil
}

func (r *StubRepo) Delete(ctx context.Context, id string) (bool, error) {
	if r.DeleteFunc != nil {
		return r.DeleteFunc(ctx, id)
	}
	i := indexOf(r.Items, id)
	if i < 0 {
		return false, nil
	}
	r.Items = append(r.Items[:i], r.Items[i+1:]...)
	return true, nil
}
