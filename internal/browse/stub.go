package browse

import (
	"context"
	"errors"

	"github.com/ferdiebergado/boring/internal/item"
)

type StubAPI struct {
	ListItemsFunc  func(ctx context.Context) ([]item.Item, error)
	GetItemFunc    func(ctx context.Context, id string) (item.Item, error)
	CreateItemFunc func(ctx context.Context, params item.CreateParams) (item.Item, error)
	DeleteItemFunc func(ctx context.Context, id string) error
}

var _ API = (*StubAPI)(nil)

func (s *StubAPI) ListItems(ctx context.Context) ([]item.Item, error) {
	if s.ListItemsFunc == nil {
		return nil, errors.New("ListItems() not implemented by stub")
	}
	return s.ListItemsFunc(ctx)
}

func (s *StubAPI) GetItem(ctx context.Context, id string) (item.Item, error) {
	if s.GetItemFunc == nil {
		return item.Item{}, errors.New("GetItem() not implemented by stub")
	}
	return s.GetItemFunc(ctx, id)
}

func (s *StubAPI) CreateItem(ctx context.Context, params item.CreateParams) (item.Item, error) {
	if s.CreateItemFunc == nil {
		return item.Item{}, errors.New("CreateItem() not implemented by stub")
	}
	return s.CreateItemFunc(ctx, params)
}

func (s *StubAPI) DeleteItem(ctx context.Context, id string) error {
	if s.DeleteItemFunc == nil {
		return errors.New("DeleteItem() not implemented by stub")
	}
	return s.DeleteItemFunc(ctx, id)
}
