package item

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/ferdiebergado/boring/internal/platform/filestore"
)

// Repository stores items. Lookups are linear scans in insertion order.
type Repository interface {
	List(ctx context.Context) ([]Item, error)
	Find(ctx context.Context, id string) (Item, error)
	Create(ctx context.Context, item Item) (Item, error)
	Update(ctx context.Context, id string, change func(Item) Item) (Item, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type repository struct {
	store *filestore.Collection[Item]
}

var _ Repository = (*repository)(nil)

// NewRepository returns a repository backed by <dataDir>/items.json.
func NewRepository(dataDir string) *repository {
	return &repository{
		store: filestore.NewCollection[Item](dataDir, collectionName),
	}
}

func (r *repository) List(ctx context.Context) ([]Item, error) {
	items, err := r.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (r *repository) Find(ctx context.Context, id string) (Item, error) {
	items, err := r.store.Read(ctx)
	if err != nil {
		return Item{}, fmt.Errorf("find item %s: %w", id, err)
	}

	i := indexOf(items, id)
	if i < 0 {
		return Item{}, ErrNotFound
	}
	return items[i], nil
}

func (r *repository) Create(ctx context.Context, item Item) (Item, error) {
	err := r.store.Mutate(ctx, func(items []Item) ([]Item, bool, error) {
		return append(items, item), true, nil
	})
	if err != nil {
		return Item{}, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

func (r *repository) Update(ctx context.Context, id string, change func(Item) Item) (Item, error) {
	var updated Item
	err := r.store.Mutate(ctx, func(items []Item) ([]Item, bool, error) {
		i := indexOf(items, id)
		if i < 0 {
			return nil, false, ErrNotFound
		}

		updated = change(items[i])
		updated.ID = items[i].ID
		updated.CreatedAt = items[i].CreatedAt
		items[i] = updated
		return items, true, nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Item{}, err
		}
		return Item{}, fmt.Errorf("update item %s: %w", id, err)
	}
	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id string) (bool, error) {
	var removed bool
	err := r.store.Mutate(ctx, func(items []Item) ([]Item, bool, error) {
		i := indexOf(items, id)
		if i < 0 {
			return items, false, nil
		}

		removed = true
		return slices.Delete(items, i, i+1), true, nil
	})
	if err != nil {
		return false, fmt.Errorf("delete item %s: %w", id, err)
	}
	return removed, nil
}

func indexOf(items []Item, id string) int {
	return slices.IndexFunc(items, func(it Item) bool {
		return it.ID == id
	})
}
