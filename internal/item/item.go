// Package item is the CRUD resource served under /api/items.
package item

import (
	"errors"
	"time"
)

const collectionName = "items"

var ErrNotFound = errors.New("item: not found")

// Item is one record of the items collection.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateParams struct {
	Name        string `json:"name" validate:"required,notblank,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

// UpdateParams holds the fields a PUT may replace. Nil fields are left as
// they are.
type UpdateParams struct {
	Name        *string `json:"name" validate:"omitnil,notblank,max=200"`
	Description *string `json:"description" validate:"omitnil,max=2000"`
}
