package domain

import "time"

// List is a named shopping list owned by a user. Products holds the list's
// associated products and is meaningful only when ProductsLoaded is true.
type List struct {
	ID           int64     `db:"id"`
	Owner        int64     `db:"owner"`
	Name         string    `db:"name"`
	Description  string    `db:"description"`
	CreationTime time.Time `db:"creation_time"`

	Products       []Product `db:"-"`
	ProductsLoaded bool      `db:"-"`
}

// NewList builds a list for owner. A nil creationTime defaults to now.
// A new list has no products, so its (empty) association counts as loaded.
func NewList(owner int64, name, description string, creationTime *time.Time, now time.Time) (*List, error) {
	list := &List{
		Owner:          owner,
		Name:           name,
		Description:    description,
		CreationTime:   now.UTC().Truncate(time.Second),
		Products:       []Product{},
		ProductsLoaded: true,
	}
	if creationTime != nil {
		list.CreationTime = creationTime.UTC()
	}

	if err := list.Validate(); err != nil {
		return nil, err
	}
	return list, nil
}

// Validate checks the invariants the store relies on.
func (l *List) Validate() error {
	if l.Owner <= 0 {
		return NewValidationError("owner", "must reference an existing user", ErrInvalidID)
	}
	if l.CreationTime.IsZero() {
		return NewValidationError("creation_time", "cannot be empty", nil)
	}
	return nil
}

// SetProducts replaces the loaded association.
func (l *List) SetProducts(products []Product) {
	if products == nil {
		products = []Product{}
	}
	l.Products = products
	l.ProductsLoaded = true
}

// ListUpdate is a partial update of a list. Nil fields are left untouched.
// When ReplaceProducts is set, ProductIDs replaces the whole association.
// ID and Owner are immutable; when present they must match the stored list.
type ListUpdate struct {
	ID    *int64
	Owner *int64

	Name         *string
	Description  *string
	CreationTime *time.Time

	ReplaceProducts bool
	ProductIDs      []int64
}

// Apply assigns the scalar fields of u onto l. The product association is
// resolved and replaced by the caller, which has to check product existence.
func (l *List) Apply(u ListUpdate) {
	if u.Name != nil {
		l.Name = *u.Name
	}
	if u.Description != nil {
		l.Description = *u.Description
	}
	if u.CreationTime != nil {
		l.CreationTime = u.CreationTime.UTC()
	}
}

// CheckImmutable verifies that u does not change the list's id or owner.
func (l *List) CheckImmutable(u ListUpdate) error {
	if u.ID != nil && *u.ID != l.ID {
		return NewValidationError("id", "cannot be changed", ErrImmutableField)
	}
	if u.Owner != nil && *u.Owner != l.Owner {
		return NewValidationError("owner", "cannot be changed", ErrImmutableField)
	}
	return nil
}
