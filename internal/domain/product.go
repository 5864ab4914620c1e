package domain

// Product is an entry of the shared product catalog.
type Product struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Unit        string `db:"unit"`
	Amount      int64  `db:"amount"`
}

// NewProduct builds an unsaved product; the store assigns the ID.
func NewProduct(name, description, unit string, amount int64) *Product {
	return &Product{
		Name:        name,
		Description: description,
		Unit:        unit,
		Amount:      amount,
	}
}

// ProductIDs returns the ids of products in order.
func ProductIDs(products []Product) []int64 {
	ids := make([]int64, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}
