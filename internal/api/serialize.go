package api

import (
	"time"

	"github.com/phrazzld/hunterprice/internal/domain"
)

// TimestampLayout is the layout of timestamps in responses (YY-MM-DDTHH:MM:SS, UTC).
const TimestampLayout = "06-01-02T15:04:05"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// UserResponse is the JSON representation of a user. The password hash is
// never serialized.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ListResponse is the JSON representation of a list. Products is present
// only when the list's association was loaded.
type ListResponse struct {
	ID           int64              `json:"id"`
	Owner        int64              `json:"owner"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	CreationTime string             `json:"creation_time"`
	Products     *[]ProductResponse `json:"products,omitempty"`
}

// ProductResponse is the JSON representation of a product.
type ProductResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
	Amount      int64  `json:"amount"`
}

// NewUserResponse converts a user.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

// NewUserResponses converts users; the result is never nil.
func NewUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = NewUserResponse(&users[i])
	}
	return out
}

// NewListResponse converts a list and, if loaded, its products.
func NewListResponse(l *domain.List) ListResponse {
	resp := ListResponse{
		ID:           l.ID,
		Owner:        l.Owner,
		Name:         l.Name,
		Description:  l.Description,
		CreationTime: FormatTimestamp(l.CreationTime),
	}
	if l.ProductsLoaded {
		products := NewProductResponses(l.Products)
		resp.Products = &products
	}
	return resp
}

// NewListResponses converts lists; the result is never nil.
func NewListResponses(lists []domain.List) []ListResponse {
	out := make([]ListResponse, len(lists))
	for i := range lists {
		out[i] = NewListResponse(&lists[i])
	}
	return out
}

// NewProductResponse converts a product.
func NewProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Unit:        p.Unit,
		Amount:      p.Amount,
	}
}

// NewProductResponses converts products; the result is never nil.
func NewProductResponses(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = NewProductResponse(&products[i])
	}
	return out
}
