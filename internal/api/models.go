package api

import (
	"encoding/json"
	"time"

	"github.com/phrazzld/hunterprice/internal/domain"
)

// timestampLayouts are the accepted input forms of creation_time, including
// the layout the API itself renders.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	TimestampLayout,
}

// Timestamp is a creation_time value in a request body.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON accepts a string in any of timestampLayouts. Times without a
// zone are taken as UTC.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.NewValidationError("creation_time", "must be a timestamp string", domain.ErrInvalidFormat)
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			ts.Time = t.UTC()
			return nil
		}
	}
	return domain.NewValidationError("creation_time",
		"must be formatted as "+TimestampLayout+" or RFC 3339", domain.ErrInvalidFormat)
}

// timePtr returns the wrapped time, or nil when ts is absent.
func (ts *Timestamp) timePtr() *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.Time
	return &t
}

// CreateListRequest is the body of POST /users/{email}/lists.
// A null value counts as absent.
type CreateListRequest struct {
	Name         *string    `json:"name"`
	Description  *string    `json:"description"`
	CreationTime *Timestamp `json:"creation_time"`

	// Owner is accepted for compatibility and replaced with the resolved user.
	Owner json.RawMessage `json:"owner"`
}

// UpdateListRequest is the body of PUT /users/{email}/lists/{id}.
// A null value counts as absent; id and owner must match the stored list.
type UpdateListRequest struct {
	ID           *int64     `json:"id"`
	Owner        *int64     `json:"owner"`
	Name         *string    `json:"name"`
	Description  *string    `json:"description"`
	CreationTime *Timestamp `json:"creation_time"`
	Products     *[]int64   `json:"products"`
}

// ToListUpdate converts the request into a domain update.
func (req *UpdateListRequest) ToListUpdate() domain.ListUpdate {
	update := domain.ListUpdate{
		ID:           req.ID,
		Owner:        req.Owner,
		Name:         req.Name,
		Description:  req.Description,
		CreationTime: req.CreationTime.timePtr(),
	}
	if req.Products != nil {
		update.ReplaceProducts = true
		update.ProductIDs = append([]int64{}, *req.Products...)
	}
	return update
}

// CreateProductRequest is the body of POST /products.
type CreateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Unit        *string `json:"unit"`
	Amount      *int64  `json:"amount"`
}

// deref returns the pointed-to string, or "" for nil.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
