package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "generic error", err: errors.New("some error"), expected: false},
		{name: "ErrNotFound", err: ErrNotFound, expected: true},
		{name: "wrapped ErrNotFound", err: fmt.Errorf("failed: %w", ErrNotFound), expected: true},
		{name: "ErrUserNotFound", err: ErrUserNotFound, expected: true},
		{name: "ErrListNotFound", err: ErrListNotFound, expected: true},
		{name: "wrapped ErrProductNotFound", err: fmt.Errorf("resolve: %w", ErrProductNotFound), expected: true},
		{name: "duplicate is not not-found", err: ErrEmailExists, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(ErrDuplicate))
	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("create user: %w", ErrEmailExists)))
	assert.False(t, IsDuplicateError(ErrNotFound))
	assert.False(t, IsDuplicateError(nil))
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStoreError("list", "update", "failed to update list", cause)

	assert.Equal(t, "update operation on list failed: failed to update list: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewStoreError("product", "create", "nothing inserted", nil)
	assert.Equal(t, "create operation on product failed: nothing inserted", bare.Error())
	assert.Nil(t, bare.Unwrap())
}
