package shared

import (
	"errors"
	"testing"

	"github.com/phrazzld/hunterprice/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Name   *string `json:"name"`
	Amount *int64  `json:"amount"`
}

type taggedPayload struct {
	Name string `json:"name" validate:"required"`
}

type hookedPayload struct {
	Name string `json:"name"`
}

func (p *hookedPayload) Validate() error {
	if p.Name == "" {
		return domain.NewValidationError("name", "is required", nil)
	}
	return nil
}

func TestDecodeStrict(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
		wantErr   error
	}{
		{name: "valid object", body: `{"name":"milk","amount":2}`},
		{name: "null counts as absent", body: `{"name":null}`},
		{name: "unknown key", body: `{"name":"milk","colour":"white"}`, wantField: "colour", wantErr: domain.ErrUnknownField},
		{name: "wrong type", body: `{"amount":"two"}`, wantField: "amount", wantErr: domain.ErrInvalidFormat},
		{name: "fractional integer", body: `{"amount":1.5}`, wantField: "amount", wantErr: domain.ErrInvalidFormat},
		{name: "array body", body: `[1,2]`, wantErr: domain.ErrInvalidFormat},
		{name: "trailing document", body: `{"name":"a"} {"name":"b"}`, wantErr: domain.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload samplePayload
			err := DecodeStrict([]byte(tt.body), &payload)

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	t.Run("uses Validate hook", func(t *testing.T) {
		err := ValidateRequest(&hookedPayload{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))
		assert.NoError(t, ValidateRequest(&hookedPayload{Name: "x"}))
	})

	t.Run("falls back to struct tags", func(t *testing.T) {
		assert.Error(t, ValidateRequest(&taggedPayload{}))
		assert.NoError(t, ValidateRequest(&taggedPayload{Name: "x"}))
	})
}
