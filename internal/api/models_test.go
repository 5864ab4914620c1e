package api

import (
	"errors"
	"testing"
	"time"

	"github.com/phrazzld/hunterprice/internal/api/shared"
	"github.com/phrazzld/hunterprice/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	want := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "rfc3339", input: `"2024-03-01T12:30:00Z"`, want: want},
		{name: "rfc3339 with offset", input: `"2024-03-01T14:30:00+02:00"`, want: want},
		{name: "naive iso", input: `"2024-03-01T12:30:00"`, want: want},
		{name: "space separated", input: `"2024-03-01 12:30:00"`, want: want},
		{name: "response layout", input: `"24-03-01T12:30:00"`, want: want},
		{name: "number", input: `1709296200`, wantErr: true},
		{name: "garbage", input: `"yesterday"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			err := ts.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				var verr *domain.ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, "creation_time", verr.Field)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(ts.Time), "got %s", ts.Time)
		})
	}
}

func TestUpdateListRequest_ToListUpdate(t *testing.T) {
	t.Run("products present", func(t *testing.T) {
		var req UpdateListRequest
		require.NoError(t, shared.DecodeStrict([]byte(`{"name":"weekly","products":[3,1]}`), &req))

		update := req.ToListUpdate()
		assert.True(t, update.ReplaceProducts)
		assert.Equal(t, []int64{3, 1}, update.ProductIDs)
		require.NotNil(t, update.Name)
		assert.Equal(t, "weekly", *update.Name)
		assert.Nil(t, update.Description)
	})

	t.Run("empty products clears the association", func(t *testing.T) {
		var req UpdateListRequest
		require.NoError(t, shared.DecodeStrict([]byte(`{"products":[]}`), &req))

		update := req.ToListUpdate()
		assert.True(t, update.ReplaceProducts)
		assert.Empty(t, update.ProductIDs)
	})

	t.Run("null products leaves the association", func(t *testing.T) {
		var req UpdateListRequest
		require.NoError(t, shared.DecodeStrict([]byte(`{"products":null,"description":"x"}`), &req))

		update := req.ToListUpdate()
		assert.False(t, update.ReplaceProducts)
		require.NotNil(t, update.Description)
	})

	t.Run("creation time", func(t *testing.T) {
		var req UpdateListRequest
		require.NoError(t, shared.DecodeStrict([]byte(`{"creation_time":"2024-03-01T12:30:00Z"}`), &req))

		update := req.ToListUpdate()
		require.NotNil(t, update.CreationTime)
		assert.Equal(t, 2024, update.CreationTime.Year())
	})
}
