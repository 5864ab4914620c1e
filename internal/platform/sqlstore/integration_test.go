//go:build integration

package sqlstore_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/hunterprice/internal/domain"
	"github.com/phrazzld/hunterprice/internal/platform/sqlstore"
	"github.com/phrazzld/hunterprice/internal/store"
	"github.com/phrazzld/hunterprice/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres runs a throwaway PostgreSQL container and returns its URL.
func startPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "hunterprice",
				"POSTGRES_PASSWORD": "hunterprice",
				"POSTGRES_DB":       "hunterprice",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	}

	container, err := testcontainers.GenericContainer(ctx, req)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, container)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://hunterprice:hunterprice@%s:%s/hunterprice?sslmode=disable",
		host, port.Port())
}

func TestPostgresStores(t *testing.T) {
	dbURL := testdb.GetTestDatabaseURL()
	if dbURL == "" {
		dbURL = startPostgres(t)
	}
	db := testdb.OpenURL(t, dbURL)
	ctx := context.Background()

	users := sqlstore.NewUserStore(db, nil)
	lists := sqlstore.NewListStore(db, nil)

	email := fmt.Sprintf("pg-%s@example.com", uuid.NewString())
	owner := testdb.CreateUser(t, db, email)
	dup := &domain.User{Email: email, PasswordHash: "hash"}
	assert.ErrorIs(t, users.Create(ctx, dup), store.ErrEmailExists)

	milk := testdb.CreateProduct(t, db, "milk", 1)
	list := testdb.CreateList(t, db, owner.ID, "pg list", milk)

	got, err := lists.GetByOwner(ctx, owner.ID, list.ID)
	require.NoError(t, err)
	assert.True(t, list.CreationTime.Equal(got.CreationTime))

	products, err := lists.Products(ctx, list.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{milk.ID}, domain.ProductIDs(products))

	ghost, err := domain.NewList(owner.ID+1_000_000, "ghost", "", nil, time.Now())
	require.NoError(t, err)
	assert.ErrorIs(t, lists.Create(ctx, ghost), store.ErrInvalidEntity)

	t.Run("failed replacement rolls back", func(t *testing.T) {
		err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sqlx.Tx) error {
			return lists.WithTx(tx).ReplaceProducts(ctx, list.ID, []int64{milk.ID + 1_000_000})
		})
		require.ErrorIs(t, err, store.ErrProductNotFound)

		products, err := lists.Products(ctx, list.ID)
		require.NoError(t, err)
		assert.Equal(t, []int64{milk.ID}, domain.ProductIDs(products))
	})
}
