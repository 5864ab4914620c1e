package sqlstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/hunterprice/internal/domain"
	"github.com/phrazzld/hunterprice/internal/platform/sqlstore"
	"github.com/phrazzld/hunterprice/internal/store"
	"github.com/phrazzld/hunterprice/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStore(t *testing.T) {
	t.Parallel()
	db := testdb.Open(t)
	users := sqlstore.NewUserStore(db, nil)
	ctx := context.Background()

	t.Run("create assigns id", func(t *testing.T) {
		user := &domain.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "hash"}
		require.NoError(t, users.Create(ctx, user))
		assert.Positive(t, user.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		user := &domain.User{Name: "Other", Email: "alice@example.com", PasswordHash: "hash"}
		err := users.Create(ctx, user)
		assert.ErrorIs(t, err, store.ErrEmailExists)
		assert.True(t, store.IsDuplicateError(err))
	})

	t.Run("missing hash", func(t *testing.T) {
		err := users.Create(ctx, &domain.User{Email: "nohash@example.com"})
		assert.Error(t, err)
	})

	t.Run("get by email", func(t *testing.T) {
		got, err := users.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Alice", got.Name)
		assert.Equal(t, "hash", got.PasswordHash)

		_, err = users.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("list ordered by id", func(t *testing.T) {
		testdb.CreateUser(t, db, "bob@example.com")
		all, err := users.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Less(t, all[0].ID, all[1].ID)
		assert.Equal(t, "bob@example.com", all[1].Email)
	})
}

func TestUserStore_ListEmpty(t *testing.T) {
	t.Parallel()
	db := testdb.Open(t)

	all, err := sqlstore.NewUserStore(db, nil).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestProductStore(t *testing.T) {
	t.Parallel()
	db := testdb.Open(t)
	products := sqlstore.NewProductStore(db, nil)
	ctx := context.Background()

	milk := domain.NewProduct("milk", "whole milk", "l", 2)
	require.NoError(t, products.Create(ctx, milk))
	bread := testdb.CreateProduct(t, db, "bread", 1)
	eggs := testdb.CreateProduct(t, db, "eggs", 12)

	all, err := products.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, *milk, all[0])

	t.Run("get by ids skips missing", func(t *testing.T) {
		got, err := products.GetByIDs(ctx, []int64{eggs.ID, 999, bread.ID})
		require.NoError(t, err)
		assert.Equal(t, []int64{bread.ID, eggs.ID}, domain.ProductIDs(got))
	})

	t.Run("get by no ids", func(t *testing.T) {
		got, err := products.GetByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestListStore(t *testing.T) {
	t.Parallel()
	db := testdb.Open(t)
	lists := sqlstore.NewListStore(db, nil)
	ctx := context.Background()

	alice := testdb.CreateUser(t, db, "alice@example.com")
	bob := testdb.CreateUser(t, db, "bob@example.com")
	milk := testdb.CreateProduct(t, db, "milk", 1)
	bread := testdb.CreateProduct(t, db, "bread", 2)

	created := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)
	list, err := domain.NewList(alice.ID, "groceries", "weekly", &created, time.Now())
	require.NoError(t, err)
	require.NoError(t, lists.Create(ctx, list))
	require.Positive(t, list.ID)

	t.Run("get by owner", func(t *testing.T) {
		got, err := lists.GetByOwner(ctx, alice.ID, list.ID)
		require.NoError(t, err)
		assert.Equal(t, "groceries", got.Name)
		assert.True(t, created.Equal(got.CreationTime), "got %s", got.CreationTime)
		assert.False(t, got.ProductsLoaded)
	})

	t.Run("other owner cannot see list", func(t *testing.T) {
		_, err := lists.GetByOwner(ctx, bob.ID, list.ID)
		assert.ErrorIs(t, err, store.ErrListNotFound)
	})

	t.Run("list by owner", func(t *testing.T) {
		testdb.CreateList(t, db, bob.ID, "bob's")

		own, err := lists.ListByOwner(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, own, 1)
		assert.Equal(t, list.ID, own[0].ID)

		none, err := lists.ListByOwner(ctx, 999)
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	t.Run("replace products", func(t *testing.T) {
		require.NoError(t, lists.ReplaceProducts(ctx, list.ID, []int64{bread.ID, milk.ID}))
		got, err := lists.Products(ctx, list.ID)
		require.NoError(t, err)
		assert.Equal(t, []int64{milk.ID, bread.ID}, domain.ProductIDs(got))

		require.NoError(t, lists.ReplaceProducts(ctx, list.ID, []int64{bread.ID}))
		got, err = lists.Products(ctx, list.ID)
		require.NoError(t, err)
		assert.Equal(t, []int64{bread.ID}, domain.ProductIDs(got))

		require.NoError(t, lists.ReplaceProducts(ctx, list.ID, nil))
		got, err = lists.Products(ctx, list.ID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("replace with unknown product", func(t *testing.T) {
		err := lists.ReplaceProducts(ctx, list.ID, []int64{12345})
		assert.ErrorIs(t, err, store.ErrProductNotFound)
	})

	t.Run("update", func(t *testing.T) {
		name := "renamed"
		list.Apply(domain.ListUpdate{Name: &name})
		require.NoError(t, lists.Update(ctx, list))

		got, err := lists.GetByOwner(ctx, alice.ID, list.ID)
		require.NoError(t, err)
		assert.Equal(t, "renamed", got.Name)
		assert.Equal(t, "weekly", got.Description)
	})

	t.Run("update missing list", func(t *testing.T) {
		ghost := *list
		ghost.ID = 999
		assert.ErrorIs(t, lists.Update(ctx, &ghost), store.ErrListNotFound)
	})
}

func TestListStore_CreateUnknownOwner(t *testing.T) {
	t.Parallel()
	db := testdb.Open(t)

	list, err := domain.NewList(42, "orphan", "", nil, time.Now())
	require.NoError(t, err)

	err = sqlstore.NewListStore(db, nil).Create(context.Background(), list)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestListStore_ReplaceProductsRollsBack(t *testing.T) {
	t.Parallel()
	db := testdb.Open(t)
	ctx := context.Background()

	owner := testdb.CreateUser(t, db, "carol@example.com")
	milk := testdb.CreateProduct(t, db, "milk", 1)
	list := testdb.CreateList(t, db, owner.ID, "kept", milk)
	lists := sqlstore.NewListStore(db, nil)

	err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sqlx.Tx) error {
		return lists.WithTx(tx).ReplaceProducts(ctx, list.ID, []int64{404})
	})
	require.ErrorIs(t, err, store.ErrProductNotFound)

	got, err := lists.Products(ctx, list.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{milk.ID}, domain.ProductIDs(got))
}

func TestMigrator(t *testing.T) {
	t.Parallel()
	db := testdb.Open(t)
	ctx := context.Background()

	migrator, err := sqlstore.NewMigrator(db, nil)
	require.NoError(t, err)

	version, err := migrator.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	require.NoError(t, migrator.Run(ctx, sqlstore.MigrateStatus))
	require.NoError(t, migrator.Run(ctx, sqlstore.MigrateUp))

	require.NoError(t, migrator.Run(ctx, sqlstore.MigrateDown))
	version, err = migrator.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)

	assert.Error(t, migrator.Run(ctx, "sideways"))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	_, err := sqlstore.Open(context.Background(), "oracle", "whatever", 1)
	assert.ErrorContains(t, err, "unsupported database driver")
}
