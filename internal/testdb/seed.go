package testdb

import (
	"context"
	"testing"
	"time"

	"github.com/phrazzld/hunterprice/internal/domain"
	"github.com/phrazzld/hunterprice/internal/platform/sqlstore"
	"github.com/phrazzld/hunterprice/internal/store"
	"github.com/stretchr/testify/require"
)

// TestPasswordHash is stored for seeded users. It is not a valid bcrypt hash;
// nothing in the service compares passwords.
const TestPasswordHash = "$2a$10$seeded.test.user.hash.not.for.login"

// CreateUser inserts a user with the given email and returns it with its id.
func CreateUser(t *testing.T, db store.DBTX, email string) *domain.User {
	t.Helper()

	user := &domain.User{
		Name:         "user " + email,
		Email:        email,
		PasswordHash: TestPasswordHash,
	}
	require.NoError(t, sqlstore.NewUserStore(db, nil).Create(context.Background(), user),
		"Failed to seed user")
	return user
}

// CreateProduct inserts a product and returns it with its id.
func CreateProduct(t *testing.T, db store.DBTX, name string, amount int64) *domain.Product {
	t.Helper()

	product := domain.NewProduct(name, name+" description", "pcs", amount)
	require.NoError(t, sqlstore.NewProductStore(db, nil).Create(context.Background(), product),
		"Failed to seed product")
	return product
}

// CreateList inserts a list for owner, associates the given products and
// returns it with its products loaded.
func CreateList(
	t *testing.T,
	db store.DBTX,
	owner int64,
	name string,
	products ...*domain.Product,
) *domain.List {
	t.Helper()

	ctx := context.Background()
	created := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	list, err := domain.NewList(owner, name, name+" description", &created, time.Now())
	require.NoError(t, err, "Failed to build list")

	lists := sqlstore.NewListStore(db, nil)
	require.NoError(t, lists.Create(ctx, list), "Failed to seed list")

	ids := make([]int64, 0, len(products))
	loaded := make([]domain.Product, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
		loaded = append(loaded, *p)
	}
	require.NoError(t, lists.ReplaceProducts(ctx, list.ID, ids), "Failed to seed list products")
	list.SetProducts(loaded)
	return list
}
