package admin

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/urbx/storefront/internal/models"
	"github.com/urbx/storefront/internal/order"
)

func TestCheckCredentials(t *testing.T) {
	require.True(t, CheckCredentials("Admin", "12345678"))
	require.False(t, CheckCredentials("admin", "12345678"))
	require.False(t, CheckCredentials("Admin", "wrong"))
	require.False(t, CheckCredentials("", ""))
}

func initTestStore(t *testing.T) *order.GormStore {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return &order.GormStore{DB: db}
}

func TestOrdersJoinsItems(t *testing.T) {
	store := initTestStore(t)
	ctx := context.Background()

	o := &models.Order{
		Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace",
		Address: "123 Main Street", City: "London", State: "LDN",
		PostCode: "E1 6AN", Country: "United Kingdom", PaymentMethod: "card",
		Subtotal: 118, Shipping: 0, Total: 118,
	}
	items := []models.OrderItem{
		{ProductID: 5, ProductName: "Urban Socks", ProductImage: "/assets/socks-black.jpg", ProductCategory: "Socks", Price: 29, Quantity: 3},
		{ProductID: 1, ProductName: "Urban Black Tee", ProductImage: "/assets/tshirt-black.jpg", ProductCategory: "T-Shirts", Price: 89, Quantity: 1},
	}
	require.NoError(t, store.CreateOrder(ctx, o, items))

	v := &Viewer{Store: store}
	views, err := v.Orders(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, o.ID, views[0].ID)
	require.Len(t, views[0].Items, 2)
	require.Equal(t, 4, views[0].ItemCount)
}

func TestOrdersEmptyStore(t *testing.T) {
	v := &Viewer{Store: initTestStore(t)}

	views, err := v.Orders(context.Background())
	require.NoError(t, err)
	require.Empty(t, views)
}
