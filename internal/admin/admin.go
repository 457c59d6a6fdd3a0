package admin

import (
	"context"

	"github.com/google/uuid"

	"github.com/urbx/storefront/internal/models"
	"github.com/urbx/storefront/internal/order"
)

// Fixed credential pair; a literal match, not a real auth boundary.
const (
	adminUsername = "Admin"
	adminPassword = "12345678"
)

func CheckCredentials(username, password string) bool {
	return username == adminUsername && password == adminPassword
}

type OrderView struct {
	models.Order
	Items     []models.OrderItem `json:"items"`
	ItemCount int                `json:"item_count"`
}

// Viewer is the read-only order listing behind the admin panel.
type Viewer struct {
	Store order.Store
}

// Orders returns all orders newest first, each joined with its items.
func (v *Viewer) Orders(ctx context.Context) ([]OrderView, error) {
	orders, err := v.Store.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	items, err := v.Store.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	byOrder := make(map[uuid.UUID][]models.OrderItem, len(orders))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		view := OrderView{Order: o, Items: byOrder[o.ID]}
		for _, item := range view.Items {
			view.ItemCount += item.Quantity
		}
		views = append(views, view)
	}
	return views, nil
}
