package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/urbx/storefront/internal/models"
)

// Store is the external order store: insert an order with its line items and
// get back assigned identities; read everything back for the admin view.
type Store interface {
	CreateOrder(ctx context.Context, o *models.Order, items []models.OrderItem) error
	ListOrders(ctx context.Context) ([]models.Order, error)
	ListItems(ctx context.Context) ([]models.OrderItem, error)
}

type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) CreateOrder(ctx context.Context, o *models.Order, items []models.OrderItem) error {
	o.ID = uuid.New()
	o.CreatedAt = time.Now().UTC()

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = uuid.New()
			items[i].OrderID = o.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (s *GormStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *GormStore) ListItems(ctx context.Context) ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := s.DB.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	return items, nil
}
