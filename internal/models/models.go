package models

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"  json:"id"`
	Email         string    `gorm:"not null"              json:"email"`
	FirstName     string    `gorm:"not null"              json:"first_name"`
	LastName      string    `gorm:"not null"              json:"last_name"`
	Address       string    `gorm:"not null"              json:"address"`
	City          string    `gorm:"not null"              json:"city"`
	State         string    `gorm:"not null"              json:"state"`
	PostCode      string    `gorm:"not null"              json:"post_code"`
	Country       string    `gorm:"not null"              json:"country"`
	PaymentMethod string    `gorm:"not null"              json:"payment_method"`
	Subtotal      float64   `gorm:"not null"              json:"subtotal"`
	Shipping      float64   `gorm:"not null"              json:"shipping"`
	Total         float64   `gorm:"not null"              json:"total"`
	CreatedAt     time.Time `gorm:"index;not null"        json:"created_at"`
}

type OrderItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID         uuid.UUID `gorm:"type:uuid;index;not null" json:"order_id"`
	ProductID       int       `gorm:"not null"             json:"product_id"`
	ProductName     string    `gorm:"not null"             json:"product_name"`
	ProductImage    string    `gorm:"not null"             json:"product_image"`
	ProductCategory string    `gorm:"not null"             json:"product_category"`
	Price           float64   `gorm:"not null"             json:"price"`
	Quantity        int       `gorm:"not null"             json:"quantity"`
	Size            *string   `json:"size"`
	Color           *string   `json:"color"`
}

type KVEntry struct {
	Key   string `gorm:"primaryKey;column:key" json:"key"`
	Value string `gorm:"not null"              json:"value"`
}
