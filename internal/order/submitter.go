package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urbx/storefront/internal/cart"
	"github.com/urbx/storefront/internal/models"
	"github.com/urbx/storefront/internal/payment"
)

const (
	FreeShippingThreshold = 100.0
	ShippingFee           = 15.0
)

var ErrEmptyCart = errors.New("no items in cart")

type CheckoutForm struct {
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostCode      string `json:"post_code"`
	Country       string `json:"country"`
	PaymentMethod string `json:"payment_method"`
}

type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// Validate checks the required contact and address fields. Country and
// payment method fall back to defaults instead.
func (f CheckoutForm) Validate() error {
	required := []struct {
		name, value string
	}{
		{"email", f.Email},
		{"first_name", f.FirstName},
		{"last_name", f.LastName},
		{"address", f.Address},
		{"city", f.City},
		{"state", f.State},
		{"post_code", f.PostCode},
	}
	var missing []string
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

func (f *CheckoutForm) applyDefaults() {
	if f.Country == "" {
		f.Country = "United States"
	}
	if f.PaymentMethod == "" {
		f.PaymentMethod = "card"
	}
}

// ShippingFor waives the fee once the subtotal clears the threshold.
func ShippingFor(subtotal float64) float64 {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return ShippingFee
}

func Subtotal(lines []cart.Line) float64 {
	var total float64
	for _, l := range lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

type Submitter struct {
	Store    Store
	Payments payment.Authorizer
}

// Submit validates locally, authorizes payment, then persists the order and
// its denormalized line items. On any failure the cart lines are untouched
// so the caller can retry.
func (s *Submitter) Submit(ctx context.Context, form CheckoutForm, lines []cart.Line) (*models.Order, []models.OrderItem, error) {
	if err := form.Validate(); err != nil {
		return nil, nil, err
	}
	if len(lines) == 0 {
		return nil, nil, ErrEmptyCart
	}
	form.applyDefaults()

	subtotal := Subtotal(lines)
	shipping := ShippingFor(subtotal)
	total := subtotal + shipping

	if err := s.Payments.Authorize(ctx, total); err != nil {
		return nil, nil, fmt.Errorf("payment authorization: %w", err)
	}

	o := &models.Order{
		Email:         form.Email,
		FirstName:     form.FirstName,
		LastName:      form.LastName,
		Address:       form.Address,
		City:          form.City,
		State:         form.State,
		PostCode:      form.PostCode,
		Country:       form.Country,
		PaymentMethod: form.PaymentMethod,
		Subtotal:      subtotal,
		Shipping:      shipping,
		Total:         total,
	}

	items := make([]models.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, models.OrderItem{
			ProductID:       l.ProductID,
			ProductName:     l.Name,
			ProductImage:    l.Image,
			ProductCategory: l.Category,
			Price:           l.Price,
			Quantity:        l.Quantity,
			Size:            optional(l.Size),
			Color:           optional(l.Color),
		})
	}

	if err := s.Store.CreateOrder(ctx, o, items); err != nil {
		return nil, nil, err
	}
	return o, items, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
