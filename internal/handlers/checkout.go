package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/urbx/storefront/internal/events"
	"github.com/urbx/storefront/internal/logging"
	"github.com/urbx/storefront/internal/order"
	"github.com/urbx/storefront/internal/session"
)

type CheckoutHandler struct {
	Submitter *order.Submitter
	Producer  *events.Producer
}

func (h *CheckoutHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.submit")
	sess := session.FromContext(c)

	var form order.CheckoutForm
	if err := c.Bind(&form); err != nil {
		l.Error("checkout_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	o, items, err := h.Submitter.Submit(ctx, form, sess.Cart.Lines())
	if err != nil {
		var verr *order.ValidationError
		if errors.As(err, &verr) || errors.Is(err, order.ErrEmptyCart) {
			l.Warn("checkout_rejected", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		// Cart stays intact so the user can retry.
		l.Error("checkout_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "there was an error processing your order")
	}

	sess.Cart.Clear()

	publish(c, h.Producer, events.TopicOrder, map[string]any{
		"type":     "order_created",
		"order_id": o.ID.String(),
		"total":    o.Total,
		"items":    len(items),
	})
	l.Info("checkout_success", "order_id", o.ID.String(), "total", o.Total)

	return c.JSON(http.StatusOK, map[string]any{
		"order_id": o.ID,
		"subtotal": o.Subtotal,
		"shipping": o.Shipping,
		"total":    o.Total,
		"items":    items,
	})
}
