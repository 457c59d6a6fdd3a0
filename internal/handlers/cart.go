package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/urbx/storefront/internal/cart"
	"github.com/urbx/storefront/internal/catalog"
	"github.com/urbx/storefront/internal/events"
	"github.com/urbx/storefront/internal/logging"
	"github.com/urbx/storefront/internal/session"
)

type CartHandler struct {
	Catalog  *catalog.Catalog
	Producer *events.Producer
}

func cartPayload(c *cart.Cart) map[string]any {
	return map[string]any{
		"items":    c.Lines(),
		"count":    c.Count(),
		"subtotal": c.Subtotal(),
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	sess := session.FromContext(c)
	return c.JSON(http.StatusOK, cartPayload(sess.Cart))
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")
	sess := session.FromContext(c)

	var req struct {
		ProductID int    `json:"product_id"`
		Size      string `json:"size"`
		Color     string `json:"color"`
	}
	if err := c.Bind(&req); err != nil {
		l.Error("add_to_cart_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, ok := h.Catalog.ByID(req.ProductID)
	if !ok {
		l.Warn("add_to_cart_failed", "status", 404, "product_id", req.ProductID)
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	line, err := sess.Cart.Add(product, catalog.Variant{Size: req.Size, Color: req.Color})
	if err != nil {
		if errors.Is(err, catalog.ErrSizeRequired) || errors.Is(err, catalog.ErrColorRequired) {
			l.Warn("add_to_cart_failed", "status", 400, "product_id", req.ProductID, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	publish(c, h.Producer, events.TopicCart, map[string]any{
		"type":       "cart_item_added",
		"product_id": line.ProductID,
		"size":       line.Size,
		"color":      line.Color,
		"quantity":   line.Quantity,
	})
	return c.JSON(http.StatusOK, line)
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_quantity")
	sess := session.FromContext(c)

	var req struct {
		ProductID int    `json:"product_id"`
		Size      string `json:"size"`
		Color     string `json:"color"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Error("update_quantity_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	key := cart.Key{ProductID: req.ProductID, Size: req.Size, Color: req.Color}
	if !sess.Cart.SetQuantity(key, req.Quantity) {
		l.Warn("update_quantity_failed", "status", 404, "product_id", req.ProductID)
		return echo.NewHTTPError(http.StatusNotFound, "cart line not found")
	}

	publish(c, h.Producer, events.TopicCart, map[string]any{
		"type":       "cart_quantity_set",
		"product_id": req.ProductID,
		"size":       req.Size,
		"color":      req.Color,
		"quantity":   req.Quantity,
	})
	return c.JSON(http.StatusOK, cartPayload(sess.Cart))
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")
	sess := session.FromContext(c)

	var req struct {
		ProductID int    `json:"product_id"`
		Size      string `json:"size"`
		Color     string `json:"color"`
	}
	if err := c.Bind(&req); err != nil {
		l.Error("remove_from_cart_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	key := cart.Key{ProductID: req.ProductID, Size: req.Size, Color: req.Color}
	if !sess.Cart.Remove(key) {
		l.Warn("remove_from_cart_failed", "status", 404, "product_id", req.ProductID)
		return echo.NewHTTPError(http.StatusNotFound, "cart line not found")
	}

	publish(c, h.Producer, events.TopicCart, map[string]any{
		"type":       "cart_item_removed",
		"product_id": req.ProductID,
		"size":       req.Size,
		"color":      req.Color,
	})
	return c.JSON(http.StatusOK, cartPayload(sess.Cart))
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	sess := session.FromContext(c)
	sess.Cart.Clear()

	publish(c, h.Producer, events.TopicCart, map[string]any{
		"type": "cart_cleared",
	})
	return c.JSON(http.StatusOK, cartPayload(sess.Cart))
}
