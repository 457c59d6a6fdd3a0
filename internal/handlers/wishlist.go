package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/urbx/storefront/internal/catalog"
	"github.com/urbx/storefront/internal/events"
	"github.com/urbx/storefront/internal/logging"
	"github.com/urbx/storefront/internal/session"
)

type WishlistHandler struct {
	Catalog  *catalog.Catalog
	Producer *events.Producer
}

func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	ctx := c.Request().Context()
	sess := session.FromContext(c)

	items := sess.Wishlist.Items(ctx)
	return c.JSON(http.StatusOK, map[string]any{
		"items": items,
		"count": len(items),
	})
}

func (h *WishlistHandler) Toggle(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.toggle")
	sess := session.FromContext(c)

	var req struct {
		ProductID int `json:"product_id"`
	}
	if err := c.Bind(&req); err != nil {
		l.Error("wishlist_toggle_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, ok := h.Catalog.ByID(req.ProductID)
	if !ok {
		l.Warn("wishlist_toggle_failed", "status", 404, "product_id", req.ProductID)
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	added := sess.Wishlist.Toggle(ctx, product)

	eventType := "wishlist_item_removed"
	if added {
		eventType = "wishlist_item_added"
	}
	publish(c, h.Producer, events.TopicWishlist, map[string]any{
		"type":       eventType,
		"product_id": product.ID,
	})

	items := sess.Wishlist.Items(ctx)
	return c.JSON(http.StatusOK, map[string]any{
		"added": added,
		"items": items,
		"count": len(items),
	})
}

// AddAllToCart moves every wishlist item into the cart, picking the first
// declared size/color where the product requires a selection.
func (h *WishlistHandler) AddAllToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.add_all_to_cart")
	sess := session.FromContext(c)

	for _, p := range sess.Wishlist.Items(ctx) {
		if _, err := sess.Cart.Add(p, catalog.DefaultVariant(p)); err != nil {
			l.Error("wishlist_add_all_failed", "status", 500, "product_id", p.ID, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "could not add wishlist items to cart")
		}
	}

	publish(c, h.Producer, events.TopicCart, map[string]any{
		"type":  "wishlist_added_to_cart",
		"count": sess.Cart.Count(),
	})
	return c.JSON(http.StatusOK, cartPayload(sess.Cart))
}
