package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/urbx/storefront/internal/handlers"
	"github.com/urbx/storefront/internal/session"
)

type Deps struct {
	Sessions        *session.Manager
	ProductHandler  *handlers.ProductHandler
	CartHandler     *handlers.CartHandler
	WishlistHandler *handlers.WishlistHandler
	CheckoutHandler *handlers.CheckoutHandler
	AdminHandler    *handlers.AdminHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	products := v1.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	v1.GET("/categories", d.ProductHandler.GetCategories)

	shop := v1.Group("", d.Sessions.Middleware)

	shop.GET("/cart", d.CartHandler.GetCart)
	shop.POST("/cart", d.CartHandler.AddToCart)
	shop.PATCH("/cart", d.CartHandler.UpdateQuantity)
	shop.DELETE("/cart/item", d.CartHandler.RemoveFromCart)
	shop.DELETE("/cart", d.CartHandler.ClearCart)

	shop.GET("/wishlist", d.WishlistHandler.GetWishlist)
	shop.POST("/wishlist/toggle", d.WishlistHandler.Toggle)
	shop.POST("/wishlist/cart", d.WishlistHandler.AddAllToCart)

	shop.POST("/checkout", d.CheckoutHandler.Checkout)

	adminGroup := v1.Group("/admin")
	adminGroup.POST("/login", d.AdminHandler.Login)
	adminGroup.GET("/orders", d.AdminHandler.GetOrders, d.AdminHandler.RequireAdmin)
}
