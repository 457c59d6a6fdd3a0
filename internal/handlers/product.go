package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/urbx/storefront/internal/catalog"
	"github.com/urbx/storefront/internal/logging"
	"github.com/urbx/storefront/internal/util"
)

type ProductHandler struct {
	Catalog *catalog.Catalog
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Error("get_product_failed", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	product, ok := h.Catalog.ByID(id)
	if !ok {
		l.Warn("get_product_failed", "status", 404, "product_id", id)
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)

	all := h.Catalog.All()
	if category := c.QueryParam("category"); category != "" {
		filtered := all[:0]
		for _, p := range all {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		all = filtered
	}

	items := util.Slice(all, page, size)
	_, limit := util.Calculate(page, size)
	total := len(all)

	return c.JSON(http.StatusOK, map[string]any{
		"data": items,
		"meta": map[string]any{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + limit - 1) / limit,
		},
	})
}

func (h *ProductHandler) GetCategories(c echo.Context) error {
	names, grouped := h.Catalog.ByCategory()

	type categoryGroup struct {
		Name     string            `json:"name"`
		Products []catalog.Product `json:"products"`
	}
	groups := make([]categoryGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, categoryGroup{Name: name, Products: grouped[name]})
	}
	return c.JSON(http.StatusOK, map[string]any{"categories": groups})
}
