package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/urbx/storefront/internal/admin"
	"github.com/urbx/storefront/internal/logging"
)

const (
	adminCookieName = "adminToken"
	adminTokenTTL   = time.Hour
)

type AdminHandler struct {
	Viewer    *admin.Viewer
	JWTSecret []byte
}

func (h *AdminHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.login")

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Error("admin_login_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if !admin.CheckCredentials(req.Username, req.Password) {
		l.Warn("admin_login_failed", "status", 401, "username", req.Username)
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
	}

	exp := time.Now().Add(adminTokenTTL)
	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": "admin",
		"exp":  exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.JWTSecret)
	if err != nil {
		l.Error("admin_login_failed", "status", 500, "reason", "cannot sign token", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot sign token")
	}

	c.SetCookie(&http.Cookie{
		Name:     adminCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Expires:  exp,
	})
	l.Info("admin_login_success")
	return c.JSON(http.StatusOK, map[string]any{"status": "ok"})
}

// RequireAdmin gates the read-only order listing behind the admin cookie.
func (h *AdminHandler) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(adminCookieName)
		if err != nil || cookie.Value == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing admin token")
		}

		token, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return h.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid admin token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["role"] != "admin" {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid admin token")
		}
		return next(c)
	}
}

func (h *AdminHandler) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.get_orders")

	views, err := h.Viewer.Orders(ctx)
	if err != nil {
		l.Error("admin_get_orders_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch orders")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"orders": views,
		"count":  len(views),
	})
}
