package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type nopKV struct{}

func (nopKV) Get(ctx context.Context, key string) (string, bool, error) { return "", false, nil }
func (nopKV) Set(ctx context.Context, key, value string) error          { return nil }

func TestMiddlewareIssuesCookie(t *testing.T) {
	m := NewManager(nopKV{})
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.Middleware(func(c echo.Context) error {
		require.NotNil(t, FromContext(c))
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, CookieName, cookies[0].Name)
	require.NotEmpty(t, cookies[0].Value)
}

func TestMiddlewareReusesState(t *testing.T) {
	m := NewManager(nopKV{})
	e := echo.New()

	var first, second *State
	handler := m.Middleware(func(c echo.Context) error {
		if first == nil {
			first = FromContext(c)
		} else {
			second = FromContext(c)
		}
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "abc"})
	require.NoError(t, handler(e.NewContext(req, httptest.NewRecorder())))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "abc"})
	require.NoError(t, handler(e.NewContext(req, httptest.NewRecorder())))

	require.NotNil(t, first)
	require.Same(t, first, second)
}

func TestDistinctSessionsGetDistinctCarts(t *testing.T) {
	m := NewManager(nopKV{})

	a := m.Get("a")
	b := m.Get("b")
	require.NotSame(t, a.Cart, b.Cart)
	require.Same(t, a, m.Get("a"))
}
