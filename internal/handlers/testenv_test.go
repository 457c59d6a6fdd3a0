package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/urbx/storefront/internal/cart"
	"github.com/urbx/storefront/internal/catalog"
	"github.com/urbx/storefront/internal/session"
	"github.com/urbx/storefront/internal/wishlist"
)

type memKV struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemKV() *memKV {
	return &memKV{values: make(map[string]string)}
}

func (m *memKV) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memKV) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

type testEnv struct {
	T       *testing.T
	E       *echo.Echo
	Catalog *catalog.Catalog
	KV      *memKV
	Sess    *session.State
}

func newTestEnv(t *testing.T) *testEnv {
	kv := newMemKV()
	return &testEnv{
		T:       t,
		E:       echo.New(),
		Catalog: catalog.New(),
		KV:      kv,
		Sess: &session.State{
			ID:       "test-session",
			Cart:     cart.New(),
			Wishlist: wishlist.New(kv, "wishlist:test-session"),
		},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body any) (*httptest.ResponseRecorder, echo.Context) {
	var reader bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			env.T.Fatalf("marshal request body: %v", err)
		}
		reader = *bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, &reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	session.Attach(c, env.Sess)
	return rec, c
}
