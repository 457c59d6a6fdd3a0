package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/urbx/storefront/internal/cart"
	"github.com/urbx/storefront/internal/storage"
	"github.com/urbx/storefront/internal/wishlist"
)

const (
	CookieName   = "session_id"
	contextKey   = "session"
	cookieMaxAge = 30 * 24 * time.Hour
	wishlistKey  = "wishlist"
)

// State is the per-session application context: one logical actor owning the
// cart and wishlist, mutated synchronously within each request.
type State struct {
	ID       string
	Cart     *cart.Cart
	Wishlist *wishlist.Store
}

// Manager hands out session state keyed by cookie. The registry itself is
// guarded; the state of a single session is never mutated concurrently.
type Manager struct {
	mu       sync.Mutex
	kv       storage.KV
	sessions map[string]*State
}

func NewManager(kv storage.KV) *Manager {
	return &Manager{
		kv:       kv,
		sessions: make(map[string]*State),
	}
}

func (m *Manager) Get(id string) *State {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s
	}
	s := &State{
		ID:       id,
		Cart:     cart.New(),
		Wishlist: wishlist.New(m.kv, wishlistKey+":"+id),
	}
	m.sessions[id] = s
	return s
}

// Middleware resolves or creates the session cookie and attaches the session
// state to the request context.
func (m *Manager) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var id string
		if ck, err := c.Cookie(CookieName); err == nil && ck.Value != "" {
			id = ck.Value
		} else {
			id = uuid.NewString()
			c.SetCookie(&http.Cookie{
				Name:     CookieName,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				Expires:  time.Now().Add(cookieMaxAge),
			})
		}
		Attach(c, m.Get(id))
		return next(c)
	}
}

// Attach binds session state to an echo context.
func Attach(c echo.Context, s *State) {
	c.Set(contextKey, s)
}

func FromContext(c echo.Context) *State {
	if s, ok := c.Get(contextKey).(*State); ok {
		return s
	}
	return nil
}
