package wishlist

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/urbx/storefront/internal/catalog"
	"github.com/urbx/storefront/internal/storage"
)

const persistTimeout = 5 * time.Second

// Store keeps wishlist membership as an ordered set of product snapshots.
// Every toggle overwrites the serialized set in the key-value slot. Loading
// treats an absent or unparseable value as an empty wishlist.
type Store struct {
	kv     storage.KV
	key    string
	loaded bool
	items  []catalog.Product
}

func New(kv storage.KV, key string) *Store {
	return &Store{kv: kv, key: key}
}

func (s *Store) load(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true

	value, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		slog.Warn("wishlist_load_failed", "key", s.key, "error", err)
		return
	}
	if !ok {
		return
	}
	var items []catalog.Product
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		slog.Warn("wishlist_parse_failed", "key", s.key, "error", err)
		return
	}
	s.items = items
}

// Toggle adds the product when absent and removes it when present, then
// persists the whole set. The caller never sees a persistence failure: the
// in-memory toggle stands even if the write fails.
func (s *Store) Toggle(ctx context.Context, p catalog.Product) (added bool) {
	s.load(ctx)

	for i, item := range s.items {
		if item.ID == p.ID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return false
		}
	}
	s.items = append(s.items, p)
	s.persist()
	return true
}

func (s *Store) IsMember(ctx context.Context, productID int) bool {
	s.load(ctx)
	for _, item := range s.items {
		if item.ID == productID {
			return true
		}
	}
	return false
}

func (s *Store) Items(ctx context.Context) []catalog.Product {
	s.load(ctx)
	out := make([]catalog.Product, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) persist() {
	data, err := json.Marshal(s.items)
	if err != nil {
		slog.Error("wishlist_marshal_failed", "key", s.key, "error", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		slog.Warn("wishlist_persist_failed", "key", s.key, "error", err)
	}
}
