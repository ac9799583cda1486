package cart

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"grubstop.com/app/internal/storage"
)

// Storage keys the menu page saves the cart under. The newer key wins; the
// legacy key is still read for carts saved before the rename.
const (
	KeySaved  = "savedCart"
	KeyLegacy = "cart"
)

type Loader struct {
	store storage.Store
	log   *slog.Logger
}

func NewLoader(store storage.Store, log *slog.Logger) *Loader {
	return &Loader{store: store, log: log}
}

// Load reads the saved cart, preferring KeySaved and falling back to
// KeyLegacy. Missing or unparseable data is never an error for the caller:
// the effective cart is empty and the page renders zeros.
func (l *Loader) Load(ctx context.Context) Cart {
	raw, key, err := l.read(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			l.log.Warn("cart read failed", "err", err)
		}
		return Cart{}
	}
	if strings.TrimSpace(raw) == "" {
		return Cart{}
	}

	items, err := decode([]byte(raw))
	if err != nil {
		l.log.Warn("cart payload unparseable", "key", key, "err", err)
		return Cart{}
	}
	return items
}

func (l *Loader) read(ctx context.Context) (raw, key string, err error) {
	v, err := l.store.Get(ctx, KeySaved)
	if err == nil {
		return v, KeySaved, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return "", "", err
	}

	v, err = l.store.Get(ctx, KeyLegacy)
	if err != nil {
		return "", "", err
	}
	return v, KeyLegacy, nil
}
