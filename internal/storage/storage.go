package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: key not found")

// Store is the external key-value store the menu and receipt pages share.
// Values are JSON payloads owned by whoever wrote them; the receipt side
// reads the cart and writes only paid receipts.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
