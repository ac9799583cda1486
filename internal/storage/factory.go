package storage

import (
	"context"
	"fmt"
	"os"
)

type FactoryResult struct {
	Driver string
	Store  Store
}

// FromEnv builds the Store selected by CART_STORE (memory | redis | mysql).
func FromEnv(ctx context.Context) (FactoryResult, error) {
	driver := os.Getenv("CART_STORE")
	if driver == "" {
		driver = "memory"
	}

	switch driver {
	case "memory":
		return FactoryResult{Driver: "memory", Store: NewMemory()}, nil

	case "redis":
		addr := envOr("REDIS_ADDR", "localhost:6379")
		s, err := NewRedis(ctx, addr, os.Getenv("REDIS_PASSWORD"))
		if err != nil {
			return FactoryResult{}, err
		}
		return FactoryResult{Driver: "redis", Store: s}, nil

	case "mysql":
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			return FactoryResult{}, fmt.Errorf("mysql store config missing: DB_DSN required")
		}
		s, err := NewMySQL(dsn)
		if err != nil {
			return FactoryResult{}, err
		}
		return FactoryResult{Driver: "mysql", Store: s}, nil

	default:
		return FactoryResult{}, fmt.Errorf("unknown CART_STORE: %s", driver)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
