// seedcart writes a sample cart into the configured store so the receipt
// page has something to render during development:
//
//	go run ./cmd/tools/seedcart
//	go run ./cmd/tools/seedcart -key cart -items '[{"name":"Soda","quantity":3,"price":1.25}]'
package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"grubstop.com/app/internal/modules/cart"
	"grubstop.com/app/internal/storage"
)

const sampleCart = `[
  {"name": "Burger", "quantity": 2, "price": 5.00},
  {"name": "Fries", "quantity": 1, "price": 2.50},
  {"name": "Soda", "quantity": 3, "price": 1.25}
]`

func main() {
	_ = godotenv.Load()

	key := flag.String("key", cart.KeySaved, "storage key to write (savedCart or cart)")
	items := flag.String("items", sampleCart, "cart JSON to store")
	flag.Parse()

	ctx := context.Background()
	st, err := storage.FromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to set up cart store: %v", err)
	}
	if st.Driver == "memory" {
		log.Fatal("memory store is process-local; set CART_STORE=redis or mysql to seed")
	}

	if err := st.Store.Set(ctx, *key, *items); err != nil {
		log.Fatalf("failed to write cart: %v", err)
	}
	log.Printf("seeded %s via %s driver", *key, st.Driver)
}
