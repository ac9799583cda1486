package receipt

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"grubstop.com/app/internal/modules/cart"
	"grubstop.com/app/internal/storage"
	"grubstop.com/app/pkg/view"
)

// Fixed rates for every receipt. Delivery is always free; the fee line is
// still rendered so the layout matches what the menu promises.
const (
	TaxRate     = 0.07
	DeliveryFee = 0.0
)

const emptyCartMessage = "No items in cart."

// receiptKeyPrefix namespaces paid receipts in the shared store.
const receiptKeyPrefix = "receipt:"

type Totals struct {
	Subtotal    float64
	Tax         float64
	DeliveryFee float64
	Total       float64
}

// ComputeTotals sums quantity*price over the cart. Entries with a
// non-positive quantity are skipped, not an error.
func ComputeTotals(c cart.Cart) Totals {
	t := Totals{DeliveryFee: DeliveryFee}
	for _, it := range c {
		if it.Quantity <= 0 {
			continue
		}
		t.Subtotal += float64(it.Quantity) * it.Price
	}
	t.Tax = t.Subtotal * TaxRate
	t.Total = t.Subtotal + t.Tax + t.DeliveryFee
	return t
}

// BuildPage renders the cart into the checkout view model. Safe to call any
// number of times; nothing is cached and the cart is never mutated.
// Money strings use fmt's two-decimal rounding (half to even).
func BuildPage(c cart.Cart, now time.Time) view.ReceiptPage {
	if len(c) == 0 {
		return view.ReceiptPage{
			Empty:         true,
			Message:       emptyCartMessage,
			CheckoutTotal: "Total: " + view.Money(0),
			Tax:           view.Money(0),
			Total:         view.Money(0),
			Delivery:      view.Money(0) + " (FREE)",
		}
	}

	page := view.ReceiptPage{IssuedAt: formatIssuedAt(now)}
	for _, it := range c {
		if it.Quantity <= 0 {
			continue
		}
		lineTotal := float64(it.Quantity) * it.Price
		page.Lines = append(page.Lines, view.ReceiptLine{
			Label:  fmt.Sprintf("%s x%d", it.Name, it.Quantity),
			Amount: view.Money(lineTotal),
		})
	}

	t := ComputeTotals(c)
	page.CheckoutTotal = "Total: " + view.Money(t.Total)
	page.Tax = view.Money(t.Tax)
	page.Total = view.Money(t.Total)
	page.Delivery = view.Money(t.DeliveryFee) + " (FREE)"
	return page
}

// formatIssuedAt matches en-US short date / short time, e.g. "8/31/26, 3:04 PM".
func formatIssuedAt(t time.Time) string {
	return t.Format("1/2/06, 3:04 PM")
}

// FinalReceipt is the paid receipt, persisted under its id so the final page
// survives a reload.
type FinalReceipt struct {
	ID        string             `json:"id"`
	Customer  string             `json:"customer"`
	CardLast4 string             `json:"card_last4"`
	Lines     []view.ReceiptLine `json:"lines"`
	Message   string             `json:"message,omitempty"`
	Tax       string             `json:"tax"`
	Delivery  string             `json:"delivery"`
	Total     string             `json:"total"`
	IssuedAt  string             `json:"issued_at"`
}

// BuildFinal freezes the cart into a paid receipt. customer and last4 come
// from the validated card form; the card number itself is never kept.
func BuildFinal(id string, c cart.Cart, customer, last4 string, now time.Time) FinalReceipt {
	page := BuildPage(c, now)
	return FinalReceipt{
		ID:        id,
		Customer:  customer,
		CardLast4: last4,
		Lines:     page.Lines,
		Message:   page.Message,
		Tax:       page.Tax,
		Delivery:  page.Delivery,
		Total:     page.Total,
		IssuedAt:  formatIssuedAt(now),
	}
}

// Service persists and reloads paid receipts through the shared store.
type Service struct {
	store storage.Store
	log   *slog.Logger
}

func NewService(store storage.Store, log *slog.Logger) *Service {
	return &Service{store: store, log: log}
}

func (s *Service) SaveFinal(ctx context.Context, fr FinalReceipt) error {
	b, err := json.Marshal(fr)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, receiptKeyPrefix+fr.ID, string(b)); err != nil {
		return err
	}
	s.log.Info("receipt saved", "receipt_id", fr.ID, "total", fr.Total)
	return nil
}

func (s *Service) LoadFinal(ctx context.Context, id string) (FinalReceipt, error) {
	raw, err := s.store.Get(ctx, receiptKeyPrefix+id)
	if err != nil {
		return FinalReceipt{}, err
	}
	var fr FinalReceipt
	if err := json.Unmarshal([]byte(raw), &fr); err != nil {
		return FinalReceipt{}, err
	}
	return fr, nil
}
