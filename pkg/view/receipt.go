package view

// ReceiptLine is one rendered item row, e.g. "Burger x2" / "$10.00".
// Carries json tags because paid receipts persist their lines verbatim.
type ReceiptLine struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

// ReceiptPage is the checkout screen view model. Built fresh on every
// request; nothing in it is cached or written back anywhere.
type ReceiptPage struct {
	Lines   []ReceiptLine
	Empty   bool
	Message string // "No items in cart." when Empty

	CheckoutTotal string // running total, "Total: $10.70"
	Tax           string
	Delivery      string // "$0.00 (FREE)"
	Total         string
	IssuedAt      string

	// Payment section visibility and state. ShowPayment hides the Pay
	// trigger and reveals the card form in its place.
	ShowPayment bool
	Form        CardForm
	Errors      []string
}

// CardForm echoes submitted values back into the form so a failed attempt
// keeps what the user typed.
type CardForm struct {
	Name   string
	Number string
	Expiry string
	CVV    string
}
