package payments

// CardForm carries the four payment fields exactly as typed. Nothing here is
// persisted; values are read once per submission attempt.
type CardForm struct {
	Name   string `form:"card-name"`
	Number string `form:"card-number"`
	Expiry string `form:"card-exp"`
	CVV    string `form:"card-cvv"`
}

// Result is what a successful validation yields for the final receipt.
type Result struct {
	Customer string
	Last4    string
}
