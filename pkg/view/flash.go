package view

type FlashKind string

const (
	FlashInfo    FlashKind = "info"
	FlashSuccess FlashKind = "success"
	FlashWarning FlashKind = "warning"
	FlashError   FlashKind = "error"
)

// Flash is a one-shot message shown on the next rendered page, e.g. the
// payment acknowledgment after the redirect to the final receipt.
type Flash struct {
	Kind    FlashKind `json:"kind"`
	Message string    `json:"message"`
}
