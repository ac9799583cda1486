package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	cartmod "grubstop.com/app/internal/modules/cart"
	"grubstop.com/app/internal/storage"
)

func newTestRouter(t *testing.T) (*gin.Engine, *storage.Memory) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(logger, store), store
}

func get(t *testing.T, r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(t *testing.T, r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedCart(t *testing.T, store *storage.Memory) {
	t.Helper()
	err := store.Set(context.Background(), cartmod.KeySaved,
		`[{"name":"Burger","quantity":2,"price":5.00},{"name":"Fries","quantity":0,"price":2.00}]`)
	if err != nil {
		t.Fatalf("seed cart: %v", err)
	}
}

func validCardForm() url.Values {
	return url.Values{
		"card-name":   {"Jane Doe"},
		"card-number": {"1234 5678 9012 3456"},
		"card-exp":    {"12/27"},
		"card-cvv":    {"123"},
	}
}

func TestReceiptPageEmptyCart(t *testing.T) {
	r, _ := newTestRouter(t)

	w := get(t, r, "/receipt", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"No items in cart.", "Total: $0.00", `id="pay-button"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestReceiptPageWithCart(t *testing.T) {
	r, store := newTestRouter(t)
	seedCart(t, store)

	body := get(t, r, "/receipt", nil).Body.String()
	for _, want := range []string{"Burger x2", "$10.00", "Total: $10.70"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	// zero-quantity item stays off the receipt
	if strings.Contains(body, "Fries") {
		t.Error("zero-quantity item rendered")
	}
}

func TestPayRevealsPaymentSection(t *testing.T) {
	r, store := newTestRouter(t)
	seedCart(t, store)

	body := get(t, r, "/receipt/pay", nil).Body.String()
	if !strings.Contains(body, `id="payment-section"`) {
		t.Error("payment section not revealed")
	}
	if strings.Contains(body, `id="pay-button"`) {
		t.Error("pay trigger still visible")
	}
}

func TestPaymentValidationFailure(t *testing.T) {
	r, store := newTestRouter(t)
	seedCart(t, store)

	form := validCardForm()
	form.Set("card-number", "123456789012345") // 15 digits
	form.Set("card-exp", "13/25")

	w := postForm(t, r, "/receipt/pay", form)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		"Card number must be exactly 16 digits (numbers only).",
		"Expiry month must be between 01 and 12.",
		`id="checkout-screen"`, // still on the checkout/payment view
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if strings.Contains(body, `id="final-receipt"`) {
		t.Error("final receipt shown despite validation errors")
	}
	// the typed card name is echoed back into the form
	if !strings.Contains(body, `value="Jane Doe"`) {
		t.Error("submitted name not preserved in the form")
	}
}

func TestPaymentSuccessFlow(t *testing.T) {
	r, store := newTestRouter(t)
	seedCart(t, store)

	w := postForm(t, r, "/receipt/pay", validCardForm())
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/receipt/final" {
		t.Fatalf("Location = %q, want /receipt/final", loc)
	}

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no cookies set on success")
	}

	final := get(t, r, "/receipt/final", cookies)
	if final.Code != http.StatusOK {
		t.Fatalf("final status = %d", final.Code)
	}
	body := final.Body.String()
	for _, want := range []string{
		`id="final-receipt"`,
		"Payment successful! ✅",
		"Jane Doe",
		"3456",
		"Burger x2",
		"$10.70",
		"$0.00 (FREE)",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("final body missing %q", want)
		}
	}
}

func TestFinalWithoutCookieRedirects(t *testing.T) {
	r, _ := newTestRouter(t)

	w := get(t, r, "/receipt/final", nil)
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/receipt" {
		t.Errorf("Location = %q, want /receipt", loc)
	}
}

func TestRootRedirectsToReceipt(t *testing.T) {
	r, _ := newTestRouter(t)

	w := get(t, r, "/", nil)
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/receipt" {
		t.Errorf("Location = %q, want /receipt", loc)
	}
}
