package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"grubstop.com/app/internal/http/flash"
	"grubstop.com/app/internal/http/middleware"
	"grubstop.com/app/internal/http/receiptcookie"
	"grubstop.com/app/internal/http/render"
	"grubstop.com/app/internal/http/validation"
	cartmod "grubstop.com/app/internal/modules/cart"
	"grubstop.com/app/internal/modules/payments"
	"grubstop.com/app/internal/modules/receipt"
	"grubstop.com/app/internal/shared/apperr"
	"grubstop.com/app/pkg/view"
)

// paymentSuccessMsg is shown once, on the final receipt after the redirect.
const paymentSuccessMsg = "Payment successful! ✅"

type PaymentHandler struct {
	Loader    *cartmod.Loader
	Receipts  *receipt.Service
	ReceiptCK *receiptcookie.Codec
	Flash     *flash.Codec
}

func NewPaymentHandler(loader *cartmod.Loader, receipts *receipt.Service, ck *receiptcookie.Codec, fl *flash.Codec) *PaymentHandler {
	return &PaymentHandler{Loader: loader, Receipts: receipts, ReceiptCK: ck, Flash: fl}
}

// Post validates the card form. A failed attempt re-renders the payment view
// with every applicable message and changes nothing else. Success persists
// the final receipt and redirects to it.
func (h *PaymentHandler) Post(c *gin.Context) {
	var in payments.CardForm
	if err := c.ShouldBind(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Form data is invalid.", validation.FromBindError(err, &in)))
		return
	}

	res, errs := payments.Validate(in)
	if len(errs) > 0 {
		cart := h.Loader.Load(c.Request.Context())
		page := receipt.BuildPage(cart, time.Now())
		page.ShowPayment = true
		page.Errors = errs
		page.Form = view.CardForm{
			Name:   in.Name,
			Number: in.Number,
			Expiry: in.Expiry,
			CVV:    in.CVV,
		}
		render.Checkout(c, http.StatusOK, page, middleware.GetFlash(c))
		return
	}

	cart := h.Loader.Load(c.Request.Context())
	fr := receipt.BuildFinal(uuid.NewString(), cart, res.Customer, res.Last4, time.Now())
	if err := h.Receipts.SaveFinal(c.Request.Context(), fr); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	h.ReceiptCK.Set(c, fr.ID)
	render.RedirectWithFlash(c, h.Flash, "/receipt/final", view.FlashSuccess, paymentSuccessMsg)
}
