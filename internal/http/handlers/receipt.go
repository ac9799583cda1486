package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"grubstop.com/app/internal/http/middleware"
	"grubstop.com/app/internal/http/receiptcookie"
	"grubstop.com/app/internal/http/render"
	cartmod "grubstop.com/app/internal/modules/cart"
	"grubstop.com/app/internal/modules/receipt"
	"grubstop.com/app/internal/shared/apperr"
	"grubstop.com/app/internal/storage"
)

type ReceiptHandler struct {
	Loader    *cartmod.Loader
	Receipts  *receipt.Service
	ReceiptCK *receiptcookie.Codec
}

func NewReceiptHandler(loader *cartmod.Loader, receipts *receipt.Service, ck *receiptcookie.Codec) *ReceiptHandler {
	return &ReceiptHandler{Loader: loader, Receipts: receipts, ReceiptCK: ck}
}

// Get renders the checkout screen with the Pay trigger visible.
func (h *ReceiptHandler) Get(c *gin.Context) {
	cart := h.Loader.Load(c.Request.Context())
	page := receipt.BuildPage(cart, time.Now())
	render.Checkout(c, http.StatusOK, page, middleware.GetFlash(c))
}

// Pay reveals the payment section in place of the Pay trigger. Pure
// visibility toggle; safe to hit repeatedly.
func (h *ReceiptHandler) Pay(c *gin.Context) {
	cart := h.Loader.Load(c.Request.Context())
	page := receipt.BuildPage(cart, time.Now())
	page.ShowPayment = true
	render.Checkout(c, http.StatusOK, page, middleware.GetFlash(c))
}

// Final renders the paid receipt referenced by the signed receipt cookie.
// Without a valid cookie there is nothing to show, so back to checkout.
func (h *ReceiptHandler) Final(c *gin.Context) {
	id, ok := h.ReceiptCK.GetReceiptID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/receipt")
		return
	}

	fr, err := h.Receipts.LoadFinal(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.ReceiptCK.Clear(c)
			c.Redirect(http.StatusFound, "/receipt")
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	render.Final(c, http.StatusOK, fr, middleware.GetFlash(c))
}
