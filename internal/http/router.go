package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"grubstop.com/app/internal/http/flash"
	"grubstop.com/app/internal/http/handlers"
	"grubstop.com/app/internal/http/middleware"
	"grubstop.com/app/internal/http/receiptcookie"
	"grubstop.com/app/internal/http/render"
	cartmod "grubstop.com/app/internal/modules/cart"
	"grubstop.com/app/internal/modules/receipt"
	"grubstop.com/app/internal/storage"
)

func NewRouter(logger *slog.Logger, store storage.Store) *gin.Engine {
	secret := []byte(envOr("COOKIE_SECRET", "dev-secret-change-me"))
	secure := os.Getenv("COOKIE_SECURE") == "true"

	flashCodec := flash.NewCodec(secret, "gs_flash", secure)
	receiptCK := receiptcookie.New(secret, "gs_receipt", secure)

	loader := cartmod.NewLoader(store, logger)
	receipts := receipt.NewService(store, logger)

	rh := handlers.NewReceiptHandler(loader, receipts, receiptCK)
	ph := handlers.NewPaymentHandler(loader, receipts, receiptCK, flashCodec)

	r := gin.New()
	r.SetHTMLTemplate(render.Pages())

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.FlashMiddleware(flashCodec))
	r.Use(middleware.ErrorHandler(logger))

	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/receipt") })
	r.GET("/receipt", rh.Get)
	r.GET("/receipt/pay", rh.Pay)
	r.POST("/receipt/pay", ph.Post)
	r.GET("/receipt/final", rh.Final)

	return r
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
