package render

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"grubstop.com/app/internal/modules/receipt"
	"grubstop.com/app/pkg/view"
	"grubstop.com/app/templates"
)

// Parsed once at startup. A missing or broken page fails here, at boot.
var pages = template.Must(template.ParseFS(templates.FS, "*.html"))

// Pages exposes the parsed template set for the gin engine.
func Pages() *template.Template { return pages }

func Checkout(c *gin.Context, status int, page view.ReceiptPage, fl *view.Flash) {
	c.HTML(status, "checkout.html", gin.H{"Page": page, "Flash": fl})
}

func Final(c *gin.Context, status int, fr receipt.FinalReceipt, fl *view.Flash) {
	c.HTML(status, "final.html", gin.H{"Receipt": fr, "Flash": fl})
}
