package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"grubstop.com/app/internal/http/flash"
	"grubstop.com/app/internal/http/middleware"
	"grubstop.com/app/pkg/view"
)

func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusFound, location)
}
