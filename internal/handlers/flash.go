// internal/handlers/flash.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookie = "shopfront_flash"

// Flash is a one-shot status message: set on a redirect, displayed on the
// next rendered page, then discarded.
type Flash struct {
	Category string
	Message  string
}

func setFlash(c *gin.Context, category, message string) {
	// gin escapes the cookie value; c.Cookie undoes it on the way back
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, category+"|"+message, 300, "/", "", false, true)
}

// takeFlash reads and clears the pending flash message, if any.
func takeFlash(c *gin.Context) []Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	category, message, found := strings.Cut(raw, "|")
	if !found || message == "" {
		return nil
	}
	return []Flash{{Category: category, Message: message}}
}
