package render

import (
	"github.com/gin-gonic/gin"

	"github.com/spanishfly666/telegram-nitro-bot/templates/pages"
)

// ErrorPage renders the fallback error page.
func ErrorPage(c *gin.Context, status int, msg string, requestID string) {
	Component(c, status, pages.Error(status, msg, requestID))
}
