// Package render writes templ components through gin.
package render

import (
	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
)

// Component renders a templ component as the HTML response body.
func Component(c *gin.Context, status int, component templ.Component) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		_ = c.Error(err)
	}
}
