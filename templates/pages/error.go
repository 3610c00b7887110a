package pages

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// Error is the fallback error page.
func Error(status int, message, requestID string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		heading := strconv.Itoa(status) + " " + http.StatusText(status)

		var b strings.Builder
		b.WriteString(`<!doctype html><html lang="en"><head><meta charset="utf-8"><title>`)
		b.WriteString(templ.EscapeString(heading))
		b.WriteString(`</title></head><body><h1>`)
		b.WriteString(templ.EscapeString(heading))
		b.WriteString(`</h1><p>`)
		b.WriteString(templ.EscapeString(message))
		b.WriteString(`</p>`)
		if requestID != "" {
			b.WriteString(`<p class="request-id">Request ID: `)
			b.WriteString(templ.EscapeString(requestID))
			b.WriteString(`</p>`)
		}
		b.WriteString(`</body></html>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
