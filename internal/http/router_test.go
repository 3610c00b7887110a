package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spanishfly666/telegram-nitro-bot/internal/catalog"
	"github.com/spanishfly666/telegram-nitro-bot/internal/config"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := catalog.NewService(
		[]catalog.Category{{Label: "Gift Cards"}, {Label: "Subscriptions"}},
		[]catalog.Product{
			{ID: "p1", Name: "1-Month Nitro", Price: 500, Category: "Subscriptions",
				Details: map[string]any{"city": "Berlin"}},
			{ID: "p2", Name: "25 USD Gift Card", Price: 2600, Category: "Gift Cards",
				Description: "Delivered as a **redeem link**."},
		},
	)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(logger, svc, config.AppConfig{Title: "Nitro Store"})
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestIndexRendersCatalogPage(t *testing.T) {
	r := testRouter()

	w := get(t, r, "/")
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(t, err)

	assert.Equal(t, 2, doc.Find("nav.categories a").Length())
	// no category selected: the whole catalog shows
	assert.Equal(t, 2, doc.Find("article.product").Length())
	assert.Equal(t, "Nitro Store", doc.Find("h1").Text())
}

func TestIndexFiltersBySelectedCategory(t *testing.T) {
	r := testRouter()

	w := get(t, r, "/?category=Subscriptions")
	require.Equal(t, 200, w.Code)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(t, err)

	require.Equal(t, 1, doc.Find("article.product").Length())
	assert.Equal(t, "1-Month Nitro", doc.Find("article.product h3").Text())
	assert.Equal(t, "Details: City: Berlin", doc.Find("p.details").Text())
}

func TestIndexUnknownCategoryShowsEmptyState(t *testing.T) {
	r := testRouter()

	w := get(t, r, "/?category=CPNs")
	require.Equal(t, 200, w.Code)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(t, err)

	assert.Equal(t, 0, doc.Find("article.product").Length())
	assert.Equal(t, 1, doc.Find("p.empty").Length())
	// category links still render so the visitor can navigate out
	assert.Equal(t, 2, doc.Find("nav.categories a").Length())
}

func TestIndexRendersDescriptionMarkdown(t *testing.T) {
	r := testRouter()

	w := get(t, r, "/?category=Gift%20Cards")
	require.Equal(t, 200, w.Code)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(t, err)
	assert.Equal(t, "redeem link", doc.Find("div.description strong").Text())
}

func TestHealthz(t *testing.T) {
	r := testRouter()

	w := get(t, r, "/healthz")
	require.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAPICategories(t *testing.T) {
	r := testRouter()

	w := get(t, r, "/api/categories")
	require.Equal(t, 200, w.Code)
	assert.JSONEq(t, `["Gift Cards","Subscriptions"]`, w.Body.String())
}

func TestAPIProductsFilter(t *testing.T) {
	r := testRouter()

	w := get(t, r, "/api/products?category=Gift%20Cards")
	require.Equal(t, 200, w.Code)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "25 USD Gift Card", items[0]["name"])
	assert.Equal(t, "p2", items[0]["id"])
}

func TestAPIProductsUnknownCategoryIsEmptyArray(t *testing.T) {
	r := testRouter()

	w := get(t, r, "/api/products?category=Nope")
	require.Equal(t, 200, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestAPIProductsLimit(t *testing.T) {
	r := testRouter()

	w := get(t, r, "/api/products?limit=1")
	require.Equal(t, 200, w.Code)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "1-Month Nitro", items[0]["name"])
}

func TestAPIProductsRejectsBadLimit(t *testing.T) {
	r := testRouter()

	for _, limit := range []string{"abc", "0", "-3"} {
		w := get(t, r, "/api/products?limit="+limit)
		require.Equal(t, 400, w.Code, "limit=%s", limit)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Limit must be a positive integer.", body["error"])
	}
}

func TestAPIProductByID(t *testing.T) {
	r := testRouter()

	w := get(t, r, "/api/products/p1")
	require.Equal(t, 200, w.Code)

	var item map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, "1-Month Nitro", item["name"])
	assert.Equal(t, float64(500), item["price"])
}

func TestAPIProductNotFound(t *testing.T) {
	r := testRouter()

	w := get(t, r, "/api/products/missing")
	require.Equal(t, 404, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Product not found.", body["error"])
	assert.NotEmpty(t, body["request_id"])
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	r := testRouter()

	w := get(t, r, "/healthz")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
