package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/services"
)

func TestAnalytics_Endpoint(t *testing.T) {
	router := setupRouter(t, staticResolver("Germany, Berlin"))
	token := registerAndLogin(t, router)

	first, err := services.CreateShortLink("https://example.com/a")
	require.NoError(t, err)
	second, err := services.CreateShortLink("https://example.com/b")
	require.NoError(t, err)

	// Two traversals of the newest link, one of the older.
	for _, code := range []string{second.ShortCode, second.ShortCode, first.ShortCode} {
		req := httptest.NewRequest(http.MethodGet, "/"+code, nil)
		req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64; rv:124.0) Gecko/20100101 Firefox/124.0")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusFound, w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/analytics", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(3), body["total_clicks"])

	links, ok := body["links"].([]any)
	require.True(t, ok)
	require.Len(t, links, 2)

	// Newest link first, with its click events nested.
	newest, ok := links[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, second.ShortCode, newest["short_code"])
	assert.Equal(t, float64(2), newest["clicks"])

	events, ok := newest["analytics"].([]any)
	require.True(t, ok)
	require.Len(t, events, 2)

	event, ok := events[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, services.BrowserFirefox, event["browser"])
	assert.Equal(t, services.DeviceDesktop, event["device"])
	assert.Equal(t, "Germany, Berlin", event["location"])

	pagination, ok := body["pagination"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), pagination["current_page"])
	assert.Equal(t, float64(1), pagination["last_page"])
	assert.Equal(t, float64(2), pagination["total"])
}

func TestAnalytics_Endpoint_OutOfRangePage(t *testing.T) {
	router := setupRouter(t, staticResolver("Germany, Berlin"))
	token := registerAndLogin(t, router)

	_, err := services.CreateShortLink("https://example.com/a")
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodGet, "/analytics?page=9", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	links, ok := body["links"].([]any)
	require.True(t, ok)
	assert.Empty(t, links)
}

func TestAnalytics_Endpoint_RequiresAuth(t *testing.T) {
	router := setupRouter(t, staticResolver("Germany, Berlin"))

	w := doJSON(t, router, http.MethodGet, "/analytics", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/analytics", nil, map[string]string{
		"Authorization": "Bearer not-a-token",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
