package templates

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/euscan/euscanwww/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUrls(name string, pairs ...string) string {
	return "/" + name + "/" + strings.Join(pairs, "/")
}

func TestNewRendererParsesEveryPage(t *testing.T) {
	renderer, err := NewRenderer(testUrls)
	require.NoError(t, err)

	for _, name := range []string{
		"index", "about", "api", "world", "world_scan", "statistics",
		"categories", "herds", "maintainers", "overlays", "packages", "package",
		"accounts_index", "login", "register", "error",
	} {
		assert.True(t, renderer.Has(name), name)
	}
	assert.False(t, renderer.Has("layout"))
}

func TestRenderWatchButton(t *testing.T) {
	renderer, err := NewRenderer(testUrls)
	require.NoError(t, err)

	page := view.Page{
		Title: "app-editors",
		User:  &view.User{Id: "1", Name: "larry"},
		Content: view.ListingPage{
			PackageList: view.PackageList{Packages: []view.Package{{Id: 1, Category: "app-editors", Name: "vim"}}},
			Watch:       &view.WatchButton{IsFavorite: true, FavoriteUrl: "/fav", UnfavoriteUrl: "/unfav"},
		},
	}
	rec := httptest.NewRecorder()
	renderer.Render(rec, http.StatusOK, "packages", page)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `action="/unfav"`)
	assert.Contains(t, body, ">Unwatch<")
	assert.Contains(t, body, "app-editors/vim")
	assert.Contains(t, body, "larry")

	page.User = nil
	rec = httptest.NewRecorder()
	renderer.Render(rec, http.StatusOK, "packages", page)
	assert.NotContains(t, rec.Body.String(), "Watch")
}

func TestRenderUnknownTemplate(t *testing.T) {
	renderer, err := NewRenderer(testUrls)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	renderer.Render(rec, http.StatusOK, "missing", view.Page{})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRenderStatus(t *testing.T) {
	renderer, err := NewRenderer(testUrls)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	renderer.Render(rec, http.StatusNotFound, "error", view.Page{Title: "Not Found", Content: view.ErrorPage{Status: 404, Message: "Herd kde not found"}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Herd kde not found")
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", formatDate(time.Time{}))
	assert.Equal(t, "2012-05-01 12:00", formatDate(time.Date(2012, time.May, 1, 14, 0, 0, 0, time.FixedZone("CEST", 2*3600))))
}

func TestDict(t *testing.T) {
	d, err := dict("a", 1, "b", "two")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"a": 1, "b": "two"}, d)

	_, err = dict("a")
	assert.Error(t, err)
	_, err = dict(1, 2)
	assert.Error(t, err)
}
