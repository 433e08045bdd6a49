package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/euscan/euscanwww/context"
	"github.com/euscan/euscanwww/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEtagMatches(t *testing.T) {
	etag := `"abc"`
	assert.False(t, etagMatches("", etag))
	assert.True(t, etagMatches(`"abc"`, etag))
	assert.True(t, etagMatches(`W/"abc"`, etag))
	assert.True(t, etagMatches(`"x", "abc"`, etag))
	assert.True(t, etagMatches("*", etag))
	assert.False(t, etagMatches(`"abd"`, etag))
}

func TestGetVersionLogFilter(t *testing.T) {
	filter, customErr := getVersionLogFilter(httptest.NewRequest(http.MethodGet, "/feed/", nil))
	require.Nil(t, customErr)
	assert.True(t, filter.Gentoo)
	assert.True(t, filter.Overlays)
	assert.True(t, filter.Upstream)

	filter, customErr = getVersionLogFilter(httptest.NewRequest(http.MethodGet, "/feed/?overlays=0&upstream=false", nil))
	require.Nil(t, customErr)
	assert.True(t, filter.Gentoo)
	assert.False(t, filter.Overlays)
	assert.False(t, filter.Upstream)

	_, customErr = getVersionLogFilter(httptest.NewRequest(http.MethodGet, "/feed/?gentoo=sometimes", nil))
	require.NotNil(t, customErr)
	assert.Equal(t, http.StatusBadRequest, customErr.Status)
}

func TestGetPageQueryParam(t *testing.T) {
	page, customErr := getPageQueryParam(httptest.NewRequest(http.MethodGet, "/statistics/", nil))
	require.Nil(t, customErr)
	assert.Equal(t, 0, page)

	page, customErr = getPageQueryParam(httptest.NewRequest(http.MethodGet, "/statistics/?page=3", nil))
	require.Nil(t, customErr)
	assert.Equal(t, 3, page)

	for _, query := range []string{"?page=-1", "?page=two"} {
		_, customErr = getPageQueryParam(httptest.NewRequest(http.MethodGet, "/statistics/"+query, nil))
		require.NotNil(t, customErr, query)
		assert.Equal(t, http.StatusBadRequest, customErr.Status)
	}
}

func TestMakeWatchButton(t *testing.T) {
	urls := func(name string, pairs ...string) string {
		return "/" + name
	}
	assert.Nil(t, makeWatchButton(urls, context.Create(httptest.NewRequest(http.MethodGet, "/", nil)), view.FavoriteHerd, false, "herd", "python"))

	button := makeWatchButton(urls, context.CreateFromUser(view.User{Id: "1", Name: "larry"}), view.FavoriteHerd, true, "herd", "python")
	require.NotNil(t, button)
	assert.True(t, button.IsFavorite)
	assert.Equal(t, "/favourite_herd", button.FavoriteUrl)
	assert.Equal(t, "/unfavourite_herd", button.UnfavoriteUrl)
}

func TestRespondWithActionResult(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/herds/python/favourite/", nil)
	rec := httptest.NewRecorder()
	respondWithActionResult(rec, req, "/herds/python/")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/herds/python/", rec.Header().Get("Location"))

	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	rec = httptest.NewRecorder()
	respondWithActionResult(rec, req, "/herds/python/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestAbsoluteUrl(t *testing.T) {
	assert.Equal(t, "http://euscan.example.org/feed/", absoluteUrl("http://euscan.example.org/", "/feed/"))
	assert.Equal(t, "/feed/", absoluteUrl("", "/feed/"))
}
