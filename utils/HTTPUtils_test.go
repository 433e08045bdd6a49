package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/euscan/euscanwww/exception"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAjax(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	assert.False(t, IsAjax(r))

	r.Header.Set("X-Requested-With", "XMLHttpRequest")
	assert.True(t, IsAjax(r))

	r = httptest.NewRequest(http.MethodPost, "/", nil)
	r.Header.Set("Accept", "application/json, text/javascript")
	assert.True(t, IsAjax(r))
}

func TestLocalRedirectTarget(t *testing.T) {
	assert.Equal(t, "/accounts/", LocalRedirectTarget("", "/accounts/"))
	assert.Equal(t, "/package/app-editors/vim/", LocalRedirectTarget("/package/app-editors/vim/", "/"))
	assert.Equal(t, "/", LocalRedirectTarget("https://evil.example.com/", "/"))
	assert.Equal(t, "/", LocalRedirectTarget("//evil.example.com/", "/"))
	assert.Equal(t, "/", LocalRedirectTarget("relative/path", "/"))
	assert.Equal(t, "/", LocalRedirectTarget(`/\evil.example`, "/"))
	assert.Equal(t, "/", LocalRedirectTarget(`/\/evil.example`, "/"))
	assert.Equal(t, "/", LocalRedirectTarget(`/herds\`, "/"))
	assert.Equal(t, "/", LocalRedirectTarget("/\t/evil.example", "/"))
	assert.Equal(t, "/", LocalRedirectTarget("/herds/\r\nSet-Cookie: a=b", "/"))
	assert.Equal(t, "/herds/?page=2", LocalRedirectTarget("/herds/?page=2", "/"))
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithError(w, "Failed to get package", &exception.CustomError{
		Status:  http.StatusNotFound,
		Code:    exception.PackageNotFound,
		Message: exception.PackageNotFoundMsg,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	var body exception.CustomError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, exception.PackageNotFound, body.Code)

	w = httptest.NewRecorder()
	RespondWithError(w, "Failed to get package", errors.New("connection refused"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Failed to get package", body.Message)
	assert.Equal(t, "connection refused", body.Debug)
}

func TestGetETag(t *testing.T) {
	first := GetETag([]byte("feed body"))
	assert.Equal(t, first, GetETag([]byte("feed body")))
	assert.NotEqual(t, first, GetETag([]byte("other body")))
	assert.Equal(t, byte('"'), first[0])
	assert.Len(t, GetEncodedXXHash128([]byte("world")), 32)
}
