package service

import (
	"net/http"
	"testing"

	"github.com/euscan/euscanwww/exception"
	"github.com/euscan/euscanwww/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPackageDetailsSplitsVersions(t *testing.T) {
	store := testutil.NewFixtureStore()
	service := NewPackageService(store, store, store, store, 20)

	details, err := service.GetPackageDetails("app-editors", "vim", "")
	require.NoError(t, err)
	assert.Equal(t, "app-editors/vim", details.Atom())
	assert.Len(t, details.PackagedVersions, 2)
	assert.Empty(t, details.OverlayVersions)
	require.Len(t, details.UpstreamVersions, 1)
	assert.Equal(t, "7.3.515", details.UpstreamVersions[0].Version)
	require.Len(t, details.Herds, 1)
	assert.Equal(t, "editors", details.Herds[0].Herd)
	require.Len(t, details.Maintainers, 1)
	assert.Equal(t, "jane@gentoo.org", details.Maintainers[0].Email)
	require.Len(t, details.Log, 2)
	assert.Equal(t, int64(2), details.Log[0].Id)
	assert.False(t, details.IsFavorite)
	assert.False(t, details.RefreshRequested)

	details, err = service.GetPackageDetails("app-editors", "emacs", "")
	require.NoError(t, err)
	require.Len(t, details.OverlayVersions, 1)
	assert.Equal(t, "sunrise", details.OverlayVersions[0].Overlay)
}

func TestGetPackageDetailsLogLimit(t *testing.T) {
	store := testutil.NewFixtureStore()
	service := NewPackageService(store, store, store, store, 1)

	details, err := service.GetPackageDetails("app-editors", "vim", "")
	require.NoError(t, err)
	require.Len(t, details.Log, 1)
	assert.Equal(t, "7.3.515", details.Log[0].Version)
}

func TestGetPackageDetailsForUser(t *testing.T) {
	store := testutil.NewFixtureStore()
	service := NewPackageService(store, store, store, store, 20)
	require.NoError(t, store.AddPackageToFavorites(testUserId, 3))

	details, err := service.GetPackageDetails("dev-lang", "python", testUserId)
	require.NoError(t, err)
	assert.True(t, details.IsFavorite)
	assert.False(t, details.RefreshRequested)

	_, err = service.RequestRefresh("dev-lang", "python", testUserId)
	require.NoError(t, err)
	details, err = service.GetPackageDetails("dev-lang", "python", testUserId)
	require.NoError(t, err)
	assert.True(t, details.RefreshRequested)
}

func TestGetPackageNotFound(t *testing.T) {
	store := testutil.NewFixtureStore()
	service := NewPackageService(store, store, store, store, 20)

	_, err := service.GetPackage("app-editors", "nano")
	requireCustomError(t, err, http.StatusNotFound, exception.PackageNotFound)

	_, err = service.GetPackageDetails("dev-lang", "vim", "")
	requireCustomError(t, err, http.StatusNotFound, exception.PackageNotFound)
}

func TestRequestRefreshCountsUserOnce(t *testing.T) {
	store := testutil.NewFixtureStore()
	service := NewPackageService(store, store, store, store, 20)

	added, err := service.RequestRefresh("app-editors", "vim", testUserId)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = service.RequestRefresh("app-editors", "vim", testUserId)
	require.NoError(t, err)
	assert.False(t, added)

	added, err = service.RequestRefresh("app-editors", "vim", "another-user")
	require.NoError(t, err)
	assert.True(t, added)

	query, err := store.GetRefreshQuery(1)
	require.NoError(t, err)
	require.NotNil(t, query)
	assert.Equal(t, 2, query.Priority)

	_, err = service.RequestRefresh("app-editors", "nano", testUserId)
	requireCustomError(t, err, http.StatusNotFound, exception.PackageNotFound)
}
