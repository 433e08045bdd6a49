package service

import (
	"net/http"
	"testing"

	"github.com/euscan/euscanwww/exception"
	"github.com/euscan/euscanwww/testutil"
	"github.com/euscan/euscanwww/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserId = "6f1c3b2a-7d4e-4c1b-9a57-2f3e4d5c6b7a"

func newTestFavoritesService(store *testutil.Store) FavoritesService {
	packageService := NewPackageService(store, store, store, store, 20)
	sectionService := NewSectionService(store, store, store, store)
	return NewFavoritesService(store, store, store, store, store, packageService, sectionService)
}

func TestSetFavoriteIsIdempotentAndReversible(t *testing.T) {
	tests := []struct {
		name  string
		ref   view.FavoriteRef
		count func(f *view.Favorites) int
	}{
		{
			name:  "package",
			ref:   view.FavoriteRef{Kind: view.FavoritePackage, Category: "app-editors", Package: "vim"},
			count: func(f *view.Favorites) int { return len(f.PackageIds) },
		},
		{
			name:  "category",
			ref:   view.FavoriteRef{Kind: view.FavoriteCategory, Category: "dev-lang"},
			count: func(f *view.Favorites) int { return len(f.Categories) },
		},
		{
			name:  "herd",
			ref:   view.FavoriteRef{Kind: view.FavoriteHerd, Herd: "editors"},
			count: func(f *view.Favorites) int { return len(f.HerdIds) },
		},
		{
			name:  "maintainer",
			ref:   view.FavoriteRef{Kind: view.FavoriteMaintainer, MaintainerId: 2},
			count: func(f *view.Favorites) int { return len(f.MaintainerIds) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestFavoritesService(testutil.NewFixtureStore())

			require.NoError(t, service.SetFavorite(testUserId, tt.ref, true))
			require.NoError(t, service.SetFavorite(testUserId, tt.ref, true))
			favorites, err := service.GetFavorites(testUserId)
			require.NoError(t, err)
			assert.Equal(t, 1, tt.count(favorites))

			require.NoError(t, service.SetFavorite(testUserId, tt.ref, false))
			favorites, err = service.GetFavorites(testUserId)
			require.NoError(t, err)
			assert.Equal(t, 0, tt.count(favorites))

			require.NoError(t, service.SetFavorite(testUserId, tt.ref, false))
		})
	}
}

func TestSetFavoriteUnknownEntity(t *testing.T) {
	service := newTestFavoritesService(testutil.NewFixtureStore())

	refs := []view.FavoriteRef{
		{Kind: view.FavoritePackage, Category: "app-editors", Package: "nano"},
		{Kind: view.FavoriteCategory, Category: "app-misc"},
		{Kind: view.FavoriteHerd, Herd: "kde"},
		{Kind: view.FavoriteMaintainer, MaintainerId: 42},
	}
	for _, ref := range refs {
		requireCustomError(t, service.SetFavorite(testUserId, ref, true), http.StatusNotFound, "")
	}

	err := service.SetFavorite(testUserId, view.FavoriteRef{Kind: "overlay"}, true)
	requireCustomError(t, err, http.StatusBadRequest, exception.UnknownFavoriteKind)
}

func requireCustomError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)
	customErr, ok := err.(*exception.CustomError)
	require.True(t, ok, "unexpected error type %T", err)
	assert.Equal(t, status, customErr.Status)
	if code != "" {
		assert.Equal(t, code, customErr.Code)
	}
}

func TestFavoritesAreKeptPerUser(t *testing.T) {
	service := newTestFavoritesService(testutil.NewFixtureStore())
	ref := view.FavoriteRef{Kind: view.FavoritePackage, Category: "dev-lang", Package: "python"}

	require.NoError(t, service.SetFavorite(testUserId, ref, true))

	packages, err := service.GetFavoritePackages(testUserId)
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, "dev-lang/python", packages[0].Atom())

	packages, err = service.GetFavoritePackages("someone-else")
	require.NoError(t, err)
	assert.Empty(t, packages)
}

func TestGetAccountSummary(t *testing.T) {
	service := newTestFavoritesService(testutil.NewFixtureStore())
	require.NoError(t, service.SetFavorite(testUserId, view.FavoriteRef{Kind: view.FavoriteCategory, Category: "app-editors"}, true))
	require.NoError(t, service.SetFavorite(testUserId, view.FavoriteRef{Kind: view.FavoriteMaintainer, MaintainerId: 1}, true))

	user := view.User{Id: testUserId, Name: "larry"}
	summary, err := service.GetAccountSummary(user, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.NPackages)
	assert.Equal(t, 1, summary.NCategories)
	assert.Equal(t, 0, summary.NHerds)
	assert.Equal(t, 1, summary.NMaintainers)

	// app-editors brings vim and emacs, maintainer 1 brings vim and python
	ids := make([]int64, 0)
	for _, l := range summary.RecentVersions {
		ids = append(ids, l.Id)
	}
	assert.Equal(t, []int64{5, 4, 3, 2, 1}, ids)

	summary, err = service.GetAccountSummary(user, 2)
	require.NoError(t, err)
	assert.Len(t, summary.RecentVersions, 2)
}

func TestGetFavoriteSections(t *testing.T) {
	service := newTestFavoritesService(testutil.NewFixtureStore())
	require.NoError(t, service.SetFavorite(testUserId, view.FavoriteRef{Kind: view.FavoriteCategory, Category: "app-editors"}, true))
	require.NoError(t, service.SetFavorite(testUserId, view.FavoriteRef{Kind: view.FavoriteHerd, Herd: "python"}, true))
	require.NoError(t, service.SetFavorite(testUserId, view.FavoriteRef{Kind: view.FavoriteMaintainer, MaintainerId: 2}, true))

	categories, err := service.GetFavoriteCategories(testUserId)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "app-editors", categories[0].Name)
	assert.Equal(t, 2, categories[0].NPackages)
	assert.Equal(t, 1, categories[0].NPackagesOutdated)

	herds, err := service.GetFavoriteHerds(testUserId)
	require.NoError(t, err)
	require.Len(t, herds, 1)
	assert.Equal(t, "python", herds[0].Herd)

	maintainers, err := service.GetFavoriteMaintainers(testUserId)
	require.NoError(t, err)
	require.Len(t, maintainers, 1)
	assert.Equal(t, "lisp@gentoo.org", maintainers[0].Email)
}
