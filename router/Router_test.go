package router

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/euscan/euscanwww/controller"
	"github.com/euscan/euscanwww/repository"
	"github.com/euscan/euscanwww/security"
	"github.com/euscan/euscanwww/service"
	"github.com/euscan/euscanwww/templates"
	"github.com/euscan/euscanwww/testutil"
	"github.com/euscan/euscanwww/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const (
	testUserName     = "larry"
	testUserPassword = "cowsay"
)

type testSite struct {
	handler http.Handler
	urls    templates.URLFunc
	store   *testutil.Store
	user    *view.User
}

func newTestSite(t *testing.T, allowRegistration bool) *testSite {
	t.Helper()
	return newTestSiteWithArchive(t, allowRegistration, nil)
}

func newTestSiteWithArchive(t *testing.T, allowRegistration bool, worldFiles repository.WorldFileRepository) *testSite {
	t.Helper()
	store := testutil.NewFixtureStore()
	revocations := testutil.NewTokenRevocations()
	require.NoError(t, security.SetupGoGuardian([]byte("router-test-secret"), time.Hour, false, revocations))

	packageService := service.NewPackageService(store, store, store, store, 20)
	sectionService := service.NewSectionService(store, store, store, store)
	favoritesService := service.NewFavoritesService(store, store, store, store, store, packageService, sectionService)
	feedService := service.NewFeedService(store, 50)
	userService := service.NewUserService(store)
	statsService := service.NewStatsService(store, store, store, store, nil, 0)
	archiveService := service.NewWorldArchiveService(worldFiles)

	user, err := userService.RegisterUser(view.RegisterReq{Username: testUserName, Email: "larry@gentoo.org", Password: testUserPassword})
	require.NoError(t, err)

	r := New()
	urls := Reverse(r)
	renderer, err := templates.NewRenderer(urls)
	require.NoError(t, err)

	ready := make(chan bool, 1)
	ready <- true
	Register(r, Controllers{
		Pages:     controller.NewPageController(statsService, feedService, renderer, urls, 10),
		Sections:  controller.NewSectionController(sectionService, renderer, urls),
		Packages:  controller.NewPackageController(packageService, renderer, urls),
		Favorites: controller.NewFavoriteController(favoritesService, renderer, urls),
		Feeds:     controller.NewFeedController(feedService, packageService, sectionService, favoritesService, renderer, urls, "http://euscan.example.org"),
		Accounts:  controller.NewAccountController(userService, favoritesService, revocations, renderer, urls, allowRegistration),
		WorldScan: controller.NewWorldScanController(service.NewWorldScanService(store, 100), service.NewWorldScanExportService(), archiveService, renderer, 1024),
		Api:       controller.NewApiController(statsService, sectionService, packageService),
		Health:    controller.NewHealthController(ready),
	})
	security.LoginPath = urls("accounts_login")
	return &testSite{handler: r, urls: urls, store: store, user: user}
}

type requestOption func(r *http.Request)

func withSession(t *testing.T, user *view.User) requestOption {
	token, err := security.IssueToken(*user)
	require.NoError(t, err)
	return func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: security.SessionCookieName, Value: token})
	}
}

func withAjax() requestOption {
	return func(r *http.Request) {
		r.Header.Set("X-Requested-With", "XMLHttpRequest")
	}
}

func withHeader(name string, value string) requestOption {
	return func(r *http.Request) {
		r.Header.Set(name, value)
	}
}

func (s *testSite) get(path string, opts ...requestOption) *httptest.ResponseRecorder {
	return s.do(httptest.NewRequest(http.MethodGet, path, nil), opts...)
}

func (s *testSite) postForm(path string, form url.Values, opts ...requestOption) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(req, opts...)
}

func (s *testSite) do(req *http.Request, opts ...requestOption) *httptest.ResponseRecorder {
	for _, opt := range opts {
		opt(req)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

// countTags counts start tags named tag in an html document.
func countTags(t *testing.T, body string, tag string) int {
	t.Helper()
	count := 0
	tokenizer := html.NewTokenizer(strings.NewReader(body))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return count
		case html.StartTagToken, html.SelfClosingTagToken:
			if name, _ := tokenizer.TagName(); string(name) == tag {
				count++
			}
		}
	}
}

func assertTable(t *testing.T, rec *httptest.ResponseRecorder, rows int) {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := rec.Body.String()
	assert.Equal(t, 1, countTags(t, body, "table"))
	assert.Equal(t, rows+1, countTags(t, body, "tr"))
}

func TestAnonymousPages(t *testing.T) {
	site := newTestSite(t, true)

	paths := []string{
		"/", "/about/", "/about/api/", "/world/", "/statistics/",
		"/categories/", "/categories/app-editors/",
		"/herds/", "/herds/editors/",
		"/maintainers/", "/maintainers/1/",
		"/overlays/", "/overlays/sunrise/",
		"/package/app-editors/vim/",
		"/accounts/login/", "/accounts/register/",
	}
	for _, path := range paths {
		rec := site.get(path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"), path)
		assert.NotContains(t, rec.Body.String(), "Watch", path)
		assert.NotContains(t, rec.Body.String(), "Request refresh", path)
	}
}

func TestListingTables(t *testing.T) {
	site := newTestSite(t, true)

	assertTable(t, site.get("/categories/"), 2)
	assertTable(t, site.get("/categories/app-editors/"), 2)
	assertTable(t, site.get("/categories/dev-lang/"), 1)
	assertTable(t, site.get("/herds/"), 2)
	assertTable(t, site.get("/herds/python/"), 1)
	assertTable(t, site.get("/maintainers/"), 2)
	assertTable(t, site.get("/maintainers/1/"), 2)
	assertTable(t, site.get("/overlays/"), 1)
	assertTable(t, site.get("/overlays/sunrise/"), 1)
	assertTable(t, site.get("/statistics/"), 0)
}

func TestPackagePage(t *testing.T) {
	site := newTestSite(t, true)

	rec := site.get("/package/app-editors/vim/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Vim, an improved vi-style text editor")
	assert.Contains(t, body, "/herds/editors/")
	assert.Contains(t, body, "/maintainers/1/")
	assert.Contains(t, body, "7.3.515")
	assert.Contains(t, body, "/package/app-editors/vim/feed/")
}

func TestNotFound(t *testing.T) {
	site := newTestSite(t, true)

	for _, path := range []string{
		"/package/app-editors/nano/",
		"/categories/app-misc/",
		"/herds/kde/",
		"/maintainers/42/",
		"/maintainers/abc/",
		"/overlays/gentoo/",
		"/package/app-editors/nano/feed/",
		"/api/1.0/package/app-editors/nano.json",
		"/no/such/page/",
	} {
		assert.Equal(t, http.StatusNotFound, site.get(path).Code, path)
	}

	rec := site.get("/package/app-editors/nano/")
	assert.Contains(t, rec.Body.String(), "Package app-editors/nano not found")

	rec = site.get("/package/app-editors/nano/", withAjax())
	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(http.StatusNotFound), body["status"])
}

func TestAccountPagesRequireLogin(t *testing.T) {
	site := newTestSite(t, true)

	for _, path := range []string{
		"/accounts/", "/accounts/packages/", "/accounts/categories/",
		"/accounts/herds/", "/accounts/maintainers/", "/accounts/feed/",
	} {
		rec := site.get(path)
		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/accounts/login/?next="+url.QueryEscape(path), rec.Header().Get("Location"), path)
	}

	rec := site.postForm("/categories/app-editors/favourite/", url.Values{})
	assert.Equal(t, http.StatusFound, rec.Code)
	rec = site.postForm("/categories/app-editors/favourite/", url.Values{}, withAjax())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoggedInPagesShowWatchButtons(t *testing.T) {
	site := newTestSite(t, true)
	session := withSession(t, site.user)

	for _, path := range []string{
		"/categories/app-editors/", "/herds/editors/", "/maintainers/2/", "/package/app-editors/emacs/",
	} {
		rec := site.get(path, session)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), ">Watch<", path)
		assert.Contains(t, rec.Body.String(), testUserName, path)
	}

	rec := site.get("/package/app-editors/emacs/", session)
	assert.Contains(t, rec.Body.String(), "Request refresh")

	for _, path := range []string{"/accounts/", "/accounts/packages/", "/accounts/categories/", "/accounts/herds/", "/accounts/maintainers/"} {
		assert.Equal(t, http.StatusOK, site.get(path, session).Code, path)
	}
}

func TestFavouriteIsIdempotentAndReversible(t *testing.T) {
	site := newTestSite(t, true)
	session := withSession(t, site.user)

	for i := 0; i < 2; i++ {
		rec := site.postForm("/categories/app-editors/favourite/", url.Values{}, session)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/categories/app-editors/", rec.Header().Get("Location"))
	}
	rec := site.get("/categories/app-editors/", session)
	assert.Contains(t, rec.Body.String(), ">Unwatch<")
	assertTable(t, site.get("/accounts/categories/", session), 1)

	rec = site.postForm("/package/dev-lang/python/favourite/", url.Values{}, session, withAjax())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true}`, rec.Body.String())
	assertTable(t, site.get("/accounts/packages/", session), 1)

	rec = site.postForm("/herds/python/favourite/", url.Values{}, session, withAjax())
	require.Equal(t, http.StatusOK, rec.Code)
	rec = site.postForm("/maintainers/1/favourite/", url.Values{}, session, withAjax())
	require.Equal(t, http.StatusOK, rec.Code)
	assertTable(t, site.get("/accounts/herds/", session), 1)
	assertTable(t, site.get("/accounts/maintainers/", session), 1)

	rec = site.get("/accounts/", session)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "3.2.3")

	for i := 0; i < 2; i++ {
		rec = site.postForm("/categories/app-editors/unfavourite/", url.Values{}, session)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	}
	rec = site.get("/categories/app-editors/", session)
	assert.Contains(t, rec.Body.String(), ">Watch<")
	assert.NotContains(t, rec.Body.String(), "Unwatch")
	assertTable(t, site.get("/accounts/categories/", session), 0)

	rec = site.postForm("/package/app-editors/nano/favourite/", url.Values{}, session)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = site.get("/categories/app-editors/favourite/", session)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRefreshPackage(t *testing.T) {
	site := newTestSite(t, true)
	session := withSession(t, site.user)

	rec := site.postForm("/package/app-editors/vim/refresh/", url.Values{}, session)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/package/app-editors/vim/", rec.Header().Get("Location"))

	rec = site.postForm("/package/app-editors/vim/refresh/", url.Values{}, session, withAjax())
	assert.Equal(t, http.StatusOK, rec.Code)

	query, err := site.store.GetRefreshQuery(1)
	require.NoError(t, err)
	require.NotNil(t, query)
	assert.Equal(t, 1, query.Priority)

	rec = site.get("/package/app-editors/vim/", session)
	assert.Contains(t, rec.Body.String(), "Refresh requested")
}

func TestLogin(t *testing.T) {
	site := newTestSite(t, true)

	rec := site.postForm("/accounts/login/", url.Values{"username": {testUserName}, "password": {"wrong"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid username or password")
	assert.Empty(t, rec.Result().Cookies())

	rec = site.postForm("/accounts/login/", url.Values{"username": {testUserName}, "password": {testUserPassword}, "next": {"/world/"}})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/world/", rec.Header().Get("Location"))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/accounts/", nil)
	req.AddCookie(cookies[0])
	rec = site.do(req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = site.postForm("/accounts/login/", url.Values{"username": {testUserName}, "password": {testUserPassword}, "next": {"https://evil.example.org/"}})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/accounts/", rec.Header().Get("Location"))

	rec = site.postForm("/accounts/login/", url.Values{"username": {testUserName}, "password": {testUserPassword}, "next": {`/\evil.example.org`}})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/accounts/", rec.Header().Get("Location"))

	rec = site.get("/accounts/login/?next=/herds/", withSession(t, site.user))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/herds/", rec.Header().Get("Location"))
}

func TestLogout(t *testing.T) {
	site := newTestSite(t, true)

	rec := site.postForm("/accounts/logout/", url.Values{}, withSession(t, site.user))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, security.SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)

	rec = site.postForm("/accounts/logout/", url.Values{})
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestRegister(t *testing.T) {
	site := newTestSite(t, true)

	rec := site.postForm("/accounts/register/", url.Values{"username": {"zmedico"}, "email": {"zmedico@gentoo.org"}, "password": {"portage"}})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/accounts/", rec.Header().Get("Location"))
	require.Len(t, rec.Result().Cookies(), 1)

	rec = site.postForm("/accounts/register/", url.Values{"username": {testUserName}, "email": {"other@gentoo.org"}, "password": {"portage"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User with name larry already exists")

	rec = site.postForm("/accounts/register/", url.Values{"username": {"x"}, "email": {"bad"}, "password": {"1"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "class=\"error\"")
}

func TestRegistrationClosed(t *testing.T) {
	site := newTestSite(t, false)

	rec := site.get("/accounts/register/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Registration is closed")

	rec = site.postForm("/accounts/register/", url.Values{"username": {"zmedico"}, "email": {"zmedico@gentoo.org"}, "password": {"portage"}})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestWorldScanPackagesField(t *testing.T) {
	site := newTestSite(t, true)

	rec := site.postForm("/world/scan/", url.Values{"packages": {"app-editors/vim\n>=dev-lang/python-3.2\nnano\n"}})
	assertTable(t, rec, 2)
	body := rec.Body.String()
	assert.Contains(t, body, "/package/app-editors/vim/")
	assert.Contains(t, body, "/package/dev-lang/python/")
	assert.Contains(t, body, "<li>nano</li>")
	assert.NotContains(t, body, "Watch")

	rec = site.postForm("/world/scan/", url.Values{"packages": {"app-editors/vim"}}, withSession(t, site.user))
	assertTable(t, rec, 1)
}

func uploadWorld(t *testing.T, site *testSite, content string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("world", "world")
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/world/scan/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return site.do(req)
}

func TestWorldScanFileUpload(t *testing.T) {
	site := newTestSite(t, true)

	rec := uploadWorld(t, site, "# selected packages\napp-editors/emacs\nsys-apps/portage\n")
	assertTable(t, rec, 1)
	assert.Contains(t, rec.Body.String(), "<li>sys-apps/portage</li>")
}

func TestWorldScanArchivesUploadedFiles(t *testing.T) {
	worldFiles := testutil.NewWorldFileRepository()
	site := newTestSiteWithArchive(t, true, worldFiles)

	content := "app-editors/vim\nsys-apps/portage\n"
	assertTable(t, uploadWorld(t, site, content), 1)
	assert.Contains(t, worldFiles.Files, service.WorldFileKey([]byte(content)))
	assert.Equal(t, 1, worldFiles.PutCalls)

	assertTable(t, uploadWorld(t, site, content), 1)
	assert.Equal(t, 1, worldFiles.PutCalls)

	assertTable(t, site.postForm("/world/scan/", url.Values{"packages": {"dev-lang/python"}}), 1)
	assert.Equal(t, 1, worldFiles.Count())
}

func TestWorldScanArchiveFailureIsNotFatal(t *testing.T) {
	worldFiles := testutil.NewWorldFileRepository()
	worldFiles.Err = errors.New("bucket is gone")
	site := newTestSiteWithArchive(t, true, worldFiles)

	assertTable(t, uploadWorld(t, site, "app-editors/vim\n"), 1)
	assert.Zero(t, worldFiles.Count())
}

func TestWorldScanErrors(t *testing.T) {
	site := newTestSite(t, true)

	rec := site.postForm("/world/scan/", url.Values{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Neither")

	rec = site.postForm("/world/scan/", url.Values{"packages": {"# nothing\n"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = site.postForm("/world/scan/", url.Values{"packages": {strings.Repeat("app-editors/vim\n", 200)}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = site.get("/world/scan/")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestWorldScanXlsx(t *testing.T) {
	site := newTestSite(t, true)

	rec := site.postForm("/world/scan/?format=xlsx", url.Values{"packages": {"app-editors/vim"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, service.XlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestFeeds(t *testing.T) {
	site := newTestSite(t, true)

	rec := site.get("/feed/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, view.FeedFormatAtom.ContentType(), rec.Header().Get("Content-Type"))
	assert.Equal(t, 5, strings.Count(rec.Body.String(), "<entry>"))
	assert.Contains(t, rec.Body.String(), "http://euscan.example.org/package/app-editors/vim/")
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	rec = site.get("/feed/", withHeader("If-None-Match", etag))
	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = site.get("/feed/?upstream=false&overlays=false")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, strings.Count(rec.Body.String(), "<entry>"))
	assert.NotEqual(t, etag, rec.Header().Get("ETag"))

	rec = site.get("/feed/?format=rss")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, view.FeedFormatRss.ContentType(), rec.Header().Get("Content-Type"))

	assert.Equal(t, http.StatusBadRequest, site.get("/feed/?format=json").Code)
	assert.Equal(t, http.StatusBadRequest, site.get("/feed/?gentoo=maybe").Code)

	for path, entries := range map[string]int{
		"/package/app-editors/vim/feed/": 2,
		"/categories/dev-lang/feed/":     2,
		"/herds/editors/feed/":           3,
		"/maintainers/2/feed/":           1,
	} {
		rec = site.get(path)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, entries, strings.Count(rec.Body.String(), "<entry>"), path)
	}
}

func TestAccountFeed(t *testing.T) {
	site := newTestSite(t, true)
	session := withSession(t, site.user)

	rec := site.get("/accounts/feed/", session)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, strings.Count(rec.Body.String(), "<entry>"))

	require.Equal(t, http.StatusOK, site.postForm("/herds/python/favourite/", url.Values{}, session, withAjax()).Code)
	rec = site.get("/accounts/feed/", session)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, strings.Count(rec.Body.String(), "<entry>"))
}

func TestApi(t *testing.T) {
	site := newTestSite(t, true)

	rec := site.get("/api/1.0/categories.json")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Index(body, `"category"`) < strings.Index(body, `"n_packages"`))
	var categories struct {
		Categories []struct {
			Category          string `json:"category"`
			NPackages         int    `json:"n_packages"`
			NPackagesOutdated int    `json:"n_packages_outdated"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	require.Len(t, categories.Categories, 2)
	assert.Equal(t, "app-editors", categories.Categories[0].Category)
	assert.Equal(t, 2, categories.Categories[0].NPackages)
	assert.Equal(t, 1, categories.Categories[0].NPackagesOutdated)

	rec = site.get("/api/1.0/package/app-editors/emacs.json")
	require.Equal(t, http.StatusOK, rec.Code)
	var pkg struct {
		Category string                   `json:"category"`
		Name     string                   `json:"name"`
		Packaged []map[string]interface{} `json:"packaged"`
		Overlay  []map[string]interface{} `json:"overlay"`
		Upstream []map[string]interface{} `json:"upstream"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pkg))
	assert.Equal(t, "emacs", pkg.Name)
	assert.Len(t, pkg.Packaged, 1)
	require.Len(t, pkg.Overlay, 1)
	assert.Equal(t, "sunrise", pkg.Overlay[0]["overlay"])
	assert.Empty(t, pkg.Upstream)

	for _, path := range []string{"/api/1.0/statistics.json", "/api/1.0/herds.json", "/api/1.0/maintainers.json"} {
		rec = site.get(path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.True(t, json.Valid(rec.Body.Bytes()), path)
	}
}

func TestHealth(t *testing.T) {
	site := newTestSite(t, true)

	assert.Equal(t, http.StatusOK, site.get("/live").Code)
	assert.Eventually(t, func() bool {
		return site.get("/ready").Code == http.StatusOK
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, http.StatusNotFound, site.get("/metrics").Code)
}

func TestReverse(t *testing.T) {
	site := newTestSite(t, true)

	assert.Equal(t, "/package/app-editors/vim/", site.urls("package", "category", "app-editors", "package", "vim"))
	assert.Equal(t, "/maintainers/12/", site.urls("maintainer", "maintainer_id", "12"))
	assert.Equal(t, "#", site.urls("maintainer", "maintainer_id", "jane"))
	assert.Equal(t, "#", site.urls("package", "category", "app-editors"))
	assert.Equal(t, "#", site.urls("no_such_route"))
}
