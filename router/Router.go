package router

import (
	"net/http"

	"github.com/euscan/euscanwww/controller"
	"github.com/euscan/euscanwww/middleware"
	"github.com/euscan/euscanwww/security"
	"github.com/euscan/euscanwww/templates"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Controllers struct {
	Pages     controller.PageController
	Sections  controller.SectionController
	Packages  controller.PackageController
	Favorites controller.FavoriteController
	Feeds     controller.FeedController
	Accounts  controller.AccountController
	WorldScan controller.WorldScanController
	Api       controller.ApiController
	Health    controller.HealthController
	// Metrics is served on /metrics when set.
	Metrics http.Handler
}

func New() *mux.Router {
	r := mux.NewRouter().StrictSlash(true)
	r.Use(middleware.PrometheusMiddleware)
	return r
}

// Reverse builds URLs of named routes. Unknown names and bad variables resolve to "#".
func Reverse(r *mux.Router) templates.URLFunc {
	return func(name string, pairs ...string) string {
		route := r.Get(name)
		if route == nil {
			log.Errorf("Route %s is not registered", name)
			return "#"
		}
		u, err := route.URL(pairs...)
		if err != nil {
			log.Errorf("Failed to build url for route %s: %v", name, err)
			return "#"
		}
		return u.String()
	}
}

func Register(r *mux.Router, c Controllers) {
	get := []string{http.MethodGet, http.MethodHead}
	post := []string{http.MethodPost}
	form := []string{http.MethodGet, http.MethodHead, http.MethodPost}

	r.HandleFunc("/", security.OptionalUser(c.Pages.Index)).Methods(get...).Name("index")
	r.HandleFunc("/about/", security.OptionalUser(c.Pages.About)).Methods(get...).Name("about")
	r.HandleFunc("/about/api/", security.OptionalUser(c.Pages.Api)).Methods(get...).Name("api")
	r.HandleFunc("/world/", security.OptionalUser(c.Pages.World)).Methods(get...).Name("world")
	r.HandleFunc("/world/scan/", security.OptionalUser(c.WorldScan.Scan)).Methods(post...).Name("world_scan")
	r.HandleFunc("/statistics/", security.OptionalUser(c.Pages.Statistics)).Methods(get...).Name("statistics")
	r.HandleFunc("/feed/", security.NoSecure(c.Feeds.GlobalFeed)).Methods(get...).Name("global_feed")

	r.HandleFunc("/categories/", security.OptionalUser(c.Sections.Categories)).Methods(get...).Name("categories")
	r.HandleFunc("/categories/{category}/", security.OptionalUser(c.Sections.Category)).Methods(get...).Name("category")
	r.HandleFunc("/categories/{category}/feed/", security.NoSecure(c.Feeds.CategoryFeed)).Methods(get...).Name("category_feed")
	r.HandleFunc("/categories/{category}/favourite/", security.SecureUser(c.Favorites.FavoriteCategory)).Methods(post...).Name("favourite_category")
	r.HandleFunc("/categories/{category}/unfavourite/", security.SecureUser(c.Favorites.UnfavoriteCategory)).Methods(post...).Name("unfavourite_category")

	r.HandleFunc("/herds/", security.OptionalUser(c.Sections.Herds)).Methods(get...).Name("herds")
	r.HandleFunc("/herds/{herd}/", security.OptionalUser(c.Sections.Herd)).Methods(get...).Name("herd")
	r.HandleFunc("/herds/{herd}/feed/", security.NoSecure(c.Feeds.HerdFeed)).Methods(get...).Name("herd_feed")
	r.HandleFunc("/herds/{herd}/favourite/", security.SecureUser(c.Favorites.FavoriteHerd)).Methods(post...).Name("favourite_herd")
	r.HandleFunc("/herds/{herd}/unfavourite/", security.SecureUser(c.Favorites.UnfavoriteHerd)).Methods(post...).Name("unfavourite_herd")

	r.HandleFunc("/maintainers/", security.OptionalUser(c.Sections.Maintainers)).Methods(get...).Name("maintainers")
	r.HandleFunc("/maintainers/{maintainer_id:[0-9]+}/", security.OptionalUser(c.Sections.Maintainer)).Methods(get...).Name("maintainer")
	r.HandleFunc("/maintainers/{maintainer_id:[0-9]+}/feed/", security.NoSecure(c.Feeds.MaintainerFeed)).Methods(get...).Name("maintainer_feed")
	r.HandleFunc("/maintainers/{maintainer_id:[0-9]+}/favourite/", security.SecureUser(c.Favorites.FavoriteMaintainer)).Methods(post...).Name("favourite_maintainer")
	r.HandleFunc("/maintainers/{maintainer_id:[0-9]+}/unfavourite/", security.SecureUser(c.Favorites.UnfavoriteMaintainer)).Methods(post...).Name("unfavourite_maintainer")

	r.HandleFunc("/overlays/", security.OptionalUser(c.Sections.Overlays)).Methods(get...).Name("overlays")
	r.HandleFunc("/overlays/{overlay}/", security.OptionalUser(c.Sections.Overlay)).Methods(get...).Name("overlay")

	r.HandleFunc("/package/{category}/{package}/", security.OptionalUser(c.Packages.Package)).Methods(get...).Name("package")
	r.HandleFunc("/package/{category}/{package}/feed/", security.NoSecure(c.Feeds.PackageFeed)).Methods(get...).Name("package_feed")
	r.HandleFunc("/package/{category}/{package}/favourite/", security.SecureUser(c.Favorites.FavoritePackage)).Methods(post...).Name("favourite_package")
	r.HandleFunc("/package/{category}/{package}/unfavourite/", security.SecureUser(c.Favorites.UnfavoritePackage)).Methods(post...).Name("unfavourite_package")
	r.HandleFunc("/package/{category}/{package}/refresh/", security.SecureUser(c.Packages.RefreshPackage)).Methods(post...).Name("refresh_package")

	r.HandleFunc("/accounts/", security.SecureUser(c.Accounts.Index)).Methods(get...).Name("accounts_index")
	r.HandleFunc("/accounts/packages/", security.SecureUser(c.Accounts.Packages)).Methods(get...).Name("accounts_packages")
	r.HandleFunc("/accounts/categories/", security.SecureUser(c.Accounts.Categories)).Methods(get...).Name("accounts_categories")
	r.HandleFunc("/accounts/herds/", security.SecureUser(c.Accounts.Herds)).Methods(get...).Name("accounts_herds")
	r.HandleFunc("/accounts/maintainers/", security.SecureUser(c.Accounts.Maintainers)).Methods(get...).Name("accounts_maintainers")
	r.HandleFunc("/accounts/feed/", security.SecureUser(c.Feeds.AccountFeed)).Methods(get...).Name("accounts_feed")
	r.HandleFunc("/accounts/login/", security.OptionalUser(c.Accounts.Login)).Methods(form...).Name("accounts_login")
	r.HandleFunc("/accounts/logout/", security.OptionalUser(c.Accounts.Logout)).Methods(post...).Name("accounts_logout")
	r.HandleFunc("/accounts/register/", security.OptionalUser(c.Accounts.Register)).Methods(form...).Name("accounts_register")

	r.HandleFunc("/api/1.0/statistics.json", security.NoSecure(c.Api.Statistics)).Methods(get...).Name("api_statistics")
	r.HandleFunc("/api/1.0/categories.json", security.NoSecure(c.Api.Categories)).Methods(get...).Name("api_categories")
	r.HandleFunc("/api/1.0/herds.json", security.NoSecure(c.Api.Herds)).Methods(get...).Name("api_herds")
	r.HandleFunc("/api/1.0/maintainers.json", security.NoSecure(c.Api.Maintainers)).Methods(get...).Name("api_maintainers")
	r.HandleFunc("/api/1.0/package/{category}/{package}.json", security.NoSecure(c.Api.Package)).Methods(get...).Name("api_package")

	r.HandleFunc("/live", c.Health.HandleLiveRequest).Methods(get...).Name("live")
	r.HandleFunc("/ready", c.Health.HandleReadyRequest).Methods(get...).Name("ready")
	if c.Metrics != nil {
		r.Handle("/metrics", c.Metrics).Methods(get...).Name("metrics")
	}
}
