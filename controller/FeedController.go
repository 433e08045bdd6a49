package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/euscan/euscanwww/context"
	"github.com/euscan/euscanwww/service"
	"github.com/euscan/euscanwww/templates"
	"github.com/euscan/euscanwww/view"
)

type FeedController interface {
	GlobalFeed(w http.ResponseWriter, r *http.Request)
	PackageFeed(w http.ResponseWriter, r *http.Request)
	CategoryFeed(w http.ResponseWriter, r *http.Request)
	HerdFeed(w http.ResponseWriter, r *http.Request)
	MaintainerFeed(w http.ResponseWriter, r *http.Request)
	AccountFeed(w http.ResponseWriter, r *http.Request)
}

func NewFeedController(feedService service.FeedService,
	packageService service.PackageService,
	sectionService service.SectionService,
	favoritesService service.FavoritesService,
	renderer templates.Renderer,
	urls templates.URLFunc,
	externalUrl string) FeedController {
	return &feedControllerImpl{
		feedService:      feedService,
		packageService:   packageService,
		sectionService:   sectionService,
		favoritesService: favoritesService,
		renderer:         renderer,
		urls:             urls,
		externalUrl:      externalUrl,
	}
}

type feedControllerImpl struct {
	feedService      service.FeedService
	packageService   service.PackageService
	sectionService   service.SectionService
	favoritesService service.FavoritesService
	renderer         templates.Renderer
	urls             templates.URLFunc
	externalUrl      string
}

func (f feedControllerImpl) GlobalFeed(w http.ResponseWriter, r *http.Request) {
	meta := view.FeedMeta{
		Title:       "euscan",
		Link:        absoluteUrl(f.externalUrl, f.urls("index")),
		Description: "Latest package versions found in gentoo, overlays and upstream",
	}
	f.respond(w, r, meta, view.VersionLogFilter{Global: true})
}

func (f feedControllerImpl) PackageFeed(w http.ResponseWriter, r *http.Request) {
	category := getStringParam(r, "category")
	name := getStringParam(r, "package")
	pkg, err := f.packageService.GetPackage(category, name)
	if err != nil {
		renderError(f.renderer, w, r, "Failed to get package", err)
		return
	}
	meta := view.FeedMeta{
		Title:       fmt.Sprintf("euscan - %s", pkg.Atom()),
		Link:        absoluteUrl(f.externalUrl, f.urls("package", "category", category, "package", name)),
		Description: pkg.Description,
	}
	f.respond(w, r, meta, view.VersionLogFilter{PackageIds: []int64{pkg.Id}})
}

func (f feedControllerImpl) CategoryFeed(w http.ResponseWriter, r *http.Request) {
	category := getStringParam(r, "category")
	if err := f.sectionService.CheckCategoryExists(category); err != nil {
		renderError(f.renderer, w, r, "Failed to get category", err)
		return
	}
	meta := view.FeedMeta{
		Title:       fmt.Sprintf("euscan - %s", category),
		Link:        absoluteUrl(f.externalUrl, f.urls("category", "category", category)),
		Description: fmt.Sprintf("Latest versions of packages in %s", category),
	}
	f.respond(w, r, meta, view.VersionLogFilter{Categories: []string{category}})
}

func (f feedControllerImpl) HerdFeed(w http.ResponseWriter, r *http.Request) {
	herd, err := f.sectionService.GetHerd(getStringParam(r, "herd"))
	if err != nil {
		renderError(f.renderer, w, r, "Failed to get herd", err)
		return
	}
	meta := view.FeedMeta{
		Title:       fmt.Sprintf("euscan - %s", herd.Herd),
		Link:        absoluteUrl(f.externalUrl, f.urls("herd", "herd", herd.Herd)),
		Description: fmt.Sprintf("Latest versions of packages maintained by the %s herd", herd.Herd),
	}
	f.respond(w, r, meta, view.VersionLogFilter{HerdIds: []int64{herd.Id}})
}

func (f feedControllerImpl) MaintainerFeed(w http.ResponseWriter, r *http.Request) {
	maintainerId, customErr := getInt64Param(r, "maintainer_id")
	if customErr != nil {
		renderError(f.renderer, w, r, "Invalid maintainer id", customErr)
		return
	}
	maintainer, err := f.sectionService.GetMaintainer(maintainerId)
	if err != nil {
		renderError(f.renderer, w, r, "Failed to get maintainer", err)
		return
	}
	name := maintainer.Name
	if name == "" {
		name = maintainer.Email
	}
	meta := view.FeedMeta{
		Title:       fmt.Sprintf("euscan - %s", name),
		Link:        absoluteUrl(f.externalUrl, f.urls("maintainer", "maintainer_id", strconv.FormatInt(maintainer.Id, 10))),
		Description: fmt.Sprintf("Latest versions of packages maintained by %s", name),
	}
	f.respond(w, r, meta, view.VersionLogFilter{MaintainerIds: []int64{maintainer.Id}})
}

func (f feedControllerImpl) AccountFeed(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)
	favorites, err := f.favoritesService.GetFavorites(ctx.GetUserId())
	if err != nil {
		renderError(f.renderer, w, r, "Failed to get favourites", err)
		return
	}
	meta := view.FeedMeta{
		Title:       fmt.Sprintf("euscan - %s", ctx.GetUserName()),
		Link:        absoluteUrl(f.externalUrl, f.urls("accounts_index")),
		Description: "Latest versions of watched packages",
	}
	f.respond(w, r, meta, f.favoritesService.MakeFeedFilter(favorites))
}

func (f feedControllerImpl) respond(w http.ResponseWriter, r *http.Request, meta view.FeedMeta, scope view.VersionLogFilter) {
	filter, customErr := getVersionLogFilter(r)
	if customErr != nil {
		renderError(f.renderer, w, r, "Invalid feed filter", customErr)
		return
	}
	scope.Gentoo, scope.Overlays, scope.Upstream = filter.Gentoo, filter.Overlays, filter.Upstream
	logs, err := f.feedService.GetVersionLogs(scope)
	if err != nil {
		renderError(f.renderer, w, r, "Failed to get version log", err)
		return
	}
	format := view.FeedFormat(r.URL.Query().Get("format"))
	feed, err := f.feedService.BuildFeed(meta, logs, format, f.packageLink)
	if err != nil {
		renderError(f.renderer, w, r, "Failed to build feed", err)
		return
	}
	respondWithFeed(w, r, feed)
}

func (f feedControllerImpl) packageLink(l view.VersionLog) string {
	return absoluteUrl(f.externalUrl, f.urls("package", "category", l.Category, "package", l.PackageName))
}
