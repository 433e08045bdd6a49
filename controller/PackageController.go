package controller

import (
	"net/http"

	"github.com/euscan/euscanwww/context"
	"github.com/euscan/euscanwww/service"
	"github.com/euscan/euscanwww/templates"
	"github.com/euscan/euscanwww/view"
	log "github.com/sirupsen/logrus"
)

type PackageController interface {
	Package(w http.ResponseWriter, r *http.Request)
	RefreshPackage(w http.ResponseWriter, r *http.Request)
}

func NewPackageController(packageService service.PackageService, renderer templates.Renderer, urls templates.URLFunc) PackageController {
	return &packageControllerImpl{
		packageService: packageService,
		renderer:       renderer,
		urls:           urls,
	}
}

type packageControllerImpl struct {
	packageService service.PackageService
	renderer       templates.Renderer
	urls           templates.URLFunc
}

func (p packageControllerImpl) Package(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)
	category := getStringParam(r, "category")
	name := getStringParam(r, "package")
	details, err := p.packageService.GetPackageDetails(category, name, ctx.GetUserId())
	if err != nil {
		renderError(p.renderer, w, r, "Failed to get package", err)
		return
	}
	renderPage(p.renderer, w, r, "package", details.Atom(), view.PackagePage{
		Details:    details,
		Watch:      makeWatchButton(p.urls, ctx, view.FavoritePackage, details.IsFavorite, "category", category, "package", name),
		FeedUrl:    p.urls("package_feed", "category", category, "package", name),
		RefreshUrl: p.urls("refresh_package", "category", category, "package", name),
	})
}

func (p packageControllerImpl) RefreshPackage(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)
	category := getStringParam(r, "category")
	name := getStringParam(r, "package")
	queued, err := p.packageService.RequestRefresh(category, name, ctx.GetUserId())
	if err != nil {
		renderError(p.renderer, w, r, "Failed to request package refresh", err)
		return
	}
	if queued {
		log.Infof("User %s requested refresh of %s/%s", ctx.GetUserName(), category, name)
	}
	respondWithActionResult(w, r, p.urls("package", "category", category, "package", name))
}
