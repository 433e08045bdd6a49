package controller

import (
	"net/http"
	"strconv"

	"github.com/euscan/euscanwww/context"
	"github.com/euscan/euscanwww/metrics"
	"github.com/euscan/euscanwww/service"
	"github.com/euscan/euscanwww/templates"
	"github.com/euscan/euscanwww/view"
)

type FavoriteController interface {
	FavoritePackage(w http.ResponseWriter, r *http.Request)
	UnfavoritePackage(w http.ResponseWriter, r *http.Request)
	FavoriteCategory(w http.ResponseWriter, r *http.Request)
	UnfavoriteCategory(w http.ResponseWriter, r *http.Request)
	FavoriteHerd(w http.ResponseWriter, r *http.Request)
	UnfavoriteHerd(w http.ResponseWriter, r *http.Request)
	FavoriteMaintainer(w http.ResponseWriter, r *http.Request)
	UnfavoriteMaintainer(w http.ResponseWriter, r *http.Request)
}

func NewFavoriteController(favoritesService service.FavoritesService, renderer templates.Renderer, urls templates.URLFunc) FavoriteController {
	return &favoriteControllerImpl{
		favoritesService: favoritesService,
		renderer:         renderer,
		urls:             urls,
	}
}

type favoriteControllerImpl struct {
	favoritesService service.FavoritesService
	renderer         templates.Renderer
	urls             templates.URLFunc
}

func (f favoriteControllerImpl) FavoritePackage(w http.ResponseWriter, r *http.Request) {
	f.setPackage(w, r, true)
}

func (f favoriteControllerImpl) UnfavoritePackage(w http.ResponseWriter, r *http.Request) {
	f.setPackage(w, r, false)
}

func (f favoriteControllerImpl) FavoriteCategory(w http.ResponseWriter, r *http.Request) {
	f.setCategory(w, r, true)
}

func (f favoriteControllerImpl) UnfavoriteCategory(w http.ResponseWriter, r *http.Request) {
	f.setCategory(w, r, false)
}

func (f favoriteControllerImpl) FavoriteHerd(w http.ResponseWriter, r *http.Request) {
	f.setHerd(w, r, true)
}

func (f favoriteControllerImpl) UnfavoriteHerd(w http.ResponseWriter, r *http.Request) {
	f.setHerd(w, r, false)
}

func (f favoriteControllerImpl) FavoriteMaintainer(w http.ResponseWriter, r *http.Request) {
	f.setMaintainer(w, r, true)
}

func (f favoriteControllerImpl) UnfavoriteMaintainer(w http.ResponseWriter, r *http.Request) {
	f.setMaintainer(w, r, false)
}

func (f favoriteControllerImpl) setPackage(w http.ResponseWriter, r *http.Request, favorite bool) {
	category := getStringParam(r, "category")
	name := getStringParam(r, "package")
	ref := view.FavoriteRef{Kind: view.FavoritePackage, Category: category, Package: name}
	f.set(w, r, ref, favorite, f.urls("package", "category", category, "package", name))
}

func (f favoriteControllerImpl) setCategory(w http.ResponseWriter, r *http.Request, favorite bool) {
	category := getStringParam(r, "category")
	ref := view.FavoriteRef{Kind: view.FavoriteCategory, Category: category}
	f.set(w, r, ref, favorite, f.urls("category", "category", category))
}

func (f favoriteControllerImpl) setHerd(w http.ResponseWriter, r *http.Request, favorite bool) {
	herd := getStringParam(r, "herd")
	ref := view.FavoriteRef{Kind: view.FavoriteHerd, Herd: herd}
	f.set(w, r, ref, favorite, f.urls("herd", "herd", herd))
}

func (f favoriteControllerImpl) setMaintainer(w http.ResponseWriter, r *http.Request, favorite bool) {
	maintainerId, customErr := getInt64Param(r, "maintainer_id")
	if customErr != nil {
		renderError(f.renderer, w, r, "Invalid maintainer id", customErr)
		return
	}
	ref := view.FavoriteRef{Kind: view.FavoriteMaintainer, MaintainerId: maintainerId}
	f.set(w, r, ref, favorite, f.urls("maintainer", "maintainer_id", strconv.FormatInt(maintainerId, 10)))
}

func (f favoriteControllerImpl) set(w http.ResponseWriter, r *http.Request, ref view.FavoriteRef, favorite bool, target string) {
	ctx := context.Create(r)
	if err := f.favoritesService.SetFavorite(ctx.GetUserId(), ref, favorite); err != nil {
		renderError(f.renderer, w, r, "Failed to update favourites", err)
		return
	}
	action := "unwatch"
	if favorite {
		action = "watch"
	}
	metrics.FavoriteChanges.WithLabelValues(string(ref.Kind), action).Inc()
	respondWithActionResult(w, r, target)
}
