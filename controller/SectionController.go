package controller

import (
	"net/http"
	"strconv"

	"github.com/euscan/euscanwww/context"
	"github.com/euscan/euscanwww/service"
	"github.com/euscan/euscanwww/templates"
	"github.com/euscan/euscanwww/view"
)

type SectionController interface {
	Categories(w http.ResponseWriter, r *http.Request)
	Category(w http.ResponseWriter, r *http.Request)
	Herds(w http.ResponseWriter, r *http.Request)
	Herd(w http.ResponseWriter, r *http.Request)
	Maintainers(w http.ResponseWriter, r *http.Request)
	Maintainer(w http.ResponseWriter, r *http.Request)
	Overlays(w http.ResponseWriter, r *http.Request)
	Overlay(w http.ResponseWriter, r *http.Request)
}

func NewSectionController(sectionService service.SectionService, renderer templates.Renderer, urls templates.URLFunc) SectionController {
	return &sectionControllerImpl{
		sectionService: sectionService,
		renderer:       renderer,
		urls:           urls,
	}
}

type sectionControllerImpl struct {
	sectionService service.SectionService
	renderer       templates.Renderer
	urls           templates.URLFunc
}

func (s sectionControllerImpl) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.sectionService.GetCategories()
	if err != nil {
		renderError(s.renderer, w, r, "Failed to get categories", err)
		return
	}
	renderPage(s.renderer, w, r, "categories", "Categories", categories)
}

func (s sectionControllerImpl) Category(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)
	category := getStringParam(r, "category")
	list, err := s.sectionService.GetCategoryPackages(category, ctx.GetUserId())
	if err != nil {
		renderError(s.renderer, w, r, "Failed to get category packages", err)
		return
	}
	list.FeedUrl = s.urls("category_feed", "category", category)
	s.renderListing(w, r, ctx, list, "category", category)
}

func (s sectionControllerImpl) Herds(w http.ResponseWriter, r *http.Request) {
	herds, err := s.sectionService.GetHerds()
	if err != nil {
		renderError(s.renderer, w, r, "Failed to get herds", err)
		return
	}
	renderPage(s.renderer, w, r, "herds", "Herds", herds)
}

func (s sectionControllerImpl) Herd(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)
	herd := getStringParam(r, "herd")
	list, err := s.sectionService.GetHerdPackages(herd, ctx.GetUserId())
	if err != nil {
		renderError(s.renderer, w, r, "Failed to get herd packages", err)
		return
	}
	list.FeedUrl = s.urls("herd_feed", "herd", herd)
	s.renderListing(w, r, ctx, list, "herd", herd)
}

func (s sectionControllerImpl) Maintainers(w http.ResponseWriter, r *http.Request) {
	maintainers, err := s.sectionService.GetMaintainers()
	if err != nil {
		renderError(s.renderer, w, r, "Failed to get maintainers", err)
		return
	}
	renderPage(s.renderer, w, r, "maintainers", "Maintainers", maintainers)
}

func (s sectionControllerImpl) Maintainer(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)
	maintainerId, customErr := getInt64Param(r, "maintainer_id")
	if customErr != nil {
		renderError(s.renderer, w, r, "Invalid maintainer id", customErr)
		return
	}
	list, err := s.sectionService.GetMaintainerPackages(maintainerId, ctx.GetUserId())
	if err != nil {
		renderError(s.renderer, w, r, "Failed to get maintainer packages", err)
		return
	}
	id := strconv.FormatInt(maintainerId, 10)
	list.FeedUrl = s.urls("maintainer_feed", "maintainer_id", id)
	s.renderListing(w, r, ctx, list, "maintainer_id", id)
}

func (s sectionControllerImpl) Overlays(w http.ResponseWriter, r *http.Request) {
	overlays, err := s.sectionService.GetOverlays()
	if err != nil {
		renderError(s.renderer, w, r, "Failed to get overlays", err)
		return
	}
	renderPage(s.renderer, w, r, "overlays", "Overlays", overlays)
}

func (s sectionControllerImpl) Overlay(w http.ResponseWriter, r *http.Request) {
	list, err := s.sectionService.GetOverlayPackages(getStringParam(r, "overlay"))
	if err != nil {
		renderError(s.renderer, w, r, "Failed to get overlay packages", err)
		return
	}
	renderPage(s.renderer, w, r, "packages", list.Title, view.ListingPage{PackageList: *list})
}

func (s sectionControllerImpl) renderListing(w http.ResponseWriter, r *http.Request, ctx context.SecurityContext, list *view.PackageList, pairs ...string) {
	renderPage(s.renderer, w, r, "packages", list.Title, view.ListingPage{
		PackageList: *list,
		Watch:       makeWatchButton(s.urls, ctx, list.Kind, list.IsFavorite, pairs...),
	})
}
