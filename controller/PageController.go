package controller

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/euscan/euscanwww/service"
	"github.com/euscan/euscanwww/templates"
	"github.com/euscan/euscanwww/view"
)

const statisticsPageSize = 50

type PageController interface {
	Index(w http.ResponseWriter, r *http.Request)
	World(w http.ResponseWriter, r *http.Request)
	About(w http.ResponseWriter, r *http.Request)
	Api(w http.ResponseWriter, r *http.Request)
	Statistics(w http.ResponseWriter, r *http.Request)
}

func NewPageController(statsService service.StatsService, feedService service.FeedService, renderer templates.Renderer, urls templates.URLFunc, recentVersions int) PageController {
	return &pageControllerImpl{
		statsService:   statsService,
		feedService:    feedService,
		renderer:       renderer,
		urls:           urls,
		recentVersions: recentVersions,
	}
}

type pageControllerImpl struct {
	statsService   service.StatsService
	feedService    service.FeedService
	renderer       templates.Renderer
	urls           templates.URLFunc
	recentVersions int
}

func (p pageControllerImpl) Index(w http.ResponseWriter, r *http.Request) {
	stats, err := p.statsService.GetIndexStats(r.Context())
	if err != nil {
		renderError(p.renderer, w, r, "Failed to get index statistics", err)
		return
	}
	recent := make([]view.VersionLog, 0)
	if p.recentVersions > 0 {
		recent, err = p.feedService.GetVersionLogs(view.VersionLogFilter{
			Global:   true,
			Gentoo:   true,
			Overlays: true,
			Upstream: true,
			Limit:    p.recentVersions,
		})
		if err != nil {
			renderError(p.renderer, w, r, "Failed to get recent versions", err)
			return
		}
	}
	renderPage(p.renderer, w, r, "index", "", view.IndexPage{Stats: stats, Recent: recent})
}

func (p pageControllerImpl) World(w http.ResponseWriter, r *http.Request) {
	renderPage(p.renderer, w, r, "world", "Scan your world", nil)
}

func (p pageControllerImpl) About(w http.ResponseWriter, r *http.Request) {
	renderPage(p.renderer, w, r, "about", "About", nil)
}

func (p pageControllerImpl) Api(w http.ResponseWriter, r *http.Request) {
	renderPage(p.renderer, w, r, "api", "API", nil)
}

func (p pageControllerImpl) Statistics(w http.ResponseWriter, r *http.Request) {
	page, customErr := getPageQueryParam(r)
	if customErr != nil {
		renderError(p.renderer, w, r, "Invalid page", customErr)
		return
	}
	snapshots, err := p.statsService.GetHistory(r.Context(), view.StatsScopeWorld, "", page, statisticsPageSize)
	if err != nil {
		renderError(p.renderer, w, r, "Failed to get statistics", err)
		return
	}
	content := view.StatisticsPage{Snapshots: snapshots, Page: page}
	if page > 0 {
		content.PrevUrl = p.pageUrl(page - 1)
	}
	if len(snapshots) == statisticsPageSize {
		content.NextUrl = p.pageUrl(page + 1)
	}
	renderPage(p.renderer, w, r, "statistics", "Statistics", content)
}

func (p pageControllerImpl) pageUrl(page int) string {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	return p.urls("statistics") + "?" + query.Encode()
}
