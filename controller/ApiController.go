package controller

import (
	"net/http"
	"time"

	"github.com/euscan/euscanwww/service"
	"github.com/euscan/euscanwww/utils"
	"github.com/euscan/euscanwww/view"
	"github.com/iancoleman/orderedmap"
)

// ApiController serves the read-only JSON documents. Keys keep the order they are set in.
type ApiController interface {
	Statistics(w http.ResponseWriter, r *http.Request)
	Categories(w http.ResponseWriter, r *http.Request)
	Herds(w http.ResponseWriter, r *http.Request)
	Maintainers(w http.ResponseWriter, r *http.Request)
	Package(w http.ResponseWriter, r *http.Request)
}

func NewApiController(statsService service.StatsService, sectionService service.SectionService, packageService service.PackageService) ApiController {
	return &apiControllerImpl{
		statsService:   statsService,
		sectionService: sectionService,
		packageService: packageService,
	}
}

type apiControllerImpl struct {
	statsService   service.StatsService
	sectionService service.SectionService
	packageService service.PackageService
}

func (a apiControllerImpl) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := a.statsService.GetIndexStats(r.Context())
	if err != nil {
		utils.RespondWithError(w, "Failed to get statistics", err)
		return
	}
	result := orderedmap.New()
	result.Set("packages", stats.NPackages)
	result.Set("categories", stats.NCategories)
	result.Set("herds", stats.NHerds)
	result.Set("maintainers", stats.NMaintainers)
	result.Set("overlays", stats.NOverlays)
	if stats.LastSnapshot != nil {
		snapshot := orderedmap.New()
		snapshot.Set("datetime", stats.LastSnapshot.Datetime.UTC().Format(time.RFC3339))
		setCounters(snapshot, stats.LastSnapshot.Counters)
		result.Set("last_snapshot", snapshot)
	} else {
		result.Set("last_snapshot", nil)
	}
	utils.RespondWithJson(w, http.StatusOK, result)
}

func (a apiControllerImpl) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.sectionService.GetCategories()
	if err != nil {
		utils.RespondWithError(w, "Failed to get categories", err)
		return
	}
	items := make([]*orderedmap.OrderedMap, 0, len(categories))
	for _, c := range categories {
		item := orderedmap.New()
		item.Set("category", c.Name)
		setCounters(item, c.Counters)
		items = append(items, item)
	}
	result := orderedmap.New()
	result.Set("categories", items)
	utils.RespondWithJson(w, http.StatusOK, result)
}

func (a apiControllerImpl) Herds(w http.ResponseWriter, r *http.Request) {
	herds, err := a.sectionService.GetHerds()
	if err != nil {
		utils.RespondWithError(w, "Failed to get herds", err)
		return
	}
	items := make([]*orderedmap.OrderedMap, 0, len(herds))
	for _, h := range herds {
		item := orderedmap.New()
		item.Set("herd", h.Herd)
		item.Set("email", h.Email)
		setCounters(item, h.Counters)
		items = append(items, item)
	}
	result := orderedmap.New()
	result.Set("herds", items)
	utils.RespondWithJson(w, http.StatusOK, result)
}

func (a apiControllerImpl) Maintainers(w http.ResponseWriter, r *http.Request) {
	maintainers, err := a.sectionService.GetMaintainers()
	if err != nil {
		utils.RespondWithError(w, "Failed to get maintainers", err)
		return
	}
	items := make([]*orderedmap.OrderedMap, 0, len(maintainers))
	for _, m := range maintainers {
		item := orderedmap.New()
		item.Set("id", m.Id)
		item.Set("name", m.Name)
		item.Set("email", m.Email)
		setCounters(item, m.Counters)
		items = append(items, item)
	}
	result := orderedmap.New()
	result.Set("maintainers", items)
	utils.RespondWithJson(w, http.StatusOK, result)
}

func (a apiControllerImpl) Package(w http.ResponseWriter, r *http.Request) {
	details, err := a.packageService.GetPackageDetails(getStringParam(r, "category"), getStringParam(r, "package"), "")
	if err != nil {
		utils.RespondWithError(w, "Failed to get package", err)
		return
	}
	herds := make([]string, 0, len(details.Herds))
	for _, h := range details.Herds {
		herds = append(herds, h.Herd)
	}
	maintainers := make([]*orderedmap.OrderedMap, 0, len(details.Maintainers))
	for _, m := range details.Maintainers {
		item := orderedmap.New()
		item.Set("name", m.Name)
		item.Set("email", m.Email)
		maintainers = append(maintainers, item)
	}

	result := orderedmap.New()
	result.Set("category", details.Category)
	result.Set("name", details.Name)
	result.Set("description", details.Description)
	result.Set("homepage", details.Homepage)
	result.Set("herds", herds)
	result.Set("maintainers", maintainers)
	result.Set("packaged", makeVersionItems(details.PackagedVersions))
	result.Set("overlay", makeVersionItems(details.OverlayVersions))
	result.Set("upstream", makeVersionItems(details.UpstreamVersions))
	utils.RespondWithJson(w, http.StatusOK, result)
}

func setCounters(item *orderedmap.OrderedMap, c view.Counters) {
	item.Set("n_packages", c.NPackages)
	item.Set("n_packages_gentoo", c.NPackagesGentoo)
	item.Set("n_packages_overlay", c.NPackagesOverlay)
	item.Set("n_packages_outdated", c.NPackagesOutdated)
	item.Set("n_versions_gentoo", c.NVersionsGentoo)
	item.Set("n_versions_overlay", c.NVersionsOverlay)
	item.Set("n_versions_upstream", c.NVersionsUpstream)
}

func makeVersionItems(versions []view.Version) []*orderedmap.OrderedMap {
	items := make([]*orderedmap.OrderedMap, 0, len(versions))
	for _, v := range versions {
		item := orderedmap.New()
		item.Set("version", v.Version)
		item.Set("revision", v.Revision)
		item.Set("slot", v.Slot)
		item.Set("overlay", v.Overlay)
		if !v.Packaged {
			item.Set("urls", v.Urls)
			item.Set("vtype", v.VType)
			item.Set("handler", v.Handler)
			item.Set("confidence", v.Confidence)
		}
		items = append(items, item)
	}
	return items
}
