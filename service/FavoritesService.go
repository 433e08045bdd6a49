package service

import (
	"net/http"

	"github.com/euscan/euscanwww/entity"
	"github.com/euscan/euscanwww/exception"
	"github.com/euscan/euscanwww/repository"
	"github.com/euscan/euscanwww/view"
	log "github.com/sirupsen/logrus"
)

type FavoritesService interface {
	SetFavorite(userId string, ref view.FavoriteRef, favorite bool) error
	GetFavorites(userId string) (*view.Favorites, error)
	GetFavoritePackages(userId string) ([]view.Package, error)
	GetFavoriteCategories(userId string) ([]view.Category, error)
	GetFavoriteHerds(userId string) ([]view.Herd, error)
	GetFavoriteMaintainers(userId string) ([]view.Maintainer, error)
	GetAccountSummary(user view.User, recentLimit int) (*view.AccountSummary, error)
	MakeFeedFilter(favorites *view.Favorites) view.VersionLogFilter
}

func NewFavoritesService(favoritesRepository repository.FavoritesRepository,
	packageRepository repository.PackageRepository,
	herdRepository repository.HerdRepository,
	maintainerRepository repository.MaintainerRepository,
	versionLogRepository repository.VersionLogRepository,
	packageService PackageService,
	sectionService SectionService) FavoritesService {
	return &favoritesServiceImpl{
		favoritesRepository:  favoritesRepository,
		packageRepository:    packageRepository,
		herdRepository:       herdRepository,
		maintainerRepository: maintainerRepository,
		versionLogRepository: versionLogRepository,
		packageService:       packageService,
		sectionService:       sectionService,
	}
}

type favoritesServiceImpl struct {
	favoritesRepository  repository.FavoritesRepository
	packageRepository    repository.PackageRepository
	herdRepository       repository.HerdRepository
	maintainerRepository repository.MaintainerRepository
	versionLogRepository repository.VersionLogRepository
	packageService       PackageService
	sectionService       SectionService
}

// SetFavorite adds (favorite=true) or removes the entity from the user's watch list.
// Both directions are idempotent.
func (f favoritesServiceImpl) SetFavorite(userId string, ref view.FavoriteRef, favorite bool) error {
	var err error
	switch ref.Kind {
	case view.FavoritePackage:
		var pkg *view.Package
		if pkg, err = f.packageService.GetPackage(ref.Category, ref.Package); err != nil {
			return err
		}
		if favorite {
			err = f.favoritesRepository.AddPackageToFavorites(userId, pkg.Id)
		} else {
			err = f.favoritesRepository.RemovePackageFromFavorites(userId, pkg.Id)
		}
	case view.FavoriteCategory:
		if err = f.sectionService.CheckCategoryExists(ref.Category); err != nil {
			return err
		}
		if favorite {
			err = f.favoritesRepository.AddCategoryToFavorites(userId, ref.Category)
		} else {
			err = f.favoritesRepository.RemoveCategoryFromFavorites(userId, ref.Category)
		}
	case view.FavoriteHerd:
		var herd *view.Herd
		if herd, err = f.sectionService.GetHerd(ref.Herd); err != nil {
			return err
		}
		if favorite {
			err = f.favoritesRepository.AddHerdToFavorites(userId, herd.Id)
		} else {
			err = f.favoritesRepository.RemoveHerdFromFavorites(userId, herd.Id)
		}
	case view.FavoriteMaintainer:
		var maintainer *view.Maintainer
		if maintainer, err = f.sectionService.GetMaintainer(ref.MaintainerId); err != nil {
			return err
		}
		if favorite {
			err = f.favoritesRepository.AddMaintainerToFavorites(userId, maintainer.Id)
		} else {
			err = f.favoritesRepository.RemoveMaintainerFromFavorites(userId, maintainer.Id)
		}
	default:
		return &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.UnknownFavoriteKind,
			Message: exception.UnknownFavoriteKindMsg,
			Params:  map[string]interface{}{"kind": ref.Kind},
		}
	}
	if err != nil {
		return err
	}
	log.Debugf("User %s set favourite=%v for %s %+v", userId, favorite, ref.Kind, ref)
	return nil
}

func (f favoritesServiceImpl) GetFavorites(userId string) (*view.Favorites, error) {
	var err error
	result := &view.Favorites{}
	if result.PackageIds, err = f.favoritesRepository.GetFavoritePackageIds(userId); err != nil {
		return nil, err
	}
	if result.Categories, err = f.favoritesRepository.GetFavoriteCategories(userId); err != nil {
		return nil, err
	}
	if result.HerdIds, err = f.favoritesRepository.GetFavoriteHerdIds(userId); err != nil {
		return nil, err
	}
	if result.MaintainerIds, err = f.favoritesRepository.GetFavoriteMaintainerIds(userId); err != nil {
		return nil, err
	}
	return result, nil
}

func (f favoritesServiceImpl) GetFavoritePackages(userId string) ([]view.Package, error) {
	ids, err := f.favoritesRepository.GetFavoritePackageIds(userId)
	if err != nil {
		return nil, err
	}
	ents, err := f.packageRepository.GetPackagesByIds(ids)
	if err != nil {
		return nil, err
	}
	return entity.MakePackageViews(ents), nil
}

func (f favoritesServiceImpl) GetFavoriteCategories(userId string) ([]view.Category, error) {
	categories, err := f.favoritesRepository.GetFavoriteCategories(userId)
	if err != nil {
		return nil, err
	}
	ents, err := f.packageRepository.GetCategoriesByNames(categories)
	if err != nil {
		return nil, err
	}
	result := make([]view.Category, 0, len(ents))
	for i := range ents {
		result = append(result, entity.MakeCategoryView(&ents[i]))
	}
	return result, nil
}

func (f favoritesServiceImpl) GetFavoriteHerds(userId string) ([]view.Herd, error) {
	ids, err := f.favoritesRepository.GetFavoriteHerdIds(userId)
	if err != nil {
		return nil, err
	}
	ents, err := f.herdRepository.GetHerdsByIds(ids)
	if err != nil {
		return nil, err
	}
	result := make([]view.Herd, 0, len(ents))
	for i := range ents {
		result = append(result, entity.MakeHerdCountersView(&ents[i]))
	}
	return result, nil
}

func (f favoritesServiceImpl) GetFavoriteMaintainers(userId string) ([]view.Maintainer, error) {
	ids, err := f.favoritesRepository.GetFavoriteMaintainerIds(userId)
	if err != nil {
		return nil, err
	}
	ents, err := f.maintainerRepository.GetMaintainersByIds(ids)
	if err != nil {
		return nil, err
	}
	result := make([]view.Maintainer, 0, len(ents))
	for i := range ents {
		result = append(result, entity.MakeMaintainerCountersView(&ents[i]))
	}
	return result, nil
}

func (f favoritesServiceImpl) GetAccountSummary(user view.User, recentLimit int) (*view.AccountSummary, error) {
	favorites, err := f.GetFavorites(user.Id)
	if err != nil {
		return nil, err
	}
	summary := &view.AccountSummary{
		User:           user,
		NPackages:      len(favorites.PackageIds),
		NCategories:    len(favorites.Categories),
		NHerds:         len(favorites.HerdIds),
		NMaintainers:   len(favorites.MaintainerIds),
		RecentVersions: make([]view.VersionLog, 0),
	}
	filter := f.MakeFeedFilter(favorites)
	filter.Limit = recentLimit
	logEnts, err := f.versionLogRepository.GetVersionLogs(filter)
	if err != nil {
		return nil, err
	}
	for i := range logEnts {
		summary.RecentVersions = append(summary.RecentVersions, entity.MakeVersionLogView(&logEnts[i]))
	}
	return summary, nil
}

// MakeFeedFilter selects the version log of everything the user watches.
func (f favoritesServiceImpl) MakeFeedFilter(favorites *view.Favorites) view.VersionLogFilter {
	return view.VersionLogFilter{
		PackageIds:    favorites.PackageIds,
		Categories:    favorites.Categories,
		HerdIds:       favorites.HerdIds,
		MaintainerIds: favorites.MaintainerIds,
		Gentoo:        true,
		Overlays:      true,
		Upstream:      true,
	}
}
