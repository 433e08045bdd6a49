package service

import (
	"net/http"

	"github.com/euscan/euscanwww/entity"
	"github.com/euscan/euscanwww/exception"
	"github.com/euscan/euscanwww/repository"
	"github.com/euscan/euscanwww/view"
	log "github.com/sirupsen/logrus"
)

type PackageService interface {
	GetPackage(category string, name string) (*view.Package, error)
	GetPackageDetails(category string, name string, userId string) (*view.PackageDetails, error)
	RequestRefresh(category string, name string, userId string) (bool, error)
}

func NewPackageService(packageRepository repository.PackageRepository,
	versionLogRepository repository.VersionLogRepository,
	favoritesRepository repository.FavoritesRepository,
	refreshQueryRepository repository.RefreshQueryRepository,
	packageLogLimit int) PackageService {
	return &packageServiceImpl{
		packageRepository:      packageRepository,
		versionLogRepository:   versionLogRepository,
		favoritesRepository:    favoritesRepository,
		refreshQueryRepository: refreshQueryRepository,
		packageLogLimit:        packageLogLimit,
	}
}

type packageServiceImpl struct {
	packageRepository      repository.PackageRepository
	versionLogRepository   repository.VersionLogRepository
	favoritesRepository    repository.FavoritesRepository
	refreshQueryRepository repository.RefreshQueryRepository
	packageLogLimit        int
}

func (p packageServiceImpl) GetPackage(category string, name string) (*view.Package, error) {
	ent, err := p.packageRepository.GetPackage(category, name)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.PackageNotFound,
			Message: exception.PackageNotFoundMsg,
			Params:  map[string]interface{}{"category": category, "package": name},
		}
	}
	pkg := entity.MakePackageView(ent)
	return &pkg, nil
}

func (p packageServiceImpl) GetPackageDetails(category string, name string, userId string) (*view.PackageDetails, error) {
	pkg, err := p.GetPackage(category, name)
	if err != nil {
		return nil, err
	}
	details := &view.PackageDetails{Package: *pkg}

	herdEnts, err := p.packageRepository.GetPackageHerds(pkg.Id)
	if err != nil {
		return nil, err
	}
	details.Herds = make([]view.Herd, 0, len(herdEnts))
	for i := range herdEnts {
		details.Herds = append(details.Herds, entity.MakeHerdView(&herdEnts[i]))
	}

	maintainerEnts, err := p.packageRepository.GetPackageMaintainers(pkg.Id)
	if err != nil {
		return nil, err
	}
	details.Maintainers = make([]view.Maintainer, 0, len(maintainerEnts))
	for i := range maintainerEnts {
		details.Maintainers = append(details.Maintainers, entity.MakeMaintainerView(&maintainerEnts[i]))
	}

	versionEnts, err := p.packageRepository.GetPackageVersions(pkg.Id)
	if err != nil {
		return nil, err
	}
	versions := make([]view.Version, 0, len(versionEnts))
	for i := range versionEnts {
		versions = append(versions, entity.MakeVersionView(&versionEnts[i]))
	}
	details.PackagedVersions, details.OverlayVersions, details.UpstreamVersions = view.SplitVersions(versions)

	logEnts, err := p.versionLogRepository.GetVersionLogs(view.VersionLogFilter{
		PackageIds: []int64{pkg.Id},
		Gentoo:     true,
		Overlays:   true,
		Upstream:   true,
		Limit:      p.packageLogLimit,
	})
	if err != nil {
		return nil, err
	}
	details.Log = make([]view.VersionLog, 0, len(logEnts))
	for i := range logEnts {
		details.Log = append(details.Log, entity.MakeVersionLogView(&logEnts[i]))
	}

	if userId != "" {
		details.IsFavorite, err = p.favoritesRepository.IsFavoritePackage(userId, pkg.Id)
		if err != nil {
			return nil, err
		}
		details.RefreshRequested, err = p.refreshQueryRepository.IsRefreshRequested(pkg.Id, userId)
		if err != nil {
			return nil, err
		}
	}
	return details, nil
}

// RequestRefresh queues the package for rescanning. A user is only counted once per package.
func (p packageServiceImpl) RequestRefresh(category string, name string, userId string) (bool, error) {
	pkg, err := p.GetPackage(category, name)
	if err != nil {
		return false, err
	}
	added, err := p.refreshQueryRepository.AddRefreshRequest(pkg.Id, userId)
	if err != nil {
		return false, err
	}
	if added {
		log.Infof("Refresh of %s requested by user %s", pkg.Atom(), userId)
	}
	return added, nil
}
