package service

import (
	"net/http"
	"strconv"

	"github.com/euscan/euscanwww/entity"
	"github.com/euscan/euscanwww/exception"
	"github.com/euscan/euscanwww/repository"
	"github.com/euscan/euscanwww/view"
)

// SectionService serves the category, herd, maintainer and overlay listings.
type SectionService interface {
	GetCategories() ([]view.Category, error)
	GetCategoryPackages(category string, userId string) (*view.PackageList, error)
	GetHerds() ([]view.Herd, error)
	GetHerd(herd string) (*view.Herd, error)
	GetHerdPackages(herd string, userId string) (*view.PackageList, error)
	GetMaintainers() ([]view.Maintainer, error)
	GetMaintainer(maintainerId int64) (*view.Maintainer, error)
	GetMaintainerPackages(maintainerId int64, userId string) (*view.PackageList, error)
	GetOverlays() ([]view.Overlay, error)
	GetOverlayPackages(overlay string) (*view.PackageList, error)
	CheckCategoryExists(category string) error
}

func NewSectionService(packageRepository repository.PackageRepository,
	herdRepository repository.HerdRepository,
	maintainerRepository repository.MaintainerRepository,
	favoritesRepository repository.FavoritesRepository) SectionService {
	return &sectionServiceImpl{
		packageRepository:    packageRepository,
		herdRepository:       herdRepository,
		maintainerRepository: maintainerRepository,
		favoritesRepository:  favoritesRepository,
	}
}

type sectionServiceImpl struct {
	packageRepository    repository.PackageRepository
	herdRepository       repository.HerdRepository
	maintainerRepository repository.MaintainerRepository
	favoritesRepository  repository.FavoritesRepository
}

func (s sectionServiceImpl) GetCategories() ([]view.Category, error) {
	ents, err := s.packageRepository.GetCategories()
	if err != nil {
		return nil, err
	}
	result := make([]view.Category, 0, len(ents))
	for i := range ents {
		result = append(result, entity.MakeCategoryView(&ents[i]))
	}
	return result, nil
}

func (s sectionServiceImpl) CheckCategoryExists(category string) error {
	exists, err := s.packageRepository.CategoryExists(category)
	if err != nil {
		return err
	}
	if !exists {
		return &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.CategoryNotFound,
			Message: exception.CategoryNotFoundMsg,
			Params:  map[string]interface{}{"category": category},
		}
	}
	return nil
}

func (s sectionServiceImpl) GetCategoryPackages(category string, userId string) (*view.PackageList, error) {
	if err := s.CheckCategoryExists(category); err != nil {
		return nil, err
	}
	ents, err := s.packageRepository.GetPackagesByCategory(category)
	if err != nil {
		return nil, err
	}
	result := &view.PackageList{
		Title:    category,
		Kind:     view.FavoriteCategory,
		Key:      category,
		Packages: entity.MakePackageViews(ents),
	}
	if userId != "" {
		result.IsFavorite, err = s.favoritesRepository.IsFavoriteCategory(userId, category)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s sectionServiceImpl) GetHerds() ([]view.Herd, error) {
	ents, err := s.herdRepository.GetHerds()
	if err != nil {
		return nil, err
	}
	result := make([]view.Herd, 0, len(ents))
	for i := range ents {
		result = append(result, entity.MakeHerdCountersView(&ents[i]))
	}
	return result, nil
}

func (s sectionServiceImpl) GetHerd(herd string) (*view.Herd, error) {
	ent, err := s.herdRepository.GetHerd(herd)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.HerdNotFound,
			Message: exception.HerdNotFoundMsg,
			Params:  map[string]interface{}{"herd": herd},
		}
	}
	result := entity.MakeHerdView(ent)
	return &result, nil
}

func (s sectionServiceImpl) GetHerdPackages(herd string, userId string) (*view.PackageList, error) {
	h, err := s.GetHerd(herd)
	if err != nil {
		return nil, err
	}
	ents, err := s.packageRepository.GetPackagesByHerd(h.Id)
	if err != nil {
		return nil, err
	}
	result := &view.PackageList{
		Title:    h.Herd,
		Kind:     view.FavoriteHerd,
		Key:      h.Herd,
		Packages: entity.MakePackageViews(ents),
		Extra:    *h,
	}
	if userId != "" {
		result.IsFavorite, err = s.favoritesRepository.IsFavoriteHerd(userId, h.Id)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s sectionServiceImpl) GetMaintainers() ([]view.Maintainer, error) {
	ents, err := s.maintainerRepository.GetMaintainers()
	if err != nil {
		return nil, err
	}
	result := make([]view.Maintainer, 0, len(ents))
	for i := range ents {
		result = append(result, entity.MakeMaintainerCountersView(&ents[i]))
	}
	return result, nil
}

func (s sectionServiceImpl) GetMaintainer(maintainerId int64) (*view.Maintainer, error) {
	ent, err := s.maintainerRepository.GetMaintainerById(maintainerId)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.MaintainerNotFound,
			Message: exception.MaintainerNotFoundMsg,
			Params:  map[string]interface{}{"maintainerId": maintainerId},
		}
	}
	result := entity.MakeMaintainerView(ent)
	return &result, nil
}

func (s sectionServiceImpl) GetMaintainerPackages(maintainerId int64, userId string) (*view.PackageList, error) {
	m, err := s.GetMaintainer(maintainerId)
	if err != nil {
		return nil, err
	}
	ents, err := s.packageRepository.GetPackagesByMaintainer(m.Id)
	if err != nil {
		return nil, err
	}
	title := m.Name
	if title == "" {
		title = m.Email
	}
	result := &view.PackageList{
		Title:    title,
		Kind:     view.FavoriteMaintainer,
		Key:      strconv.FormatInt(m.Id, 10),
		Packages: entity.MakePackageViews(ents),
		Extra:    *m,
	}
	if userId != "" {
		result.IsFavorite, err = s.favoritesRepository.IsFavoriteMaintainer(userId, m.Id)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s sectionServiceImpl) GetOverlays() ([]view.Overlay, error) {
	ents, err := s.packageRepository.GetOverlays()
	if err != nil {
		return nil, err
	}
	result := make([]view.Overlay, 0, len(ents))
	for _, ent := range ents {
		result = append(result, view.Overlay{Name: ent.Overlay, NPackages: ent.NPackages})
	}
	return result, nil
}

func (s sectionServiceImpl) GetOverlayPackages(overlay string) (*view.PackageList, error) {
	exists, err := s.packageRepository.OverlayExists(overlay)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.OverlayNotFound,
			Message: exception.OverlayNotFoundMsg,
			Params:  map[string]interface{}{"overlay": overlay},
		}
	}
	ents, err := s.packageRepository.GetPackagesByOverlay(overlay)
	if err != nil {
		return nil, err
	}
	return &view.PackageList{
		Title:    overlay,
		Key:      overlay,
		Packages: entity.MakePackageViews(ents),
	}, nil
}
