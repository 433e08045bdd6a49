package testutil

import (
	"sort"

	"github.com/euscan/euscanwww/entity"
	"github.com/euscan/euscanwww/view"
)

func (s *Store) GetPackage(category string, name string) (*entity.PackageEntity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	for i := range s.Packages {
		if s.Packages[i].Category == category && s.Packages[i].Name == name {
			result := s.Packages[i]
			return &result, nil
		}
	}
	return nil, nil
}

func (s *Store) GetPackagesByIds(ids []int64) ([]entity.PackageEntity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.filterPackages(func(p *entity.PackageEntity) bool {
		return containsInt64(ids, p.Id)
	}), nil
}

func (s *Store) GetPackagesByCategory(category string) ([]entity.PackageEntity, error) {
	return s.GetPackagesByCategories([]string{category})
}

func (s *Store) GetPackagesByCategories(categories []string) ([]entity.PackageEntity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.filterPackages(func(p *entity.PackageEntity) bool {
		return containsString(categories, p.Category)
	}), nil
}

func (s *Store) GetPackagesByHerd(herdId int64) ([]entity.PackageEntity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	ids := s.herdPackageIds(herdId)
	return s.filterPackages(func(p *entity.PackageEntity) bool {
		return ids[p.Id]
	}), nil
}

func (s *Store) GetPackagesByMaintainer(maintainerId int64) ([]entity.PackageEntity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	ids := s.maintainerPackageIds(maintainerId)
	return s.filterPackages(func(p *entity.PackageEntity) bool {
		return ids[p.Id]
	}), nil
}

func (s *Store) GetPackagesByOverlay(overlay string) ([]entity.PackageEntity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	ids := make(map[int64]bool)
	for _, v := range s.Versions {
		if v.Overlay == overlay {
			ids[v.PackageId] = true
		}
	}
	return s.filterPackages(func(p *entity.PackageEntity) bool {
		return ids[p.Id]
	}), nil
}

func (s *Store) FindPackages(atoms []string, names []string) ([]entity.PackageEntity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.filterPackages(func(p *entity.PackageEntity) bool {
		return containsString(atoms, p.Category+"/"+p.Name) || containsString(names, p.Name)
	}), nil
}

func (s *Store) GetAllPackages() ([]entity.PackageEntity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.filterPackages(func(p *entity.PackageEntity) bool {
		return true
	}), nil
}

func (s *Store) GetPackageVersions(packageId int64) ([]entity.VersionEntity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	result := make([]entity.VersionEntity, 0)
	for _, v := range s.Versions {
		if v.PackageId == packageId {
			result = append(result, v)
		}
	}
	return result, nil
}

func (s *Store) GetPackageHerds(packageId int64) ([]entity.HerdEntity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	result := make([]entity.HerdEntity, 0)
	for _, ph := range s.PackageHerds {
		if ph.PackageId != packageId {
			continue
		}
		for _, h := range s.Herds {
			if h.Id == ph.HerdId {
				result = append(result, h)
			}
		}
	}
	return result, nil
}

func (s *Store) GetPackageMaintainers(packageId int64) ([]entity.MaintainerEntity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	result := make([]entity.MaintainerEntity, 0)
	for _, pm := range s.PackageMaintainers {
		if pm.PackageId != packageId {
			continue
		}
		for _, m := range s.Maintainers {
			if m.Id == pm.MaintainerId {
				result = append(result, m)
			}
		}
	}
	return result, nil
}

func (s *Store) GetCategories() ([]entity.CategoryCountersEntity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.categories(nil), nil
}

func (s *Store) GetCategoriesByNames(categories []string) ([]entity.CategoryCountersEntity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.categories(categories), nil
}

func (s *Store) categories(names []string) []entity.CategoryCountersEntity {
	byCategory := make(map[string][]entity.PackageEntity)
	for _, p := range s.Packages {
		if names != nil && !containsString(names, p.Category) {
			continue
		}
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}
	result := make([]entity.CategoryCountersEntity, 0, len(byCategory))
	for category, packages := range byCategory {
		result = append(result, entity.CategoryCountersEntity{Category: category, CountersEntity: s.counters(packages)})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Category < result[j].Category
	})
	return result
}

func (s *Store) CategoryExists(category string) (bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	for _, p := range s.Packages {
		if p.Category == category {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) GetOverlays() ([]entity.OverlayEntity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	packages := make(map[string]map[int64]bool)
	for _, v := range s.Versions {
		if view.IsMainTree(v.Overlay) {
			continue
		}
		if packages[v.Overlay] == nil {
			packages[v.Overlay] = make(map[int64]bool)
		}
		packages[v.Overlay][v.PackageId] = true
	}
	result := make([]entity.OverlayEntity, 0, len(packages))
	for overlay, ids := range packages {
		result = append(result, entity.OverlayEntity{Overlay: overlay, NPackages: len(ids)})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Overlay < result[j].Overlay
	})
	return result, nil
}

func (s *Store) OverlayExists(overlay string) (bool, error) {
	if view.IsMainTree(overlay) {
		return false, nil
	}
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	for _, v := range s.Versions {
		if v.Overlay == overlay {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) GetHerds() ([]entity.HerdCountersEntity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.herds(nil), nil
}

func (s *Store) GetHerdsByIds(ids []int64) ([]entity.HerdCountersEntity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.herds(ids), nil
}

func (s *Store) herds(ids []int64) []entity.HerdCountersEntity {
	result := make([]entity.HerdCountersEntity, 0)
	for _, h := range s.Herds {
		if ids != nil && !containsInt64(ids, h.Id) {
			continue
		}
		packageIds := s.herdPackageIds(h.Id)
		packages := s.filterPackages(func(p *entity.PackageEntity) bool {
			return packageIds[p.Id]
		})
		result = append(result, entity.HerdCountersEntity{Id: h.Id, Herd: h.Herd, Email: h.Email, CountersEntity: s.counters(packages)})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Herd < result[j].Herd
	})
	return result
}

func (s *Store) GetHerd(herd string) (*entity.HerdEntity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	for _, h := range s.Herds {
		if h.Herd == herd {
			result := h
			return &result, nil
		}
	}
	return nil, nil
}

func (s *Store) GetMaintainers() ([]entity.MaintainerCountersEntity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.maintainers(nil), nil
}

func (s *Store) GetMaintainersByIds(ids []int64) ([]entity.MaintainerCountersEntity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.maintainers(ids), nil
}

func (s *Store) maintainers(ids []int64) []entity.MaintainerCountersEntity {
	result := make([]entity.MaintainerCountersEntity, 0)
	for _, m := range s.Maintainers {
		if ids != nil && !containsInt64(ids, m.Id) {
			continue
		}
		packageIds := s.maintainerPackageIds(m.Id)
		packages := s.filterPackages(func(p *entity.PackageEntity) bool {
			return packageIds[p.Id]
		})
		result = append(result, entity.MaintainerCountersEntity{Id: m.Id, Name: m.Name, Email: m.Email, CountersEntity: s.counters(packages)})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Email < result[j].Email
	})
	return result
}

func (s *Store) GetMaintainerById(id int64) (*entity.MaintainerEntity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	for _, m := range s.Maintainers {
		if m.Id == id {
			result := m
			return &result, nil
		}
	}
	return nil, nil
}

func (s *Store) GetVersionLogs(filter view.VersionLogFilter) ([]entity.VersionLogRichEntity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	result := make([]entity.VersionLogRichEntity, 0)
	if filter.IsEmpty() || !(filter.Gentoo || filter.Overlays || filter.Upstream) {
		return result, nil
	}
	herdPackages := s.herdPackageIds(filter.HerdIds...)
	maintainerPackages := s.maintainerPackageIds(filter.MaintainerIds...)
	for _, l := range s.VersionLogs {
		p := s.packageById(l.PackageId)
		if p == nil {
			continue
		}
		inScope := filter.Global ||
			containsInt64(filter.PackageIds, p.Id) ||
			containsString(filter.Categories, p.Category) ||
			herdPackages[p.Id] ||
			maintainerPackages[p.Id]
		if !inScope {
			continue
		}
		rich := entity.VersionLogRichEntity{
			Id:          l.Id,
			PackageId:   l.PackageId,
			Category:    p.Category,
			PackageName: p.Name,
			Datetime:    l.Datetime,
			Slot:        l.Slot,
			Revision:    l.Revision,
			Version:     l.Version,
			Packaged:    l.Packaged,
			Overlay:     l.Overlay,
			Action:      l.Action,
			VType:       l.VType,
		}
		if !filter.Accepts(entity.MakeVersionLogView(&rich)) {
			continue
		}
		result = append(result, rich)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Datetime.Equal(result[j].Datetime) {
			return result[i].Datetime.After(result[j].Datetime)
		}
		return result[i].Id > result[j].Id
	})
	if filter.Limit >= 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}
