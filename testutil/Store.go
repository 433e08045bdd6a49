// Package testutil holds in-memory implementations of the repositories and a small package tree for tests.
package testutil

import (
	"sort"
	"sync"
	"time"

	"github.com/euscan/euscanwww/entity"
	"github.com/euscan/euscanwww/view"
)

// Store implements every repository interface over plain slices and maps.
type Store struct {
	mutex sync.RWMutex

	Packages           []entity.PackageEntity
	Versions           []entity.VersionEntity
	Herds              []entity.HerdEntity
	Maintainers        []entity.MaintainerEntity
	PackageHerds       []entity.PackageHerdEntity
	PackageMaintainers []entity.PackageMaintainerEntity
	VersionLogs        []entity.VersionLogEntity
	StatsLogs          []entity.StatsLogEntity

	users                map[string]*entity.UserEntity
	favoritePackages     map[string]map[int64]bool
	favoriteCategories   map[string]map[string]bool
	favoriteHerds        map[string]map[int64]bool
	favoriteMaintainers  map[string]map[int64]bool
	refreshQueries       map[int64]*entity.RefreshQueryEntity
	refreshQueryRequests map[int64]map[string]bool
}

func NewStore() *Store {
	return &Store{
		users:                make(map[string]*entity.UserEntity),
		favoritePackages:     make(map[string]map[int64]bool),
		favoriteCategories:   make(map[string]map[string]bool),
		favoriteHerds:        make(map[string]map[int64]bool),
		favoriteMaintainers:  make(map[string]map[int64]bool),
		refreshQueries:       make(map[int64]*entity.RefreshQueryEntity),
		refreshQueryRequests: make(map[int64]map[string]bool),
	}
}

var FixtureTime = time.Date(2012, time.May, 1, 12, 0, 0, 0, time.UTC)

// NewFixtureStore returns a store with two categories, two herds, two maintainers and one overlay.
//
//	app-editors/vim      herd editors, maintainer 1, outdated
//	app-editors/emacs    herd editors, maintainer 2, also in the sunrise overlay
//	dev-lang/python      herd python, maintainer 1
func NewFixtureStore() *Store {
	s := NewStore()
	s.Packages = []entity.PackageEntity{
		{Id: 1, Category: "app-editors", Name: "vim", Description: "Vim, an improved vi-style text editor", Homepage: "https://www.vim.org",
			NVersions: 3, NPackaged: 2, NOverlay: 0, LastVersionGentoo: "7.3.500", LastVersionUpstream: "7.3.515"},
		{Id: 2, Category: "app-editors", Name: "emacs", Description: "The extensible, customizable, self-documenting real-time display editor", Homepage: "https://www.gnu.org/software/emacs/",
			NVersions: 2, NPackaged: 1, NOverlay: 1, LastVersionGentoo: "23.4", LastVersionOverlay: "24.1"},
		{Id: 3, Category: "dev-lang", Name: "python", Description: "An interpreted, interactive, object-oriented programming language", Homepage: "https://www.python.org",
			NVersions: 2, NPackaged: 2, LastVersionGentoo: "3.2.3"},
	}
	s.Versions = []entity.VersionEntity{
		{Id: 1, PackageId: 1, Slot: "0", Version: "7.3.409", Packaged: true, Overlay: "gentoo"},
		{Id: 2, PackageId: 1, Slot: "0", Version: "7.3.500", Packaged: true, Overlay: "gentoo"},
		{Id: 3, PackageId: 1, Version: "7.3.515", Packaged: false, Urls: "ftp://ftp.vim.org/pub/vim/patches/7.3/7.3.515", VType: "release", Handler: "generic", Confidence: 90},
		{Id: 4, PackageId: 2, Slot: "23", Version: "23.4", Packaged: true, Overlay: "gentoo"},
		{Id: 5, PackageId: 2, Slot: "24", Version: "24.1", Packaged: true, Overlay: "sunrise"},
		{Id: 6, PackageId: 3, Slot: "2.7", Version: "2.7.3", Packaged: true, Overlay: "gentoo"},
		{Id: 7, PackageId: 3, Slot: "3.2", Version: "3.2.3", Packaged: true, Overlay: "gentoo"},
	}
	s.Herds = []entity.HerdEntity{
		{Id: 1, Herd: "editors", Email: "editors@gentoo.org"},
		{Id: 2, Herd: "python", Email: "python@gentoo.org"},
	}
	s.Maintainers = []entity.MaintainerEntity{
		{Id: 1, Name: "Jane Doe", Email: "jane@gentoo.org"},
		{Id: 2, Name: "", Email: "lisp@gentoo.org"},
	}
	s.PackageHerds = []entity.PackageHerdEntity{
		{PackageId: 1, HerdId: 1},
		{PackageId: 2, HerdId: 1},
		{PackageId: 3, HerdId: 2},
	}
	s.PackageMaintainers = []entity.PackageMaintainerEntity{
		{PackageId: 1, MaintainerId: 1},
		{PackageId: 2, MaintainerId: 2},
		{PackageId: 3, MaintainerId: 1},
	}
	s.VersionLogs = []entity.VersionLogEntity{
		{Id: 1, PackageId: 1, Datetime: FixtureTime, Slot: "0", Version: "7.3.500", Packaged: true, Overlay: "gentoo", Action: int(view.VersionAdded)},
		{Id: 2, PackageId: 1, Datetime: FixtureTime.Add(time.Hour), Version: "7.3.515", Packaged: false, Action: int(view.VersionAdded), VType: "release"},
		{Id: 3, PackageId: 2, Datetime: FixtureTime.Add(2 * time.Hour), Slot: "24", Version: "24.1", Packaged: true, Overlay: "sunrise", Action: int(view.VersionAdded)},
		{Id: 4, PackageId: 3, Datetime: FixtureTime.Add(3 * time.Hour), Slot: "3.1", Version: "3.1.4", Packaged: true, Overlay: "gentoo", Action: int(view.VersionRemoved)},
		{Id: 5, PackageId: 3, Datetime: FixtureTime.Add(3 * time.Hour), Slot: "3.2", Version: "3.2.3", Packaged: true, Overlay: "gentoo", Action: int(view.VersionAdded)},
	}
	return s
}

func (s *Store) packageById(id int64) *entity.PackageEntity {
	for i := range s.Packages {
		if s.Packages[i].Id == id {
			return &s.Packages[i]
		}
	}
	return nil
}

func (s *Store) filterPackages(accept func(p *entity.PackageEntity) bool) []entity.PackageEntity {
	result := make([]entity.PackageEntity, 0)
	for i := range s.Packages {
		if accept(&s.Packages[i]) {
			result = append(result, s.Packages[i])
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Category != result[j].Category {
			return result[i].Category < result[j].Category
		}
		return result[i].Name < result[j].Name
	})
	return result
}

func (s *Store) counters(packages []entity.PackageEntity) entity.CountersEntity {
	var counters view.Counters
	for i := range packages {
		counters.Add(entity.MakePackageView(&packages[i]))
	}
	return entity.MakeCountersEntity(counters)
}

func (s *Store) herdPackageIds(herdIds ...int64) map[int64]bool {
	result := make(map[int64]bool)
	for _, ph := range s.PackageHerds {
		for _, id := range herdIds {
			if ph.HerdId == id {
				result[ph.PackageId] = true
			}
		}
	}
	return result
}

func (s *Store) maintainerPackageIds(maintainerIds ...int64) map[int64]bool {
	result := make(map[int64]bool)
	for _, pm := range s.PackageMaintainers {
		for _, id := range maintainerIds {
			if pm.MaintainerId == id {
				result[pm.PackageId] = true
			}
		}
	}
	return result
}

func containsInt64(list []int64, value int64) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
