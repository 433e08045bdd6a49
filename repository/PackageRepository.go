package repository

import (
	"github.com/euscan/euscanwww/entity"
)

type PackageRepository interface {
	GetPackage(category string, name string) (*entity.PackageEntity, error)
	GetPackagesByIds(ids []int64) ([]entity.PackageEntity, error)
	GetPackagesByCategory(category string) ([]entity.PackageEntity, error)
	GetPackagesByCategories(categories []string) ([]entity.PackageEntity, error)
	GetPackagesByHerd(herdId int64) ([]entity.PackageEntity, error)
	GetPackagesByMaintainer(maintainerId int64) ([]entity.PackageEntity, error)
	GetPackagesByOverlay(overlay string) ([]entity.PackageEntity, error)
	FindPackages(atoms []string, names []string) ([]entity.PackageEntity, error)
	GetAllPackages() ([]entity.PackageEntity, error)
	GetPackageVersions(packageId int64) ([]entity.VersionEntity, error)
	GetPackageHerds(packageId int64) ([]entity.HerdEntity, error)
	GetPackageMaintainers(packageId int64) ([]entity.MaintainerEntity, error)
	GetCategories() ([]entity.CategoryCountersEntity, error)
	GetCategoriesByNames(categories []string) ([]entity.CategoryCountersEntity, error)
	CategoryExists(category string) (bool, error)
	GetOverlays() ([]entity.OverlayEntity, error)
	OverlayExists(overlay string) (bool, error)
}

type HerdRepository interface {
	GetHerds() ([]entity.HerdCountersEntity, error)
	GetHerdsByIds(ids []int64) ([]entity.HerdCountersEntity, error)
	GetHerd(herd string) (*entity.HerdEntity, error)
}

type MaintainerRepository interface {
	GetMaintainers() ([]entity.MaintainerCountersEntity, error)
	GetMaintainersByIds(ids []int64) ([]entity.MaintainerCountersEntity, error)
	GetMaintainerById(id int64) (*entity.MaintainerEntity, error)
}
