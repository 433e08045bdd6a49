package repository

import (
	"fmt"
	"strings"

	"github.com/euscan/euscanwww/db"
	"github.com/euscan/euscanwww/entity"
	"github.com/euscan/euscanwww/view"
	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
)

// countersColumns aggregates package counters over the package table
// aliased as p. Rows produced by a LEFT JOIN with no package yield zeros.
const countersColumns = `
	count(p.id) AS n_packages,
	count(p.id) FILTER (WHERE p.n_packaged > 0) AS n_packages_gentoo,
	count(p.id) FILTER (WHERE p.n_overlay > 0) AS n_packages_overlay,
	count(p.id) FILTER (WHERE p.n_versions > p.n_packaged + p.n_overlay) AS n_packages_outdated,
	coalesce(sum(p.n_packaged), 0) AS n_versions_gentoo,
	coalesce(sum(p.n_overlay), 0) AS n_versions_overlay,
	coalesce(sum(p.n_versions - p.n_packaged - p.n_overlay), 0) AS n_versions_upstream`

var mainTreeOverlays = []string{"", view.MainTreeOverlay}

func NewPackageRepositoryPG(cp db.ConnectionProvider) PackageRepository {
	return &packageRepositoryImpl{cp: cp}
}

type packageRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (p packageRepositoryImpl) GetPackage(category string, name string) (*entity.PackageEntity, error) {
	result := new(entity.PackageEntity)
	err := p.cp.GetConnection().Model(result).
		Where("category = ?", category).
		Where("name = ?", name).
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (p packageRepositoryImpl) GetPackagesByIds(ids []int64) ([]entity.PackageEntity, error) {
	result := make([]entity.PackageEntity, 0)
	if len(ids) == 0 {
		return result, nil
	}
	err := p.cp.GetConnection().Model(&result).
		Where("id in (?)", pg.In(ids)).
		Order("category ASC", "name ASC").
		Select()
	return result, err
}

func (p packageRepositoryImpl) GetPackagesByCategory(category string) ([]entity.PackageEntity, error) {
	return p.GetPackagesByCategories([]string{category})
}

func (p packageRepositoryImpl) GetPackagesByCategories(categories []string) ([]entity.PackageEntity, error) {
	result := make([]entity.PackageEntity, 0)
	if len(categories) == 0 {
		return result, nil
	}
	err := p.cp.GetConnection().Model(&result).
		Where("category in (?)", pg.In(categories)).
		Order("category ASC", "name ASC").
		Select()
	return result, err
}

func (p packageRepositoryImpl) GetPackagesByHerd(herdId int64) ([]entity.PackageEntity, error) {
	result := make([]entity.PackageEntity, 0)
	err := p.cp.GetConnection().Model(&result).
		Where("id in (select package_id from package_herds where herd_id = ?)", herdId).
		Order("category ASC", "name ASC").
		Select()
	return result, err
}

func (p packageRepositoryImpl) GetPackagesByMaintainer(maintainerId int64) ([]entity.PackageEntity, error) {
	result := make([]entity.PackageEntity, 0)
	err := p.cp.GetConnection().Model(&result).
		Where("id in (select package_id from package_maintainers where maintainer_id = ?)", maintainerId).
		Order("category ASC", "name ASC").
		Select()
	return result, err
}

func (p packageRepositoryImpl) GetPackagesByOverlay(overlay string) ([]entity.PackageEntity, error) {
	result := make([]entity.PackageEntity, 0)
	err := p.cp.GetConnection().Model(&result).
		Where("id in (select package_id from version where overlay = ?)", overlay).
		Order("category ASC", "name ASC").
		Select()
	return result, err
}

func (p packageRepositoryImpl) FindPackages(atoms []string, names []string) ([]entity.PackageEntity, error) {
	result := make([]entity.PackageEntity, 0)
	if len(atoms) == 0 && len(names) == 0 {
		return result, nil
	}
	conditions := make([]string, 0, 2)
	params := make([]interface{}, 0, 2)
	if len(atoms) > 0 {
		conditions = append(conditions, "(category || '/' || name) in (?)")
		params = append(params, pg.In(atoms))
	}
	if len(names) > 0 {
		conditions = append(conditions, "name in (?)")
		params = append(params, pg.In(names))
	}
	query := fmt.Sprintf(`select * from package where %s order by category asc, name asc`, strings.Join(conditions, " or "))
	_, err := p.cp.GetConnection().Query(&result, query, params...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find packages")
	}
	return result, nil
}

func (p packageRepositoryImpl) GetAllPackages() ([]entity.PackageEntity, error) {
	result := make([]entity.PackageEntity, 0)
	err := p.cp.GetConnection().Model(&result).
		Order("category ASC", "name ASC").
		Select()
	return result, err
}

func (p packageRepositoryImpl) GetPackageVersions(packageId int64) ([]entity.VersionEntity, error) {
	result := make([]entity.VersionEntity, 0)
	err := p.cp.GetConnection().Model(&result).
		Where("package_id = ?", packageId).
		Order("packaged DESC", "overlay ASC", "slot ASC", "id DESC").
		Select()
	return result, err
}

func (p packageRepositoryImpl) GetPackageHerds(packageId int64) ([]entity.HerdEntity, error) {
	result := make([]entity.HerdEntity, 0)
	err := p.cp.GetConnection().Model(&result).
		Where("id in (select herd_id from package_herds where package_id = ?)", packageId).
		Order("herd ASC").
		Select()
	return result, err
}

func (p packageRepositoryImpl) GetPackageMaintainers(packageId int64) ([]entity.MaintainerEntity, error) {
	result := make([]entity.MaintainerEntity, 0)
	err := p.cp.GetConnection().Model(&result).
		Where("id in (select maintainer_id from package_maintainers where package_id = ?)", packageId).
		Order("name ASC").
		Select()
	return result, err
}

func (p packageRepositoryImpl) GetCategories() ([]entity.CategoryCountersEntity, error) {
	result := make([]entity.CategoryCountersEntity, 0)
	query := `select p.category, ` + countersColumns + `
		from package p
		group by p.category
		order by p.category asc`
	_, err := p.cp.GetConnection().Query(&result, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get categories")
	}
	return result, nil
}

func (p packageRepositoryImpl) GetCategoriesByNames(categories []string) ([]entity.CategoryCountersEntity, error) {
	result := make([]entity.CategoryCountersEntity, 0)
	if len(categories) == 0 {
		return result, nil
	}
	query := `select p.category, ` + countersColumns + `
		from package p
		where p.category in (?)
		group by p.category
		order by p.category asc`
	_, err := p.cp.GetConnection().Query(&result, query, pg.In(categories))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get categories")
	}
	return result, nil
}

func (p packageRepositoryImpl) CategoryExists(category string) (bool, error) {
	return p.cp.GetConnection().Model((*entity.PackageEntity)(nil)).
		Where("category = ?", category).
		Exists()
}

func (p packageRepositoryImpl) GetOverlays() ([]entity.OverlayEntity, error) {
	result := make([]entity.OverlayEntity, 0)
	query := `select overlay, count(distinct package_id) as n_packages
		from version
		where overlay not in (?)
		group by overlay
		order by overlay asc`
	_, err := p.cp.GetConnection().Query(&result, query, pg.In(mainTreeOverlays))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get overlays")
	}
	return result, nil
}

func (p packageRepositoryImpl) OverlayExists(overlay string) (bool, error) {
	if view.IsMainTree(overlay) {
		return false, nil
	}
	return p.cp.GetConnection().Model((*entity.VersionEntity)(nil)).
		Where("overlay = ?", overlay).
		Exists()
}
