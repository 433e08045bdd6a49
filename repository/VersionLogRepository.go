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

type VersionLogRepository interface {
	GetVersionLogs(filter view.VersionLogFilter) ([]entity.VersionLogRichEntity, error)
}

func NewVersionLogRepositoryPG(cp db.ConnectionProvider) VersionLogRepository {
	return &versionLogRepositoryImpl{cp: cp}
}

type versionLogRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (v versionLogRepositoryImpl) GetVersionLogs(filter view.VersionLogFilter) ([]entity.VersionLogRichEntity, error) {
	result := make([]entity.VersionLogRichEntity, 0)
	if filter.IsEmpty() || !(filter.Gentoo || filter.Overlays || filter.Upstream) {
		return result, nil
	}
	params := make([]interface{}, 0)

	scope := make([]string, 0)
	if filter.Global {
		scope = append(scope, "true")
	}
	if len(filter.PackageIds) > 0 {
		scope = append(scope, "p.id in (?)")
		params = append(params, pg.In(filter.PackageIds))
	}
	if len(filter.Categories) > 0 {
		scope = append(scope, "p.category in (?)")
		params = append(params, pg.In(filter.Categories))
	}
	if len(filter.HerdIds) > 0 {
		scope = append(scope, "p.id in (select package_id from package_herds where herd_id in (?))")
		params = append(params, pg.In(filter.HerdIds))
	}
	if len(filter.MaintainerIds) > 0 {
		scope = append(scope, "p.id in (select package_id from package_maintainers where maintainer_id in (?))")
		params = append(params, pg.In(filter.MaintainerIds))
	}

	origin := make([]string, 0, 3)
	if filter.Gentoo {
		origin = append(origin, "(vl.packaged and vl.overlay in (?))")
		params = append(params, pg.In(mainTreeOverlays))
	}
	if filter.Overlays {
		origin = append(origin, "(vl.packaged and vl.overlay not in (?))")
		params = append(params, pg.In(mainTreeOverlays))
	}
	if filter.Upstream {
		origin = append(origin, "(not vl.packaged)")
	}
	params = append(params, filter.Limit)

	query := fmt.Sprintf(`
		select vl.id, vl.package_id, p.category, p.name as package_name, vl.datetime,
			vl.slot, vl.revision, vl.version, vl.packaged, vl.overlay, vl.action, vl.vtype
		from version_log vl
		inner join package p on p.id = vl.package_id
		where (%s) and (%s)
		order by vl.datetime desc, vl.id desc
		limit ?`, strings.Join(scope, " or "), strings.Join(origin, " or "))
	_, err := v.cp.GetConnection().Query(&result, query, params...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get version log")
	}
	return result, nil
}
