package repository

import (
	"github.com/euscan/euscanwww/db"
	"github.com/euscan/euscanwww/entity"
	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
)

func NewMaintainerRepositoryPG(cp db.ConnectionProvider) MaintainerRepository {
	return &maintainerRepositoryImpl{cp: cp}
}

type maintainerRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (m maintainerRepositoryImpl) GetMaintainers() ([]entity.MaintainerCountersEntity, error) {
	result := make([]entity.MaintainerCountersEntity, 0)
	query := `select m.id, m.name, m.email, ` + countersColumns + `
		from maintainer m
		left join package_maintainers pm on pm.maintainer_id = m.id
		left join package p on p.id = pm.package_id
		group by m.id, m.name, m.email
		order by m.name asc, m.email asc`
	_, err := m.cp.GetConnection().Query(&result, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get maintainers")
	}
	return result, nil
}

func (m maintainerRepositoryImpl) GetMaintainersByIds(ids []int64) ([]entity.MaintainerCountersEntity, error) {
	result := make([]entity.MaintainerCountersEntity, 0)
	if len(ids) == 0 {
		return result, nil
	}
	query := `select m.id, m.name, m.email, ` + countersColumns + `
		from maintainer m
		left join package_maintainers pm on pm.maintainer_id = m.id
		left join package p on p.id = pm.package_id
		where m.id in (?)
		group by m.id, m.name, m.email
		order by m.name asc, m.email asc`
	_, err := m.cp.GetConnection().Query(&result, query, pg.In(ids))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get maintainers")
	}
	return result, nil
}

func (m maintainerRepositoryImpl) GetMaintainerById(id int64) (*entity.MaintainerEntity, error) {
	result := new(entity.MaintainerEntity)
	err := m.cp.GetConnection().Model(result).
		Where("id = ?", id).
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}
