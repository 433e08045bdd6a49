package repository

import (
	"github.com/euscan/euscanwww/db"
	"github.com/euscan/euscanwww/entity"
	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
)

func NewHerdRepositoryPG(cp db.ConnectionProvider) HerdRepository {
	return &herdRepositoryImpl{cp: cp}
}

type herdRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (h herdRepositoryImpl) GetHerds() ([]entity.HerdCountersEntity, error) {
	result := make([]entity.HerdCountersEntity, 0)
	query := `select h.id, h.herd, h.email, ` + countersColumns + `
		from herd h
		left join package_herds ph on ph.herd_id = h.id
		left join package p on p.id = ph.package_id
		group by h.id, h.herd, h.email
		order by h.herd asc`
	_, err := h.cp.GetConnection().Query(&result, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get herds")
	}
	return result, nil
}

func (h herdRepositoryImpl) GetHerdsByIds(ids []int64) ([]entity.HerdCountersEntity, error) {
	result := make([]entity.HerdCountersEntity, 0)
	if len(ids) == 0 {
		return result, nil
	}
	query := `select h.id, h.herd, h.email, ` + countersColumns + `
		from herd h
		left join package_herds ph on ph.herd_id = h.id
		left join package p on p.id = ph.package_id
		where h.id in (?)
		group by h.id, h.herd, h.email
		order by h.herd asc`
	_, err := h.cp.GetConnection().Query(&result, query, pg.In(ids))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get herds")
	}
	return result, nil
}

func (h herdRepositoryImpl) GetHerd(herd string) (*entity.HerdEntity, error) {
	result := new(entity.HerdEntity)
	err := h.cp.GetConnection().Model(result).
		Where("herd = ?", herd).
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}
