package repository

import (
	"context"
	"time"

	"github.com/euscan/euscanwww/db"
	"github.com/euscan/euscanwww/entity"
	"github.com/go-pg/pg/v10"
)

type RefreshQueryRepository interface {
	// AddRefreshRequest bumps the package priority once per user and reports whether the request is new.
	AddRefreshRequest(packageId int64, userId string) (bool, error)
	IsRefreshRequested(packageId int64, userId string) (bool, error)
	GetRefreshQuery(packageId int64) (*entity.RefreshQueryEntity, error)
}

func NewRefreshQueryRepositoryPG(cp db.ConnectionProvider) RefreshQueryRepository {
	return &refreshQueryRepositoryImpl{cp: cp}
}

type refreshQueryRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (r refreshQueryRepositoryImpl) AddRefreshRequest(packageId int64, userId string) (bool, error) {
	added := false
	err := r.cp.GetConnection().RunInTransaction(context.Background(), func(tx *pg.Tx) error {
		res, err := tx.Model(&entity.RefreshQueryUserEntity{PackageId: packageId, UserId: userId}).
			OnConflict("(package_id, user_id) DO NOTHING").
			Insert()
		if err != nil {
			return err
		}
		if res.RowsAffected() == 0 {
			return nil
		}
		added = true
		_, err = tx.Model(&entity.RefreshQueryEntity{PackageId: packageId, Priority: 1, RequestedAt: time.Now()}).
			OnConflict("(package_id) DO UPDATE").
			Set("priority = refresh_query.priority + 1").
			Set("requested_at = EXCLUDED.requested_at").
			Insert()
		return err
	})
	if err != nil {
		return false, err
	}
	return added, nil
}

func (r refreshQueryRepositoryImpl) IsRefreshRequested(packageId int64, userId string) (bool, error) {
	return r.cp.GetConnection().Model(&entity.RefreshQueryUserEntity{}).
		Where("package_id = ?", packageId).
		Where("user_id = ?", userId).
		Exists()
}

func (r refreshQueryRepositoryImpl) GetRefreshQuery(packageId int64) (*entity.RefreshQueryEntity, error) {
	result := new(entity.RefreshQueryEntity)
	err := r.cp.GetConnection().Model(result).
		Where("package_id = ?", packageId).
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}
