package repository

import (
	"github.com/euscan/euscanwww/db"
	"github.com/euscan/euscanwww/entity"
	"github.com/go-pg/pg/v10"
)

func NewUserRepositoryPG(cp db.ConnectionProvider) UserRepository {
	return &userRepositoryImpl{cp: cp}
}

type userRepositoryImpl struct {
	cp db.ConnectionProvider
}

// SaveUser returns false when the user name is already taken.
func (u userRepositoryImpl) SaveUser(user *entity.UserEntity) (bool, error) {
	res, err := u.cp.GetConnection().Model(user).
		OnConflict("(name) DO NOTHING").
		Insert()
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (u userRepositoryImpl) GetUserById(userId string) (*entity.UserEntity, error) {
	result := new(entity.UserEntity)
	err := u.cp.GetConnection().Model(result).
		Where("user_id = ?", userId).
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (u userRepositoryImpl) GetUserByName(name string) (*entity.UserEntity, error) {
	result := new(entity.UserEntity)
	err := u.cp.GetConnection().Model(result).
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
