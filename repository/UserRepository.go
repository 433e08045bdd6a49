package repository

import (
	"github.com/euscan/euscanwww/entity"
)

type UserRepository interface {
	SaveUser(user *entity.UserEntity) (bool, error)
	GetUserById(userId string) (*entity.UserEntity, error)
	GetUserByName(name string) (*entity.UserEntity, error)
}
