package entity

import (
	"strings"
	"time"

	"github.com/euscan/euscanwww/view"
)

type UserEntity struct {
	tableName struct{} `pg:"user_data, alias:user_data"`

	Id        string    `pg:"user_id, pk, type:varchar"`
	Username  string    `pg:"name, type:varchar, unique"`
	Email     string    `pg:"email, type:varchar"`
	Password  []byte    `pg:"password, type:bytea"`
	CreatedAt time.Time `pg:"created_at, type:timestamp without time zone"`
}

func MakeUserView(userEntity *UserEntity) *view.User {
	return &view.User{
		Id:    userEntity.Id,
		Name:  userEntity.Username,
		Email: userEntity.Email,
	}
}

func MakeUserEntity(userId string, req *view.RegisterReq, password []byte) *UserEntity {
	return &UserEntity{
		Id:        userId,
		Username:  req.Username,
		Email:     strings.ToLower(req.Email),
		Password:  password,
		CreatedAt: time.Now(),
	}
}
