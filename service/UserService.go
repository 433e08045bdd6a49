package service

import (
	"net/http"
	"strings"

	"github.com/euscan/euscanwww/entity"
	"github.com/euscan/euscanwww/exception"
	"github.com/euscan/euscanwww/repository"
	"github.com/euscan/euscanwww/utils"
	"github.com/euscan/euscanwww/view"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	RegisterUser(req view.RegisterReq) (*view.User, error)
	AuthenticateUser(username string, password string) (*view.User, error)
	GetUserById(userId string) (*view.User, error)
}

func NewUserService(userRepository repository.UserRepository) UserService {
	return &userServiceImpl{userRepository: userRepository}
}

type userServiceImpl struct {
	userRepository repository.UserRepository
}

func (u userServiceImpl) RegisterUser(req view.RegisterReq) (*view.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if err := utils.ValidateObject(req); err != nil {
		return nil, err
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	ent := entity.MakeUserEntity(uuid.New().String(), &req, passwordHash)
	saved, err := u.userRepository.SaveUser(ent)
	if err != nil {
		return nil, err
	}
	if !saved {
		return nil, &exception.CustomError{
			Status:  http.StatusConflict,
			Code:    exception.UserAlreadyExists,
			Message: exception.UserAlreadyExistsMsg,
			Params:  map[string]interface{}{"name": req.Username},
		}
	}
	log.Infof("User %s registered", ent.Username)
	return entity.MakeUserView(ent), nil
}

func (u userServiceImpl) AuthenticateUser(username string, password string) (*view.User, error) {
	ent, err := u.userRepository.GetUserByName(strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if ent == nil || len(ent.Password) == 0 || bcrypt.CompareHashAndPassword(ent.Password, []byte(password)) != nil {
		return nil, &exception.CustomError{
			Status:  http.StatusUnauthorized,
			Code:    exception.InvalidCredentials,
			Message: exception.InvalidCredentialsMsg,
		}
	}
	return entity.MakeUserView(ent), nil
}

func (u userServiceImpl) GetUserById(userId string) (*view.User, error) {
	ent, err := u.userRepository.GetUserById(userId)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.UserNotFound,
			Message: exception.UserNotFoundMsg,
			Params:  map[string]interface{}{"userId": userId},
		}
	}
	return entity.MakeUserView(ent), nil
}
