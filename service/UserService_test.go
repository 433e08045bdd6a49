package service

import (
	"net/http"
	"testing"

	"github.com/euscan/euscanwww/exception"
	"github.com/euscan/euscanwww/testutil"
	"github.com/euscan/euscanwww/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	service := NewUserService(testutil.NewStore())

	user, err := service.RegisterUser(view.RegisterReq{Username: " larry ", Email: "larry@gentoo.org", Password: "cowsay"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.Id)
	assert.Equal(t, "larry", user.Name)
	assert.Equal(t, "larry@gentoo.org", user.Email)

	authenticated, err := service.AuthenticateUser("larry", "cowsay")
	require.NoError(t, err)
	assert.Equal(t, user.Id, authenticated.Id)

	found, err := service.GetUserById(user.Id)
	require.NoError(t, err)
	assert.Equal(t, "larry", found.Name)
}

func TestRegisterDuplicateUser(t *testing.T) {
	service := NewUserService(testutil.NewStore())

	_, err := service.RegisterUser(view.RegisterReq{Username: "larry", Email: "larry@gentoo.org", Password: "cowsay"})
	require.NoError(t, err)

	_, err = service.RegisterUser(view.RegisterReq{Username: "larry", Email: "other@gentoo.org", Password: "secret1"})
	requireCustomError(t, err, http.StatusConflict, exception.UserAlreadyExists)
}

func TestRegisterValidation(t *testing.T) {
	service := NewUserService(testutil.NewStore())

	reqs := []view.RegisterReq{
		{Username: "", Email: "larry@gentoo.org", Password: "cowsay"},
		{Username: "la", Email: "larry@gentoo.org", Password: "cowsay"},
		{Username: "larry!", Email: "larry@gentoo.org", Password: "cowsay"},
		{Username: "larry", Email: "not-an-email", Password: "cowsay"},
		{Username: "larry", Email: "larry@gentoo.org", Password: "cow"},
	}
	for _, req := range reqs {
		_, err := service.RegisterUser(req)
		requireCustomError(t, err, http.StatusBadRequest, exception.ValidationFailed)
	}
}

func TestAuthenticateFailures(t *testing.T) {
	service := NewUserService(testutil.NewStore())
	_, err := service.RegisterUser(view.RegisterReq{Username: "larry", Email: "larry@gentoo.org", Password: "cowsay"})
	require.NoError(t, err)

	_, err = service.AuthenticateUser("larry", "wrong")
	requireCustomError(t, err, http.StatusUnauthorized, exception.InvalidCredentials)

	_, err = service.AuthenticateUser("nobody", "cowsay")
	requireCustomError(t, err, http.StatusUnauthorized, exception.InvalidCredentials)

	_, err = service.GetUserById("missing")
	requireCustomError(t, err, http.StatusNotFound, exception.UserNotFound)
}
