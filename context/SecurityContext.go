package context

import (
	"net/http"
	"strconv"

	"github.com/euscan/euscanwww/view"
	"github.com/shaj13/go-guardian/v2/auth"
)

const TokenExpiresAtExt = "expiresAt"
const emailExt = "email"

type SecurityContext interface {
	IsAuthenticated() bool
	GetUserId() string
	GetUserName() string
	GetUser() *view.User
	GetTokenExpirationTimestamp() int64
}

// Create builds the context from the user attached by the security middleware.
// Anonymous requests get an unauthenticated context.
func Create(r *http.Request) SecurityContext {
	user := auth.User(r)
	if user == nil || user.GetID() == "" {
		return &securityContextImpl{}
	}
	tokenExpirationTimestamp, _ := strconv.ParseInt(user.GetExtensions().Get(TokenExpiresAtExt), 0, 64)
	return &securityContextImpl{
		userId:                   user.GetID(),
		userName:                 user.GetUserName(),
		email:                    user.GetExtensions().Get(emailExt),
		tokenExpirationTimestamp: tokenExpirationTimestamp,
	}
}

func CreateFromUser(user view.User) SecurityContext {
	return &securityContextImpl{userId: user.Id, userName: user.Name, email: user.Email}
}

type securityContextImpl struct {
	userId                   string
	userName                 string
	email                    string
	tokenExpirationTimestamp int64
}

func (ctx securityContextImpl) IsAuthenticated() bool {
	return ctx.userId != ""
}

func (ctx securityContextImpl) GetUserId() string {
	return ctx.userId
}

func (ctx securityContextImpl) GetUserName() string {
	return ctx.userName
}

func (ctx securityContextImpl) GetUser() *view.User {
	if !ctx.IsAuthenticated() {
		return nil
	}
	return &view.User{Id: ctx.userId, Name: ctx.userName, Email: ctx.email}
}

func (ctx securityContextImpl) GetTokenExpirationTimestamp() int64 {
	return ctx.tokenExpirationTimestamp
}
