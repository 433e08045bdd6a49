// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package security

import (
	"fmt"
	"net/http"
	"time"

	"github.com/euscan/euscanwww/service"
	"github.com/euscan/euscanwww/utils"
	"github.com/euscan/euscanwww/view"
	"github.com/shaj13/go-guardian/v2/auth"
	"github.com/shaj13/go-guardian/v2/auth/strategies/jwt"
	"github.com/shaj13/go-guardian/v2/auth/strategies/union"
	"github.com/shaj13/libcache"
	_ "github.com/shaj13/libcache/lru"
)

const EmailExt = "email"

var userAuthStrategy union.Union
var keeper jwt.SecretsKeeper
var accessTokenDuration time.Duration
var productionMode bool

// SetupGoGuardian configures session authentication. Tokens are HS256 JWTs signed with secret.
func SetupGoGuardian(secret []byte, tokenDuration time.Duration, secureCookies bool, tokenRevocationService service.TokenRevocationService) error {
	if len(secret) == 0 {
		return fmt.Errorf("jwt secret is empty")
	}
	accessTokenDuration = tokenDuration
	productionMode = secureCookies
	keeper = jwt.StaticSecret{
		ID:        "euscan-session",
		Secret:    secret,
		Algorithm: jwt.HS256,
	}

	cache := libcache.LRU.New(2000)
	cache.RegisterOnExpired(func(key, _ interface{}) {
		cache.Delete(key)
	})
	jwtValidator := NewJWTValidator(keeper, tokenRevocationService)
	userAuthStrategy = union.New(
		NewCookieTokenStrategy(cache, jwtValidator),
		NewBearerTokenStrategy(cache, jwtValidator),
	)
	return nil
}

// IssueToken creates a signed session token for the user.
func IssueToken(user view.User) (string, error) {
	extensions := auth.Extensions{}
	extensions.Set(EmailExt, user.Email)
	info := auth.NewUserInfo(user.Name, user.Id, []string{}, extensions)
	return jwt.IssueAccessToken(info, keeper, jwt.SetExpDuration(accessTokenDuration))
}

// StartSession issues a token and stores it in the session cookie.
func StartSession(w http.ResponseWriter, user view.User) error {
	token, err := IssueToken(user)
	if err != nil {
		return fmt.Errorf("failed to create token for user %s: %w", user.Name, err)
	}
	utils.SetCookie(w, SessionCookieName, token, accessTokenDuration, productionMode)
	return nil
}

func EndSession(w http.ResponseWriter) {
	utils.DeleteCookie(w, SessionCookieName, productionMode)
}
