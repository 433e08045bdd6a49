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
	"crypto"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/euscan/euscanwww/context"
	"github.com/euscan/euscanwww/service"
	"github.com/shaj13/go-guardian/v2/auth"
	"github.com/shaj13/go-guardian/v2/auth/claims"
	"github.com/shaj13/go-guardian/v2/auth/strategies/jwt"
	jose "gopkg.in/square/go-jose.v2/jwt"
)

const TokenIssuedAtExt = "issuedAt"

type JWTValidator interface {
	ValidateToken(token string) (auth.Info, time.Time, error)
	IsTokenRevoked(userId string, tokenCreationTimestamp int64) bool
}

type jwtValidatorImpl struct {
	keeper                 jwt.SecretsKeeper
	tokenRevocationService service.TokenRevocationService
}

func NewJWTValidator(keeper jwt.SecretsKeeper, tokenRevocationService service.TokenRevocationService) JWTValidator {
	return &jwtValidatorImpl{
		keeper:                 keeper,
		tokenRevocationService: tokenRevocationService,
	}
}

func (j jwtValidatorImpl) IsTokenRevoked(userId string, tokenCreationTimestamp int64) bool {
	return j.tokenRevocationService.IsTokenRevoked(userId, tokenCreationTimestamp)
}

func (j jwtValidatorImpl) ValidateToken(token string) (auth.Info, time.Time, error) {
	info := auth.NewUserInfo("", "", nil, make(auth.Extensions))
	c := claims.Standard{}
	if err := j.parseToken(token, &c, info); err != nil {
		return nil, time.Time{}, err
	}
	if c.ExpiresAt == nil || c.IssuedAt == nil {
		return nil, time.Time{}, errors.New("token has no exp or iat claim")
	}

	// leeway was already applied when the token was issued
	opts := claims.VerifyOptions{
		Audience: claims.StringOrList{""},
		Time: func() time.Time {
			return time.Now().UTC()
		},
	}
	if err := c.Verify(opts); err != nil {
		return nil, time.Time{}, err
	}

	issuedAt := time.Time(*c.IssuedAt).Unix()
	if j.IsTokenRevoked(info.GetID(), issuedAt) {
		return nil, time.Time{}, fmt.Errorf("token is revoked")
	}

	expiresAt := time.Time(*c.ExpiresAt)
	info.GetExtensions().Set(TokenIssuedAtExt, strconv.FormatInt(issuedAt, 10))
	info.GetExtensions().Set(context.TokenExpiresAtExt, strconv.FormatInt(expiresAt.Unix(), 10))
	return info, expiresAt, nil
}

func (j jwtValidatorImpl) parseToken(token string, dest ...interface{}) error {
	jt, err := jose.ParseSigned(token)
	if err != nil {
		return err
	}
	if len(jt.Headers) == 0 {
		return errors.New("no headers found in JWT token")
	}
	if len(jt.Headers[0].KeyID) == 0 {
		return errors.New("token missing kid header")
	}

	secret, alg, err := j.keeper.Get(jt.Headers[0].KeyID)
	if err != nil {
		return err
	}
	if jt.Headers[0].Algorithm != alg {
		return errors.New("invalid signing algorithm, token alg header does not match key algorithm")
	}
	if v, ok := secret.(crypto.Signer); ok {
		secret = v.Public()
	}
	return jt.Claims(secret, dest...)
}
