package security

import (
	"fmt"
	"net/http"

	"github.com/shaj13/go-guardian/v2/auth"
	"github.com/shaj13/go-guardian/v2/auth/strategies/token"
	"github.com/shaj13/libcache"
)

const SessionCookieName = "euscan-session"

func NewCookieTokenStrategy(cache libcache.Cache, jwtValidator JWTValidator) auth.Strategy {
	extractSessionToken := func(r *http.Request) (string, error) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			return "", fmt.Errorf("session cookie not found")
		}
		return cookie.Value, nil
	}
	return NewBaseJWTStrategy(cache, jwtValidator, extractSessionToken)
}

// NewBearerTokenStrategy accepts the session token in an "Authorization: Bearer" header for feed readers and scripts.
func NewBearerTokenStrategy(cache libcache.Cache, jwtValidator JWTValidator) auth.Strategy {
	parser := token.AuthorizationParser("Bearer")
	return NewBaseJWTStrategy(cache, jwtValidator, parser.Token)
}
