package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/euscan/euscanwww/context"
	"github.com/euscan/euscanwww/testutil"
	"github.com/euscan/euscanwww/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = view.User{Id: "a3c1d3f2-0d9a-4d0e-8f57-5bb2a0d6f0e1", Name: "larry", Email: "larry@gentoo.org"}

type revokeAll struct{}

func (revokeAll) RevokeUserTokens(userId string) error {
	return nil
}

func (revokeAll) IsTokenRevoked(userId string, tokenCreationTimestamp int64) bool {
	return true
}

func setupTestGuardian(t *testing.T) {
	t.Helper()
	require.NoError(t, SetupGoGuardian([]byte("test-secret-test-secret"), time.Hour, false, testutil.NewTokenRevocations()))
}

func whoAmI(w http.ResponseWriter, r *http.Request) {
	if user := context.Create(r).GetUser(); user != nil {
		w.Write([]byte(user.Id + " " + user.Name + " " + user.Email))
		return
	}
	w.Write([]byte("anonymous"))
}

func TestSetupGoGuardianRequiresSecret(t *testing.T) {
	assert.Error(t, SetupGoGuardian(nil, time.Hour, false, testutil.NewTokenRevocations()))
}

func TestSessionCookieAuthenticates(t *testing.T) {
	setupTestGuardian(t)

	rec := httptest.NewRecorder()
	require.NoError(t, StartSession(rec, testUser))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/accounts/", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	SecureUser(whoAmI)(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testUser.Id+" larry larry@gentoo.org", rec.Body.String())

	// second request is served from the token cache
	rec = httptest.NewRecorder()
	OptionalUser(whoAmI)(rec, req)
	assert.Equal(t, testUser.Id+" larry larry@gentoo.org", rec.Body.String())
}

func TestBearerTokenAuthenticates(t *testing.T) {
	setupTestGuardian(t)
	token, err := IssueToken(testUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/accounts/feed/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	SecureUser(whoAmI)(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "larry")
}

func TestSecureUserRejectsAnonymous(t *testing.T) {
	setupTestGuardian(t)

	req := httptest.NewRequest(http.MethodGet, "/accounts/herds/?page=2", nil)
	rec := httptest.NewRecorder()
	SecureUser(whoAmI)(rec, req)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, LoginPath+"?next=%2Faccounts%2Fherds%2F%3Fpage%3D2", rec.Header().Get("Location"))

	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	rec = httptest.NewRecorder()
	SecureUser(whoAmI)(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInvalidTokenIsAnonymous(t *testing.T) {
	setupTestGuardian(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not-a-token"})
	rec := httptest.NewRecorder()
	OptionalUser(whoAmI)(rec, req)
	assert.Equal(t, "anonymous", rec.Body.String())

	// signed with another secret
	token, err := IssueToken(testUser)
	require.NoError(t, err)
	require.NoError(t, SetupGoGuardian([]byte("another-secret"), time.Hour, false, testutil.NewTokenRevocations()))
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	rec = httptest.NewRecorder()
	OptionalUser(whoAmI)(rec, req)
	assert.Equal(t, "anonymous", rec.Body.String())
}

func TestRevokedTokenIsRejected(t *testing.T) {
	require.NoError(t, SetupGoGuardian([]byte("test-secret-test-secret"), time.Hour, false, revokeAll{}))
	token, err := IssueToken(testUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/accounts/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	SecureUser(whoAmI)(rec, req)
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestTokenIssuedInLogoutSecondIsRevoked(t *testing.T) {
	revocations := testutil.NewTokenRevocations()
	require.NoError(t, SetupGoGuardian([]byte("test-secret-test-secret"), time.Hour, false, revocations))
	token, err := IssueToken(testUser)
	require.NoError(t, err)
	require.NoError(t, revocations.RevokeUserTokens(testUser.Id))

	req := httptest.NewRequest(http.MethodGet, "/accounts/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	SecureUser(whoAmI)(rec, req)
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestEndSessionExpiresCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	EndSession(rec)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestPanicIsReportedAs500(t *testing.T) {
	rec := httptest.NewRecorder()
	NoSecure(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
