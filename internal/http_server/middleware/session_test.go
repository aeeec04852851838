package middleware

import (
	c "github.com/half-nothing/flyleague-events/internal/interfaces/config"
	"github.com/half-nothing/flyleague-events/internal/interfaces/operation"
	"github.com/half-nothing/flyleague-events/internal/interfaces/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type fakeSessionStore struct {
	records map[string]*service.SessionRecord
}

func (store *fakeSessionStore) Get(token string) (*service.SessionRecord, bool) {
	record, ok := store.records[token]
	return record, ok
}

func (store *fakeSessionStore) Attach(_ *operation.User) (string, error) { return "", nil }

func (store *fakeSessionStore) Destroy(_ string) error { return nil }

func testSessionConfig() *c.SessionConfig {
	return &c.SessionConfig{
		CookieName:      "test_session",
		TokenLength:     64,
		ExpiresDuration: 24 * time.Hour,
	}
}

func okHandler(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "ok")
}

func runSessionRequest(t *testing.T, store service.SessionStoreInterface, cookie *http.Cookie, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	chain := SessionMiddleware(store, testSessionConfig())(handler)
	require.NoError(t, chain(ctx))
	return rec
}

func TestSessionMiddlewareResolvesUser(t *testing.T) {
	user := &operation.User{ID: 1, Username: "alice"}
	store := &fakeSessionStore{records: map[string]*service.SessionRecord{
		"token-1": {User: user, ExpiresAt: time.Now().Add(time.Hour)},
	}}

	handler := func(ctx echo.Context) error {
		assert.Equal(t, user, CurrentUser(ctx))
		assert.Equal(t, "token-1", CurrentToken(ctx))
		return ctx.String(http.StatusOK, "ok")
	}
	rec := runSessionRequest(t, store, &http.Cookie{Name: "test_session", Value: "token-1"}, handler)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionMiddlewareWithoutCookie(t *testing.T) {
	store := &fakeSessionStore{records: map[string]*service.SessionRecord{}}
	handler := func(ctx echo.Context) error {
		assert.Nil(t, CurrentUser(ctx))
		assert.Empty(t, CurrentToken(ctx))
		return ctx.String(http.StatusOK, "ok")
	}
	rec := runSessionRequest(t, store, nil, handler)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionMiddlewareInvalidTokenClearsCookie(t *testing.T) {
	store := &fakeSessionStore{records: map[string]*service.SessionRecord{}}
	handler := func(ctx echo.Context) error {
		assert.Nil(t, CurrentUser(ctx))
		return ctx.String(http.StatusOK, "ok")
	}
	rec := runSessionRequest(t, store, &http.Cookie{Name: "test_session", Value: "stale"}, handler)
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "test_session", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func newGuardContext(user *operation.User) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	if user != nil {
		ctx.Set(sessionUserKey, user)
	}
	return ctx, rec
}

func TestRequireUserRedirectsAnonymous(t *testing.T) {
	ctx, rec := newGuardContext(nil)
	require.NoError(t, RequireUser(okHandler)(ctx))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireUserPassesAuthenticated(t *testing.T) {
	ctx, rec := newGuardContext(&operation.User{ID: 1, Username: "alice"})
	require.NoError(t, RequireUser(okHandler)(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
}

// 未登录访问后台同样是403文本, 不能重定向到登录页
func TestRequireAdminRejectsAnonymous(t *testing.T) {
	ctx, rec := newGuardContext(nil)
	require.NoError(t, RequireAdmin(okHandler)(ctx))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "无权限访问，请使用管理员账号登录后重试。", rec.Body.String())
	assert.Empty(t, rec.Header().Get("Location"))
}

func TestRequireAdminRejectsRegularUser(t *testing.T) {
	ctx, rec := newGuardContext(&operation.User{ID: 1, Username: "alice", IsAdmin: false})
	require.NoError(t, RequireAdmin(okHandler)(ctx))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "无权限访问，请使用管理员账号登录后重试。", rec.Body.String())
}

func TestRequireAdminPassesAdmin(t *testing.T) {
	ctx, rec := newGuardContext(&operation.User{ID: 1, Username: "admin", IsAdmin: true})
	require.NoError(t, RequireAdmin(okHandler)(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
}
