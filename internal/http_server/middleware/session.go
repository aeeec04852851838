// Package middleware
package middleware

import (
	c "github.com/half-nothing/flyleague-events/internal/interfaces/config"
	"github.com/half-nothing/flyleague-events/internal/interfaces/operation"
	. "github.com/half-nothing/flyleague-events/internal/interfaces/service"
	"github.com/labstack/echo/v4"
	"net/http"
)

const (
	sessionUserKey  = "session.user"
	sessionTokenKey = "session.token"
)

// SessionMiddleware 解析会话Cookie, 将用户快照挂到请求上下文.
// 令牌无效或过期时不拦截请求, 只是不挂用户, 交由守卫中间件处理.
func SessionMiddleware(store SessionStoreInterface, config *c.SessionConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			cookie, err := ctx.Cookie(config.CookieName)
			if err != nil || cookie.Value == "" {
				return next(ctx)
			}
			record, ok := store.Get(cookie.Value)
			if !ok {
				ClearSessionCookie(ctx, config)
				return next(ctx)
			}
			ctx.Set(sessionUserKey, record.User)
			ctx.Set(sessionTokenKey, cookie.Value)
			return next(ctx)
		}
	}
}

// RequireUser 未登录的请求重定向到登录页
func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if CurrentUser(ctx) == nil {
			return ctx.Redirect(http.StatusFound, "/login")
		}
		return next(ctx)
	}
}

// RequireAdmin 未登录或非管理员一律返回403文本, 不做重定向
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		user := CurrentUser(ctx)
		if user == nil || !user.IsAdmin {
			return ctx.String(ErrNoPermission.HttpCode.Code(), ErrNoPermission.Description)
		}
		return next(ctx)
	}
}

func CurrentUser(ctx echo.Context) *operation.User {
	if user, ok := ctx.Get(sessionUserKey).(*operation.User); ok {
		return user
	}
	return nil
}

func CurrentToken(ctx echo.Context) string {
	if token, ok := ctx.Get(sessionTokenKey).(string); ok {
		return token
	}
	return ""
}

func SetSessionCookie(ctx echo.Context, config *c.SessionConfig, token string) {
	ctx.SetCookie(&http.Cookie{
		Name:     config.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(config.ExpiresDuration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearSessionCookie(ctx echo.Context, config *c.SessionConfig) {
	ctx.SetCookie(&http.Cookie{
		Name:     config.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
