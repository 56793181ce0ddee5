// Package middleware holds the gin middleware: the access gate, request
// logging and HTTP metrics.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase"
	"solar_marketplace/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	currentUserKey = "current_user"

	LoginPath        = "/login"
	UnauthorizedPath = "/unauthorized"
)

var (
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
	errForbidden       = pkg.NewDomainErrorSimple("FORBIDDEN", "You do not have access to this resource", http.StatusForbidden)
)

// DenialRecorder counts refusals by reason.
type DenialRecorder interface {
	AccessDenied(reason string)
}

type nopDenials struct{}

func (nopDenials) AccessDenied(string) {}

// Gate resolves the caller's session on every protected route and enforces
// the route's role set.
type Gate struct {
	auth       usecase.IAuthUseCase
	cookieName string
	denials    DenialRecorder
	log        *zap.SugaredLogger
}

func NewGate(auth usecase.IAuthUseCase, cookieName string, denials DenialRecorder, log *zap.SugaredLogger) *Gate {
	if denials == nil {
		denials = nopDenials{}
	}
	return &Gate{auth: auth, cookieName: cookieName, denials: denials, log: log.With("component", "http.gate")}
}

// Require admits sessions whose user holds one of roles; no roles admits any
// authenticated user. Browser clients are redirected instead of receiving
// JSON errors.
func (g *Gate) Require(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFrom(c, g.cookieName)
		user, err := g.auth.Authorize(c.Request.Context(), token, roles...)
		switch {
		case err == nil:
			SetCurrentUser(c, user)
			c.Next()
		case errors.Is(err, usecase.ErrUnauthenticated):
			g.denials.AccessDenied("unauthenticated")
			g.deny(c, errUnauthenticated, LoginPath)
		case errors.Is(err, usecase.ErrForbidden):
			g.denials.AccessDenied("forbidden")
			g.log.Infow("forbidden", "user_id", user.ID, "path", c.FullPath())
			g.deny(c, errForbidden, UnauthorizedPath)
		default:
			g.log.Errorw("session lookup failed", "error", err)
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			_ = c.Error(appErr)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
		}
	}
}

func (g *Gate) deny(c *gin.Context, appErr *pkg.AppError, redirect string) {
	if WantsHTML(c) {
		c.Redirect(http.StatusSeeOther, redirect)
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// TokenFrom reads the session token from the cookie, falling back to an
// "Authorization: Bearer" header.
func TokenFrom(c *gin.Context, cookieName string) string {
	if v, err := c.Cookie(cookieName); err == nil && v != "" {
		return v
	}
	h := c.GetHeader("Authorization")
	if len(h) > len("Bearer ") && strings.EqualFold(h[:len("Bearer ")], "Bearer ") {
		return strings.TrimSpace(h[len("Bearer "):])
	}
	return ""
}

// WantsHTML is true for browser navigations, which prefer text/html.
func WantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

func SetCurrentUser(c *gin.Context, u entities.User) {
	c.Set(currentUserKey, u)
}

// CurrentUser is the user the gate admitted. ok is false outside a gated route.
func CurrentUser(c *gin.Context) (entities.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return entities.User{}, false
	}
	u, ok := v.(entities.User)
	return u, ok
}
