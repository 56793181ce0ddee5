package handlers

import (
	"errors"
	"net/http"
	"time"

	request "solar_marketplace/internal/adapter/http/dto/request"
	response "solar_marketplace/internal/adapter/http/dto/response"
	"solar_marketplace/internal/adapter/http/middleware"
	"solar_marketplace/internal/usecase"
	"solar_marketplace/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CookieConfig describes the session cookie written on login.
type CookieConfig struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

type AuthHandler struct {
	usecase usecase.IAuthUseCase
	cookie  CookieConfig
	log     *zap.SugaredLogger
}

func NewAuthHandler(uc usecase.IAuthUseCase, cookie CookieConfig, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{usecase: uc, cookie: cookie, log: log.With("component", "http.auth")}
}

// Register godoc
// @Summary      Register a customer or vendor account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.RegisterRequest  true  "Account and profile"
// @Success      201   {object}  response.UserResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	user, err := h.usecase.Register(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromUser(user))
}

// Login godoc
// @Summary      Start a session
// @Description  Sets the session cookie and returns the token for Bearer use.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.LoginRequest  true  "Credentials"
// @Success      200   {object}  response.LoginResponse
// @Failure      401   {object}  pkg.HTTPError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	result, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		h.log.Infow("login rejected", "code", appErr.Code, "client_ip", c.ClientIP())
		writeError(c, appErr)
		return
	}

	h.setCookie(c, result.Session.Token, int(h.cookie.MaxAge/time.Second))
	c.JSON(http.StatusOK, response.FromLogin(result))
}

// Logout godoc
// @Summary      End the current session
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.TokenFrom(c, h.cookie.Name)
	if err := h.usecase.Logout(c.Request.Context(), token); err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	h.setCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary      Current user and profile
// @Tags         auth
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.UserWithProfileResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, errNoSession)
		return
	}

	u, err := h.usecase.Me(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromUserWithProfile(u))
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", "", h.cookie.Secure, true)
}

func mapAuthError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
		return pkg.NewDomainErrorSimple("EMAIL_ALREADY_REGISTERED", "An account with this email already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrAccountInactive):
		return pkg.NewDomainErrorSimple("ACCOUNT_INACTIVE", "Account is inactive", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
