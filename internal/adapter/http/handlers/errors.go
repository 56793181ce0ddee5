package handlers

import (
	"errors"
	"net/http"

	"solar_marketplace/internal/usecase"
	"solar_marketplace/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInvalidLimit   = pkg.NewValidationError("limit", "limit must be a positive integer")
	errNoSession      = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
)

// writeError renders appErr. 5xx errors are attached to the context so the
// request logger records the cause.
func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		_ = c.Error(appErr)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapCommonError covers the errors every handler can see. ok is false when
// err needs a handler-specific mapping.
func mapCommonError(err error) (*pkg.AppError, bool) {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewValidationError(verr.Field, verr.Reason), true
	case errors.Is(err, usecase.ErrUnauthenticated):
		return errNoSession, true
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You do not have access to this resource", http.StatusForbidden), true
	}
	return nil, false
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
