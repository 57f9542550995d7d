package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	apierrors "github.com/yukikurage/erp-api/internal/errors"
	"github.com/yukikurage/erp-api/internal/services"
)

// respondServiceError maps service errors onto the API error envelope.
// Anything unrecognised is logged and reported as a generic failure.
func respondServiceError(c *gin.Context, err error) {
	var verrs services.ValidationErrors

	switch {
	case errors.As(err, &verrs):
		apierrors.BadRequestWithDetails(c, "Validation failed", verrs)
	case errors.Is(err, services.ErrUnauthenticated):
		apierrors.Unauthorized(c, "")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c, err.Error())
	case errors.Is(err, services.ErrInsufficientRole):
		apierrors.InsufficientPermissions(c, "")
	case errors.Is(err, services.ErrOrganizationNotFound),
		errors.Is(err, services.ErrProductNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrDuplicateSKU),
		errors.Is(err, services.ErrDuplicateEmployee),
		errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, err.Error())
	default:
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("request failed")
		_ = c.Error(err)
		apierrors.InternalError(c, "")
	}
}
