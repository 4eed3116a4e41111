package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/echosphere/echosphere-backend/domain"
)

// respondError maps a domain error to the HTTP surface. Validation and
// not-found errors are precise; storage and upload errors stay generic
// outside development so service internals never leak to callers.
func respondError(c *gin.Context, appEnv string, operation string, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Message: ve.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, domain.ErrorResponse{Message: "resource not found"})
	case errors.Is(err, domain.ErrRequestTimedOut), errors.Is(err, context.DeadlineExceeded):
		log.Error().Err(err).Str("operation", operation).Msg("request timed out")
		c.JSON(http.StatusGatewayTimeout, domain.ErrorResponse{Message: "request timed out"})
	default:
		log.Error().Err(err).Str("operation", operation).Msg("internal error")
		message := "internal server error"
		if appEnv == "development" {
			message = err.Error()
		}
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Message: message})
	}
}
