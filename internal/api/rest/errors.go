package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-revshare/internal/api/shared/errors"
	"github.com/feral-file/ff-revshare/internal/logger"
)

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, apiErr *apierrors.APIError) {
	c.JSON(apiErr.StatusCode(), apierrors.ErrorResponse{Error: apiErr})
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, apierrors.NewValidationError(details))
}

// respondExecutorError sends the error returned by the executor.
// Server side failures are logged, client errors are not.
func respondExecutorError(c *gin.Context, err error, message string) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		apiErr = apierrors.NewInternalError(message)
	}

	if apiErr.StatusCode() >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("path", c.Request.URL.Path),
			zap.String("message", message),
		)
	}

	respondWithError(c, apiErr)
}
