package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lcdc/selections-go/response"
	"github.com/lcdc/selections-go/services"
)

// abortWithServiceError maps the service failure taxonomy onto HTTP
// statuses: NotFound 404, Forbidden 403, InvalidState 409, InvalidInput
// 400, anything else 500.
func abortWithServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrFormNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrInvalidState):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInvalidInput):
		status = http.StatusBadRequest
	}
	c.AbortWithStatusJSON(status, response.ErrorResponse{Error: err.Error()})
}
