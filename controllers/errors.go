package controllers

import (
	"errors"
	"net/http"

	"github.com/Orbe-ERP/pos-backend/pkg/resp"
	"github.com/Orbe-ERP/pos-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Everything here is recoverable client-side.
func writeServiceError(c *gin.Context, err error) {
	if te, ok := services.AsTransitionError(err); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"ok":     false,
			"error":  "invalid transition",
			"lineId": te.LineID,
			"from":   te.From,
			"to":     te.To,
		})
		return
	}
	switch {
	case errors.Is(err, services.ErrValidation):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, "conflict, retry")
	case errors.Is(err, services.ErrNothingToSettle):
		resp.Unprocessable(c, "nothing to settle")
	default:
		resp.ServerError(c, err)
	}
}
