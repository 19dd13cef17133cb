package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"wellecon/internal/api/models"
	"wellecon/internal/model"
)

func respondError(c *gin.Context, status int, code, message string, details map[string]interface{}) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// assumptionDetails exposes the offending field of a validation failure.
func assumptionDetails(err error) map[string]interface{} {
	var inv *model.InvalidAssumptionsError
	if errors.As(err, &inv) {
		return map[string]interface{}{
			"field":  inv.Field,
			"reason": inv.Reason,
		}
	}
	return nil
}
