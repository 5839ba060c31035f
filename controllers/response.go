package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bengkelpro-backend/config"
	"bengkelpro-backend/services"
	"bengkelpro-backend/utils"
)

// workshopFromContext returns the workshop id placed in the context by the
// auth middleware.
func workshopFromContext(c *gin.Context) (string, bool) {
	workshopID, exists := c.Get("workshopId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Workshop ID not found in context")
		return "", false
	}
	id, ok := workshopID.(string)
	if !ok || id == "" {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid workshop ID in context")
		return "", false
	}
	return id, true
}

// respondWithServiceError maps the service error taxonomy onto HTTP status
// codes. Not-found covers cross-tenant references too, so nothing about
// other workshops' data leaks through the status code.
func respondWithServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var consistencyErr *services.ConsistencyError

	switch {
	case errors.As(err, &validationErr):
		utils.RespondWithError(c, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Record not found")
	case errors.As(err, &consistencyErr):
		config.Logger.Error("ledger consistency violation", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Inconsistent ledger state")
	default:
		config.Logger.Error("storage failure", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}
