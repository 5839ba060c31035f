package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bengkelpro-backend/config"
	"bengkelpro-backend/services"
)

// GetDashboard returns the workshop roster with per-customer debt figures
// and settled/outstanding counts, recomputed from scratch on every call
func GetDashboard(c *gin.Context) {
	workshopID, ok := workshopFromContext(c)
	if !ok {
		return
	}

	debts := services.NewDebtService(config.DB, config.Logger)
	dashboard, err := debts.Dashboard(c.Request.Context(), workshopID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
