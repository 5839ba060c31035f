package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bengkelpro-backend/config"
	"bengkelpro-backend/services"
	"bengkelpro-backend/utils"
)

// CreateSessionInput defines the expected JSON structure for creating a service session
type CreateSessionInput struct {
	CustomerID  uuid.UUID `json:"customerId" binding:"required"`
	SessionName string    `json:"sessionName" binding:"required"`
}

// CreateServiceSession creates a new named session for a customer
func CreateServiceSession(c *gin.Context) {
	workshopID, ok := workshopFromContext(c)
	if !ok {
		return
	}

	var input CreateSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ledger := services.NewLedgerService(config.DB, config.Logger)
	session, err := ledger.CreateSession(c.Request.Context(), workshopID, input.CustomerID, input.SessionName)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GetCustomerServiceSessions lists a customer's sessions, newest first
func GetCustomerServiceSessions(c *gin.Context) {
	workshopID, ok := workshopFromContext(c)
	if !ok {
		return
	}

	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	ledger := services.NewLedgerService(config.DB, config.Logger)
	sessions, err := ledger.ListSessions(c.Request.Context(), workshopID, customerUUID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessions)
}
