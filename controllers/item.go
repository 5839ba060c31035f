package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bengkelpro-backend/config"
	"bengkelpro-backend/services"
	"bengkelpro-backend/utils"
)

// CreateServiceItemInput defines the expected JSON structure for adding a service item
type CreateServiceItemInput struct {
	SessionID   uuid.UUID `json:"sessionId" binding:"required"`
	CustomerID  uuid.UUID `json:"customerId" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Price       float64   `json:"price" binding:"required"`
}

// UpdateServiceItemInput defines the expected JSON structure for editing a service item
type UpdateServiceItemInput struct {
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
}

// CreateServiceItem attaches a billable line to a session
func CreateServiceItem(c *gin.Context) {
	workshopID, ok := workshopFromContext(c)
	if !ok {
		return
	}

	var input CreateServiceItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ledger := services.NewLedgerService(config.DB, config.Logger)
	item, err := ledger.AddServiceItem(c.Request.Context(), workshopID,
		input.SessionID, input.CustomerID, input.Description, input.Price)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateServiceItem edits the description and price of an existing item
func UpdateServiceItem(c *gin.Context) {
	workshopID, ok := workshopFromContext(c)
	if !ok {
		return
	}

	itemUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	var input UpdateServiceItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ledger := services.NewLedgerService(config.DB, config.Logger)
	item, err := ledger.EditServiceItem(c.Request.Context(), workshopID, itemUUID, input.Description, input.Price)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteServiceItem removes a single item without touching its siblings
func DeleteServiceItem(c *gin.Context) {
	workshopID, ok := workshopFromContext(c)
	if !ok {
		return
	}

	itemUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	ledger := services.NewLedgerService(config.DB, config.Logger)
	if err := ledger.DeleteServiceItem(c.Request.Context(), workshopID, itemUUID); err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service item deleted successfully"})
}
