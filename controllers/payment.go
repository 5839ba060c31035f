package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bengkelpro-backend/config"
	"bengkelpro-backend/services"
	"bengkelpro-backend/utils"
)

// CreatePaymentInput defines the expected JSON structure for recording a payment.
// SessionID is optional: without it the payment is general and applies to
// the customer's overall balance.
type CreatePaymentInput struct {
	CustomerID  uuid.UUID  `json:"customerId" binding:"required"`
	Amount      float64    `json:"amount" binding:"required"`
	Description string     `json:"description"`
	SessionID   *uuid.UUID `json:"sessionId"`
}

// CreatePayment records a payment against a customer
func CreatePayment(c *gin.Context) {
	workshopID, ok := workshopFromContext(c)
	if !ok {
		return
	}

	var input CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ledger := services.NewLedgerService(config.DB, config.Logger)
	payment, err := ledger.RecordPayment(c.Request.Context(), workshopID,
		input.CustomerID, input.Amount, input.Description, input.SessionID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}
