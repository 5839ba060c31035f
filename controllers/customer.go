package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bengkelpro-backend/config"
	"bengkelpro-backend/services"
	"bengkelpro-backend/utils"
)

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// CreateCustomer creates a new customer for the workshop
func CreateCustomer(c *gin.Context) {
	workshopID, ok := workshopFromContext(c)
	if !ok {
		return
	}

	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ledger := services.NewLedgerService(config.DB, config.Logger)
	customer, err := ledger.CreateCustomer(c.Request.Context(), workshopID, input.Name, input.Phone)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers retrieves all customers for the workshop
func GetCustomers(c *gin.Context) {
	workshopID, ok := workshopFromContext(c)
	if !ok {
		return
	}

	ledger := services.NewLedgerService(config.DB, config.Logger)
	customers, err := ledger.ListCustomers(c.Request.Context(), workshopID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomerSummary retrieves a customer with per-session and total debt figures
func GetCustomerSummary(c *gin.Context) {
	workshopID, ok := workshopFromContext(c)
	if !ok {
		return
	}

	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	debts := services.NewDebtService(config.DB, config.Logger)
	summary, err := debts.CustomerSummary(c.Request.Context(), workshopID, customerUUID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// DeleteCustomer removes a customer and all their sessions, items and payments
func DeleteCustomer(c *gin.Context) {
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
	if err := ledger.DeleteCustomer(c.Request.Context(), workshopID, customerUUID); err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer and all related data deleted successfully"})
}
