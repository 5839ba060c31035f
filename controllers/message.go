package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bengkelpro-backend/config"
	"bengkelpro-backend/services"
	"bengkelpro-backend/utils"
)

// GetWhatsAppMessage composes the customer's service history into a
// WhatsApp-ready text and deep link. An optional session_id query
// parameter narrows the message to a single session.
func GetWhatsAppMessage(c *gin.Context) {
	workshopID, ok := workshopFromContext(c)
	if !ok {
		return
	}

	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var sessionID *uuid.UUID
	if raw := c.Query("session_id"); raw != "" {
		sessionUUID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid session ID format")
			return
		}
		sessionID = &sessionUUID
	}

	messages := services.NewMessageService(config.DB, config.Logger)
	composed, err := messages.ComposeMessage(c.Request.Context(), workshopID, customerUUID, sessionID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, composed)
}
