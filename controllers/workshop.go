package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bengkelpro-backend/config"
	"bengkelpro-backend/models"
	"bengkelpro-backend/utils"
)

// UpdateWorkshopInput defines the expected JSON structure for renaming the workshop
type UpdateWorkshopInput struct {
	Name string `json:"name" binding:"required"`
}

// GetWorkshop returns the caller's workshop
func GetWorkshop(c *gin.Context) {
	workshopID, ok := workshopFromContext(c)
	if !ok {
		return
	}

	var workshop models.Workshop
	if err := config.DB.First(&workshop, "id = ?", workshopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Workshop not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, workshop)
}

// UpdateWorkshop renames the workshop. The name is the only mutable field;
// the join code never changes. Owner only.
func UpdateWorkshop(c *gin.Context) {
	workshopID, ok := workshopFromContext(c)
	if !ok {
		return
	}

	role, _ := c.Get("role")
	if role != "owner" {
		utils.RespondWithError(c, http.StatusForbidden, "Only the owner can update the workshop")
		return
	}

	var input UpdateWorkshopInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Workshop name is required")
		return
	}

	var workshop models.Workshop
	if err := config.DB.First(&workshop, "id = ?", workshopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Workshop not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	workshop.Name = name
	if err := config.DB.Save(&workshop).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update workshop")
		return
	}

	c.JSON(http.StatusOK, workshop)
}
