package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bengkelpro-backend/config"
	"bengkelpro-backend/models"
	"bengkelpro-backend/utils"
)

type RegisterInput struct {
	Username     string `json:"username" binding:"required"`
	Password     string `json:"password" binding:"required,min=8"`
	Email        string `json:"email" binding:"omitempty,email"`
	Role         string `json:"role" binding:"omitempty,oneof=owner employee"`
	WorkshopName string `json:"workshopName"`
	WorkshopID   string `json:"workshopId"` // join code, required for employees
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a user account. Owners get a fresh workshop with a
// shareable join code; employees join an existing workshop by code.
func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	role := input.Role
	if role == "" {
		role = "owner"
	}

	var existingUser models.User
	result := config.DB.Where("username = ?", input.Username).First(&existingUser)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Username already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	newUser := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password, // Will be hashed in BeforeCreate hook
		Role:     role,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if role == "employee" {
			if input.WorkshopID == "" {
				return errors.New("workshop ID required for employee")
			}
			var workshop models.Workshop
			if err := tx.First(&workshop, "id = ?", strings.ToUpper(strings.TrimSpace(input.WorkshopID))).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errors.New("invalid workshop ID")
				}
				return err
			}
			newUser.WorkshopID = workshop.ID
		} else {
			workshopName := strings.TrimSpace(input.WorkshopName)
			if workshopName == "" {
				workshopName = "Bengkel " + input.Username
			}
			workshop := models.Workshop{
				ID:   utils.GenerateWorkshopID(),
				Name: workshopName,
			}
			if err := tx.Create(&workshop).Error; err != nil {
				return err
			}
			newUser.WorkshopID = workshop.ID
		}

		return tx.Create(&newUser).Error
	})
	if err != nil {
		switch err.Error() {
		case "workshop ID required for employee", "invalid workshop ID":
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}

	token, err := utils.GenerateToken(newUser.ID.String(), newUser.WorkshopID, newUser.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user": gin.H{
			"id":         newUser.ID,
			"username":   newUser.Username,
			"email":      newUser.Email,
			"role":       newUser.Role,
			"workshopId": newUser.WorkshopID,
		},
	})
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	var user models.User
	result := config.DB.Where("username = ?", strings.TrimSpace(input.Username)).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), user.WorkshopID, user.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"role":       user.Role,
			"workshopId": user.WorkshopID,
		},
	})
}

func Me(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusInternalServerError, "User ID not found in context")
		return
	}

	var user models.User
	if err := config.DB.Preload("Workshop").First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":           user.ID,
			"username":     user.Username,
			"email":        user.Email,
			"role":         user.Role,
			"workshopId":   user.WorkshopID,
			"workshopName": user.Workshop.Name,
		},
	})
}
