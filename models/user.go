package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bengkelpro-backend/utils"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username string    `gorm:"uniqueIndex;not null" json:"username"`
	Email    string    `json:"email,omitempty"`
	Password string    `gorm:"not null" json:"-"`

	Role       string `gorm:"type:varchar(20);not null" json:"role"` // 'owner' or 'employee'
	WorkshopID string `gorm:"type:varchar(18);index;not null" json:"workshopId"`

	Workshop Workshop `gorm:"foreignKey:WorkshopID" json:"-"`

	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
