package models

import (
	"time"
)

// Workshop is the tenant boundary. Its ID doubles as the join code that
// employees use when registering, so it stays short and human-shareable.
type Workshop struct {
	ID        string    `gorm:"type:varchar(18);primary_key" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`

	Users     []User     `gorm:"foreignKey:WorkshopID" json:"-"`
	Customers []Customer `gorm:"foreignKey:WorkshopID" json:"-"`
}
