package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer rows are removed for real on delete (no soft delete): the
// cascade in the ledger service must leave no orphaned sessions, items or
// payments behind.
type Customer struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	WorkshopID string    `gorm:"type:varchar(18);index;not null" json:"workshopId"`

	Name      string    `gorm:"not null" json:"name"`
	Phone     string    `gorm:"not null" json:"phone"`
	CreatedAt time.Time `json:"createdAt"`

	Sessions []ServiceSession `gorm:"foreignKey:CustomerID" json:"-"`
	Payments []Payment        `gorm:"foreignKey:CustomerID" json:"-"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
