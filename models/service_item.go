package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceItem carries a redundant CustomerID alongside SessionID so that
// customer-scoped aggregation never has to join through sessions. The
// ledger service keeps both references pointing at the same customer.
type ServiceItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	WorkshopID string    `gorm:"type:varchar(18);index;not null" json:"workshopId"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`
	SessionID  uuid.UUID `gorm:"type:uuid;index;not null" json:"sessionId"`

	Description string    `gorm:"not null" json:"description"`
	Price       float64   `gorm:"type:decimal(12,2);not null" json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (i *ServiceItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
