package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment belongs to a customer and optionally to one of that customer's
// sessions. A payment without a session reference is a general payment
// applied against the customer's overall balance, never against any
// individual session.
type Payment struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	WorkshopID string     `gorm:"type:varchar(18);index;not null" json:"workshopId"`
	CustomerID uuid.UUID  `gorm:"type:uuid;index;not null" json:"customerId"`
	SessionID  *uuid.UUID `gorm:"type:uuid;index" json:"sessionId,omitempty"`

	Amount      float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	Description string    `json:"description,omitempty"`
	PaymentDate time.Time `json:"paymentDate"`
}

// IsGeneral reports whether the payment is applied against the customer's
// total balance rather than a specific session.
func (p *Payment) IsGeneral() bool {
	return p.SessionID == nil
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.PaymentDate.IsZero() {
		p.PaymentDate = time.Now()
	}
	return
}
