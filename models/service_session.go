package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceSession groups the billable work of one visit. Sessions are never
// closed; items and payments can be attached to them indefinitely.
type ServiceSession struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	WorkshopID string    `gorm:"type:varchar(18);index;not null" json:"workshopId"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`

	SessionName string    `gorm:"not null" json:"sessionName"`
	SessionDate time.Time `json:"sessionDate"`

	Items    []ServiceItem `gorm:"foreignKey:SessionID" json:"-"`
	Payments []Payment     `gorm:"foreignKey:SessionID" json:"-"`
}

func (s *ServiceSession) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.SessionDate.IsZero() {
		s.SessionDate = time.Now()
	}
	return
}
