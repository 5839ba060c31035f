package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bengkelpro-backend/models"
)

// LedgerService owns every mutation of the entity graph: customers,
// service sessions, service items and payments. All lookups are scoped to
// the caller's workshop; an id belonging to another workshop behaves
// exactly like an unknown id.
type LedgerService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewLedgerService(db *gorm.DB, log *zap.Logger) *LedgerService {
	return &LedgerService{db: db, log: log}
}

func (s *LedgerService) CreateCustomer(ctx context.Context, workshopID, name, phone string) (*models.Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return nil, newValidationError("name", "required")
	}
	if phone == "" {
		return nil, newValidationError("phone", "required")
	}

	customer := models.Customer{
		WorkshopID: workshopID,
		Name:       name,
		Phone:      phone,
	}
	if err := s.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, wrapStorage("create customer", err)
	}
	return &customer, nil
}

func (s *LedgerService) ListCustomers(ctx context.Context, workshopID string) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.WithContext(ctx).
		Where("workshop_id = ?", workshopID).
		Order("name").
		Find(&customers).Error; err != nil {
		return nil, wrapStorage("list customers", err)
	}
	return customers, nil
}

// DeleteCustomer removes the customer together with all of their sessions,
// items and payments in one transaction. Partial deletion never survives:
// if any child delete fails the customer row stays too.
func (s *LedgerService) DeleteCustomer(ctx context.Context, workshopID string, customerID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.Where("workshop_id = ? AND id = ?", workshopID, customerID).
			First(&customer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return wrapStorage("load customer", err)
		}

		if err := tx.Where("workshop_id = ? AND customer_id = ?", workshopID, customerID).
			Delete(&models.Payment{}).Error; err != nil {
			return wrapStorage("delete payments", err)
		}
		if err := tx.Where("workshop_id = ? AND customer_id = ?", workshopID, customerID).
			Delete(&models.ServiceItem{}).Error; err != nil {
			return wrapStorage("delete service items", err)
		}
		if err := tx.Where("workshop_id = ? AND customer_id = ?", workshopID, customerID).
			Delete(&models.ServiceSession{}).Error; err != nil {
			return wrapStorage("delete sessions", err)
		}
		if err := tx.Delete(&customer).Error; err != nil {
			return wrapStorage("delete customer", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("customer deleted",
		zap.String("workshopId", workshopID),
		zap.String("customerId", customerID.String()))
	return nil
}

func (s *LedgerService) CreateSession(ctx context.Context, workshopID string, customerID uuid.UUID, sessionName string) (*models.ServiceSession, error) {
	sessionName = strings.TrimSpace(sessionName)
	if sessionName == "" {
		return nil, newValidationError("sessionName", "required")
	}

	if err := s.findCustomer(ctx, workshopID, customerID); err != nil {
		return nil, err
	}

	session := models.ServiceSession{
		WorkshopID:  workshopID,
		CustomerID:  customerID,
		SessionName: sessionName,
	}
	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, wrapStorage("create session", err)
	}
	return &session, nil
}

func (s *LedgerService) ListSessions(ctx context.Context, workshopID string, customerID uuid.UUID) ([]models.ServiceSession, error) {
	if err := s.findCustomer(ctx, workshopID, customerID); err != nil {
		return nil, err
	}

	var sessions []models.ServiceSession
	if err := s.db.WithContext(ctx).
		Where("workshop_id = ? AND customer_id = ?", workshopID, customerID).
		Order("session_date DESC").
		Find(&sessions).Error; err != nil {
		return nil, wrapStorage("list sessions", err)
	}
	return sessions, nil
}

// AddServiceItem attaches a billable line to a session. The session must
// belong to the stated customer; a session of any other customer is
// reported as not found.
func (s *LedgerService) AddServiceItem(ctx context.Context, workshopID string, sessionID, customerID uuid.UUID, description string, price float64) (*models.ServiceItem, error) {
	if err := validateItemInput(description, price); err != nil {
		return nil, err
	}

	if err := s.findCustomerSession(ctx, workshopID, customerID, sessionID); err != nil {
		return nil, err
	}

	item := models.ServiceItem{
		WorkshopID:  workshopID,
		CustomerID:  customerID,
		SessionID:   sessionID,
		Description: strings.TrimSpace(description),
		Price:       price,
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, wrapStorage("create service item", err)
	}
	return &item, nil
}

func (s *LedgerService) EditServiceItem(ctx context.Context, workshopID string, itemID uuid.UUID, description string, price float64) (*models.ServiceItem, error) {
	if err := validateItemInput(description, price); err != nil {
		return nil, err
	}

	var item models.ServiceItem
	if err := s.db.WithContext(ctx).
		Where("workshop_id = ? AND id = ?", workshopID, itemID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, wrapStorage("load service item", err)
	}

	item.Description = strings.TrimSpace(description)
	item.Price = price
	if err := s.db.WithContext(ctx).Save(&item).Error; err != nil {
		return nil, wrapStorage("update service item", err)
	}
	return &item, nil
}

func (s *LedgerService) DeleteServiceItem(ctx context.Context, workshopID string, itemID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("workshop_id = ? AND id = ?", workshopID, itemID).
		Delete(&models.ServiceItem{})
	if result.Error != nil {
		return wrapStorage("delete service item", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RecordPayment books a payment against a customer. With a session id the
// payment offsets that session's debt; without one it is a general payment
// against the customer's total balance.
func (s *LedgerService) RecordPayment(ctx context.Context, workshopID string, customerID uuid.UUID, amount float64, description string, sessionID *uuid.UUID) (*models.Payment, error) {
	if amount <= 0 {
		return nil, newValidationError("amount", "must be greater than zero")
	}

	if err := s.findCustomer(ctx, workshopID, customerID); err != nil {
		return nil, err
	}
	if sessionID != nil {
		if err := s.findCustomerSession(ctx, workshopID, customerID, *sessionID); err != nil {
			return nil, err
		}
	}

	payment := models.Payment{
		WorkshopID:  workshopID,
		CustomerID:  customerID,
		SessionID:   sessionID,
		Amount:      amount,
		Description: strings.TrimSpace(description),
	}
	if err := s.db.WithContext(ctx).Create(&payment).Error; err != nil {
		return nil, wrapStorage("create payment", err)
	}
	return &payment, nil
}

func (s *LedgerService) findCustomer(ctx context.Context, workshopID string, customerID uuid.UUID) error {
	var customer models.Customer
	err := s.db.WithContext(ctx).
		Select("id").
		Where("workshop_id = ? AND id = ?", workshopID, customerID).
		First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return wrapStorage("load customer", err)
	}
	return nil
}

func (s *LedgerService) findCustomerSession(ctx context.Context, workshopID string, customerID, sessionID uuid.UUID) error {
	var session models.ServiceSession
	err := s.db.WithContext(ctx).
		Select("id").
		Where("workshop_id = ? AND id = ? AND customer_id = ?", workshopID, sessionID, customerID).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return wrapStorage("load session", err)
	}
	return nil
}

func validateItemInput(description string, price float64) error {
	if strings.TrimSpace(description) == "" {
		return newValidationError("description", "required")
	}
	if price <= 0 {
		return newValidationError("price", "must be greater than zero")
	}
	return nil
}
