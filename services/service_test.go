package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bengkelpro-backend/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Workshop{},
		&models.Customer{},
		&models.ServiceSession{},
		&models.ServiceItem{},
		&models.Payment{},
		&models.ReminderLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func newTestLedger(t *testing.T) (*LedgerService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewLedgerService(db, zap.NewNop()), db
}

func seedWorkshop(t *testing.T, db *gorm.DB, id, name string) models.Workshop {
	t.Helper()
	workshop := models.Workshop{ID: id, Name: name}
	if err := db.Create(&workshop).Error; err != nil {
		t.Fatalf("seed workshop: %v", err)
	}
	return workshop
}

func seedCustomer(t *testing.T, ledger *LedgerService, workshopID, name, phone string) *models.Customer {
	t.Helper()
	customer, err := ledger.CreateCustomer(context.Background(), workshopID, name, phone)
	if err != nil {
		t.Fatalf("seed customer %s: %v", name, err)
	}
	return customer
}

func seedSession(t *testing.T, ledger *LedgerService, workshopID string, customerID uuid.UUID, name string) *models.ServiceSession {
	t.Helper()
	session, err := ledger.CreateSession(context.Background(), workshopID, customerID, name)
	if err != nil {
		t.Fatalf("seed session %s: %v", name, err)
	}
	return session
}

func seedItem(t *testing.T, ledger *LedgerService, workshopID string, sessionID, customerID uuid.UUID, description string, price float64) *models.ServiceItem {
	t.Helper()
	item, err := ledger.AddServiceItem(context.Background(), workshopID, sessionID, customerID, description, price)
	if err != nil {
		t.Fatalf("seed item %s: %v", description, err)
	}
	return item
}

func seedPayment(t *testing.T, ledger *LedgerService, workshopID string, customerID uuid.UUID, amount float64, sessionID *uuid.UUID) *models.Payment {
	t.Helper()
	payment, err := ledger.RecordPayment(context.Background(), workshopID, customerID, amount, "", sessionID)
	if err != nil {
		t.Fatalf("seed payment: %v", err)
	}
	return payment
}
