package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bengkelpro-backend/models"
)

// Budi has one session "Servis A" with items 50000 + 30000 and a
// session-scoped payment of 30000: the session owes 50000 and so does the
// customer.
func TestSessionAndCustomerDebt(t *testing.T) {
	ledger, db := newTestLedger(t)
	budi := seedCustomer(t, ledger, "WS1", "Budi", "081234567890")
	session := seedSession(t, ledger, "WS1", budi.ID, "Servis A")
	seedItem(t, ledger, "WS1", session.ID, budi.ID, "Ganti oli", 50000)
	seedItem(t, ledger, "WS1", session.ID, budi.ID, "Tune up", 30000)
	seedPayment(t, ledger, "WS1", budi.ID, 30000, &session.ID)

	debts := NewDebtService(db, zap.NewNop())
	summary, err := debts.CustomerSummary(context.Background(), "WS1", budi.ID)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if len(summary.Sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(summary.Sessions))
	}
	ss := summary.Sessions[0]
	if ss.ServicesTotal != 80000 || ss.PaymentsTotal != 30000 || ss.RemainingDebt != 50000 {
		t.Fatalf("unexpected session figures: %+v", ss)
	}
	if summary.TotalServices != 80000 || summary.TotalPayments != 30000 || summary.RemainingDebt != 50000 {
		t.Fatalf("unexpected customer figures: total=%v paid=%v debt=%v",
			summary.TotalServices, summary.TotalPayments, summary.RemainingDebt)
	}
}

// A general payment settles the customer's balance but leaves every
// individual session debt untouched.
func TestGeneralPaymentLeavesSessionDebtUnchanged(t *testing.T) {
	ledger, db := newTestLedger(t)
	budi := seedCustomer(t, ledger, "WS1", "Budi", "081234567890")
	session := seedSession(t, ledger, "WS1", budi.ID, "Servis A")
	seedItem(t, ledger, "WS1", session.ID, budi.ID, "Ganti oli", 50000)
	seedItem(t, ledger, "WS1", session.ID, budi.ID, "Tune up", 30000)
	seedPayment(t, ledger, "WS1", budi.ID, 30000, &session.ID)
	seedPayment(t, ledger, "WS1", budi.ID, 50000, nil)

	debts := NewDebtService(db, zap.NewNop())
	summary, err := debts.CustomerSummary(context.Background(), "WS1", budi.ID)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if summary.RemainingDebt != 0 {
		t.Fatalf("expected settled customer, got %v", summary.RemainingDebt)
	}
	if summary.Sessions[0].RemainingDebt != 50000 {
		t.Fatalf("expected session debt still 50000, got %v", summary.Sessions[0].RemainingDebt)
	}
	if summary.TotalPayments != 80000 {
		t.Fatalf("expected total payments 80000, got %v", summary.TotalPayments)
	}
}

func TestOverpaymentStaysNegative(t *testing.T) {
	ledger, db := newTestLedger(t)
	budi := seedCustomer(t, ledger, "WS1", "Budi", "081234567890")
	session := seedSession(t, ledger, "WS1", budi.ID, "Servis A")
	seedItem(t, ledger, "WS1", session.ID, budi.ID, "Ganti oli", 50000)
	seedPayment(t, ledger, "WS1", budi.ID, 70000, &session.ID)

	debts := NewDebtService(db, zap.NewNop())
	summary, err := debts.CustomerSummary(context.Background(), "WS1", budi.ID)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if summary.Sessions[0].RemainingDebt != -20000 {
		t.Fatalf("expected session debt -20000, got %v", summary.Sessions[0].RemainingDebt)
	}
	if summary.RemainingDebt != -20000 {
		t.Fatalf("expected customer debt -20000, got %v", summary.RemainingDebt)
	}
}

func TestSessionPaymentOnlyAffectsItsSession(t *testing.T) {
	ledger, db := newTestLedger(t)
	budi := seedCustomer(t, ledger, "WS1", "Budi", "081234567890")
	sessionA := seedSession(t, ledger, "WS1", budi.ID, "Servis A")
	sessionB := seedSession(t, ledger, "WS1", budi.ID, "Servis B")
	seedItem(t, ledger, "WS1", sessionA.ID, budi.ID, "Ganti oli", 50000)
	seedItem(t, ledger, "WS1", sessionB.ID, budi.ID, "Tambal ban", 20000)
	seedPayment(t, ledger, "WS1", budi.ID, 25000, &sessionA.ID)

	debts := NewDebtService(db, zap.NewNop())
	summary, err := debts.CustomerSummary(context.Background(), "WS1", budi.ID)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	for _, ss := range summary.Sessions {
		switch ss.Session.ID {
		case sessionA.ID:
			if ss.RemainingDebt != 25000 {
				t.Fatalf("expected session A debt 25000, got %v", ss.RemainingDebt)
			}
		case sessionB.ID:
			if ss.RemainingDebt != 20000 {
				t.Fatalf("expected session B debt 20000, got %v", ss.RemainingDebt)
			}
		}
	}
	if summary.RemainingDebt != 45000 {
		t.Fatalf("expected customer debt 45000, got %v", summary.RemainingDebt)
	}
}

func TestCustomerSummaryUnknownCustomer(t *testing.T) {
	db := setupTestDB(t)
	debts := NewDebtService(db, zap.NewNop())

	if _, err := debts.CustomerSummary(context.Background(), "WS1", uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCustomerSummaryScopedToWorkshop(t *testing.T) {
	ledger, db := newTestLedger(t)
	budi := seedCustomer(t, ledger, "WS1", "Budi", "081234567890")

	debts := NewDebtService(db, zap.NewNop())
	if _, err := debts.CustomerSummary(context.Background(), "WS2", budi.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found across workshops, got %v", err)
	}
}

func TestDashboardCountsSettledAndOutstanding(t *testing.T) {
	ledger, db := newTestLedger(t)

	budi := seedCustomer(t, ledger, "WS1", "Budi", "0812")
	budiSession := seedSession(t, ledger, "WS1", budi.ID, "Servis A")
	seedItem(t, ledger, "WS1", budiSession.ID, budi.ID, "Ganti oli", 50000)

	sari := seedCustomer(t, ledger, "WS1", "Sari", "0813")
	sariSession := seedSession(t, ledger, "WS1", sari.ID, "Servis B")
	seedItem(t, ledger, "WS1", sariSession.ID, sari.ID, "Tambal ban", 20000)
	seedPayment(t, ledger, "WS1", sari.ID, 20000, &sariSession.ID)

	// another workshop's data must not bleed into the roster
	foreign := seedCustomer(t, ledger, "WS2", "Andi", "0814")
	foreignSession := seedSession(t, ledger, "WS2", foreign.ID, "Servis C")
	seedItem(t, ledger, "WS2", foreignSession.ID, foreign.ID, "Cat ulang", 900000)

	debts := NewDebtService(db, zap.NewNop())
	dashboard, err := debts.Dashboard(context.Background(), "WS1")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	if len(dashboard.Customers) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(dashboard.Customers))
	}
	if dashboard.OutstandingCustomers != 1 || dashboard.SettledCustomers != 1 {
		t.Fatalf("expected 1 outstanding / 1 settled, got %d / %d",
			dashboard.OutstandingCustomers, dashboard.SettledCustomers)
	}
	if dashboard.OutstandingTotal != 50000 {
		t.Fatalf("expected outstanding total 50000, got %v", dashboard.OutstandingTotal)
	}

	for _, entry := range dashboard.Customers {
		switch entry.Customer.ID {
		case budi.ID:
			if entry.TotalDebt != 50000 || entry.SessionCount != 1 || entry.ServiceCount != 1 || entry.PaymentCount != 0 {
				t.Fatalf("unexpected Budi entry: %+v", entry)
			}
		case sari.ID:
			if entry.TotalDebt != 0 || entry.PaymentCount != 1 {
				t.Fatalf("unexpected Sari entry: %+v", entry)
			}
		default:
			t.Fatalf("unexpected customer in roster: %v", entry.Customer.ID)
		}
	}
}

func TestSummarizeCustomerRejectsForeignReferences(t *testing.T) {
	customer := models.Customer{ID: uuid.New(), WorkshopID: "WS1", Name: "Budi", Phone: "0812"}
	session := models.ServiceSession{ID: uuid.New(), WorkshopID: "WS1", CustomerID: customer.ID, SessionName: "Servis A", SessionDate: time.Now()}

	foreignItem := models.ServiceItem{
		ID: uuid.New(), WorkshopID: "WS1", CustomerID: uuid.New(),
		SessionID: session.ID, Description: "Ganti oli", Price: 50000,
	}

	var consistencyErr *ConsistencyError
	_, err := summarizeCustomer(customer, []models.ServiceSession{session}, []models.ServiceItem{foreignItem}, nil)
	if !errors.As(err, &consistencyErr) {
		t.Fatalf("expected consistency error for foreign item, got %v", err)
	}

	orphanSession := uuid.New()
	orphanPayment := models.Payment{
		ID: uuid.New(), WorkshopID: "WS1", CustomerID: customer.ID,
		SessionID: &orphanSession, Amount: 10000, PaymentDate: time.Now(),
	}
	_, err = summarizeCustomer(customer, []models.ServiceSession{session}, nil, []models.Payment{orphanPayment})
	if !errors.As(err, &consistencyErr) {
		t.Fatalf("expected consistency error for orphan payment, got %v", err)
	}
}
