package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bengkelpro-backend/models"
)

// SessionSummary is the derived view of one service session.
type SessionSummary struct {
	Session       models.ServiceSession `json:"session"`
	Items         []models.ServiceItem  `json:"services"`
	Payments      []models.Payment      `json:"payments"`
	ServicesTotal float64               `json:"servicesTotal"`
	PaymentsTotal float64               `json:"paymentsTotal"`
	RemainingDebt float64               `json:"remainingDebt"`
}

// CustomerSummary is the derived view of one customer's full history.
// TotalPayments includes general payments; no individual session does.
type CustomerSummary struct {
	Customer      models.Customer  `json:"customer"`
	Sessions      []SessionSummary `json:"serviceSessions"`
	TotalServices float64          `json:"totalServicesAmount"`
	TotalPayments float64          `json:"totalPaymentsAmount"`
	RemainingDebt float64          `json:"remainingDebt"`
}

// DashboardEntry is one row of the workshop roster.
type DashboardEntry struct {
	Customer     models.Customer `json:"customer"`
	TotalDebt    float64         `json:"totalDebt"`
	SessionCount int             `json:"totalServiceSessions"`
	ServiceCount int             `json:"totalServices"`
	PaymentCount int             `json:"totalPayments"`
}

// Dashboard is the workshop-wide roster view.
type Dashboard struct {
	Customers            []DashboardEntry `json:"customers"`
	SettledCustomers     int              `json:"settledCustomers"`
	OutstandingCustomers int              `json:"outstandingCustomers"`
	OutstandingTotal     float64          `json:"outstandingTotal"`
}

// DebtService derives balance figures from the current entity graph. The
// figures are never stored; every call recomputes them from a
// transactionally consistent snapshot, so a mutation can never leave a
// stale aggregate behind.
type DebtService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewDebtService(db *gorm.DB, log *zap.Logger) *DebtService {
	return &DebtService{db: db, log: log}
}

// CustomerSummary computes per-session and customer-level balances for one
// customer. It either returns a complete, consistent result or fails; a
// partial aggregate is never produced.
func (s *DebtService) CustomerSummary(ctx context.Context, workshopID string, customerID uuid.UUID) (*CustomerSummary, error) {
	var summary *CustomerSummary

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.Where("workshop_id = ? AND id = ?", workshopID, customerID).
			First(&customer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return wrapStorage("load customer", err)
		}

		var sessions []models.ServiceSession
		if err := tx.Where("workshop_id = ? AND customer_id = ?", workshopID, customerID).
			Order("session_date DESC").
			Find(&sessions).Error; err != nil {
			return wrapStorage("load sessions", err)
		}

		var items []models.ServiceItem
		if err := tx.Where("workshop_id = ? AND customer_id = ?", workshopID, customerID).
			Order("created_at").
			Find(&items).Error; err != nil {
			return wrapStorage("load service items", err)
		}

		var payments []models.Payment
		if err := tx.Where("workshop_id = ? AND customer_id = ?", workshopID, customerID).
			Order("payment_date").
			Find(&payments).Error; err != nil {
			return wrapStorage("load payments", err)
		}

		result, err := summarizeCustomer(customer, sessions, items, payments)
		if err != nil {
			return err
		}
		summary = result
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// Dashboard computes the roster view for every customer of the workshop,
// using the same formulas as CustomerSummary.
func (s *DebtService) Dashboard(ctx context.Context, workshopID string) (*Dashboard, error) {
	var dashboard *Dashboard

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customers []models.Customer
		if err := tx.Where("workshop_id = ?", workshopID).
			Order("name").
			Find(&customers).Error; err != nil {
			return wrapStorage("load customers", err)
		}

		var sessions []models.ServiceSession
		if err := tx.Where("workshop_id = ?", workshopID).
			Find(&sessions).Error; err != nil {
			return wrapStorage("load sessions", err)
		}

		var items []models.ServiceItem
		if err := tx.Where("workshop_id = ?", workshopID).
			Find(&items).Error; err != nil {
			return wrapStorage("load service items", err)
		}

		var payments []models.Payment
		if err := tx.Where("workshop_id = ?", workshopID).
			Find(&payments).Error; err != nil {
			return wrapStorage("load payments", err)
		}

		result, err := buildDashboard(customers, sessions, items, payments)
		if err != nil {
			return err
		}
		dashboard = result
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dashboard, nil
}

// summarizeCustomer is a pure function over a snapshot of one customer's
// entity graph. Overpayment is preserved as a true negative figure at both
// scopes, never clamped; a session-scoped payment only ever offsets its
// own session and a general payment only offsets the customer total.
func summarizeCustomer(customer models.Customer, sessions []models.ServiceSession, items []models.ServiceItem, payments []models.Payment) (*CustomerSummary, error) {
	byID := make(map[uuid.UUID]*SessionSummary, len(sessions))
	ordered := make([]*SessionSummary, 0, len(sessions))
	for _, session := range sessions {
		ss := &SessionSummary{
			Session:  session,
			Items:    []models.ServiceItem{},
			Payments: []models.Payment{},
		}
		byID[session.ID] = ss
		ordered = append(ordered, ss)
	}

	summary := &CustomerSummary{Customer: customer}

	for _, item := range items {
		ss, ok := byID[item.SessionID]
		if !ok {
			return nil, &ConsistencyError{Reason: "service item " + item.ID.String() + " references a session outside the customer graph"}
		}
		if item.CustomerID != customer.ID {
			return nil, &ConsistencyError{Reason: "service item " + item.ID.String() + " references a foreign customer"}
		}
		ss.Items = append(ss.Items, item)
		ss.ServicesTotal += item.Price
	}

	for _, payment := range payments {
		if payment.CustomerID != customer.ID {
			return nil, &ConsistencyError{Reason: "payment " + payment.ID.String() + " references a foreign customer"}
		}
		if payment.IsGeneral() {
			summary.TotalPayments += payment.Amount
			continue
		}
		ss, ok := byID[*payment.SessionID]
		if !ok {
			return nil, &ConsistencyError{Reason: "payment " + payment.ID.String() + " references a session outside the customer graph"}
		}
		ss.Payments = append(ss.Payments, payment)
		ss.PaymentsTotal += payment.Amount
	}

	summary.Sessions = make([]SessionSummary, 0, len(ordered))
	for _, ss := range ordered {
		ss.RemainingDebt = ss.ServicesTotal - ss.PaymentsTotal
		summary.TotalServices += ss.ServicesTotal
		summary.TotalPayments += ss.PaymentsTotal
		summary.Sessions = append(summary.Sessions, *ss)
	}
	summary.RemainingDebt = summary.TotalServices - summary.TotalPayments

	return summary, nil
}

func buildDashboard(customers []models.Customer, sessions []models.ServiceSession, items []models.ServiceItem, payments []models.Payment) (*Dashboard, error) {
	sessionsByCustomer := make(map[uuid.UUID][]models.ServiceSession)
	for _, session := range sessions {
		sessionsByCustomer[session.CustomerID] = append(sessionsByCustomer[session.CustomerID], session)
	}
	itemsByCustomer := make(map[uuid.UUID][]models.ServiceItem)
	for _, item := range items {
		itemsByCustomer[item.CustomerID] = append(itemsByCustomer[item.CustomerID], item)
	}
	paymentsByCustomer := make(map[uuid.UUID][]models.Payment)
	for _, payment := range payments {
		paymentsByCustomer[payment.CustomerID] = append(paymentsByCustomer[payment.CustomerID], payment)
	}

	dashboard := &Dashboard{Customers: make([]DashboardEntry, 0, len(customers))}
	for _, customer := range customers {
		summary, err := summarizeCustomer(customer,
			sessionsByCustomer[customer.ID],
			itemsByCustomer[customer.ID],
			paymentsByCustomer[customer.ID])
		if err != nil {
			return nil, err
		}

		dashboard.Customers = append(dashboard.Customers, DashboardEntry{
			Customer:     customer,
			TotalDebt:    summary.RemainingDebt,
			SessionCount: len(sessionsByCustomer[customer.ID]),
			ServiceCount: len(itemsByCustomer[customer.ID]),
			PaymentCount: len(paymentsByCustomer[customer.ID]),
		})

		if summary.RemainingDebt > 0 {
			dashboard.OutstandingCustomers++
			dashboard.OutstandingTotal += summary.RemainingDebt
		} else {
			dashboard.SettledCustomers++
		}
	}

	return dashboard, nil
}
