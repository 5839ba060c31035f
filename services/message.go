package services

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bengkelpro-backend/models"
	"bengkelpro-backend/utils"
)

const messageSeparator = "----------------------------"

// ComposedMessage is the rendered service history plus the deep link that
// opens WhatsApp with the text pre-filled for the customer's number.
type ComposedMessage struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsappUrl"`
}

// MessageService renders a customer's service history into a shareable
// WhatsApp message. Composing is a pure read: it never changes ledger
// state and can be invoked any number of times.
type MessageService struct {
	db    *gorm.DB
	debts *DebtService
	log   *zap.Logger
}

func NewMessageService(db *gorm.DB, log *zap.Logger) *MessageService {
	return &MessageService{db: db, debts: NewDebtService(db, log), log: log}
}

// ComposeMessage renders either the customer's full history or, with a
// session id, a single session. A session id that does not belong to the
// customer is reported as not found.
func (s *MessageService) ComposeMessage(ctx context.Context, workshopID string, customerID uuid.UUID, sessionID *uuid.UUID) (*ComposedMessage, error) {
	var workshop models.Workshop
	if err := s.db.WithContext(ctx).First(&workshop, "id = ?", workshopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, wrapStorage("load workshop", err)
	}

	summary, err := s.debts.CustomerSummary(ctx, workshopID, customerID)
	if err != nil {
		return nil, err
	}

	scoped := summary.Sessions
	totalServices := summary.TotalServices
	totalPayments := summary.TotalPayments
	if sessionID != nil {
		session, ok := findSession(summary.Sessions, *sessionID)
		if !ok {
			return nil, ErrNotFound
		}
		scoped = []SessionSummary{session}
		totalServices = session.ServicesTotal
		totalPayments = session.PaymentsTotal
	}

	text := renderMessage(workshop.Name, summary.Customer, scoped, totalServices, totalPayments)
	phone := utils.NormalizePhone(summary.Customer.Phone)

	return &ComposedMessage{
		Message:     text,
		WhatsAppURL: "https://wa.me/" + phone + "?text=" + url.QueryEscape(text),
	}, nil
}

func findSession(sessions []SessionSummary, sessionID uuid.UUID) (SessionSummary, bool) {
	for _, ss := range sessions {
		if ss.Session.ID == sessionID {
			return ss, true
		}
	}
	return SessionSummary{}, false
}

// renderMessage produces the deterministic text layout: header, one block
// per session with items, payments and the session's remaining debt, then
// the grand total across the rendered scope.
func renderMessage(workshopName string, customer models.Customer, sessions []SessionSummary, totalServices, totalPayments float64) string {
	var b strings.Builder

	b.WriteString("*" + workshopName + "*\n")
	b.WriteString("Detail Servis - " + customer.Name + "\n")
	b.WriteString(customer.Phone + "\n")
	b.WriteString(time.Now().Format("02 January 2006") + "\n\n")
	b.WriteString(messageSeparator + "\n\n")

	for _, ss := range sessions {
		b.WriteString("*" + ss.Session.SessionName + "*\n")
		b.WriteString(ss.Session.SessionDate.Format("02 January 2006") + "\n\n")

		if len(ss.Items) > 0 {
			b.WriteString("DETAIL SERVIS:\n")
			for _, item := range ss.Items {
				b.WriteString("- " + item.Description + "\n")
				b.WriteString("  " + utils.FormatRupiah(item.Price) + "\n")
			}
			b.WriteString("\n")
		}

		if len(ss.Payments) > 0 {
			b.WriteString("PEMBAYARAN:\n")
			for _, payment := range ss.Payments {
				line := "- " + payment.PaymentDate.Format("02/01/2006") + " - " + utils.FormatRupiah(payment.Amount)
				if payment.Description != "" {
					line += " (" + payment.Description + ")"
				}
				b.WriteString(line + "\n")
			}
			b.WriteString("\n")
		}

		b.WriteString("Sisa: " + utils.FormatRupiah(ss.RemainingDebt) + "\n\n")
		b.WriteString(messageSeparator + "\n\n")
	}

	remaining := totalServices - totalPayments
	b.WriteString("RINGKASAN:\n")
	b.WriteString("Total Servis: " + utils.FormatRupiah(totalServices) + "\n")
	b.WriteString("Total Bayar: " + utils.FormatRupiah(totalPayments) + "\n")
	b.WriteString("Sisa: " + utils.FormatRupiah(remaining) + "\n\n")

	if remaining > 0 {
		b.WriteString("Mohon segera melunasi sisa pembayaran.\n")
	} else {
		b.WriteString("Pembayaran lunas. Terima kasih!\n")
	}

	b.WriteString("\nTerima kasih telah mempercayakan kendaraan Anda kepada " + workshopName + "!")

	return b.String()
}
