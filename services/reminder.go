// services/reminder.go
package services

import (
	"context"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bengkelpro-backend/models"
	"bengkelpro-backend/utils"
)

// ReminderService sends a WhatsApp reminder to every customer with an
// outstanding balance. It only reads the ledger and writes ReminderLog
// rows; balances are never touched.
type ReminderService struct {
	db     *gorm.DB
	debts  *DebtService
	client *twilio.RestClient
	log    *zap.Logger
}

func NewReminderService(db *gorm.DB, log *zap.Logger) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db:    db,
		debts: NewDebtService(db, log),
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		log: log,
	}
}

// StartScheduler runs the reminder pass every Monday at 9 AM.
func (s *ReminderService) StartScheduler() *cron.Cron {
	c := cron.New()

	c.AddFunc("0 9 * * 1", func() {
		s.SendDebtReminders(context.Background())
	})

	c.Start()
	s.log.Info("debt reminder scheduler started")
	return c
}

func (s *ReminderService) SendDebtReminders(ctx context.Context) {
	s.log.Info("starting debt reminder processing")

	var workshops []models.Workshop
	if err := s.db.WithContext(ctx).Find(&workshops).Error; err != nil {
		s.log.Error("failed to fetch workshops", zap.Error(err))
		return
	}

	for _, workshop := range workshops {
		s.processWorkshop(ctx, workshop)
	}

	s.log.Info("debt reminder processing completed")
}

func (s *ReminderService) processWorkshop(ctx context.Context, workshop models.Workshop) {
	dashboard, err := s.debts.Dashboard(ctx, workshop.ID)
	if err != nil {
		s.log.Error("failed to build dashboard for reminders",
			zap.String("workshopId", workshop.ID), zap.Error(err))
		return
	}

	for _, entry := range dashboard.Customers {
		if entry.TotalDebt <= 0 {
			continue
		}
		s.sendReminder(ctx, workshop, entry.Customer, entry.TotalDebt)
	}
}

func (s *ReminderService) sendReminder(ctx context.Context, workshop models.Workshop, customer models.Customer, debt float64) {
	message := "Halo " + customer.Name + ", Anda memiliki sisa pembayaran sebesar " +
		utils.FormatRupiah(debt) + " di " + workshop.Name +
		". Mohon segera melunasi. Terima kasih!"

	phone := utils.NormalizePhone(customer.Phone)
	channel := "whatsapp"
	to := "whatsapp:+" + phone
	from := "whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER")

	// Fall back to SMS when no WhatsApp sender is configured
	if os.Getenv("TWILIO_WHATSAPP_NUMBER") == "" {
		channel = "sms"
		to = "+" + phone
		from = os.Getenv("TWILIO_PHONE_NUMBER")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(message)

	status := "sent"
	errorMsg := ""

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		s.log.Warn("failed to send reminder",
			zap.String("customerId", customer.ID.String()), zap.Error(err))
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		s.log.Info("reminder sent",
			zap.String("customerId", customer.ID.String()),
			zap.String("sid", *resp.Sid))
	}

	reminderLog := models.ReminderLog{
		WorkshopID:   workshop.ID,
		CustomerID:   customer.ID,
		Debt:         debt,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		Channel:      channel,
		SentAt:       time.Now(),
	}

	if err := s.db.WithContext(ctx).Create(&reminderLog).Error; err != nil {
		s.log.Error("failed to log reminder",
			zap.String("customerId", customer.ID.String()), zap.Error(err))
	}
}
