package service

import (
	"context"
	"fmt"
	"strings"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/utils"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	disabled  bool
}

func NewEmailService(apiKey, fromEmail, fromName string, disabled bool) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		disabled:  disabled,
	}
}

func (s *emailService) SendOrderConfirmedNotification(ctx context.Context, email, renterName, orderID string, reservations []domain.Reservation) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\nYour booking order %s is confirmed. Reservations:\n\n", renterName, orderID)
	for _, rv := range reservations {
		fmt.Fprintf(&b, "- %s %s, car #%d, %s to %s, $%.2f\n",
			rv.CompanyName, rv.CarTypeName, rv.CarID,
			rv.StartDate.Format(utils.DateLayout), rv.EndDate.Format(utils.DateLayout),
			float64(rv.PriceCents)/100)
	}
	b.WriteString("\nSafe travels,\nThe Rental Desk")

	return s.send(email, renterName, fmt.Sprintf("Booking confirmed: order %s", orderID), b.String())
}

func (s *emailService) SendOrderFailedNotification(ctx context.Context, email, renterName, orderID, reason string) error {
	body := fmt.Sprintf("Hello %s,\n\nWe could not complete your booking order %s: %s.\n\nNo reservation from this order was made; please adjust your dates or car type and try again.\n\nThe Rental Desk",
		renterName, orderID, reason)
	return s.send(email, renterName, fmt.Sprintf("Booking failed: order %s", orderID), body)
}

func (s *emailService) send(to, toName, subject, body string) error {
	if s.disabled || to == "" {
		logger.Debug("Email delivery skipped", "to", to, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, body)

	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	logger.ExternalServiceResult("sendgrid", "send", err, "to", to)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
