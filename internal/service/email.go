package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"rentafleet-backend/internal/config"
	"rentafleet-backend/internal/logger"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	enabled   bool
}

// NewEmailService builds the SendGrid-backed email sender. When email is
// disabled in the config every send becomes a logged no-op, which keeps
// local development working without an API key.
func NewEmailService(cfg config.EmailConfig) EmailService {
	return &sendGridEmailService{
		apiKey:    cfg.APIKey,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		enabled:   cfg.Enabled,
	}
}

func (s *sendGridEmailService) SendRentalConfirmation(ctx context.Context, toEmail, toName, plate, startDate, endDate string, totalCost float64) error {
	subject := fmt.Sprintf("Rental confirmation - vehicle %s", plate)
	plainText := fmt.Sprintf(
		"Hi %s,\n\nYour rental of vehicle %s from %s to %s is confirmed.\nTotal cost: %.2f\n\nThank you for choosing us.",
		toName, plate, startDate, endDate, totalCost,
	)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Rental Confirmed</h2>
				<p>Hi %s,</p>
				<p>Your rental of vehicle <strong>%s</strong> from <strong>%s</strong> to <strong>%s</strong> is confirmed.</p>
				<p>Total cost: <strong>%.2f</strong></p>
			</body>
		</html>
	`, toName, plate, startDate, endDate, totalCost)

	return s.send(toEmail, toName, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) send(to, toName, subject, plainText, htmlContent string) error {
	if !s.enabled {
		logger.Debug("Email disabled, skipping send", "to", to, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
