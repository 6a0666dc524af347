package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridEmailService) SendOverdueNotice(ctx context.Context, toEmail, toName, bookName string, dueDate time.Time, fineCents int32) error {
	subject := fmt.Sprintf("Overdue book: %s", bookName)
	plainText := fmt.Sprintf(
		"Hello %s,\n\nThe book \"%s\" was due on %s and has not been returned. Your current fine is $%.2f and grows daily until the book comes back.\n\nPlease return it at your earliest convenience.\n\nThe Library Team",
		toName, bookName, dueDate.Format("January 2, 2006"), float64(fineCents)/100)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Overdue Book</h2>
				<p>Hello %s,</p>
				<p>The book <strong>%s</strong> was due on <strong>%s</strong> and has not been returned.</p>
				<p>Your current fine is <strong>$%.2f</strong> and grows daily until the book comes back.</p>
				<p>Please return it at your earliest convenience.</p>
				<p>The Library Team</p>
			</body>
		</html>
	`, toName, bookName, dueDate.Format("January 2, 2006"), float64(fineCents)/100)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)
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
