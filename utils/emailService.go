package utils

import (
	"fmt"
	"log"

	"learnity/dto"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService sends transactional mail through SendGrid. It satisfies both
// services.ContactEmailSender and services.VideoRequestNotifier.
type EmailService struct {
	client     *sendgrid.Client
	sender     string
	adminEmail string
}

func NewEmailService(apiKey, sender, adminEmail string) *EmailService {
	return &EmailService{
		client:     sendgrid.NewSendClient(apiKey),
		sender:     sender,
		adminEmail: adminEmail,
	}
}

// SendEmail delivers one HTML email
func (e *EmailService) SendEmail(to, toName, subject, htmlBody string) error {
	from := mail.NewEmail("Learnity", e.sender)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, "", htmlBody)

	resp, err := e.client.Send(message)
	if err != nil {
		log.Println("Error sending email:", err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Email rejected, status %d: %s", resp.StatusCode, resp.Body)
		return fmt.Errorf("email rejected with status %d", resp.StatusCode)
	}
	return nil
}

// HTML wrapper for the shared mail layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B2A4A; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B2A4A; line-height: 1.6; }
			.content h2 { color: #1B2A4A; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #4A90D9; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>LEARNITY</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Learnity. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendContactUsEmail forwards a contact-us message to the site mailbox.
// Delivery is synchronous so the endpoint can report a real outcome.
func (e *EmailService) SendContactUsEmail(msg dto.ContactMessage) error {
	subject := "Contact Us: " + msg.Subject
	body := fmt.Sprintf(`
		<p><strong>From:</strong> %s &lt;%s&gt;</p>
		<div class="info-box">
			<p>%s</p>
		</div>
	`, msg.Name, msg.Email, msg.Message)

	return e.SendEmail(e.adminEmail, "Learnity Admin", subject, getEmailTemplate("New Contact Message", body))
}

// SendVideoRequestAck acknowledges a stored video request to its author
func (e *EmailService) SendVideoRequestAck(email, name, topic string) {
	subject := "Video Request Received: " + topic
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We have received your video request on <strong>%s</strong>.</p>
		<p>Our team reviews new requests regularly. You will hear from us once the status changes.</p>
	`, name, topic)

	go e.SendEmail(email, name, subject, getEmailTemplate("Request Received", body))
}

// SendPendingVideoRequestDigest mails the admin a digest of stale pending requests
func (e *EmailService) SendPendingVideoRequestDigest(requests []dto.VideoRequestModel) error {
	if len(requests) == 0 {
		return nil
	}

	rows := ""
	for _, r := range requests {
		rows += fmt.Sprintf("<li><strong>#%d</strong> %s — requested by %s</li>", r.VideoRequestID, r.Topic, r.UserName)
	}
	body := fmt.Sprintf(`
		<p>The following video requests have been pending for more than 48 hours:</p>
		<div class="info-box"><ul>%s</ul></div>
		<p>Please review them in the admin dashboard.</p>
	`, rows)

	return e.SendEmail(e.adminEmail, "Learnity Admin", "Pending video requests need attention", getEmailTemplate("Pending Video Requests", body))
}
