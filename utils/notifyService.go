package utils

import (
	"fmt"
	"log"
	"vesta/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Notification severities
const (
	SeverityInfo        = "info"
	SeverityDestructive = "destructive"
)

// Notify sends a fire-and-forget notification email. Errors are logged and
// never surfaced; no caller consumes a return value.
func Notify(toEmail, title, description, severity string) {
	if config.AppConfig.SendgridApiKey == "" || toEmail == "" {
		log.Printf("[NOTIFY] (%s) %s: %s", severity, title, description)
		return
	}

	go func() {
		from := mail.NewEmail("Vesta Capital", config.AppConfig.EmailSender)
		to := mail.NewEmail("", toEmail)
		subject := title
		if severity == SeverityDestructive {
			subject = "[Action Failed] " + title
		}

		html := fmt.Sprintf(notifyTemplate, title, description)
		message := mail.NewSingleEmail(from, subject, to, description, html)

		client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
		resp, err := client.Send(message)
		if err != nil {
			log.Printf("[NOTIFY] Failed to send %q to %s: %v", title, toEmail, err)
			return
		}
		if resp.StatusCode >= 400 {
			log.Printf("[NOTIFY] Sendgrid rejected %q: %d %s", title, resp.StatusCode, resp.Body)
		}
	}()
}

const notifyTemplate = `
<html>
	<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
		<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
			<h2 style="color: #00004D;">%s</h2>
			<p style="color: #333333; line-height: 1.6;">%s</p>
			<p style="font-size: 12px; color: #666666;">Vesta Capital</p>
		</div>
	</body>
</html>`
