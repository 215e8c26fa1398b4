package utils

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strings"

	"storefront/config"
	"storefront/logger"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// ContactMessage is a message left through the public contact form.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Mailer delivers contact messages to the support mailbox.
type Mailer interface {
	SendContact(ctx context.Context, msg ContactMessage) error
}

// NewMailer returns a SendGrid mailer, or a log-only mailer when no API key is configured.
func NewMailer(cfg *config.Config) Mailer {
	if cfg.SendgridAPIKey == "" {
		return logMailer{}
	}
	return &sendgridMailer{
		key:        cfg.SendgridAPIKey,
		host:       "https://api.sendgrid.com",
		from:       sgmail.NewEmail(cfg.AppName, cfg.SupportEmail),
		to:         sgmail.NewEmail(cfg.SupportName, cfg.SupportEmail),
		appName:    cfg.AppName,
		subjPrefix: "[" + cfg.AppName + "] ",
	}
}

type sendgridMailer struct {
	key        string
	host       string
	from       *sgmail.Email
	to         *sgmail.Email
	appName    string
	subjPrefix string
}

func (m *sendgridMailer) SendContact(ctx context.Context, msg ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := sendgrid.GetRequest(m.key, "/v3/mail/send", m.host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m.prepare(msg))

	res, err := sendgrid.API(req)
	if err != nil {
		return fmt.Errorf("send contact message: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("send contact message: sendgrid status %d", res.StatusCode)
	}
	logger.Log.Info("[CONTACT] message delivered", "status", res.StatusCode)
	return nil
}

func (m *sendgridMailer) prepare(msg ContactMessage) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = m.subjPrefix + msg.Subject
	p.AddTos(m.to)

	v3 := sgmail.NewV3Mail()
	v3.SetFrom(m.from)
	v3.SetReplyTo(sgmail.NewEmail(msg.Name, msg.Email))
	v3.AddPersonalizations(p)
	v3.AddContent(
		sgmail.NewContent("text/plain", contactText(msg)),
		sgmail.NewContent("text/html", getEmailTemplate(m.appName, "New contact message", contactHTML(msg))),
	)
	return v3
}

type logMailer struct{}

func (logMailer) SendContact(_ context.Context, msg ContactMessage) error {
	logger.Log.Warn("[CONTACT] sendgrid not configured, message not delivered", "from", msg.Email, "subject", msg.Subject)
	return nil
}

func contactText(msg ContactMessage) string {
	return fmt.Sprintf("From: %s <%s>\nSubject: %s\n\n%s\n", msg.Name, msg.Email, msg.Subject, msg.Message)
}

func contactHTML(msg ContactMessage) string {
	body := html.EscapeString(msg.Message)
	body = strings.ReplaceAll(body, "\n", "<br>")
	return fmt.Sprintf(`
		<p><strong>From:</strong> %s &lt;%s&gt;</p>
		<p><strong>Subject:</strong> %s</p>
		<div class="info-box">%s</div>
	`, html.EscapeString(msg.Name), html.EscapeString(msg.Email), html.EscapeString(msg.Subject), body)
}

func getEmailTemplate(appName, title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1E293B; padding: 24px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 22px; }
			.content { padding: 32px 28px; color: #1E293B; line-height: 1.6; }
			.info-box { background: #EEF2FF; padding: 15px; border-radius: 4px; border-left: 4px solid #6366F1; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
		</div>
	</body>
	</html>
	`, html.EscapeString(appName), html.EscapeString(title), bodyContent)
}
