package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/domodwyer/mailyak/v3"

	"soffit-quote/domain"
)

// SMTPConfig holds outgoing mail settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	Bcc      string // business inbox copied on every estimate
}

// EmailNotifier mails the estimate summary through SMTP.
type EmailNotifier struct {
	cfg  SMTPConfig
	auth smtp.Auth
}

func NewEmailNotifier(cfg SMTPConfig) *EmailNotifier {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &EmailNotifier{cfg: cfg, auth: auth}
}

func (n *EmailNotifier) NotifyEstimate(ctx context.Context, sub domain.Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subject, body, err := RenderEstimateEmail(sub)
	if err != nil {
		return err
	}

	mail := mailyak.New(fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port), n.auth)
	mail.To(sub.Email)
	if n.cfg.Bcc != "" {
		mail.Bcc(n.cfg.Bcc)
	}
	mail.From(n.cfg.From)
	if n.cfg.FromName != "" {
		mail.FromName(n.cfg.FromName)
	}
	mail.Subject(subject)
	mail.HTML().Set(body)

	if err := mail.Send(); err != nil {
		return fmt.Errorf("send estimate %s: %w", sub.ID, err)
	}
	return nil
}

var estimateTmpl = template.Must(template.New("estimate").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1>Your Estimate is Ready!</h1>
  <h2>${{printf "%.2f" .TotalPrice}}</h2>
  <p>Estimated Total Cost</p>
  <table>
    <tr><td>Linear Feet:</td><td>{{.LinearFeet}} ft</td></tr>
    <tr><td>Overhang:</td><td>{{.Overhang}}</td></tr>
    <tr><td>Installation Type:</td><td>{{.InstallationType}}</td></tr>
    <tr><td>Material:</td><td>{{.MaterialType}}</td></tr>
    <tr><td>Service:</td><td>{{.ServiceType}}</td></tr>
    <tr><td>Location:</td><td>{{.ZipCode}}</td></tr>
  </table>
  {{if .Notes}}<h3>Additional Notes</h3><div>{{.Notes}}</div>{{end}}
  <p>This estimate is valid for 30 days. Final pricing may vary after our free on-site inspection.</p>
</div>`))

// RenderEstimateEmail builds the subject and HTML body for a submission.
func RenderEstimateEmail(sub domain.Submission) (subject, body string, err error) {
	var buf bytes.Buffer
	if err := estimateTmpl.Execute(&buf, sub); err != nil {
		return "", "", fmt.Errorf("render estimate email: %w", err)
	}
	subject = fmt.Sprintf("Your Soffit & Fascia Estimate - $%.2f", sub.TotalPrice)
	return subject, buf.String(), nil
}
