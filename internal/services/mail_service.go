package services

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/config"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/db_models"
)

type IMailService interface {
	Enabled() bool
	SendBookingStatusMail(ctx context.Context, booking *db_models.Booking) error
}

// mailSender delivers an already rendered message.
type mailSender interface {
	deliver(ctx context.Context, to, subject, htmlBody, textBody string) error
}

type mailService struct {
	sender    mailSender
	appName   string
	portalURL string
	currency  string
	htmlTpl   *template.Template
	textTpl   *texttemplate.Template
}

// NewMailService picks the provider from config. Without one, mail is
// disabled and every send is a no-op.
func NewMailService(cfg *config.Config, log *zap.Logger) (IMailService, error) {
	m := cfg.Mail
	var sender mailSender
	switch m.Provider {
	case "smtp":
		sender = &smtpSender{cfg: m}
	case "resend":
		sender = &resendSender{client: resend.NewClient(m.ResendAPIKey), from: fromHeader(m.FromName, m.From)}
	case "":
		log.Info("mail provider not configured, notifications disabled")
		return noopMailService{}, nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", m.Provider)
	}

	log.Info("mail notifications enabled", zap.String("provider", m.Provider))
	return newMailService(sender, cfg.App.Name, m.PortalURL, cfg.App.Currency), nil
}

func newMailService(sender mailSender, appName, portalURL, currency string) *mailService {
	return &mailService{
		sender:    sender,
		appName:   appName,
		portalURL: strings.TrimRight(portalURL, "/"),
		currency:  currency,
		htmlTpl:   template.Must(template.New("html").Parse(baseHTMLTemplate)),
		textTpl:   texttemplate.Must(texttemplate.New("text").Parse(plainTextTemplate)),
	}
}

func (s *mailService) Enabled() bool { return true }

func (s *mailService) SendBookingStatusMail(ctx context.Context, b *db_models.Booking) error {
	if b.ContactEmail == "" {
		return nil
	}

	title := "Package"
	if b.Package != nil {
		title = b.Package.Title
	}
	name := b.ContactName
	if name == "" {
		name = "traveller"
	}

	var subject, intro string
	switch b.Status {
	case db_models.BookingConfirmed:
		subject = fmt.Sprintf("Your booking for %s is confirmed", title)
		intro = fmt.Sprintf("Hi %s, your trip \"%s\" on %s for %d traveller(s) is confirmed. Total: %s.",
			name, title, b.TravelDate.Format("02 Jan 2006"), b.Travelers, formatMinor(b.TotalAmount, b.Currency))
	case db_models.BookingCancelled:
		subject = fmt.Sprintf("Your booking for %s was cancelled", title)
		intro = fmt.Sprintf("Hi %s, your booking for \"%s\" on %s has been cancelled. Reply to this email if this is unexpected.",
			name, title, b.TravelDate.Format("02 Jan 2006"))
	default:
		return nil
	}

	data := EmailData{
		Title:   subject,
		Intro:   intro,
		AppName: s.appName,
		Year:    time.Now().Year(),
	}
	if s.portalURL != "" {
		data.ButtonURL = s.portalURL + "/bookings/" + b.ID.String()
		data.ButtonTxt = "View booking"
	}

	html, text, err := s.renderEmail(data)
	if err != nil {
		return err
	}
	return s.sender.deliver(ctx, b.ContactEmail, subject, html, text)
}

// ------------------- Rendering -------------------

type EmailData struct {
	Title     string
	Intro     string
	ButtonURL string
	ButtonTxt string
	AppName   string
	Year      int
}

const baseHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>{{.Title}}</title>
</head>
<body style="margin:0;padding:0;background:#f4f1ea;font-family:Helvetica,Arial,sans-serif;color:#1f2933">
  <div style="max-width:600px;margin:0 auto;padding:32px 16px">
    <div style="background:#ffffff;border-radius:12px;overflow:hidden">
      <div style="padding:24px 28px;background:#0f766e;color:#ffffff;font-weight:700;font-size:20px">{{.AppName}}</div>
      <div style="padding:28px">
        <h1 style="margin:0 0 16px;font-size:22px">{{.Title}}</h1>
        <p style="margin:0 0 20px;line-height:1.6">{{.Intro}}</p>
        {{if .ButtonURL}}
        <p><a href="{{.ButtonURL}}" style="display:inline-block;padding:12px 24px;background:#0f766e;color:#ffffff;text-decoration:none;border-radius:8px">{{.ButtonTxt}}</a></p>
        {{end}}
      </div>
      <div style="padding:16px 28px;font-size:12px;color:#6b7280;border-top:1px solid #e5e7eb">&copy; {{.Year}} {{.AppName}}</div>
    </div>
  </div>
</body>
</html>`

const plainTextTemplate = `{{.Title}}

{{.Intro}}
{{if .ButtonURL}}
{{.ButtonTxt}}: {{.ButtonURL}}
{{end}}
{{.AppName}} (c) {{.Year}}
`

func (s *mailService) renderEmail(data EmailData) (string, string, error) {
	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

func formatMinor(amount int64, currency string) string {
	return fmt.Sprintf("%s %d.%02d", currency, amount/100, amount%100)
}

func fromHeader(name, addr string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return addr
	}
	return fmt.Sprintf("%s <%s>", mime.BEncoding.Encode("UTF-8", name), addr)
}

// ------------------- Resend -------------------

type resendSender struct {
	client *resend.Client
	from   string
}

func (r *resendSender) deliver(ctx context.Context, to, subject, htmlBody, textBody string) error {
	_, err := r.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    r.from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlBody,
		Text:    textBody,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// ------------------- SMTP -------------------

type smtpSender struct {
	cfg config.MailConfig
}

func (s *smtpSender) deliver(ctx context.Context, to, subject, htmlBody, textBody string) error {
	msg := buildMIMEMessage(fromHeader(s.cfg.FromName, s.cfg.From), to, subject, htmlBody, textBody)

	addr := net.JoinHostPort(s.cfg.SMTPHost, fmt.Sprint(s.cfg.SMTPPort))
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	tlsCfg := &tls.Config{ServerName: s.cfg.SMTPHost, MinVersion: tls.VersionTLS12}

	var conn net.Conn
	var err error
	if s.cfg.SMTPUseSSL {
		// SMTPS, implicit TLS (usually 465)
		conn, err = tls.DialWithDialer(dialer, "tcp", addr, tlsCfg)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return err
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, s.cfg.SMTPHost)
	if err != nil {
		return err
	}
	defer c.Quit()

	if !s.cfg.SMTPUseSSL {
		ok, _ := c.Extension("STARTTLS")
		if !ok {
			return fmt.Errorf("smtp server %s does not support STARTTLS", s.cfg.SMTPHost)
		}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	}

	if s.cfg.SMTPUsername != "" {
		if err = c.Auth(smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)); err != nil {
			return err
		}
	}
	if err = c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

func buildMIMEMessage(from, to, subject, htmlBody, textBody string) []byte {
	boundary := fmt.Sprintf("alt_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = fmt.Fprintf(&msg, format, a...) }

	write("From: %s\r\n", from)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject))
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)
	return msg.Bytes()
}

// ------------------- Disabled -------------------

type noopMailService struct{}

func (noopMailService) Enabled() bool { return false }

func (noopMailService) SendBookingStatusMail(context.Context, *db_models.Booking) error {
	return nil
}
