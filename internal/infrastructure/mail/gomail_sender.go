// Package mail envía notificaciones por SMTP autenticado (STARTTLS).
package mail

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/talentoplus/talento-api/internal/application/ports"
	"github.com/talentoplus/talento-api/pkg/config"
)

var _ ports.Mailer = (*SMTPSender)(nil)

// SMTPSender implementa Mailer sobre gomail. Cada envío abre y cierra su
// propia sesión SMTP; un solo intento, sin reintentos ni cola.
type SMTPSender struct {
	cfg config.SMTPConfig
}

// NewSMTPSender construye el adaptador de correo.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Send envía un correo HTML al destinatario indicado.
func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	if s.cfg.Host == "" {
		return fmt.Errorf("mail: SMTP_HOST no configurado")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.Sender())
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("mail: enviar a %s: %w", to, err)
	}
	return nil
}
