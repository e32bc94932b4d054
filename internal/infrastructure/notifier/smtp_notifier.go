// Package notifier implementa el envío de alertas operativas por correo.
package notifier

import (
	"context"
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"

	"github.com/tu-usuario/logitrack/internal/application/transfer"
	"github.com/tu-usuario/logitrack/pkg/config"
	"github.com/tu-usuario/logitrack/pkg/logger"
)

var _ transfer.Notifier = (*SMTPNotifier)(nil)

// SMTPNotifier envía notificaciones por SMTP con adjunto opcional.
type SMTPNotifier struct {
	cfg config.SMTPConfig
	log *logger.Logger
}

// NewSMTPNotifier construye el notificador de correo.
func NewSMTPNotifier(cfg config.SMTPConfig, log *logger.Logger) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, log: log.Component("smtp")}
}

// Notify envía el mensaje. El contexto solo se consulta antes de marcar
// el envío; el dial SMTP usa los timeouts del cliente.
func (n *SMTPNotifier) Notify(ctx context.Context, msg transfer.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if msg.To == "" {
		return fmt.Errorf("notificación sin destinatario")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if len(msg.Attachment) > 0 {
		name := msg.AttachmentName
		if name == "" {
			name = "adjunto.pdf"
		}
		m.Attach(name, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(msg.Attachment)
			return err
		}))
	}

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.Username, n.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar correo: %w", err)
	}
	n.log.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("alerta enviada")
	return nil
}
