package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"gosalon/internal/pkg/logger"
)

// Email é a mensagem a ser entregue.
type Email struct {
	To      string
	Subject string
	Body    string
}

// Mailer entrega um e-mail de forma síncrona.
type Mailer interface {
	Send(ctx context.Context, msg Email) error
}

// SMTPConfig são as credenciais do servidor SMTP.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// SMTPMailer envia e-mails via gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	message := gomail.NewMessage()
	message.SetHeader("From", m.from)
	message.SetHeader("To", msg.To)
	message.SetHeader("Subject", msg.Subject)
	message.SetBody("text/plain", msg.Body)

	if err := m.dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("falha ao enviar e-mail para %s: %w", msg.To, err)
	}
	return nil
}

// LogMailer apenas registra a mensagem. Usado quando o SMTP não está configurado.
type LogMailer struct {
	logger logger.Logger
}

func NewLogMailer(log logger.Logger) *LogMailer {
	return &LogMailer{logger: log}
}

func (m *LogMailer) Send(_ context.Context, msg Email) error {
	m.logger.Info("[MOCK EMAIL] Mensagem não enviada (SMTP desabilitado).", map[string]interface{}{
		"to":      msg.To,
		"subject": msg.Subject,
	})
	return nil
}
