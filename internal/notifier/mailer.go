package notifier

import (
	"context"
	"fmt"
	"net/smtp"

	"flight-booking/pkg/queue"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

// Mailer sends booking confirmations over SMTP. Without credentials it
// is a no-op, so bookings work on installs that never configured mail.
type Mailer struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func NewMailer(config utils.EmailConfig, log *zap.Logger) *Mailer {
	return &Mailer{
		config: config,
		log:    log.With(zap.String("component", "mailer")),
	}
}

// Enabled reports whether SMTP credentials are configured.
func (m *Mailer) Enabled() bool {
	return m.config.Host != "" && m.config.User != "" && m.config.Password != ""
}

func (m *Mailer) Send(ctx context.Context, event queue.BookingEvent) error {
	if !m.Enabled() {
		m.log.Debug("Email disabled, skipping confirmation",
			zap.String("booking_id", event.BookingID))
		return nil
	}

	from := m.config.From
	if from == "" {
		from = m.config.User
	}

	body := fmt.Sprintf(
		"Hello %s,\r\n\r\nYour flight from %s to %s is confirmed.\r\nTotal Price: $%.2f\r\n\r\nHave a safe trip!\r\n",
		event.PassengerName, event.Origin, event.Destination, event.Price,
	)
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Flight Booking Confirmation\r\n\r\n%s",
		from, event.Email, body,
	)

	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)
	auth := smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, from, []string{event.Email}, []byte(msg))
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send mail: %w", err)
		}
	case <-ctx.Done():
		return fmt.Errorf("send mail: %w", ctx.Err())
	}

	m.log.Info("Confirmation email sent",
		zap.String("booking_id", event.BookingID),
		zap.String("email", event.Email),
	)
	return nil
}
