package notifier

import (
	"context"
	"encoding/json"

	"flight-booking/pkg/queue"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer drains the notifications topic and emails each event.
// Bad messages and failed sends are logged and skipped; the loop only
// stops when the context is canceled or the reader fails.
func RunConsumer(ctx context.Context, consumer *queue.Consumer, mailer *Mailer, log *zap.Logger) error {
	log = log.With(zap.String("component", "notification-consumer"))

	return consumer.Consume(ctx, func(ctx context.Context, msg kafkago.Message) error {
		var event queue.BookingEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Warn("Failed to decode booking event", zap.Error(err))
			return nil
		}

		if err := mailer.Send(ctx, event); err != nil {
			log.Warn("Failed to send confirmation email",
				zap.Error(err),
				zap.String("booking_id", event.BookingID),
			)
		}
		return nil
	})
}
