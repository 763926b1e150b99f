package notifier

import (
	"context"
	"time"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/queue"

	"go.uber.org/zap"
)

// Notifier dispatches a booking confirmation. Implementations must
// never block the caller and never surface failures: the booking is
// already committed by the time this runs.
type Notifier interface {
	NotifyBooking(booking *entity.Booking, flight *entity.Flight)
}

const dispatchTimeout = 10 * time.Second

func buildEvent(booking *entity.Booking, flight *entity.Flight) queue.BookingEvent {
	return queue.BookingEvent{
		BookingID:     booking.ID.String(),
		FlightID:      booking.FlightID.String(),
		PassengerName: booking.PassengerName,
		Email:         booking.Email,
		Origin:        flight.Origin,
		Destination:   flight.Destination,
		Price:         flight.Price,
		BookedAt:      booking.BookingDate(),
	}
}

// QueueNotifier publishes booking events to Kafka; the consumer side
// turns them into emails.
type QueueNotifier struct {
	producer *queue.Producer
	topic    string
	log      *zap.Logger
}

func NewQueueNotifier(producer *queue.Producer, topic string, log *zap.Logger) *QueueNotifier {
	return &QueueNotifier{
		producer: producer,
		topic:    topic,
		log:      log.With(zap.String("notifier", "queue")),
	}
}

func (n *QueueNotifier) NotifyBooking(booking *entity.Booking, flight *entity.Flight) {
	if flight == nil {
		n.log.Warn("Skipping notification, flight details unavailable",
			zap.String("booking_id", booking.ID.String()))
		return
	}

	event := buildEvent(booking, flight)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()

		if err := n.producer.Publish(ctx, n.topic, event.BookingID, event); err != nil {
			n.log.Warn("Failed to publish booking notification",
				zap.Error(err),
				zap.String("booking_id", event.BookingID),
			)
		}
	}()
}

// DirectNotifier emails in-process on a background goroutine. Used when
// no message broker is configured.
type DirectNotifier struct {
	mailer *Mailer
	log    *zap.Logger
}

func NewDirectNotifier(mailer *Mailer, log *zap.Logger) *DirectNotifier {
	return &DirectNotifier{
		mailer: mailer,
		log:    log.With(zap.String("notifier", "direct")),
	}
}

func (n *DirectNotifier) NotifyBooking(booking *entity.Booking, flight *entity.Flight) {
	if flight == nil {
		n.log.Warn("Skipping notification, flight details unavailable",
			zap.String("booking_id", booking.ID.String()))
		return
	}

	event := buildEvent(booking, flight)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()

		if err := n.mailer.Send(ctx, event); err != nil {
			n.log.Warn("Failed to send booking confirmation",
				zap.Error(err),
				zap.String("booking_id", event.BookingID),
			)
		}
	}()
}
