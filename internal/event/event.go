// Package event publishes domain events after their transaction commits. Publishing is
// best-effort: a failure is logged and counted, never returned to the caller.
package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"time"

	"venuebook/config"
	"venuebook/infras/kafka"
	"venuebook/infras/metrics"
	"venuebook/infras/otel"
	"venuebook/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	TypeBookingCreated      = "booking.created"
	TypeAvailabilityUpdated = "venue.availability_updated"

	headerEventType = "event-type"
	publishTimeout  = 5 * time.Second
)

type BookingCreated struct {
	BookingID     string    `json:"bookingId"`
	VenueID       string    `json:"venueId"`
	BookingDate   string    `json:"bookingDate"`
	CustomerEmail string    `json:"customerEmail"`
	CreatedAt     time.Time `json:"createdAt"`
}

type AvailabilityUpdated struct {
	VenueID      string    `json:"venueId"`
	BlockDates   []string  `json:"blockDates"`
	UnblockDates []string  `json:"unblockDates"`
	Reason       string    `json:"reason"`
	Actor        string    `json:"actor"`
	OccurredAt   time.Time `json:"occurredAt"`
}

type Publisher interface {
	BookingCreated(ctx context.Context, evt BookingCreated)
	AvailabilityUpdated(ctx context.Context, evt AvailabilityUpdated)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (p *publisherImpl) BookingCreated(ctx context.Context, evt BookingCreated) {
	p.publish(ctx, p.cfg.Kafka.Topics.Booking, TypeBookingCreated, evt.VenueID, evt)
}

func (p *publisherImpl) AvailabilityUpdated(ctx context.Context, evt AvailabilityUpdated) {
	p.publish(ctx, p.cfg.Kafka.Topics.Availability, TypeAvailabilityUpdated, evt.VenueID, evt)
}

// publish keys messages by venue so events of one venue stay ordered within a partition.
func (p *publisherImpl) publish(ctx context.Context, topic, eventType, key string, payload any) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+"."+eventType)
	defer scope.End()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	err := p.client.SendMessages(ctx, topic, kafka.Message{
		Key:     key,
		Value:   payload,
		Headers: map[string]string{headerEventType: eventType},
	})
	if err != nil {
		scope.TraceError(err)
		metrics.EventPublishFailures.WithLabelValues(topic).Inc()
		log.Error().Err(err).Str("topic", topic).Str("event", eventType).Str("key", key).Msg("failed to publish event")

		return
	}

	scope.AddEvent(eventType + " published")
}
