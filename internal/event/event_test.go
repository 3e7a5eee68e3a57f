package event_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"venuebook/config"
	"venuebook/infras/kafka"
	kafkaMocks "venuebook/infras/kafka/mocks"
	"venuebook/infras/otel/mocks"
	"venuebook/internal/event"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Kafka.Topics.Booking = "venuebook.booking"
	cfg.Kafka.Topics.Availability = "venuebook.availability"

	return cfg
}

func TestPublisher_BookingCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)
	publisher := event.New(client, newConfig(), mocks.NewOtel())

	evt := event.BookingCreated{BookingID: "b1", VenueID: "v1", BookingDate: "2026-12-01", CreatedAt: time.Now()}

	client.EXPECT().
		SendMessages(gomock.Any(), "venuebook.booking", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			assert.Len(t, messages, 1)
			assert.Equal(t, "v1", messages[0].Key)
			assert.Equal(t, evt, messages[0].Value)
			assert.Equal(t, event.TypeBookingCreated, messages[0].Headers["event-type"])

			return nil
		})

	publisher.BookingCreated(context.Background(), evt)
}

func TestPublisher_FailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)
	publisher := event.New(client, newConfig(), mocks.NewOtel())

	client.EXPECT().
		SendMessages(gomock.Any(), "venuebook.availability", gomock.Any()).
		Return(errors.New("broker down"))

	assert.NotPanics(t, func() {
		publisher.AvailabilityUpdated(context.Background(), event.AvailabilityUpdated{VenueID: "v1"})
	})
}
