package kafka_test

import (
	"context"
	"testing"

	"venuebook/config"
	"venuebook/infras/kafka"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{
		Key:     "venue-1",
		Value:   map[string]string{"bookingDate": "2026-12-01"},
		Headers: map[string]string{"event": "booking.created"},
	}

	out, err := msg.ToKafkaMessage("venuebook.booking")

	require.NoError(t, err)
	assert.Equal(t, "venuebook.booking", out.Topic)
	assert.Equal(t, []byte("venue-1"), out.Key)
	assert.JSONEq(t, `{"bookingDate":"2026-12-01"}`, string(out.Value))
	require.Len(t, out.Headers, 1)
	assert.Equal(t, "event", out.Headers[0].Key)
}

func TestMessage_ToKafkaMessage_Unmarshalable(t *testing.T) {
	msg := kafka.Message{Value: make(chan int)}

	_, err := msg.ToKafkaMessage("topic")

	assert.Error(t, err)
}

func TestNew_Disabled(t *testing.T) {
	client := kafka.New(&config.Config{})

	assert.NoError(t, client.SendMessages(context.Background(), "topic", kafka.Message{Key: "k", Value: 1}))
	assert.NoError(t, client.Close())
}
