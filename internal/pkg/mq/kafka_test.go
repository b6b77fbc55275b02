package mq

import (
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

func TestKafkaHeaderCarrier(t *testing.T) {
	carrier := KafkaHeaderCarrier{}

	require.Empty(t, carrier.Get("traceparent"))

	carrier.Set("traceparent", "00-abc-def-01")
	require.Equal(t, "00-abc-def-01", carrier.Get("traceparent"))

	// Set on an existing key replaces, not appends.
	carrier.Set("traceparent", "00-abc-def-02")
	require.Equal(t, "00-abc-def-02", carrier.Get("traceparent"))
	require.Equal(t, []string{"traceparent"}, carrier.Keys())

	carrier.Set("baggage", "k=v")
	require.ElementsMatch(t, []string{"traceparent", "baggage"}, carrier.Keys())
}

func TestKafkaHeaderCarrierFromExistingHeaders(t *testing.T) {
	headers := []kafka.Header{{Key: "traceparent", Value: []byte("00-abc-def-01")}}
	carrier := KafkaHeaderCarrier(headers)
	require.Equal(t, "00-abc-def-01", carrier.Get("traceparent"))
}
