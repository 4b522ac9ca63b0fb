package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureWriter struct {
	msgs []kafka.Message
}

func (w *captureWriter) WriteMessage(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &captureWriter{}
	p := NewKafkaPublisher(w)

	evt := New(TypeStockChanged, StockChangedPayload{
		VariantID:      "v1",
		WarehouseID:    "w1",
		QuantityChange: decimal.NewFromInt(-3),
		OnHand:         decimal.NewFromInt(7),
	}, testTime)

	require.NoError(t, p.Publish(context.Background(), "v1:w1", evt))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "v1:w1", string(msg.Key))

	var got struct {
		EventType string `json:"event_type"`
		Payload   struct {
			QuantityChange string `json:"quantity_change"`
			OnHand         string `json:"on_hand"`
		} `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, TypeStockChanged, got.EventType)
	assert.Equal(t, "-3", got.Payload.QuantityChange)
	assert.Equal(t, "7", got.Payload.OnHand)

	var typeHeader string
	for _, h := range msg.Headers {
		if h.Key == "event_type" {
			typeHeader = string(h.Value)
		}
	}
	assert.Equal(t, TypeStockChanged, typeHeader)
}

func TestKafkaPublisher_NoEvents(t *testing.T) {
	w := &captureWriter{}
	require.NoError(t, NewKafkaPublisher(w).Publish(context.Background(), "k"))
	assert.Empty(t, w.msgs)
}
