package events

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// MessageWriter is satisfied by broker.KafkaProducer.
type MessageWriter interface {
	WriteMessage(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, key string, evts ...Event) error {
	if len(evts) == 0 {
		return nil
	}

	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	headers := make([]kafka.Header, 0, len(carrier)+1)
	for k, v := range carrier {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	msgs := make([]kafka.Message, 0, len(evts))
	for _, evt := range evts {
		value, err := json.Marshal(evt)
		if err != nil {
			return errors.Wrapf(err, "marshal %s event", evt.EventType)
		}
		msgs = append(msgs, kafka.Message{
			Key:     []byte(key),
			Value:   value,
			Headers: append(headers, kafka.Header{Key: "event_type", Value: []byte(evt.EventType)}),
		})
	}

	return p.writer.WriteMessage(ctx, msgs...)
}
