package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-inventory-service/internal/auth"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/fekuna/omnipos-inventory-service/pkg/logger"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
)

const (
	EventVariantStocked          = "VariantStocked"
	EventVariantBackorderChanged = "VariantBackorderChanged"
)

// MessageReader is satisfied by broker.KafkaConsumer.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// CatalogListener consumes catalog events and keeps stock records in step
// with the variants the catalog creates.
type CatalogListener struct {
	consumer MessageReader
	uc       inventory.UseCase
	logger   logger.ZapLogger
	backoff  time.Duration
}

func NewCatalogListener(consumer MessageReader, uc inventory.UseCase, logger logger.ZapLogger) *CatalogListener {
	return &CatalogListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
		backoff:  time.Second,
	}
}

func (l *CatalogListener) Start(ctx context.Context) {
	l.logger.Info("Starting catalog Kafka listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping catalog Kafka listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(l.backoff)
				continue
			}
			if err := l.processMessage(ctx, msg); err != nil {
				l.logger.Error("Failed to process catalog event",
					zap.Int64("offset", msg.Offset),
					zap.Error(err),
				)
			}
		}
	}
}

type CatalogEvent struct {
	EventID   string          `json:"event_id"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

type VariantStockedPayload struct {
	VariantID      string                  `json:"variant_id"`
	SafetyStock    decimal.Decimal         `json:"safety_stock"`
	ReorderPoint   decimal.Decimal         `json:"reorder_point"`
	AllowBackorder bool                    `json:"allow_backorder"`
	Stocks         []WarehouseStockPayload `json:"stocks"`
}

type WarehouseStockPayload struct {
	WarehouseID string          `json:"warehouse_id"`
	Quantity    decimal.Decimal `json:"quantity"`
}

type VariantBackorderPayload struct {
	VariantID      string `json:"variant_id"`
	AllowBackorder bool   `json:"allow_backorder"`
}

func (l *CatalogListener) processMessage(ctx context.Context, msg kafka.Message) error {
	ctx = otel.GetTextMapPropagator().Extract(ctx, headerCarrier(msg.Headers))

	var event CatalogEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return errors.Wrap(err, "unmarshal catalog event")
	}

	switch event.EventType {
	case EventVariantStocked:
		var p VariantStockedPayload
		if err := json.Unmarshal(event.Payload, &p); err != nil {
			return errors.Wrapf(err, "unmarshal %s payload", event.EventType)
		}
		return l.variantStocked(ctx, event.EventID, &p)
	case EventVariantBackorderChanged:
		var p VariantBackorderPayload
		if err := json.Unmarshal(event.Payload, &p); err != nil {
			return errors.Wrapf(err, "unmarshal %s payload", event.EventType)
		}
		n, err := l.uc.SetBackorder(ctx, &dto.SetBackorderInput{VariantID: p.VariantID, AllowBackorder: p.AllowBackorder})
		if err != nil {
			return errors.Wrapf(err, "set backorder for variant %s", p.VariantID)
		}
		l.logger.Info("Backorder flag synced",
			zap.String("variant_id", p.VariantID),
			zap.Bool("allow_backorder", p.AllowBackorder),
			zap.Int64("records", n),
		)
		return nil
	}
	return nil
}

// variantStocked initialises one stock record per warehouse. The event id is
// the movement reference, so a redelivered event changes nothing.
func (l *CatalogListener) variantStocked(ctx context.Context, eventID string, p *VariantStockedPayload) error {
	l.logger.Info("Processing VariantStocked event",
		zap.String("event_id", eventID),
		zap.String("variant_id", p.VariantID),
	)

	var failed error
	for _, s := range p.Stocks {
		_, err := l.uc.InitializeStock(ctx, &dto.InitializeStockInput{
			VariantID:       p.VariantID,
			WarehouseID:     s.WarehouseID,
			InitialQuantity: s.Quantity,
			SafetyStock:     p.SafetyStock,
			ReorderPoint:    p.ReorderPoint,
			AllowBackorder:  p.AllowBackorder,
			ReferenceType:   model.ReferenceVariantStock,
			ReferenceID:     eventID,
			Actor:           auth.SystemActor,
		})
		if err != nil {
			l.logger.Error("Failed to initialize stock",
				zap.String("variant_id", p.VariantID),
				zap.String("warehouse_id", s.WarehouseID),
				zap.Error(err),
			)
			if failed == nil {
				failed = errors.Wrapf(err, "initialize %s in %s", p.VariantID, s.WarehouseID)
			}
		}
	}
	return failed
}

func headerCarrier(headers []kafka.Header) propagation.MapCarrier {
	carrier := propagation.MapCarrier{}
	for _, h := range headers {
		carrier[h.Key] = string(h.Value)
	}
	return carrier
}
