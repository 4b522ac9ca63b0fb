package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TypeStockChanged             = "StockChanged"
	TypeFulfillmentCreated       = "FulfillmentCreated"
	TypeFulfillmentStatusChanged = "FulfillmentStatusChanged"
	TypeTransferCreated          = "TransferCreated"
	TypeTransferCompleted        = "TransferCompleted"
	TypeTransferCanceled         = "TransferCanceled"
)

// Event is the envelope written to the inventory events topic.
type Event struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

func New(eventType string, payload interface{}, at time.Time) Event {
	return Event{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Payload:   payload,
		Timestamp: at,
	}
}

type StockChangedPayload struct {
	VariantID      string          `json:"variant_id"`
	WarehouseID    string          `json:"warehouse_id"`
	MovementID     string          `json:"movement_id"`
	MovementType   string          `json:"movement_type"`
	QuantityChange decimal.Decimal `json:"quantity_change"`
	OnHand         decimal.Decimal `json:"on_hand"`
	Available      decimal.Decimal `json:"available"`
	LowStock       bool            `json:"low_stock"`
	ReferenceType  string          `json:"reference_type"`
	ReferenceID    string          `json:"reference_id"`
}

type FulfillmentPayload struct {
	FulfillmentID string `json:"fulfillment_id"`
	OrderID       string `json:"order_id"`
	WarehouseID   string `json:"warehouse_id"`
	Status        string `json:"status"`
	PrevStatus    string `json:"prev_status,omitempty"`
}

type TransferPayload struct {
	TransferID      string `json:"transfer_id"`
	FromWarehouseID string `json:"from_warehouse_id"`
	ToWarehouseID   string `json:"to_warehouse_id"`
	Status          string `json:"status"`
}

// Publisher delivers events after the state they describe has committed.
type Publisher interface {
	Publish(ctx context.Context, key string, events ...Event) error
}

type nopPublisher struct{}

func NewNopPublisher() Publisher { return nopPublisher{} }

func (nopPublisher) Publish(context.Context, string, ...Event) error { return nil }
