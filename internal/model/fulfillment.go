package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type FulfillmentStatus string

const (
	FulfillmentPending   FulfillmentStatus = "pending"
	FulfillmentShipped   FulfillmentStatus = "shipped"
	FulfillmentDelivered FulfillmentStatus = "delivered"
	FulfillmentReturned  FulfillmentStatus = "returned"
)

func (s FulfillmentStatus) Valid() bool {
	switch s {
	case FulfillmentPending, FulfillmentShipped, FulfillmentDelivered, FulfillmentReturned:
		return true
	}
	return false
}

// rank orders the forward path pending -> shipped -> delivered.
func (s FulfillmentStatus) rank() int {
	switch s {
	case FulfillmentPending:
		return 0
	case FulfillmentShipped:
		return 1
	case FulfillmentDelivered:
		return 2
	}
	return -1
}

// Precedes reports whether next is strictly further along the forward path than s.
func (s FulfillmentStatus) Precedes(next FulfillmentStatus) bool {
	return s.rank() >= 0 && next.rank() > s.rank()
}

type Fulfillment struct {
	BaseModel
	OrderID        string            `db:"order_id" json:"order_id"`
	WarehouseID    string            `db:"warehouse_id" json:"warehouse_id"`
	Status         FulfillmentStatus `db:"status" json:"status"`
	TrackingNumber *string           `db:"tracking_number" json:"tracking_number,omitempty"`
	Carrier        *string           `db:"carrier" json:"carrier,omitempty"`
	ShippedAt      *time.Time        `db:"shipped_at" json:"shipped_at,omitempty"`
	DeliveredAt    *time.Time        `db:"delivered_at" json:"delivered_at,omitempty"`
	ReturnedAt     *time.Time        `db:"returned_at" json:"returned_at,omitempty"`
	CreatedBy      string            `db:"created_by" json:"created_by"`
	Items          []FulfillmentItem `db:"-" json:"items"`
}

// FulfillmentItem is immutable once written.
type FulfillmentItem struct {
	ID            string          `db:"id" json:"id"`
	FulfillmentID string          `db:"fulfillment_id" json:"fulfillment_id"`
	OrderItemID   string          `db:"order_item_id" json:"order_item_id"`
	VariantID     string          `db:"variant_id" json:"variant_id"`
	Qty           decimal.Decimal `db:"qty" json:"qty"`
}
