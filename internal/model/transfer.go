package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransferStatus string

const (
	TransferInTransit TransferStatus = "in_transit"
	TransferCompleted TransferStatus = "completed"
	TransferCanceled  TransferStatus = "canceled"
)

// Transfer moves stock between warehouses. The source is debited when the
// transfer is created; the destination is credited on completion.
type Transfer struct {
	BaseModel
	FromWarehouseID string         `db:"from_warehouse_id" json:"from_warehouse_id"`
	ToWarehouseID   string         `db:"to_warehouse_id" json:"to_warehouse_id"`
	Status          TransferStatus `db:"status" json:"status"`
	Notes           string         `db:"notes" json:"notes"`
	CreatedBy       string         `db:"created_by" json:"created_by"`
	CompletedAt     *time.Time     `db:"completed_at" json:"completed_at,omitempty"`
	CanceledAt      *time.Time     `db:"canceled_at" json:"canceled_at,omitempty"`
	Items           []TransferItem `db:"-" json:"items"`
}

type TransferItem struct {
	ID         string          `db:"id" json:"id"`
	TransferID string          `db:"transfer_id" json:"transfer_id"`
	VariantID  string          `db:"variant_id" json:"variant_id"`
	Qty        decimal.Decimal `db:"qty" json:"qty"`
}
