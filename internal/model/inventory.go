package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockRecord holds the counters for one variant in one warehouse.
// OnHand only changes through the ledger.
type StockRecord struct {
	BaseModel
	VariantID      string          `db:"variant_id" json:"variant_id"`
	WarehouseID    string          `db:"warehouse_id" json:"warehouse_id"`
	OnHand         decimal.Decimal `db:"on_hand" json:"on_hand"`
	Reserved       decimal.Decimal `db:"reserved" json:"reserved"`
	SafetyStock    decimal.Decimal `db:"safety_stock" json:"safety_stock"`
	ReorderPoint   decimal.Decimal `db:"reorder_point" json:"reorder_point"`
	AllowBackorder bool            `db:"allow_backorder" json:"allow_backorder"`
	RetiredAt      *time.Time      `db:"retired_at" json:"retired_at,omitempty"`
}

// Available is on hand stock not held by a reservation.
func (s *StockRecord) Available() decimal.Decimal {
	return s.OnHand.Sub(s.Reserved)
}

func (s *StockRecord) IsLow() bool {
	return s.ReorderPoint.IsPositive() && s.Available().LessThanOrEqual(s.ReorderPoint)
}

func (s *StockRecord) IsRetired() bool {
	return s.RetiredAt != nil
}

type MovementType string

const (
	MovementAdjustment           MovementType = "adjustment"
	MovementFulfillmentDeduction MovementType = "fulfillment_deduction"
	MovementReturnRestoration    MovementType = "return_restoration"
	MovementTransferOut          MovementType = "transfer_out"
	MovementTransferIn           MovementType = "transfer_in"
)

func (t MovementType) Valid() bool {
	switch t {
	case MovementAdjustment, MovementFulfillmentDeduction, MovementReturnRestoration,
		MovementTransferOut, MovementTransferIn:
		return true
	}
	return false
}

// Reference types recorded on movements.
const (
	ReferenceFulfillment  = "fulfillment"
	ReferenceTransfer     = "transfer"
	ReferenceManual       = "manual"
	ReferenceVariantStock = "variant_stocked"
)

// MovementEntry is one immutable row of the movement log.
type MovementEntry struct {
	ID             string          `db:"id" json:"id"`
	VariantID      string          `db:"variant_id" json:"variant_id"`
	WarehouseID    string          `db:"warehouse_id" json:"warehouse_id"`
	MovementType   MovementType    `db:"movement_type" json:"movement_type"`
	QuantityChange decimal.Decimal `db:"quantity_change" json:"quantity_change"`
	QuantityBefore decimal.Decimal `db:"quantity_before" json:"quantity_before"`
	QuantityAfter  decimal.Decimal `db:"quantity_after" json:"quantity_after"`
	ReferenceType  string          `db:"reference_type" json:"reference_type"`
	ReferenceID    string          `db:"reference_id" json:"reference_id"`
	Notes          string          `db:"notes" json:"notes"`
	PerformedBy    string          `db:"performed_by" json:"performed_by"`
	PerformedAt    time.Time       `db:"performed_at" json:"performed_at"`
}

// LedgerResult is what one ledger application produced.
type LedgerResult struct {
	Stock    *StockRecord
	Movement *MovementEntry
}

// Reconciliation compares a record's on hand quantity with its movement history.
type Reconciliation struct {
	VariantID     string          `db:"variant_id" json:"variant_id"`
	WarehouseID   string          `db:"warehouse_id" json:"warehouse_id"`
	OnHand        decimal.Decimal `db:"on_hand" json:"on_hand"`
	MovementSum   decimal.Decimal `db:"movement_sum" json:"movement_sum"`
	MovementCount int             `db:"movement_count" json:"movement_count"`
}

// Drift is how far on hand has moved away from the ledger. Zero when balanced.
func (r *Reconciliation) Drift() decimal.Decimal {
	return r.OnHand.Sub(r.MovementSum)
}

func (r *Reconciliation) Balanced() bool {
	return r.Drift().IsZero()
}
