package dto

import (
	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/shopspring/decimal"
)

// ApplyInput is one signed change to on hand stock.
type ApplyInput struct {
	VariantID     string
	WarehouseID   string
	Delta         decimal.Decimal
	MovementType  model.MovementType
	ReferenceType string
	ReferenceID   string
	Notes         string
	Actor         string
}

func (in *ApplyInput) Validate() error {
	if in.VariantID == "" {
		return apperr.Validation("variant_id", "is required")
	}
	if in.WarehouseID == "" {
		return apperr.Validation("warehouse_id", "is required")
	}
	if in.Delta.IsZero() {
		return apperr.Validation("quantity_change", "must not be zero")
	}
	if !in.MovementType.Valid() {
		return apperr.Validation("movement_type", "unknown movement type %q", in.MovementType)
	}

	switch in.MovementType {
	case model.MovementFulfillmentDeduction, model.MovementTransferOut:
		if in.Delta.IsPositive() {
			return apperr.Validation("quantity_change", "%s must be negative", in.MovementType)
		}
	case model.MovementReturnRestoration, model.MovementTransferIn:
		if in.Delta.IsNegative() {
			return apperr.Validation("quantity_change", "%s must be positive", in.MovementType)
		}
	}
	return nil
}

type AdjustStockInput struct {
	VariantID     string
	WarehouseID   string
	Delta         decimal.Decimal
	Reason        string
	ReferenceType string
	ReferenceID   string
	Actor         string
}

type InitializeStockInput struct {
	VariantID       string
	WarehouseID     string
	InitialQuantity decimal.Decimal
	SafetyStock     decimal.Decimal
	ReorderPoint    decimal.Decimal
	AllowBackorder  bool
	ReferenceType   string
	ReferenceID     string
	Actor           string
}

func (in *InitializeStockInput) Validate() error {
	if in.VariantID == "" {
		return apperr.Validation("variant_id", "is required")
	}
	if in.WarehouseID == "" {
		return apperr.Validation("warehouse_id", "is required")
	}
	if in.InitialQuantity.IsNegative() {
		return apperr.Validation("initial_quantity", "must not be negative")
	}
	if in.SafetyStock.IsNegative() {
		return apperr.Validation("safety_stock", "must not be negative")
	}
	if in.ReorderPoint.IsNegative() {
		return apperr.Validation("reorder_point", "must not be negative")
	}
	return nil
}

// ReserveInput holds or frees a quantity of on hand stock.
type ReserveInput struct {
	VariantID   string
	WarehouseID string
	Qty         decimal.Decimal
}

func (in *ReserveInput) Validate() error {
	if in.VariantID == "" {
		return apperr.Validation("variant_id", "is required")
	}
	if in.WarehouseID == "" {
		return apperr.Validation("warehouse_id", "is required")
	}
	if !in.Qty.IsPositive() {
		return apperr.Validation("qty", "must be positive")
	}
	return nil
}

type SetBackorderInput struct {
	VariantID      string
	AllowBackorder bool
}
