package dto

import (
	"fmt"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/shopspring/decimal"
)

type TransferFilters struct {
	WarehouseID string // matches either end
	Status      model.TransferStatus
	Page        int
	PageSize    int
}

type TransferItemInput struct {
	VariantID string
	Qty       decimal.Decimal
}

type CreateTransferInput struct {
	FromWarehouseID string
	ToWarehouseID   string
	Items           []TransferItemInput
	Notes           string
	Actor           string
}

func (in *CreateTransferInput) Validate() error {
	if in.FromWarehouseID == "" {
		return apperr.Validation("from_warehouse_id", "is required")
	}
	if in.ToWarehouseID == "" {
		return apperr.Validation("to_warehouse_id", "is required")
	}
	if in.FromWarehouseID == in.ToWarehouseID {
		return apperr.Validation("to_warehouse_id", "must differ from from_warehouse_id")
	}
	if len(in.Items) == 0 {
		return apperr.Validation("items", "at least one item is required")
	}

	seen := make(map[string]struct{}, len(in.Items))
	for i, item := range in.Items {
		field := fmt.Sprintf("items[%d]", i)
		if item.VariantID == "" {
			return apperr.Validation(field+".variant_id", "is required")
		}
		if _, dup := seen[item.VariantID]; dup {
			return apperr.Validation(field+".variant_id", "variant %s listed more than once", item.VariantID)
		}
		seen[item.VariantID] = struct{}{}
		if !item.Qty.IsPositive() {
			return apperr.Validation(field+".qty", "must be positive")
		}
	}
	return nil
}
