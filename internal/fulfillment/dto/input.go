package dto

import (
	"fmt"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/shopspring/decimal"
)

type CreateItemInput struct {
	OrderItemID string
	Qty         decimal.Decimal
}

type CreateFulfillmentInput struct {
	OrderID        string
	WarehouseID    string
	Items          []CreateItemInput
	TrackingNumber *string
	Carrier        *string
	// Status is the state the fulfillment starts in; empty means pending.
	Status model.FulfillmentStatus
	Actor  string
}

func (in *CreateFulfillmentInput) Validate() error {
	if in.OrderID == "" {
		return apperr.Validation("order_id", "is required")
	}
	if in.WarehouseID == "" {
		return apperr.Validation("warehouse_id", "is required")
	}
	if len(in.Items) == 0 {
		return apperr.Validation("items", "at least one item is required")
	}

	seen := make(map[string]struct{}, len(in.Items))
	for i, item := range in.Items {
		field := fmt.Sprintf("items[%d]", i)
		if item.OrderItemID == "" {
			return apperr.Validation(field+".order_item_id", "is required")
		}
		if _, dup := seen[item.OrderItemID]; dup {
			return apperr.Validation(field+".order_item_id", "order item %s listed more than once", item.OrderItemID)
		}
		seen[item.OrderItemID] = struct{}{}
		if !item.Qty.IsPositive() {
			return apperr.Validation(field+".qty", "must be positive")
		}
	}

	switch in.Status {
	case "", model.FulfillmentPending, model.FulfillmentShipped, model.FulfillmentDelivered:
	default:
		return apperr.Validation("status", "cannot create a fulfillment as %q", in.Status)
	}
	return nil
}

type UpdateStatusInput struct {
	FulfillmentID  string
	Status         model.FulfillmentStatus
	TrackingNumber *string
	Carrier        *string
	Actor          string
}

func (in *UpdateStatusInput) Validate() error {
	if in.FulfillmentID == "" {
		return apperr.Validation("fulfillment_id", "is required")
	}
	if !in.Status.Valid() {
		return apperr.Validation("status", "unknown status %q", in.Status)
	}
	return nil
}
