package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/events"
	"github.com/fekuna/omnipos-inventory-service/internal/fulfillment"
	"github.com/fekuna/omnipos-inventory-service/internal/fulfillment/dto"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory"
	invdto "github.com/fekuna/omnipos-inventory-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/fekuna/omnipos-inventory-service/pkg/clock"
	"github.com/fekuna/omnipos-inventory-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-inventory-service/pkg/logger"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("inventory-service/fulfillment")

type fulfillmentUseCase struct {
	repo      fulfillment.Repository
	ledger    inventory.Ledger
	tx        *postgres.TxManager
	notifier  inventory.Notifier
	publisher events.Publisher
	clock     clock.Clock
	logger    logger.ZapLogger
}

func NewFulfillmentUseCase(
	repo fulfillment.Repository,
	ledger inventory.Ledger,
	txm *postgres.TxManager,
	notifier inventory.Notifier,
	publisher events.Publisher,
	clk clock.Clock,
	log logger.ZapLogger,
) fulfillment.UseCase {
	if publisher == nil {
		publisher = events.NewNopPublisher()
	}
	return &fulfillmentUseCase{
		repo:      repo,
		ledger:    ledger,
		tx:        txm,
		notifier:  notifier,
		publisher: publisher,
		clock:     clk,
		logger:    log,
	}
}

// CreateFulfillment checks the requested lines against what is left to
// fulfill on the order and deducts stock for each of them, all in one
// transaction. Either every line is deducted or nothing is written.
func (uc *fulfillmentUseCase) CreateFulfillment(ctx context.Context, input *dto.CreateFulfillmentInput) (*model.Fulfillment, error) {
	ctx, span := tracer.Start(ctx, "fulfillment.Create", trace.WithAttributes(
		attribute.String("order_id", input.OrderID),
		attribute.String("warehouse_id", input.WarehouseID),
		attribute.Int("lines", len(input.Items)),
	))
	defer span.End()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		f       *model.Fulfillment
		results []model.LedgerResult
	)
	err := uc.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		// The order lock serialises creates for the same order, so the
		// remaining quantities read below cannot go stale before commit.
		order, err := uc.repo.LockOrder(ctx, tx, input.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return apperr.NotFound("order %s", input.OrderID)
		}

		orderItems, err := uc.repo.ListOrderItems(ctx, tx, input.OrderID)
		if err != nil {
			return err
		}
		byID := make(map[string]model.OrderItem, len(orderItems))
		for _, it := range orderItems {
			byID[it.ID] = it
		}

		fulfilled, err := uc.repo.FulfilledQuantities(ctx, tx, input.OrderID)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		f = &model.Fulfillment{
			BaseModel:      model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
			OrderID:        input.OrderID,
			WarehouseID:    input.WarehouseID,
			Status:         model.FulfillmentPending,
			TrackingNumber: input.TrackingNumber,
			Carrier:        input.Carrier,
			CreatedBy:      input.Actor,
		}

		for i, line := range input.Items {
			item, ok := byID[line.OrderItemID]
			if !ok {
				return apperr.Validation(fmt.Sprintf("items[%d].order_item_id", i),
					"order item %s does not belong to order %s", line.OrderItemID, input.OrderID)
			}
			remaining := item.Qty.Sub(fulfilled[item.ID])
			if line.Qty.GreaterThan(remaining) {
				return apperr.Validation(fmt.Sprintf("items[%d].qty", i),
					"exceeds remaining quantity: requested %s, remaining %s", line.Qty.String(), remaining.String())
			}
			f.Items = append(f.Items, model.FulfillmentItem{
				ID:            uuid.New().String(),
				FulfillmentID: f.ID,
				OrderItemID:   item.ID,
				VariantID:     item.VariantID,
				Qty:           line.Qty,
			})
		}

		if input.Status != "" {
			advance(f, input.Status, now)
		}

		if err := uc.repo.Create(ctx, tx, f); err != nil {
			return err
		}

		inputs := make([]*invdto.ApplyInput, len(f.Items))
		for i, item := range f.Items {
			inputs[i] = &invdto.ApplyInput{
				VariantID:     item.VariantID,
				WarehouseID:   f.WarehouseID,
				Delta:         item.Qty.Neg(),
				MovementType:  model.MovementFulfillmentDeduction,
				ReferenceType: model.ReferenceFulfillment,
				ReferenceID:   f.ID,
				Actor:         input.Actor,
			}
		}
		results, err = inventory.ApplyAll(ctx, tx, uc.ledger, inputs)
		return err
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	uc.logger.Info("fulfillment created",
		zap.String("fulfillment_id", f.ID),
		zap.String("order_id", f.OrderID),
		zap.String("warehouse_id", f.WarehouseID),
		zap.Int("lines", len(f.Items)),
	)
	uc.afterCommit(ctx, f, events.TypeFulfillmentCreated, "", results)
	return f, nil
}

// UpdateStatus moves a fulfillment along pending -> shipped -> delivered, or
// to returned from any other state. Returning restores every line's stock
// once; returning it again changes nothing.
func (uc *fulfillmentUseCase) UpdateStatus(ctx context.Context, input *dto.UpdateStatusInput) (*model.Fulfillment, error) {
	ctx, span := tracer.Start(ctx, "fulfillment.UpdateStatus", trace.WithAttributes(
		attribute.String("fulfillment_id", input.FulfillmentID),
		attribute.String("status", string(input.Status)),
	))
	defer span.End()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		f       *model.Fulfillment
		prev    model.FulfillmentStatus
		results []model.LedgerResult
	)
	err := uc.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		f, err = uc.repo.LockByID(ctx, tx, input.FulfillmentID)
		if err != nil {
			return err
		}
		if f == nil {
			return apperr.NotFound("fulfillment %s", input.FulfillmentID)
		}
		prev = f.Status

		switch {
		case prev == model.FulfillmentReturned && input.Status == model.FulfillmentReturned:
			return nil
		case prev == model.FulfillmentReturned:
			return apperr.Conflict("fulfillment %s is returned and cannot become %s", f.ID, input.Status)
		case input.Status != prev && input.Status != model.FulfillmentReturned && !prev.Precedes(input.Status):
			return apperr.Conflict("fulfillment %s cannot move from %s to %s", f.ID, prev, input.Status)
		}

		now := uc.clock.Now()
		changed := false
		if input.TrackingNumber != nil {
			f.TrackingNumber = input.TrackingNumber
			changed = true
		}
		if input.Carrier != nil {
			f.Carrier = input.Carrier
			changed = true
		}

		if input.Status == model.FulfillmentReturned {
			inputs := make([]*invdto.ApplyInput, len(f.Items))
			for i, item := range f.Items {
				inputs[i] = &invdto.ApplyInput{
					VariantID:     item.VariantID,
					WarehouseID:   f.WarehouseID,
					Delta:         item.Qty,
					MovementType:  model.MovementReturnRestoration,
					ReferenceType: model.ReferenceFulfillment,
					ReferenceID:   f.ID,
					Actor:         input.Actor,
				}
			}
			results, err = inventory.ApplyAll(ctx, tx, uc.ledger, inputs)
			if err != nil {
				return err
			}
		}
		if input.Status != prev {
			advance(f, input.Status, now)
			changed = true
		}

		if !changed {
			return nil
		}
		f.UpdatedAt = now
		return uc.repo.UpdateStatus(ctx, tx, f)
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if f.Status != prev {
		uc.logger.Info("fulfillment status changed",
			zap.String("fulfillment_id", f.ID),
			zap.String("from", string(prev)),
			zap.String("to", string(f.Status)),
			zap.String("actor", input.Actor),
		)
		uc.afterCommit(ctx, f, events.TypeFulfillmentStatusChanged, prev, results)
	}
	return f, nil
}

func (uc *fulfillmentUseCase) GetFulfillment(ctx context.Context, id string) (*model.Fulfillment, error) {
	if id == "" {
		return nil, apperr.Validation("id", "is required")
	}
	f, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, apperr.NotFound("fulfillment %s", id)
	}
	return f, nil
}

func (uc *fulfillmentUseCase) ListByOrder(ctx context.Context, orderID string) ([]model.Fulfillment, error) {
	if orderID == "" {
		return nil, apperr.Validation("order_id", "is required")
	}
	return uc.repo.ListByOrder(ctx, orderID)
}

func (uc *fulfillmentUseCase) RemainingQuantities(ctx context.Context, orderID string) ([]model.RemainingQuantity, error) {
	if orderID == "" {
		return nil, apperr.Validation("order_id", "is required")
	}

	var out []model.RemainingQuantity
	err := uc.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		order, err := uc.repo.GetOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return apperr.NotFound("order %s", orderID)
		}

		items, err := uc.repo.ListOrderItems(ctx, tx, orderID)
		if err != nil {
			return err
		}
		fulfilled, err := uc.repo.FulfilledQuantities(ctx, tx, orderID)
		if err != nil {
			return err
		}

		out = make([]model.RemainingQuantity, 0, len(items))
		for _, it := range items {
			done := fulfilled[it.ID]
			out = append(out, model.RemainingQuantity{
				OrderItemID: it.ID,
				VariantID:   it.VariantID,
				Ordered:     it.Qty,
				Fulfilled:   done,
				Remaining:   it.Qty.Sub(done),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// advance sets status and stamps each milestone the first time it is reached.
func advance(f *model.Fulfillment, status model.FulfillmentStatus, now time.Time) {
	f.Status = status
	switch status {
	case model.FulfillmentShipped:
		if f.ShippedAt == nil {
			f.ShippedAt = &now
		}
	case model.FulfillmentDelivered:
		if f.ShippedAt == nil {
			f.ShippedAt = &now
		}
		if f.DeliveredAt == nil {
			f.DeliveredAt = &now
		}
	case model.FulfillmentReturned:
		if f.ReturnedAt == nil {
			f.ReturnedAt = &now
		}
	}
}

func (uc *fulfillmentUseCase) afterCommit(ctx context.Context, f *model.Fulfillment, eventType string, prev model.FulfillmentStatus, results []model.LedgerResult) {
	if uc.notifier != nil && len(results) > 0 {
		uc.notifier.StockCommitted(ctx, results)
	}

	evt := events.New(eventType, events.FulfillmentPayload{
		FulfillmentID: f.ID,
		OrderID:       f.OrderID,
		WarehouseID:   f.WarehouseID,
		Status:        string(f.Status),
		PrevStatus:    string(prev),
	}, uc.clock.Now())
	if err := uc.publisher.Publish(ctx, f.OrderID, evt); err != nil {
		uc.logger.Error("publish fulfillment event",
			zap.String("fulfillment_id", f.ID),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
