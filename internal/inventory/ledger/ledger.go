package ledger

import (
	"context"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/fekuna/omnipos-inventory-service/pkg/clock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type ledger struct {
	repo  inventory.Repository
	clock clock.Clock
}

func NewLedger(repo inventory.Repository, clk clock.Clock) inventory.Ledger {
	return &ledger{
		repo:  repo,
		clock: clk,
	}
}

func (l *ledger) Apply(ctx context.Context, tx *sqlx.Tx, in *dto.ApplyInput) (*model.LedgerResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	rec, err := l.repo.LockStock(ctx, tx, in.VariantID, in.WarehouseID)
	if err != nil {
		return nil, errors.Wrap(err, "lock stock record")
	}

	if rec == nil {
		// Nothing was ever stocked here, so there is nothing to deduct from.
		if in.Delta.IsNegative() {
			return nil, &apperr.InsufficientStockError{
				VariantID:   in.VariantID,
				WarehouseID: in.WarehouseID,
				Available:   decimal.Zero,
				Requested:   in.Delta.Neg(),
			}
		}
		rec, err = l.ensure(ctx, tx, l.newRecord(in.VariantID, in.WarehouseID))
		if err != nil {
			return nil, err
		}
	}

	if in.Delta.IsNegative() {
		if rec.IsRetired() {
			return nil, apperr.Validation("warehouse_id", "stock for variant %s in warehouse %s is retired", in.VariantID, in.WarehouseID)
		}
		if !rec.AllowBackorder && rec.Available().Add(in.Delta).IsNegative() {
			return nil, &apperr.InsufficientStockError{
				VariantID:   in.VariantID,
				WarehouseID: in.WarehouseID,
				Available:   rec.Available(),
				Requested:   in.Delta.Neg(),
			}
		}
	}

	now := l.clock.Now()
	before := rec.OnHand
	rec.OnHand = before.Add(in.Delta)
	rec.UpdatedAt = now

	if err := l.repo.UpdateStock(ctx, tx, rec); err != nil {
		return nil, err
	}

	movement := &model.MovementEntry{
		ID:             uuid.New().String(),
		VariantID:      in.VariantID,
		WarehouseID:    in.WarehouseID,
		MovementType:   in.MovementType,
		QuantityChange: in.Delta,
		QuantityBefore: before,
		QuantityAfter:  rec.OnHand,
		ReferenceType:  in.ReferenceType,
		ReferenceID:    in.ReferenceID,
		Notes:          in.Notes,
		PerformedBy:    in.Actor,
		PerformedAt:    now,
	}
	if err := l.repo.InsertMovement(ctx, tx, movement); err != nil {
		return nil, err
	}

	return &model.LedgerResult{Stock: rec, Movement: movement}, nil
}

func (l *ledger) Initialize(ctx context.Context, tx *sqlx.Tx, in *dto.InitializeStockInput) (*model.LedgerResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	refType := in.ReferenceType
	if refType == "" {
		refType = model.ReferenceManual
	}

	if in.ReferenceID != "" {
		done, err := l.repo.HasMovement(ctx, tx, in.VariantID, in.WarehouseID, refType, in.ReferenceID)
		if err != nil {
			return nil, errors.Wrap(err, "check initialization reference")
		}
		if done {
			rec, err := l.repo.LockStock(ctx, tx, in.VariantID, in.WarehouseID)
			if err != nil {
				return nil, errors.Wrap(err, "lock stock record")
			}
			return &model.LedgerResult{Stock: rec}, nil
		}
	}

	fresh := l.newRecord(in.VariantID, in.WarehouseID)
	fresh.SafetyStock = in.SafetyStock
	fresh.ReorderPoint = in.ReorderPoint
	fresh.AllowBackorder = in.AllowBackorder

	rec, err := l.ensure(ctx, tx, fresh)
	if err != nil {
		return nil, err
	}

	if rec.ID != fresh.ID {
		rec.SafetyStock = in.SafetyStock
		rec.ReorderPoint = in.ReorderPoint
		rec.AllowBackorder = in.AllowBackorder
		rec.RetiredAt = nil
		rec.UpdatedAt = l.clock.Now()
		if err := l.repo.UpdateStock(ctx, tx, rec); err != nil {
			return nil, err
		}
	}

	if !in.InitialQuantity.IsPositive() {
		return &model.LedgerResult{Stock: rec}, nil
	}

	return l.Apply(ctx, tx, &dto.ApplyInput{
		VariantID:     in.VariantID,
		WarehouseID:   in.WarehouseID,
		Delta:         in.InitialQuantity,
		MovementType:  model.MovementAdjustment,
		ReferenceType: refType,
		ReferenceID:   in.ReferenceID,
		Notes:         "initial stock",
		Actor:         in.Actor,
	})
}

func (l *ledger) Reserve(ctx context.Context, tx *sqlx.Tx, in *dto.ReserveInput) (*model.StockRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	rec, err := l.lockExisting(ctx, tx, in.VariantID, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if rec.IsRetired() {
		return nil, apperr.Validation("warehouse_id", "stock for variant %s in warehouse %s is retired", in.VariantID, in.WarehouseID)
	}
	if !rec.AllowBackorder && rec.Available().LessThan(in.Qty) {
		return nil, &apperr.InsufficientStockError{
			VariantID:   in.VariantID,
			WarehouseID: in.WarehouseID,
			Available:   rec.Available(),
			Requested:   in.Qty,
		}
	}

	rec.Reserved = rec.Reserved.Add(in.Qty)
	rec.UpdatedAt = l.clock.Now()
	if err := l.repo.UpdateStock(ctx, tx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (l *ledger) Release(ctx context.Context, tx *sqlx.Tx, in *dto.ReserveInput) (*model.StockRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	rec, err := l.lockExisting(ctx, tx, in.VariantID, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if rec.Reserved.LessThan(in.Qty) {
		return nil, apperr.Validation("qty", "only %s reserved", rec.Reserved.String())
	}

	rec.Reserved = rec.Reserved.Sub(in.Qty)
	rec.UpdatedAt = l.clock.Now()
	if err := l.repo.UpdateStock(ctx, tx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Retire hides a record from stock listings and blocks further deductions.
// The row stays because movements still reference it.
func (l *ledger) Retire(ctx context.Context, tx *sqlx.Tx, variantID, warehouseID string) (*model.StockRecord, error) {
	rec, err := l.lockExisting(ctx, tx, variantID, warehouseID)
	if err != nil {
		return nil, err
	}
	if rec.IsRetired() {
		return rec, nil
	}

	now := l.clock.Now()
	rec.RetiredAt = &now
	rec.UpdatedAt = now
	if err := l.repo.UpdateStock(ctx, tx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (l *ledger) newRecord(variantID, warehouseID string) *model.StockRecord {
	now := l.clock.Now()
	return &model.StockRecord{
		BaseModel:    model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		VariantID:    variantID,
		WarehouseID:  warehouseID,
		OnHand:       decimal.Zero,
		Reserved:     decimal.Zero,
		SafetyStock:  decimal.Zero,
		ReorderPoint: decimal.Zero,
	}
}

// ensure inserts rec if missing and returns the locked row, which is either
// rec itself or the record a concurrent writer created first.
func (l *ledger) ensure(ctx context.Context, tx *sqlx.Tx, rec *model.StockRecord) (*model.StockRecord, error) {
	if err := l.repo.EnsureStock(ctx, tx, rec); err != nil {
		return nil, errors.Wrap(err, "create stock record")
	}
	locked, err := l.repo.LockStock(ctx, tx, rec.VariantID, rec.WarehouseID)
	if err != nil {
		return nil, errors.Wrap(err, "lock stock record")
	}
	if locked == nil {
		return nil, errors.Errorf("stock record %s/%s vanished after insert", rec.VariantID, rec.WarehouseID)
	}
	return locked, nil
}

func (l *ledger) lockExisting(ctx context.Context, tx *sqlx.Tx, variantID, warehouseID string) (*model.StockRecord, error) {
	rec, err := l.repo.LockStock(ctx, tx, variantID, warehouseID)
	if err != nil {
		return nil, errors.Wrap(err, "lock stock record")
	}
	if rec == nil {
		return nil, apperr.NotFound("stock record for variant %s in warehouse %s", variantID, warehouseID)
	}
	return rec, nil
}
