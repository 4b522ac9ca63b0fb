package usecase

import (
	"context"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/fekuna/omnipos-inventory-service/pkg/clock"
	"github.com/fekuna/omnipos-inventory-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-inventory-service/pkg/logger"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("inventory-service/inventory")

type inventoryUseCase struct {
	repo     inventory.Repository
	ledger   inventory.Ledger
	tx       *postgres.TxManager
	cache    inventory.StockCache
	notifier inventory.Notifier
	clock    clock.Clock
	logger   logger.ZapLogger
}

// NewInventoryUseCase wires the stock usecase. cache and notifier may be nil.
func NewInventoryUseCase(
	repo inventory.Repository,
	ledger inventory.Ledger,
	txm *postgres.TxManager,
	cache inventory.StockCache,
	notifier inventory.Notifier,
	clk clock.Clock,
	log logger.ZapLogger,
) inventory.UseCase {
	return &inventoryUseCase{
		repo:     repo,
		ledger:   ledger,
		tx:       txm,
		cache:    cache,
		notifier: notifier,
		clock:    clk,
		logger:   log,
	}
}

func (uc *inventoryUseCase) GetStock(ctx context.Context, variantID, warehouseID string) (*model.StockRecord, error) {
	if variantID == "" {
		return nil, apperr.Validation("variant_id", "is required")
	}
	if warehouseID == "" {
		return nil, apperr.Validation("warehouse_id", "is required")
	}

	if uc.cache != nil {
		if rec, ok := uc.cache.Get(ctx, variantID, warehouseID); ok {
			return rec, nil
		}
	}

	rec, err := uc.repo.GetStock(ctx, variantID, warehouseID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		// Never stocked here: report zero rather than an error.
		return &model.StockRecord{
			VariantID:    variantID,
			WarehouseID:  warehouseID,
			OnHand:       decimal.Zero,
			Reserved:     decimal.Zero,
			SafetyStock:  decimal.Zero,
			ReorderPoint: decimal.Zero,
		}, nil
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, rec)
	}
	return rec, nil
}

func (uc *inventoryUseCase) ListStock(ctx context.Context, filters *dto.StockFilters) ([]model.StockRecord, int, error) {
	return uc.repo.FindStock(ctx, filters)
}

func (uc *inventoryUseCase) ListLowStock(ctx context.Context, warehouseID string, page, pageSize int) ([]model.StockRecord, int, error) {
	return uc.repo.FindStock(ctx, &dto.StockFilters{
		WarehouseID: warehouseID,
		LowStock:    true,
		Page:        page,
		PageSize:    pageSize,
	})
}

func (uc *inventoryUseCase) AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (*model.StockRecord, error) {
	ctx, span := tracer.Start(ctx, "inventory.AdjustStock", trace.WithAttributes(
		attribute.String("variant_id", input.VariantID),
		attribute.String("warehouse_id", input.WarehouseID),
		attribute.String("delta", input.Delta.String()),
	))
	defer span.End()

	refType := input.ReferenceType
	if refType == "" {
		refType = model.ReferenceManual
	}

	var res *model.LedgerResult
	err := uc.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		res, err = uc.ledger.Apply(ctx, tx, &dto.ApplyInput{
			VariantID:     input.VariantID,
			WarehouseID:   input.WarehouseID,
			Delta:         input.Delta,
			MovementType:  model.MovementAdjustment,
			ReferenceType: refType,
			ReferenceID:   input.ReferenceID,
			Notes:         input.Reason,
			Actor:         input.Actor,
		})
		return err
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	uc.logger.Info("stock adjusted",
		zap.String("variant_id", input.VariantID),
		zap.String("warehouse_id", input.WarehouseID),
		zap.String("delta", input.Delta.String()),
		zap.String("on_hand", res.Stock.OnHand.String()),
		zap.String("actor", input.Actor),
	)
	uc.committed(ctx, *res)
	return res.Stock, nil
}

func (uc *inventoryUseCase) InitializeStock(ctx context.Context, input *dto.InitializeStockInput) (*model.StockRecord, error) {
	ctx, span := tracer.Start(ctx, "inventory.InitializeStock", trace.WithAttributes(
		attribute.String("variant_id", input.VariantID),
		attribute.String("warehouse_id", input.WarehouseID),
	))
	defer span.End()

	var res *model.LedgerResult
	err := uc.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		res, err = uc.ledger.Initialize(ctx, tx, input)
		return err
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if res.Movement != nil {
		uc.committed(ctx, *res)
	} else {
		uc.invalidate(ctx, res.Stock)
	}
	return res.Stock, nil
}

func (uc *inventoryUseCase) ReserveStock(ctx context.Context, input *dto.ReserveInput) (*model.StockRecord, error) {
	return uc.counters(ctx, func(tx *sqlx.Tx) (*model.StockRecord, error) {
		return uc.ledger.Reserve(ctx, tx, input)
	})
}

func (uc *inventoryUseCase) ReleaseStock(ctx context.Context, input *dto.ReserveInput) (*model.StockRecord, error) {
	return uc.counters(ctx, func(tx *sqlx.Tx) (*model.StockRecord, error) {
		return uc.ledger.Release(ctx, tx, input)
	})
}

func (uc *inventoryUseCase) RetireStock(ctx context.Context, variantID, warehouseID string) (*model.StockRecord, error) {
	rec, err := uc.counters(ctx, func(tx *sqlx.Tx) (*model.StockRecord, error) {
		return uc.ledger.Retire(ctx, tx, variantID, warehouseID)
	})
	if err != nil {
		return nil, err
	}
	uc.logger.Info("stock retired", zap.String("variant_id", variantID), zap.String("warehouse_id", warehouseID))
	return rec, nil
}

// SetBackorder mirrors the variant's backorder flag onto all of its records.
func (uc *inventoryUseCase) SetBackorder(ctx context.Context, input *dto.SetBackorderInput) (int64, error) {
	if input.VariantID == "" {
		return 0, apperr.Validation("variant_id", "is required")
	}

	var n int64
	err := uc.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		n, err = uc.repo.SetBackorder(ctx, tx, input.VariantID, input.AllowBackorder, uc.clock.Now())
		return err
	})
	if err != nil {
		return 0, err
	}

	if uc.cache != nil && n > 0 {
		recs, _, err := uc.repo.FindStock(ctx, &dto.StockFilters{VariantID: input.VariantID, IncludeRetired: true})
		if err != nil {
			uc.logger.Warn("list records for cache invalidation", zap.Error(err))
		}
		for i := range recs {
			uc.cache.Invalidate(ctx, recs[i].VariantID, recs[i].WarehouseID)
		}
	}
	return n, nil
}

func (uc *inventoryUseCase) ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.MovementEntry, int, error) {
	if filters.MovementType != "" && !model.MovementType(filters.MovementType).Valid() {
		return nil, 0, apperr.Validation("movement_type", "unknown movement type %q", filters.MovementType)
	}
	if filters.StartDate != nil && filters.EndDate != nil && filters.EndDate.Before(*filters.StartDate) {
		return nil, 0, apperr.Validation("end_date", "must not be before start_date")
	}
	return uc.repo.ListMovements(ctx, filters)
}

func (uc *inventoryUseCase) Reconcile(ctx context.Context, variantID, warehouseID string) (*model.Reconciliation, error) {
	rec, err := uc.repo.Reconcile(ctx, variantID, warehouseID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperr.NotFound("stock record for variant %s in warehouse %s", variantID, warehouseID)
	}
	return rec, nil
}

func (uc *inventoryUseCase) ReconcileAll(ctx context.Context) ([]model.Reconciliation, error) {
	return uc.repo.ReconcileAll(ctx)
}

// counters runs a ledger call that touches reserved or retirement state and
// drops the cached copy afterwards. No movement is written for these.
func (uc *inventoryUseCase) counters(ctx context.Context, fn func(tx *sqlx.Tx) (*model.StockRecord, error)) (*model.StockRecord, error) {
	var rec *model.StockRecord
	err := uc.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		rec, err = fn(tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx, rec)
	return rec, nil
}

func (uc *inventoryUseCase) committed(ctx context.Context, results ...model.LedgerResult) {
	if uc.notifier != nil {
		uc.notifier.StockCommitted(ctx, results)
		return
	}
	for _, r := range results {
		uc.invalidate(ctx, r.Stock)
	}
}

func (uc *inventoryUseCase) invalidate(ctx context.Context, rec *model.StockRecord) {
	if uc.cache == nil || rec == nil {
		return
	}
	uc.cache.Invalidate(ctx, rec.VariantID, rec.WarehouseID)
}
