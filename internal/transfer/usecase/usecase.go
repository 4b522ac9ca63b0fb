package usecase

import (
	"context"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/events"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory"
	invdto "github.com/fekuna/omnipos-inventory-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/fekuna/omnipos-inventory-service/internal/transfer"
	"github.com/fekuna/omnipos-inventory-service/internal/transfer/dto"
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

var tracer = otel.Tracer("inventory-service/transfer")

type transferUseCase struct {
	repo      transfer.Repository
	ledger    inventory.Ledger
	tx        *postgres.TxManager
	notifier  inventory.Notifier
	publisher events.Publisher
	clock     clock.Clock
	logger    logger.ZapLogger
}

func NewTransferUseCase(
	repo transfer.Repository,
	ledger inventory.Ledger,
	txm *postgres.TxManager,
	notifier inventory.Notifier,
	publisher events.Publisher,
	clk clock.Clock,
	log logger.ZapLogger,
) transfer.UseCase {
	if publisher == nil {
		publisher = events.NewNopPublisher()
	}
	return &transferUseCase{
		repo:      repo,
		ledger:    ledger,
		tx:        txm,
		notifier:  notifier,
		publisher: publisher,
		clock:     clk,
		logger:    log,
	}
}

// CreateTransfer debits the source warehouse for every item. The transfer
// stays in transit until the destination confirms receipt.
func (uc *transferUseCase) CreateTransfer(ctx context.Context, input *dto.CreateTransferInput) (*model.Transfer, error) {
	ctx, span := tracer.Start(ctx, "transfer.Create", trace.WithAttributes(
		attribute.String("from_warehouse_id", input.FromWarehouseID),
		attribute.String("to_warehouse_id", input.ToWarehouseID),
	))
	defer span.End()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	t := &model.Transfer{
		BaseModel:       model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		FromWarehouseID: input.FromWarehouseID,
		ToWarehouseID:   input.ToWarehouseID,
		Status:          model.TransferInTransit,
		Notes:           input.Notes,
		CreatedBy:       input.Actor,
	}
	for _, item := range input.Items {
		t.Items = append(t.Items, model.TransferItem{
			ID:         uuid.New().String(),
			TransferID: t.ID,
			VariantID:  item.VariantID,
			Qty:        item.Qty,
		})
	}

	var results []model.LedgerResult
	err := uc.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		if err := uc.repo.Create(ctx, tx, t); err != nil {
			return err
		}
		var err error
		results, err = uc.move(ctx, tx, t, t.FromWarehouseID, model.MovementTransferOut, input.Actor, true)
		return err
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	uc.logger.Info("transfer created",
		zap.String("transfer_id", t.ID),
		zap.String("from", t.FromWarehouseID),
		zap.String("to", t.ToWarehouseID),
	)
	uc.afterCommit(ctx, t, events.TypeTransferCreated, results)
	return t, nil
}

// CompleteTransfer credits the destination. Completing twice is a no-op.
func (uc *transferUseCase) CompleteTransfer(ctx context.Context, id, actor string) (*model.Transfer, error) {
	return uc.finish(ctx, id, actor, model.TransferCompleted)
}

// CancelTransfer returns the goods to the source warehouse.
func (uc *transferUseCase) CancelTransfer(ctx context.Context, id, actor string) (*model.Transfer, error) {
	return uc.finish(ctx, id, actor, model.TransferCanceled)
}

func (uc *transferUseCase) finish(ctx context.Context, id, actor string, target model.TransferStatus) (*model.Transfer, error) {
	ctx, span := tracer.Start(ctx, "transfer.Finish", trace.WithAttributes(
		attribute.String("transfer_id", id),
		attribute.String("status", string(target)),
	))
	defer span.End()

	if id == "" {
		return nil, apperr.Validation("id", "is required")
	}

	var (
		t       *model.Transfer
		changed bool
		results []model.LedgerResult
	)
	err := uc.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		t, err = uc.repo.LockByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if t == nil {
			return apperr.NotFound("transfer %s", id)
		}

		switch t.Status {
		case target:
			return nil
		case model.TransferInTransit:
		default:
			return apperr.Conflict("transfer %s is %s", t.ID, t.Status)
		}

		now := uc.clock.Now()
		if target == model.TransferCompleted {
			results, err = uc.move(ctx, tx, t, t.ToWarehouseID, model.MovementTransferIn, actor, false)
			t.CompletedAt = &now
		} else {
			results, err = uc.move(ctx, tx, t, t.FromWarehouseID, model.MovementTransferIn, actor, false)
			t.CanceledAt = &now
		}
		if err != nil {
			return err
		}

		t.Status = target
		t.UpdatedAt = now
		changed = true
		return uc.repo.UpdateStatus(ctx, tx, t)
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if changed {
		uc.logger.Info("transfer finished", zap.String("transfer_id", t.ID), zap.String("status", string(t.Status)))
		eventType := events.TypeTransferCompleted
		if target == model.TransferCanceled {
			eventType = events.TypeTransferCanceled
		}
		uc.afterCommit(ctx, t, eventType, results)
	}
	return t, nil
}

func (uc *transferUseCase) GetTransfer(ctx context.Context, id string) (*model.Transfer, error) {
	t, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.NotFound("transfer %s", id)
	}
	return t, nil
}

func (uc *transferUseCase) ListTransfers(ctx context.Context, filters *dto.TransferFilters) ([]model.Transfer, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

// move applies one ledger entry per item against warehouseID.
func (uc *transferUseCase) move(ctx context.Context, tx *sqlx.Tx, t *model.Transfer, warehouseID string, mt model.MovementType, actor string, debit bool) ([]model.LedgerResult, error) {
	inputs := make([]*invdto.ApplyInput, len(t.Items))
	for i, item := range t.Items {
		delta := item.Qty
		if debit {
			delta = delta.Neg()
		}
		inputs[i] = &invdto.ApplyInput{
			VariantID:     item.VariantID,
			WarehouseID:   warehouseID,
			Delta:         delta,
			MovementType:  mt,
			ReferenceType: model.ReferenceTransfer,
			ReferenceID:   t.ID,
			Actor:         actor,
		}
	}
	return inventory.ApplyAll(ctx, tx, uc.ledger, inputs)
}

func (uc *transferUseCase) afterCommit(ctx context.Context, t *model.Transfer, eventType string, results []model.LedgerResult) {
	if uc.notifier != nil && len(results) > 0 {
		uc.notifier.StockCommitted(ctx, results)
	}

	evt := events.New(eventType, events.TransferPayload{
		TransferID:      t.ID,
		FromWarehouseID: t.FromWarehouseID,
		ToWarehouseID:   t.ToWarehouseID,
		Status:          string(t.Status),
	}, uc.clock.Now())
	if err := uc.publisher.Publish(ctx, t.ID, evt); err != nil {
		uc.logger.Error("publish transfer event", zap.String("transfer_id", t.ID), zap.Error(err))
	}
}
