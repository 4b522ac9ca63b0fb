package usecase_test

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory"
	invdto "github.com/fekuna/omnipos-inventory-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory/ledger"
	invrepo "github.com/fekuna/omnipos-inventory-service/internal/inventory/repository"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/fekuna/omnipos-inventory-service/internal/testutil"
	"github.com/fekuna/omnipos-inventory-service/internal/transfer"
	"github.com/fekuna/omnipos-inventory-service/internal/transfer/dto"
	"github.com/fekuna/omnipos-inventory-service/internal/transfer/repository"
	"github.com/fekuna/omnipos-inventory-service/internal/transfer/usecase"
	"github.com/fekuna/omnipos-inventory-service/pkg/clock"
	"github.com/fekuna/omnipos-inventory-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-inventory-service/pkg/logger"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db    *sqlx.DB
	stock *invrepo.PGRepository
	uc    transfer.UseCase
}

func newFixture(t *testing.T) *fixture {
	db := testutil.NewDB(t)
	clk := clock.NewMock(testutil.Epoch)
	stock := invrepo.NewPGRepository(db)
	l := ledger.NewLedger(stock, clk)
	txm := postgres.NewTxManager(db)

	err := txm.WithinTx(context.Background(), func(tx *sqlx.Tx) error {
		for _, v := range []string{"v1", "v2"} {
			if _, err := l.Initialize(context.Background(), tx, &invdto.InitializeStockInput{
				VariantID: v, WarehouseID: "A", InitialQuantity: decimal.NewFromInt(10),
			}); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	return &fixture{
		db:    db,
		stock: stock,
		uc:    usecase.NewTransferUseCase(repository.NewPGRepository(db), l, txm, nil, nil, clk, logger.NewNop()),
	}
}

func (f *fixture) onHand(t *testing.T, variantID, warehouseID string) int64 {
	t.Helper()
	rec, err := f.stock.GetStock(context.Background(), variantID, warehouseID)
	require.NoError(t, err)
	if rec == nil {
		return 0
	}
	return rec.OnHand.IntPart()
}

func createInput(qty int64) *dto.CreateTransferInput {
	return &dto.CreateTransferInput{
		FromWarehouseID: "A",
		ToWarehouseID:   "B",
		Items:           []dto.TransferItemInput{{VariantID: "v1", Qty: decimal.NewFromInt(qty)}},
		Actor:           "admin-1",
	}
}

func TestTransfer_DebitThenCredit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tr, err := f.uc.CreateTransfer(ctx, createInput(4))
	require.NoError(t, err)
	assert.Equal(t, model.TransferInTransit, tr.Status)
	assert.Equal(t, int64(6), f.onHand(t, "v1", "A"))
	assert.Equal(t, int64(0), f.onHand(t, "v1", "B"))

	done, err := f.uc.CompleteTransfer(ctx, tr.ID, "admin-2")
	require.NoError(t, err)
	assert.Equal(t, model.TransferCompleted, done.Status)
	assert.NotNil(t, done.CompletedAt)
	assert.Equal(t, int64(6), f.onHand(t, "v1", "A"))
	assert.Equal(t, int64(4), f.onHand(t, "v1", "B"))

	_, err = f.uc.CompleteTransfer(ctx, tr.ID, "admin-2")
	require.NoError(t, err)
	assert.Equal(t, int64(4), f.onHand(t, "v1", "B"))

	_, err = f.uc.CancelTransfer(ctx, tr.ID, "admin-2")
	assert.ErrorIs(t, err, apperr.ErrConflict)

	assert.Equal(t, 1, testutil.CountRows(t, f.db, "stock_movements", "movement_type = ? AND reference_id = ?", "transfer_out", tr.ID))
	assert.Equal(t, 1, testutil.CountRows(t, f.db, "stock_movements", "movement_type = ? AND reference_id = ?", "transfer_in", tr.ID))

	for _, wh := range []string{"A", "B"} {
		rec, err := f.stock.Reconcile(ctx, "v1", wh)
		require.NoError(t, err)
		assert.True(t, rec.Balanced(), "warehouse %s", wh)
	}
}

func TestTransfer_CancelCreditsSource(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tr, err := f.uc.CreateTransfer(ctx, createInput(4))
	require.NoError(t, err)

	canceled, err := f.uc.CancelTransfer(ctx, tr.ID, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, model.TransferCanceled, canceled.Status)
	assert.NotNil(t, canceled.CanceledAt)
	assert.Equal(t, int64(10), f.onHand(t, "v1", "A"))

	_, err = f.uc.CancelTransfer(ctx, tr.ID, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), f.onHand(t, "v1", "A"))

	_, err = f.uc.CompleteTransfer(ctx, tr.ID, "admin-1")
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.Equal(t, int64(0), f.onHand(t, "v1", "B"))
}

func TestTransfer_InsufficientStockRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.CreateTransfer(ctx, &dto.CreateTransferInput{
		FromWarehouseID: "A",
		ToWarehouseID:   "B",
		Items: []dto.TransferItemInput{
			{VariantID: "v1", Qty: decimal.NewFromInt(2)},
			{VariantID: "v2", Qty: decimal.NewFromInt(11)},
		},
	})
	require.ErrorIs(t, err, apperr.ErrInsufficientStock)

	assert.Equal(t, int64(10), f.onHand(t, "v1", "A"))
	assert.Equal(t, 0, testutil.CountRows(t, f.db, "transfers", ""))
	assert.Equal(t, 0, testutil.CountRows(t, f.db, "stock_movements", "movement_type = ?", "transfer_out"))
}

func TestTransfer_GetAndList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tr, err := f.uc.CreateTransfer(ctx, createInput(1))
	require.NoError(t, err)

	got, err := f.uc.GetTransfer(ctx, tr.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].Qty.Equal(decimal.NewFromInt(1)))

	_, err = f.uc.GetTransfer(ctx, "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	list, total, err := f.uc.ListTransfers(ctx, &dto.TransferFilters{WarehouseID: "B", Status: model.TransferInTransit})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, list, 1)

	_, total, err = f.uc.ListTransfers(ctx, &dto.TransferFilters{Status: model.TransferCompleted})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

type orderedLedger struct {
	inventory.Ledger
	calls []string
}

func (l *orderedLedger) Apply(ctx context.Context, tx *sqlx.Tx, in *invdto.ApplyInput) (*model.LedgerResult, error) {
	l.calls = append(l.calls, in.VariantID+"@"+in.WarehouseID)
	return l.Ledger.Apply(ctx, tx, in)
}

func TestTransfer_AppliesItemsInVariantOrder(t *testing.T) {
	f := newFixture(t)
	clk := clock.NewMock(testutil.Epoch)
	l := &orderedLedger{Ledger: ledger.NewLedger(f.stock, clk)}
	uc := usecase.NewTransferUseCase(repository.NewPGRepository(f.db), l, postgres.NewTxManager(f.db), nil, nil, clk, logger.NewNop())
	ctx := context.Background()

	tr, err := uc.CreateTransfer(ctx, &dto.CreateTransferInput{
		FromWarehouseID: "A",
		ToWarehouseID:   "B",
		Items: []dto.TransferItemInput{
			{VariantID: "v2", Qty: decimal.NewFromInt(1)},
			{VariantID: "v1", Qty: decimal.NewFromInt(1)},
		},
		Actor: "admin-1",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"v1@A", "v2@A"}, l.calls)

	l.calls = nil
	_, err = uc.CompleteTransfer(ctx, tr.ID, "admin-2")
	require.NoError(t, err)
	assert.Equal(t, []string{"v1@B", "v2@B"}, l.calls)
}
