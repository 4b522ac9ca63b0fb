package handler_test

import (
	"context"
	"testing"

	inventoryv1 "github.com/fekuna/omnipos-inventory-service/api/inventory/v1"
	invdto "github.com/fekuna/omnipos-inventory-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory/ledger"
	invrepo "github.com/fekuna/omnipos-inventory-service/internal/inventory/repository"
	"github.com/fekuna/omnipos-inventory-service/internal/testutil"
	"github.com/fekuna/omnipos-inventory-service/internal/transfer/handler"
	"github.com/fekuna/omnipos-inventory-service/internal/transfer/repository"
	"github.com/fekuna/omnipos-inventory-service/internal/transfer/usecase"
	"github.com/fekuna/omnipos-inventory-service/pkg/clock"
	"github.com/fekuna/omnipos-inventory-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-inventory-service/pkg/logger"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestTransferHandler_CreateCompleteCancel(t *testing.T) {
	db := testutil.NewDB(t)
	clk := clock.NewMock(testutil.Epoch)
	stock := invrepo.NewPGRepository(db)
	l := ledger.NewLedger(stock, clk)
	txm := postgres.NewTxManager(db)

	err := txm.WithinTx(context.Background(), func(tx *sqlx.Tx) error {
		_, err := l.Initialize(context.Background(), tx, &invdto.InitializeStockInput{
			VariantID:       "v1",
			WarehouseID:     "w1",
			InitialQuantity: decimal.NewFromInt(10),
		})
		return err
	})
	require.NoError(t, err)

	uc := usecase.NewTransferUseCase(repository.NewPGRepository(db), l, txm, nil, nil, clk, logger.NewNop())
	conn := testutil.NewGRPCConn(t, func(s *grpc.Server) {
		inventoryv1.RegisterTransferServiceServer(s, handler.NewTransferHandler(uc, logger.NewNop()))
	})
	client := inventoryv1.NewTransferServiceClient(conn)
	ctx := metadata.AppendToOutgoingContext(context.Background(), "x-user-id", "ops-2")

	tr, err := client.CreateTransfer(ctx, &inventoryv1.CreateTransferRequest{
		FromWarehouseID: "w1",
		ToWarehouseID:   "w2",
		Items:           []*inventoryv1.TransferLine{{VariantID: "v1", Qty: decimal.NewFromInt(4)}},
		Notes:           "rebalance",
	})
	require.NoError(t, err)
	assert.Equal(t, "in_transit", tr.Status)
	assert.Equal(t, "ops-2", tr.CreatedBy)

	tr, err = client.CompleteTransfer(ctx, &inventoryv1.TransferIDRequest{ID: tr.ID})
	require.NoError(t, err)
	assert.Equal(t, "completed", tr.Status)
	require.NotNil(t, tr.CompletedAt)

	_, err = client.CancelTransfer(ctx, &inventoryv1.TransferIDRequest{ID: tr.ID})
	assert.Equal(t, codes.Aborted, status.Code(err))

	_, err = client.CreateTransfer(ctx, &inventoryv1.CreateTransferRequest{
		FromWarehouseID: "w1",
		ToWarehouseID:   "w2",
		Items:           []*inventoryv1.TransferLine{{VariantID: "v1", Qty: decimal.NewFromInt(50)}},
	})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = client.CreateTransfer(ctx, &inventoryv1.CreateTransferRequest{
		FromWarehouseID: "w1",
		ToWarehouseID:   "w1",
		Items:           []*inventoryv1.TransferLine{{VariantID: "v1", Qty: decimal.NewFromInt(1)}},
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.CreateTransfer(ctx, &inventoryv1.CreateTransferRequest{
		FromWarehouseID: "w1",
		ToWarehouseID:   "w2",
		Items:           []*inventoryv1.TransferLine{{VariantID: "v1", Qty: decimal.NewFromInt(1)}, nil},
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "items[1]")

	list, err := client.ListTransfers(ctx, &inventoryv1.ListTransfersRequest{WarehouseID: "w2"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), list.Total)

	_, err = client.GetTransfer(ctx, &inventoryv1.TransferIDRequest{ID: "missing"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}
