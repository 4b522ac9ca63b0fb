package handler_test

import (
	"context"
	"testing"

	inventoryv1 "github.com/fekuna/omnipos-inventory-service/api/inventory/v1"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory/handler"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory/ledger"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory/repository"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory/usecase"
	"github.com/fekuna/omnipos-inventory-service/internal/testutil"
	"github.com/fekuna/omnipos-inventory-service/pkg/clock"
	"github.com/fekuna/omnipos-inventory-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-inventory-service/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func newClient(t *testing.T) inventoryv1.InventoryServiceClient {
	db := testutil.NewDB(t)
	clk := clock.NewMock(testutil.Epoch)
	repo := repository.NewPGRepository(db)
	uc := usecase.NewInventoryUseCase(repo, ledger.NewLedger(repo, clk), postgres.NewTxManager(db), nil, nil, clk, logger.NewNop())

	conn := testutil.NewGRPCConn(t, func(s *grpc.Server) {
		inventoryv1.RegisterInventoryServiceServer(s, handler.NewInventoryHandler(uc, logger.NewNop()))
	})
	return inventoryv1.NewInventoryServiceClient(conn)
}

func TestInventoryHandler_AdjustAndAudit(t *testing.T) {
	client := newClient(t)
	ctx := metadata.AppendToOutgoingContext(context.Background(), "x-user-id", "clerk-7")

	rec, err := client.InitializeStock(ctx, &inventoryv1.InitializeStockRequest{
		VariantID:       "v1",
		WarehouseID:     "w1",
		InitialQuantity: decimal.NewFromInt(10),
		ReorderPoint:    decimal.NewFromInt(3),
	})
	require.NoError(t, err)
	assert.True(t, rec.OnHand.Equal(decimal.NewFromInt(10)))

	rec, err = client.AdjustStock(ctx, &inventoryv1.AdjustStockRequest{
		VariantID:      "v1",
		WarehouseID:    "w1",
		QuantityChange: decimal.NewFromInt(-8),
		Reason:         "damaged pallet",
	})
	require.NoError(t, err)
	assert.True(t, rec.OnHand.Equal(decimal.NewFromInt(2)))
	assert.True(t, rec.Available.Equal(decimal.NewFromInt(2)))
	assert.True(t, rec.LowStock)

	mvs, err := client.ListMovements(ctx, &inventoryv1.ListMovementsRequest{VariantID: "v1", MovementType: "adjustment"})
	require.NoError(t, err)
	var latest *inventoryv1.Movement
	for _, m := range mvs.Movements {
		if m.QuantityChange.IsNegative() {
			latest = m
		}
	}
	require.NotNil(t, latest)
	assert.Equal(t, "clerk-7", latest.PerformedBy)
	assert.Equal(t, "damaged pallet", latest.Notes)
	assert.True(t, latest.QuantityBefore.Equal(decimal.NewFromInt(10)))
	assert.True(t, latest.QuantityAfter.Equal(decimal.NewFromInt(2)))

	low, err := client.ListLowStock(ctx, &inventoryv1.ListLowStockRequest{WarehouseID: "w1"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), low.Total)

	recon, err := client.ReconcileStock(ctx, &inventoryv1.ReconcileStockRequest{VariantID: "v1", WarehouseID: "w1"})
	require.NoError(t, err)
	require.Len(t, recon.Items, 1)
	assert.True(t, recon.Items[0].Balanced)
	assert.True(t, recon.Items[0].Drift.IsZero())
}

func TestInventoryHandler_StatusCodes(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	_, err := client.InitializeStock(ctx, &inventoryv1.InitializeStockRequest{
		VariantID:       "v1",
		WarehouseID:     "w1",
		InitialQuantity: decimal.NewFromInt(2),
	})
	require.NoError(t, err)

	_, err = client.AdjustStock(ctx, &inventoryv1.AdjustStockRequest{
		VariantID:      "v1",
		WarehouseID:    "w1",
		QuantityChange: decimal.NewFromInt(-5),
	})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = client.AdjustStock(ctx, &inventoryv1.AdjustStockRequest{
		WarehouseID:    "w1",
		QuantityChange: decimal.NewFromInt(1),
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.ReconcileStock(ctx, &inventoryv1.ReconcileStockRequest{VariantID: "v1"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.ReconcileStock(ctx, &inventoryv1.ReconcileStockRequest{VariantID: "nope", WarehouseID: "w1"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestInventoryHandler_GetStockMissingIsZero(t *testing.T) {
	client := newClient(t)

	rec, err := client.GetStock(context.Background(), &inventoryv1.GetStockRequest{VariantID: "v9", WarehouseID: "w1"})
	require.NoError(t, err)
	assert.True(t, rec.OnHand.IsZero())
	assert.True(t, rec.Available.IsZero())
	assert.Empty(t, rec.ID)
}
