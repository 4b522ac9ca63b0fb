package handler_test

import (
	"context"
	"testing"

	inventoryv1 "github.com/fekuna/omnipos-inventory-service/api/inventory/v1"
	"github.com/fekuna/omnipos-inventory-service/internal/fulfillment/handler"
	"github.com/fekuna/omnipos-inventory-service/internal/fulfillment/repository"
	"github.com/fekuna/omnipos-inventory-service/internal/fulfillment/usecase"
	invdto "github.com/fekuna/omnipos-inventory-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory/ledger"
	invrepo "github.com/fekuna/omnipos-inventory-service/internal/inventory/repository"
	"github.com/fekuna/omnipos-inventory-service/internal/testutil"
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

func TestFulfillmentHandler_Lifecycle(t *testing.T) {
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
	items := testutil.SeedOrder(t, db, "o1", []string{"v1"}, []int64{4})

	uc := usecase.NewFulfillmentUseCase(repository.NewPGRepository(db), l, txm, nil, nil, clk, logger.NewNop())
	conn := testutil.NewGRPCConn(t, func(s *grpc.Server) {
		inventoryv1.RegisterFulfillmentServiceServer(s, handler.NewFulfillmentHandler(uc, logger.NewNop()))
	})
	client := inventoryv1.NewFulfillmentServiceClient(conn)
	ctx := metadata.AppendToOutgoingContext(context.Background(), "x-user-id", "picker-1")

	f, err := client.CreateFulfillment(ctx, &inventoryv1.CreateFulfillmentRequest{
		OrderID:     "o1",
		WarehouseID: "w1",
		Items:       []*inventoryv1.FulfillmentLine{{OrderItemID: items[0], Qty: decimal.NewFromInt(3)}},
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", f.Status)
	assert.Equal(t, "picker-1", f.CreatedBy)
	assert.Empty(t, f.TrackingNumber)
	require.Len(t, f.Items, 1)
	assert.Equal(t, "v1", f.Items[0].VariantID)

	f, err = client.UpdateFulfillmentStatus(ctx, &inventoryv1.UpdateFulfillmentStatusRequest{
		FulfillmentID:  f.ID,
		Status:         "shipped",
		TrackingNumber: "1Z999",
		Carrier:        "ups",
	})
	require.NoError(t, err)
	assert.Equal(t, "shipped", f.Status)
	assert.Equal(t, "1Z999", f.TrackingNumber)
	require.NotNil(t, f.ShippedAt)

	_, err = client.UpdateFulfillmentStatus(ctx, &inventoryv1.UpdateFulfillmentStatusRequest{FulfillmentID: f.ID, Status: "pending"})
	assert.Equal(t, codes.Aborted, status.Code(err))

	list, err := client.ListOrderFulfillments(ctx, &inventoryv1.ListOrderFulfillmentsRequest{OrderID: "o1"})
	require.NoError(t, err)
	require.Len(t, list.Fulfillments, 1)
	require.Len(t, list.Remaining, 1)
	assert.True(t, list.Remaining[0].Fulfilled.Equal(decimal.NewFromInt(3)))
	assert.True(t, list.Remaining[0].Remaining.Equal(decimal.NewFromInt(1)))

	_, err = client.CreateFulfillment(ctx, &inventoryv1.CreateFulfillmentRequest{
		OrderID:     "o1",
		WarehouseID: "w1",
		Items:       []*inventoryv1.FulfillmentLine{{OrderItemID: items[0], Qty: decimal.NewFromInt(2)}},
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.CreateFulfillment(ctx, &inventoryv1.CreateFulfillmentRequest{
		OrderID:     "o1",
		WarehouseID: "w1",
		Items:       []*inventoryv1.FulfillmentLine{{OrderItemID: items[0], Qty: decimal.NewFromInt(1)}, nil},
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "items[1]")

	list, err = client.ListOrderFulfillments(ctx, &inventoryv1.ListOrderFulfillmentsRequest{OrderID: "o1"})
	require.NoError(t, err)
	assert.Len(t, list.Fulfillments, 1)

	_, err = client.GetFulfillment(ctx, &inventoryv1.GetFulfillmentRequest{ID: "missing"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}
