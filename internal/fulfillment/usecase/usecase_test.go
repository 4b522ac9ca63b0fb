package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/fekuna/omnipos-inventory-service/internal/events"
	"github.com/fekuna/omnipos-inventory-service/internal/fulfillment"
	"github.com/fekuna/omnipos-inventory-service/internal/fulfillment/dto"
	"github.com/fekuna/omnipos-inventory-service/internal/fulfillment/repository"
	"github.com/fekuna/omnipos-inventory-service/internal/fulfillment/usecase"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory"
	invdto "github.com/fekuna/omnipos-inventory-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory/ledger"
	invrepo "github.com/fekuna/omnipos-inventory-service/internal/inventory/repository"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/fekuna/omnipos-inventory-service/internal/testutil"
	"github.com/fekuna/omnipos-inventory-service/pkg/clock"
	"github.com/fekuna/omnipos-inventory-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-inventory-service/pkg/logger"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hour = time.Hour

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, _ string, evts ...events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evts...)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.EventType
	}
	return out
}

type fixture struct {
	db        *sqlx.DB
	stock     *invrepo.PGRepository
	uc        fulfillment.UseCase
	publisher *recordingPublisher
	clock     *clock.Mock
}

func newFixture(t *testing.T) *fixture {
	db := testutil.NewDB(t)
	clk := clock.NewMock(testutil.Epoch)
	stock := invrepo.NewPGRepository(db)
	pub := &recordingPublisher{}
	uc := usecase.NewFulfillmentUseCase(
		repository.NewPGRepository(db),
		ledger.NewLedger(stock, clk),
		postgres.NewTxManager(db),
		nil,
		pub,
		clk,
		logger.NewNop(),
	)
	return &fixture{db: db, stock: stock, uc: uc, publisher: pub, clock: clk}
}

func (f *fixture) seedStock(t *testing.T, variantID, warehouseID string, qty int64) {
	t.Helper()
	l := ledger.NewLedger(f.stock, f.clock)
	err := postgres.NewTxManager(f.db).WithinTx(context.Background(), func(tx *sqlx.Tx) error {
		_, err := l.Initialize(context.Background(), tx, &invdto.InitializeStockInput{
			VariantID:       variantID,
			WarehouseID:     warehouseID,
			InitialQuantity: decimal.NewFromInt(qty),
		})
		return err
	})
	require.NoError(t, err)
}

func (f *fixture) onHand(t *testing.T, variantID, warehouseID string) int64 {
	t.Helper()
	rec, err := f.stock.GetStock(context.Background(), variantID, warehouseID)
	require.NoError(t, err)
	require.NotNil(t, rec)
	return rec.OnHand.IntPart()
}

func lines(ids []string, qtys ...int64) []dto.CreateItemInput {
	out := make([]dto.CreateItemInput, len(qtys))
	for i, q := range qtys {
		out[i] = dto.CreateItemInput{OrderItemID: ids[i], Qty: decimal.NewFromInt(q)}
	}
	return out
}

func TestCreateFulfillment_ExhaustsRemaining(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedStock(t, "v1", "w1", 50)
	items := testutil.SeedOrder(t, f.db, "o1", []string{"v1"}, []int64{10})

	ful, err := f.uc.CreateFulfillment(ctx, &dto.CreateFulfillmentInput{
		OrderID: "o1", WarehouseID: "w1", Items: lines(items, 10), Actor: "admin-1",
	})
	require.NoError(t, err)
	assert.Equal(t, model.FulfillmentPending, ful.Status)
	require.Len(t, ful.Items, 1)
	assert.Equal(t, "v1", ful.Items[0].VariantID)

	remaining, err := f.uc.RemainingQuantities(ctx, "o1")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.True(t, remaining[0].Remaining.IsZero())

	_, err = f.uc.CreateFulfillment(ctx, &dto.CreateFulfillmentInput{
		OrderID: "o1", WarehouseID: "w1", Items: lines(items, 1),
	})
	require.ErrorIs(t, err, apperr.ErrValidation)
	assert.Contains(t, err.Error(), "exceeds remaining quantity")

	assert.Equal(t, int64(40), f.onHand(t, "v1", "w1"))
	assert.Equal(t, 1, testutil.CountRows(t, f.db, "fulfillments", ""))
	assert.Equal(t, []string{events.TypeFulfillmentCreated}, f.publisher.types())
}

func TestCreateFulfillment_InsufficientStock(t *testing.T) {
	f := newFixture(t)
	f.seedStock(t, "v1", "w1", 5)
	items := testutil.SeedOrder(t, f.db, "o1", []string{"v1"}, []int64{10})

	_, err := f.uc.CreateFulfillment(context.Background(), &dto.CreateFulfillmentInput{
		OrderID: "o1", WarehouseID: "w1", Items: lines(items, 6),
	})
	require.ErrorIs(t, err, apperr.ErrInsufficientStock)

	assert.Equal(t, int64(5), f.onHand(t, "v1", "w1"))
	assert.Equal(t, 0, testutil.CountRows(t, f.db, "stock_movements", "movement_type = ?", "fulfillment_deduction"))
	assert.Empty(t, f.publisher.types())
}

func TestCreateFulfillment_AllOrNothing(t *testing.T) {
	f := newFixture(t)
	f.seedStock(t, "v1", "w1", 10)
	f.seedStock(t, "v2", "w1", 10)
	f.seedStock(t, "v3", "w1", 1)
	items := testutil.SeedOrder(t, f.db, "o1", []string{"v1", "v2", "v3"}, []int64{3, 3, 3})

	_, err := f.uc.CreateFulfillment(context.Background(), &dto.CreateFulfillmentInput{
		OrderID: "o1", WarehouseID: "w1", Items: lines(items, 3, 3, 3),
	})
	require.ErrorIs(t, err, apperr.ErrInsufficientStock)

	assert.Equal(t, int64(10), f.onHand(t, "v1", "w1"))
	assert.Equal(t, int64(10), f.onHand(t, "v2", "w1"))
	assert.Equal(t, int64(1), f.onHand(t, "v3", "w1"))
	assert.Equal(t, 0, testutil.CountRows(t, f.db, "stock_movements", "movement_type = ?", "fulfillment_deduction"))
	assert.Equal(t, 0, testutil.CountRows(t, f.db, "fulfillments", ""))
	assert.Equal(t, 0, testutil.CountRows(t, f.db, "fulfillment_items", ""))
}

func TestCreateFulfillment_RejectsForeignAndUnknown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.SeedOrder(t, f.db, "o1", []string{"v1"}, []int64{1})
	other := testutil.SeedOrder(t, f.db, "o2", []string{"v1"}, []int64{1})

	_, err := f.uc.CreateFulfillment(ctx, &dto.CreateFulfillmentInput{
		OrderID: "o1", WarehouseID: "w1", Items: lines(other, 1),
	})
	require.ErrorIs(t, err, apperr.ErrValidation)
	assert.Contains(t, err.Error(), "does not belong to order o1")

	_, err = f.uc.CreateFulfillment(ctx, &dto.CreateFulfillmentInput{
		OrderID: "missing", WarehouseID: "w1", Items: lines(other, 1),
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateFulfillment_ShippedSetsTimestamp(t *testing.T) {
	f := newFixture(t)
	f.seedStock(t, "v1", "w1", 5)
	items := testutil.SeedOrder(t, f.db, "o1", []string{"v1"}, []int64{2})
	tracking := "TRK-1"

	ful, err := f.uc.CreateFulfillment(context.Background(), &dto.CreateFulfillmentInput{
		OrderID: "o1", WarehouseID: "w1", Items: lines(items, 2),
		Status: model.FulfillmentShipped, TrackingNumber: &tracking,
	})
	require.NoError(t, err)
	assert.Equal(t, model.FulfillmentShipped, ful.Status)
	require.NotNil(t, ful.ShippedAt)
	assert.Nil(t, ful.DeliveredAt)

	got, err := f.uc.GetFulfillment(context.Background(), ful.ID)
	require.NoError(t, err)
	require.NotNil(t, got.TrackingNumber)
	assert.Equal(t, "TRK-1", *got.TrackingNumber)
	assert.Len(t, got.Items, 1)
}

func TestUpdateStatus_ReturnRestoresOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedStock(t, "v1", "w1", 10)
	f.seedStock(t, "v2", "w1", 10)
	items := testutil.SeedOrder(t, f.db, "o1", []string{"v1", "v2"}, []int64{3, 2})

	ful, err := f.uc.CreateFulfillment(ctx, &dto.CreateFulfillmentInput{
		OrderID: "o1", WarehouseID: "w1", Items: lines(items, 3, 2),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), f.onHand(t, "v1", "w1"))
	assert.Equal(t, int64(8), f.onHand(t, "v2", "w1"))

	for i := 0; i < 2; i++ {
		got, err := f.uc.UpdateStatus(ctx, &dto.UpdateStatusInput{FulfillmentID: ful.ID, Status: model.FulfillmentReturned, Actor: "admin-1"})
		require.NoError(t, err)
		assert.Equal(t, model.FulfillmentReturned, got.Status)
		assert.NotNil(t, got.ReturnedAt)
	}

	assert.Equal(t, int64(10), f.onHand(t, "v1", "w1"))
	assert.Equal(t, int64(10), f.onHand(t, "v2", "w1"))
	assert.Equal(t, 2, testutil.CountRows(t, f.db, "stock_movements", "movement_type = ? AND reference_id = ?", "return_restoration", ful.ID))

	// Returned quantities can be fulfilled again.
	remaining, err := f.uc.RemainingQuantities(ctx, "o1")
	require.NoError(t, err)
	for _, r := range remaining {
		assert.True(t, r.Remaining.Equal(r.Ordered), "item %s", r.OrderItemID)
	}

	assert.Equal(t, []string{events.TypeFulfillmentCreated, events.TypeFulfillmentStatusChanged}, f.publisher.types())
}

func TestUpdateStatus_Transitions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedStock(t, "v1", "w1", 10)
	items := testutil.SeedOrder(t, f.db, "o1", []string{"v1"}, []int64{5})

	ful, err := f.uc.CreateFulfillment(ctx, &dto.CreateFulfillmentInput{OrderID: "o1", WarehouseID: "w1", Items: lines(items, 1)})
	require.NoError(t, err)

	update := func(status model.FulfillmentStatus) (*model.Fulfillment, error) {
		return f.uc.UpdateStatus(ctx, &dto.UpdateStatusInput{FulfillmentID: ful.ID, Status: status})
	}

	f.clock.Advance(hour)
	got, err := update(model.FulfillmentShipped)
	require.NoError(t, err)
	require.NotNil(t, got.ShippedAt)
	shippedAt := *got.ShippedAt
	assert.True(t, testutil.Epoch.Add(hour).Equal(shippedAt))

	got, err = update(model.FulfillmentShipped)
	require.NoError(t, err)
	assert.True(t, shippedAt.Equal(*got.ShippedAt))

	_, err = update(model.FulfillmentPending)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	f.clock.Advance(hour)
	got, err = update(model.FulfillmentDelivered)
	require.NoError(t, err)
	assert.True(t, shippedAt.Equal(*got.ShippedAt))
	require.NotNil(t, got.DeliveredAt)

	_, err = update(model.FulfillmentShipped)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	_, err = update(model.FulfillmentReturned)
	require.NoError(t, err)
	_, err = update(model.FulfillmentDelivered)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	_, err = f.uc.UpdateStatus(ctx, &dto.UpdateStatusInput{FulfillmentID: "nope", Status: model.FulfillmentShipped})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.Equal(t, int64(10), f.onHand(t, "v1", "w1"))
}

func TestCreateFulfillment_ConcurrentNoOversell(t *testing.T) {
	f := newFixture(t)
	f.seedStock(t, "v1", "w1", 5)

	const orders = 8
	var wg sync.WaitGroup
	errs := make([]error, orders)
	for i := 0; i < orders; i++ {
		orderID := "o" + string(rune('a'+i))
		items := testutil.SeedOrder(t, f.db, orderID, []string{"v1"}, []int64{1})
		wg.Add(1)
		go func(i int, orderID string, items []string) {
			defer wg.Done()
			_, errs[i] = f.uc.CreateFulfillment(context.Background(), &dto.CreateFulfillmentInput{
				OrderID: orderID, WarehouseID: "w1", Items: lines(items, 1),
			})
		}(i, orderID, items)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, apperr.ErrInsufficientStock)
	}
	assert.Equal(t, 5, succeeded)
	assert.Equal(t, int64(0), f.onHand(t, "v1", "w1"))

	rec, err := f.stock.Reconcile(context.Background(), "v1", "w1")
	require.NoError(t, err)
	assert.True(t, rec.Balanced())
}

func TestCreateFulfillment_ConcurrentSameOrderItem(t *testing.T) {
	f := newFixture(t)
	f.seedStock(t, "v1", "w1", 100)
	items := testutil.SeedOrder(t, f.db, "o1", []string{"v1"}, []int64{4})

	var wg sync.WaitGroup
	errs := make([]error, 6)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.CreateFulfillment(context.Background(), &dto.CreateFulfillmentInput{
				OrderID: "o1", WarehouseID: "w1", Items: lines(items, 1),
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 4, succeeded)
	assert.Equal(t, int64(96), f.onHand(t, "v1", "w1"))
}

type orderedLedger struct {
	inventory.Ledger
	mu    sync.Mutex
	calls []string
}

func (l *orderedLedger) Apply(ctx context.Context, tx *sqlx.Tx, in *invdto.ApplyInput) (*model.LedgerResult, error) {
	l.mu.Lock()
	l.calls = append(l.calls, in.VariantID)
	l.mu.Unlock()
	return l.Ledger.Apply(ctx, tx, in)
}

func TestFulfillment_AppliesLinesInVariantOrder(t *testing.T) {
	db := testutil.NewDB(t)
	clk := clock.NewMock(testutil.Epoch)
	stock := invrepo.NewPGRepository(db)
	l := &orderedLedger{Ledger: ledger.NewLedger(stock, clk)}
	uc := usecase.NewFulfillmentUseCase(repository.NewPGRepository(db), l, postgres.NewTxManager(db), nil, &recordingPublisher{}, clk, logger.NewNop())
	f := &fixture{db: db, stock: stock, uc: uc, clock: clk}
	ctx := context.Background()

	for _, v := range []string{"v1", "v2", "v3"} {
		f.seedStock(t, v, "w1", 10)
	}
	items := testutil.SeedOrder(t, db, "o1", []string{"v3", "v1", "v2"}, []int64{1, 1, 1})

	ful, err := uc.CreateFulfillment(ctx, &dto.CreateFulfillmentInput{
		OrderID: "o1", WarehouseID: "w1", Items: lines(items, 1, 1, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"v1", "v2", "v3"}, l.calls)
	assert.Equal(t, "v3", ful.Items[0].VariantID)

	l.calls = nil
	_, err = uc.UpdateStatus(ctx, &dto.UpdateStatusInput{FulfillmentID: ful.ID, Status: model.FulfillmentReturned, Actor: "admin-1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"v1", "v2", "v3"}, l.calls)
}
