package notifier

import (
	"context"

	"github.com/fekuna/omnipos-inventory-service/internal/events"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/fekuna/omnipos-inventory-service/pkg/clock"
	"github.com/fekuna/omnipos-inventory-service/pkg/logger"
	"go.uber.org/zap"
)

// StockNotifier fans committed ledger results out to the read cache, the
// event stream and the audit index. Every sink is optional and failures are
// logged, never returned: the stock change is already durable.
type StockNotifier struct {
	cache     inventory.StockCache
	publisher events.Publisher
	indexer   inventory.MovementIndexer
	clock     clock.Clock
	logger    logger.ZapLogger
}

func NewStockNotifier(
	cache inventory.StockCache,
	publisher events.Publisher,
	indexer inventory.MovementIndexer,
	clk clock.Clock,
	log logger.ZapLogger,
) *StockNotifier {
	return &StockNotifier{
		cache:     cache,
		publisher: publisher,
		indexer:   indexer,
		clock:     clk,
		logger:    log,
	}
}

func (n *StockNotifier) StockCommitted(ctx context.Context, results []model.LedgerResult) {
	if len(results) == 0 {
		return
	}

	movements := make([]model.MovementEntry, 0, len(results))
	for _, r := range results {
		if n.cache != nil && r.Stock != nil {
			n.cache.Invalidate(ctx, r.Stock.VariantID, r.Stock.WarehouseID)
		}
		if r.Movement == nil {
			continue
		}
		movements = append(movements, *r.Movement)

		if n.publisher == nil {
			continue
		}
		evt := events.New(events.TypeStockChanged, stockChanged(r), n.clock.Now())
		key := r.Movement.VariantID + ":" + r.Movement.WarehouseID
		if err := n.publisher.Publish(ctx, key, evt); err != nil {
			n.logger.Error("publish stock changed",
				zap.String("movement_id", r.Movement.ID),
				zap.Error(err),
			)
		}
	}

	if n.indexer != nil && len(movements) > 0 {
		if err := n.indexer.IndexMovements(ctx, movements); err != nil {
			n.logger.Warn("index movements", zap.Int("count", len(movements)), zap.Error(err))
		}
	}
}

func stockChanged(r model.LedgerResult) events.StockChangedPayload {
	p := events.StockChangedPayload{
		VariantID:      r.Movement.VariantID,
		WarehouseID:    r.Movement.WarehouseID,
		MovementID:     r.Movement.ID,
		MovementType:   string(r.Movement.MovementType),
		QuantityChange: r.Movement.QuantityChange,
		OnHand:         r.Movement.QuantityAfter,
		ReferenceType:  r.Movement.ReferenceType,
		ReferenceID:    r.Movement.ReferenceID,
	}
	if r.Stock != nil {
		p.Available = r.Stock.Available()
		p.LowStock = r.Stock.IsLow()
	}
	return p
}
