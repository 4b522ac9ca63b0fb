package inventory

import (
	"context"
	"sort"

	"github.com/fekuna/omnipos-inventory-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/jmoiron/sqlx"
)

// Ledger is the only writer of stock record quantities. Every method runs
// inside the caller's transaction and locks the record it touches until that
// transaction ends.
type Ledger interface {
	// Apply changes on hand by in.Delta and appends the matching movement.
	Apply(ctx context.Context, tx *sqlx.Tx, in *dto.ApplyInput) (*model.LedgerResult, error)

	// Initialize creates or reconfigures a record and books its opening quantity.
	// Repeating it with the same reference does not book the quantity twice.
	Initialize(ctx context.Context, tx *sqlx.Tx, in *dto.InitializeStockInput) (*model.LedgerResult, error)

	Reserve(ctx context.Context, tx *sqlx.Tx, in *dto.ReserveInput) (*model.StockRecord, error)
	Release(ctx context.Context, tx *sqlx.Tx, in *dto.ReserveInput) (*model.StockRecord, error)
	Retire(ctx context.Context, tx *sqlx.Tx, variantID, warehouseID string) (*model.StockRecord, error)
}

// ApplyAll applies inputs ordered by variant then warehouse, so callers that
// touch several records take their row locks in one global order. Results
// follow that order, not the order of inputs.
func ApplyAll(ctx context.Context, tx *sqlx.Tx, l Ledger, inputs []*dto.ApplyInput) ([]model.LedgerResult, error) {
	sorted := make([]*dto.ApplyInput, len(inputs))
	copy(sorted, inputs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].VariantID != sorted[j].VariantID {
			return sorted[i].VariantID < sorted[j].VariantID
		}
		return sorted[i].WarehouseID < sorted[j].WarehouseID
	})

	results := make([]model.LedgerResult, 0, len(sorted))
	for _, in := range sorted {
		res, err := l.Apply(ctx, tx, in)
		if err != nil {
			return nil, err
		}
		results = append(results, *res)
	}
	return results, nil
}

// Notifier receives ledger results once their transaction has committed.
type Notifier interface {
	StockCommitted(ctx context.Context, results []model.LedgerResult)
}

// StockCache fronts stock record reads.
type StockCache interface {
	Get(ctx context.Context, variantID, warehouseID string) (*model.StockRecord, bool)
	Set(ctx context.Context, rec *model.StockRecord)
	Invalidate(ctx context.Context, variantID, warehouseID string)
}

// MovementIndexer ships movements to the audit search index.
type MovementIndexer interface {
	IndexMovements(ctx context.Context, movements []model.MovementEntry) error
}
