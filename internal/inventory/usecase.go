package inventory

import (
	"context"

	"github.com/fekuna/omnipos-inventory-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
)

type UseCase interface {
	GetStock(ctx context.Context, variantID, warehouseID string) (*model.StockRecord, error)
	ListStock(ctx context.Context, filters *dto.StockFilters) ([]model.StockRecord, int, error)
	ListLowStock(ctx context.Context, warehouseID string, page, pageSize int) ([]model.StockRecord, int, error)

	AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (*model.StockRecord, error)
	InitializeStock(ctx context.Context, input *dto.InitializeStockInput) (*model.StockRecord, error)
	ReserveStock(ctx context.Context, input *dto.ReserveInput) (*model.StockRecord, error)
	ReleaseStock(ctx context.Context, input *dto.ReserveInput) (*model.StockRecord, error)
	RetireStock(ctx context.Context, variantID, warehouseID string) (*model.StockRecord, error)
	SetBackorder(ctx context.Context, input *dto.SetBackorderInput) (int64, error)

	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.MovementEntry, int, error)
	Reconcile(ctx context.Context, variantID, warehouseID string) (*model.Reconciliation, error)
	ReconcileAll(ctx context.Context) ([]model.Reconciliation, error)
}
