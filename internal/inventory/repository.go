package inventory

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-inventory-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type Repository interface {
	// Stock records
	GetStock(ctx context.Context, variantID, warehouseID string) (*model.StockRecord, error)
	FindStock(ctx context.Context, filters *dto.StockFilters) ([]model.StockRecord, int, error)

	// Locked access, only valid inside tx
	LockStock(ctx context.Context, tx *sqlx.Tx, variantID, warehouseID string) (*model.StockRecord, error)
	EnsureStock(ctx context.Context, tx *sqlx.Tx, rec *model.StockRecord) error
	UpdateStock(ctx context.Context, tx *sqlx.Tx, rec *model.StockRecord) error
	SetBackorder(ctx context.Context, tx *sqlx.Tx, variantID string, allow bool, at time.Time) (int64, error)

	// Movements / Audit
	InsertMovement(ctx context.Context, tx *sqlx.Tx, movement *model.MovementEntry) error
	HasMovement(ctx context.Context, tx *sqlx.Tx, variantID, warehouseID, referenceType, referenceID string) (bool, error)
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.MovementEntry, int, error)

	// Reconciliation
	Reconcile(ctx context.Context, variantID, warehouseID string) (*model.Reconciliation, error)
	ReconcileAll(ctx context.Context) ([]model.Reconciliation, error)
}
