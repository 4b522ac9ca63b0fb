package transfer

import (
	"context"

	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/fekuna/omnipos-inventory-service/internal/transfer/dto"
	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ctx context.Context, tx *sqlx.Tx, t *model.Transfer) error
	LockByID(ctx context.Context, tx *sqlx.Tx, id string) (*model.Transfer, error)
	UpdateStatus(ctx context.Context, tx *sqlx.Tx, t *model.Transfer) error

	FindByID(ctx context.Context, id string) (*model.Transfer, error)
	FindAll(ctx context.Context, filters *dto.TransferFilters) ([]model.Transfer, int, error)
}
