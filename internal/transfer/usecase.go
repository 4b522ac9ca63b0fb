package transfer

import (
	"context"

	"github.com/fekuna/omnipos-inventory-service/internal/model"
	"github.com/fekuna/omnipos-inventory-service/internal/transfer/dto"
)

type UseCase interface {
	CreateTransfer(ctx context.Context, input *dto.CreateTransferInput) (*model.Transfer, error)
	CompleteTransfer(ctx context.Context, id, actor string) (*model.Transfer, error)
	CancelTransfer(ctx context.Context, id, actor string) (*model.Transfer, error)
	GetTransfer(ctx context.Context, id string) (*model.Transfer, error)
	ListTransfers(ctx context.Context, filters *dto.TransferFilters) ([]model.Transfer, int, error)
}
